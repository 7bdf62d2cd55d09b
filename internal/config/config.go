// Package config loads the run-time initial-state input: step budget,
// chamber geometry, particle population, and the numerical knobs the
// core exposes as configuration rather than constants. Loading goes
// through github.com/spf13/viper, the teacher's own configuration
// dependency, so JSON/TOML/YAML all work without extra code.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/deveworld/simrelay/internal/collision"
)

// RunConfig holds everything needed to build a scheduler for one run.
// It is the generalized, viper-loaded analogue of the teacher's
// config.Config.
type RunConfig struct {
	// Steps is the number of events to process before stopping cleanly.
	Steps int

	// L is the side length of each square chamber.
	L float64
	// Gap is the horizontal separation between the two chambers' inner
	// walls (the thickness of the dividing wall minus the slit).
	Gap float64
	// SlitWidth is the height of the opening connecting the chambers.
	SlitWidth float64

	// NumParticles is the number of disks to seed, if no explicit
	// particle list is supplied by an initializer.
	NumParticles int
	// MinRadius/MaxRadius bound the uniform radius range used when
	// particles are generated rather than loaded explicitly.
	MinRadius float64
	MaxRadius float64

	Guardband collision.Guardband

	// StallThreshold is the K threshold for the numerical-stall error.
	StallThreshold int

	// UseWorkerPool enables parallel post-collision event recomputation;
	// NumWorkers sizes the pool when enabled.
	UseWorkerPool bool
	NumWorkers    int

	// Live enables the raylib viewer sink in addition to the text sink.
	Live bool
	// OutDir is the directory the text sink writes setup.txt/steps/
	// events.txt into.
	OutDir string
}

// Default returns the baseline configuration: 10,000 events, two 10x10
// chambers joined by a 1-unit slit, 50 particles of radius 0.1-0.2, the
// recommended guardband and stall threshold, sequential recomputation,
// and no live viewer.
func Default() *RunConfig {
	return &RunConfig{
		Steps:          10000,
		L:              10,
		Gap:            2,
		SlitWidth:      1,
		NumParticles:   50,
		MinRadius:      0.1,
		MaxRadius:      0.2,
		Guardband:      collision.DefaultGuardband(),
		StallThreshold: 16,
		UseWorkerPool:  false,
		NumWorkers:     1,
		Live:           false,
		OutDir:         "out",
	}
}

// Load reads a JSON/TOML/YAML file at path via viper, overlaying it on
// Default(). An empty path returns Default() unchanged — callers (the
// CLI's positional-argument fallback) are expected to mutate the
// returned RunConfig directly in that case.
func Load(path string) (*RunConfig, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	v.SetDefault("steps", cfg.Steps)
	v.SetDefault("l", cfg.L)
	v.SetDefault("gap", cfg.Gap)
	v.SetDefault("slitWidth", cfg.SlitWidth)
	v.SetDefault("particles", cfg.NumParticles)
	v.SetDefault("minRadius", cfg.MinRadius)
	v.SetDefault("maxRadius", cfg.MaxRadius)
	v.SetDefault("stallThreshold", cfg.StallThreshold)
	v.SetDefault("useWorkerPool", cfg.UseWorkerPool)
	v.SetDefault("numWorkers", cfg.NumWorkers)
	v.SetDefault("live", cfg.Live)
	v.SetDefault("outDir", cfg.OutDir)

	cfg.Steps = v.GetInt("steps")
	cfg.L = v.GetFloat64("l")
	cfg.Gap = v.GetFloat64("gap")
	cfg.SlitWidth = v.GetFloat64("slitWidth")
	cfg.NumParticles = v.GetInt("particles")
	cfg.MinRadius = v.GetFloat64("minRadius")
	cfg.MaxRadius = v.GetFloat64("maxRadius")
	cfg.StallThreshold = v.GetInt("stallThreshold")
	cfg.UseWorkerPool = v.GetBool("useWorkerPool")
	cfg.NumWorkers = v.GetInt("numWorkers")
	cfg.Live = v.GetBool("live")
	cfg.OutDir = v.GetString("outDir")

	if v.IsSet("eps1") {
		cfg.Guardband.Eps1 = v.GetFloat64("eps1")
	}
	if v.IsSet("eps2") {
		cfg.Guardband.Eps2 = v.GetFloat64("eps2")
	}
	if v.IsSet("eps3") {
		cfg.Guardband.Eps3 = v.GetFloat64("eps3")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration is self-consistent before it
// reaches the scheduler.
func (c *RunConfig) Validate() error {
	if c.Steps <= 0 {
		return fmt.Errorf("config: steps must be positive, got %d", c.Steps)
	}
	if c.L <= 0 {
		return fmt.Errorf("config: L must be positive, got %g", c.L)
	}
	if c.SlitWidth <= 0 || c.SlitWidth >= c.L {
		return fmt.Errorf("config: slit width must be in (0, L), got %g", c.SlitWidth)
	}
	if c.NumParticles < 0 {
		return fmt.Errorf("config: particle count must be non-negative, got %d", c.NumParticles)
	}
	if c.MinRadius <= 0 || c.MaxRadius < c.MinRadius {
		return fmt.Errorf("config: radius range invalid, got [%g, %g]", c.MinRadius, c.MaxRadius)
	}
	if c.StallThreshold <= 0 {
		return fmt.Errorf("config: stall threshold must be positive, got %d", c.StallThreshold)
	}
	return nil
}

// Clone returns a deep copy of c. RunConfig has no reference fields
// beyond Guardband, a plain value struct, so a shallow struct copy is
// already a deep copy.
func (c *RunConfig) Clone() *RunConfig {
	clone := *c
	return &clone
}
