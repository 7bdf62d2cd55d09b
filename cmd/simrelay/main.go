// Command simrelay runs the event-driven hard-disk gas simulator and
// writes its trajectory to a text sink and, optionally, a live raylib
// viewer.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"strconv"

	"github.com/deveworld/simrelay/internal/body"
	"github.com/deveworld/simrelay/internal/config"
	"github.com/deveworld/simrelay/internal/container"
	"github.com/deveworld/simrelay/internal/geom"
	"github.com/deveworld/simrelay/internal/renderer"
	"github.com/deveworld/simrelay/internal/scheduler"
	"github.com/deveworld/simrelay/internal/snapshot"
	"github.com/deveworld/simrelay/internal/snapshot/textsink"
	"github.com/deveworld/simrelay/internal/workpool"
)

func main() {
	log.SetFlags(0)

	var (
		events     = flag.Int("events", 0, "number of collision events to run (0 = use config/default)")
		l          = flag.Float64("L", 0, "chamber side length (0 = use config/default)")
		particles  = flag.Int("particles", 0, "number of disks to seed (0 = use config/default)")
		configPath = flag.String("config", "", "path to a JSON/TOML/YAML run configuration")
		outDir     = flag.String("out", "", "output directory for the text sink (empty = use config/default)")
		live       = flag.Bool("live", false, "enable the raylib live viewer")
		cpus       = flag.Int("cpus", 0, "worker pool size for event recomputation (0 = sequential)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[error] %v", err)
	}

	if flag.NArg() == 3 && *events == 0 && *l == 0 && *particles == 0 {
		applyPositionalArgs(cfg, flag.Args())
	}
	if *events > 0 {
		cfg.Steps = *events
	}
	if *l > 0 {
		cfg.L = *l
	}
	if *particles > 0 {
		cfg.NumParticles = *particles
	}
	if *outDir != "" {
		cfg.OutDir = *outDir
	}
	if *live {
		cfg.Live = true
	}
	if *cpus > 0 {
		cfg.UseWorkerPool = true
		cfg.NumWorkers = *cpus
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("[error] invalid configuration: %v", err)
	}

	if err := run(cfg); err != nil {
		log.Fatalf("[error] %v", err)
	}
}

// applyPositionalArgs implements the "<event_count> <L> <particle_count>"
// fallback for callers that don't pass flags.
func applyPositionalArgs(cfg *config.RunConfig, args []string) {
	steps, err := strconv.Atoi(args[0])
	if err != nil {
		log.Fatalf("[error] invalid event_count %q: %v", args[0], err)
	}
	l, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		log.Fatalf("[error] invalid L %q: %v", args[1], err)
	}
	n, err := strconv.Atoi(args[2])
	if err != nil {
		log.Fatalf("[error] invalid particle_count %q: %v", args[2], err)
	}
	cfg.Steps = steps
	cfg.L = l
	cfg.NumParticles = n
}

func run(cfg *config.RunConfig) error {
	log.Printf("[info] building two-chamber container: L=%.4g gap=%.4g slit=%.4g", cfg.L, cfg.Gap, cfg.SlitWidth)
	poly, err := container.BuildTwoChamber(cfg.L, cfg.Gap, cfg.SlitWidth)
	if err != nil {
		return fmt.Errorf("build container: %w", err)
	}

	log.Printf("[info] seeding %d particles", cfg.NumParticles)
	particles, err := seedParticles(cfg, poly)
	if err != nil {
		return fmt.Errorf("seed particles: %w", err)
	}

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	text, err := textsink.New(cfg.OutDir)
	if err != nil {
		return fmt.Errorf("open text sink: %w", err)
	}
	defer text.Close()

	mode := workpool.ModeSequential
	if cfg.UseWorkerPool {
		mode = workpool.ModeParallel
	}
	pool := workpool.New(mode, cfg.NumWorkers)

	schedCfg := scheduler.Config{
		L:              cfg.L,
		Guardband:      cfg.Guardband,
		StallThreshold: cfg.StallThreshold,
		Pool:           pool,
	}

	var sink snapshot.Sink = text
	var viewer *renderer.Viewer
	if cfg.Live {
		viewer = renderer.NewViewer(1280, 720, 60, mode)
		sink = multiSink{text, viewer}
		defer viewer.Close()
	}

	sched, err := scheduler.NewScheduler(schedCfg, particles, poly, sink)
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}

	log.Printf("[info] running %d events (mode=%s, workers=%d)", cfg.Steps, pickMode(cfg), cfg.NumWorkers)
	if err := sched.Run(context.Background(), cfg.Steps); err != nil {
		if stall, ok := err.(*scheduler.StallError); ok {
			log.Printf("[error] numerical stall at step %d, τ=%.14f; dumping last good snapshot", stall.StepIndex, stall.Time)
			for _, p := range stall.LastGood {
				log.Printf("[stall] particle %d: pos=%v vel=%v", p.ID, p.Position, p.Velocity)
			}
		}
		return err
	}
	log.Printf("[info] completed %d steps at τ=%.14f", sched.StepIndex, sched.Time)
	return nil
}

func pickMode(cfg *config.RunConfig) string {
	if cfg.UseWorkerPool {
		return "Parallel"
	}
	return "Sequential"
}

// seedParticles places cfg.NumParticles non-overlapping disks with
// uniformly random radii in [MinRadius, MaxRadius] and random
// unit-speed velocities, rejecting placements that overlap an existing
// particle or fall outside poly. Initial-state generation is a CLI-layer
// concern the scheduler itself never performs.
func seedParticles(cfg *config.RunConfig, poly *container.Polygon) ([]*body.Particle, error) {
	const maxAttemptsPerParticle = 10000
	rng := rand.New(rand.NewSource(1))

	placed := make([]*body.Particle, 0, cfg.NumParticles)
	for id := 0; id < cfg.NumParticles; id++ {
		placedOK := false
		for attempt := 0; attempt < maxAttemptsPerParticle; attempt++ {
			radius := cfg.MinRadius + rng.Float64()*(cfg.MaxRadius-cfg.MinRadius)
			x := rng.Float64() * (2*cfg.L + cfg.Gap)
			y := rng.Float64() * cfg.L
			pos := geom.New(x, y)
			if !poly.Contains(pos, radius, 1e-9) {
				continue
			}
			if overlapsAny(pos, radius, placed) {
				continue
			}
			theta := rng.Float64() * 2 * math.Pi
			vel := geom.New(math.Cos(theta), math.Sin(theta))
			placed = append(placed, body.NewParticle(id, pos, vel, radius))
			placedOK = true
			break
		}
		if !placedOK {
			return nil, fmt.Errorf("could not place particle %d without overlap after %d attempts", id, maxAttemptsPerParticle)
		}
	}
	return placed, nil
}

func overlapsAny(pos geom.Vector2, radius float64, placed []*body.Particle) bool {
	for _, p := range placed {
		if pos.Sub(p.Position).Length() < radius+p.Radius {
			return true
		}
	}
	return false
}

// multiSink fans WriteSetup/WriteStep/Close out to every wrapped sink.
// WriteSetup and WriteStep fail fast (skipping the rest) on the first
// error; Close closes every sink and returns the first error.
type multiSink []snapshot.Sink

func (m multiSink) WriteSetup(particleCount int, l float64, obstacles []container.Obstacle) error {
	for _, s := range m {
		if err := s.WriteSetup(particleCount, l, obstacles); err != nil {
			return err
		}
	}
	return nil
}

func (m multiSink) WriteStep(stepIndex int, tau float64, summary snapshot.EventSummary, particles []body.State) error {
	for _, s := range m {
		if err := s.WriteStep(stepIndex, tau, summary, particles); err != nil {
			return err
		}
	}
	return nil
}

func (m multiSink) Close() error {
	var first error
	for _, s := range m {
		if err := s.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
