package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default() failed Validate(): %v", err)
	}
	if cfg.Steps != 10000 {
		t.Errorf("Steps = %d, want 10000", cfg.Steps)
	}
	if cfg.L != 10 {
		t.Errorf("L = %g, want 10", cfg.L)
	}
	if cfg.Guardband.Eps1 != 1e-14 {
		t.Errorf("Guardband.Eps1 = %g, want 1e-14", cfg.Guardband.Eps1)
	}
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load(\"\") = %+v, want Default()", cfg)
	}
}

func TestLoadJSONOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.json")
	body := `{"steps": 500, "particles": 12, "l": 20, "useWorkerPool": true, "numWorkers": 4}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Steps != 500 {
		t.Errorf("Steps = %d, want 500", cfg.Steps)
	}
	if cfg.NumParticles != 12 {
		t.Errorf("NumParticles = %d, want 12", cfg.NumParticles)
	}
	if cfg.L != 20 {
		t.Errorf("L = %g, want 20", cfg.L)
	}
	if !cfg.UseWorkerPool || cfg.NumWorkers != 4 {
		t.Errorf("UseWorkerPool/NumWorkers = %v/%d, want true/4", cfg.UseWorkerPool, cfg.NumWorkers)
	}
	// Unspecified fields keep their defaults.
	if cfg.SlitWidth != Default().SlitWidth {
		t.Errorf("SlitWidth = %g, want default %g", cfg.SlitWidth, Default().SlitWidth)
	}
}

func TestValidateRejectsBadSlitWidth(t *testing.T) {
	cfg := Default()
	cfg.SlitWidth = cfg.L + 1
	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() succeeded with slit width > L, want error")
	}
}

func TestValidateRejectsNonPositiveSteps(t *testing.T) {
	cfg := Default()
	cfg.Steps = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() succeeded with zero steps, want error")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	cfg := Default()
	clone := cfg.Clone()
	clone.Steps = 1
	if cfg.Steps == clone.Steps {
		t.Fatal("Clone() aliased the original RunConfig")
	}
}
