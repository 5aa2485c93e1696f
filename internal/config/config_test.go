package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/fieldtopo/internal/topo"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.StepLength <= 0 {
		t.Error("step length should be positive")
	}
	if cfg.Workers <= 0 {
		t.Error("workers should be positive")
	}

	bound, err := cfg.Bound()
	if err != nil {
		t.Fatalf("default bound invalid: %v", err)
	}
	if bound.(topo.FixedBound) != DefaultMaxSteps {
		t.Errorf("default bound = %v, want %d", bound, DefaultMaxSteps)
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StepLength = 0.25
	cfg.StepBound = StepBoundConfig{Kind: "uniform", Min: 5, Max: 50}
	cfg.Seed = 1234

	path := filepath.Join(t.TempDir(), "fieldtopo.yaml")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch: %+v vs %+v", loaded, cfg)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("workers: 2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Workers != 2 {
		t.Errorf("workers = %d, want 2", cfg.Workers)
	}
	if cfg.StepLength != DefaultStepLength {
		t.Errorf("step length should keep default, got %v", cfg.StepLength)
	}
}

func TestBound_Invalid(t *testing.T) {
	tests := []struct {
		name string
		sb   StepBoundConfig
	}{
		{"unknown kind", StepBoundConfig{Kind: "poisson", Value: 10}},
		{"zero fixed", StepBoundConfig{Kind: "fixed", Value: 0}},
		{"inverted uniform", StepBoundConfig{Kind: "uniform", Min: 50, Max: 5}},
		{"zero uniform min", StepBoundConfig{Kind: "uniform", Min: 0, Max: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.StepBound = tt.sb
			if _, err := cfg.Bound(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestGetPreset(t *testing.T) {
	if cfg := GetPreset("fine"); cfg == nil || cfg.Workers != 8 {
		t.Errorf("fine preset wrong: %+v", cfg)
	}
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for unknown preset")
	}
	if len(ListPresets()) != len(Presets) {
		t.Error("ListPresets incomplete")
	}
}
