package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/fieldtopo/internal/topo"
)

const (
	DefaultStepLength = 0.001
	DefaultMaxSteps   = 10000
	DefaultWorkers    = 4
	DefaultBins       = 20
)

type Config struct {
	StepLength float64         `yaml:"step_length"`
	StepBound  StepBoundConfig `yaml:"step_bound"`
	Workers    int             `yaml:"workers"`
	Seed       int64           `yaml:"seed"`
	Bins       int             `yaml:"bins"`
}

// StepBoundConfig names the per-trial step-limit distribution: "fixed" with
// Value, or "uniform" over [Min, Max].
type StepBoundConfig struct {
	Kind  string `yaml:"kind"`
	Value int    `yaml:"value"`
	Min   int    `yaml:"min"`
	Max   int    `yaml:"max"`
}

func DefaultConfig() *Config {
	return &Config{
		StepLength: DefaultStepLength,
		StepBound:  StepBoundConfig{Kind: "fixed", Value: DefaultMaxSteps},
		Workers:    DefaultWorkers,
		Bins:       DefaultBins,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Bound resolves the configured distribution to a topo.StepBound.
func (c *Config) Bound() (topo.StepBound, error) {
	switch c.StepBound.Kind {
	case "", "fixed":
		if c.StepBound.Value <= 0 {
			return nil, fmt.Errorf("config: fixed step bound must be positive, got %d", c.StepBound.Value)
		}
		return topo.FixedBound(c.StepBound.Value), nil
	case "uniform":
		if c.StepBound.Min <= 0 || c.StepBound.Max < c.StepBound.Min {
			return nil, fmt.Errorf("config: uniform step bound needs 0 < min <= max, got [%d, %d]",
				c.StepBound.Min, c.StepBound.Max)
		}
		return topo.UniformBound{Min: c.StepBound.Min, Max: c.StepBound.Max}, nil
	default:
		return nil, fmt.Errorf("config: unknown step bound kind: %s", c.StepBound.Kind)
	}
}
