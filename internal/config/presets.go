package config

var Presets = map[string]*Config{
	"coarse": {
		StepLength: 0.01,
		StepBound:  StepBoundConfig{Kind: "fixed", Value: 1000},
		Workers:    DefaultWorkers,
		Bins:       DefaultBins,
	},
	"default": {
		StepLength: DefaultStepLength,
		StepBound:  StepBoundConfig{Kind: "fixed", Value: DefaultMaxSteps},
		Workers:    DefaultWorkers,
		Bins:       DefaultBins,
	},
	"fine": {
		StepLength: 0.0005,
		StepBound:  StepBoundConfig{Kind: "uniform", Min: 10000, Max: 50000},
		Workers:    8,
		Bins:       40,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
