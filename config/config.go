package config

import (
	"fmt"
	"os"

	"github.com/uyouii/measurement-stats/common"
	"gopkg.in/yaml.v3"
)

// Settings controls how a set of measurements is summarized.
type Settings struct {
	// MaxSigma is the kernel cutoff in standard deviations
	// Default: 10
	MaxSigma float64 `yaml:"max_sigma"`

	// Tolerance is the cumulative probability tolerance of percentile searches
	// Default: 1e-6
	Tolerance float64 `yaml:"tolerance"`

	// PopulationCount is the size of the synthetic population behind the
	// MAD and the weighted boxes
	// Default: 4096
	PopulationCount int `yaml:"population_count"`

	// Seed seeds the population sampling, equal seeds give equal summaries
	Seed uint64 `yaml:"seed"`

	// Quantiles are reported in the summary, each within [0, 1]
	Quantiles []float64 `yaml:"quantiles"`
}

// DefaultSettings returns the settings used when no file is given.
func DefaultSettings() *Settings {
	return &Settings{
		MaxSigma:        10,
		Tolerance:       1e-6,
		PopulationCount: 4096,
		Seed:            1,
		Quantiles:       []float64{0.01, 0.05, 0.1, 0.25, 0.5, 0.75, 0.9, 0.95, 0.99},
	}
}

// Load reads settings from a YAML file. Missing fields keep their defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Settings, error) {
	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parsing YAML: %v: %w", err, common.ErrorInvalidConfig)
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *Settings) Validate() error {
	if s.MaxSigma <= 0 {
		return fmt.Errorf("max_sigma must be positive, got %v: %w", s.MaxSigma, common.ErrorInvalidConfig)
	}
	if s.Tolerance <= 0 || s.Tolerance >= 1 {
		return fmt.Errorf("tolerance must be in (0, 1), got %v: %w", s.Tolerance, common.ErrorInvalidConfig)
	}
	if s.PopulationCount <= 0 {
		return fmt.Errorf("population_count must be positive, got %d: %w", s.PopulationCount, common.ErrorInvalidConfig)
	}
	for _, q := range s.Quantiles {
		if q < 0 || q > 1 {
			return fmt.Errorf("quantile %v outside [0, 1]: %w", q, common.ErrorInvalidConfig)
		}
	}
	return nil
}
