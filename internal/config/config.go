package config

import (
	"fmt"

	"roboforecast/internal"
	"roboforecast/internal/app"
	"roboforecast/internal/domain"

	"github.com/caarlos0/env/v11"
)

// Config is the service's runtime configuration. Everything is overridable
// through the environment; the defaults mirror the standing analysis setup.
type Config struct {
	TargetYear     int     `env:"TARGET_YEAR" envDefault:"2026"`
	SmoothingAlpha float64 `env:"SMOOTHING_ALPHA" envDefault:"0.3"`

	LinearWeight     float64 `env:"LINEAR_WEIGHT" envDefault:"0.2"`
	PolynomialWeight float64 `env:"POLYNOMIAL_WEIGHT" envDefault:"0.3"`
	SmoothingWeight  float64 `env:"SMOOTHING_WEIGHT" envDefault:"0.2"`
	CAGRWeight       float64 `env:"CAGR_WEIGHT" envDefault:"0.3"`

	DataDir   string `env:"DATA_DIR" envDefault:"data/raw"`
	OutputDir string `env:"OUTPUT_DIR" envDefault:"outputs"`
	Port      int    `env:"PORT" envDefault:"3009"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env config: %w", err)
	}
	return cfg, nil
}

func (c Config) Weights() internal.Weights {
	return internal.Weights{
		domain.Method_Linear:               c.LinearWeight,
		domain.Method_Polynomial:           c.PolynomialWeight,
		domain.Method_ExponentialSmoothing: c.SmoothingWeight,
		domain.Method_CAGR:                 c.CAGRWeight,
	}
}

// RunConfig validates the configured weights and returns the orchestrator's
// run configuration. Malformed weights are a setup-stage failure.
func (c Config) RunConfig() (*app.RunConfig, error) {
	weights := c.Weights()
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &app.RunConfig{
		TargetYear: c.TargetYear,
		Weights:    weights,
		Alpha:      c.SmoothingAlpha,
	}, nil
}
