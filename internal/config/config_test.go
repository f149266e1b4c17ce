package config

import (
	"errors"
	"testing"

	"roboforecast/internal"
	"roboforecast/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		require.Equal(t, 2026, cfg.TargetYear)
		require.Equal(t, 0.3, cfg.SmoothingAlpha)
		require.Equal(t, "data/raw", cfg.DataDir)
		require.Equal(t, "outputs", cfg.OutputDir)
		require.Equal(t, 3009, cfg.Port)
		require.Equal(t, internal.DefaultWeights(), cfg.Weights())
	})

	t.Run("env overrides", func(t *testing.T) {
		t.Setenv("TARGET_YEAR", "2030")
		t.Setenv("SMOOTHING_ALPHA", "0.5")
		t.Setenv("CAGR_WEIGHT", "0.4")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, 2030, cfg.TargetYear)
		require.Equal(t, 0.5, cfg.SmoothingAlpha)
		require.Equal(t, 0.4, cfg.Weights()[domain.Method_CAGR])
	})

	t.Run("unparseable value", func(t *testing.T) {
		t.Setenv("TARGET_YEAR", "soon")
		_, err := Load()
		require.Error(t, err)
	})
}

func TestConfig_RunConfig(t *testing.T) {
	t.Run("valid defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		runConfig, err := cfg.RunConfig()
		require.NoError(t, err)
		require.Equal(t, cfg.TargetYear, runConfig.TargetYear)
		require.Equal(t, cfg.SmoothingAlpha, runConfig.Alpha)
	})

	t.Run("weights must sum to one", func(t *testing.T) {
		t.Setenv("LINEAR_WEIGHT", "0.9")

		cfg, err := Load()
		require.NoError(t, err)

		_, err = cfg.RunConfig()
		require.Error(t, err)
		invalidWeightErr := internal.InvalidWeightError{}
		require.True(t, errors.As(err, &invalidWeightErr))
	})
}
