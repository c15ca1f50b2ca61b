package config_test

import (
	"testing"

	"github.com/katalvlaran/lvnum/internal/config"
	"github.com/katalvlaran/lvnum/spline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	bc, err := cfg.BoundaryCondition()
	require.NoError(t, err)
	assert.Equal(t, spline.Natural{}, bc)
	assert.Len(t, cfg.SplineOptions(), 1)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("LVNUM_BOUNDARY", "clamped")
	t.Setenv("LVNUM_SLOPES", "0.5,-1")
	t.Setenv("LVNUM_SAMPLES", "42")
	t.Setenv("LVNUM_ORDER", "2")
	t.Setenv("LVNUM_DENSE_SOLVER", "true")
	t.Setenv("LVNUM_ROMBERG_TOL", "1e-6")
	t.Setenv("LVNUM_LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.Samples)
	assert.Equal(t, 2, cfg.Order)
	assert.Equal(t, 1e-6, cfg.QuadOptions().Tol)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Len(t, cfg.SplineOptions(), 2)

	bc, err := cfg.BoundaryCondition()
	require.NoError(t, err)
	assert.Equal(t, spline.Clamped{SlopeStart: 0.5, SlopeEnd: -1}, bc)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string][2]string{
		"samples": {"LVNUM_SAMPLES", "1"},
		"order":   {"LVNUM_ORDER", "3"},
		"tol":     {"LVNUM_ROOT_TOL", "0"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			_, err := config.Load()
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	t.Run("unparsable", func(t *testing.T) {
		t.Setenv("LVNUM_SAMPLES", "many")
		_, err := config.Load()
		assert.Error(t, err)
	})
}

// TestLoad_BoundaryResolvedLazily keeps a bad boundary from failing Load;
// flags may still replace it.
func TestLoad_BoundaryResolvedLazily(t *testing.T) {
	t.Setenv("LVNUM_BOUNDARY", "clamped")
	cfg, err := config.Load()
	require.NoError(t, err)

	_, err = cfg.BoundaryCondition()
	assert.ErrorIs(t, err, spline.ErrMissingBoundaryData)

	t.Setenv("LVNUM_BOUNDARY", "periodic")
	cfg, err = config.Load()
	require.NoError(t, err)

	_, err = cfg.BoundaryCondition()
	assert.ErrorIs(t, err, spline.ErrUnknownBoundary)
}
