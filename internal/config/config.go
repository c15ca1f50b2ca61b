// Package config loads splinectl settings from LVNUM_* environment
// variables. Command-line flags override whatever is loaded here.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvnum/quad"
	"github.com/katalvlaran/lvnum/roots"
	"github.com/katalvlaran/lvnum/spline"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, e.g. LVNUM_SAMPLES.
const Prefix = "lvnum"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all settings. Field tags name the variables without the
// prefix, so Samples is read from LVNUM_SAMPLES.
type Config struct {
	Boundary     string    `envconfig:"BOUNDARY" default:"natural"`
	Slopes       []float64 `envconfig:"SLOPES"`
	Samples      int       `envconfig:"SAMPLES" default:"500"`
	Order        int       `envconfig:"ORDER" default:"0"`
	PivotEpsilon float64   `envconfig:"PIVOT_EPSILON" default:"0"`
	DenseSolver  bool      `envconfig:"DENSE_SOLVER" default:"false"`

	RombergLevels int     `envconfig:"ROMBERG_LEVELS" default:"10"`
	RombergTol    float64 `envconfig:"ROMBERG_TOL" default:"1e-8"`

	RootTol     float64 `envconfig:"ROOT_TOL" default:"1e-10"`
	RootMaxIter int     `envconfig:"ROOT_MAX_ITER" default:"100"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogDev   bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load reads the environment and validates the result.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("config: load: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the values Load yields with an empty environment.
func Default() *Config {
	return &Config{
		Boundary:      spline.NameNatural,
		Samples:       500,
		PivotEpsilon:  spline.DefaultPivotEpsilon,
		RombergLevels: quad.DefaultMaxLevels,
		RombergTol:    quad.DefaultTol,
		RootTol:       1e-10,
		RootMaxIter:   roots.DefaultMaxIter,
		LogLevel:      "info",
	}
}

// Validate checks numeric ranges. Boundary and Slopes are resolved later by
// BoundaryCondition, once flags and datasets had a chance to override them.
func (c *Config) Validate() error {
	switch {
	case c.Samples < 2:
		return fmt.Errorf("%w: LVNUM_SAMPLES=%d, want >= 2", ErrInvalid, c.Samples)
	case !spline.Order(c.Order).Valid():
		return fmt.Errorf("%w: LVNUM_ORDER=%d, want 0..2", ErrInvalid, c.Order)
	case !(c.PivotEpsilon >= 0) || math.IsInf(c.PivotEpsilon, 1):
		return fmt.Errorf("%w: LVNUM_PIVOT_EPSILON=%g, want >= 0", ErrInvalid, c.PivotEpsilon)
	case c.RombergLevels < 1 || !(c.RombergTol > 0):
		return fmt.Errorf("%w: Romberg levels=%d tol=%g", ErrInvalid, c.RombergLevels, c.RombergTol)
	case c.RootMaxIter < 1 || !(c.RootTol > 0):
		return fmt.Errorf("%w: root max_iter=%d tol=%g", ErrInvalid, c.RootMaxIter, c.RootTol)
	}

	return nil
}

// BoundaryCondition resolves Boundary and Slopes.
func (c *Config) BoundaryCondition() (spline.Boundary, error) {
	return spline.ParseBoundary(c.Boundary, c.Slopes)
}

// SplineOptions translates the solver settings into spline options.
func (c *Config) SplineOptions() []spline.Option {
	opts := []spline.Option{spline.WithPivotEpsilon(c.PivotEpsilon)}
	if c.DenseSolver {
		opts = append(opts, spline.WithDenseSolver())
	}

	return opts
}

// QuadOptions returns the Romberg settings.
func (c *Config) QuadOptions() *quad.Options {
	return &quad.Options{MaxLevels: c.RombergLevels, Tol: c.RombergTol}
}

// RootsOptions returns the root-finder settings.
func (c *Config) RootsOptions() *roots.Options {
	return &roots.Options{Tol: c.RootTol, MaxIter: c.RootMaxIter}
}
