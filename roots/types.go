package roots

import (
	"fmt"
	"math"
)

// Defaults and thresholds.
const (
	DefaultTol     = 1e-6
	DefaultMaxIter = 100

	// FlatThreshold bounds |f'| (Newton), |Δf| (Secant) and the Aitken
	// denominator (Steffensen) from below.
	FlatThreshold = 1e-10
)

// Options controls stopping.
//
//   - Tol: stop when the step |x' - x| (or the bisection half-width, or
//     |f(c)|) drops below Tol.
//   - MaxIter: upper bound on steps.
type Options struct {
	Tol     float64
	MaxIter int
}

// DefaultOptions returns Options{Tol: 1e-6, MaxIter: 100}.
func DefaultOptions() Options {
	return Options{Tol: DefaultTol, MaxIter: DefaultMaxIter}
}

// Iteration records one step. X is the point the step started from
// (the midpoint for Bisection) and Next the point it produced.
type Iteration struct {
	N      int
	X      float64
	FX     float64 // f(X), or g(X) for the fixed-point methods
	Next   float64
	Err    float64 // |Next - X|, or the bracket half-width for Bisection
	Lo, Hi float64 // bracket before the step; Bisection only
}

// Result is the outcome of a root search.
type Result struct {
	Root       float64
	Iterations []Iteration
	Converged  bool
}

// resolve applies defaults for a nil opts and validates the rest.
func resolve(opts *Options) (Options, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if !(o.Tol > 0) || o.MaxIter < 1 {
		return o, fmt.Errorf("Tol=%g, MaxIter=%d: %w", o.Tol, o.MaxIter, ErrBadOptions)
	}

	return o, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
