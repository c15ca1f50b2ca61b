package spline

import (
	"math"

	"github.com/katalvlaran/lvnum/tridiag"
)

// DefaultPivotEpsilon is forwarded to the tridiagonal solver.
// Zero rejects only exact-zero and NaN pivots.
const DefaultPivotEpsilon = tridiag.DefaultEpsilon

// DefaultDenseSolver keeps the O(n) Thomas solver as the default.
const DefaultDenseSolver = false

const panicPivotEpsilonInvalid = "spline: WithPivotEpsilon: eps must be finite, non-negative"

// Option mutates build options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options stores the effective build configuration.
type Options struct {
	pivotEps float64 // >= 0; DefaultPivotEpsilon
	dense    bool    // DefaultDenseSolver
}

// WithPivotEpsilon sets the pivot magnitude at or below which Build fails with
// ErrSingularSystem. Panics on negative, NaN or infinite eps.
func WithPivotEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicPivotEpsilonInvalid)
	}

	return func(o *Options) { o.pivotEps = eps }
}

// WithDenseSolver solves the continuity system with the dense O(n³) LU path
// instead of the Thomas sweep. Coefficients agree up to rounding; use it to
// audit results, not in production loops.
func WithDenseSolver() Option {
	return func(o *Options) { o.dense = true }
}

// gatherOptions applies opts over the defaults; nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{pivotEps: DefaultPivotEpsilon, dense: DefaultDenseSolver}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
