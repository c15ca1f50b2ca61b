package tridiag

import "math"

// DefaultEpsilon is the pivot magnitude at or below which elimination reports
// ErrSingular. Zero means only exact-zero (and NaN) pivots are rejected.
const DefaultEpsilon = 0.0

const panicEpsilonInvalid = "tridiag: WithEpsilon: eps must be finite, non-negative"

// Option mutates solver options.
type Option func(*Options)

// Options holds the effective solver configuration.
type Options struct {
	eps float64 // >= 0; DefaultEpsilon
}

// WithEpsilon sets the pivot threshold. Panics when eps is negative, NaN or ±Inf.
//
// Larger eps turns near-singular systems into explicit ErrSingular failures
// instead of solutions swamped by rounding.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// Epsilon reports the configured pivot threshold.
func (o Options) Epsilon() float64 { return o.eps }

// DefaultOptions returns the zero-configuration solver options.
func DefaultOptions() Options {
	return Options{eps: DefaultEpsilon}
}

// gatherOptions applies opts over the defaults; nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
