package main

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvnum/roots"
	"github.com/katalvlaran/lvnum/spline"
)

// coarseTol is the bisection tolerance used before Newton takes over.
const coarseTol = 1e-3

// levelCrossings returns, in increasing order, one x per segment where
// S(x) - level changes sign over the segment. A crossing at a shared knot is
// reported once.
func levelCrossings(sp *spline.Spline, level float64, opts *roots.Options) ([]float64, error) {
	f := func(x float64) float64 { return sp.Value(x) - level }
	df := sp.Deriv

	var xs []float64
	segs := sp.Segments()
	for i, seg := range segs {
		fa, fb := f(seg.X0), f(seg.X1)
		if fb == 0 && i < len(segs)-1 {
			continue // reported as the next segment's start
		}
		if math.Signbit(fa) == math.Signbit(fb) && fa != 0 && fb != 0 {
			continue
		}

		coarse, err := roots.Bisection(f, seg.X0, seg.X1, &roots.Options{Tol: coarseTol, MaxIter: opts.MaxIter})
		if err != nil && !errors.Is(err, roots.ErrNoConvergence) {
			return nil, err
		}
		x := coarse.Root

		fine, err := roots.Newton(f, df, x, opts)
		if err == nil && fine.Root >= seg.X0 && fine.Root <= seg.X1 {
			x = fine.Root
		}
		xs = append(xs, x)
	}

	return xs, nil
}
