package roots

import (
	"fmt"
	"math"
)

// Bisection searches [a, b] for a zero of f. The bracket must satisfy
// f(a)·f(b) <= 0; an endpoint that is already a zero is returned at once.
// Each step halves the bracket, stopping when |f(c)| < Tol or the
// half-width drops below Tol.
//
// Errors: ErrNilFunc, ErrBadOptions, ErrNoSignChange, ErrNonFinite,
// ErrNoConvergence (Result.Root is the final midpoint).
func Bisection(f func(float64) float64, a, b float64, opts *Options) (Result, error) {
	o, err := resolve(opts)
	if err != nil {
		return Result{}, rootsErrorf(opBisection, err)
	}
	if f == nil {
		return Result{}, rootsErrorf(opBisection, ErrNilFunc)
	}
	if a > b {
		a, b = b, a
	}

	fa, fb := f(a), f(b)
	if !finite(fa) || !finite(fb) {
		return Result{}, rootsErrorf(opBisection, ErrNonFinite)
	}
	switch {
	case fa == 0:
		return Result{Root: a, Converged: true}, nil
	case fb == 0:
		return Result{Root: b, Converged: true}, nil
	case math.Signbit(fa) == math.Signbit(fb):
		return Result{}, rootsErrorf(opBisection,
			fmt.Errorf("f(%g)=%g, f(%g)=%g: %w", a, fa, b, fb, ErrNoSignChange))
	}

	res := Result{Iterations: make([]Iteration, 0, o.MaxIter)}
	for i := 0; i < o.MaxIter; i++ {
		c := a + (b-a)/2
		fc := f(c)
		half := (b - a) / 2
		res.Iterations = append(res.Iterations, Iteration{
			N: i, X: c, FX: fc, Next: c, Err: half, Lo: a, Hi: b,
		})
		if !finite(fc) {
			res.Root = c
			return res, rootsErrorf(opBisection, fmt.Errorf("f(%g): %w", c, ErrNonFinite))
		}
		if math.Abs(fc) < o.Tol || half < o.Tol {
			res.Root, res.Converged = c, true
			return res, nil
		}
		if math.Signbit(fa) != math.Signbit(fc) {
			b = c
		} else {
			a, fa = c, fc
		}
	}
	res.Root = a + (b-a)/2

	return res, rootsErrorf(opBisection, ErrNoConvergence)
}
