package roots

import (
	"fmt"
	"math"
)

// step advances one open-method iteration from x. fx is the function value
// recorded for the step.
type step func(x float64) (next, fx float64, err error)

// iterate drives a single-state method until |next - x| < Tol.
func iterate(tag string, x0 float64, o Options, advance step) (Result, error) {
	var res Result
	x := x0
	for i := 0; i < o.MaxIter; i++ {
		next, fx, err := advance(x)
		if err != nil {
			res.Root = x
			return res, rootsErrorf(tag, fmt.Errorf("iteration %d at x=%g: %w", i, x, err))
		}
		d := math.Abs(next - x)
		res.Iterations = append(res.Iterations, Iteration{N: i, X: x, FX: fx, Next: next, Err: d})
		if !finite(next) {
			res.Root = x
			return res, rootsErrorf(tag, fmt.Errorf("iteration %d: %w", i, ErrNonFinite))
		}
		if d < o.Tol {
			res.Root, res.Converged = next, true
			return res, nil
		}
		x = next
	}
	res.Root = x

	return res, rootsErrorf(tag, ErrNoConvergence)
}

// Newton runs Newton–Raphson from x0 using the analytic derivative df.
// Errors: ErrNilFunc, ErrBadOptions, ErrFlatDerivative (|f'(x)| < FlatThreshold;
// Result.Root is the last iterate), ErrNonFinite, ErrNoConvergence.
func Newton(f, df func(float64) float64, x0 float64, opts *Options) (Result, error) {
	o, err := resolve(opts)
	if err != nil {
		return Result{}, rootsErrorf(opNewton, err)
	}
	if f == nil || df == nil {
		return Result{}, rootsErrorf(opNewton, ErrNilFunc)
	}

	return iterate(opNewton, x0, o, func(x float64) (float64, float64, error) {
		fx, dfx := f(x), df(x)
		if math.Abs(dfx) < FlatThreshold {
			return 0, fx, fmt.Errorf("f'=%g: %w", dfx, ErrFlatDerivative)
		}

		return x - fx/dfx, fx, nil
	})
}

// Secant runs the secant method from the two starting points x0, x1.
// Errors: ErrNilFunc, ErrBadOptions, ErrFlatSecant (|Δf| < FlatThreshold),
// ErrNonFinite, ErrNoConvergence.
func Secant(f func(float64) float64, x0, x1 float64, opts *Options) (Result, error) {
	o, err := resolve(opts)
	if err != nil {
		return Result{}, rootsErrorf(opSecant, err)
	}
	if f == nil {
		return Result{}, rootsErrorf(opSecant, ErrNilFunc)
	}

	var res Result
	prev, x := x0, x1
	fPrev := f(prev)
	for i := 0; i < o.MaxIter; i++ {
		fx := f(x)
		df := fx - fPrev
		if math.Abs(df) < FlatThreshold {
			res.Root = x
			return res, rootsErrorf(opSecant, fmt.Errorf("iteration %d: Δf=%g: %w", i, df, ErrFlatSecant))
		}
		next := x - fx*(x-prev)/df
		d := math.Abs(next - x)
		res.Iterations = append(res.Iterations, Iteration{N: i, X: x, FX: fx, Next: next, Err: d})
		if !finite(next) {
			res.Root = x
			return res, rootsErrorf(opSecant, fmt.Errorf("iteration %d: %w", i, ErrNonFinite))
		}
		if d < o.Tol {
			res.Root, res.Converged = next, true
			return res, nil
		}
		prev, fPrev, x = x, fx, next
	}
	res.Root = x

	return res, rootsErrorf(opSecant, ErrNoConvergence)
}

// FixedPoint iterates x' = g(x) from x0.
// Errors: ErrNilFunc, ErrBadOptions, ErrNonFinite, ErrNoConvergence.
func FixedPoint(g func(float64) float64, x0 float64, opts *Options) (Result, error) {
	o, err := resolve(opts)
	if err != nil {
		return Result{}, rootsErrorf(opFixedPoint, err)
	}
	if g == nil {
		return Result{}, rootsErrorf(opFixedPoint, ErrNilFunc)
	}

	return iterate(opFixedPoint, x0, o, func(x float64) (float64, float64, error) {
		gx := g(x)
		return gx, gx, nil
	})
}

// Steffensen accelerates FixedPoint with Aitken's Δ²:
//
//	x' = x - (g(x) - x)² / (g(g(x)) - 2g(x) + x)
//
// When the denominator is below FlatThreshold in magnitude the step falls
// back to x' = g(x); this is not an error.
// Errors: as FixedPoint.
func Steffensen(g func(float64) float64, x0 float64, opts *Options) (Result, error) {
	o, err := resolve(opts)
	if err != nil {
		return Result{}, rootsErrorf(opSteffensen, err)
	}
	if g == nil {
		return Result{}, rootsErrorf(opSteffensen, ErrNilFunc)
	}

	return iterate(opSteffensen, x0, o, func(x float64) (float64, float64, error) {
		gx := g(x)
		ggx := g(gx)
		denom := ggx - 2*gx + x
		if math.Abs(denom) < FlatThreshold {
			return gx, gx, nil
		}
		d := gx - x

		return x - d*d/denom, gx, nil
	})
}
