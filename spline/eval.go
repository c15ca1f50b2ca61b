package spline

import "fmt"

// Value returns S(x). Outside the knot range the nearest end cubic is
// extrapolated; NaN in gives NaN out.
func (s *Spline) Value(x float64) float64 { return s.segs[s.Locate(x)].Value(x) }

// Deriv returns S′(x), extrapolating like Value.
func (s *Spline) Deriv(x float64) float64 { return s.segs[s.Locate(x)].Deriv(x) }

// Deriv2 returns S″(x), extrapolating like Value.
func (s *Spline) Deriv2(x float64) float64 { return s.segs[s.Locate(x)].Deriv2(x) }

// Eval returns S, S′ or S″ at x depending on order.
// The only error is ErrInvalidOrder.
func (s *Spline) Eval(x float64, order Order) (float64, error) {
	if !order.Valid() {
		return 0, splineErrorf(opEval, fmt.Errorf("order %d: %w", order, ErrInvalidOrder))
	}

	return s.eval(x, order), nil
}

func (s *Spline) eval(x float64, order Order) float64 {
	seg := s.segs[s.Locate(x)]
	switch order {
	case OrderFirst:
		return seg.Deriv(x)
	case OrderSecond:
		return seg.Deriv2(x)
	default:
		return seg.Value(x)
	}
}

// EvalAll evaluates every point independently and returns the results in
// input order. If an output slice is given the results are written into it
// (and it is returned as a convenience); it must hold at least len(points)
// values. Only the first output slice is used.
//
// Errors: ErrInvalidOrder, ErrDimensionMismatch (short output slice).
// Complexity: O(m log n) for m points, O(m) on uniform grids.
func (s *Spline) EvalAll(points []float64, order Order, out ...[]float64) ([]float64, error) {
	if !order.Valid() {
		return nil, splineErrorf(opEvalAll, fmt.Errorf("order %d: %w", order, ErrInvalidOrder))
	}

	var dst []float64
	if len(out) > 0 && out[0] != nil {
		if len(out[0]) < len(points) {
			return nil, splineErrorf(opEvalAll,
				fmt.Errorf("output holds %d of %d values: %w", len(out[0]), len(points), ErrDimensionMismatch))
		}
		dst = out[0][:len(points)]
	} else {
		dst = make([]float64, len(points))
	}

	for i, x := range points {
		dst[i] = s.eval(x, order)
	}

	return dst, nil
}

// Evaluate is the free-function form of EvalAll for callers that hold the
// spline behind an interface or may pass nil.
func Evaluate(sp *Spline, points []float64, order Order) ([]float64, error) {
	if sp == nil {
		return nil, splineErrorf(opEvaluate, ErrNilSpline)
	}
	ys, err := sp.EvalAll(points, order)
	if err != nil {
		return nil, splineErrorf(opEvaluate, err)
	}

	return ys, nil
}

// Integral returns ∫_a^b S(x) dx, exact up to rounding. Limits outside the knot
// range integrate the extrapolated end cubics; a > b gives the negated result.
func (s *Spline) Integral(a, b float64) float64 {
	return s.primitive(b) - s.primitive(a)
}

// primitive returns ∫_{x_0}^{x} S.
func (s *Spline) primitive(x float64) float64 {
	i := s.Locate(x)
	return s.cum[i] + s.segs[i].antiderivative(x)
}
