package spline

import (
	"fmt"

	"github.com/katalvlaran/lvnum/tridiag"
)

// Build constructs the cubic spline through (knots[i], values[i]) under bc.
//
// Algorithm Outline:
//  1. Validate input (see package errors) and copy knots/values.
//  2. h_i = x_{i+1} - x_i.
//  3. Assemble the n×n tridiagonal system for c_i = S″(x_i)/2:
//     interior rows i=1..n-2:
//     h_{i-1}·c_{i-1} + 2(h_{i-1}+h_i)·c_i + h_i·c_{i+1}
//     = 3((y_{i+1}-y_i)/h_i - (y_i-y_{i-1})/h_{i-1})
//     end rows from bc:
//     Natural: c_0 = 0, c_{n-1} = 0
//     Clamped: 2h_0·c_0 + h_0·c_1 = 3((y_1-y_0)/h_0 - dy0)
//     h_{n-2}·c_{n-2} + 2h_{n-2}·c_{n-1} = 3(dyn - (y_{n-1}-y_{n-2})/h_{n-2})
//  4. Solve (Thomas, or dense LU under WithDenseSolver).
//  5. For each segment: a=y_i, b=(y_{i+1}-y_i)/h_i - h_i(2c_i+c_{i+1})/3,
//     d=(c_{i+1}-c_i)/(3h_i); c_{n-1} belongs to no segment and is dropped.
//
// Complexity: O(n) time and memory (O(n³) with WithDenseSolver).
func Build(knots, values []float64, bc Boundary, opts ...Option) (*Spline, error) {
	bc, err := validateInput(knots, values, bc)
	if err != nil {
		return nil, splineErrorf(opBuild, err)
	}
	o := gatherOptions(opts...)

	n := len(knots)
	xs := append([]float64(nil), knots...)
	ys := append([]float64(nil), values...)
	h := make([]float64, n-1)
	for i := range h {
		h[i] = xs[i+1] - xs[i]
	}

	sys := assemble(ys, h, bc)
	if err = finiteSystem(sys); err != nil {
		return nil, splineErrorf(opBuild, err)
	}
	c, err := solve(sys, o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opBuild, ErrSingularSystem, err)
	}
	for i, v := range c {
		if isNonFinite(v) {
			return nil, splineErrorf(opBuild, fmt.Errorf("c[%d] = %g: %w", i, v, ErrNonFinite))
		}
	}

	segs := make([]Segment, n-1)
	cum := make([]float64, n-1)
	for i := range segs {
		segs[i] = Segment{
			X0: xs[i],
			X1: xs[i+1],
			A:  ys[i],
			B:  (ys[i+1]-ys[i])/h[i] - h[i]*(2*c[i]+c[i+1])/3,
			C:  c[i],
			D:  (c[i+1] - c[i]) / (3 * h[i]),
		}
		if isNonFinite(segs[i].B) || isNonFinite(segs[i].D) {
			return nil, splineErrorf(opBuild, fmt.Errorf("segment %d coefficients overflow: %w", i, ErrNonFinite))
		}
		if i > 0 {
			cum[i] = cum[i-1] + segs[i-1].antiderivative(segs[i-1].X1)
		}
	}

	return &Spline{
		knots: xs,
		segs:  segs,
		cum:   cum,
		bc:    bc,
		step:  (xs[n-1] - xs[0]) / float64(n-1),
	}, nil
}

// assemble builds the continuity system for n = len(ys) unknowns.
func assemble(ys, h []float64, bc Boundary) *tridiag.System {
	n := len(ys)
	sys := tridiag.NewSystem(n)

	for i := 1; i < n-1; i++ {
		sys.Sub[i] = h[i-1]
		sys.Diag[i] = 2 * (h[i-1] + h[i])
		sys.Super[i] = h[i]
		sys.RHS[i] = 3 * ((ys[i+1]-ys[i])/h[i] - (ys[i]-ys[i-1])/h[i-1])
	}

	switch v := bc.(type) {
	case Clamped:
		sys.Diag[0] = 2 * h[0]
		sys.Super[0] = h[0]
		sys.RHS[0] = 3 * ((ys[1]-ys[0])/h[0] - v.SlopeStart)

		sys.Sub[n-1] = h[n-2]
		sys.Diag[n-1] = 2 * h[n-2]
		sys.RHS[n-1] = 3 * (v.SlopeEnd - (ys[n-1]-ys[n-2])/h[n-2])
	default: // Natural
		sys.Diag[0], sys.RHS[0] = 1, 0
		sys.Diag[n-1], sys.RHS[n-1] = 1, 0
	}

	return sys
}

// finiteSystem rejects a system whose entries overflowed during assembly.
func finiteSystem(sys *tridiag.System) error {
	for i := range sys.Diag {
		if isNonFinite(sys.Sub[i]) || isNonFinite(sys.Diag[i]) ||
			isNonFinite(sys.Super[i]) || isNonFinite(sys.RHS[i]) {
			return fmt.Errorf("continuity row %d overflows: %w", i, ErrNonFinite)
		}
	}

	return nil
}

// solve dispatches to the configured solver. The system is owned by Build, so
// the Thomas path runs in place.
func solve(sys *tridiag.System, o Options) ([]float64, error) {
	if o.dense {
		return tridiag.SolveDense(sys)
	}

	return tridiag.SolveInPlace(sys, tridiag.WithEpsilon(o.pivotEps))
}
