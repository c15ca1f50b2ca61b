package tridiag

import (
	"fmt"
	"math"
)

// Solve returns x with A·x = RHS using the Thomas algorithm.
//
// Algorithm Outline:
//  1. Forward sweep, i = 0..n-1:
//     p_i  = Diag[i] - Sub[i]·c'_{i-1}        (p_0 = Diag[0])
//     c'_i = Super[i] / p_i                   (i < n-1)
//     d'_i = (RHS[i] - Sub[i]·d'_{i-1}) / p_i
//  2. Back substitution: x_{n-1} = d'_{n-1}; x_i = d'_i - c'_i·x_{i+1}.
//
// The system is left untouched; one scratch vector of length n holds c'.
//
// Errors:
//   - ErrNilSystem, ErrEmptySystem, ErrDimensionMismatch for malformed input.
//   - ErrSingular (wrapped with the failing row) when !(|p_i| > eps).
//
// Complexity: O(n) time, O(n) extra memory.
func Solve(sys *System, opts ...Option) ([]float64, error) {
	if err := validateSystem(sys); err != nil {
		return nil, tridiagErrorf(opSolve, err)
	}
	o := gatherOptions(opts...)

	n := sys.Len()
	scratch := make([]float64, n)
	x := make([]float64, n)
	if err := thomas(sys.Sub, sys.Diag, sys.Super, sys.RHS, scratch, x, o.eps); err != nil {
		return nil, tridiagErrorf(opSolve, err)
	}

	return x, nil
}

// SolveInPlace solves A·x = RHS reusing sys.Super for c' and sys.RHS for the
// solution. The returned slice aliases sys.RHS and the system must be treated
// as consumed afterwards, even on error.
//
// Complexity: O(n) time, O(1) extra memory.
func SolveInPlace(sys *System, opts ...Option) ([]float64, error) {
	if err := validateSystem(sys); err != nil {
		return nil, tridiagErrorf(opSolveInPlace, err)
	}
	o := gatherOptions(opts...)

	if err := thomas(sys.Sub, sys.Diag, sys.Super, sys.RHS, sys.Super, sys.RHS, o.eps); err != nil {
		return nil, tridiagErrorf(opSolveInPlace, err)
	}

	return sys.RHS, nil
}

// thomas runs the sweep. cp may alias super and x may alias rhs: every index
// is read before it is overwritten.
func thomas(sub, diag, super, rhs, cp, x []float64, eps float64) error {
	n := len(diag)

	pivot := diag[0]
	if !(math.Abs(pivot) > eps) {
		return fmt.Errorf("row 0: pivot %g: %w", pivot, ErrSingular)
	}
	if n > 1 {
		cp[0] = super[0] / pivot
	}
	x[0] = rhs[0] / pivot

	for i := 1; i < n; i++ {
		pivot = diag[i] - sub[i]*cp[i-1]
		if !(math.Abs(pivot) > eps) {
			return fmt.Errorf("row %d: pivot %g: %w", i, pivot, ErrSingular)
		}
		if i < n-1 {
			cp[i] = super[i] / pivot
		}
		x[i] = (rhs[i] - sub[i]*x[i-1]) / pivot
	}

	for i := n - 2; i >= 0; i-- {
		x[i] -= cp[i] * x[i+1]
	}

	return nil
}
