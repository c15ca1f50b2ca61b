package tridiag

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvnum/matrix"
)

// Dense expands the system matrix (not the RHS) into an n×n matrix.Dense.
// Complexity: O(n²) memory.
func (s *System) Dense() (*matrix.Dense, error) {
	if err := validateSystem(s); err != nil {
		return nil, tridiagErrorf(opDense, err)
	}
	n := s.Len()
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, tridiagErrorf(opDense, err)
	}
	for i := 0; i < n; i++ {
		_ = m.Set(i, i, s.Diag[i]) // indices are in range by construction
		if i > 0 {
			_ = m.Set(i, i-1, s.Sub[i])
		}
		if i < n-1 {
			_ = m.Set(i, i+1, s.Super[i])
		}
	}

	return m, nil
}

// SolveDense solves the system through the generic dense LU path of package
// matrix. It must agree with Solve up to rounding and exists as a reference.
//
// A zero LU pivot is reported as ErrSingular (errors.Is also matches
// matrix.ErrSingular).
//
// Complexity: O(n³) time, O(n²) memory.
func SolveDense(sys *System) ([]float64, error) {
	m, err := sys.Dense()
	if err != nil {
		return nil, tridiagErrorf(opSolveDense, err)
	}
	x, err := matrix.Solve(m, sys.RHS)
	if err != nil {
		if errors.Is(err, matrix.ErrSingular) {
			return nil, fmt.Errorf("%s: %w: %w", opSolveDense, ErrSingular, err)
		}

		return nil, tridiagErrorf(opSolveDense, err)
	}

	return x, nil
}

// MatVec computes A·x using only the three stored diagonals.
// Complexity: O(n).
func MatVec(sys *System, x []float64) ([]float64, error) {
	if err := validateSystem(sys); err != nil {
		return nil, tridiagErrorf(opMatVec, err)
	}
	if err := validateVec(sys, x); err != nil {
		return nil, tridiagErrorf(opMatVec, err)
	}

	n := sys.Len()
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		v := sys.Diag[i] * x[i]
		if i > 0 {
			v += sys.Sub[i] * x[i-1]
		}
		if i < n-1 {
			v += sys.Super[i] * x[i+1]
		}
		y[i] = v
	}

	return y, nil
}

// Residual returns A·x - RHS. A solved system yields a residual of rounding size.
// Complexity: O(n).
func Residual(sys *System, x []float64) ([]float64, error) {
	y, err := MatVec(sys, x)
	if err != nil {
		return nil, tridiagErrorf(opResidual, err)
	}
	for i := range y {
		y[i] -= sys.RHS[i]
	}

	return y, nil
}
