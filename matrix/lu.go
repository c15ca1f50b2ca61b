// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// ZeroSum is the initial accumulator for substitution sums.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU.
const ZeroPivot = 0.0

// Operation tags used by matrixErrorf.
const (
	opLU    = "LU"
	opSolve = "Solve"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m itself when it is already *Dense, otherwise a *Dense copy.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	d, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			d.data[i*d.c+j] = v
		}
	}

	return d, nil
}

// LU computes the Doolittle factorization A = L*U with unit diagonal on L (no pivoting).
// Implementation:
//   - Stage 1: Validate m (not nil, square); allocate L,U; set diag(L)=1.
//   - Stage 2: For i=0..n-1, build row i of U, check its pivot, then column i of L.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (U[i,i]==0).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - Without pivoting the factorization exists only when every leading principal
//     minor is non-zero. Diagonally dominant and Vandermonde systems with distinct
//     nodes both qualify.
func LU(m Matrix) (*Dense, *Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	a, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	n := a.r
	L, _ := NewDense(n, n) // n>0 guaranteed by a
	U, _ := NewDense(n, n)
	for i := 0; i < n; i++ {
		L.data[i*n+i] = 1
	}

	var (
		i, j, k int
		sum     float64
		pivot   float64
	)
	for i = 0; i < n; i++ {
		// Row i of U for columns j >= i
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[i*n+k] * U.data[k*n+j]
			}
			U.data[i*n+j] = a.data[i*n+j] - sum
		}
		pivot = U.data[i*n+i]
		if pivot == ZeroPivot {
			return nil, nil, matrixErrorf(opLU, fmt.Errorf("pivot %d: %w", i, ErrSingular))
		}
		// Column i of L for rows j > i
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[j*n+k] * U.data[k*n+i]
			}
			L.data[j*n+i] = (a.data[j*n+i] - sum) / pivot
		}
	}

	return L, U, nil
}

// Solve returns x such that m·x = b.
// Stage 1: LU-factorize m. Stage 2: forward substitution L·y = b.
// Stage 3: back substitution U·x = y.
//
// Errors: everything LU returns, plus ErrDimensionMismatch / ErrNilMatrix for b.
// Complexity: O(n³) time dominated by LU, O(n²) memory.
func Solve(m Matrix, b []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, m.Rows()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	L, U, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	n := L.r
	y := make([]float64, n)
	var sum float64
	for i := 0; i < n; i++ {
		sum = ZeroSum
		for k := 0; k < i; k++ {
			sum += L.data[i*n+k] * y[k]
		}
		y[i] = b[i] - sum // unit diagonal
	}

	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum = ZeroSum
		for k := i + 1; k < n; k++ {
			sum += U.data[i*n+k] * x[k]
		}
		x[i] = (y[i] - sum) / U.data[i*n+i] // pivots already checked by LU
	}

	return x, nil
}
