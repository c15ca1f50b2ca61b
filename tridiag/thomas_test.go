package tridiag_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/tridiag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// poisson builds the classic [-1 2 -1] system of order n with a known solution
// x_i = i+1, returning the system and that solution.
func poisson(n int) (*tridiag.System, []float64) {
	sys := tridiag.NewSystem(n)
	want := make([]float64, n)
	for i := 0; i < n; i++ {
		sys.Sub[i], sys.Diag[i], sys.Super[i] = -1, 2, -1
		want[i] = float64(i + 1)
	}
	rhs, _ := tridiag.MatVec(sys, want)
	copy(sys.RHS, rhs)

	return sys, want
}

// TestSolve_Validation covers nil, empty and ragged systems.
func TestSolve_Validation(t *testing.T) {
	_, err := tridiag.Solve(nil)
	assert.ErrorIs(t, err, tridiag.ErrNilSystem)

	_, err = tridiag.Solve(tridiag.NewSystem(0))
	assert.ErrorIs(t, err, tridiag.ErrEmptySystem)

	sys := tridiag.NewSystem(3)
	sys.RHS = sys.RHS[:2]
	_, err = tridiag.Solve(sys)
	assert.ErrorIs(t, err, tridiag.ErrDimensionMismatch)
}

// TestSolve_SingleUnknown solves d0·x0 = r0.
func TestSolve_SingleUnknown(t *testing.T) {
	sys := tridiag.NewSystem(1)
	sys.Diag[0], sys.RHS[0] = 4, 2
	sys.Sub[0], sys.Super[0] = 100, 100 // outside the matrix, must be ignored

	x, err := tridiag.Solve(sys)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5}, x)
}

// TestSolve_KnownSolution recovers x_i = i+1 and leaves the input untouched.
func TestSolve_KnownSolution(t *testing.T) {
	sys, want := poisson(8)
	before := &tridiag.System{
		Sub:   append([]float64(nil), sys.Sub...),
		Diag:  append([]float64(nil), sys.Diag...),
		Super: append([]float64(nil), sys.Super...),
		RHS:   append([]float64(nil), sys.RHS...),
	}

	x, err := tridiag.Solve(sys)
	require.NoError(t, err)
	assert.InDeltaSlice(t, want, x, 1e-10)
	assert.Equal(t, before, sys, "Solve must not mutate its input")

	res, err := tridiag.Residual(sys, x)
	require.NoError(t, err)
	for i, r := range res {
		assert.InDelta(t, 0, r, 1e-10, "residual row %d", i)
	}
}

// TestSolveInPlace_MatchesSolve confirms both entry points agree bitwise and
// that the in-place result aliases the RHS vector.
func TestSolveInPlace_MatchesSolve(t *testing.T) {
	sys, _ := poisson(16)
	ref, err := tridiag.Solve(sys)
	require.NoError(t, err)

	x, err := tridiag.SolveInPlace(sys)
	require.NoError(t, err)
	assert.Equal(t, ref, x)
	assert.Same(t, &sys.RHS[0], &x[0])
}

// TestSolve_Singular reports zero, NaN and below-epsilon pivots.
func TestSolve_Singular(t *testing.T) {
	sys := tridiag.NewSystem(2)
	sys.Diag[0], sys.Diag[1] = 0, 1
	_, err := tridiag.Solve(sys)
	assert.ErrorIs(t, err, tridiag.ErrSingular)

	// second pivot: 1 - 1·(1/1) = 0
	sys = tridiag.NewSystem(2)
	sys.Diag[0], sys.Super[0] = 1, 1
	sys.Sub[1], sys.Diag[1] = 1, 1
	_, err = tridiag.Solve(sys)
	assert.ErrorIs(t, err, tridiag.ErrSingular)

	sys = tridiag.NewSystem(1)
	sys.Diag[0] = math.NaN()
	_, err = tridiag.Solve(sys)
	assert.ErrorIs(t, err, tridiag.ErrSingular)

	sys = tridiag.NewSystem(1)
	sys.Diag[0], sys.RHS[0] = 1e-9, 1
	_, err = tridiag.Solve(sys)
	assert.NoError(t, err, "default epsilon only rejects exact zero")
	_, err = tridiag.Solve(sys, tridiag.WithEpsilon(1e-6))
	assert.ErrorIs(t, err, tridiag.ErrSingular)
}

// TestWithEpsilon_Panics guards against nonsensical option values.
func TestWithEpsilon_Panics(t *testing.T) {
	assert.Panics(t, func() { tridiag.WithEpsilon(-1) })
	assert.Panics(t, func() { tridiag.WithEpsilon(math.NaN()) })
	assert.Panics(t, func() { tridiag.WithEpsilon(math.Inf(1)) })
	assert.NotPanics(t, func() { tridiag.WithEpsilon(0) })
}

// TestSolve_MatchesDense compares the Thomas sweep with the dense LU path
// on a non-symmetric, diagonally dominant system.
func TestSolve_MatchesDense(t *testing.T) {
	n := 12
	sys := tridiag.NewSystem(n)
	for i := 0; i < n; i++ {
		sys.Sub[i] = 0.5 + float64(i%3)
		sys.Super[i] = 1.25 - 0.1*float64(i%4)
		sys.Diag[i] = 5 + float64(i)
		sys.RHS[i] = math.Sin(float64(i))
	}

	fast, err := tridiag.Solve(sys)
	require.NoError(t, err)
	slow, err := tridiag.SolveDense(sys)
	require.NoError(t, err)
	assert.InDeltaSlice(t, slow, fast, 1e-12)
}

// TestDense_Layout checks the expanded matrix places each diagonal correctly.
func TestDense_Layout(t *testing.T) {
	sys := tridiag.NewSystem(3)
	copy(sys.Sub, []float64{9, 1, 2})
	copy(sys.Diag, []float64{3, 4, 5})
	copy(sys.Super, []float64{6, 7, 9})

	m, err := sys.Dense()
	require.NoError(t, err)
	want := [][]float64{{3, 6, 0}, {1, 4, 7}, {0, 2, 5}}
	for i, row := range want {
		for j, w := range row {
			v, err := m.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, w, v, "A[%d,%d]", i, j)
		}
	}
}

// TestSolveDense_Singular maps the dense sentinel onto tridiag.ErrSingular.
func TestSolveDense_Singular(t *testing.T) {
	sys := tridiag.NewSystem(2)
	sys.Diag[1] = 1
	_, err := tridiag.SolveDense(sys)
	assert.ErrorIs(t, err, tridiag.ErrSingular)
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

// TestMatVec_Mismatch rejects vectors of the wrong order.
func TestMatVec_Mismatch(t *testing.T) {
	sys := tridiag.NewSystem(3)
	_, err := tridiag.MatVec(sys, []float64{1, 2})
	assert.ErrorIs(t, err, tridiag.ErrDimensionMismatch)
}
