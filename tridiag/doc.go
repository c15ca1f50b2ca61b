// Package tridiag solves tridiagonal linear systems in O(n) with the Thomas
// algorithm.
//
// A tridiagonal system keeps only three diagonals of an n×n matrix:
//
//	| d0 u0          |   | x0 |   | r0 |
//	| l1 d1 u1       |   | x1 |   | r1 |
//	|    l2 d2 u2    | · | x2 | = | r2 |
//	|       l3 d3    |   | x3 |   | r3 |
//
// System stores them as four equal-length vectors (Sub, Diag, Super, RHS);
// Sub[0] and Super[n-1] fall outside the matrix and are ignored.
//
// ⚙️ Usage:
//
//	sys := tridiag.NewSystem(n)
//	// fill sys.Sub, sys.Diag, sys.Super, sys.RHS
//	x, err := tridiag.Solve(sys)                 // inputs untouched
//	x, err = tridiag.SolveInPlace(sys)           // reuses Super/RHS as scratch
//	x, err = tridiag.Solve(sys, tridiag.WithEpsilon(1e-12))
//
// Solving:
//   - Forward elimination then back substitution, no pivoting.
//   - Any pivot p with !(|p| > eps) aborts with ErrSingular; NaN pivots are caught
//     by the same test. eps defaults to DefaultEpsilon (exact zero).
//   - Strictly diagonally dominant systems (such as spline continuity systems)
//     never produce a zero pivot.
//
// SolveDense and (*System).Dense expand the system into a matrix.Dense and run
// the generic O(n³) LU path; they exist to cross-check the fast path.
//
// Performance:
//
//   - Solve:        O(n) time, O(n) memory (solution + one scratch vector)
//   - SolveInPlace: O(n) time, O(1) memory beyond the returned vector
//   - SolveDense:   O(n³) time, O(n²) memory
package tridiag
