// Package matrix provides the dense linear-algebra primitives lvnum falls back
// on when a structured solver does not apply.
//
// What lives here:
//
//	• Dense: row-major r×c storage in a single flat slice
//	• LU: Doolittle factorization A = L·U (unit lower L, no pivoting)
//	• Solve: A·x = b through LU + forward/back substitution
//
// The package is intentionally small: tridiag uses it as the O(n³) reference
// path that the O(n) Thomas solver must agree with, and interp uses it for the
// 4×4 Vandermonde system of the fixed cubic fit.
//
// Numeric policy:
//   - No pivoting. Every kernel runs in a fixed loop order, so results are
//     bit-for-bit reproducible for identical inputs.
//   - A pivot equal to ZeroPivot yields ErrSingular; nothing panics on user input.
//
// Complexity:
//
//	LU, Solve: O(n³) time, O(n²) memory.
package matrix
