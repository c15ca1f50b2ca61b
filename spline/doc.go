// Package spline builds and evaluates piecewise cubic interpolating splines
// with natural or clamped boundary conditions.
//
// 🚀 What is a cubic spline?
//
//	Given knots x_0 < x_1 < … < x_{n-1} and samples y_i, the spline is a chain
//	of n-1 cubics
//
//	    S_i(x) = a_i + b_i·(x-x_i) + c_i·(x-x_i)² + d_i·(x-x_i)³,  x ∈ [x_i, x_{i+1}]
//
//	that pass through every sample and join with continuous value, slope and
//	curvature. Two extra conditions pin down the ends:
//	  • Natural: S″(x_0) = S″(x_{n-1}) = 0
//	  • Clamped: S′(x_0) = SlopeStart, S′(x_{n-1}) = SlopeEnd
//
// ✨ Key features:
//   - O(n) construction: the continuity equations form a tridiagonal system
//     solved by tridiag's Thomas sweep (WithDenseSolver switches to the O(n³)
//     dense LU reference path)
//   - O(1) segment lookup on uniform grids, O(log n) binary search otherwise
//   - value, first and second derivative, exact integral, batch evaluation
//   - immutable result: a built *Spline is safe for concurrent readers
//
// ⚙️ Usage:
//
//	sp, err := spline.Build(xs, ys, spline.Natural{})
//	if err != nil {
//	    // errors.Is(err, spline.ErrInvalidKnotSequence) …
//	}
//	y := sp.Value(1.5)
//	dy := sp.Deriv(1.5)
//	ys, err := sp.EvalAll(grid, spline.OrderSecond)
//
//	bc, err := spline.NewClamped(slopes...) // exactly two slopes
//	sp, err = spline.Build(xs, ys, bc)
//
// Extrapolation:
//
//	Points left of x_0 are evaluated with segment 0's cubic and points right of
//	x_{n-1} with the last segment's cubic. This is extrapolation, not
//	interpolation: accuracy degrades quickly away from the knots. Use
//	IsExtrapolated to flag such queries. NaN queries yield NaN.
//
// Errors (all detected by Build; evaluation never fails for finite input):
//   - ErrMissingBoundaryData, ErrDimensionMismatch, ErrInsufficientPoints,
//     ErrNonFinite, ErrInvalidKnotSequence, ErrSingularSystem.
package spline
