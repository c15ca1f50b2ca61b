// Package lvnum is a small numerical toolkit centred on cubic spline
// interpolation: fit a smooth piecewise cubic through sampled points, then
// evaluate, differentiate and integrate it.
//
// 🚀 What is in the box?
//
//	• tridiag: O(n) Thomas solver for tridiagonal systems
//	• matrix: dense matrices and Doolittle LU, the O(n³) reference path
//	• spline: natural and clamped cubic splines: build, evaluate, S', S'',
//	  exact integrals, coefficient tables
//	• interp: Lagrange, Newton divided differences, Hermite, 4-point cubic
//	• quad: Simpson, trapezoid and Romberg quadrature
//	• roots: bisection, Newton, secant, fixed point, Steffensen
//	• compare: leave-one-out ranking of interpolation methods
//
// Everything is pure Go, deterministic and free of shared mutable state: a
// built spline can be evaluated from any number of goroutines.
//
// Quick example:
//
//	sp, err := spline.Build(
//		[]float64{0, 1, 2, 3, 4},
//		[]float64{0, 0.5, 2.0, 1.5, 1.0},
//		spline.Natural{},
//	)
//	if err != nil {
//		// ErrInvalidKnotSequence, ErrMissingBoundaryData, ...
//	}
//	y := sp.Value(2.5)   // 1.930804
//	dy := sp.Deriv(2.5)  // -0.700893
//	area := sp.Integral(0, 4)
//
// The splinectl command (cmd/splinectl) wraps all of this for datasets
// stored as YAML, TOML or plain columns.
package lvnum
