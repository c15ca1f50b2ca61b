// Package interp provides global polynomial interpolants that complement the
// piecewise splines in package spline.
//
// Every routine passes exactly through the given samples:
//
//   - Lagrange evaluates the interpolating polynomial directly from the basis
//     polynomials, O(n²) per query; LagrangeCoefficients expands it into a
//     power-basis Polynomial.
//   - Newton builds the divided-difference table once, O(n²), and evaluates
//     the nested form in O(n).
//   - Hermite matches values and first derivatives (doubled nodes), giving a
//     polynomial of degree 2n-1.
//   - FitCubic solves the 4×4 Vandermonde system for the unique cubic through
//     four points.
//
// ⚙️ Usage:
//
//	y, err := interp.Lagrange(xs, ys, 2.5)
//
//	nw, err := interp.NewNewton(xs, ys)
//	y = nw.Eval(2.5)
//
//	p, err := interp.FitCubic([]float64{0, 1, 2, 3}, []float64{1, 2, 0, 4})
//	fmt.Println(p) // P(x) = 1.000000 +5.500000x -6.000000x^2 +1.500000x^3
//
// High-degree polynomials oscillate between equally spaced nodes (Runge's
// phenomenon); prefer spline.Build for more than a handful of samples.
//
// Nodes need not be sorted but must be pairwise distinct.
package interp
