// Package quad implements Newton–Cotes quadrature and Romberg integration.
//
//   - Simpson: one parabola through a, (a+b)/2, b. Exact for cubics.
//   - SimpsonComposite: n (even) panels, error O(h⁴).
//   - Trapezoid: composite trapezoid rule with n panels, error O(h²).
//   - Romberg: trapezoid refinement with Richardson extrapolation, stopping
//     when successive diagonal entries agree within Options.Tol.
//
// ⚙️ Usage:
//
//	v, err := quad.SimpsonComposite(math.Sin, 0, math.Pi, 10)
//
//	opts := quad.DefaultOptions()
//	opts.Tol = 1e-10
//	res, err := quad.Romberg(math.Exp, 0, 1, &opts)
//	fmt.Println(res.Value, res.Levels, res.Converged)
//
// Reversed limits (a > b) yield the negated integral; a == b yields zero.
package quad
