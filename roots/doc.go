// Package roots finds zeros of scalar functions and fixed points of
// iteration maps.
//
// Bracketing:
//   - Bisection halves [a, b] while f changes sign; linear convergence,
//     always succeeds once the bracket is valid.
//
// Open methods (need a good starting point):
//   - Newton:     x' = x - f(x)/f'(x), quadratic convergence.
//   - Secant:     Newton with a finite-difference slope, order ≈ 1.618.
//   - FixedPoint: x' = g(x), linear when |g'| < 1 near the fixed point.
//   - Steffensen: Aitken Δ² acceleration of FixedPoint, quadratic.
//
// Every method returns a Result holding the root estimate, one Iteration
// record per step, and whether the tolerance was met. A method that runs
// out of iterations returns its last iterate with ErrNoConvergence.
//
// ⚙️ Usage:
//
//	res, err := roots.Newton(f, df, 1.0, nil) // DefaultOptions
//	if err != nil { ... }
//	fmt.Println(res.Root, len(res.Iterations))
package roots
