package interp

// Lagrange evaluates at x the unique polynomial of degree ≤ n-1 through the
// samples (xs[i], ys[i]):
//
//	P(x) = Σ ys[i] · L_i(x),   L_i(x) = Π_{j≠i} (x - xs[j]) / (xs[i] - xs[j])
//
// Errors: ErrDimensionMismatch, ErrInsufficientPoints, ErrNonFinite,
// ErrDuplicateNodes.
// Complexity: O(n²) time, O(n) memory for the distinctness check.
func Lagrange(xs, ys []float64, x float64) (float64, error) {
	if err := validateSamples(xs, ys); err != nil {
		return 0, interpErrorf(opLagrange, err)
	}

	var p float64
	for i := range xs {
		li := 1.0
		for j := range xs {
			if j != i {
				li *= (x - xs[j]) / (xs[i] - xs[j])
			}
		}
		p += ys[i] * li
	}

	return p, nil
}

// LagrangeCoefficients expands the Lagrange form into power-basis
// coefficients a_0..a_{n-1} by multiplying out each basis polynomial
// y_i·Π_{j≠i} (x - x_j)/(x_i - x_j) and summing.
//
// Errors: as Lagrange.
// Complexity: O(n³) time, O(n) memory.
func LagrangeCoefficients(xs, ys []float64) (Polynomial, error) {
	if err := validateSamples(xs, ys); err != nil {
		return nil, interpErrorf(opLagrangeCoefficients, err)
	}

	n := len(xs)
	coef := make(Polynomial, n)
	basis := make([]float64, n)
	for i := range xs {
		for k := range basis {
			basis[k] = 0
		}
		basis[0] = ys[i]
		deg := 0
		for j := range xs {
			if j == i {
				continue
			}
			d := xs[i] - xs[j]
			// multiply by (x - x_j)/d; descending k reads basis[k-1] before it changes
			for k := deg + 1; k >= 0; k-- {
				var v float64
				if k > 0 {
					v = basis[k-1] / d
				}
				if k <= deg {
					v -= basis[k] * xs[j] / d
				}
				basis[k] = v
			}
			deg++
		}
		for k, v := range basis {
			coef[k] += v
		}
	}

	return coef, nil
}
