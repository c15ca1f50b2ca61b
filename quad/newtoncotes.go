package quad

import (
	"fmt"
	"math"
)

// Simpson applies the simple 1/3 rule: (b-a)/6 · [f(a) + 4f(m) + f(b)].
func Simpson(f func(float64) float64, a, b float64) float64 {
	h := (b - a) / 2
	return h / 3 * (f(a) + 4*f(a+h) + f(b))
}

// SimpsonComposite splits [a, b] into n panels (n even) with weights
// 1, 4, 2, 4, ..., 2, 4, 1.
//
// Errors: ErrNilFunc, ErrNonFinite, ErrBadIntervals (n <= 0),
// ErrOddIntervals (n odd).
func SimpsonComposite(f func(float64) float64, a, b float64, n int) (float64, error) {
	if err := validate(f, a, b, n); err != nil {
		return 0, quadErrorf(opSimpsonComposite, err)
	}
	if n%2 != 0 {
		return 0, quadErrorf(opSimpsonComposite, fmt.Errorf("n=%d: %w", n, ErrOddIntervals))
	}

	h := (b - a) / float64(n)
	sum := f(a) + f(b)
	for k := 1; k < n; k++ {
		if k%2 == 1 {
			sum += 4 * f(a+float64(k)*h)
		} else {
			sum += 2 * f(a+float64(k)*h)
		}
	}

	return sum * h / 3, nil
}

// Trapezoid applies the composite trapezoid rule with n panels.
// Errors: ErrNilFunc, ErrNonFinite, ErrBadIntervals.
func Trapezoid(f func(float64) float64, a, b float64, n int) (float64, error) {
	if err := validate(f, a, b, n); err != nil {
		return 0, quadErrorf(opTrapezoid, err)
	}

	h := (b - a) / float64(n)
	sum := (f(a) + f(b)) / 2
	for k := 1; k < n; k++ {
		sum += f(a + float64(k)*h)
	}

	return sum * h, nil
}

func validate(f func(float64) float64, a, b float64, n int) error {
	if f == nil {
		return ErrNilFunc
	}
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return ErrNonFinite
	}
	if n <= 0 {
		return fmt.Errorf("n=%d: %w", n, ErrBadIntervals)
	}

	return nil
}
