package spline

import (
	"fmt"
	"math"
)

func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

// validateInput runs the Build checks in their documented priority and
// returns the resolved boundary.
func validateInput(knots, values []float64, bc Boundary) (Boundary, error) {
	bc, err := resolveBoundary(bc)
	if err != nil {
		return nil, err
	}
	if len(knots) != len(values) {
		return nil, fmt.Errorf("len(knots)=%d, len(values)=%d: %w", len(knots), len(values), ErrDimensionMismatch)
	}
	if len(knots) < 2 {
		return nil, fmt.Errorf("n=%d: %w", len(knots), ErrInsufficientPoints)
	}
	for i := range knots {
		if isNonFinite(knots[i]) {
			return nil, fmt.Errorf("knot %d: %w", i, ErrNonFinite)
		}
		if isNonFinite(values[i]) {
			return nil, fmt.Errorf("value %d: %w", i, ErrNonFinite)
		}
	}
	if c, ok := bc.(Clamped); ok && (isNonFinite(c.SlopeStart) || isNonFinite(c.SlopeEnd)) {
		return nil, fmt.Errorf("clamped slopes: %w", ErrNonFinite)
	}
	for i := 1; i < len(knots); i++ {
		if !(knots[i] > knots[i-1]) {
			return nil, fmt.Errorf("knot %d (%g) after %g: %w", i, knots[i], knots[i-1], ErrInvalidKnotSequence)
		}
		if math.IsInf(knots[i]-knots[i-1], 0) {
			return nil, fmt.Errorf("width between knots %d and %d overflows: %w", i-1, i, ErrNonFinite)
		}
	}

	return bc, nil
}
