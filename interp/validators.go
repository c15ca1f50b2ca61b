package interp

import (
	"fmt"
	"math"
	"sort"
)

// validateSamples checks lengths, finiteness and node distinctness, in that
// order. extra holds optional companion vectors (derivatives) that must
// match len(xs) too.
func validateSamples(xs, ys []float64, extra ...[]float64) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("len(xs)=%d, len(ys)=%d: %w", len(xs), len(ys), ErrDimensionMismatch)
	}
	for _, e := range extra {
		if len(e) != len(xs) {
			return fmt.Errorf("companion length %d, want %d: %w", len(e), len(xs), ErrDimensionMismatch)
		}
	}
	if len(xs) == 0 {
		return ErrInsufficientPoints
	}
	for i := range xs {
		if !finite(xs[i]) || !finite(ys[i]) {
			return fmt.Errorf("sample %d: %w", i, ErrNonFinite)
		}
		for _, e := range extra {
			if !finite(e[i]) {
				return fmt.Errorf("sample %d: %w", i, ErrNonFinite)
			}
		}
	}

	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return fmt.Errorf("x=%g: %w", sorted[i], ErrDuplicateNodes)
		}
	}

	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
