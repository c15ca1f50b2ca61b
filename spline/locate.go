package spline

import "sort"

// Locate returns the index of the segment that owns x:
//   - x <= x_0      → 0
//   - x >= x_{n-1}  → n-2 (the last segment)
//   - otherwise the greatest i with x_i <= x < x_{i+1}, clamped to [0, n-2].
//
// A guess from the mean knot spacing resolves uniform grids in O(1); anything
// else falls back to binary search, O(log n). NaN maps to the last segment.
func (s *Spline) Locate(x float64) int {
	xs := s.knots
	last := len(s.segs) - 1
	if x <= xs[0] {
		return 0
	}
	if x >= xs[last+1] {
		return last
	}

	// Guess under the assumption of uniform spacing.
	if g := int((x - xs[0]) / s.step); g >= 0 && g <= last && xs[g] <= x && x < xs[g+1] {
		return g
	}

	i := sort.Search(len(xs), func(k int) bool { return xs[k] > x }) - 1
	if i < 0 {
		i = 0
	} else if i > last {
		i = last
	}

	return i
}

// IsExtrapolated reports whether x lies outside [x_0, x_{n-1}], where results
// come from extending an end segment's cubic rather than interpolating.
// NaN is reported as extrapolated.
func (s *Spline) IsExtrapolated(x float64) bool {
	lo, hi := s.Domain()
	return !(x >= lo && x <= hi)
}
