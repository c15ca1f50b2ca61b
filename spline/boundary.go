package spline

import (
	"fmt"
	"strings"
)

// Boundary selects the two end conditions that close the continuity system.
// It is a closed sum type: Natural and Clamped are the only implementations.
type Boundary interface {
	fmt.Stringer
	isBoundary()
}

// Natural forces zero curvature at both ends: S″(x_0) = S″(x_{n-1}) = 0.
type Natural struct{}

// Clamped forces the end slopes: S′(x_0) = SlopeStart, S′(x_{n-1}) = SlopeEnd.
type Clamped struct {
	SlopeStart float64
	SlopeEnd   float64
}

func (Natural) isBoundary() {}
func (Clamped) isBoundary() {}

// String implements fmt.Stringer.
func (Natural) String() string { return "natural" }

// String implements fmt.Stringer.
func (c Clamped) String() string {
	return fmt.Sprintf("clamped(%g, %g)", c.SlopeStart, c.SlopeEnd)
}

// Boundary names accepted by ParseBoundary.
const (
	NameNatural = "natural"
	NameClamped = "clamped"
)

// NewClamped builds a Clamped boundary from a loose list of end slopes, as
// read from files or flags.
//
// Errors:
//   - ErrMissingBoundaryData when fewer than two slopes are given.
//   - ErrDimensionMismatch when more than two are given.
func NewClamped(slopes ...float64) (Clamped, error) {
	switch {
	case len(slopes) < 2:
		return Clamped{}, splineErrorf(opNewClamped,
			fmt.Errorf("got %d of 2 slopes: %w", len(slopes), ErrMissingBoundaryData))
	case len(slopes) > 2:
		return Clamped{}, splineErrorf(opNewClamped,
			fmt.Errorf("got %d slopes, want 2: %w", len(slopes), ErrDimensionMismatch))
	}

	return Clamped{SlopeStart: slopes[0], SlopeEnd: slopes[1]}, nil
}

// ParseBoundary maps a case-insensitive name onto a Boundary; an empty name
// selects Natural. Slopes are required for "clamped" and must be absent for
// "natural".
func ParseBoundary(name string, slopes []float64) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameNatural, "":
		if len(slopes) != 0 {
			return nil, splineErrorf(opParseBoundary,
				fmt.Errorf("natural boundary takes no slopes, got %d: %w", len(slopes), ErrDimensionMismatch))
		}

		return Natural{}, nil
	case NameClamped:
		c, err := NewClamped(slopes...)
		if err != nil {
			return nil, splineErrorf(opParseBoundary, err)
		}

		return c, nil
	default:
		return nil, splineErrorf(opParseBoundary, fmt.Errorf("%q: %w", name, ErrUnknownBoundary))
	}
}

// resolveBoundary normalizes pointer variants and rejects nil.
func resolveBoundary(bc Boundary) (Boundary, error) {
	switch v := bc.(type) {
	case nil:
		return nil, ErrMissingBoundaryData
	case Natural, Clamped:
		return v, nil
	case *Natural:
		if v == nil {
			return nil, ErrMissingBoundaryData
		}

		return *v, nil
	case *Clamped:
		if v == nil {
			return nil, ErrMissingBoundaryData
		}

		return *v, nil
	default:
		return nil, ErrUnknownBoundary // unreachable: the interface is sealed
	}
}
