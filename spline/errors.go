package spline

import (
	"errors"
	"fmt"
)

// Validation priority inside Build (enforced in tests):
// missing boundary -> length mismatch -> too few points -> NaN/Inf
// -> knot order -> overflowing system -> singular solve -> overflowing
// coefficients.

var (
	// ErrInsufficientPoints indicates fewer than two knots.
	ErrInsufficientPoints = errors.New("spline: at least two knots are required")

	// ErrInvalidKnotSequence indicates knots that are not strictly increasing
	// (duplicates included).
	ErrInvalidKnotSequence = errors.New("spline: knots must be strictly increasing")

	// ErrDimensionMismatch indicates knots, values, slopes or an output buffer
	// with incompatible lengths.
	ErrDimensionMismatch = errors.New("spline: dimension mismatch")

	// ErrMissingBoundaryData indicates a nil boundary or a clamped boundary
	// built from fewer than two slopes.
	ErrMissingBoundaryData = errors.New("spline: missing boundary data")

	// ErrSingularSystem indicates a degenerate pivot while solving the
	// continuity system. It also matches the solver's own sentinel.
	ErrSingularSystem = errors.New("spline: singular continuity system")

	// ErrNonFinite indicates NaN or ±Inf among knots, values or slopes, or
	// finite input whose continuity system or coefficients overflow.
	ErrNonFinite = errors.New("spline: NaN or Inf in input")

	// ErrInvalidOrder indicates a derivative order outside {0, 1, 2}.
	ErrInvalidOrder = errors.New("spline: derivative order must be 0, 1 or 2")

	// ErrUnknownBoundary indicates a boundary name ParseBoundary does not know.
	ErrUnknownBoundary = errors.New("spline: unknown boundary condition")

	// ErrNilSpline indicates a nil *Spline passed to a package function.
	ErrNilSpline = errors.New("spline: nil spline")

	// ErrOutOfRange indicates a segment index outside [0, Len()).
	ErrOutOfRange = errors.New("spline: segment index out of range")
)

// Operation tags.
const (
	opBuild         = "Build"
	opNewClamped    = "NewClamped"
	opParseBoundary = "ParseBoundary"
	opEval          = "Eval"
	opEvalAll       = "EvalAll"
	opEvaluate      = "Evaluate"
	opSegment       = "Segment"
	opWriteTable    = "WriteTable"
)

// splineErrorf wraps err with an operation tag. Call only with err != nil.
func splineErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
