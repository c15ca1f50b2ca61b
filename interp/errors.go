package interp

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientPoints indicates an empty sample set.
	ErrInsufficientPoints = errors.New("interp: at least one sample is required")

	// ErrDimensionMismatch indicates xs, ys (and dys) differ in length.
	ErrDimensionMismatch = errors.New("interp: dimension mismatch")

	// ErrDuplicateNodes indicates two samples share an abscissa.
	ErrDuplicateNodes = errors.New("interp: nodes must be distinct")

	// ErrNeedFourPoints is returned by FitCubic for any sample count but four.
	ErrNeedFourPoints = errors.New("interp: cubic fit needs exactly four points")

	// ErrNonFinite indicates a NaN or Inf sample.
	ErrNonFinite = errors.New("interp: NaN or Inf in input")
)

const (
	opLagrange             = "Lagrange"
	opLagrangeCoefficients = "LagrangeCoefficients"
	opNewNewton            = "NewNewton"
	opHermite              = "NewHermite"
	opFitCubic             = "FitCubic"
)

// interpErrorf wraps err with an operation tag. Call only with err != nil.
func interpErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
