package tridiag

import (
	"errors"
	"fmt"
)

var (
	// ErrNilSystem indicates that a nil *System was passed in.
	ErrNilSystem = errors.New("tridiag: nil system")

	// ErrEmptySystem indicates a system with zero unknowns.
	ErrEmptySystem = errors.New("tridiag: system has no unknowns")

	// ErrDimensionMismatch indicates Sub, Diag, Super, RHS or a vector argument
	// do not share the same length.
	ErrDimensionMismatch = errors.New("tridiag: dimension mismatch")

	// ErrSingular is returned when elimination meets a pivot that is zero, NaN,
	// or not larger than the configured epsilon in magnitude.
	ErrSingular = errors.New("tridiag: singular system")
)

// Operation tags.
const (
	opSolve        = "Solve"
	opSolveInPlace = "SolveInPlace"
	opSolveDense   = "SolveDense"
	opDense        = "Dense"
	opMatVec       = "MatVec"
	opResidual     = "Residual"
)

// tridiagErrorf wraps err with an operation tag. Call only with err != nil.
func tridiagErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
