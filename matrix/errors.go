// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (optionally wrapped with an operation tag)
// and tests match them via errors.Is. No kernel panics on user-triggered
// conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: " for easy grepping. Wrap with
// fmt.Errorf("ctx: %w", ErrX) when context matters; callers still use errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At/Set return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a non-square matrix passed to LU or a vector of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrRaggedRows signals that NewFromRows received rows of unequal length.
	ErrRaggedRows = errors.New("matrix: rows have unequal length")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when a zero pivot is met during LU in the
	// non-pivoting scheme.
	ErrSingular = errors.New("matrix: singular matrix")
)
