package quad

import (
	"errors"
	"fmt"
)

var (
	// ErrNilFunc indicates a nil integrand.
	ErrNilFunc = errors.New("quad: nil integrand")

	// ErrBadIntervals indicates a non-positive panel count.
	ErrBadIntervals = errors.New("quad: number of intervals must be positive")

	// ErrOddIntervals indicates an odd panel count for composite Simpson.
	ErrOddIntervals = errors.New("quad: Simpson 1/3 needs an even number of intervals")

	// ErrNonFinite indicates a NaN or Inf integration limit.
	ErrNonFinite = errors.New("quad: NaN or Inf limit")

	// ErrBadOptions indicates MaxLevels < 1 or a non-positive Tol.
	ErrBadOptions = errors.New("quad: invalid options")

	// ErrNoConvergence is returned by Romberg when MaxLevels is exhausted;
	// the accompanying Result still carries the last diagonal estimate.
	ErrNoConvergence = errors.New("quad: Romberg did not converge")
)

const (
	opSimpsonComposite = "SimpsonComposite"
	opTrapezoid        = "Trapezoid"
	opRomberg          = "Romberg"
)

// quadErrorf wraps err with an operation tag. Call only with err != nil.
func quadErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
