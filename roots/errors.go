package roots

import (
	"errors"
	"fmt"
)

var (
	// ErrNilFunc indicates a nil function argument.
	ErrNilFunc = errors.New("roots: nil function")

	// ErrBadOptions indicates a non-positive Tol or MaxIter.
	ErrBadOptions = errors.New("roots: invalid options")

	// ErrNoSignChange indicates f(a) and f(b) share a sign.
	ErrNoSignChange = errors.New("roots: f(a) and f(b) must have opposite signs")

	// ErrFlatDerivative indicates |f'(x)| fell below FlatThreshold.
	ErrFlatDerivative = errors.New("roots: derivative too close to zero")

	// ErrFlatSecant indicates |f(x_n) - f(x_{n-1})| fell below FlatThreshold.
	ErrFlatSecant = errors.New("roots: secant slope too close to zero")

	// ErrNonFinite indicates an iterate or function value became NaN or Inf.
	ErrNonFinite = errors.New("roots: iterate is NaN or Inf")

	// ErrNoConvergence indicates MaxIter steps did not meet Tol.
	ErrNoConvergence = errors.New("roots: no convergence within MaxIter")
)

const (
	opBisection  = "Bisection"
	opNewton     = "Newton"
	opSecant     = "Secant"
	opFixedPoint = "FixedPoint"
	opSteffensen = "Steffensen"
)

// rootsErrorf wraps err with an operation tag. Call only with err != nil.
func rootsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
