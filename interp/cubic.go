package interp

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvnum/matrix"
)

// Cubic holds power-basis coefficients: P(x) = C[0] + C[1]x + C[2]x² + C[3]x³.
type Cubic [4]float64

// FitCubic returns the unique cubic through exactly four samples by solving
// the Vandermonde system V·a = y with matrix.Solve.
//
// Errors: ErrDimensionMismatch, ErrNeedFourPoints, ErrNonFinite,
// ErrDuplicateNodes (a singular Vandermonde matrix maps here too).
func FitCubic(xs, ys []float64) (Cubic, error) {
	if len(xs) != len(ys) {
		return Cubic{}, interpErrorf(opFitCubic,
			fmt.Errorf("len(xs)=%d, len(ys)=%d: %w", len(xs), len(ys), ErrDimensionMismatch))
	}
	if len(xs) != 4 {
		return Cubic{}, interpErrorf(opFitCubic, fmt.Errorf("got %d: %w", len(xs), ErrNeedFourPoints))
	}
	if err := validateSamples(xs, ys); err != nil {
		return Cubic{}, interpErrorf(opFitCubic, err)
	}

	rows := make([][]float64, 4)
	for i, x := range xs {
		rows[i] = []float64{1, x, x * x, x * x * x}
	}
	v, err := matrix.NewFromRows(rows)
	if err != nil {
		return Cubic{}, interpErrorf(opFitCubic, err)
	}
	a, err := matrix.Solve(v, ys)
	if errors.Is(err, matrix.ErrSingular) {
		return Cubic{}, fmt.Errorf("%s: %w: %w", opFitCubic, ErrDuplicateNodes, err)
	}
	if err != nil {
		return Cubic{}, interpErrorf(opFitCubic, err)
	}

	return Cubic{a[0], a[1], a[2], a[3]}, nil
}

// Eval returns P(x).
func (c Cubic) Eval(x float64) float64 { return c[0] + x*(c[1]+x*(c[2]+x*c[3])) }

// Deriv returns P'(x).
func (c Cubic) Deriv(x float64) float64 { return c[1] + x*(2*c[2]+3*c[3]*x) }

// Deriv2 returns P''(x).
func (c Cubic) Deriv2(x float64) float64 { return 2*c[2] + 6*c[3]*x }

// String renders the power form, e.g. "P(x) = 1.000000 +5.500000x -6.000000x^2 +1.500000x^3".
func (c Cubic) String() string {
	return fmt.Sprintf("P(x) = %.6f %+.6fx %+.6fx^2 %+.6fx^3", c[0], c[1], c[2], c[3])
}
