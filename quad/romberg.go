package quad

import (
	"fmt"
	"math"
)

// Defaults for Romberg.
const (
	DefaultMaxLevels = 10
	DefaultTol       = 1e-8
)

// Options configures Romberg.
//
//   - MaxLevels: number of trapezoid refinements (rows of the table); level i
//     uses 2^i panels.
//   - Tol: stop once |R(i,i) - R(i-1,i-1)| < Tol.
type Options struct {
	MaxLevels int
	Tol       float64
}

// DefaultOptions returns Options{MaxLevels: 10, Tol: 1e-8}.
func DefaultOptions() Options {
	return Options{MaxLevels: DefaultMaxLevels, Tol: DefaultTol}
}

// Result is the outcome of a Romberg run.
type Result struct {
	Value     float64     // R(L-1, L-1) for the last completed level L-1
	Table     [][]float64 // lower-triangular: Table[i] has i+1 entries
	Levels    int         // rows computed
	Converged bool
}

// Romberg integrates f over [a, b]. The first column holds trapezoid
// estimates with 1, 2, 4, ... panels, each reusing the previous row:
//
//	R(i,0) = R(i-1,0)/2 + h_i · Σ_{k odd} f(a + k·h_i)
//	R(i,j) = R(i,j-1) + (R(i,j-1) - R(i-1,j-1)) / (4^j - 1)
//
// A nil opts selects DefaultOptions. When MaxLevels is exhausted the
// Result still holds the last diagonal value and ErrNoConvergence is
// returned alongside it.
//
// Errors: ErrNilFunc, ErrNonFinite, ErrBadOptions, ErrNoConvergence.
// Complexity: 2^(L-1)+1 evaluations of f and O(L²) memory for L levels.
func Romberg(f func(float64) float64, a, b float64, opts *Options) (Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if f == nil {
		return Result{}, quadErrorf(opRomberg, ErrNilFunc)
	}
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return Result{}, quadErrorf(opRomberg, ErrNonFinite)
	}
	if o.MaxLevels < 1 || !(o.Tol > 0) {
		return Result{}, quadErrorf(opRomberg,
			fmt.Errorf("MaxLevels=%d, Tol=%g: %w", o.MaxLevels, o.Tol, ErrBadOptions))
	}

	h := b - a
	table := make([][]float64, 1, o.MaxLevels)
	table[0] = []float64{h * (f(a) + f(b)) / 2}

	for i := 1; i < o.MaxLevels; i++ {
		h /= 2
		var sum float64
		for k := 1; k < 1<<i; k += 2 {
			sum += f(a + float64(k)*h)
		}

		prev := table[i-1]
		row := make([]float64, i+1)
		row[0] = prev[0]/2 + h*sum
		pow4 := 1.0
		for j := 1; j <= i; j++ {
			pow4 *= 4
			row[j] = row[j-1] + (row[j-1]-prev[j-1])/(pow4-1)
		}
		table = append(table, row)

		if math.Abs(row[i]-prev[i-1]) < o.Tol {
			return Result{Value: row[i], Table: table, Levels: i + 1, Converged: true}, nil
		}
	}

	last := len(table) - 1
	res := Result{Value: table[last][last], Table: table, Levels: len(table)}

	return res, quadErrorf(opRomberg, fmt.Errorf("%d levels: %w", o.MaxLevels, ErrNoConvergence))
}
