package compare

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvnum/interp"
	"github.com/katalvlaran/lvnum/spline"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Method names, in tie-break order.
const (
	MethodLagrange = "lagrange"
	MethodNewton   = "newton"
	MethodSpline   = "spline"
)

// Methods lists every compared method in tie-break order.
var Methods = []string{MethodLagrange, MethodNewton, MethodSpline}

var (
	// ErrInsufficientPoints indicates fewer than three samples; a natural
	// spline needs two knots after one is held out.
	ErrInsufficientPoints = errors.New("compare: at least three samples are required")

	// ErrDimensionMismatch indicates len(xs) != len(ys).
	ErrDimensionMismatch = errors.New("compare: dimension mismatch")
)

const opLeaveOneOut = "LeaveOneOut"

// Score holds one method's per-sample absolute errors and their mean.
type Score struct {
	Method string
	Errors []float64 // Errors[i] = |y_i - prediction with sample i held out|
	MAE    float64
}

// Report is the outcome of LeaveOneOut.
type Report struct {
	Scores []Score // in Methods order
	Best   string
}

// Score returns the entry for method, or false.
func (r Report) Score(method string) (Score, bool) {
	for _, s := range r.Scores {
		if s.Method == method {
			return s, true
		}
	}

	return Score{}, false
}

// predictor fits on (xs, ys) and predicts at x.
type predictor func(xs, ys []float64, x float64) (float64, error)

func predictors() []predictor {
	return []predictor{
		interp.Lagrange,
		func(xs, ys []float64, x float64) (float64, error) {
			nw, err := interp.NewNewton(xs, ys)
			if err != nil {
				return 0, err
			}

			return nw.Eval(x), nil
		},
		func(xs, ys []float64, x float64) (float64, error) {
			sp, err := spline.Build(xs, ys, spline.Natural{})
			if err != nil {
				return 0, err
			}

			return sp.Value(x), nil
		},
	}
}

// LeaveOneOut scores Lagrange, Newton and the natural cubic spline.
// xs must be strictly increasing (the spline requirement).
//
// Errors: ErrDimensionMismatch, ErrInsufficientPoints, and any error from
// the underlying constructors (e.g. spline.ErrInvalidKnotSequence).
// Complexity: O(n³) for the polynomial methods, O(n²) for the spline.
func LeaveOneOut(xs, ys []float64) (Report, error) {
	if len(xs) != len(ys) {
		return Report{}, fmt.Errorf("%s: len(xs)=%d, len(ys)=%d: %w",
			opLeaveOneOut, len(xs), len(ys), ErrDimensionMismatch)
	}
	n := len(xs)
	if n < 3 {
		return Report{}, fmt.Errorf("%s: n=%d: %w", opLeaveOneOut, n, ErrInsufficientPoints)
	}

	preds := predictors()
	scores := make([]Score, len(Methods))
	for m := range scores {
		scores[m] = Score{Method: Methods[m], Errors: make([]float64, n)}
	}

	trainX := make([]float64, n-1)
	trainY := make([]float64, n-1)
	for i := 0; i < n; i++ {
		copy(trainX, xs[:i])
		copy(trainX[i:], xs[i+1:])
		copy(trainY, ys[:i])
		copy(trainY[i:], ys[i+1:])

		for m, predict := range preds {
			y, err := predict(trainX, trainY, xs[i])
			if err != nil {
				return Report{}, fmt.Errorf("%s: %s without sample %d: %w", opLeaveOneOut, Methods[m], i, err)
			}
			scores[m].Errors[i] = math.Abs(ys[i] - y)
		}
	}

	maes := make([]float64, len(scores))
	for m := range scores {
		scores[m].MAE = stat.Mean(scores[m].Errors, nil)
		maes[m] = scores[m].MAE
	}

	return Report{Scores: scores, Best: Methods[floats.MinIdx(maes)]}, nil
}
