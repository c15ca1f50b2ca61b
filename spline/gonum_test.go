package spline_test

import (
	"testing"

	"github.com/katalvlaran/lvnum/spline"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// crossGrid samples the interior of the irregular domain.
func crossGrid() []float64 {
	lo, hi := irregularX[0], irregularX[len(irregularX)-1]
	grid := make([]float64, 101)
	floats.Span(grid, lo, hi)

	return grid
}

// TestBuild_MatchesGonumNatural compares against gonum's natural cubic.
func TestBuild_MatchesGonumNatural(t *testing.T) {
	var ref interp.NaturalCubic
	require.NoError(t, ref.Fit(irregularX, irregularY))
	sp := mustBuild(t, irregularX, irregularY, spline.Natural{})

	grid := crossGrid()
	got, err := sp.EvalAll(grid, spline.OrderValue)
	require.NoError(t, err)
	dgot, err := sp.EvalAll(grid, spline.OrderFirst)
	require.NoError(t, err)

	want := make([]float64, len(grid))
	dwant := make([]float64, len(grid))
	for i, x := range grid {
		want[i] = ref.Predict(x)
		dwant[i] = ref.PredictDerivative(x)
	}
	require.True(t, floats.EqualApprox(want, got, 1e-9), "values diverge from gonum")
	require.True(t, floats.EqualApprox(dwant, dgot, 1e-8), "derivatives diverge from gonum")
}

// TestBuild_MatchesGonumClamped compares against gonum's clamped cubic,
// which fixes both end slopes at zero.
func TestBuild_MatchesGonumClamped(t *testing.T) {
	var ref interp.ClampedCubic
	require.NoError(t, ref.Fit(irregularX, irregularY))
	sp := mustBuild(t, irregularX, irregularY, spline.Clamped{})

	grid := crossGrid()
	got, err := sp.EvalAll(grid, spline.OrderValue)
	require.NoError(t, err)

	want := make([]float64, len(grid))
	for i, x := range grid {
		want[i] = ref.Predict(x)
	}
	require.True(t, floats.EqualApprox(want, got, 1e-9), "values diverge from gonum")
}
