package spline_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/katalvlaran/lvnum/spline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWriteTable pins the exact aligned table for the reference dataset.
func TestWriteTable(t *testing.T) {
	sp := mustBuild(t, scenarioX, scenarioY, spline.Natural{})

	var buf bytes.Buffer
	require.NoError(t, spline.WriteTable(&buf, sp))

	want := "" +
		"segment  interval      a         b          c          d\n" +
		"S_0      [0.00, 1.00]  0.000000  0.089286   0.000000   0.410714\n" +
		"S_1      [1.00, 2.00]  0.500000  1.321429   1.232143   -1.053571\n" +
		"S_2      [2.00, 3.00]  2.000000  0.625000   -1.928571  0.803571\n" +
		"S_3      [3.00, 4.00]  1.500000  -0.821429  0.482143   -0.160714\n"
	assert.Equal(t, want, buf.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

// TestWriteTable_Errors covers nil input and a failing writer.
func TestWriteTable_Errors(t *testing.T) {
	assert.ErrorIs(t, spline.WriteTable(&bytes.Buffer{}, nil), spline.ErrNilSpline)

	sp := mustBuild(t, scenarioX, scenarioY, spline.Natural{})
	assert.ErrorContains(t, spline.WriteTable(failWriter{}, sp), "disk full")
}

// TestEquations renders every segment, including negative origins.
func TestEquations(t *testing.T) {
	sp := mustBuild(t, scenarioX, scenarioY, spline.Natural{})
	eqs := spline.Equations(sp)
	require.Len(t, eqs, 4)
	assert.Equal(t, "S_0(x) = 0.000000 +0.089286(x-0.00) +0.000000(x-0.00)^2 +0.410714(x-0.00)^3", eqs[0])
	assert.Equal(t, "S_1(x) = 0.500000 +1.321429(x-1.00) +1.232143(x-1.00)^2 -1.053571(x-1.00)^3", eqs[1])

	neg := mustBuild(t, []float64{-1.5, 0}, []float64{0, 3}, spline.Natural{})
	assert.Equal(t, "S_0(x) = 0.000000 +2.000000(x+1.50) +0.000000(x+1.50)^2 +0.000000(x+1.50)^3", spline.Equations(neg)[0])

	assert.Nil(t, spline.Equations(nil))
}
