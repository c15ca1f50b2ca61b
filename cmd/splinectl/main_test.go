package main

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/lvnum/internal/config"
	"github.com/katalvlaran/lvnum/spline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestRun_FullReport(t *testing.T) {
	code, out, stderr := runCLI(t,
		"-data", "testdata/reference.yaml",
		"-eval", "2.5,5",
		"-integrate", "-compare", "-level", "1")
	require.Equal(t, exitOK, code, stderr)

	for _, want := range []string{
		"Cubic spline (natural), 5 knots, 4 segments",
		"S_2      [2.00, 3.00]  2.000000  0.625000   -1.928571  0.803571",
		"S_1(x) = 0.500000 +1.321429(x-1.00) +1.232143(x-1.00)^2 -1.053571(x-1.00)^3",
		"S(2.5) = 1.930804\n",
		"S(5) = 0.500000  (extrapolated)",
		"Sampled 500 points on [0, 4]",
		"max 2.054704 at x = 2.180361",
		"exact    4.5357142857",
		"best: ",
		"S(x) = 1\n  x = 1.311871\n  x = 4.000000\n",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRun_DerivativeOrderAndTOML(t *testing.T) {
	code, out, stderr := runCLI(t, "-data", "testdata/reference.toml", "-eval", "2.5", "-order", "2", "-samples", "5")
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, out, "S''(2.5) = -1.446429")
	assert.Contains(t, out, "Sampled 5 points")
}

func TestRun_ClampedFlags(t *testing.T) {
	code, out, stderr := runCLI(t, "-data", "testdata/reference.yaml", "-boundary", "clamped", "-slopes", "0,0")
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, out, "Cubic spline (clamped(0, 0))")
}

func TestRun_EnvironmentDefaults(t *testing.T) {
	t.Setenv("LVNUM_BOUNDARY", "clamped")
	t.Setenv("LVNUM_SLOPES", "1,-1")
	t.Setenv("LVNUM_LOG_LEVEL", "debug")

	code, out, stderr := runCLI(t, "-data", "testdata/reference.yaml")
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, out, "Cubic spline (clamped(1, -1))")
	assert.Contains(t, stderr, "spline built")
}

func TestRun_FlagOverridesIncompleteEnvironment(t *testing.T) {
	t.Setenv("LVNUM_BOUNDARY", "clamped")

	code, out, stderr := runCLI(t, "-data", "testdata/reference.yaml", "-boundary", "natural")
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, out, "Cubic spline (natural)")

	t.Setenv("LVNUM_SLOPES", "1,-1")
	code, out, stderr = runCLI(t, "-data", "testdata/reference.yaml", "-boundary", "natural")
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, out, "Cubic spline (natural)")

	t.Setenv("LVNUM_SLOPES", "")
	code, _, stderr = runCLI(t, "-data", "testdata/reference.yaml")
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "missing boundary data")
}

func TestRun_UnknownLogLevelFallsBack(t *testing.T) {
	t.Setenv("LVNUM_LOG_LEVEL", "loud")

	code, out, stderr := runCLI(t, "-data", "testdata/reference.yaml")
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, out, "Cubic spline (natural)")
}

func TestRun_Errors(t *testing.T) {
	code, _, stderr := runCLI(t)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "-data is required")

	code, _, _ = runCLI(t, "-data", "testdata/reference.yaml", "-order", "5")
	assert.Equal(t, exitUsage, code)

	code, _, _ = runCLI(t, "-data", "testdata/reference.yaml", "-slopes", "a,b")
	assert.Equal(t, exitUsage, code)

	code, _, stderr = runCLI(t, "-data", "testdata/reference.yaml", "-boundary", "clamped")
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "missing boundary data")

	code, _, _ = runCLI(t, "-data", "testdata/nope.yaml")
	assert.Equal(t, exitError, code)
}

func TestLevelCrossings_NoneOutside(t *testing.T) {
	sp, err := spline.Build([]float64{0, 1, 2}, []float64{0, 1, 0}, spline.Natural{})
	require.NoError(t, err)

	xs, err := levelCrossings(sp, 5, config.Default().RootsOptions())
	require.NoError(t, err)
	assert.Empty(t, xs)

	xs, err = levelCrossings(sp, 0, config.Default().RootsOptions())
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2}, xs)

	xs, err = levelCrossings(sp, 1, config.Default().RootsOptions())
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, xs, "a crossing at an interior knot is reported once")
}
