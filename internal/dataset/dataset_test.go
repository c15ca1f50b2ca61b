package dataset_test

import (
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvnum/internal/dataset"
	"github.com/katalvlaran/lvnum/spline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	refX = []float64{0, 1, 2, 3, 4}
	refY = []float64{0, 0.5, 2.0, 1.5, 1.0}
)

func testdata(name string) string { return filepath.Join("testdata", name) }

func TestFormatOf(t *testing.T) {
	assert.Equal(t, dataset.FormatYAML, dataset.FormatOf("a.YML"))
	assert.Equal(t, dataset.FormatTOML, dataset.FormatOf("dir/b.toml"))
	assert.Equal(t, dataset.FormatColumns, dataset.FormatOf("c.dat"))
	assert.Equal(t, dataset.FormatUnknown, dataset.FormatOf("d.json"))
	assert.Equal(t, "columns", dataset.FormatColumns.String())
}

func TestLoad_YAML(t *testing.T) {
	ds, err := dataset.Load(testdata("temperature.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "temperature", ds.Name)
	assert.Len(t, ds.X, 16)
	assert.Len(t, ds.Y, 16)
	assert.Equal(t, 0.024076, ds.X[0])
	assert.Equal(t, 16.346980, ds.Y[15])

	bc, err := ds.BoundaryCondition()
	require.NoError(t, err)
	assert.Equal(t, spline.Natural{}, bc)
}

func TestLoad_YAMLCoercesStrings(t *testing.T) {
	ds, err := dataset.Load(testdata("clamped.yaml"))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 3}, ds.X)
	assert.Equal(t, []float64{0, 1, 0, 1}, ds.Y)

	bc, err := ds.BoundaryCondition()
	require.NoError(t, err)
	assert.Equal(t, spline.Clamped{SlopeStart: 1, SlopeEnd: -1}, bc)
}

func TestLoad_TOML(t *testing.T) {
	ds, err := dataset.Load(testdata("reference.toml"))
	require.NoError(t, err)
	assert.Equal(t, "reference", ds.Name)
	assert.Equal(t, refX, ds.X)
	assert.Equal(t, refY, ds.Y)
}

func TestLoad_Columns(t *testing.T) {
	ds, err := dataset.Load(testdata("reference.dat"))
	require.NoError(t, err)
	assert.Equal(t, "reference", ds.Name)
	assert.Equal(t, refX, ds.X)
	assert.Equal(t, refY, ds.Y)
}

func TestLoad_Errors(t *testing.T) {
	_, err := dataset.Load(testdata("bad.yaml"))
	assert.ErrorIs(t, err, dataset.ErrInvalidDataset)

	_, err = dataset.Load("points.json")
	assert.ErrorIs(t, err, dataset.ErrUnsupportedFormat)

	_, err = dataset.Load(testdata("missing.yaml"))
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	_, err := dataset.Decode([]byte("x: [1, 2]\ny: [1]\n"), dataset.FormatYAML)
	assert.ErrorIs(t, err, dataset.ErrInvalidDataset)

	_, err = dataset.Decode([]byte("x = [1]\ny = [1]\n"), dataset.FormatTOML)
	assert.ErrorIs(t, err, dataset.ErrInvalidDataset)

	_, err = dataset.Decode([]byte("1 2\n"), dataset.FormatColumns)
	assert.ErrorIs(t, err, dataset.ErrUnsupportedFormat)

	_, err = dataset.Decode([]byte("x = [1, 2"), dataset.FormatTOML)
	assert.Error(t, err)

	ds, err := dataset.Decode([]byte("x: [1, 2]\ny: [3, 4]\nboundary: clamped\nslopes: [0]\n"), dataset.FormatYAML)
	require.NoError(t, err)
	_, err = ds.BoundaryCondition()
	assert.ErrorIs(t, err, spline.ErrMissingBoundaryData)
}
