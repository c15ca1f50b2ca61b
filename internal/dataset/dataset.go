// Package dataset loads interpolation samples from YAML, TOML or
// whitespace-separated column files.
//
// YAML and TOML documents share one schema:
//
//	name: temperature
//	x: [0.024076, 0.215298, ...]
//	y: [19.935694, 20.085081, ...]
//	boundary: clamped   # optional, "natural" when absent
//	slopes: [0.5, -1]   # clamped only
//
// Numbers may be written as strings ("1.5"); they are coerced with
// spf13/cast. Column files (.dat, .txt, .tsv) hold x in column 0 and y in
// column 1.
package dataset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/katalvlaran/lvnum/spline"
	"github.com/pelletier/go-toml/v2"
	"github.com/phil-mansfield/table"
	"github.com/spf13/cast"
)

// Format identifies an on-disk layout.
type Format int

const (
	FormatUnknown Format = iota
	FormatYAML
	FormatTOML
	FormatColumns
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	case FormatColumns:
		return "columns"
	default:
		return "unknown"
	}
}

var (
	// ErrUnsupportedFormat indicates an extension or format Decode cannot read.
	ErrUnsupportedFormat = errors.New("dataset: unsupported format")

	// ErrInvalidDataset indicates mismatched lengths, too few samples or an
	// unparsable number.
	ErrInvalidDataset = errors.New("dataset: invalid dataset")
)

// Dataset is a named set of samples with an optional boundary choice.
type Dataset struct {
	Name     string
	X, Y     []float64
	Boundary string
	Slopes   []float64
}

// document is the YAML/TOML wire shape.
type document struct {
	Name     string `yaml:"name" toml:"name"`
	X        []any  `yaml:"x" toml:"x"`
	Y        []any  `yaml:"y" toml:"y"`
	Boundary string `yaml:"boundary" toml:"boundary"`
	Slopes   []any  `yaml:"slopes" toml:"slopes"`
}

// FormatOf picks a format from the file extension.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	case ".dat", ".txt", ".tsv":
		return FormatColumns
	default:
		return FormatUnknown
	}
}

// Load reads and validates the dataset at path. Column files are named
// after the file's base name.
func Load(path string) (*Dataset, error) {
	format := FormatOf(path)
	switch format {
	case FormatYAML, FormatTOML:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("dataset: %w", err)
		}

		return Decode(data, format)
	case FormatColumns:
		cols, err := table.ReadTable(path, []int{0, 1}, nil)
		if err != nil {
			return nil, fmt.Errorf("dataset: read %s: %w", path, err)
		}
		ds := &Dataset{
			Name: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
			X:    cols[0],
			Y:    cols[1],
		}
		if err = ds.Validate(); err != nil {
			return nil, err
		}

		return ds, nil
	default:
		return nil, fmt.Errorf("%q: %w", filepath.Ext(path), ErrUnsupportedFormat)
	}
}

// Decode parses a YAML or TOML document.
func Decode(data []byte, format Format) (*Dataset, error) {
	var doc document
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("decode %s: %w", format, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("dataset: decode %s: %w", format, err)
	}

	ds := &Dataset{Name: doc.Name, Boundary: doc.Boundary}
	if ds.X, err = floats("x", doc.X); err != nil {
		return nil, err
	}
	if ds.Y, err = floats("y", doc.Y); err != nil {
		return nil, err
	}
	if ds.Slopes, err = floats("slopes", doc.Slopes); err != nil {
		return nil, err
	}
	if err = ds.Validate(); err != nil {
		return nil, err
	}

	return ds, nil
}

// floats coerces each element with cast.ToFloat64E.
func floats(field string, raw []any) ([]float64, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]float64, len(raw))
	for i, v := range raw {
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s[%d]: %w", ErrInvalidDataset, field, i, err)
		}
		out[i] = f
	}

	return out, nil
}

// Validate checks matching lengths and at least two samples. Ordering and
// finiteness are left to spline.Build.
func (d *Dataset) Validate() error {
	if len(d.X) != len(d.Y) {
		return fmt.Errorf("%w: %d x values, %d y values", ErrInvalidDataset, len(d.X), len(d.Y))
	}
	if len(d.X) < 2 {
		return fmt.Errorf("%w: %d samples, want at least 2", ErrInvalidDataset, len(d.X))
	}

	return nil
}

// BoundaryCondition resolves Boundary and Slopes through spline.ParseBoundary.
func (d *Dataset) BoundaryCondition() (spline.Boundary, error) {
	return spline.ParseBoundary(d.Boundary, d.Slopes)
}
