package interp

import (
	"fmt"
	"strings"
)

// Newton is the interpolating polynomial in Newton's divided-difference form:
//
//	P(x) = f[x0] + f[x0,x1](x-x0) + f[x0,x1,x2](x-x0)(x-x1) + ...
//
// A Newton value is immutable after construction.
type Newton struct {
	nodes []float64
	table [][]float64 // table[i][j] = f[x_i, ..., x_{i+j}], len(table[i]) == n-i
}

// NewNewton builds the divided-difference table for the samples.
// Errors: as Lagrange.
// Complexity: O(n²) time and memory.
func NewNewton(xs, ys []float64) (*Newton, error) {
	if err := validateSamples(xs, ys); err != nil {
		return nil, interpErrorf(opNewNewton, err)
	}

	return &Newton{
		nodes: append([]float64(nil), xs...),
		table: dividedDifferences(xs, ys),
	}, nil
}

// dividedDifferences fills the upper-triangular table column by column.
func dividedDifferences(xs, ys []float64) [][]float64 {
	n := len(xs)
	table := make([][]float64, n)
	for i := range table {
		table[i] = make([]float64, n-i)
		table[i][0] = ys[i]
	}
	for j := 1; j < n; j++ {
		for i := 0; i < n-j; i++ {
			table[i][j] = (table[i+1][j-1] - table[i][j-1]) / (xs[i+j] - xs[i])
		}
	}

	return table
}

// Degree reports the polynomial degree bound n-1.
func (p *Newton) Degree() int { return len(p.nodes) - 1 }

// Coefficients returns a copy of f[x0], f[x0,x1], ..., f[x0..x_{n-1}].
func (p *Newton) Coefficients() []float64 {
	return append([]float64(nil), p.table[0]...)
}

// Table returns a deep copy of the triangular divided-difference table.
func (p *Newton) Table() [][]float64 {
	out := make([][]float64, len(p.table))
	for i, row := range p.table {
		out[i] = append([]float64(nil), row...)
	}

	return out
}

// Eval evaluates the nested form in O(n).
func (p *Newton) Eval(x float64) float64 {
	return nested(p.table[0], p.nodes, x)
}

// String renders P(x) with the product factors spelled out.
func (p *Newton) String() string {
	return newtonString(p.table[0], p.nodes)
}

// nested evaluates c[0] + c[1](x-z[0]) + c[2](x-z[0])(x-z[1]) + ... by
// Horner's rule from the innermost term.
func nested(c, z []float64, x float64) float64 {
	n := len(c)
	v := c[n-1]
	for k := n - 2; k >= 0; k-- {
		v = v*(x-z[k]) + c[k]
	}

	return v
}

func newtonString(c, z []float64) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "P(x) = %.6f", c[0])
	for i := 1; i < len(c); i++ {
		fmt.Fprintf(&sb, " %+.6f", c[i])
		for _, zj := range z[:i] {
			if zj < 0 {
				fmt.Fprintf(&sb, "(x+%.2f)", -zj)
			} else {
				fmt.Fprintf(&sb, "(x-%.2f)", zj)
			}
		}
	}

	return sb.String()
}
