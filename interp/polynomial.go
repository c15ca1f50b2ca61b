package interp

import (
	"fmt"
	"math"
	"strings"
)

// displayCutoff hides terms with |a_k| at or below it in String.
const displayCutoff = 1e-10

// Polynomial holds power-basis coefficients: P(x) = Σ p[k]·x^k.
type Polynomial []float64

// Degree reports len(p)-1; zero leading coefficients are not trimmed.
func (p Polynomial) Degree() int { return len(p) - 1 }

// Eval returns P(x) by Horner's rule. An empty polynomial is zero.
func (p Polynomial) Eval(x float64) float64 {
	var v float64
	for k := len(p) - 1; k >= 0; k-- {
		v = v*x + p[k]
	}

	return v
}

// Deriv returns P'(x).
func (p Polynomial) Deriv(x float64) float64 {
	var v float64
	for k := len(p) - 1; k >= 1; k-- {
		v = v*x + float64(k)*p[k]
	}

	return v
}

// String renders the non-negligible terms in ascending powers, e.g.
// "P(x) = 1.000000 -2.000000x +1.000000x^3".
func (p Polynomial) String() string {
	var sb strings.Builder
	sb.WriteString("P(x) =")
	written := 0
	for k, c := range p {
		if math.Abs(c) <= displayCutoff {
			continue
		}
		format := " %+.6f"
		if written == 0 {
			format = " %.6f"
		}
		fmt.Fprintf(&sb, format, c)
		switch {
		case k == 1:
			sb.WriteString("x")
		case k > 1:
			fmt.Fprintf(&sb, "x^%d", k)
		}
		written++
	}
	if written == 0 {
		sb.WriteString(" 0")
	}

	return sb.String()
}
