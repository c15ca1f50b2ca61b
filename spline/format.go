package spline

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteTable prints the coefficient table, one row per segment:
//
//	segment  interval      a         b          c          d
//	S_0      [0.00, 1.00]  0.000000  0.089286   0.000000   0.410714
//
// Pure reporting: the spline is only read.
func WriteTable(w io.Writer, sp *Spline) error {
	if sp == nil {
		return splineErrorf(opWriteTable, ErrNilSpline)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "segment\tinterval\ta\tb\tc\td")
	for i, seg := range sp.segs {
		fmt.Fprintf(tw, "S_%d\t[%.2f, %.2f]\t%.6f\t%.6f\t%.6f\t%.6f\n",
			i, seg.X0, seg.X1, seg.A, seg.B, seg.C, seg.D)
	}
	if err := tw.Flush(); err != nil {
		return splineErrorf(opWriteTable, err)
	}

	return nil
}

// Equations renders each segment as a polynomial in (x - x_i), e.g.
//
//	S_0(x) = 0.000000 +0.089286(x-0.00) +0.000000(x-0.00)^2 +0.410714(x-0.00)^3
func Equations(sp *Spline) []string {
	if sp == nil {
		return nil
	}

	eqs := make([]string, len(sp.segs))
	for i, seg := range sp.segs {
		shift := shiftString(seg.X0)
		eqs[i] = fmt.Sprintf("S_%d(x) = %.6f %+.6f%s %+.6f%s^2 %+.6f%s^3",
			i, seg.A, seg.B, shift, seg.C, shift, seg.D, shift)
	}

	return eqs
}

// shiftString renders (x-x0), folding a negative origin into (x+|x0|).
func shiftString(x0 float64) string {
	if x0 < 0 {
		return fmt.Sprintf("(x+%.2f)", -x0)
	}

	return fmt.Sprintf("(x-%.2f)", x0)
}
