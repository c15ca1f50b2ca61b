package spline

// Segment is one cubic piece of a spline:
//
//	S(x) = A + B·(x-X0) + C·(x-X0)² + D·(x-X0)³,  valid on [X0, X1].
//
// C is half the second derivative at X0.
type Segment struct {
	X0, X1     float64
	A, B, C, D float64
}

// Value evaluates the segment's cubic at x (no range check).
func (s Segment) Value(x float64) float64 {
	dx := x - s.X0
	return s.A + dx*(s.B+dx*(s.C+dx*s.D))
}

// Deriv evaluates the first derivative of the segment's cubic at x.
func (s Segment) Deriv(x float64) float64 {
	dx := x - s.X0
	return s.B + dx*(2*s.C+3*s.D*dx)
}

// Deriv2 evaluates the second derivative of the segment's cubic at x.
func (s Segment) Deriv2(x float64) float64 {
	dx := x - s.X0
	return 2*s.C + 6*s.D*dx
}

// antiderivative returns ∫_{X0}^{x} S(t) dt.
func (s Segment) antiderivative(x float64) float64 {
	dx := x - s.X0
	return dx * (s.A + dx*(s.B/2+dx*(s.C/3+dx*s.D/4)))
}

// Order selects which derivative Eval computes.
type Order int

const (
	// OrderValue evaluates S(x).
	OrderValue Order = iota
	// OrderFirst evaluates S′(x).
	OrderFirst
	// OrderSecond evaluates S″(x).
	OrderSecond
)

// Valid reports whether o is one of the supported orders.
func (o Order) Valid() bool { return o >= OrderValue && o <= OrderSecond }

// Spline is an immutable piecewise cubic built by Build.
//
// All methods are read-only and safe for concurrent use.
type Spline struct {
	knots []float64 // strictly increasing, len == len(segs)+1
	segs  []Segment
	cum   []float64 // cum[i] = ∫_{x_0}^{x_i} S, len == len(segs)
	bc    Boundary
	step  float64 // mean knot spacing, seeds the O(1) segment guess
}

// Len returns the number of segments (knots - 1).
func (s *Spline) Len() int { return len(s.segs) }

// Knots returns a copy of the knot sequence.
func (s *Spline) Knots() []float64 { return append([]float64(nil), s.knots...) }

// Segments returns a copy of the coefficient table, ordered by knot.
func (s *Spline) Segments() []Segment { return append([]Segment(nil), s.segs...) }

// Segment returns segment i, or ErrOutOfRange.
func (s *Spline) Segment(i int) (Segment, error) {
	if i < 0 || i >= len(s.segs) {
		return Segment{}, splineErrorf(opSegment, ErrOutOfRange)
	}

	return s.segs[i], nil
}

// Boundary returns the boundary condition the spline was built with.
func (s *Spline) Boundary() Boundary { return s.bc }

// Domain returns the first and last knot.
func (s *Spline) Domain() (lo, hi float64) {
	return s.knots[0], s.knots[len(s.knots)-1]
}
