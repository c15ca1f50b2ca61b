package interp

// Hermite interpolates values and first derivatives. Each node appears twice
// in the divided-difference table, with f[z, z] replaced by the derivative,
// so the resulting polynomial has degree 2n-1.
type Hermite struct {
	z     []float64 // doubled nodes x0, x0, x1, x1, ...
	coeff []float64 // top row of the divided-difference table
}

// NewHermite builds the Hermite polynomial matching ys and dys at xs.
// Errors: ErrDimensionMismatch (any of the three lengths differ),
// ErrInsufficientPoints, ErrNonFinite, ErrDuplicateNodes.
// Complexity: O(n²) time and memory.
func NewHermite(xs, ys, dys []float64) (*Hermite, error) {
	if err := validateSamples(xs, ys, dys); err != nil {
		return nil, interpErrorf(opHermite, err)
	}

	n := len(xs)
	m := 2 * n
	z := make([]float64, m)
	col := make([]float64, m) // current column, reused in place
	for i := 0; i < n; i++ {
		z[2*i], z[2*i+1] = xs[i], xs[i]
		col[2*i], col[2*i+1] = ys[i], ys[i]
	}

	coeff := make([]float64, m)
	coeff[0] = col[0]
	for j := 1; j < m; j++ {
		for i := 0; i < m-j; i++ {
			if j == 1 && i%2 == 0 {
				col[i] = dys[i/2]
				continue
			}
			col[i] = (col[i+1] - col[i]) / (z[i+j] - z[i])
		}
		coeff[j] = col[0]
	}

	return &Hermite{z: z, coeff: coeff}, nil
}

// Degree reports the polynomial degree bound 2n-1.
func (h *Hermite) Degree() int { return len(h.z) - 1 }

// Nodes returns a copy of the doubled node sequence.
func (h *Hermite) Nodes() []float64 { return append([]float64(nil), h.z...) }

// Coefficients returns a copy of the Newton-form coefficients over Nodes.
func (h *Hermite) Coefficients() []float64 { return append([]float64(nil), h.coeff...) }

// Eval evaluates the polynomial at x.
func (h *Hermite) Eval(x float64) float64 { return nested(h.coeff, h.z, x) }

// String renders the Newton form over the doubled nodes.
func (h *Hermite) String() string { return newtonString(h.coeff, h.z) }
