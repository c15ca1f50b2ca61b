package tridiag

// System is a tridiagonal linear system A·x = RHS of order n = len(Diag).
//
// Row i reads Sub[i]·x[i-1] + Diag[i]·x[i] + Super[i]·x[i+1] = RHS[i];
// Sub[0] and Super[n-1] are ignored.
type System struct {
	Sub   []float64 // sub-diagonal, Sub[i] multiplies x[i-1]
	Diag  []float64 // main diagonal
	Super []float64 // super-diagonal, Super[i] multiplies x[i+1]
	RHS   []float64 // right-hand side
}

// NewSystem allocates a zeroed system with n unknowns.
func NewSystem(n int) *System {
	if n < 0 {
		n = 0
	}

	return &System{
		Sub:   make([]float64, n),
		Diag:  make([]float64, n),
		Super: make([]float64, n),
		RHS:   make([]float64, n),
	}
}

// Len returns the number of unknowns.
func (s *System) Len() int { return len(s.Diag) }
