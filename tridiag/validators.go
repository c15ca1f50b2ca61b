package tridiag

// validateSystem checks the receiver is non-nil, non-empty, and that all four
// vectors share one length. Returns plain sentinels; callers tag them.
func validateSystem(s *System) error {
	if s == nil {
		return ErrNilSystem
	}
	n := len(s.Diag)
	if n == 0 {
		return ErrEmptySystem
	}
	if len(s.Sub) != n || len(s.Super) != n || len(s.RHS) != n {
		return ErrDimensionMismatch
	}

	return nil
}

// validateVec checks that x has exactly the system order.
func validateVec(s *System, x []float64) error {
	if len(x) != len(s.Diag) {
		return ErrDimensionMismatch
	}

	return nil
}
