package tridiag_test

import (
	"testing"

	"github.com/katalvlaran/lvnum/tridiag"
)

// benchmarkSolve runs Solve on the [-1 2 -1] system of order n.
func benchmarkSolve(b *testing.B, n int) {
	sys, _ := poisson(n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tridiag.Solve(sys); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

func BenchmarkSolve_100(b *testing.B)    { benchmarkSolve(b, 100) }
func BenchmarkSolve_10000(b *testing.B)  { benchmarkSolve(b, 10_000) }
func BenchmarkSolve_100000(b *testing.B) { benchmarkSolve(b, 100_000) }

// BenchmarkSolveDense_100 shows the cost of the dense reference path.
func BenchmarkSolveDense_100(b *testing.B) {
	sys, _ := poisson(100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tridiag.SolveDense(sys); err != nil {
			b.Fatalf("SolveDense failed: %v", err)
		}
	}
}
