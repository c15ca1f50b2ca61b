package spline_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvnum/spline"
)

func benchData(n int) (xs, ys []float64) {
	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := range xs {
		xs[i] = float64(i) * 0.1
		ys[i] = math.Sin(xs[i])
	}

	return xs, ys
}

func BenchmarkBuild_1k(b *testing.B) {
	xs, ys := benchData(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := spline.Build(xs, ys, spline.Natural{}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBuild_100_Dense(b *testing.B) {
	xs, ys := benchData(100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := spline.Build(xs, ys, spline.Natural{}, spline.WithDenseSolver()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEvalAll_10k(b *testing.B) {
	xs, ys := benchData(1000)
	sp, err := spline.Build(xs, ys, spline.Natural{})
	if err != nil {
		b.Fatal(err)
	}
	points := make([]float64, 10000)
	for i := range points {
		points[i] = 99.9 * float64(i) / float64(len(points))
	}
	out := make([]float64, len(points))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = sp.EvalAll(points, spline.OrderValue, out); err != nil {
			b.Fatal(err)
		}
	}
}
