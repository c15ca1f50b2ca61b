package quad_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvnum/quad"
)

func ExampleRomberg() {
	res, err := quad.Romberg(math.Sin, 0, math.Pi, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.8f converged=%v\n", res.Value, res.Converged)
	// Output:
	// 2.00000000 converged=true
}

func ExampleSimpsonComposite() {
	v, _ := quad.SimpsonComposite(func(x float64) float64 { return x * x }, 0, 3, 6)
	fmt.Printf("%.6f\n", v)
	// Output:
	// 9.000000
}
