package kernel_test

import (
	"fmt"

	"github.com/cwbudde/algo-img/dsp/kernel"
)

func ExampleGaussian() {
	k, _ := kernel.Gaussian(3, kernel.UnitSigma)

	for r := 0; r < k.Rows; r++ {
		fmt.Printf("%.4f\n", k.Row(r))
	}
	fmt.Printf("sum=%.4f\n", k.Sum())

	// Output:
	// [0.0751 0.1238 0.0751]
	// [0.1238 0.2042 0.1238]
	// [0.0751 0.1238 0.0751]
	// sum=1.0000
}
