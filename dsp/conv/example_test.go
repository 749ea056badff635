package conv_test

import (
	"fmt"

	"github.com/cwbudde/algo-img/dsp/conv"
	"github.com/cwbudde/algo-img/dsp/grid"
	"github.com/cwbudde/algo-img/dsp/kernel"
)

func ExampleConvolve() {
	// A bright pixel on a flat background, blurred by a 3x3 box.
	img, _ := grid.Fill(9, 9, 1)
	img.Set(4, 4, 255)
	k, _ := kernel.Uniform(3)

	out, _ := conv.Convolve(img, k, conv.StrategyFrequency)

	fmt.Printf("center: %.4f\n", out.At(4, 4))
	fmt.Printf("neighbour: %.4f\n", out.At(3, 5))
	fmt.Printf("far: %.4f\n", out.At(1, 1))

	// Output:
	// center: 29.2222
	// neighbour: 29.2222
	// far: 1.0000
}

func ExampleNew() {
	img, _ := grid.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	k, _ := kernel.Uniform(3)

	c, _ := conv.New(conv.StrategySpatial)
	out, _ := c.Convolve(img, k)

	fmt.Printf("%.4f %.4f\n", out.At(0, 0), out.At(1, 1))

	// Output:
	// 2.3333 5.0000
}
