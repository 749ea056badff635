package conv

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-img/dsp/kernel"
	"github.com/cwbudde/algo-img/internal/testutil"
)

func BenchmarkConvolve(b *testing.B) {
	sizes := []struct {
		image  int
		kernel int
	}{
		{64, 3},
		{64, 9},
		{256, 3},
		{256, 9},
		{256, 21},
	}

	for _, size := range sizes {
		img := testutil.DeterministicNoise(1, size.image, size.image, 0, 255)
		k, err := kernel.Gaussian(size.kernel, kernel.SigmaForSize(size.kernel))
		if err != nil {
			b.Fatal(err)
		}

		for _, s := range Strategies() {
			c, err := New(s)
			if err != nil {
				b.Fatal(err)
			}
			b.Run(fmt.Sprintf("%v/image=%d_kernel=%d", s, size.image, size.kernel), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					_, _ = c.Convolve(img, k)
				}
			})
		}
	}
}

func BenchmarkConvolveParallel(b *testing.B) {
	img := testutil.DeterministicNoise(1, 512, 512, 0, 255)
	k, _ := kernel.Gaussian(9, kernel.SigmaForSize(9))

	for _, workers := range []int{1, 2, 4, 8} {
		c, _ := NewSpatial(WithWorkers(workers))
		b.Run(fmt.Sprintf("spatial/workers=%d", workers), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = c.Convolve(img, k)
			}
		})
	}
}
