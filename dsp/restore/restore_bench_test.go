package restore

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-img/dsp/kernel"
	"github.com/cwbudde/algo-img/internal/testutil"
)

func BenchmarkRestore(b *testing.B) {
	k, _ := kernel.ForDeviation(1.5)

	for _, size := range []int{64, 128, 256} {
		img := testutil.DeterministicNoise(1, size, size, 0, 255)
		for _, m := range Methods() {
			f, err := New(m)
			if err != nil {
				b.Fatal(err)
			}
			model := Model{Kernel: k, SNR: 20}
			b.Run(fmt.Sprintf("%v/size=%d", m, size), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					_, _ = f.Restore(img, model)
				}
			})
		}
	}
}
