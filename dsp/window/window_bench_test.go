package window

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-img/internal/testutil"
)

func BenchmarkApply(b *testing.B) {
	for _, size := range []int{64, 512} {
		img := testutil.DeterministicNoise(1, size, size, 0, 255)
		for _, typ := range Types() {
			b.Run(fmt.Sprintf("%v/size=%d", typ, size), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					_, _ = Apply(typ, img)
				}
			})
		}
	}
}
