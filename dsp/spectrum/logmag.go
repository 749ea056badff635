//go:build !fastmath

package spectrum

import "math"

func logCompress(x float64) float64 {
	return math.Log1p(x)
}
