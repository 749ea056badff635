//go:build fastmath

package spectrum

import "github.com/meko-christian/algo-approx"

// logCompress trades a few ulps for speed; spectra are only displayed.
func logCompress(x float64) float64 {
	return approx.FastLog(1 + x)
}
