package quality

import (
	"math"

	"github.com/cwbudde/algo-img/dsp/core"
	"github.com/cwbudde/algo-img/dsp/grid"
)

// MSE returns the mean squared error between a and b.
func MSE(a, b *grid.Grid) (float64, error) {
	if err := checkPair(a, b); err != nil {
		return 0, err
	}

	var sum float64
	for i, x := range a.Data {
		d := x - b.Data[i]
		sum += d * d
	}
	return sum / float64(len(a.Data)), nil
}

// PSNR returns the peak signal-to-noise ratio in dB for 8-bit intensities:
// 10 * log10(255² / MSE). Identical images give +Inf.
func PSNR(a, b *grid.Grid) (float64, error) {
	mse, err := MSE(a, b)
	if err != nil {
		return 0, err
	}
	if mse == 0 {
		return math.Inf(1), nil
	}
	return core.LinearPowerToDB(core.MaxIntensity * core.MaxIntensity / mse), nil
}

// SNR returns the signal-to-noise ratio in dB between original and restored,
// where the noise is original - restored:
// 10 * log10(sum(original²) / sum(noise²)). Perfect recovery gives +Inf.
func SNR(original, restored *grid.Grid) (float64, error) {
	if err := checkPair(original, restored); err != nil {
		return 0, err
	}

	var signalPower, noisePower float64
	for i, x := range original.Data {
		signalPower += x * x
		noise := x - restored.Data[i]
		noisePower += noise * noise
	}

	if noisePower == 0 {
		return math.Inf(1), nil
	}
	return core.LinearPowerToDB(signalPower / noisePower), nil
}
