package kernel

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-img/dsp/core"
	"github.com/cwbudde/algo-img/dsp/grid"
)

// UnitSigma is the fixed spread the classic smoothing pipeline used for every
// kernel size. With it, size only changes the support, not the shape.
const UnitSigma = 1.0

// SigmaForSize returns a spread that grows with the kernel, size/5, matching
// the fallback blur of the classic pipeline.
func SigmaForSize(size int) float64 {
	return float64(size) / 5
}

// Gaussian returns a normalized size x size Gaussian kernel with standard
// deviation sigma, centered at (size/2, size/2).
func Gaussian(size int, sigma float64) (*Kernel, error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}
	if sigma <= 0 || !core.IsFinite(sigma) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSigma, sigma)
	}

	g, err := grid.New(size, size)
	if err != nil {
		return nil, err
	}

	c := float64(size / 2)
	s2 := sigma * sigma
	norm := 2 * math.Pi * s2

	var sum float64
	for x := 0; x < size; x++ {
		dx := float64(x) - c
		for y := 0; y < size; y++ {
			dy := float64(y) - c
			v := math.Exp(-0.5*(dx*dx+dy*dy)/s2) / norm
			g.Set(x, y, v)
			sum += v
		}
	}

	for i := range g.Data {
		g.Data[i] /= sum
	}
	return &Kernel{Grid: g}, nil
}

// SizeForDeviation returns the kernel side used to model a Gaussian blur of
// standard deviation dev: round(3*dev)*2 - 1.
func SizeForDeviation(dev float64) int {
	return int(math.Round(dev*3))*2 - 1
}

// ForDeviation returns the Gaussian blur kernel for standard deviation dev,
// sized with SizeForDeviation.
func ForDeviation(dev float64) (*Kernel, error) {
	if dev <= 0 || !core.IsFinite(dev) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSigma, dev)
	}
	size := SizeForDeviation(dev)
	if size < 1 {
		return nil, fmt.Errorf("%w: deviation %v gives size %d", ErrInvalidSize, dev, size)
	}
	return Gaussian(size, dev)
}
