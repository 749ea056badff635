// Package sharpen implements unsharp masking: the detail an image loses under
// Gaussian smoothing is gated by a threshold and added back, scaled.
package sharpen

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-img/dsp/conv"
	"github.com/cwbudde/algo-img/dsp/core"
	"github.com/cwbudde/algo-img/dsp/grid"
	"github.com/cwbudde/algo-img/dsp/kernel"
)

// Errors returned by New.
var (
	ErrInvalidThreshold = errors.New("sharpen: threshold must be finite")
	ErrInvalidScale     = errors.New("sharpen: scale must be finite")
)

// Options configures an unsharp mask.
type Options struct {
	// Strategy selects the convolver used for smoothing.
	Strategy conv.Strategy

	// Size is the odd side length of the Gaussian smoothing kernel.
	Size int

	// Sigma is the Gaussian standard deviation in pixels.
	Sigma float64

	// Threshold is the smallest detail value that is boosted. Detail below it,
	// including every negative value when Threshold >= 0, is dropped.
	Threshold float64

	// Scale multiplies the gated detail before it is added back.
	Scale float64

	// Conv passes options to the smoothing convolver.
	Conv []conv.Option
}

// DefaultOptions returns frequency-domain smoothing with a 3x3 unit-sigma
// Gaussian, no threshold and unit scale.
func DefaultOptions() Options {
	return Options{
		Strategy:  conv.StrategyFrequency,
		Size:      3,
		Sigma:     kernel.UnitSigma,
		Threshold: 0,
		Scale:     1,
	}
}

// Mask is a configured unsharp mask. It is safe for concurrent use.
type Mask struct {
	kernel    *kernel.Kernel
	smoother  conv.Convolver
	threshold float64
	scale     float64
}

// New validates opts and builds the smoothing kernel and convolver.
func New(opts Options) (*Mask, error) {
	if !core.IsFinite(opts.Threshold) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidThreshold, opts.Threshold)
	}
	if !core.IsFinite(opts.Scale) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScale, opts.Scale)
	}

	k, err := kernel.Gaussian(opts.Size, opts.Sigma)
	if err != nil {
		return nil, err
	}

	smoother, err := conv.New(opts.Strategy, opts.Conv...)
	if err != nil {
		return nil, err
	}

	return &Mask{
		kernel:    k,
		smoother:  smoother,
		threshold: opts.Threshold,
		scale:     opts.Scale,
	}, nil
}

// Apply returns img + scale*gate(img - smooth(img)). The result is not clipped.
func (m *Mask) Apply(img *grid.Grid) (*grid.Grid, error) {
	smoothed, err := m.smoother.Convolve(img, m.kernel)
	if err != nil {
		return nil, err
	}

	diff, err := img.Sub(smoothed)
	if err != nil {
		return nil, err
	}

	for i, d := range diff.Data {
		if d < m.threshold {
			diff.Data[i] = 0
		}
	}

	return img.AddScaled(diff, m.scale)
}

// UnsharpMask sharpens img with a mask built from opts.
func UnsharpMask(img *grid.Grid, opts Options) (*grid.Grid, error) {
	m, err := New(opts)
	if err != nil {
		return nil, err
	}
	return m.Apply(img)
}
