package conv

import (
	"fmt"

	"github.com/cwbudde/algo-img/dsp/fft2"
	"github.com/cwbudde/algo-img/dsp/grid"
	"github.com/cwbudde/algo-img/dsp/kernel"
)

// Frequency convolves by multiplying spectra.
//
// The algorithm:
// 1. Embed the kernel top-left in a zero buffer of the image's shape
// 2. Shift it by (-k/2, -k/2) so its center sits at the origin
// 3. Transform kernel buffer and image
// 4. Multiply the spectra (no conjugate)
// 5. Inverse transform and keep the real part
type Frequency struct {
	boundary Boundary
	tr       fft2.Transformer
}

// NewFrequency returns a frequency-domain convolver.
func NewFrequency(opts ...Option) (*Frequency, error) {
	o := applyOptions(opts)

	switch o.Boundary {
	case NativeBoundary, Periodic, ReplicateEdge:
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownBoundary, o.Boundary)
	}

	tr, err := o.transformer()
	if err != nil {
		return nil, err
	}
	return &Frequency{boundary: o.Boundary, tr: tr}, nil
}

// Boundary returns the effective boundary policy.
func (f *Frequency) Boundary() Boundary {
	if f.boundary == NativeBoundary {
		return Periodic
	}
	return f.boundary
}

// Convolve returns img convolved with k.
func (f *Frequency) Convolve(img *grid.Grid, k *kernel.Kernel) (*grid.Grid, error) {
	if err := Validate(img, k); err != nil {
		return nil, err
	}

	if f.Boundary() == Periodic {
		return f.periodic(img, k)
	}

	// Replicated borders wide enough that the wraparound only ever reads padding.
	padRows, padCols := k.Rows/2, k.Cols/2
	padded := grid.PadReplicate(img, padRows, padCols)

	out, err := f.periodic(padded, k)
	if err != nil {
		return nil, err
	}
	return grid.Crop(out, padRows, padCols, img.Rows, img.Cols)
}

func (f *Frequency) periodic(img *grid.Grid, k *kernel.Kernel) (*grid.Grid, error) {
	kernelFreq, err := KernelSpectrum(f.tr, k, img.Rows, img.Cols)
	if err != nil {
		return nil, fmt.Errorf("conv: kernel transform failed: %w", err)
	}

	imageFreq, err := f.tr.Forward(img)
	if err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}

	product, err := fft2.Multiply(imageFreq, kernelFreq, false)
	if err != nil {
		return nil, err
	}

	result, err := f.tr.Inverse(product)
	if err != nil {
		return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
	}
	return result.Real(), nil
}
