package conv

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/algo-img/dsp/fft2"
	"github.com/cwbudde/algo-img/dsp/grid"
	"github.com/cwbudde/algo-img/dsp/kernel"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput      = errors.New("conv: empty input")
	ErrEmptyKernel     = errors.New("conv: empty kernel")
	ErrKernelTooLarge  = errors.New("conv: kernel larger than image")
	ErrUnknownStrategy = errors.New("conv: unknown strategy")
	ErrUnknownBoundary = errors.New("conv: unknown boundary policy")
)

// Boundary specifies how samples outside the image are read.
type Boundary int

const (
	// NativeBoundary uses the strategy's own policy: Periodic for frequency,
	// ReplicateEdge for spatial.
	NativeBoundary Boundary = iota

	// Periodic wraps indices around the image edges.
	Periodic

	// ReplicateEdge clamps indices to the nearest valid row and column.
	ReplicateEdge
)

// String returns the policy name.
func (b Boundary) String() string {
	switch b {
	case NativeBoundary:
		return "native"
	case Periodic:
		return "periodic"
	case ReplicateEdge:
		return "replicate"
	default:
		return fmt.Sprintf("Boundary(%d)", int(b))
	}
}

// Boundaries lists every boundary policy in declaration order.
func Boundaries() []Boundary {
	return []Boundary{NativeBoundary, Periodic, ReplicateEdge}
}

// ParseBoundary maps "native", "periodic" or "replicate" to a Boundary.
func ParseBoundary(name string) (Boundary, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, b := range Boundaries() {
		if b.String() == name {
			return b, nil
		}
	}
	return NativeBoundary, fmt.Errorf("%w: %q", ErrUnknownBoundary, name)
}

// Strategy selects the convolution back-end.
type Strategy int

const (
	// StrategySpatial convolves by direct neighbourhood sums.
	StrategySpatial Strategy = iota

	// StrategyFrequency convolves by spectrum multiplication.
	StrategyFrequency
)

// Strategies lists every strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{StrategySpatial, StrategyFrequency}
}

// String returns the strategy name accepted by ParseStrategy.
func (s Strategy) String() string {
	switch s {
	case StrategySpatial:
		return "spatial"
	case StrategyFrequency:
		return "frequency"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "spatial" or "frequency" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, s := range Strategies() {
		if s.String() == name {
			return s, nil
		}
	}
	return StrategySpatial, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Convolver convolves an image with a kernel. The result has the image's shape.
type Convolver interface {
	Convolve(img *grid.Grid, k *kernel.Kernel) (*grid.Grid, error)
}

// New returns the Convolver for strategy s.
func New(s Strategy, opts ...Option) (Convolver, error) {
	switch s {
	case StrategySpatial:
		return NewSpatial(opts...)
	case StrategyFrequency:
		return NewFrequency(opts...)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
}

// Convolve convolves img with k using strategy s.
func Convolve(img *grid.Grid, k *kernel.Kernel, s Strategy, opts ...Option) (*grid.Grid, error) {
	c, err := New(s, opts...)
	if err != nil {
		return nil, err
	}
	return c.Convolve(img, k)
}

// CenterKernel embeds k into a zero rows x cols grid and circularly shifts it
// so that the kernel's center lands on index (0, 0).
func CenterKernel(k *kernel.Kernel, rows, cols int) (*grid.Grid, error) {
	if k == nil || k.Grid == nil {
		return nil, ErrEmptyKernel
	}
	if k.Rows > rows || k.Cols > cols {
		return nil, fmt.Errorf("%w: %dx%d kernel, %dx%d image", ErrKernelTooLarge, k.Rows, k.Cols, rows, cols)
	}

	buf, err := grid.Embed(k.Grid, rows, cols)
	if err != nil {
		return nil, err
	}
	return grid.Shift(buf, -k.Cols/2, -k.Rows/2), nil
}

// KernelSpectrum returns the transform of k centered in a rows x cols buffer.
func KernelSpectrum(tr fft2.Transformer, k *kernel.Kernel, rows, cols int) (*fft2.Spectrum, error) {
	centered, err := CenterKernel(k, rows, cols)
	if err != nil {
		return nil, err
	}
	return tr.Forward(centered)
}

// Validate checks that img and k are usable together.
func Validate(img *grid.Grid, k *kernel.Kernel) error {
	if img == nil || img.Rows <= 0 || img.Cols <= 0 || len(img.Data) != img.Rows*img.Cols {
		return ErrEmptyInput
	}
	if k == nil || k.Grid == nil || len(k.Data) == 0 {
		return ErrEmptyKernel
	}
	if k.Rows%2 == 0 || k.Cols%2 == 0 {
		return fmt.Errorf("%w: %dx%d", kernel.ErrEvenSize, k.Rows, k.Cols)
	}
	if k.Rows > img.Rows || k.Cols > img.Cols {
		return fmt.Errorf("%w: %dx%d kernel, %dx%d image", ErrKernelTooLarge, k.Rows, k.Cols, img.Rows, img.Cols)
	}
	return nil
}
