package restore

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/algo-img/dsp/conv"
	"github.com/cwbudde/algo-img/dsp/core"
	"github.com/cwbudde/algo-img/dsp/fft2"
	"github.com/cwbudde/algo-img/dsp/grid"
	"github.com/cwbudde/algo-img/dsp/kernel"
)

// Restoration errors.
var (
	ErrZeroSpectrum   = errors.New("restore: kernel spectrum is zero everywhere")
	ErrInvalidSNR     = errors.New("restore: SNR must be positive and finite")
	ErrInvalidEpsilon = errors.New("restore: epsilon must lie in (0, 1]")
	ErrUnknownMethod  = errors.New("restore: unknown method")

	// ErrKernelTooLarge is returned when the kernel exceeds the image on either axis.
	ErrKernelTooLarge = conv.ErrKernelTooLarge
)

// Method specifies the restoration filter.
type Method int

const (
	// MethodInverse divides by the kernel spectrum, flooring small magnitudes.
	MethodInverse Method = iota

	// MethodWiener regularizes the division with the signal-to-noise ratio.
	MethodWiener
)

// Methods lists every method in declaration order.
func Methods() []Method {
	return []Method{MethodInverse, MethodWiener}
}

// String returns the method name accepted by ParseMethod.
func (m Method) String() string {
	switch m {
	case MethodInverse:
		return "inverse"
	case MethodWiener:
		return "wiener"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps "inverse" or "wiener" to a Method.
func ParseMethod(name string) (Method, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, m := range Methods() {
		if m.String() == name {
			return m, nil
		}
	}
	return MethodInverse, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// Model describes a degradation: the blur kernel and the signal-to-noise
// ratio (signal stddev / noise stddev). SNR is only used by the Wiener filter.
type Model struct {
	Kernel *kernel.Kernel
	SNR    float64
}

// Filter restores degraded images with a fixed method and transform.
type Filter struct {
	method  Method
	epsilon float64
	tr      fft2.Transformer
}

// New returns a Filter for method. Invalid options are reported here, before
// any image is processed.
func New(method Method, opts ...Option) (*Filter, error) {
	if method != MethodInverse && method != MethodWiener {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(method))
	}

	o := applyOptions(opts)
	if err := validateEpsilon(o.Epsilon); err != nil {
		return nil, err
	}

	tr := o.Transformer
	if tr == nil {
		var err error
		tr, err = fft2.New(o.Backend, core.WithWorkers(o.Workers))
		if err != nil {
			return nil, err
		}
	}

	return &Filter{method: method, epsilon: o.Epsilon, tr: tr}, nil
}

// Method returns the filter's method.
func (f *Filter) Method() Method {
	return f.method
}

// Operator builds the restoration operator for kernel spectrum h.
func (f *Filter) Operator(h *fft2.Spectrum, snr float64) (*fft2.Spectrum, error) {
	if f.method == MethodWiener {
		return WienerOperator(h, snr)
	}
	return InverseOperator(h, f.epsilon)
}

// Restore returns the estimate of the undegraded image, clipped to [0, 255].
func (f *Filter) Restore(degraded *grid.Grid, m Model) (*grid.Grid, error) {
	if err := conv.Validate(degraded, m.Kernel); err != nil {
		return nil, err
	}
	if f.method == MethodWiener {
		if err := validateSNR(m.SNR); err != nil {
			return nil, err
		}
	}

	kernelFreq, err := conv.KernelSpectrum(f.tr, m.Kernel, degraded.Rows, degraded.Cols)
	if err != nil {
		return nil, fmt.Errorf("restore: kernel transform failed: %w", err)
	}

	q, err := f.Operator(kernelFreq, m.SNR)
	if err != nil {
		return nil, err
	}

	imageFreq, err := f.tr.Forward(degraded)
	if err != nil {
		return nil, fmt.Errorf("restore: forward FFT failed: %w", err)
	}

	product, err := fft2.Multiply(imageFreq, q, false)
	if err != nil {
		return nil, err
	}

	result, err := f.tr.Inverse(product)
	if err != nil {
		return nil, fmt.Errorf("restore: inverse FFT failed: %w", err)
	}

	out := result.Real()
	out.ClipIntensity()
	return out, nil
}

// Inverse restores degraded with the inverse filter.
func Inverse(degraded *grid.Grid, k *kernel.Kernel, opts ...Option) (*grid.Grid, error) {
	f, err := New(MethodInverse, opts...)
	if err != nil {
		return nil, err
	}
	return f.Restore(degraded, Model{Kernel: k})
}

// Wiener restores degraded with the Wiener filter for the given SNR.
func Wiener(degraded *grid.Grid, k *kernel.Kernel, snr float64, opts ...Option) (*grid.Grid, error) {
	f, err := New(MethodWiener, opts...)
	if err != nil {
		return nil, err
	}
	return f.Restore(degraded, Model{Kernel: k, SNR: snr})
}
