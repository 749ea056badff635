package spectrum

import (
	"github.com/cwbudde/algo-img/dsp/conv"
	"github.com/cwbudde/algo-img/dsp/core"
	"github.com/cwbudde/algo-img/dsp/fft2"
	"github.com/cwbudde/algo-img/dsp/grid"
	"github.com/cwbudde/algo-img/dsp/kernel"
	"github.com/cwbudde/algo-img/dsp/window"
)

// Options configures spectrum computation.
type Options struct {
	// Window tapers the image before the transform. Ignored for kernels.
	Window window.Type

	// Transformer overrides the 2-D transform.
	Transformer fft2.Transformer

	// Backend selects the FFT library when Transformer is nil.
	Backend fft2.Backend

	// Workers bounds the goroutines used by the transform.
	Workers int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a rectangular window, the auto backend and one worker.
func DefaultOptions() Options {
	return Options{
		Window:  window.TypeRectangular,
		Backend: fft2.BackendAuto,
		Workers: core.DefaultProcessorConfig().Workers,
	}
}

// WithWindow selects the apodization window.
func WithWindow(t window.Type) Option {
	return func(o *Options) {
		o.Window = t
	}
}

// WithTransformer sets the 2-D transform.
func WithTransformer(tr fft2.Transformer) Option {
	return func(o *Options) {
		if tr != nil {
			o.Transformer = tr
		}
	}
}

// WithBackend selects the FFT backend.
func WithBackend(b fft2.Backend) Option {
	return func(o *Options) {
		o.Backend = b
	}
}

// WithWorkers sets the number of worker goroutines.
func WithWorkers(workers int) Option {
	return func(o *Options) {
		if workers > 0 {
			o.Workers = workers
		}
	}
}

func applyOptions(opts []Option) (Options, fft2.Transformer, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.Transformer != nil {
		return o, o.Transformer, nil
	}
	tr, err := fft2.New(o.Backend, core.WithWorkers(o.Workers))
	return o, tr, err
}

// Center moves the DC bin from (0, 0) to (Rows/2, Cols/2).
func Center(g *grid.Grid) *grid.Grid {
	return grid.Shift(g, g.Cols/2, g.Rows/2)
}

// Uncenter undoes Center for any grid shape.
func Uncenter(g *grid.Grid) *grid.Grid {
	return grid.Shift(g, -(g.Cols / 2), -(g.Rows / 2))
}

// Magnitude returns |X| as a grid in transform order.
func Magnitude(s *fft2.Spectrum) *grid.Grid {
	return &grid.Grid{Rows: s.Rows, Cols: s.Cols, Data: s.Magnitude()}
}

// LogMagnitude returns log(1 + |X|) as a grid in transform order.
func LogMagnitude(s *fft2.Spectrum) *grid.Grid {
	g := Magnitude(s)
	for i, m := range g.Data {
		g.Data[i] = logCompress(m)
	}
	return g
}

// Image returns the centered log-magnitude spectrum of img.
func Image(img *grid.Grid, opts ...Option) (*grid.Grid, error) {
	o, tr, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	src := img
	if o.Window != window.TypeRectangular {
		src, err = window.Apply(o.Window, img)
		if err != nil {
			return nil, err
		}
	}

	s, err := tr.Forward(src)
	if err != nil {
		return nil, err
	}
	return Center(LogMagnitude(s)), nil
}

// KernelResponse returns the centered magnitude response |H| of k when it is
// applied to rows x cols images.
func KernelResponse(k *kernel.Kernel, rows, cols int, opts ...Option) (*grid.Grid, error) {
	_, tr, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	h, err := conv.KernelSpectrum(tr, k, rows, cols)
	if err != nil {
		return nil, err
	}
	return Center(Magnitude(h)), nil
}
