package conv

import (
	"github.com/cwbudde/algo-img/dsp/core"
	"github.com/cwbudde/algo-img/dsp/fft2"
)

// Options configures a Convolver.
type Options struct {
	// Boundary selects the border policy. NativeBoundary picks the strategy's own.
	Boundary Boundary

	// Transformer overrides the transform used by the frequency strategy.
	Transformer fft2.Transformer

	// Backend selects the FFT library when Transformer is nil.
	Backend fft2.Backend

	// Workers bounds the goroutines used for rows and FFT passes.
	Workers int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns native boundaries, the auto FFT backend and a single worker.
func DefaultOptions() Options {
	return Options{
		Boundary: NativeBoundary,
		Backend:  fft2.BackendAuto,
		Workers:  core.DefaultProcessorConfig().Workers,
	}
}

// WithBoundary selects the boundary policy.
func WithBoundary(b Boundary) Option {
	return func(o *Options) {
		o.Boundary = b
	}
}

// WithTransformer sets the transform used by the frequency strategy.
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

func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// transformer returns the configured transform, building one if needed.
func (o Options) transformer() (fft2.Transformer, error) {
	if o.Transformer != nil {
		return o.Transformer, nil
	}
	return fft2.New(o.Backend, core.WithWorkers(o.Workers))
}
