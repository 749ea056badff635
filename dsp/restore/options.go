package restore

import (
	"github.com/cwbudde/algo-img/dsp/core"
	"github.com/cwbudde/algo-img/dsp/fft2"
)

// DefaultEpsilon is the inverse filter's magnitude floor relative to max|H|.
const DefaultEpsilon = 0.05

// Options configures a Filter.
type Options struct {
	// Epsilon sets the inverse filter floor T = Epsilon * max|H|. Must lie in (0, 1].
	Epsilon float64

	// Transformer overrides the 2-D transform.
	Transformer fft2.Transformer

	// Backend selects the FFT library when Transformer is nil.
	Backend fft2.Backend

	// Workers bounds the goroutines used by the transform.
	Workers int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the default epsilon, the auto backend and one worker.
func DefaultOptions() Options {
	return Options{
		Epsilon: DefaultEpsilon,
		Backend: fft2.BackendAuto,
		Workers: core.DefaultProcessorConfig().Workers,
	}
}

// WithEpsilon sets the inverse filter floor. Values outside (0, 1] make New fail.
func WithEpsilon(epsilon float64) Option {
	return func(o *Options) {
		o.Epsilon = epsilon
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

func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
