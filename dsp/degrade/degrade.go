// Package degrade produces test material for the restoration filters: it
// blurs an image with a Gaussian kernel, adds white Gaussian noise at a given
// signal-to-noise ratio and returns the model needed to undo both.
package degrade

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/cwbudde/algo-img/dsp/conv"
	"github.com/cwbudde/algo-img/dsp/core"
	"github.com/cwbudde/algo-img/dsp/fft2"
	"github.com/cwbudde/algo-img/dsp/grid"
	"github.com/cwbudde/algo-img/dsp/kernel"
	"github.com/cwbudde/algo-img/dsp/restore"
	"github.com/cwbudde/algo-img/stats/quality"
)

// DefaultSeed seeds the noise generator when no seed is given.
const DefaultSeed = 1

// Options configures Apply.
type Options struct {
	Seed        uint64
	Transformer fft2.Transformer
	Backend     fft2.Backend
	Workers     int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns DefaultSeed, the auto backend and one worker.
func DefaultOptions() Options {
	return Options{
		Seed:    DefaultSeed,
		Backend: fft2.BackendAuto,
		Workers: core.DefaultProcessorConfig().Workers,
	}
}

// WithSeed sets the noise seed.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithTransformer sets the transform used for the blur.
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

// Apply blurs img periodically with the Gaussian kernel for deviation dev
// (see kernel.ForDeviation), adds zero-mean Gaussian noise with standard
// deviation stddev(img)/snr and clips to [0, 255].
//
// The returned model carries the blur kernel and snr.
func Apply(img *grid.Grid, dev, snr float64, opts ...Option) (*grid.Grid, restore.Model, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if !core.IsFinite(snr) || snr <= 0 {
		return nil, restore.Model{}, restore.ErrInvalidSNR
	}

	k, err := kernel.ForDeviation(dev)
	if err != nil {
		return nil, restore.Model{}, err
	}

	convOpts := []conv.Option{
		conv.WithBoundary(conv.Periodic),
		conv.WithBackend(o.Backend),
		conv.WithWorkers(o.Workers),
		conv.WithTransformer(o.Transformer),
	}
	out, err := conv.Convolve(img, k, conv.StrategyFrequency, convOpts...)
	if err != nil {
		return nil, restore.Model{}, err
	}

	_, stddev := quality.MeanStdDev(img)
	AddNoise(out, stddev/snr, o.Seed)
	out.ClipIntensity()

	return out, restore.Model{Kernel: k, SNR: snr}, nil
}

// AddNoise adds zero-mean Gaussian noise with the given standard deviation to
// g in place. The same seed always yields the same noise.
func AddNoise(g *grid.Grid, stddev float64, seed uint64) {
	if stddev <= 0 {
		return
	}

	dist := distuv.Normal{
		Mu:    0,
		Sigma: stddev,
		Src:   rand.NewPCG(seed, seed),
	}
	for i := range g.Data {
		g.Data[i] += dist.Rand()
	}
}
