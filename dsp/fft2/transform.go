package fft2

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/algo-img/dsp/core"
	"github.com/cwbudde/algo-img/dsp/grid"
)

// Errors returned by transformer construction and use.
var (
	ErrUnknownBackend = errors.New("fft2: unknown backend")
	ErrEmptyInput     = errors.New("fft2: empty input")
)

// Transformer is the forward/inverse 2-D DFT primitive.
//
// Forward is unnormalized. Inverse divides by Rows*Cols and keeps both planes;
// callers that want a real image take [Spectrum.Real].
type Transformer interface {
	Forward(g *grid.Grid) (*Spectrum, error)
	Inverse(s *Spectrum) (*Spectrum, error)
}

// Backend selects the FFT library behind a Transformer.
type Backend int

const (
	// BackendAuto uses algo-fft for power-of-two axes and gonum for the others.
	BackendAuto Backend = iota

	// BackendAlgoFFT uses github.com/MeKo-Christian/algo-fft plans.
	BackendAlgoFFT

	// BackendGonum uses gonum.org/v1/gonum/dsp/fourier.
	BackendGonum

	// BackendGoDSP uses github.com/mjibson/go-dsp/fft.
	BackendGoDSP
)

var backendNames = map[Backend]string{
	BackendAuto:    "auto",
	BackendAlgoFFT: "algofft",
	BackendGonum:   "gonum",
	BackendGoDSP:   "godsp",
}

// Backends lists every backend in declaration order.
func Backends() []Backend {
	return []Backend{BackendAuto, BackendAlgoFFT, BackendGonum, BackendGoDSP}
}

// String returns the backend name accepted by ParseBackend.
func (b Backend) String() string {
	if name, ok := backendNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Backend(%d)", int(b))
}

// ParseBackend maps a name such as "gonum" to its Backend.
func ParseBackend(name string) (Backend, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for b, n := range backendNames {
		if n == name {
			return b, nil
		}
	}
	return BackendAuto, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}

// New returns a Transformer for the given backend.
func New(b Backend, opts ...core.ProcessorOption) (Transformer, error) {
	cfg := core.ApplyProcessorOptions(opts...)

	switch b {
	case BackendAuto:
		return &rowColumn{workers: cfg.Workers, newLine: newAutoLine}, nil
	case BackendAlgoFFT:
		return &rowColumn{workers: cfg.Workers, newLine: newAlgoFFTLine}, nil
	case BackendGonum:
		return &rowColumn{workers: cfg.Workers, newLine: newGonumLine}, nil
	case BackendGoDSP:
		return goDSP{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownBackend, int(b))
	}
}

// Default returns the auto-selecting single-threaded transformer.
func Default() Transformer {
	return &rowColumn{workers: 1, newLine: newAutoLine}
}

// isPowerOf2 returns true if n is a power of 2.
func isPowerOf2(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}

func validateGrid(g *grid.Grid) error {
	if g == nil || g.Rows <= 0 || g.Cols <= 0 || len(g.Data) != g.Rows*g.Cols {
		return ErrEmptyInput
	}
	return nil
}

func validateSpectrum(s *Spectrum) error {
	if s == nil || s.Rows <= 0 || s.Cols <= 0 || len(s.Re) != s.Rows*s.Cols || len(s.Im) != len(s.Re) {
		return ErrEmptyInput
	}
	return nil
}
