package fft2

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-img/dsp/grid"
)

// algoFFTLine wraps an algo-fft plan. Plans normalize the inverse themselves.
type algoFFTLine struct {
	plan *algofft.Plan[complex128]
}

func newAlgoFFTLine(n int) (lineFFT, error) {
	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("fft2: failed to create FFT plan of length %d: %w", n, err)
	}
	return algoFFTLine{plan: plan}, nil
}

func (l algoFFTLine) forward(buf []complex128) error {
	return l.plan.Forward(buf, buf)
}

func (l algoFFTLine) inverse(buf []complex128) error {
	return l.plan.Inverse(buf, buf)
}

// gonumLine wraps a gonum complex FFT. gonum does not normalize Sequence.
type gonumLine struct {
	fft   *fourier.CmplxFFT
	scale complex128
}

func newGonumLine(n int) (lineFFT, error) {
	return gonumLine{
		fft:   fourier.NewCmplxFFT(n),
		scale: complex(1/float64(n), 0),
	}, nil
}

func (l gonumLine) forward(buf []complex128) error {
	l.fft.Coefficients(buf, buf)
	return nil
}

func (l gonumLine) inverse(buf []complex128) error {
	l.fft.Sequence(buf, buf)
	for i := range buf {
		buf[i] *= l.scale
	}
	return nil
}

func newAutoLine(n int) (lineFFT, error) {
	if isPowerOf2(n) {
		return newAlgoFFTLine(n)
	}
	return newGonumLine(n)
}

// goDSP transforms whole 2-D arrays with go-dsp, which parallelizes
// internally and normalizes IFFT2.
type goDSP struct{}

func (goDSP) Forward(g *grid.Grid) (*Spectrum, error) {
	if err := validateGrid(g); err != nil {
		return nil, err
	}

	in := make([][]complex128, g.Rows)
	for r := range in {
		row := make([]complex128, g.Cols)
		for c, v := range g.Row(r) {
			row[c] = complex(v, 0)
		}
		in[r] = row
	}
	return fromRows(fft.FFT2(in)), nil
}

func (goDSP) Inverse(s *Spectrum) (*Spectrum, error) {
	if err := validateSpectrum(s); err != nil {
		return nil, err
	}

	in := make([][]complex128, s.Rows)
	for r := range in {
		row := make([]complex128, s.Cols)
		for c := range row {
			row[c] = s.At(r, c)
		}
		in[r] = row
	}
	return fromRows(fft.IFFT2(in)), nil
}

func fromRows(rows [][]complex128) *Spectrum {
	s := NewSpectrum(len(rows), len(rows[0]))
	for r, row := range rows {
		for c, v := range row {
			s.Set(r, c, v)
		}
	}
	return s
}
