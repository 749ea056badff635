package fft2

import (
	"fmt"

	"github.com/cwbudde/algo-img/dsp/core"
	"github.com/cwbudde/algo-img/dsp/grid"
)

// lineFFT transforms one row or column in place. inverse results are scaled
// by 1/n.
type lineFFT interface {
	forward(buf []complex128) error
	inverse(buf []complex128) error
}

// rowColumn computes a 2-D DFT as 1-D transforms over every row followed by
// every column.
type rowColumn struct {
	workers int
	newLine func(n int) (lineFFT, error)
}

// Forward returns the unnormalized spectrum of g.
func (t *rowColumn) Forward(g *grid.Grid) (*Spectrum, error) {
	if err := validateGrid(g); err != nil {
		return nil, err
	}

	buf := make([]complex128, len(g.Data))
	for i, v := range g.Data {
		buf[i] = complex(v, 0)
	}

	if err := t.transform(buf, g.Rows, g.Cols, false); err != nil {
		return nil, err
	}
	return fromComplex(buf, g.Rows, g.Cols), nil
}

// Inverse returns the inverse transform of s scaled by 1/(Rows*Cols).
func (t *rowColumn) Inverse(s *Spectrum) (*Spectrum, error) {
	if err := validateSpectrum(s); err != nil {
		return nil, err
	}

	buf := toComplex(s)
	if err := t.transform(buf, s.Rows, s.Cols, true); err != nil {
		return nil, err
	}
	return fromComplex(buf, s.Rows, s.Cols), nil
}

func (t *rowColumn) transform(buf []complex128, rows, cols int, inverse bool) error {
	err := core.ParallelFor(t.workers, rows, func(start, end int) error {
		line, err := t.newLine(cols)
		if err != nil {
			return err
		}
		for r := start; r < end; r++ {
			if err := apply(line, buf[r*cols:(r+1)*cols], inverse); err != nil {
				return fmt.Errorf("fft2: row %d: %w", r, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	return core.ParallelFor(t.workers, cols, func(start, end int) error {
		line, err := t.newLine(rows)
		if err != nil {
			return err
		}
		col := make([]complex128, rows)
		for c := start; c < end; c++ {
			for r := 0; r < rows; r++ {
				col[r] = buf[r*cols+c]
			}
			if err := apply(line, col, inverse); err != nil {
				return fmt.Errorf("fft2: column %d: %w", c, err)
			}
			for r := 0; r < rows; r++ {
				buf[r*cols+c] = col[r]
			}
		}
		return nil
	})
}

func apply(line lineFFT, buf []complex128, inverse bool) error {
	if inverse {
		return line.inverse(buf)
	}
	return line.forward(buf)
}

func toComplex(s *Spectrum) []complex128 {
	buf := make([]complex128, len(s.Re))
	for i := range buf {
		buf[i] = complex(s.Re[i], s.Im[i])
	}
	return buf
}

func fromComplex(buf []complex128, rows, cols int) *Spectrum {
	s := NewSpectrum(rows, cols)
	for i, v := range buf {
		s.Re[i] = real(v)
		s.Im[i] = imag(v)
	}
	return s
}
