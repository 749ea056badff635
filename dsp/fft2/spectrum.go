package fft2

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-img/dsp/grid"
)

// ErrShapeMismatch is returned when two spectra differ in size.
var ErrShapeMismatch = errors.New("fft2: spectrum shape mismatch")

// Spectrum is a Rows x Cols complex array stored as split real and imaginary
// planes, row-major.
type Spectrum struct {
	Rows int
	Cols int
	Re   []float64
	Im   []float64
}

// NewSpectrum returns a zero spectrum.
func NewSpectrum(rows, cols int) *Spectrum {
	return &Spectrum{
		Rows: rows,
		Cols: cols,
		Re:   make([]float64, rows*cols),
		Im:   make([]float64, rows*cols),
	}
}

// At returns the bin at row r, column c.
func (s *Spectrum) At(r, c int) complex128 {
	i := r*s.Cols + c
	return complex(s.Re[i], s.Im[i])
}

// Set stores v at row r, column c.
func (s *Spectrum) Set(r, c int, v complex128) {
	i := r*s.Cols + c
	s.Re[i] = real(v)
	s.Im[i] = imag(v)
}

// Len returns Rows*Cols.
func (s *Spectrum) Len() int {
	return s.Rows * s.Cols
}

// CheckShape returns ErrShapeMismatch when s and o differ in size.
func (s *Spectrum) CheckShape(o *Spectrum) error {
	if s.Rows != o.Rows || s.Cols != o.Cols {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrShapeMismatch, s.Rows, s.Cols, o.Rows, o.Cols)
	}
	return nil
}

// Real returns the real plane as a grid and discards the imaginary plane.
func (s *Spectrum) Real() *grid.Grid {
	out := &grid.Grid{Rows: s.Rows, Cols: s.Cols, Data: make([]float64, len(s.Re))}
	copy(out.Data, s.Re)
	return out
}

// Magnitude returns |X| = sqrt(re² + im²) for every bin.
func (s *Spectrum) Magnitude() []float64 {
	out := make([]float64, len(s.Re))
	vecmath.Magnitude(out, s.Re, s.Im)
	return out
}

// Power returns |X|² = re² + im² for every bin.
func (s *Spectrum) Power() []float64 {
	out := make([]float64, len(s.Re))
	vecmath.Power(out, s.Re, s.Im)
	return out
}

// MaxMagnitude returns the largest bin magnitude.
func (s *Spectrum) MaxMagnitude() float64 {
	var peak float64
	for _, m := range s.Magnitude() {
		if m > peak {
			peak = m
		}
	}
	return peak
}

// scratchBuf holds pooled product planes for Multiply.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (p0, p1, p2, p3 []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 4 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n : 2*n], buf.data[2*n : 3*n], buf.data[3*n : need], buf
}

// Multiply returns the element-wise complex product a*b, or a*conj(b) when
// conjB is set.
func Multiply(a, b *Spectrum, conjB bool) (*Spectrum, error) {
	if err := a.CheckShape(b); err != nil {
		return nil, err
	}

	n := len(a.Re)
	out := NewSpectrum(a.Rows, a.Cols)
	rr, ii, ri, ir, buf := getScratch(n)
	defer scratchPool.Put(buf)

	vecmath.MulBlock(rr, a.Re, b.Re)
	vecmath.MulBlock(ii, a.Im, b.Im)
	vecmath.MulBlock(ri, a.Re, b.Im)
	vecmath.MulBlock(ir, a.Im, b.Re)

	if conjB {
		for i := 0; i < n; i++ {
			out.Re[i] = rr[i] + ii[i]
			out.Im[i] = ir[i] - ri[i]
		}
		return out, nil
	}

	for i := 0; i < n; i++ {
		out.Re[i] = rr[i] - ii[i]
		out.Im[i] = ri[i] + ir[i]
	}
	return out, nil
}
