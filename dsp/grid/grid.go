package grid

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-img/dsp/core"
)

// Errors returned by grid constructors and shape checks.
var (
	ErrInvalidShape  = errors.New("grid: rows and cols must be positive")
	ErrDataLength    = errors.New("grid: data length does not match shape")
	ErrRagged        = errors.New("grid: rows have different lengths")
	ErrShapeMismatch = errors.New("grid: shape mismatch")
)

// Grid is a single-channel 2-D array of samples stored row-major.
type Grid struct {
	Rows int
	Cols int
	Data []float64
}

// New returns a zero-filled grid.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidShape, rows, cols)
	}
	return &Grid{Rows: rows, Cols: cols, Data: make([]float64, rows*cols)}, nil
}

// Fill returns a grid with every sample set to v.
func Fill(rows, cols int, v float64) (*Grid, error) {
	g, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range g.Data {
		g.Data[i] = v
	}
	return g, nil
}

// FromSlice copies data into a new rows x cols grid.
func FromSlice(rows, cols int, data []float64) (*Grid, error) {
	g, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrDataLength, len(data), rows*cols)
	}
	copy(g.Data, data)
	return g, nil
}

// FromRows copies a rectangular [][]float64 into a new grid.
func FromRows(rows [][]float64) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: 0 rows", ErrInvalidShape)
	}
	g, err := New(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != g.Cols {
			return nil, fmt.Errorf("%w: row %d has %d samples, want %d", ErrRagged, r, len(row), g.Cols)
		}
		copy(g.Row(r), row)
	}
	return g, nil
}

// At returns the sample at row r, column c.
func (g *Grid) At(r, c int) float64 {
	return g.Data[r*g.Cols+c]
}

// Set stores v at row r, column c.
func (g *Grid) Set(r, c int, v float64) {
	g.Data[r*g.Cols+c] = v
}

// Row returns row r as a sub-slice of Data.
func (g *Grid) Row(r int) []float64 {
	return g.Data[r*g.Cols : (r+1)*g.Cols]
}

// Len returns Rows*Cols.
func (g *Grid) Len() int {
	return g.Rows * g.Cols
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	out := &Grid{Rows: g.Rows, Cols: g.Cols, Data: make([]float64, len(g.Data))}
	copy(out.Data, g.Data)
	return out
}

// SameShape reports whether g and o have identical dimensions.
func (g *Grid) SameShape(o *Grid) bool {
	return g.Rows == o.Rows && g.Cols == o.Cols
}

// CheckShape returns ErrShapeMismatch when g and o differ in size.
func (g *Grid) CheckShape(o *Grid) error {
	if !g.SameShape(o) {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrShapeMismatch, g.Rows, g.Cols, o.Rows, o.Cols)
	}
	return nil
}

// Sum returns the sum of all samples.
func (g *Grid) Sum() float64 {
	var s float64
	for _, v := range g.Data {
		s += v
	}
	return s
}

// MinMax returns the smallest and largest sample.
func (g *Grid) MinMax() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range g.Data {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// Clip limits every sample to [lo, hi] in place.
func (g *Grid) Clip(lo, hi float64) {
	for i, v := range g.Data {
		g.Data[i] = core.Clamp(v, lo, hi)
	}
}

// ClipIntensity limits every sample to the 8-bit intensity range in place.
func (g *Grid) ClipIntensity() {
	g.Clip(core.MinIntensity, core.MaxIntensity)
}

// Sub returns g - o.
func (g *Grid) Sub(o *Grid) (*Grid, error) {
	if err := g.CheckShape(o); err != nil {
		return nil, err
	}
	out := g.Clone()
	for i, v := range o.Data {
		out.Data[i] -= v
	}
	return out, nil
}

// AddScaled returns g + scale*o.
func (g *Grid) AddScaled(o *Grid, scale float64) (*Grid, error) {
	if err := g.CheckShape(o); err != nil {
		return nil, err
	}
	out := g.Clone()
	for i, v := range o.Data {
		out.Data[i] += scale * v
	}
	return out, nil
}
