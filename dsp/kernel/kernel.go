// Package kernel builds the small square weight arrays used for smoothing and
// as degradation models.
//
// Every kernel has odd side lengths so that its logical center, (Rows/2,
// Cols/2), is a sample. Smoothing kernels are normalized to unit mass.
package kernel

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-img/dsp/grid"
)

// Errors returned by kernel constructors.
var (
	ErrInvalidSize  = errors.New("kernel: size must be positive")
	ErrEvenSize     = errors.New("kernel: side lengths must be odd")
	ErrInvalidSigma = errors.New("kernel: sigma must be positive and finite")
)

// Kernel is a 2-D weight array with odd side lengths.
type Kernel struct {
	*grid.Grid
}

// New wraps g as a kernel after checking its sides are odd. g is not copied.
func New(g *grid.Grid) (*Kernel, error) {
	if g == nil {
		return nil, ErrInvalidSize
	}
	if g.Rows%2 == 0 || g.Cols%2 == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEvenSize, g.Rows, g.Cols)
	}
	return &Kernel{Grid: g}, nil
}

// FromRows builds a kernel from rectangular rows.
func FromRows(rows [][]float64) (*Kernel, error) {
	g, err := grid.FromRows(rows)
	if err != nil {
		return nil, err
	}
	return New(g)
}

// Uniform returns a size x size box kernel with every weight 1/size².
func Uniform(size int) (*Kernel, error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}
	g, err := grid.Fill(size, size, 1/float64(size*size))
	if err != nil {
		return nil, err
	}
	return &Kernel{Grid: g}, nil
}

// Identity returns a size x size kernel with a single 1 at its center.
func Identity(size int) (*Kernel, error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}
	g, err := grid.New(size, size)
	if err != nil {
		return nil, err
	}
	g.Set(size/2, size/2, 1)
	return &Kernel{Grid: g}, nil
}

// Center returns the row and column of the kernel's logical center.
func (k *Kernel) Center() (row, col int) {
	return k.Rows / 2, k.Cols / 2
}

// Flip returns the kernel rotated by 180 degrees.
func (k *Kernel) Flip() *Kernel {
	out := k.Clone()
	n := len(out.Data)
	for i, v := range k.Data {
		out.Data[n-1-i] = v
	}
	return &Kernel{Grid: out}
}

// Normalize scales the weights in place so they sum to 1. A kernel whose
// weights sum to zero is left unchanged.
func (k *Kernel) Normalize() {
	sum := k.Sum()
	if sum == 0 {
		return
	}
	for i := range k.Data {
		k.Data[i] /= sum
	}
}

func validateSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if size%2 == 0 {
		return fmt.Errorf("%w: %d", ErrEvenSize, size)
	}
	return nil
}
