package conv

import (
	"fmt"

	"github.com/cwbudde/algo-img/dsp/core"
	"github.com/cwbudde/algo-img/dsp/grid"
	"github.com/cwbudde/algo-img/dsp/kernel"
)

// Spatial convolves by direct summation over each pixel's neighbourhood.
// It is the edge-exact reference for the frequency strategy.
type Spatial struct {
	boundary Boundary
	workers  int
}

// NewSpatial returns a spatial-domain convolver.
func NewSpatial(opts ...Option) (*Spatial, error) {
	o := applyOptions(opts)

	switch o.Boundary {
	case NativeBoundary, Periodic, ReplicateEdge:
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownBoundary, o.Boundary)
	}
	return &Spatial{boundary: o.Boundary, workers: o.Workers}, nil
}

// Boundary returns the effective boundary policy.
func (s *Spatial) Boundary() Boundary {
	if s.boundary == NativeBoundary {
		return ReplicateEdge
	}
	return s.boundary
}

// Convolve returns img convolved with k.
func (s *Spatial) Convolve(img *grid.Grid, k *kernel.Kernel) (*grid.Grid, error) {
	if err := Validate(img, k); err != nil {
		return nil, err
	}

	index := grid.ClampIndex
	if s.Boundary() == Periodic {
		index = grid.WrapIndex
	}

	flipped := k.Flip()
	halfRows := (k.Rows - 1) / 2
	halfCols := (k.Cols - 1) / 2
	out := &grid.Grid{Rows: img.Rows, Cols: img.Cols, Data: make([]float64, len(img.Data))}

	core.ParallelRange(s.workers, img.Rows, func(start, end int) {
		for i := start; i < end; i++ {
			dst := out.Row(i)
			for j := range dst {
				var acc float64
				for a := 0; a < flipped.Rows; a++ {
					src := img.Row(index(i-halfRows+a, img.Rows))
					for b, w := range flipped.Row(a) {
						acc += src[index(j-halfCols+b, img.Cols)] * w
					}
				}
				dst[j] = acc
			}
		}
	})
	return out, nil
}
