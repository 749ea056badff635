// Package quality measures images and compares restorations with their
// originals.
package quality

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-img/dsp/grid"
)

// Errors returned by the comparison metrics.
var (
	ErrEmpty         = errors.New("quality: empty image")
	ErrShapeMismatch = errors.New("quality: image shapes differ")
)

// Stats holds whole-image intensity statistics.
type Stats struct {
	Rows     int
	Cols     int
	Mean     float64
	Variance float64 // population
	StdDev   float64 // population
	Min      float64
	MinRow   int
	MinCol   int
	Max      float64
	MaxRow   int
	MaxCol   int
	Range    float64 // max - min
	Energy   float64 // sum of squares
	Skewness float64
	Kurtosis float64 // excess
}

// Calculate computes the statistics of g. An empty grid yields zero Stats.
func Calculate(g *grid.Grid) Stats {
	if g == nil || len(g.Data) == 0 {
		return Stats{}
	}

	s := Stats{Rows: g.Rows, Cols: g.Cols}
	s.Mean, s.Variance = stat.PopMeanVariance(g.Data, nil)
	s.StdDev = math.Sqrt(s.Variance)

	s.Min, s.Max = g.Data[0], g.Data[0]
	var minPos, maxPos int
	for i, x := range g.Data {
		s.Energy += x * x
		if x < s.Min {
			s.Min, minPos = x, i
		}
		if x > s.Max {
			s.Max, maxPos = x, i
		}
	}
	s.MinRow, s.MinCol = minPos/g.Cols, minPos%g.Cols
	s.MaxRow, s.MaxCol = maxPos/g.Cols, maxPos%g.Cols
	s.Range = s.Max - s.Min

	if s.Variance > 0 && len(g.Data) > 3 {
		s.Skewness = stat.Skew(g.Data, nil)
		s.Kurtosis = stat.ExKurtosis(g.Data, nil)
	}
	return s
}

// MeanStdDev returns the mean and population standard deviation of g.
func MeanStdDev(g *grid.Grid) (mean, stddev float64) {
	if g == nil || len(g.Data) == 0 {
		return 0, 0
	}
	return stat.PopMeanStdDev(g.Data, nil)
}

func checkPair(a, b *grid.Grid) error {
	if a == nil || b == nil || len(a.Data) == 0 || len(b.Data) == 0 {
		return ErrEmpty
	}
	if a.Rows != b.Rows || a.Cols != b.Cols {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrShapeMismatch, a.Rows, a.Cols, b.Rows, b.Cols)
	}
	return nil
}
