package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-img/dsp/grid"
)

func mustGrid(rows, cols int) *grid.Grid {
	g, err := grid.New(rows, cols)
	if err != nil {
		panic(err)
	}
	return g
}

// Constant returns a rows x cols image filled with v.
func Constant(rows, cols int, v float64) *grid.Grid {
	g := mustGrid(rows, cols)
	for i := range g.Data {
		g.Data[i] = v
	}
	return g
}

// Ones returns a rows x cols image filled with 1.0.
func Ones(rows, cols int) *grid.Grid {
	return Constant(rows, cols, 1)
}

// Impulse returns a zero image with a single 1 at (r, c).
// Out-of-range positions yield an all-zero image.
func Impulse(rows, cols, r, c int) *grid.Grid {
	g := mustGrid(rows, cols)
	if r >= 0 && r < rows && c >= 0 && c < cols {
		g.Set(r, c, 1)
	}
	return g
}

// Spike returns a background image with one pixel set to peak.
func Spike(rows, cols int, background float64, r, c int, peak float64) *grid.Grid {
	g := Constant(rows, cols, background)
	g.Set(r, c, peak)
	return g
}

// Ramp returns an image whose value grows linearly from 0 at the top-left to
// 255 at the bottom-right.
func Ramp(rows, cols int) *grid.Grid {
	g := mustGrid(rows, cols)
	span := float64(rows + cols - 2)
	if span == 0 {
		span = 1
	}
	for r := 0; r < rows; r++ {
		row := g.Row(r)
		for c := range row {
			row[c] = 255 * float64(r+c) / span
		}
	}
	return g
}

// Smooth returns a band-limited test pattern within [28, 228].
func Smooth(rows, cols int) *grid.Grid {
	g := mustGrid(rows, cols)
	for r := 0; r < rows; r++ {
		row := g.Row(r)
		for c := range row {
			u := 2 * math.Pi * float64(r) / float64(rows)
			v := 2 * math.Pi * float64(c) / float64(cols)
			row[c] = 128 + 60*math.Sin(u) + 40*math.Cos(2*v)
		}
	}
	return g
}

// DeterministicNoise returns uniform noise in [lo, hi) with a fixed seed.
func DeterministicNoise(seed int64, rows, cols int, lo, hi float64) *grid.Grid {
	g := mustGrid(rows, cols)
	rng := rand.New(rand.NewSource(seed))
	for i := range g.Data {
		g.Data[i] = lo + rng.Float64()*(hi-lo)
	}
	return g
}
