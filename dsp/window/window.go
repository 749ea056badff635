// Package window provides separable apodization windows for images.
//
// A 2-D window is the outer product of a row window and a column window.
// Tapering an image towards its borders before a forward transform hides the
// discontinuity the periodic extension creates at the edges, which otherwise
// shows up as a bright cross through the center of a displayed spectrum.
package window

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-img/dsp/grid"
)

// Errors returned by window construction.
var (
	ErrUnknownType   = errors.New("window: unknown type")
	ErrInvalidLength = errors.New("window: length must be positive")
	ErrInvalidAlpha  = errors.New("window: tukey alpha must lie in [0, 1]")
	ErrEmptyInput    = errors.New("window: empty input")
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeTukey
)

var typeNames = map[Type]string{
	TypeRectangular: "rectangular",
	TypeHann:        "hann",
	TypeHamming:     "hamming",
	TypeBlackman:    "blackman",
	TypeTukey:       "tukey",
}

// Cosine-sum coefficients: w(x) = sum_k c[k] * cos(2*pi*k*x).
var (
	hannCoeffs     = []float64{0.5, -0.5}
	hammingCoeffs  = []float64{0.54, -0.46}
	blackmanCoeffs = []float64{0.42, -0.5, 0.08}
)

// Types lists every window type in declaration order.
func Types() []Type {
	return []Type{TypeRectangular, TypeHann, TypeHamming, TypeBlackman, TypeTukey}
}

// String returns the name accepted by ParseType.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType maps a window name to its Type.
func ParseType(name string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, t := range Types() {
		if typeNames[t] == name {
			return t, nil
		}
	}
	return TypeRectangular, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// Option configures window generation.
type Option func(*config)

type config struct {
	alpha    float64
	periodic bool
}

func defaultConfig() config {
	return config{alpha: 0.5}
}

// WithAlpha sets the tapered fraction of a Tukey window.
func WithAlpha(v float64) Option {
	return func(c *config) {
		c.alpha = v
	}
}

// WithPeriodic selects the periodic form (denominator n instead of n-1).
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Generate returns the n coefficients of window t.
func Generate(t Type, n int, opts ...Option) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	if _, ok := typeNames[t]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if t == TypeTukey && (cfg.alpha < 0 || cfg.alpha > 1 || math.IsNaN(cfg.alpha)) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAlpha, cfg.alpha)
	}

	out := make([]float64, n)
	if n == 1 {
		out[0] = 1
		return out, nil
	}

	den := float64(n - 1)
	if cfg.periodic {
		den = float64(n)
	}
	for i := range out {
		out[i] = evalWindow(t, float64(i)/den, cfg.alpha)
	}
	return out, nil
}

// Apply returns g multiplied by the separable window t: sample (r, c) is
// scaled by w_rows[r] * w_cols[c].
func Apply(t Type, g *grid.Grid, opts ...Option) (*grid.Grid, error) {
	if g == nil || len(g.Data) == 0 {
		return nil, ErrEmptyInput
	}

	rowWin, err := Generate(t, g.Rows, opts...)
	if err != nil {
		return nil, err
	}
	colWin, err := Generate(t, g.Cols, opts...)
	if err != nil {
		return nil, err
	}

	out := &grid.Grid{Rows: g.Rows, Cols: g.Cols, Data: make([]float64, len(g.Data))}
	for r := 0; r < g.Rows; r++ {
		dst := out.Row(r)
		vecmath.MulBlock(dst, g.Row(r), colWin)
		for c := range dst {
			dst[c] *= rowWin[r]
		}
	}
	return out, nil
}

// CoherentGain returns the mean coefficient, the factor by which the window
// scales a constant input.
func CoherentGain(coeffs []float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}
	var sum float64
	for _, c := range coeffs {
		sum += c
	}
	return sum / float64(len(coeffs))
}

func evalWindow(t Type, x, alpha float64) float64 {
	switch t {
	case TypeHann:
		return cosineSum(x, hannCoeffs)
	case TypeHamming:
		return cosineSum(x, hammingCoeffs)
	case TypeBlackman:
		return cosineSum(x, blackmanCoeffs)
	case TypeTukey:
		return tukeyAt(x, alpha)
	default:
		return 1
	}
}

func cosineSum(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x
	var sum float64
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}
	return sum
}

func tukeyAt(x, alpha float64) float64 {
	if alpha <= 0 {
		return 1
	}
	if alpha >= 1 {
		return cosineSum(x, hannCoeffs)
	}

	a := alpha / 2
	switch {
	case x < a:
		return 0.5 * (1 + math.Cos(math.Pi*(2*x/alpha-1)))
	case x <= 1-a:
		return 1
	default:
		return 0.5 * (1 + math.Cos(math.Pi*(2*x/alpha-2/alpha+1)))
	}
}
