package sharpen

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-img/dsp/conv"
	"github.com/cwbudde/algo-img/dsp/grid"
	"github.com/cwbudde/algo-img/dsp/kernel"
	"github.com/cwbudde/algo-img/internal/testutil"
)

func mustSharpen(t *testing.T, img *grid.Grid, opts Options) *grid.Grid {
	t.Helper()
	out, err := UnsharpMask(img, opts)
	if err != nil {
		t.Fatalf("UnsharpMask: %v", err)
	}
	if out.Rows != img.Rows || out.Cols != img.Cols {
		t.Fatalf("shape = %dx%d, want %dx%d", out.Rows, out.Cols, img.Rows, img.Cols)
	}
	return out
}

func TestConstantImageUnchanged(t *testing.T) {
	img := testutil.Constant(12, 10, 90)

	for _, s := range conv.Strategies() {
		opts := DefaultOptions()
		opts.Strategy = s
		opts.Scale = 3
		out := mustSharpen(t, img, opts)
		testutil.RequireGridNearlyEqual(t, out, img, 1e-9)
	}
}

func TestSpikeBoost(t *testing.T) {
	img := testutil.Spike(9, 9, 1, 4, 4, 255)

	for _, s := range conv.Strategies() {
		opts := DefaultOptions()
		opts.Strategy = s
		out := mustSharpen(t, img, opts)

		// Center weight of the 3x3 unit-sigma Gaussian.
		w := 0.2041799555716581
		want := 255 + (255 - (1 + 254*w))
		if math.Abs(out.At(4, 4)-want) > 1e-6 {
			t.Fatalf("%v: center = %v, want %v", s, out.At(4, 4), want)
		}
		if out.At(4, 4) <= 255 {
			t.Fatalf("%v: result was clipped", s)
		}

		// Neighbours are darker than their smoothed value, so the gate drops them.
		for _, p := range [][2]int{{3, 3}, {3, 4}, {4, 5}, {5, 5}} {
			if got := out.At(p[0], p[1]); got != 1 {
				t.Fatalf("%v: neighbour %v = %v, want 1", s, p, got)
			}
		}
	}
}

func TestThresholdGateIsOneSided(t *testing.T) {
	img := testutil.DeterministicNoise(3, 16, 16, 0, 255)
	k, _ := kernel.Gaussian(5, kernel.UnitSigma)
	smoothed, err := conv.Convolve(img, k, conv.StrategySpatial)
	if err != nil {
		t.Fatal(err)
	}

	for _, threshold := range []float64{-10, 0, 25} {
		opts := Options{
			Strategy:  conv.StrategySpatial,
			Size:      5,
			Sigma:     kernel.UnitSigma,
			Threshold: threshold,
			Scale:     0.7,
		}
		out := mustSharpen(t, img, opts)

		for i, x := range img.Data {
			d := x - smoothed.Data[i]
			want := x
			if d >= threshold {
				want = x + 0.7*d
			}
			if math.Abs(out.Data[i]-want) > 1e-9 {
				t.Fatalf("threshold %v, pixel %d: got %v, want %v", threshold, i, out.Data[i], want)
			}
		}
	}
}

func TestZeroScaleIsIdentity(t *testing.T) {
	img := testutil.Ramp(8, 8)
	opts := DefaultOptions()
	opts.Scale = 0
	out := mustSharpen(t, img, opts)
	testutil.RequireGridNearlyEqual(t, out, img, 0)
}

func TestStrategiesAgreeWithMatchingBoundary(t *testing.T) {
	img := testutil.Smooth(16, 12)

	spatial := DefaultOptions()
	spatial.Strategy = conv.StrategySpatial
	spatial.Conv = []conv.Option{conv.WithBoundary(conv.Periodic)}

	freq := DefaultOptions()
	freq.Strategy = conv.StrategyFrequency

	a := mustSharpen(t, img, spatial)
	b := mustSharpen(t, img, freq)

	// Near-zero detail may land on either side of the gate.
	testutil.RequireGridNearlyEqual(t, a, b, 1e-9)
}

func TestMaskReuse(t *testing.T) {
	m, err := New(DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	img := testutil.DeterministicNoise(8, 10, 10, 0, 255)
	a, err := m.Apply(img)
	if err != nil {
		t.Fatal(err)
	}
	b, err := m.Apply(img)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireGridNearlyEqual(t, a, b, 0)
}

func TestErrors(t *testing.T) {
	base := DefaultOptions()

	tests := []struct {
		name   string
		modify func(*Options)
		want   error
	}{
		{"even size", func(o *Options) { o.Size = 4 }, kernel.ErrEvenSize},
		{"zero size", func(o *Options) { o.Size = 0 }, kernel.ErrInvalidSize},
		{"zero sigma", func(o *Options) { o.Sigma = 0 }, kernel.ErrInvalidSigma},
		{"nan threshold", func(o *Options) { o.Threshold = math.NaN() }, ErrInvalidThreshold},
		{"inf scale", func(o *Options) { o.Scale = math.Inf(1) }, ErrInvalidScale},
		{"unknown strategy", func(o *Options) { o.Strategy = conv.Strategy(5) }, conv.ErrUnknownStrategy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := base
			tt.modify(&opts)
			if _, err := New(opts); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}

	opts := base
	opts.Size = 7
	if _, err := UnsharpMask(testutil.Ones(5, 5), opts); !errors.Is(err, conv.ErrKernelTooLarge) {
		t.Fatalf("expected ErrKernelTooLarge, got %v", err)
	}
}
