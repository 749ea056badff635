package conv

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-img/dsp/fft2"
	"github.com/cwbudde/algo-img/dsp/grid"
	"github.com/cwbudde/algo-img/dsp/kernel"
	"github.com/cwbudde/algo-img/internal/testutil"
)

func mustKernel(t *testing.T, rows [][]float64) *kernel.Kernel {
	t.Helper()
	k, err := kernel.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	return k
}

func mustGaussian(t *testing.T, size int) *kernel.Kernel {
	t.Helper()
	k, err := kernel.Gaussian(size, kernel.UnitSigma)
	if err != nil {
		t.Fatalf("Gaussian(%d): %v", size, err)
	}
	return k
}

func mustConvolve(t *testing.T, img *grid.Grid, k *kernel.Kernel, s Strategy, opts ...Option) *grid.Grid {
	t.Helper()
	out, err := Convolve(img, k, s, opts...)
	if err != nil {
		t.Fatalf("Convolve(%v): %v", s, err)
	}
	if out.Rows != img.Rows || out.Cols != img.Cols {
		t.Fatalf("shape = %dx%d, want %dx%d", out.Rows, out.Cols, img.Rows, img.Cols)
	}
	return out
}

// asymmetric exposes orientation mistakes that symmetric kernels hide.
var asymmetric = [][]float64{
	{0.0, 0.1, 0.0},
	{0.2, 0.3, 0.0},
	{0.0, 0.0, 0.4},
}

func TestFrequencySpike(t *testing.T) {
	img := testutil.Spike(9, 9, 1, 4, 4, 255)
	k, _ := kernel.Uniform(3)

	out := mustConvolve(t, img, k, StrategyFrequency)

	want := testutil.Ones(9, 9)
	for r := 3; r <= 5; r++ {
		for c := 3; c <= 5; c++ {
			want.Set(r, c, (8+255)/9.0)
		}
	}
	interior := func(g *grid.Grid) *grid.Grid {
		c, err := grid.Crop(g, 1, 1, 7, 7)
		if err != nil {
			t.Fatalf("Crop: %v", err)
		}
		return c
	}
	testutil.RequireGridNearlyEqual(t, interior(out), interior(want), 1e-4)
}

func TestImpulseResponseReproducesKernel(t *testing.T) {
	k := mustKernel(t, asymmetric)
	img := testutil.Impulse(7, 8, 3, 4)

	for _, s := range Strategies() {
		t.Run(s.String(), func(t *testing.T) {
			out := mustConvolve(t, img, k, s)
			for a := 0; a < k.Rows; a++ {
				for b := 0; b < k.Cols; b++ {
					got := out.At(3-1+a, 4-1+b)
					if diff := got - k.At(a, b); diff > 1e-9 || diff < -1e-9 {
						t.Fatalf("out[%d,%d] = %v, want %v", 2+a, 3+b, got, k.At(a, b))
					}
				}
			}
		})
	}
}

func TestSpatialClampedCorner(t *testing.T) {
	img, _ := grid.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	k, _ := kernel.Uniform(3)

	out := mustConvolve(t, img, k, StrategySpatial)

	// Rows {0,0,1} and cols {0,0,1}: 1+1+2 + 1+1+2 + 4+4+5 = 21.
	if got := out.At(0, 0); got < 21.0/9-1e-12 || got > 21.0/9+1e-12 {
		t.Fatalf("corner = %v, want %v", got, 21.0/9)
	}
	if got := out.At(1, 1); got < 5-1e-12 || got > 5+1e-12 {
		t.Fatalf("center = %v, want 5", got)
	}
}

func TestSpatialIdentity(t *testing.T) {
	img := testutil.DeterministicNoise(1, 6, 7, 0, 255)
	k, _ := kernel.Identity(5)

	for _, b := range []Boundary{Periodic, ReplicateEdge} {
		out := mustConvolve(t, img, k, StrategySpatial, WithBoundary(b))
		testutil.RequireGridNearlyEqual(t, out, img, 0)
	}
}

func TestOutputWithinInputEnvelope(t *testing.T) {
	img := testutil.DeterministicNoise(7, 16, 12, 0, 255)
	lo, hi := img.MinMax()
	k := mustGaussian(t, 5)

	for _, s := range Strategies() {
		for _, b := range []Boundary{Periodic, ReplicateEdge} {
			out := mustConvolve(t, img, k, s, WithBoundary(b))
			testutil.RequireInRange(t, out.Data, lo, hi, 1e-9)
		}
	}
}

func TestFrequencyMatchesSpatialPeriodic(t *testing.T) {
	shapes := [][2]int{{8, 8}, {12, 10}, {9, 15}}
	kernels := map[string]*kernel.Kernel{
		"gaussian5":  mustGaussian(t, 5),
		"asymmetric": mustKernel(t, asymmetric),
	}

	for _, shape := range shapes {
		img := testutil.DeterministicNoise(3, shape[0], shape[1], 0, 255)
		for name, k := range kernels {
			spatial := mustConvolve(t, img, k, StrategySpatial, WithBoundary(Periodic))
			freq := mustConvolve(t, img, k, StrategyFrequency)
			t.Run(name, func(t *testing.T) {
				testutil.RequireGridNearlyEqual(t, freq, spatial, 1e-9)
			})
		}
	}
}

func TestFrequencyReplicateMatchesSpatial(t *testing.T) {
	img := testutil.Ramp(11, 13)
	img.Set(0, 0, 255)
	img.Set(10, 12, 0)
	k := mustKernel(t, asymmetric)

	for _, backend := range []fft2.Backend{fft2.BackendAuto, fft2.BackendGonum, fft2.BackendGoDSP} {
		t.Run(backend.String(), func(t *testing.T) {
			spatial := mustConvolve(t, img, k, StrategySpatial)
			freq := mustConvolve(t, img, k, StrategyFrequency,
				WithBoundary(ReplicateEdge), WithBackend(backend))
			testutil.RequireGridNearlyEqual(t, freq, spatial, 1e-9)
		})
	}
}

func TestNativeBoundariesDifferOnlyAtBorder(t *testing.T) {
	img := testutil.Ramp(10, 10)
	k := mustGaussian(t, 3)

	spatial := mustConvolve(t, img, k, StrategySpatial)
	freq := mustConvolve(t, img, k, StrategyFrequency)

	for r := 1; r < 9; r++ {
		for c := 1; c < 9; c++ {
			if d := spatial.At(r, c) - freq.At(r, c); d > 1e-9 || d < -1e-9 {
				t.Fatalf("interior (%d,%d): spatial %v, frequency %v", r, c, spatial.At(r, c), freq.At(r, c))
			}
		}
	}

	// The ramp's corners wrap onto the opposite extreme in periodic mode.
	if d := spatial.At(0, 0) - freq.At(0, 0); d > -1 && d < 1 {
		t.Fatalf("corner: spatial %v and frequency %v should differ", spatial.At(0, 0), freq.At(0, 0))
	}
}

func TestParallelMatchesSerial(t *testing.T) {
	img := testutil.DeterministicNoise(11, 33, 17, 0, 255)
	k := mustGaussian(t, 7)

	for _, s := range Strategies() {
		serial := mustConvolve(t, img, k, s)
		parallel := mustConvolve(t, img, k, s, WithWorkers(4))
		testutil.RequireGridNearlyEqual(t, parallel, serial, 0)
	}
}

func TestWithTransformer(t *testing.T) {
	tr, err := fft2.New(fft2.BackendGonum)
	if err != nil {
		t.Fatalf("fft2.New: %v", err)
	}
	img := testutil.Smooth(10, 6)
	k := mustGaussian(t, 3)

	got := mustConvolve(t, img, k, StrategyFrequency, WithTransformer(tr))
	want := mustConvolve(t, img, k, StrategySpatial, WithBoundary(Periodic))
	testutil.RequireGridNearlyEqual(t, got, want, 1e-9)
}

func TestCenterKernel(t *testing.T) {
	k := mustKernel(t, asymmetric)
	buf, err := CenterKernel(k, 5, 6)
	if err != nil {
		t.Fatalf("CenterKernel: %v", err)
	}
	if buf.At(0, 0) != k.At(1, 1) {
		t.Fatalf("origin = %v, want kernel center %v", buf.At(0, 0), k.At(1, 1))
	}
	if buf.At(4, 5) != k.At(0, 0) {
		t.Fatalf("(4,5) = %v, want kernel corner %v", buf.At(4, 5), k.At(0, 0))
	}
	if buf.At(1, 1) != k.At(2, 2) {
		t.Fatalf("(1,1) = %v, want %v", buf.At(1, 1), k.At(2, 2))
	}
	if buf.Sum() != k.Sum() {
		t.Fatalf("sum = %v, want %v", buf.Sum(), k.Sum())
	}
}

func TestErrors(t *testing.T) {
	img := testutil.Ones(4, 4)
	big := mustGaussian(t, 5)
	small := mustGaussian(t, 3)

	for _, s := range Strategies() {
		if _, err := Convolve(img, big, s); !errors.Is(err, ErrKernelTooLarge) {
			t.Fatalf("%v: expected ErrKernelTooLarge, got %v", s, err)
		}
		if _, err := Convolve(nil, small, s); !errors.Is(err, ErrEmptyInput) {
			t.Fatalf("%v: expected ErrEmptyInput, got %v", s, err)
		}
		if _, err := Convolve(img, nil, s); !errors.Is(err, ErrEmptyKernel) {
			t.Fatalf("%v: expected ErrEmptyKernel, got %v", s, err)
		}
		if _, err := Convolve(img, small, s, WithBoundary(Boundary(42))); !errors.Is(err, ErrUnknownBoundary) {
			t.Fatalf("%v: expected ErrUnknownBoundary, got %v", s, err)
		}
	}

	if _, err := Convolve(img, small, Strategy(9)); !errors.Is(err, ErrUnknownStrategy) {
		t.Fatalf("expected ErrUnknownStrategy, got %v", err)
	}
	if _, err := CenterKernel(big, 4, 4); !errors.Is(err, ErrKernelTooLarge) {
		t.Fatalf("expected ErrKernelTooLarge, got %v", err)
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in   string
		want Strategy
	}{
		{"spatial", StrategySpatial},
		{"Frequency", StrategyFrequency},
		{"  frequency ", StrategyFrequency},
	}
	for _, tt := range tests {
		got, err := ParseStrategy(tt.in)
		if err != nil {
			t.Fatalf("ParseStrategy(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseStrategy(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseStrategy("fourier"); !errors.Is(err, ErrUnknownStrategy) {
		t.Fatalf("expected ErrUnknownStrategy, got %v", err)
	}
}

func TestParseBoundary(t *testing.T) {
	for _, b := range Boundaries() {
		got, err := ParseBoundary(b.String())
		if err != nil || got != b {
			t.Fatalf("ParseBoundary(%q) = %v, %v", b.String(), got, err)
		}
	}
	if _, err := ParseBoundary("mirror"); !errors.Is(err, ErrUnknownBoundary) {
		t.Fatalf("expected ErrUnknownBoundary, got %v", err)
	}
}

func TestEffectiveBoundary(t *testing.T) {
	s, _ := NewSpatial()
	f, _ := NewFrequency()
	if s.Boundary() != ReplicateEdge {
		t.Fatalf("spatial native = %v, want replicate", s.Boundary())
	}
	if f.Boundary() != Periodic {
		t.Fatalf("frequency native = %v, want periodic", f.Boundary())
	}
}
