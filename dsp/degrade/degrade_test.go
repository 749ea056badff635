package degrade

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-img/dsp/conv"
	"github.com/cwbudde/algo-img/dsp/kernel"
	"github.com/cwbudde/algo-img/dsp/restore"
	"github.com/cwbudde/algo-img/internal/testutil"
	"github.com/cwbudde/algo-img/stats/quality"
)

func TestApplyModel(t *testing.T) {
	img := testutil.Smooth(32, 32)

	out, model, err := Apply(img, 1, 20)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if out.Rows != 32 || out.Cols != 32 {
		t.Fatalf("shape = %dx%d, want 32x32", out.Rows, out.Cols)
	}
	if model.Kernel.Rows != 5 || model.Kernel.Cols != 5 {
		t.Fatalf("kernel = %dx%d, want 5x5", model.Kernel.Rows, model.Kernel.Cols)
	}
	if model.SNR != 20 {
		t.Fatalf("SNR = %v, want 20", model.SNR)
	}
	if math.Abs(model.Kernel.Sum()-1) > 1e-12 {
		t.Fatalf("kernel sum = %v, want 1", model.Kernel.Sum())
	}
	testutil.RequireInRange(t, out.Data, 0, 255, 0)
}

func TestApplyIsDeterministic(t *testing.T) {
	img := testutil.DeterministicNoise(4, 16, 16, 0, 255)

	a, _, err := Apply(img, 1.5, 5, WithSeed(7))
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := Apply(img, 1.5, 5, WithSeed(7))
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireGridNearlyEqual(t, a, b, 0)

	c, _, err := Apply(img, 1.5, 5, WithSeed(8))
	if err != nil {
		t.Fatal(err)
	}
	if d, _ := testutil.MaxAbsDiff(a.Data, c.Data); d == 0 {
		t.Fatal("different seeds produced identical output")
	}
}

func TestNoiseLevel(t *testing.T) {
	img := testutil.Smooth(64, 64)
	k, _ := kernel.ForDeviation(1)
	blurred, err := conv.Convolve(img, k, conv.StrategyFrequency)
	if err != nil {
		t.Fatal(err)
	}

	const snr = 10
	out, _, err := Apply(img, 1, snr, WithSeed(3))
	if err != nil {
		t.Fatal(err)
	}

	residual, _ := out.Sub(blurred)
	mean, got := quality.MeanStdDev(residual)
	_, signal := quality.MeanStdDev(img)
	want := signal / snr

	if math.Abs(got-want) > 0.1*want {
		t.Fatalf("noise stddev = %v, want %v within 10%%", got, want)
	}
	if math.Abs(mean) > 0.1*want {
		t.Fatalf("noise mean = %v, want about 0", mean)
	}
}

func TestConstantImageHasNoNoise(t *testing.T) {
	img := testutil.Constant(12, 12, 80)
	out, _, err := Apply(img, 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireGridNearlyEqual(t, out, img, 1e-9)
}

func TestInverseRecoversNoiselessDegradation(t *testing.T) {
	img := testutil.Smooth(32, 32)

	degraded, model, err := Apply(img, 1, 1e9)
	if err != nil {
		t.Fatal(err)
	}
	if mse, _ := quality.MSE(degraded, img); mse < 1 {
		t.Fatalf("degradation too weak: MSE %v", mse)
	}

	f, err := restore.New(restore.MethodInverse)
	if err != nil {
		t.Fatal(err)
	}
	restored, err := f.Restore(degraded, model)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireGridNearlyEqual(t, restored, img, 1e-3)
}

func TestAddNoiseZeroStdDev(t *testing.T) {
	g := testutil.Ramp(4, 4)
	want := g.Clone()
	AddNoise(g, 0, 1)
	testutil.RequireGridNearlyEqual(t, g, want, 0)
}

func TestApplyErrors(t *testing.T) {
	img := testutil.Ones(8, 8)

	tests := []struct {
		name string
		dev  float64
		snr  float64
		want error
	}{
		{"zero deviation", 0, 10, kernel.ErrInvalidSigma},
		{"tiny deviation", 0.1, 10, kernel.ErrInvalidSize},
		{"zero snr", 1, 0, restore.ErrInvalidSNR},
		{"nan snr", 1, math.NaN(), restore.ErrInvalidSNR},
		{"kernel too large", 3, 10, conv.ErrKernelTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := Apply(img, tt.dev, tt.snr); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
