package main

import (
	"errors"
	"flag"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-img/dsp/conv"
	"github.com/cwbudde/algo-img/dsp/degrade"
	"github.com/cwbudde/algo-img/dsp/fft2"
	"github.com/cwbudde/algo-img/dsp/grid"
	"github.com/cwbudde/algo-img/dsp/kernel"
	"github.com/cwbudde/algo-img/dsp/restore"
	"github.com/cwbudde/algo-img/dsp/sharpen"
	"github.com/cwbudde/algo-img/dsp/spectrum"
	"github.com/cwbudde/algo-img/dsp/window"
	"github.com/cwbudde/algo-img/imageio"
	"github.com/cwbudde/algo-img/stats/quality"
)

var errMissingPath = errors.New("both -in and -out are required")

// ioFlags holds the flags shared by every image-to-image command.
type ioFlags struct {
	in      string
	out     string
	display string
	backend string
	workers int
}

func (e *env) newFlagSet(name, display string) (*flag.FlagSet, *ioFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)

	f := &ioFlags{}
	fs.StringVar(&f.in, "in", "", "input image path")
	fs.StringVar(&f.out, "out", "", "output image path (format from extension)")
	fs.StringVar(&f.display, "display", display, "mapping to 8 bit: cut or normalize")
	fs.StringVar(&f.backend, "backend", e.cfg.backend.String(), "FFT backend: auto, algofft, gonum or godsp")
	fs.IntVar(&f.workers, "workers", e.cfg.workers, "worker goroutines")
	return fs, f
}

type resolved struct {
	img     *grid.Grid
	display imageio.Display
	backend fft2.Backend
}

func (f *ioFlags) resolve() (resolved, error) {
	if f.in == "" || f.out == "" {
		return resolved{}, errMissingPath
	}
	if _, err := imageio.FormatFromPath(f.out); err != nil {
		return resolved{}, err
	}
	display, err := imageio.ParseDisplay(f.display)
	if err != nil {
		return resolved{}, err
	}
	backend, err := fft2.ParseBackend(f.backend)
	if err != nil {
		return resolved{}, err
	}
	img, err := imageio.Load(f.in)
	if err != nil {
		return resolved{}, err
	}
	return resolved{img: img, display: display, backend: backend}, nil
}

func (e *env) usm(args []string) error {
	fs, f := e.newFlagSet("usm", "cut")
	strategy := fs.String("strategy", "frequency", "smoothing convolution: spatial or frequency")
	boundary := fs.String("boundary", "native", "border policy: native, periodic or replicate")
	size := fs.Int("size", 3, "odd Gaussian kernel size")
	sigma := fs.Float64("sigma", kernel.UnitSigma, "Gaussian sigma; 0 selects size/5")
	threshold := fs.Float64("threshold", 0, "smallest detail value that is boosted")
	scale := fs.Float64("scale", 1, "detail boost factor")
	if err := fs.Parse(args); err != nil {
		return err
	}

	r, err := f.resolve()
	if err != nil {
		return err
	}
	s, err := conv.ParseStrategy(*strategy)
	if err != nil {
		return err
	}
	b, err := conv.ParseBoundary(*boundary)
	if err != nil {
		return err
	}
	if *sigma == 0 {
		*sigma = kernel.SigmaForSize(*size)
	}

	start := time.Now()
	out, err := sharpen.UnsharpMask(r.img, sharpen.Options{
		Strategy:  s,
		Size:      *size,
		Sigma:     *sigma,
		Threshold: *threshold,
		Scale:     *scale,
		Conv: []conv.Option{
			conv.WithBoundary(b),
			conv.WithBackend(r.backend),
			conv.WithWorkers(f.workers),
		},
	})
	if err != nil {
		return err
	}
	e.done("usm", out.Len(), start)

	return imageio.Save(f.out, out, r.display)
}

func (e *env) degrade(args []string) error {
	fs, f := e.newFlagSet("degrade", "cut")
	dev := fs.Float64("dev", 1, "standard deviation of the Gaussian blur")
	snr := fs.Float64("snr", 20, "signal-to-noise ratio of the added noise")
	seed := fs.Uint64("seed", degrade.DefaultSeed, "noise seed")
	if err := fs.Parse(args); err != nil {
		return err
	}

	r, err := f.resolve()
	if err != nil {
		return err
	}

	start := time.Now()
	out, model, err := degrade.Apply(r.img, *dev, *snr,
		degrade.WithSeed(*seed),
		degrade.WithBackend(r.backend),
		degrade.WithWorkers(f.workers),
	)
	if err != nil {
		return err
	}
	e.done("degrade", out.Len(), start)
	e.log.Printf("degrade: %dx%d kernel, snr %g", model.Kernel.Rows, model.Kernel.Cols, model.SNR)

	return imageio.Save(f.out, out, r.display)
}

func (e *env) restore(args []string) error {
	fs, f := e.newFlagSet("restore", "cut")
	method := fs.String("method", "wiener", "restoration filter: inverse or wiener")
	dev := fs.Float64("dev", 1, "standard deviation of the Gaussian blur to undo")
	snr := fs.Float64("snr", 20, "signal-to-noise ratio for the Wiener filter")
	epsilon := fs.Float64("epsilon", restore.DefaultEpsilon, "inverse filter floor relative to max|H|")
	ref := fs.String("ref", "", "optional undegraded image to score the result against")
	if err := fs.Parse(args); err != nil {
		return err
	}

	r, err := f.resolve()
	if err != nil {
		return err
	}
	m, err := restore.ParseMethod(*method)
	if err != nil {
		return err
	}
	k, err := kernel.ForDeviation(*dev)
	if err != nil {
		return err
	}
	filter, err := restore.New(m,
		restore.WithEpsilon(*epsilon),
		restore.WithBackend(r.backend),
		restore.WithWorkers(f.workers),
	)
	if err != nil {
		return err
	}

	start := time.Now()
	out, err := filter.Restore(r.img, restore.Model{Kernel: k, SNR: *snr})
	if err != nil {
		return err
	}
	e.done("restore", out.Len(), start)

	if *ref != "" {
		if err := e.score(*ref, r.img, out); err != nil {
			return err
		}
	}

	return imageio.Save(f.out, out, r.display)
}

// score prints how close the degraded and restored images are to the reference.
func (e *env) score(path string, degraded, restored *grid.Grid) error {
	ref, err := imageio.Load(path)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(e.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Image\tMSE\tPSNR [dB]\tSNR [dB]\n")
	for _, row := range []struct {
		name string
		img  *grid.Grid
	}{
		{"degraded", degraded},
		{"restored", restored},
	} {
		mse, err := quality.MSE(ref, row.img)
		if err != nil {
			return err
		}
		psnr, _ := quality.PSNR(ref, row.img)
		snr, _ := quality.SNR(ref, row.img)
		fmt.Fprintf(tw, "%s\t%.3f\t%.2f\t%.2f\n", row.name, mse, psnr, snr)
	}
	return tw.Flush()
}

func (e *env) stats(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	in := fs.String("in", "", "input image path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return errors.New("-in is required")
	}

	img, err := imageio.Load(*in)
	if err != nil {
		return err
	}
	s := quality.Calculate(img)

	tw := tabwriter.NewWriter(e.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Size\t%dx%d\n", s.Cols, s.Rows)
	fmt.Fprintf(tw, "Mean\t%.3f\n", s.Mean)
	fmt.Fprintf(tw, "StdDev\t%.3f\n", s.StdDev)
	fmt.Fprintf(tw, "Min\t%.0f at (%d,%d)\n", s.Min, s.MinCol, s.MinRow)
	fmt.Fprintf(tw, "Max\t%.0f at (%d,%d)\n", s.Max, s.MaxCol, s.MaxRow)
	fmt.Fprintf(tw, "Skewness\t%.4f\n", s.Skewness)
	fmt.Fprintf(tw, "Kurtosis\t%.4f\n", s.Kurtosis)
	return tw.Flush()
}

func (e *env) spectrum(args []string) error {
	fs, f := e.newFlagSet("spectrum", "normalize")
	win := fs.String("window", "rectangular", "apodization window: rectangular, hann, hamming, blackman or tukey")
	dev := fs.Float64("kernel-dev", 0, "if > 0, show the response of a Gaussian blur with this deviation instead")
	if err := fs.Parse(args); err != nil {
		return err
	}

	r, err := f.resolve()
	if err != nil {
		return err
	}
	w, err := window.ParseType(*win)
	if err != nil {
		return err
	}
	opts := []spectrum.Option{
		spectrum.WithWindow(w),
		spectrum.WithBackend(r.backend),
		spectrum.WithWorkers(f.workers),
	}

	start := time.Now()
	var out *grid.Grid
	if *dev > 0 {
		k, kerr := kernel.ForDeviation(*dev)
		if kerr != nil {
			return kerr
		}
		out, err = spectrum.KernelResponse(k, r.img.Rows, r.img.Cols, opts...)
	} else {
		out, err = spectrum.Image(r.img, opts...)
	}
	if err != nil {
		return err
	}
	e.done("spectrum", out.Len(), start)

	return imageio.Save(f.out, out, r.display)
}

func (e *env) backends() error {
	tw := tabwriter.NewWriter(e.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Kind\tName\n")
	fmt.Fprintf(tw, "----\t----\n")
	for _, b := range fft2.Backends() {
		name := b.String()
		if b == e.cfg.backend {
			name += " (default)"
		}
		fmt.Fprintf(tw, "backend\t%s\n", name)
	}
	for _, s := range conv.Strategies() {
		fmt.Fprintf(tw, "strategy\t%s\n", s)
	}
	for _, m := range restore.Methods() {
		fmt.Fprintf(tw, "method\t%s\n", m)
	}
	for _, w := range window.Types() {
		fmt.Fprintf(tw, "window\t%s\n", w)
	}
	return tw.Flush()
}
