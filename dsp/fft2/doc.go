// Package fft2 provides the two-dimensional transform and spectrum-multiply
// primitives used by the convolution and restoration packages.
//
// The forward transform is unnormalized; [Transformer.Inverse] divides by
// Rows*Cols, so Inverse(Forward(x)) reproduces x. Spectra are stored as paired
// real and imaginary planes ([Spectrum]).
//
// # Backends
//
// The transform itself is delegated to a third-party FFT library, selected with
// [Backend]:
//
//   - BackendAlgoFFT: github.com/MeKo-Christian/algo-fft plans, row/column passes
//   - BackendGonum: gonum.org/v1/gonum/dsp/fourier, any length, row/column passes
//   - BackendGoDSP: github.com/mjibson/go-dsp/fft FFT2/IFFT2
//   - BackendAuto: algo-fft for power-of-two axes, gonum for the others
//
// Row/column backends honor core.WithWorkers; each worker owns its own plan.
//
//	tr, err := fft2.New(fft2.BackendAuto, core.WithWorkers(4))
//	spec, err := tr.Forward(img)
//	back, err := tr.Inverse(spec)
//	img2 := back.Real()
package fft2
