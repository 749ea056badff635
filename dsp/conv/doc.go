// Package conv provides two-dimensional convolution of images with small odd
// kernels.
//
// Two strategies are offered, both implementing [Convolver]:
//
//   - Spatial: direct neighbourhood sums with the 180°-rotated kernel, O(R*C*k²)
//   - Frequency: zero-pad and center the kernel, multiply spectra, transform back
//
// # Boundary policies
//
// Each call picks how samples outside the image are read:
//
//   - Periodic: the image wraps around (native to the frequency strategy)
//   - ReplicateEdge: the nearest edge sample is repeated (native to the spatial strategy)
//
// With its native policy the frequency path agrees with the spatial path only
// at pixels at least k/2 away from the border. Selecting the other policy makes
// both strategies agree everywhere: the spatial path wraps its indices, and the
// frequency path pads the image with replicated borders before transforming.
//
// # Usage
//
//	k, _ := kernel.Gaussian(5, kernel.UnitSigma)
//	out, err := conv.Convolve(img, k, conv.StrategyFrequency)
//	out, err := conv.Convolve(img, k, conv.StrategySpatial, conv.WithBoundary(conv.Periodic))
//
// For repeated convolution create a Convolver once:
//
//	c, err := conv.New(conv.StrategyFrequency, conv.WithBackend(fft2.BackendGonum), conv.WithWorkers(4))
//	out, err := c.Convolve(img, k)
//
// # Kernel centering
//
// The frequency path relies on the kernel's logical center sitting at index
// (0, 0) of the padded buffer. [CenterKernel] embeds the kernel top-left and
// shifts it by (-k/2, -k/2) with wraparound; [KernelSpectrum] transforms the
// result. The restoration filters reuse both.
package conv
