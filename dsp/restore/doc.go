// Package restore recovers images degraded by a known blur kernel and
// additive noise.
//
// Two frequency-domain filters are provided:
//
//   - Inverse: pseudo-inverse of the kernel spectrum with a magnitude floor
//   - Wiener: conj(H) / (|H|² + 1/SNR²), regularized by the signal-to-noise ratio
//
// Both center the kernel the same way as [conv.Frequency], so a periodic blur
// by the frequency convolver followed by restoration with the same kernel is
// undone exactly wherever the kernel spectrum is well above the floor.
//
// The restored image is clipped to [0, 255].
//
// # Usage
//
//	k, _ := kernel.ForDeviation(1.5)
//	out, err := restore.Wiener(degraded, k, 20)
//
//	f, err := restore.New(restore.MethodInverse, restore.WithEpsilon(0.02))
//	out, err := f.Restore(degraded, restore.Model{Kernel: k})
package restore
