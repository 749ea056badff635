// Package grid provides the row-major float64 sample plane used for images and
// kernels, together with the index-level operations the filtering packages
// share: periodic shift, zero embedding, border replication, cropping and
// clipping.
//
// A [Grid] never clips implicitly. Intensities may leave [0, 255] during
// processing; [Grid.Clip] is an explicit, late operation.
//
// # Periodic shift
//
// [Shift] relocates the sample at (y, x) to ((y+dy) mod R, (x+dx) mod C) with a
// non-negative modulo. Shifting an embedded kernel by (-k/2, -k/2) moves its
// center to the origin, which is where the frequency-domain convolution
// expects it:
//
//	buf, _ := grid.Embed(k, rows, cols)
//	centered := grid.Shift(buf, -k.Cols/2, -k.Rows/2)
package grid
