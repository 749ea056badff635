// Package spectrum turns images and kernels into displayable magnitude
// spectra.
//
// Spectra are returned centered: the DC bin sits at (Rows/2, Cols/2) and
// frequencies grow towards the borders. Image spectra are log-compressed,
// log(1 + |X|), since DC dominates every other bin by orders of magnitude.
// Kernel responses stay linear so the regions an inverse filter has to floor
// are easy to read off.
package spectrum
