// Package imageio reads and writes single-channel images as grids.
//
// Decoding accepts PNG, JPEG, GIF, TIFF and BMP and converts every pixel to
// 8-bit luminance. Encoding maps the grid back to 8-bit gray with one of two
// display policies: Cut clips to [0, 255], Normalize stretches [min, max]
// onto [0, 255].
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/cwbudde/algo-img/dsp/core"
	"github.com/cwbudde/algo-img/dsp/grid"
)

// Errors returned by the codecs.
var (
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")
	ErrEmptyImage        = errors.New("imageio: empty image")
)

// JPEGQuality is the quality used when saving JPEG files.
const JPEGQuality = 92

// Display selects how out-of-range samples are mapped to 8-bit gray.
type Display int

const (
	// Cut clips samples to [0, 255].
	Cut Display = iota

	// Normalize maps [min, max] linearly onto [0, 255].
	Normalize
)

// String returns the display name.
func (d Display) String() string {
	switch d {
	case Cut:
		return "cut"
	case Normalize:
		return "normalize"
	default:
		return fmt.Sprintf("Display(%d)", int(d))
	}
}

// ParseDisplay maps "cut" or "normalize" to a Display.
func ParseDisplay(name string) (Display, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "cut":
		return Cut, nil
	case "normalize":
		return Normalize, nil
	default:
		return Cut, fmt.Errorf("imageio: unknown display %q", name)
	}
}

// FormatFromPath returns the codec name for the file extension of path.
func FormatFromPath(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return "png", nil
	case ".jpg", ".jpeg":
		return "jpeg", nil
	case ".gif":
		return "gif", nil
	case ".tif", ".tiff":
		return "tiff", nil
	case ".bmp":
		return "bmp", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Decode reads an image and returns its luminance as a grid together with
// the detected format name.
func Decode(r io.Reader) (*grid.Grid, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("imageio: decode: %w", err)
	}
	g, err := ToGrid(img)
	if err != nil {
		return nil, "", err
	}
	return g, format, nil
}

// Load decodes the image file at path.
func Load(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, _, err := Decode(f)
	return g, err
}

// Encode writes g to w in the named format.
func Encode(w io.Writer, g *grid.Grid, format string, d Display) error {
	img, err := ToGray(g, d)
	if err != nil {
		return err
	}

	switch format {
	case "png":
		return png.Encode(w, img)
	case "jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	case "gif":
		return gif.Encode(w, img, nil)
	case "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case "bmp":
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Save writes g to path, choosing the format from the file extension.
func Save(path string, g *grid.Grid, d Display) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return Encode(f, g, format, d)
}

// ToGrid converts img to luminance samples in [0, 255].
func ToGrid(img image.Image) (*grid.Grid, error) {
	b := img.Bounds()
	g, err := grid.New(b.Dy(), b.Dx())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmptyImage, err)
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := g.Row(y - b.Min.Y)
		for x := b.Min.X; x < b.Max.X; x++ {
			row[x-b.Min.X] = float64(color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y)
		}
	}
	return g, nil
}

// ToGray maps g to an 8-bit gray image using display policy d.
func ToGray(g *grid.Grid, d Display) (*image.Gray, error) {
	if g == nil || len(g.Data) == 0 {
		return nil, ErrEmptyImage
	}

	var shown *grid.Grid
	switch d {
	case Cut:
		shown = DisplayCut(g)
	case Normalize:
		shown = DisplayNormalize(g)
	default:
		return nil, fmt.Errorf("imageio: unknown display %v", d)
	}

	img := image.NewGray(image.Rect(0, 0, g.Cols, g.Rows))
	for r := 0; r < g.Rows; r++ {
		pix := img.Pix[r*img.Stride : r*img.Stride+g.Cols]
		for c, v := range shown.Row(r) {
			pix[c] = uint8(math.Round(v))
		}
	}
	return img, nil
}

// DisplayCut returns a copy of g clipped to [0, 255].
func DisplayCut(g *grid.Grid) *grid.Grid {
	out := g.Clone()
	out.ClipIntensity()
	return out
}

// DisplayNormalize returns a copy of g with [min, max] mapped linearly onto
// [0, 255]. A constant image maps to 0.
func DisplayNormalize(g *grid.Grid) *grid.Grid {
	out := g.Clone()
	lo, hi := g.MinMax()
	span := hi - lo
	for i, v := range g.Data {
		if span == 0 {
			out.Data[i] = core.MinIntensity
			continue
		}
		out.Data[i] = (v - lo) / span * core.MaxIntensity
	}
	return out
}
