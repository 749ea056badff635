package grid

import "fmt"

// Embed copies src into the top-left corner of a zero rows x cols grid.
// It returns ErrShapeMismatch when src does not fit.
func Embed(src *Grid, rows, cols int) (*Grid, error) {
	if src.Rows > rows || src.Cols > cols {
		return nil, fmt.Errorf("%w: cannot embed %dx%d into %dx%d",
			ErrShapeMismatch, src.Rows, src.Cols, rows, cols)
	}
	out, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	for r := 0; r < src.Rows; r++ {
		copy(out.Row(r), src.Row(r))
	}
	return out, nil
}

// PadReplicate surrounds g with padRows rows above and below and padCols
// columns left and right, each border sample repeating the nearest edge sample.
func PadReplicate(g *Grid, padRows, padCols int) *Grid {
	rows := g.Rows + 2*padRows
	cols := g.Cols + 2*padCols
	out := &Grid{Rows: rows, Cols: cols, Data: make([]float64, rows*cols)}

	for r := 0; r < rows; r++ {
		src := g.Row(ClampIndex(r-padRows, g.Rows))
		dst := out.Row(r)
		for c := range dst {
			dst[c] = src[ClampIndex(c-padCols, g.Cols)]
		}
	}
	return out
}

// Crop returns the rows x cols block of g starting at (top, left).
func Crop(g *Grid, top, left, rows, cols int) (*Grid, error) {
	if top < 0 || left < 0 || top+rows > g.Rows || left+cols > g.Cols {
		return nil, fmt.Errorf("%w: crop %dx%d at (%d,%d) from %dx%d",
			ErrShapeMismatch, rows, cols, top, left, g.Rows, g.Cols)
	}
	out, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	for r := 0; r < rows; r++ {
		copy(out.Row(r), g.Row(top+r)[left : left+cols])
	}
	return out, nil
}

// ClampIndex limits i to [0, n-1]. It is the replicate-border sampling rule.
func ClampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// WrapIndex returns i mod n in [0, n). It is the periodic sampling rule.
func WrapIndex(i, n int) int {
	return wrap(i, n)
}
