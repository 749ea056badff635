package grid

// Shift circularly shifts g by dx columns and dy rows. The sample at (y, x)
// moves to ((y+dy) mod Rows, (x+dx) mod Cols). Shifts may be negative or
// exceed the grid extent. g is not modified.
func Shift(g *Grid, dx, dy int) *Grid {
	out := &Grid{Rows: g.Rows, Cols: g.Cols, Data: make([]float64, len(g.Data))}

	for y := 0; y < g.Rows; y++ {
		yy := wrap(y+dy, g.Rows)
		src := g.Row(y)
		dst := out.Row(yy)
		for x, v := range src {
			dst[wrap(x+dx, g.Cols)] = v
		}
	}
	return out
}

// wrap returns i mod n in [0, n).
func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
