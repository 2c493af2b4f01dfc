package interpolate

// Grid2 is a non-owning 2D view over a flat float64 buffer. It lets the
// table code slice interpolation windows out of larger grids without
// copying them.
type Grid2 struct {
	Data                      []float64
	Off, RowStride, ColStride int
}

// At returns the grid value at row i, column j.
func (g Grid2) At(i, j int) float64 {
	return g.Data[g.Off+i*g.RowStride+j*g.ColStride]
}

// Interp2D composes two 1D stencils over a grid: the column stencil
// collapses each row the row stencil needs, then the row stencil collapses
// the results. Exact stencils skip interpolation along their dimension, so
// mixed exact/interpolated queries take the degenerate fast paths
// naturally. Both interpolation schemes are linear in their window
// ordinates, so composing the axes in the other order gives the same
// answer.
func Interp2D(row, col Stencil, g Grid2) float64 {
	var rowVals, lane [4]float64
	for i := 0; i < row.n; i++ {
		for j := 0; j < col.n; j++ {
			lane[j] = g.At(row.start+i, col.start+j)
		}
		rowVals[i] = col.apply(lane)
	}
	return row.apply(rowVals)
}
