package interpolate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func plane(x, y float64) float64 { return 2*x + 3*y + 5 }

func surface(x, y float64) float64 {
	return 1.5*x*x - 2*y*y + 0.5*x*y + 3*x - y + 2
}

// fillGrid tabulates f over the two axes in row-major (x, y) order.
func fillGrid(xAx, yAx UniformAxis, f func(x, y float64) float64) Grid2 {
	data := make([]float64, xAx.Len()*yAx.Len())
	for i := 0; i < xAx.Len(); i++ {
		for j := 0; j < yAx.Len(); j++ {
			data[i*yAx.Len()+j] = f(xAx.At(i), yAx.At(j))
		}
	}
	return Grid2{Data: data, RowStride: yAx.Len(), ColStride: 1}
}

func TestGrid2At(t *testing.T) {
	g := Grid2{
		Data:      []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
		Off:       1,
		RowStride: 4,
		ColStride: 1,
	}
	assert.Equal(t, 1.0, g.At(0, 0))
	assert.Equal(t, 6.0, g.At(1, 1))
	assert.Equal(t, 11.0, g.At(2, 2))

	// Transposed view of the same buffer.
	tr := Grid2{Data: g.Data, Off: 1, RowStride: 1, ColStride: 4}
	assert.Equal(t, g.At(1, 2), tr.At(2, 1), "transposed access")
}

func TestInterp2DBilinear(t *testing.T) {
	xAx := NewUniformAxis(0.0, 0.25, 9)
	yAx := NewUniformAxis(-1.0, 0.5, 7)
	g := fillGrid(xAx, yAx, plane)

	table := []struct {
		x, y float64
	}{
		{0.5, 0.0},   // both on grid
		{0.6, 0.0},   // x between
		{0.5, 0.2},   // y between
		{0.85, 0.77}, // both between
		{0.0, -1.0},  // corner
	}
	for i, test := range table {
		sx, err := xAx.LinearStencil(test.x)
		assert.NoError(t, err, "test %d", i)
		sy, err := yAx.LinearStencil(test.y)
		assert.NoError(t, err, "test %d", i)
		assert.InDelta(t, plane(test.x, test.y), Interp2D(sx, sy, g), 1e-12,
			"test %d", i)
	}
}

func TestInterp2DSpline(t *testing.T) {
	xAx := NewUniformAxis(0.0, 0.25, 9) // spline domain [0.25, 1.75]
	yAx := NewUniformAxis(-1.0, 0.5, 7) // spline domain [-0.5, 1.5]
	g := fillGrid(xAx, yAx, surface)

	table := []struct {
		x, y float64
	}{
		{0.5, 0.0},   // both on grid
		{0.62, 0.0},  // x between, y exact
		{0.5, 0.23},  // x exact, y between
		{1.13, 0.77}, // both between
		{0.25, -0.5}, // margin corner, collapses to exact
	}
	for i, test := range table {
		sx, err := xAx.SplineStencil(test.x)
		assert.NoError(t, err, "test %d", i)
		sy, err := yAx.SplineStencil(test.y)
		assert.NoError(t, err, "test %d", i)
		assert.InDelta(t, surface(test.x, test.y), Interp2D(sx, sy, g),
			1e-10, "test %d", i)
	}
}

func TestInterp2DOrderConsistency(t *testing.T) {
	xAx := NewUniformAxis(0.0, 0.25, 9)
	yAx := NewUniformAxis(-1.0, 0.5, 7)
	g := fillGrid(xAx, yAx, surface)
	tr := Grid2{Data: g.Data, RowStride: 1, ColStride: yAx.Len()}

	// Collapsing x first or y first must agree.
	sx, err := xAx.SplineStencil(0.93)
	assert.NoError(t, err)
	sy, err := yAx.SplineStencil(0.41)
	assert.NoError(t, err)
	assert.InDelta(t, Interp2D(sx, sy, g), Interp2D(sy, sx, tr), 1e-12,
		"axis order")
}
