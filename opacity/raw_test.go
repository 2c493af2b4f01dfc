package opacity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The embedded registry is generated by scripts/make_tables from the
// closed form fit below. It is linear in every coordinate, so queries
// anywhere on the grid can be checked against the fit directly.
func fitLogKap(logT, logR, x, z float64) float64 {
	return 3.3 + logR - 0.5*logT + 0.25*x + 4.0*z
}

func TestNewAxes(t *testing.T) {
	reg := New()

	zs := reg.MetallicityAxis()
	assert.Equal(t, 9, zs.Len())
	assert.Equal(t, 0.0, zs.First())
	assert.Equal(t, 0.1, zs.Last())
	assert.Equal(t, 0.004, zs.At(2), "irregular spacing survives decoding")

	ts, err := reg.TakeAtMetallicity(0.02)
	assert.NoError(t, err)
	assert.Equal(t, 0.02, ts.Metallicity())
	xs := ts.HFracAxis()
	assert.Equal(t, 6, xs.Len())
	assert.Equal(t, 0.0, xs.First())
	assert.InDelta(t, 1.0, xs.Last(), 1e-12)

	leaf, err := ts.TakeAtHFrac(0.0)
	assert.NoError(t, err)
	logT, logR := leaf.TempAxis(), leaf.RAxis()
	assert.Equal(t, 17, logT.Len(), "temperature axis size")
	assert.Equal(t, 2.0, logT.First(), "temperature axis start")
	assert.InDelta(t, 10.0, logT.Last(), 1e-12, "temperature axis end")
	assert.Equal(t, 21, logR.Len(), "R axis size")
	assert.Equal(t, -14.0, logR.First(), "R axis start")
	assert.InDelta(t, 6.0, logR.Last(), 1e-12, "R axis end")
}

func TestNewFit(t *testing.T) {
	reg := New()

	compos := []struct {
		z, x float64
	}{
		{0.02, 0.80},  // grid composition
		{0.02, 0.70},  // between H fraction grid points
		{0.005, 0.30}, // between metallicity grid points
		{0.10, 0.00},  // last metallicity bucket
	}
	points := []struct {
		logT, logR float64
	}{
		{6.0, -2.0},   // grid point
		{6.33, -2.12}, // off grid in both
		{2.0, -14.0},  // low corner
		{10.0, 6.0},   // high corner
	}
	for i := range compos {
		c := compos[i]
		ts, err := reg.TakeAtMetallicity(c.z)
		assert.NoError(t, err, "z = %g", c.z)
		for j := range points {
			p := points[j]
			got, err := ts.At(c.x, p.logT, p.logR)
			assert.NoError(t, err, "case %d %d", i, j)
			assert.InDelta(
				t, fitLogKap(p.logT, p.logR, c.x, c.z), got, 1e-10,
				"case %d %d", i, j,
			)
		}
	}

	_, err := reg.TakeAtMetallicity(0.2)
	assert.Error(t, err, "metallicity out of bounds")
	ts, err := reg.TakeAtMetallicity(0.0)
	assert.NoError(t, err)
	_, err = ts.At(0.7, 1.5, -2.0)
	assert.Error(t, err, "temperature out of bounds")
}
