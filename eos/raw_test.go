package eos

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The embedded tables are generated by scripts/make_tables from the closed
// form fit below. Every variable is quadratic in log energy and linear in
// log volume and in both composition fractions, so queries anywhere on the
// grid can be checked against the fit directly.

func fitLogRho(logE, logV float64) float64 {
	return logV + 0.7*logE - 20
}

func fitLogT(logE, logV, x, z float64) float64 {
	return 0.72*logE + 0.012*(logE-14)*(logE-14) + 0.04*(logV-7) - 4.5 -
		0.35*x - 0.6*z
}

func fitLogPgas(logE, logV, x, z float64) float64 {
	return fitLogRho(logE, logV) + fitLogT(logE, logV, x, z) + 7.92 +
		0.28*x - 0.5*z
}

func fitLogPres(logE, logV, x, z float64) float64 {
	return fitLogPgas(logE, logV, x, z) + 0.04 +
		0.012*(fitLogT(logE, logV, x, z)-6)
}

func fitGamma1(logE, logV, x, z float64) float64 {
	return 1.6667 - 0.012*(fitLogT(logE, logV, x, z)-6) - 0.015*x
}

func TestNewAxes(t *testing.T) {
	reg := New()

	zs := reg.MetallicityAxis()
	assert.Equal(t, 3, zs.Len())
	assert.Equal(t, 0.0, zs.First())
	assert.InDelta(t, 0.04, zs.Last(), 1e-12)

	table := []struct {
		z      float64
		nHFrac int
		lastX  float64
	}{
		{0.00, 6, 1.0},
		{0.02, 5, 0.8},
		{0.04, 5, 0.8},
	}
	for i := range table {
		ts, err := reg.TakeAtMetallicity(table[i].z)
		assert.NoError(t, err, "z = %g", table[i].z)
		assert.Equal(t, table[i].z, ts.Metallicity())
		assert.Equal(
			t, table[i].nHFrac, ts.HFracAxis().Len(), "z = %g", table[i].z,
		)
		assert.InDelta(
			t, table[i].lastX, ts.HFracAxis().Last(), 1e-12,
			"z = %g", table[i].z,
		)

		leaf, err := ts.TakeAtHFrac(0.0)
		assert.NoError(t, err, "z = %g", table[i].z)
		e, v := leaf.EnergyAxis(), leaf.VolumeAxis()
		assert.Equal(t, 15, e.Len(), "energy axis size")
		assert.Equal(t, 10.5, e.First(), "energy axis start")
		assert.InDelta(t, 17.5, e.Last(), 1e-12, "energy axis end")
		assert.Equal(t, 15, v.Len(), "volume axis size")
		assert.Equal(t, 0.0, v.First(), "volume axis start")
		assert.InDelta(t, 14.0, v.Last(), 1e-12, "volume axis end")
	}

	leaf, err := reg.tables[2].TakeAtHFrac(0.8)
	assert.NoError(t, err)
	assert.Equal(t, 0.04, leaf.Metallicity(), "leaf metallicity label")
	assert.Equal(t, 0.8, leaf.HFrac(), "leaf H fraction label")
}

func TestNewFit(t *testing.T) {
	reg := New()

	compos := []struct {
		z, x float64
	}{
		{0.00, 0.70}, // between H fraction grid points
		{0.02, 0.80}, // grid composition
		{0.01, 0.30}, // between metallicity grid points
		{0.04, 0.00},
	}
	points := []struct {
		logE, logV float64
	}{
		{14.0, 7.0}, // grid point
		{math.Log10(2.24e15), math.Log10(1.32e8)},
		{11.0, 1.0}, // corner of the spline-safe region
		{16.2, 12.1},
	}
	for i := range compos {
		c := compos[i]
		ts, err := reg.TakeAtMetallicity(c.z)
		assert.NoError(t, err, "z = %g", c.z)
		for j := range points {
			p := points[j]

			got, err := ts.At(c.x, p.logE, p.logV, LogDensity)
			assert.NoError(t, err, "case %d %d", i, j)
			assert.InDelta(
				t, fitLogRho(p.logE, p.logV), got, 1e-8,
				"log density, case %d %d", i, j,
			)

			got, err = ts.At(c.x, p.logE, p.logV, LogTemperature)
			assert.NoError(t, err, "case %d %d", i, j)
			assert.InDelta(
				t, fitLogT(p.logE, p.logV, c.x, c.z), got, 1e-8,
				"log temperature, case %d %d", i, j,
			)

			got, err = ts.At(c.x, p.logE, p.logV, LogPressure)
			assert.NoError(t, err, "case %d %d", i, j)
			assert.InDelta(
				t, fitLogPres(p.logE, p.logV, c.x, c.z), got, 1e-8,
				"log pressure, case %d %d", i, j,
			)

			got, err = ts.At(c.x, p.logE, p.logV, Gamma1)
			assert.NoError(t, err, "case %d %d", i, j)
			assert.InDelta(
				t, fitGamma1(p.logE, p.logV, c.x, c.z), got, 1e-8,
				"gamma_1, case %d %d", i, j,
			)
		}
	}
}

func TestNewCompositionOrder(t *testing.T) {
	reg := New()

	z, x := 0.02, 1.0-0.35776-0.02
	logE := math.Log10(3.6349e15)
	logV := 20 + math.Log10(8.3537) - 0.7*logE

	ts, err := reg.TakeAtMetallicity(z)
	assert.NoError(t, err)
	leaf, err := ts.TakeAtHFrac(x)
	assert.NoError(t, err)

	for v := StateVar(0); v < StateVar(NumStateVars); v++ {
		combined, err := ts.At(x, logE, logV, v)
		assert.NoError(t, err, "%s", v)
		resolved, err := leaf.At(logE, logV, v)
		assert.NoError(t, err, "%s", v)
		assert.InDelta(t, resolved, combined, 1e-12, "%s", v)
	}

	got, err := ts.At(x, logE, logV, LogTemperature)
	assert.NoError(t, err)
	assert.InDelta(t, fitLogT(logE, logV, x, z), got, 1e-8, "fit check")
}
