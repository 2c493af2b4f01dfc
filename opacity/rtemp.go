package opacity

import (
	"fmt"

	"github.com/phil-mansfield/gomesa/interpolate"
)

// RTempTable holds log10 Rosseland mean opacities on a (log temperature,
// log R) grid at one fixed metallicity and H fraction, where
// log R = log10(rho) + 18 - 3*log10(T). Opacity grids are too coarse and
// too kinked for splines to behave, so queries interpolate bilinearly.
type RTempTable struct {
	metallicity, hFrac float64
	logT, logR         interpolate.UniformAxis
	// vals is indexed as (temperature, R), R fastest.
	vals []float64
}

// Metallicity returns the metallicity the table was built at.
func (t *RTempTable) Metallicity() float64 { return t.metallicity }

// HFrac returns the H mass fraction the table was built at.
func (t *RTempTable) HFrac() float64 { return t.hFrac }

// TempAxis returns the log10 temperature axis.
func (t *RTempTable) TempAxis() interpolate.UniformAxis { return t.logT }

// RAxis returns the log R axis.
func (t *RTempTable) RAxis() interpolate.UniformAxis { return t.logR }

// At returns the log opacity at the given table coordinates. Points
// outside either axis fail with an *interpolate.OutOfBoundsError.
func (t *RTempTable) At(logT, logR float64) (float64, error) {
	st, err := t.logT.LinearStencil(logT)
	if err != nil {
		return 0, err
	}
	sr, err := t.logR.LinearStencil(logR)
	if err != nil {
		return 0, err
	}

	g := interpolate.Grid2{
		Data: t.vals, RowStride: t.logR.Len(), ColStride: 1,
	}
	return interpolate.Interp2D(st, sr, g), nil
}

func (t *RTempTable) clone() *RTempTable {
	vals := make([]float64, len(t.vals))
	copy(vals, t.vals)
	return &RTempTable{t.metallicity, t.hFrac, t.logT, t.logR, vals}
}

// blend combines two tables element-wise into a new table labeled with the
// given composition. The tables must have been built on the same grid:
// a mismatch means the table registry itself is inconsistent.
func (t *RTempTable) blend(
	other *RTempTable, b interpolate.LinearBlend, metallicity, hFrac float64,
) *RTempTable {
	if !t.logT.Equal(other.logT) || !t.logR.Equal(other.logR) {
		panic(fmt.Sprintf(
			"Blending opacity tables at z = %g, x = %g and z = %g, x = %g "+
				"with mismatched axes.",
			t.metallicity, t.hFrac, other.metallicity, other.hFrac,
		))
	}

	vals := make([]float64, len(t.vals))
	b.BlendSlice(vals, t.vals, other.vals)
	return &RTempTable{metallicity, hFrac, t.logT, t.logR, vals}
}
