package eos

import (
	"fmt"

	"github.com/phil-mansfield/gomesa/interpolate"
)

// VolumeEnergyTable holds every state variable on a (log energy,
// log volume) grid at one fixed metallicity and H fraction. Queries
// interpolate with centered cubic splines on both axes.
type VolumeEnergyTable struct {
	metallicity, hFrac float64
	logE, logV         interpolate.UniformAxis
	// vals is indexed as (energy, volume, variable), variable fastest.
	vals []float64
}

// Metallicity returns the metallicity the table was built at.
func (t *VolumeEnergyTable) Metallicity() float64 { return t.metallicity }

// HFrac returns the H mass fraction the table was built at.
func (t *VolumeEnergyTable) HFrac() float64 { return t.hFrac }

// EnergyAxis returns the log10 specific internal energy axis.
func (t *VolumeEnergyTable) EnergyAxis() interpolate.UniformAxis {
	return t.logE
}

// VolumeAxis returns the axis of the table's log "volume" coordinate,
// log10(density) - 0.7*log10(energy) + 20.
func (t *VolumeEnergyTable) VolumeAxis() interpolate.UniformAxis {
	return t.logV
}

// At returns the state variable v at the given table coordinates. Points
// outside the spline margins of either axis fail with an
// *interpolate.OutOfBoundsError.
func (t *VolumeEnergyTable) At(logE, logV float64, v StateVar) (float64, error) {
	se, err := t.logE.SplineStencil(logE)
	if err != nil {
		return 0, err
	}
	sv, err := t.logV.SplineStencil(logV)
	if err != nil {
		return 0, err
	}

	g := interpolate.Grid2{
		Data:      t.vals,
		Off:       int(v),
		RowStride: t.logV.Len() * NumStateVars,
		ColStride: NumStateVars,
	}
	return interpolate.Interp2D(se, sv, g), nil
}

func (t *VolumeEnergyTable) clone() *VolumeEnergyTable {
	vals := make([]float64, len(t.vals))
	copy(vals, t.vals)
	return &VolumeEnergyTable{t.metallicity, t.hFrac, t.logE, t.logV, vals}
}

// blend combines two tables element-wise into a new table labeled with the
// given composition. The tables must have been built on the same grid:
// a mismatch means the table registry itself is inconsistent.
func (t *VolumeEnergyTable) blend(
	other *VolumeEnergyTable, b interpolate.LinearBlend,
	metallicity, hFrac float64,
) *VolumeEnergyTable {
	if !t.logE.Equal(other.logE) || !t.logV.Equal(other.logV) {
		panic(fmt.Sprintf(
			"Blending tables at z = %g, x = %g and z = %g, x = %g "+
				"with mismatched axes.",
			t.metallicity, t.hFrac, other.metallicity, other.hFrac,
		))
	}

	vals := make([]float64, len(t.vals))
	b.BlendSlice(vals, t.vals, other.vals)
	return &VolumeEnergyTable{metallicity, hFrac, t.logE, t.logV, vals}
}
