package eos

import (
	"fmt"

	"github.com/phil-mansfield/gomesa/interpolate"
)

// ConstMetalTables is the EOS at one fixed metallicity: a uniform H
// fraction axis with one VolumeEnergyTable per grid point. Every table in
// the collection shares the same energy and volume axes.
type ConstMetalTables struct {
	metallicity float64
	hFracs      interpolate.UniformAxis
	tables      []*VolumeEnergyTable
}

// Metallicity returns the metallicity the collection was built at.
func (ts *ConstMetalTables) Metallicity() float64 { return ts.metallicity }

// HFracAxis returns the H fraction axis.
func (ts *ConstMetalTables) HFracAxis() interpolate.UniformAxis {
	return ts.hFracs
}

// resolveHFrac returns the table at the given H fraction without copying
// when the value hits a grid point. Callers that hand the table out must
// clone it first in the exact case.
func (ts *ConstMetalTables) resolveHFrac(
	hFrac float64,
) (t *VolumeEnergyTable, fresh bool, err error) {
	loc, err := ts.hFracs.Locate(hFrac)
	if err != nil {
		return nil, false, err
	}
	if loc.Exact() {
		return ts.tables[loc.Lo], false, nil
	}

	b := interpolate.NewLinearBlend(
		ts.hFracs.At(loc.Lo), ts.hFracs.At(loc.Hi), hFrac,
	)
	blended := ts.tables[loc.Lo].blend(
		ts.tables[loc.Hi], b, ts.metallicity, hFrac,
	)
	return blended, true, nil
}

// TakeAtHFrac resolves the collection to the single table at the given H
// fraction: grid hits return the bucket itself, interior values blend the
// two neighboring tables. The collection has no further use afterwards.
func (ts *ConstMetalTables) TakeAtHFrac(
	hFrac float64,
) (*VolumeEnergyTable, error) {
	t, _, err := ts.resolveHFrac(hFrac)
	return t, err
}

// AtHFrac is TakeAtHFrac for a collection that will keep being used: grid
// hits return a copy rather than the bucket.
func (ts *ConstMetalTables) AtHFrac(
	hFrac float64,
) (*VolumeEnergyTable, error) {
	t, fresh, err := ts.resolveHFrac(hFrac)
	if err != nil {
		return nil, err
	}
	if !fresh {
		t = t.clone()
	}
	return t, nil
}

// At queries a state variable at the given composition and table
// coordinates without materializing a whole blended table: when the H
// fraction falls between two grid points, only the minimal spline windows
// are sliced out of the neighboring grids, blended, and splined. The
// result matches resolving a table with TakeAtHFrac and querying it.
func (ts *ConstMetalTables) At(
	hFrac, logE, logV float64, v StateVar,
) (float64, error) {
	loc, err := ts.hFracs.Locate(hFrac)
	if err != nil {
		return 0, err
	}
	if loc.Exact() {
		return ts.tables[loc.Lo].At(logE, logV, v)
	}

	left, right := ts.tables[loc.Lo], ts.tables[loc.Hi]
	if !left.logE.Equal(right.logE) || !left.logV.Equal(right.logV) {
		panic(fmt.Sprintf(
			"Tables at z = %g, x = %g and x = %g have mismatched axes.",
			ts.metallicity, left.hFrac, right.hFrac,
		))
	}

	se, err := left.logE.SplineStencil(logE)
	if err != nil {
		return 0, err
	}
	sv, err := left.logV.SplineStencil(logV)
	if err != nil {
		return 0, err
	}

	b := interpolate.NewLinearBlend(
		ts.hFracs.At(loc.Lo), ts.hFracs.At(loc.Hi), hFrac,
	)
	nV := left.logV.Len()
	var window [16]float64
	for i := 0; i < se.Len(); i++ {
		for j := 0; j < sv.Len(); j++ {
			off := ((se.Start()+i)*nV+sv.Start()+j)*NumStateVars + int(v)
			window[i*sv.Len()+j] = b.Blend(left.vals[off], right.vals[off])
		}
	}

	g := interpolate.Grid2{Data: window[:], RowStride: sv.Len(), ColStride: 1}
	return interpolate.Interp2D(
		se.Rebase(se.Start()), sv.Rebase(sv.Start()), g,
	), nil
}

// AllTables is the full EOS registry: a uniform metallicity axis with one
// ConstMetalTables per grid point.
type AllTables struct {
	metallicities interpolate.UniformAxis
	tables        []*ConstMetalTables
}

// MetallicityAxis returns the metallicity axis.
func (ts *AllTables) MetallicityAxis() interpolate.UniformAxis {
	return ts.metallicities
}

// TakeAtMetallicity resolves the registry to the collection at the given
// metallicity: grid hits return the bucket itself, interior values
// interpolate between the two neighboring collections over the part of
// their H fraction axes they share. The registry has no further use
// afterwards.
func (ts *AllTables) TakeAtMetallicity(z float64) (*ConstMetalTables, error) {
	loc, err := ts.metallicities.Locate(z)
	if err != nil {
		return nil, err
	}
	if loc.Exact() {
		return ts.tables[loc.Lo], nil
	}

	left, right := ts.tables[loc.Lo], ts.tables[loc.Hi]
	sub, ok := left.hFracs.Intersect(right.hFracs)
	if !ok {
		return nil, fmt.Errorf(
			"Tables at z = %g and z = %g share fewer than 2 H fraction "+
				"grid points.",
			left.metallicity, right.metallicity,
		)
	}

	b := interpolate.NewLinearBlend(
		ts.metallicities.At(loc.Lo), ts.metallicities.At(loc.Hi), z,
	)
	tables := make([]*VolumeEnergyTable, sub.Len())
	for k := range tables {
		h := sub.At(k)
		lt, _, err := left.resolveHFrac(h)
		if err != nil {
			return nil, err
		}
		rt, _, err := right.resolveHFrac(h)
		if err != nil {
			return nil, err
		}
		tables[k] = lt.blend(rt, b, z, h)
	}
	return &ConstMetalTables{z, sub, tables}, nil
}
