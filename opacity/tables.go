package opacity

import (
	"fmt"

	"github.com/phil-mansfield/gomesa/interpolate"
)

// ConstMetalTables is the set of opacity tables at one metallicity: a
// uniform H fraction axis with one RTempTable per grid point. All the
// tables share temperature and R axes.
type ConstMetalTables struct {
	metallicity float64
	hFracs      interpolate.UniformAxis
	tables      []*RTempTable
}

// Metallicity returns the metallicity the tables were built at.
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
) (t *RTempTable, fresh bool, err error) {
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
func (ts *ConstMetalTables) TakeAtHFrac(hFrac float64) (*RTempTable, error) {
	t, _, err := ts.resolveHFrac(hFrac)
	return t, err
}

// AtHFrac is TakeAtHFrac for a collection that will keep being used: grid
// hits return a copy rather than the bucket.
func (ts *ConstMetalTables) AtHFrac(hFrac float64) (*RTempTable, error) {
	t, fresh, err := ts.resolveHFrac(hFrac)
	if err != nil {
		return nil, err
	}
	if !fresh {
		t = t.clone()
	}
	return t, nil
}

// At queries the log opacity at the given composition and table
// coordinates without materializing a whole blended table: when the H
// fraction falls between two grid points, only the 2 x 2 cells under the
// query are sliced out of the neighboring grids, blended, and
// interpolated. The result matches resolving a table with TakeAtHFrac and
// querying it.
func (ts *ConstMetalTables) At(hFrac, logT, logR float64) (float64, error) {
	loc, err := ts.hFracs.Locate(hFrac)
	if err != nil {
		return 0, err
	}
	if loc.Exact() {
		return ts.tables[loc.Lo].At(logT, logR)
	}

	left, right := ts.tables[loc.Lo], ts.tables[loc.Hi]
	if !left.logT.Equal(right.logT) || !left.logR.Equal(right.logR) {
		panic(fmt.Sprintf(
			"Opacity tables at z = %g, x = %g and x = %g have "+
				"mismatched axes.",
			ts.metallicity, left.hFrac, right.hFrac,
		))
	}

	st, err := left.logT.LinearStencil(logT)
	if err != nil {
		return 0, err
	}
	sr, err := left.logR.LinearStencil(logR)
	if err != nil {
		return 0, err
	}

	b := interpolate.NewLinearBlend(
		ts.hFracs.At(loc.Lo), ts.hFracs.At(loc.Hi), hFrac,
	)
	nR := left.logR.Len()
	var window [4]float64
	for i := 0; i < st.Len(); i++ {
		for j := 0; j < sr.Len(); j++ {
			off := (st.Start()+i)*nR + sr.Start() + j
			window[i*sr.Len()+j] = b.Blend(left.vals[off], right.vals[off])
		}
	}

	g := interpolate.Grid2{Data: window[:], RowStride: sr.Len(), ColStride: 1}
	return interpolate.Interp2D(
		st.Rebase(st.Start()), sr.Rebase(sr.Start()), g,
	), nil
}

// AllTables is the full opacity registry: a metallicity axis with one
// ConstMetalTables per grid point. Unlike the EOS registry the
// metallicity axis is not evenly spaced, so it is held as an
// IrregularAxis.
type AllTables struct {
	metallicities interpolate.IrregularAxis
	tables        []*ConstMetalTables
}

// MetallicityAxis returns the metallicity axis.
func (ts *AllTables) MetallicityAxis() interpolate.IrregularAxis {
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
			"Opacity tables at z = %g and z = %g share fewer than 2 "+
				"H fraction grid points.",
			left.metallicity, right.metallicity,
		)
	}

	b := interpolate.NewLinearBlend(
		ts.metallicities.At(loc.Lo), ts.metallicities.At(loc.Hi), z,
	)
	tables := make([]*RTempTable, sub.Len())
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
