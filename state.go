// Package gomesa converts physical states into table coordinates and
// queries the equation of state and opacity grids shipped with the
// package. Tables are immutable once decoded, so states share them and
// own only their derived coordinate arrays.
package gomesa

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/gomesa/eos"
)

// CstCompoState holds the table coordinates of a set of (density, energy)
// points at one fixed composition.
type CstCompoState struct {
	table  *eos.VolumeEnergyTable
	logE   []float64
	logV   []float64
	logRho []float64
}

// NewCstCompoState creates a state for the given densities and specific
// internal energies against an already resolved table. The two arrays
// must be the same length.
func NewCstCompoState(
	t *eos.VolumeEnergyTable, density, energy []float64,
) *CstCompoState {
	if len(density) != len(energy) {
		panic(fmt.Sprintf(
			"Given %d densities, but %d energies.",
			len(density), len(energy),
		))
	}

	s := &CstCompoState{
		table:  t,
		logE:   make([]float64, len(density)),
		logV:   make([]float64, len(density)),
		logRho: make([]float64, len(density)),
	}
	s.setCoords(density, energy)
	return s
}

func (s *CstCompoState) setCoords(density, energy []float64) {
	for i := range density {
		s.logE[i] = math.Log10(energy[i])
		s.logRho[i] = math.Log10(density[i])
		s.logV[i] = 20 + s.logRho[i] - 0.7*s.logE[i]
	}
}

// SetState replaces the state's points in place. Resolving a table by
// composition is the expensive step, so a state whose composition has not
// changed reuses its table. The new arrays must have the state's length.
func (s *CstCompoState) SetState(density, energy []float64) {
	if len(density) != len(energy) {
		panic(fmt.Sprintf(
			"Given %d densities, but %d energies.",
			len(density), len(energy),
		))
	}
	if len(density) != s.Len() {
		panic(fmt.Sprintf(
			"Given %d points, but the state holds %d.",
			len(density), s.Len(),
		))
	}
	s.setCoords(density, energy)
}

// Len returns the number of points in the state.
func (s *CstCompoState) Len() int { return len(s.logE) }

// Table returns the table the state queries.
func (s *CstCompoState) Table() *eos.VolumeEnergyTable { return s.table }

// Compute returns the state variable v at every point of the state. A
// point outside the table's domain aborts the whole call: no partial
// results are returned.
func (s *CstCompoState) Compute(v eos.StateVar) ([]float64, error) {
	out := make([]float64, s.Len())
	for i := range out {
		val, err := s.table.At(s.logE[i], s.logV[i], v)
		if err != nil {
			return nil, fmt.Errorf("Element %d: %s", i, err.Error())
		}
		out[i] = val
	}
	return out, nil
}

// CstMetalState holds the table coordinates of a set of (He fraction,
// density, energy) points at one fixed metallicity. The H fraction varies
// point by point, so queries interpolate across the H fraction axis as
// well.
type CstMetalState struct {
	tables *eos.ConstMetalTables
	hFrac  []float64
	logE   []float64
	logV   []float64
	logRho []float64
}

// NewCstMetalState creates a state for the given He fractions, densities
// and specific internal energies against an already resolved collection.
// The H fraction of each point is 1 - heFrac - z. The three arrays must
// be the same length.
func NewCstMetalState(
	ts *eos.ConstMetalTables, heFrac, density, energy []float64,
) *CstMetalState {
	if len(heFrac) != len(density) || len(density) != len(energy) {
		panic(fmt.Sprintf(
			"Given %d He fractions, %d densities, and %d energies.",
			len(heFrac), len(density), len(energy),
		))
	}

	s := &CstMetalState{
		tables: ts,
		hFrac:  make([]float64, len(density)),
		logE:   make([]float64, len(density)),
		logV:   make([]float64, len(density)),
		logRho: make([]float64, len(density)),
	}
	s.setCoords(heFrac, density, energy)
	return s
}

func (s *CstMetalState) setCoords(heFrac, density, energy []float64) {
	z := s.tables.Metallicity()
	for i := range density {
		s.hFrac[i] = 1 - heFrac[i] - z
		s.logE[i] = math.Log10(energy[i])
		s.logRho[i] = math.Log10(density[i])
		s.logV[i] = 20 + s.logRho[i] - 0.7*s.logE[i]
	}
}

// SetState replaces the state's points in place, reusing the resolved
// collection. The new arrays must have the state's length.
func (s *CstMetalState) SetState(heFrac, density, energy []float64) {
	if len(heFrac) != len(density) || len(density) != len(energy) {
		panic(fmt.Sprintf(
			"Given %d He fractions, %d densities, and %d energies.",
			len(heFrac), len(density), len(energy),
		))
	}
	if len(density) != s.Len() {
		panic(fmt.Sprintf(
			"Given %d points, but the state holds %d.",
			len(density), s.Len(),
		))
	}
	s.setCoords(heFrac, density, energy)
}

// Len returns the number of points in the state.
func (s *CstMetalState) Len() int { return len(s.logE) }

// Tables returns the collection the state queries.
func (s *CstMetalState) Tables() *eos.ConstMetalTables { return s.tables }

// Compute returns the state variable v at every point of the state. A
// point outside the table's domain aborts the whole call: no partial
// results are returned.
func (s *CstMetalState) Compute(v eos.StateVar) ([]float64, error) {
	out := make([]float64, s.Len())
	for i := range out {
		val, err := s.tables.At(s.hFrac[i], s.logE[i], s.logV[i], v)
		if err != nil {
			return nil, fmt.Errorf("Element %d: %s", i, err.Error())
		}
		out[i] = val
	}
	return out, nil
}
