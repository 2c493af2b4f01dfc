package gomesa

import (
	"fmt"

	"github.com/phil-mansfield/gomesa/eos"
	"github.com/phil-mansfield/gomesa/opacity"
)

// CstCompoOpacity derives Rosseland mean opacities for a set of (density,
// energy) points at one fixed composition. The opacity grid is indexed by
// temperature, which is not a user-facing input, so every query runs
// through the equation of state first.
type CstCompoOpacity struct {
	state *CstCompoState
	table *opacity.RTempTable
}

// NewCstCompoOpacity resolves the equation of state and opacity
// registries at the given composition and creates a state for the given
// points. A composition outside either registry fails with that axis's
// out of bounds error.
func NewCstCompoOpacity(
	eosTables *eos.AllTables, kapTables *opacity.AllTables,
	metallicity, hFrac float64, density, energy []float64,
) (*CstCompoOpacity, error) {
	ets, err := eosTables.TakeAtMetallicity(metallicity)
	if err != nil {
		return nil, err
	}
	et, err := ets.TakeAtHFrac(hFrac)
	if err != nil {
		return nil, err
	}
	kts, err := kapTables.TakeAtMetallicity(metallicity)
	if err != nil {
		return nil, err
	}
	kt, err := kts.TakeAtHFrac(hFrac)
	if err != nil {
		return nil, err
	}

	return &CstCompoOpacity{
		state: NewCstCompoState(et, density, energy),
		table: kt,
	}, nil
}

// Compute returns the log10 opacity at every point of the state. A point
// outside the temperature or R domain of the opacity grid aborts the
// whole call: no partial results are returned.
func (s *CstCompoOpacity) Compute() ([]float64, error) {
	logT, err := s.state.Compute(eos.LogTemperature)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(logT))
	for i := range out {
		logR := s.state.logRho[i] + 18 - 3*logT[i]
		val, err := s.table.At(logT[i], logR)
		if err != nil {
			return nil, fmt.Errorf("Element %d: %s", i, err.Error())
		}
		out[i] = val
	}
	return out, nil
}

// SetState replaces the state's points in place, reusing both resolved
// tables.
func (s *CstCompoOpacity) SetState(density, energy []float64) {
	s.state.SetState(density, energy)
}

// Len returns the number of points in the state.
func (s *CstCompoOpacity) Len() int { return s.state.Len() }

// Table returns the opacity table the state queries.
func (s *CstCompoOpacity) Table() *opacity.RTempTable { return s.table }

// CstMetalOpacity derives Rosseland mean opacities at one fixed
// metallicity with a per-point He fraction.
type CstMetalOpacity struct {
	state  *CstMetalState
	tables *opacity.ConstMetalTables
}

// NewCstMetalOpacity resolves the equation of state and opacity
// registries at the given metallicity and creates a state for the given
// points.
func NewCstMetalOpacity(
	eosTables *eos.AllTables, kapTables *opacity.AllTables,
	metallicity float64, heFrac, density, energy []float64,
) (*CstMetalOpacity, error) {
	ets, err := eosTables.TakeAtMetallicity(metallicity)
	if err != nil {
		return nil, err
	}
	kts, err := kapTables.TakeAtMetallicity(metallicity)
	if err != nil {
		return nil, err
	}

	return &CstMetalOpacity{
		state:  NewCstMetalState(ets, heFrac, density, energy),
		tables: kts,
	}, nil
}

// Compute returns the log10 opacity at every point of the state. A point
// outside the opacity grid aborts the whole call: no partial results are
// returned.
func (s *CstMetalOpacity) Compute() ([]float64, error) {
	logT, err := s.state.Compute(eos.LogTemperature)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(logT))
	for i := range out {
		logR := s.state.logRho[i] + 18 - 3*logT[i]
		val, err := s.tables.At(s.state.hFrac[i], logT[i], logR)
		if err != nil {
			return nil, fmt.Errorf("Element %d: %s", i, err.Error())
		}
		out[i] = val
	}
	return out, nil
}

// SetState replaces the state's points in place, reusing both resolved
// table collections.
func (s *CstMetalOpacity) SetState(heFrac, density, energy []float64) {
	s.state.SetState(heFrac, density, energy)
}

// Len returns the number of points in the state.
func (s *CstMetalOpacity) Len() int { return s.state.Len() }

// Tables returns the opacity collection the state queries.
func (s *CstMetalOpacity) Tables() *opacity.ConstMetalTables {
	return s.tables
}
