package eos

import (
	"fmt"
)

// StateVar selects which thermodynamic quantity a table query returns. The
// set is closed: each variable doubles as the index of its lane along the
// innermost table axis.
type StateVar int

const (
	LogDensity StateVar = iota
	LogPressure
	LogPgas
	LogTemperature
	DPresDDensEcst
	DPresDEnerDcst
	DTempDDensEcst
	DTempDEnerDcst
	LogEntropy
	DTempDPresScst
	Gamma1
	Gamma

	// NumStateVars is the size of the innermost table axis.
	NumStateVars = int(Gamma) + 1
)

var stateVarNames = []string{
	"log_density",
	"log_pressure",
	"log_pgas",
	"log_temperature",
	"dpres_ddens_ecst",
	"dpres_dener_dcst",
	"dtemp_ddens_ecst",
	"dtemp_dener_dcst",
	"log_entropy",
	"dtemp_dpres_scst",
	"gamma_1",
	"gamma",
}

func (v StateVar) String() string {
	if v < 0 || int(v) >= NumStateVars {
		return fmt.Sprintf("StateVar(%d)", int(v))
	}
	return stateVarNames[v]
}

// ParseStateVar converts a variable name, as used in config files, to its
// StateVar value.
func ParseStateVar(name string) (StateVar, error) {
	for i, n := range stateVarNames {
		if n == name {
			return StateVar(i), nil
		}
	}
	return 0, fmt.Errorf("Unrecognized state variable '%s'.", name)
}
