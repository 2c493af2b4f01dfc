package eos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateVarNames(t *testing.T) {
	table := []struct {
		v    StateVar
		name string
	}{
		{LogDensity, "log_density"},
		{LogPressure, "log_pressure"},
		{LogPgas, "log_pgas"},
		{LogTemperature, "log_temperature"},
		{DPresDDensEcst, "dpres_ddens_ecst"},
		{DPresDEnerDcst, "dpres_dener_dcst"},
		{DTempDDensEcst, "dtemp_ddens_ecst"},
		{DTempDEnerDcst, "dtemp_dener_dcst"},
		{LogEntropy, "log_entropy"},
		{DTempDPresScst, "dtemp_dpres_scst"},
		{Gamma1, "gamma_1"},
		{Gamma, "gamma"},
	}

	assert.Equal(t, NumStateVars, len(table), "one case per variable")
	for _, line := range table {
		assert.Equal(t, line.name, line.v.String(), "String")
		v, err := ParseStateVar(line.name)
		assert.NoError(t, err, "ParseStateVar error")
		assert.Equal(t, line.v, v, "ParseStateVar")
	}
}

func TestStateVarOutOfRange(t *testing.T) {
	assert.Equal(t, "StateVar(-1)", StateVar(-1).String())
	assert.Equal(t, "StateVar(12)", StateVar(NumStateVars).String())

	_, err := ParseStateVar("entropy")
	assert.Error(t, err, "name without log_ prefix")
	_, err = ParseStateVar("")
	assert.Error(t, err, "empty name")
}
