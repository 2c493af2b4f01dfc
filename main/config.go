package main

const (
	ExampleEosProfileFile = `[EosProfile]

#######################
# Required Parameters #
#######################

# Text file with one state per row: density (g/cm^3) and specific internal
# energy (erg/g) columns.
Input = path/to/states.txt
# File the computed profile will be written to.
Output = path/to/eos_profile.txt

# Metallicity of the tables to interpolate at.
Metallicity = 0.02

# State variables to compute, one output column each, in order. Accepted
# values are:
# log_density, log_pressure, log_pgas, log_temperature, dpres_ddens_ecst,
# dpres_dener_dcst, dtemp_ddens_ecst, dtemp_dener_dcst, log_entropy,
# dtemp_dpres_scst, gamma_1, gamma.
Variable = log_temperature
Variable = log_pressure

# Exactly one of HFrac and HeFracColumn must be set. HFrac fixes the H mass
# fraction for every state. HeFracColumn instead reads a per-state He mass
# fraction from the given input column and derives the H fraction from it.
HFrac = 0.7
# HeFracColumn = 2

#######################
# Optional Parameters #
#######################

# Input columns holding density and energy. Defaults are 0 and 1.
# DensityColumn = 0
# EnergyColumn = 1`

	ExampleOpacityProfileFile = `[OpacityProfile]

#######################
# Required Parameters #
#######################

# Text file with one state per row: density (g/cm^3) and specific internal
# energy (erg/g) columns.
Input = path/to/states.txt
# File the computed log opacities will be written to.
Output = path/to/opacity_profile.txt

# Metallicity of the tables to interpolate at.
Metallicity = 0.02

# Exactly one of HFrac and HeFracColumn must be set. HFrac fixes the H mass
# fraction for every state. HeFracColumn instead reads a per-state He mass
# fraction from the given input column and derives the H fraction from it.
HFrac = 0.7
# HeFracColumn = 2

#######################
# Optional Parameters #
#######################

# Input columns holding density and energy. Defaults are 0 and 1.
# DensityColumn = 0
# EnergyColumn = 1`
)

type ProfileConfig struct {
	// Required
	Input, Output string
	Metallicity   float64

	// Exactly one of these two. HFrac fixes the composition for the whole
	// profile, HeFracColumn makes it vary point by point.
	HFrac        float64
	HeFracColumn int

	// Optional
	DensityColumn, EnergyColumn int
}

func (con *ProfileConfig) ValidInput() bool  { return con.Input != "" }
func (con *ProfileConfig) ValidOutput() bool { return con.Output != "" }
func (con *ProfileConfig) ValidMetallicity() bool {
	return con.Metallicity >= 0
}
func (con *ProfileConfig) ValidHFrac() bool { return con.HFrac >= 0 }
func (con *ProfileConfig) ValidHeFracColumn() bool {
	return con.HeFracColumn >= 0
}
func (con *ProfileConfig) ValidColumns() bool {
	return con.DensityColumn >= 0 && con.EnergyColumn >= 0 &&
		con.DensityColumn != con.EnergyColumn
}

type EosProfileConfig struct {
	ProfileConfig

	// Required: the state variables to compute, in output column order.
	Variable []string
}

func (con *EosProfileConfig) ValidVariables() bool {
	return len(con.Variable) > 0
}

type EosProfileWrapper struct {
	EosProfile EosProfileConfig
}

func DefaultEosProfileWrapper() *EosProfileWrapper {
	con := EosProfileConfig{}
	con.Metallicity = -1
	con.HFrac = -1
	con.HeFracColumn = -1
	con.DensityColumn = 0
	con.EnergyColumn = 1
	return &EosProfileWrapper{con}
}

type OpacityProfileConfig struct {
	ProfileConfig
}

type OpacityProfileWrapper struct {
	OpacityProfile OpacityProfileConfig
}

func DefaultOpacityProfileWrapper() *OpacityProfileWrapper {
	con := OpacityProfileConfig{}
	con.Metallicity = -1
	con.HFrac = -1
	con.HeFracColumn = -1
	con.DensityColumn = 0
	con.EnergyColumn = 1
	return &OpacityProfileWrapper{con}
}
