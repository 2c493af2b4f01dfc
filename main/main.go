package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/gomesa"
	"github.com/phil-mansfield/gomesa/eos"
	"github.com/phil-mansfield/gomesa/opacity"
)

func main() {
	var (
		eosProfile, opacityProfile string
		exampleConfig              string
	)
	vars := map[string]*string{
		"EosProfile":     &eosProfile,
		"OpacityProfile": &opacityProfile,
		"ExampleConfig":  &exampleConfig,
	}

	flag.StringVar(
		&eosProfile, "EosProfile", "",
		"Configuration file for [EosProfile] mode.",
	)
	flag.StringVar(
		&opacityProfile, "OpacityProfile", "",
		"Configuration file for [OpacityProfile] mode.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. Accepted arguments are 'EosProfile' and "+
			"'OpacityProfile'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "EosProfile":
		wrap := DefaultEosProfileWrapper()
		err := gcfg.ReadFileInto(wrap, eosProfile)
		if err != nil {
			log.Fatal(err.Error())
		}
		con := &wrap.EosProfile

		checkProfileConfig(&con.ProfileConfig)
		if !con.ValidVariables() {
			log.Fatal("At least one 'Variable' value must be set.")
		}

		eosProfileMain(con)
	case "OpacityProfile":
		wrap := DefaultOpacityProfileWrapper()
		err := gcfg.ReadFileInto(wrap, opacityProfile)
		if err != nil {
			log.Fatal(err.Error())
		}
		con := &wrap.OpacityProfile

		checkProfileConfig(&con.ProfileConfig)

		opacityProfileMain(con)
	case "ExampleConfig":
		switch exampleConfig {
		case "EosProfile":
			fmt.Println(ExampleEosProfileFile)
		case "OpacityProfile":
			fmt.Println(ExampleOpacityProfileFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. Only recognized " +
					"arguments are 'EosProfile' and 'OpacityProfile'.",
			)
		}
	default:
		panic("Impossible")
	}
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but gomesa only accepts "+
				"one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

func checkProfileConfig(con *ProfileConfig) {
	if !con.ValidInput() {
		log.Fatal("Invalid/non-existent 'Input' value.")
	} else if !con.ValidOutput() {
		log.Fatal("Invalid/non-existent 'Output' value.")
	} else if !con.ValidMetallicity() {
		log.Fatal("Invalid/non-existent 'Metallicity' value.")
	} else if !con.ValidColumns() {
		log.Fatal("Invalid 'DensityColumn'/'EnergyColumn' values.")
	}

	if con.ValidHFrac() == con.ValidHeFracColumn() {
		log.Fatal("Exactly one of 'HFrac' and 'HeFracColumn' must be set.")
	}
}

// readStateTable reads the density and energy columns, and when
// HeFracColumn is set, the He fraction column, out of a text table.
func readStateTable(con *ProfileConfig) (density, energy, heFrac []float64) {
	colIdxs := []int{con.DensityColumn, con.EnergyColumn}
	if con.ValidHeFracColumn() {
		colIdxs = append(colIdxs, con.HeFracColumn)
	}

	cols, err := table.ReadTable(con.Input, colIdxs, nil)
	if err != nil {
		log.Fatal(err.Error())
	}
	if len(cols[0]) == 0 {
		log.Fatalf("Input file %s contains no rows.", con.Input)
	}

	density, energy = cols[0], cols[1]
	if con.ValidHeFracColumn() {
		heFrac = cols[2]
	}
	return density, energy, heFrac
}

func writeProfile(output string, names []string, cols [][]float64) {
	f, err := os.Create(output)
	if err != nil {
		log.Fatal(err.Error())
	}
	defer f.Close()

	fmt.Fprintf(f, "#")
	for _, name := range names {
		fmt.Fprintf(f, " %16s", name)
	}
	fmt.Fprintf(f, "\n")

	for i := range cols[0] {
		fmt.Fprintf(f, " ")
		for j := range cols {
			fmt.Fprintf(f, " %16.6g", cols[j][i])
		}
		fmt.Fprintf(f, "\n")
	}
}

func eosProfileMain(con *EosProfileConfig) {
	vars := make([]eos.StateVar, len(con.Variable))
	for i, name := range con.Variable {
		v, err := eos.ParseStateVar(name)
		if err != nil {
			log.Fatal(err.Error())
		}
		vars[i] = v
	}

	density, energy, heFrac := readStateTable(&con.ProfileConfig)

	ts, err := eos.New().TakeAtMetallicity(con.Metallicity)
	if err != nil {
		log.Fatal(err.Error())
	}

	var compute func(v eos.StateVar) ([]float64, error)
	if con.ValidHeFracColumn() {
		state := gomesa.NewCstMetalState(ts, heFrac, density, energy)
		compute = state.Compute
	} else {
		leaf, err := ts.TakeAtHFrac(con.HFrac)
		if err != nil {
			log.Fatal(err.Error())
		}
		state := gomesa.NewCstCompoState(leaf, density, energy)
		compute = state.Compute
	}

	outs := make([][]float64, len(vars))
	for i, v := range vars {
		out, err := compute(v)
		if err != nil {
			log.Fatal(err.Error())
		}
		outs[i] = out
	}

	writeProfile(con.Output, con.Variable, outs)
}

func opacityProfileMain(con *OpacityProfileConfig) {
	density, energy, heFrac := readStateTable(&con.ProfileConfig)

	eosReg, kapReg := eos.New(), opacity.New()
	var (
		out []float64
		err error
	)
	if con.ValidHeFracColumn() {
		s, cerr := gomesa.NewCstMetalOpacity(
			eosReg, kapReg, con.Metallicity, heFrac, density, energy,
		)
		if cerr != nil {
			log.Fatal(cerr.Error())
		}
		out, err = s.Compute()
	} else {
		s, cerr := gomesa.NewCstCompoOpacity(
			eosReg, kapReg, con.Metallicity, con.HFrac, density, energy,
		)
		if cerr != nil {
			log.Fatal(cerr.Error())
		}
		out, err = s.Compute()
	}
	if err != nil {
		log.Fatal(err.Error())
	}

	writeProfile(con.Output, []string{"log_kappa"}, [][]float64{out})
}
