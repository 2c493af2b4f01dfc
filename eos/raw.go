package eos

import (
	"bytes"
	"embed"
	"fmt"
	"io"

	"github.com/phil-mansfield/gomesa/fortio"
	"github.com/phil-mansfield/gomesa/interpolate"
)

//go:embed data
var rawTables embed.FS

// rawGrid lays out the composition buckets of the embedded registry: one
// table file per (metallicity, H fraction) pair. The metal-rich rows stop
// at x = 0.8 because x + z cannot exceed 1.
var rawGrid = []struct {
	metallicity float64
	hFracs      []float64
}{
	{0.00, []float64{0.0, 0.2, 0.4, 0.6, 0.8, 1.0}},
	{0.02, []float64{0.0, 0.2, 0.4, 0.6, 0.8}},
	{0.04, []float64{0.0, 0.2, 0.4, 0.6, 0.8}},
}

func bucketName(metallicity, hFrac float64) string {
	return fmt.Sprintf(
		"data/output_DE_z%.2fx%.2f.bindata", metallicity, hFrac,
	)
}

// New decodes the embedded table registry. The embedded tables are part of
// the build, so a decoding failure here is a defect, not a runtime
// condition, and New panics on one.
func New() *AllTables {
	zs := make([]float64, len(rawGrid))
	tables := make([]*ConstMetalTables, len(rawGrid))
	for i, row := range rawGrid {
		zs[i] = row.metallicity
		leaves := make([]*VolumeEnergyTable, len(row.hFracs))
		for j, x := range row.hFracs {
			name := bucketName(row.metallicity, x)
			raw, err := rawTables.ReadFile(name)
			if err != nil {
				panic(fmt.Sprintf(
					"EOS registry is missing %s: %s", name, err.Error(),
				))
			}
			t, err := readVolumeEnergyTable(
				bytes.NewReader(raw), row.metallicity, x,
			)
			if err != nil {
				panic(fmt.Sprintf(
					"EOS table %s is corrupt: %s", name, err.Error(),
				))
			}
			leaves[j] = t
		}

		hAxis, err := interpolate.UniformAxisFromValues(row.hFracs)
		if err != nil {
			panic(fmt.Sprintf(
				"EOS registry H fractions at z = %g: %s",
				row.metallicity, err.Error(),
			))
		}
		tables[i] = &ConstMetalTables{row.metallicity, hAxis, leaves}
	}

	zAxis, err := interpolate.UniformAxisFromValues(zs)
	if err != nil {
		panic(fmt.Sprintf("EOS registry metallicities: %s", err.Error()))
	}
	return &AllTables{zAxis, tables}
}

// readVolumeEnergyTable decodes one table file: a shape record
// [nVolume, nEnergy, nVariables], a [first, step] record per axis, and one
// record holding the whole value block. On disk the value block is in
// (volume, energy, variable) order with volume slowest; in memory energy
// is slowest.
func readVolumeEnergyTable(
	rd io.Reader, metallicity, hFrac float64,
) (*VolumeEnergyTable, error) {
	shape := make([]uint32, 3)
	if err := fortio.ReadUint32s(rd, shape); err != nil {
		return nil, err
	}
	nV, nE, nVar := int(shape[0]), int(shape[1]), int(shape[2])
	if nVar != NumStateVars {
		return nil, fmt.Errorf(
			"Table has %d state variables, expected %d.", nVar, NumStateVars,
		)
	}
	if nV < 2 || nE < 2 {
		return nil, fmt.Errorf(
			"Table grid is %d x %d, but needs at least 2 points per axis.",
			nV, nE,
		)
	}

	vMeta := make([]float64, 2)
	if err := fortio.ReadFloat64s(rd, vMeta); err != nil {
		return nil, err
	}
	eMeta := make([]float64, 2)
	if err := fortio.ReadFloat64s(rd, eMeta); err != nil {
		return nil, err
	}
	if vMeta[1] <= 0 || eMeta[1] <= 0 {
		return nil, fmt.Errorf(
			"Table axis steps %g and %g are not positive.",
			vMeta[1], eMeta[1],
		)
	}

	disk := make([]float64, nV*nE*nVar)
	if err := fortio.ReadFloat64s(rd, disk); err != nil {
		return nil, err
	}

	vals := make([]float64, len(disk))
	for iv := 0; iv < nV; iv++ {
		for ie := 0; ie < nE; ie++ {
			src := (iv*nE + ie) * nVar
			dst := (ie*nV + iv) * nVar
			copy(vals[dst:dst+nVar], disk[src:src+nVar])
		}
	}

	return &VolumeEnergyTable{
		metallicity: metallicity,
		hFrac:       hFrac,
		logE:        interpolate.NewUniformAxis(eMeta[0], eMeta[1], nE),
		logV:        interpolate.NewUniformAxis(vMeta[0], vMeta[1], nV),
		vals:        vals,
	}, nil
}
