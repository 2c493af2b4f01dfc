package opacity

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"github.com/phil-mansfield/gomesa/fortio"
	"github.com/phil-mansfield/gomesa/interpolate"
)

//go:embed data/opacs.bindata
var rawTables []byte

// New decodes the embedded opacity registry. The embedded tables are part
// of the build, so a decoding failure here is a defect, not a runtime
// condition, and New panics on one.
func New() *AllTables {
	ts, err := readAllTables(bytes.NewReader(rawTables))
	if err != nil {
		panic(fmt.Sprintf(
			"Opacity table data/opacs.bindata is corrupt: %s", err.Error(),
		))
	}
	return ts
}

// readAllTables decodes the whole registry from one file: a shape record
// [nZ, nX, nR, nT], one record of axis values per axis in (metallicity,
// H fraction, temperature, R) order, and then one record of nR opacities
// per (metallicity, H fraction, temperature) triple, temperature fastest.
// Note that the shape record orders the R count before the temperature
// count even though R varies fastest in the value records.
func readAllTables(rd io.Reader) (*AllTables, error) {
	shape := make([]uint32, 4)
	if err := fortio.ReadUint32s(rd, shape); err != nil {
		return nil, err
	}
	nZ, nX := int(shape[0]), int(shape[1])
	nR, nT := int(shape[2]), int(shape[3])
	if nZ < 2 || nX < 2 || nR < 2 || nT < 2 {
		return nil, fmt.Errorf(
			"Table grid is %d x %d x %d x %d, but needs at least 2 points "+
				"per axis.", nZ, nX, nT, nR,
		)
	}

	zVals := make([]float64, nZ)
	if err := fortio.ReadFloat64s(rd, zVals); err != nil {
		return nil, err
	}
	xVals := make([]float64, nX)
	if err := fortio.ReadFloat64s(rd, xVals); err != nil {
		return nil, err
	}
	tVals := make([]float64, nT)
	if err := fortio.ReadFloat64s(rd, tVals); err != nil {
		return nil, err
	}
	rVals := make([]float64, nR)
	if err := fortio.ReadFloat64s(rd, rVals); err != nil {
		return nil, err
	}

	zAxis, err := interpolate.NewIrregularAxis(zVals)
	if err != nil {
		return nil, err
	}
	xAxis, err := interpolate.UniformAxisFromValues(xVals)
	if err != nil {
		return nil, err
	}
	tAxis, err := interpolate.UniformAxisFromValues(tVals)
	if err != nil {
		return nil, err
	}
	rAxis, err := interpolate.UniformAxisFromValues(rVals)
	if err != nil {
		return nil, err
	}

	tables := make([]*ConstMetalTables, nZ)
	for iz := range tables {
		leaves := make([]*RTempTable, nX)
		for ix := range leaves {
			vals := make([]float64, nT*nR)
			for it := 0; it < nT; it++ {
				err := fortio.ReadFloat64s(rd, vals[it*nR:(it+1)*nR])
				if err != nil {
					return nil, err
				}
			}
			leaves[ix] = &RTempTable{
				metallicity: zVals[iz],
				hFrac:       xVals[ix],
				logT:        tAxis,
				logR:        rAxis,
				vals:        vals,
			}
		}
		tables[iz] = &ConstMetalTables{zVals[iz], xAxis, leaves}
	}
	return &AllTables{zAxis, tables}, nil
}
