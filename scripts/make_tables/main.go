package main

import (
	"fmt"
	"os"
	"path"

	"github.com/phil-mansfield/gomesa/eos"
	"github.com/phil-mansfield/gomesa/fortio"
)

// compositions lists the (metallicity, H fraction) buckets of the state
// table registry, one output file per pair. The metal-rich rows stop at
// x = 0.8 because x + z cannot exceed 1.
var compositions = []struct {
	z      float64
	hFracs []float64
}{
	{0.00, []float64{0.0, 0.2, 0.4, 0.6, 0.8, 1.0}},
	{0.02, []float64{0.0, 0.2, 0.4, 0.6, 0.8}},
	{0.04, []float64{0.0, 0.2, 0.4, 0.6, 0.8}},
}

// opacityZs is unevenly spaced, like the metallicity grids of the standard
// opacity sources.
var opacityZs = []float64{
	0.0, 0.001, 0.004, 0.01, 0.02, 0.03, 0.04, 0.06, 0.1,
}

const (
	nLogV, logV0, dLogV = 15, 0.0, 1.0
	nLogE, logE0, dLogE = 15, 10.5, 0.5

	nHFrac, hFrac0, dHFrac = 6, 0.0, 0.2
	nLogT, logT0, dLogT    = 17, 2.0, 0.5
	nLogR, logR0, dLogR    = 21, -14.0, 1.0
)

func main() {
	eosDir, opacityDir := os.Args[1], os.Args[2]

	for _, row := range compositions {
		for _, x := range row.hFracs {
			name := fmt.Sprintf(
				"output_DE_z%.2fx%.2f.bindata", row.z, x,
			)
			writeEosTable(path.Join(eosDir, name), row.z, x)
		}
	}
	writeOpacityTable(path.Join(opacityDir, "opacs.bindata"))
}

// stateColumns fills one grid point of the state model. Every column is at
// most quadratic in logE and linear in logV, x, and z, so the interpolated
// tables reproduce the model without truncation error. The derivative
// columns are the exact derivatives of the model, taken at constant
// density or energy rather than constant volume.
func stateColumns(logE, logV, x, z float64, out []float64) {
	logRho := logV + 0.7*logE - 20
	logT := 0.72*logE + 0.012*(logE-14)*(logE-14) + 0.04*(logV-7) - 4.5 -
		0.35*x - 0.6*z
	logPg := logRho + logT + 7.92 + 0.28*x - 0.5*z

	out[eos.LogDensity] = logRho
	out[eos.LogPressure] = logPg + 0.04 + 0.012*(logT-6)
	out[eos.LogPgas] = logPg
	out[eos.LogTemperature] = logT
	out[eos.DPresDDensEcst] = 1 + 1.012*0.04
	out[eos.DPresDEnerDcst] = 1.012 * (0.692 + 0.024*(logE-14))
	out[eos.DTempDDensEcst] = 0.04
	out[eos.DTempDEnerDcst] = 0.692 + 0.024*(logE-14)
	out[eos.LogEntropy] = 5.9 + 0.45*logT - 0.30*logRho + 0.05*x - 0.1*z
	out[eos.DTempDPresScst] = 0.40 - 0.005*(logT-6) - 0.02*x
	out[eos.Gamma1] = 1.6667 - 0.012*(logT-6) - 0.015*x
	out[eos.Gamma] = 1.6667 - 0.010*(logT-6) - 0.010*x
}

func writeEosTable(fname string, z, x float64) {
	f, err := os.Create(fname)
	if err != nil { panic(err) }
	defer f.Close()

	err = fortio.WriteUint32s(
		f, []uint32{nLogV, nLogE, uint32(eos.NumStateVars)},
	)
	if err != nil { panic(err) }
	err = fortio.WriteFloat64s(f, []float64{logV0, dLogV})
	if err != nil { panic(err) }
	err = fortio.WriteFloat64s(f, []float64{logE0, dLogE})
	if err != nil { panic(err) }

	block := make([]float64, nLogV*nLogE*eos.NumStateVars)
	for iv := 0; iv < nLogV; iv++ {
		logV := logV0 + dLogV*float64(iv)
		for ie := 0; ie < nLogE; ie++ {
			logE := logE0 + dLogE*float64(ie)
			off := (iv*nLogE + ie) * eos.NumStateVars
			stateColumns(logE, logV, x, z, block[off:off+eos.NumStateVars])
		}
	}
	err = fortio.WriteFloat64s(f, block)
	if err != nil { panic(err) }
}

func writeOpacityTable(fname string) {
	f, err := os.Create(fname)
	if err != nil { panic(err) }
	defer f.Close()

	err = fortio.WriteUint32s(
		f, []uint32{uint32(len(opacityZs)), nHFrac, nLogR, nLogT},
	)
	if err != nil { panic(err) }
	err = fortio.WriteFloat64s(f, opacityZs)
	if err != nil { panic(err) }
	err = fortio.WriteFloat64s(f, axisValues(hFrac0, dHFrac, nHFrac))
	if err != nil { panic(err) }
	err = fortio.WriteFloat64s(f, axisValues(logT0, dLogT, nLogT))
	if err != nil { panic(err) }
	err = fortio.WriteFloat64s(f, axisValues(logR0, dLogR, nLogR))
	if err != nil { panic(err) }

	row := make([]float64, nLogR)
	for _, z := range opacityZs {
		for ix := 0; ix < nHFrac; ix++ {
			x := hFrac0 + dHFrac*float64(ix)
			for it := 0; it < nLogT; it++ {
				logT := logT0 + dLogT*float64(it)
				for ir := 0; ir < nLogR; ir++ {
					logR := logR0 + dLogR*float64(ir)
					row[ir] = 3.3 + logR - 0.5*logT + 0.25*x + 4.0*z
				}
				err = fortio.WriteFloat64s(f, row)
				if err != nil { panic(err) }
			}
		}
	}
}

func axisValues(x0, dx float64, n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = x0 + dx*float64(i)
	}
	return xs
}
