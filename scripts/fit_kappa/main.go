package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/gonum/matrix/mat64"

	"github.com/phil-mansfield/gomesa/opacity"
)

// Samples are taken on a (2*sampleRad + 1)^2 grid around the query point,
// spaced at half an axis step.
const sampleRad = 2

func main() {
	if len(os.Args) != 5 {
		log.Fatalf("Usage: $ %s z h_frac logT logR", os.Args[0])
	}
	args := make([]float64, 4)
	for i := range args {
		x, err := strconv.ParseFloat(os.Args[i+1], 64)
		if err != nil { panic(err) }
		args[i] = x
	}
	z, x, logT, logR := args[0], args[1], args[2], args[3]

	ts, err := opacity.New().TakeAtMetallicity(z)
	if err != nil { panic(err) }
	table, err := ts.TakeAtHFrac(x)
	if err != nil { panic(err) }

	kap, err := table.At(logT, logR)
	if err != nil { panic(err) }
	fmt.Printf("log10 kappa(%g, %g) = %.4f\n", logT, logR, kap)

	c0, a, b := localFit(table, logT, logR)
	fmt.Printf("local fit: log10 kappa = %.4g + %.4g logT + %.4g logR\n",
		c0, a, b)
}

// localFit least-squares fits kappa to a Kramers style power law around
// the query point, through the pseudo-inverse of the sample matrix.
func localFit(table *opacity.RTempTable, logT, logR float64) (c0, a, b float64) {
	side := 2*sampleRad + 1
	n := side * side
	dT := table.TempAxis().Step() / 2
	dR := table.RAxis().Step() / 2

	mVals := make([]float64, n*3)
	mtVals := make([]float64, 3*n)
	yVals := make([]float64, n)

	row := 0
	for i := -sampleRad; i <= sampleRad; i++ {
		for j := -sampleRad; j <= sampleRad; j++ {
			sT := logT + dT*float64(i)
			sR := logR + dR*float64(j)
			kap, err := table.At(sT, sR)
			if err != nil { panic(err) }
			mVals[3*row] = 1
			mVals[3*row+1] = sT
			mVals[3*row+2] = sR
			yVals[row] = kap
			row++
		}
	}
	for r := 0; r < n; r++ {
		for c := 0; c < 3; c++ {
			mtVals[c*n+r] = mVals[r*3+c]
		}
	}

	m := mat64.NewDense(n, 3, mVals)
	mt := mat64.NewDense(3, n, mtVals)
	y := mat64.NewDense(n, 1, yVals)

	mtm := mat64.NewDense(3, 3, make([]float64, 9))
	mtm.Mul(mt, m)
	inv := mat64.NewDense(3, 3, make([]float64, 9))
	err := inv.Inverse(mtm)
	if err != nil { panic(err.Error()) }

	mty := mat64.NewDense(3, 1, make([]float64, 3))
	mty.Mul(mt, y)
	coef := mat64.NewDense(3, 1, make([]float64, 3))
	coef.Mul(inv, mty)

	return coef.At(0, 0), coef.At(1, 0), coef.At(2, 0)
}
