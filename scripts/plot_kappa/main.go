package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/gomesa/opacity"
)

var (
	plotRs = []float64{-8, -6, -4, -2, 0, 2}
	colors = []string{
		"DarkSlateBlue", "DarkTurquoise", "DarkViolet",
		"DeepPink", "DarkOrange", "DimGray",
	}
)

func main() {
	if len(os.Args) != 4 {
		log.Fatalf("Usage: $ %s z h_frac out.png", os.Args[0])
	}
	z, err := strconv.ParseFloat(os.Args[1], 64)
	if err != nil { panic(err) }
	x, err := strconv.ParseFloat(os.Args[2], 64)
	if err != nil { panic(err) }
	fname := os.Args[3]

	ts, err := opacity.New().TakeAtMetallicity(z)
	if err != nil { panic(err) }
	table, err := ts.TakeAtHFrac(x)
	if err != nil { panic(err) }

	tAxis := table.TempAxis()
	logTs := make([]float64, tAxis.Len())
	for i := range logTs {
		logTs[i] = tAxis.At(i)
	}

	plt.Reset()
	plt.Figure()

	for ri, logR := range plotRs {
		kaps := make([]float64, len(logTs))
		for i, logT := range logTs {
			kaps[i], err = table.At(logT, logR)
			if err != nil { panic(err) }
		}
		plt.Plot(logTs, kaps, plt.LW(2), plt.C(colors[ri]))
	}

	plt.Title(fmt.Sprintf(
		`$Z$ = %g, $X$ = %g, $\log_{10} R \in [%g, %g]$`,
		z, x, plotRs[0], plotRs[len(plotRs)-1]),
	)
	plt.XLabel(`$\log_{10}\,T$ [K]`, plt.FontSize(16))
	plt.YLabel(`$\log_{10}\,\kappa$ [${\rm cm}^2/{\rm g}$]`, plt.FontSize(16))

	plt.Grid(plt.Axis("y"))
	plt.Grid(plt.Axis("x"), plt.Which("both"))
	plt.SaveFig(fname)
	plt.Execute()
}
