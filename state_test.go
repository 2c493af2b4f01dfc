package gomesa

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phil-mansfield/gomesa/eos"
)

// fitLogT mirrors the closed form fit behind scripts/make_tables, so
// state queries can be checked end to end against it.
func fitLogT(logE, logV, x, z float64) float64 {
	return 0.72*logE + 0.012*(logE-14)*(logE-14) + 0.04*(logV-7) - 4.5 -
		0.35*x - 0.6*z
}

func TestCstCompoStateRoundTrip(t *testing.T) {
	reg := eos.New()
	ts, err := reg.TakeAtMetallicity(0.0)
	assert.NoError(t, err)
	leaf, err := ts.TakeAtHFrac(1.0)
	assert.NoError(t, err)

	density := []float64{1e-6, 8.3537, 250.0}
	energy := []float64{2e15, 2e15, 2e15}
	s := NewCstCompoState(leaf, density, energy)
	assert.Equal(t, 3, s.Len())
	assert.True(t, leaf == s.Table(), "shared table")

	got, err := s.Compute(eos.LogDensity)
	assert.NoError(t, err)
	for i := range got {
		assert.InEpsilon(
			t, density[i], math.Pow(10, got[i]), 1e-8, "element %d", i,
		)
	}
}

func TestCstCompoStateAgainstFit(t *testing.T) {
	reg := eos.New()
	z, x := 0.02, 0.8
	ts, err := reg.TakeAtMetallicity(z)
	assert.NoError(t, err)
	leaf, err := ts.TakeAtHFrac(x)
	assert.NoError(t, err)

	density := []float64{8.3537}
	energy := []float64{3.6349e15}
	s := NewCstCompoState(leaf, density, energy)

	got, err := s.Compute(eos.LogTemperature)
	assert.NoError(t, err)
	logE := math.Log10(energy[0])
	logV := 20 + math.Log10(density[0]) - 0.7*logE
	assert.InDelta(t, fitLogT(logE, logV, x, z), got[0], 1e-8)
}

func TestCstMetalStateConsistency(t *testing.T) {
	reg := eos.New()
	z := 0.02
	heFrac := 0.35776
	x := 1 - heFrac - z

	density := []float64{8.3537}
	energy := []float64{3.6349e15}

	ts, err := reg.TakeAtMetallicity(z)
	assert.NoError(t, err)
	ms := NewCstMetalState(ts, []float64{heFrac}, density, energy)
	assert.Equal(t, 1, ms.Len())
	assert.True(t, ts == ms.Tables(), "shared tables")

	mt, err := ms.Compute(eos.LogTemperature)
	assert.NoError(t, err)

	leaf, err := ts.TakeAtHFrac(x)
	assert.NoError(t, err)
	cs := NewCstCompoState(leaf, density, energy)
	ct, err := cs.Compute(eos.LogTemperature)
	assert.NoError(t, err)

	assert.InDelta(
		t, ct[0], mt[0], 1e-12, "blend then spline vs resolve then spline",
	)

	logE := math.Log10(energy[0])
	logV := 20 + math.Log10(density[0]) - 0.7*logE
	assert.InDelta(t, fitLogT(logE, logV, x, z), mt[0], 1e-8, "fit check")
}

func TestSetStateMidpoint(t *testing.T) {
	reg := eos.New()
	ts, err := reg.TakeAtMetallicity(0.02)
	assert.NoError(t, err)

	d, e := 8.3537, 3.6349e15
	density := []float64{d, d, d}
	energy := []float64{e, e, e}

	s := NewCstMetalState(ts, []float64{0.4, 0.5, 0.4}, density, energy)
	logT, err := s.Compute(eos.LogTemperature)
	assert.NoError(t, err)
	assert.InDelta(t, logT[0], logT[2], 1e-12, "symmetric neighbors")
	assert.NotEqual(t, logT[0], logT[1], "midpoint differs")

	s.SetState([]float64{0.40, 0.42, 0.44}, density, energy)
	logT, err = s.Compute(eos.LogTemperature)
	assert.NoError(t, err)
	assert.InDelta(
		t, (logT[0]+logT[2])/2, logT[1], 1e-9,
		"temperature is linear across the midpoint",
	)
}

func TestComputeAborts(t *testing.T) {
	reg := eos.New()
	ts, err := reg.TakeAtMetallicity(0.02)
	assert.NoError(t, err)
	leaf, err := ts.TakeAtHFrac(0.6)
	assert.NoError(t, err)

	s := NewCstCompoState(
		leaf, []float64{8.3537, 8.3537}, []float64{2e15, 1e20},
	)
	out, err := s.Compute(eos.LogPressure)
	assert.Error(t, err, "out of bounds point aborts the call")
	assert.Nil(t, out, "no partial results")
	assert.Contains(t, err.Error(), "Element 1")

	ms := NewCstMetalState(
		ts, []float64{0.4, 0.4}, []float64{8.3537, 8.3537},
		[]float64{2e15, 1e20},
	)
	out, err = ms.Compute(eos.LogPressure)
	assert.Error(t, err, "out of bounds point aborts the call")
	assert.Nil(t, out, "no partial results")
}

func TestStateLengthPanics(t *testing.T) {
	reg := eos.New()
	ts, err := reg.TakeAtMetallicity(0.0)
	assert.NoError(t, err)
	leaf, err := ts.TakeAtHFrac(0.8)
	assert.NoError(t, err)

	assert.Panics(t, func() {
		NewCstCompoState(leaf, []float64{1, 2}, []float64{2e15})
	})
	s := NewCstCompoState(leaf, []float64{1, 2}, []float64{2e15, 3e15})
	assert.Panics(t, func() {
		s.SetState([]float64{1}, []float64{2e15})
	})

	assert.Panics(t, func() {
		NewCstMetalState(
			ts, []float64{0.3}, []float64{1, 2}, []float64{2e15, 3e15},
		)
	})
	ms := NewCstMetalState(
		ts, []float64{0.3, 0.3}, []float64{1, 2}, []float64{2e15, 3e15},
	)
	assert.Panics(t, func() {
		ms.SetState([]float64{0.3}, []float64{1}, []float64{2e15})
	})
}
