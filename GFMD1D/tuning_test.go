package GFMD1D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTuningDerivedQuantities(t *testing.T) {
	var (
		tuning  = DefaultTuning()
		EStar   = 1.8e+6
		XLength = 0.1
		XPoints = 128
	)
	dt := tuning.TimeIncrement(EStar, XLength, XPoints)
	assert.True(t, near(dt, 0.001/math.Sqrt(EStar/(float64(XPoints)*XLength))))

	// The step budget truncates like the original integer conversion.
	assert.Equal(t, int(256*4*math.Sqrt(128)), tuning.Steps(XPoints))

	damping := tuning.DampingFactors(EStar, XLength, dt, XPoints)
	assert.Equal(t, XPoints/2+1, len(damping))
	NL := float64(XPoints) * XLength
	assert.True(t, near(damping[0], 0.75*math.Sqrt(1./NL)))
	for ix := 1; ix < len(damping); ix++ {
		want := 2*math.Sqrt(math.Pi*float64(ix)*EStar/NL) - math.Pi*float64(ix)*EStar*dt/NL
		assert.True(t, near(damping[ix], want))
		assert.True(t, damping[ix] > 0)
	}
	// Higher modes are damped harder.
	for ix := 2; ix < len(damping); ix++ {
		assert.True(t, damping[ix] > damping[ix-1])
	}
}

func TestEffectiveModulus(t *testing.T) {
	m := Materials{
		PunchYoungModulus:     73.1e+9,
		PunchPoissonRatio:     0.17,
		SubstrateYoungModulus: 1.6e+6,
		SubstratePoissonRatio: 0.5,
	}
	// Plane strain keeps the input ratios.
	nu1, nu2 := m.EffectivePoissonRatios(FixedBoundary)
	assert.True(t, near(nu1, 0.17))
	assert.True(t, near(nu2, 0.5))
	EFixed := m.EffectiveModulus(FixedBoundary)
	assert.True(t, near(EFixed, 1./((1-0.17*0.17)/73.1e+9+(1-0.5*0.5)/1.6e+6)))

	// Plane stress substitutes nu/(1+nu). Lower effective ratios raise the
	// (1-nu*nu)/E compliance terms, so the free boundary is softer.
	nu1, nu2 = m.EffectivePoissonRatios(FreeBoundary)
	assert.True(t, near(nu1, 0.17/1.17))
	assert.True(t, near(nu2, 0.5/1.5))
	EFree := m.EffectiveModulus(FreeBoundary)
	assert.True(t, near(EFree, 1./((1-nu1*nu1)/73.1e+9+(1-nu2*nu2)/1.6e+6)))
	assert.True(t, EFree < EFixed)
}

func TestEnumLabels(t *testing.T) {
	g, err := NewPunchGeometry("wave")
	assert.NoError(t, err)
	assert.Equal(t, WavePunch, g)
	_, err = NewPunchGeometry("sphere")
	assert.Error(t, err)

	bc, err := NewBoundaryCondition("fixed")
	assert.NoError(t, err)
	assert.Equal(t, FixedBoundary, bc)
	_, err = NewBoundaryCondition("periodic")
	assert.Error(t, err)
}
