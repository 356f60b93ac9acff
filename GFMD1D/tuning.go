package GFMD1D

import "math"

// Tuning holds the prefactors of the virtual-time relaxation scheme. The
// derived increment, step count and damping formulas are a tuned heuristic:
// empirically stable for the tested configurations, with no runtime
// convergence check. If the result is noisy by crazy orders of magnitude the
// time increment prefactor is usually not small enough.
type Tuning struct {
	TimeIncrementPrefactor float64
	StepsPrefactor         int
	DampingPrefactor       float64
}

func DefaultTuning() Tuning {
	return Tuning{
		TimeIncrementPrefactor: 0.001,
		StepsPrefactor:         4,
		DampingPrefactor:       1,
	}
}

// TimeIncrement is the virtual-time step. Explicit schemes of this kind are
// stable only below a threshold set by the material stiffness and the grid
// resolution, hence the scaling with sqrt of the per-point compliance.
func (t Tuning) TimeIncrement(EStar, XLength float64, XPoints int) float64 {
	return t.TimeIncrementPrefactor / math.Sqrt(EStar/(float64(XPoints)*XLength))
}

// Steps is the fixed relaxation step budget for the run.
func (t Tuning) Steps(XPoints int) int {
	return int(256 * float64(t.StepsPrefactor) * math.Sqrt(float64(XPoints)))
}

// DampingFactors returns one damping coefficient per spectral mode. Higher
// modes see a stiffer elastic response and get stronger damping; mode 0
// carries the external load and gets a fixed small fraction.
func (t Tuning) DampingFactors(EStar, XLength, timeIncrement float64, XPoints int) (damping []float64) {
	NL := float64(XPoints) * XLength
	damping = make([]float64, XPoints/2+1)
	damping[0] = 0.75 * math.Sqrt(1./NL)
	for ix := 1; ix < len(damping); ix++ {
		damping[ix] = t.DampingPrefactor * (2*math.Sqrt(math.Pi*float64(ix)*EStar/NL) -
			math.Pi*float64(ix)*EStar*timeIncrement/NL)
	}
	return
}
