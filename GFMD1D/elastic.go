package GFMD1D

import (
	"fmt"
	"strings"
)

// BoundaryCondition selects the out-of-plane condition of the 1D problem.
type BoundaryCondition uint8

const (
	// FreeBoundary is the zero out-of-plane stress ("free film") condition,
	// also called the plane stress problem.
	FreeBoundary BoundaryCondition = iota
	// FixedBoundary is the zero out-of-plane displacement ("pipe")
	// condition, also called the plane strain problem.
	FixedBoundary
)

var (
	bc_names = []string{
		"zero out-of-plane stress (\"free film\" mode)",
		"zero out-of-plane displacements (\"pipe\" mode)",
	}
)

func (bc BoundaryCondition) String() string { return bc_names[bc] }

func NewBoundaryCondition(label string) (BoundaryCondition, error) {
	switch strings.ToLower(label) {
	case "free", "film", "plane-stress":
		return FreeBoundary, nil
	case "fixed", "pipe", "plane-strain":
		return FixedBoundary, nil
	}
	return FreeBoundary, fmt.Errorf("unknown boundary condition %q, must be one of [free, fixed]", label)
}

// Materials holds the elastic constants of the two contacting bodies before
// reduction to the rigid punch on elastic substrate problem.
type Materials struct {
	PunchYoungModulus, PunchPoissonRatio         float64
	SubstrateYoungModulus, SubstratePoissonRatio float64
}

// EffectivePoissonRatios maps the input ratios through the out-of-plane
// boundary condition. The plane stress solution is obtained from the plane
// strain solution by the substitution nu -> nu/(1+nu); for plane strain the
// ratios are kept intact. See Lurie, "Theory of Elasticity", Springer (2005).
func (m Materials) EffectivePoissonRatios(bc BoundaryCondition) (nuPunch, nuSubstrate float64) {
	nuPunch, nuSubstrate = m.PunchPoissonRatio, m.SubstratePoissonRatio
	if bc == FreeBoundary {
		nuPunch = nuPunch / (1 + nuPunch)
		nuSubstrate = nuSubstrate / (1 + nuSubstrate)
	}
	return
}

// EffectiveModulus reduces the two-body contact to an equivalent rigid punch
// against a single elastic substrate with modulus E*. The closer the
// effective Poisson ratios are to 0.5, the more accurate the reduction.
func (m Materials) EffectiveModulus(bc BoundaryCondition) float64 {
	nu1, nu2 := m.EffectivePoissonRatios(bc)
	return 1. / ((1-nu1*nu1)/m.PunchYoungModulus + (1-nu2*nu2)/m.SubstrateYoungModulus)
}
