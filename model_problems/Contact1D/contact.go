package Contact1D

import (
	"fmt"
	"math"
	"math/cmplx"
	"sync"
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"

	"github.com/badmax333/LaserProcessing/GFMD1D"
	"github.com/badmax333/LaserProcessing/InputParameters"
	"github.com/badmax333/LaserProcessing/utils"
)

// Contact relaxes a periodic elastic half-space against a rigid frictionless
// punch using the Green's function molecular dynamics method in continuum
// (per-mode) form. The iteration is an energy minimization in virtual time,
// not a physical trajectory.
type Contact struct {
	// Input parameters
	Geometry      GFMD1D.PunchGeometry
	BC            GFMD1D.BoundaryCondition
	Materials     GFMD1D.Materials
	XLength       float64
	PunchPressure float64
	XPoints       int
	Tuning        GFMD1D.Tuning
	MaxResidual   float64 // spectral residual for the optional early stop, 0 disables

	// Derived constants
	EStar         float64 // effective elastic modulus [Pa]
	PunchForce    float64 // applied load [N/m]
	Punch         *GFMD1D.Punch
	HertzianWidth float64
	TimeIncrement float64
	NSteps        int
	Damping       []float64

	// State, allocated once and mutated in place across the run
	U, F           utils.Vector // spatial displacement and force
	Uhat, UhatOld  []complex128 // spectral displacement, current and previous
	Fhat           []complex128 // spectral force
	Trans          *GFMD1D.Transforms
	ContactPoints  int
	StepsTaken     int
	BenchmarkSteps int // run only this many steps and print a time estimate, 0 disables

	InitDuration time.Duration

	PlotOnce sync.Once
	chart    *chart2d.Chart2D
	colorMap *utils2.ColorMap
}

func NewContact(ip *InputParameters.InputParametersGFMD) (c *Contact, err error) {
	start := time.Now()
	geometry, err := GFMD1D.NewPunchGeometry(ip.Geometry)
	if err != nil {
		return nil, err
	}
	bc, err := GFMD1D.NewBoundaryCondition(ip.BoundaryCondition)
	if err != nil {
		return nil, err
	}
	c = &Contact{
		Geometry: geometry,
		BC:       bc,
		Materials: GFMD1D.Materials{
			PunchYoungModulus:     ip.PunchYoungModulus,
			PunchPoissonRatio:     ip.PunchPoissonRatio,
			SubstrateYoungModulus: ip.SubstrateYoungModulus,
			SubstratePoissonRatio: ip.SubstratePoissonRatio,
		},
		XLength:       ip.XLength,
		PunchPressure: ip.PunchPressure,
		XPoints:       ip.XPoints,
		Tuning: GFMD1D.Tuning{
			TimeIncrementPrefactor: ip.TimeIncrementPrefactor,
			StepsPrefactor:         ip.StepsPrefactor,
			DampingPrefactor:       ip.DampingPrefactor,
		},
		MaxResidual: ip.MaxResidual,
	}
	c.EStar = c.Materials.EffectiveModulus(bc)
	c.PunchForce = c.PunchPressure * c.XLength
	if c.Punch, err = GFMD1D.NewPunch(geometry, c.XLength, ip.PunchAmplitude, ip.PunchRadius, c.XPoints); err != nil {
		return nil, err
	}
	c.HertzianWidth = c.Punch.HertzianContactWidth(c.PunchForce, c.EStar)

	c.TimeIncrement = c.Tuning.TimeIncrement(c.EStar, c.XLength, c.XPoints)
	c.NSteps = c.Tuning.Steps(c.XPoints)
	c.Damping = c.Tuning.DampingFactors(c.EStar, c.XLength, c.TimeIncrement, c.XPoints)

	c.Trans = GFMD1D.NewTransforms(c.XPoints)
	nModes := c.Trans.NumModes()
	c.U = utils.NewVector(c.XPoints)
	c.F = utils.NewVector(c.XPoints)
	c.Uhat = make([]complex128, nModes)
	c.UhatOld = make([]complex128, nModes)
	c.Fhat = make([]complex128, nModes)

	fmt.Printf("GFMD contact of a rigid punch on an elastic substrate\n%s, %s\n", c.Geometry, c.BC)
	fmt.Printf("E* = %8.4E [Pa], punch force = %8.4E [N/m], asperity radius = %8.4E [m]\n",
		c.EStar, c.PunchForce, c.Punch.Radius)
	fmt.Printf("XPoints = %d, time increment = %8.4E, steps = %d\n\n", c.XPoints, c.TimeIncrement, c.NSteps)

	c.InitDuration = time.Since(start)
	return
}

// Run drives the relaxation for the fixed step budget. Steps are strictly
// sequential: each one forward-transforms the clipped spatial displacement,
// applies the per-mode elastic force and the damped Verlet recurrence, back
// transforms, and clips against the punch.
func (c *Contact) Run(showGraph bool, graphDelay ...time.Duration) {
	var (
		logFrequency = 500
		loopStart    = time.Now()
	)
	for tstep := 0; tstep < c.NSteps; tstep++ {
		if c.BenchmarkSteps > 0 && tstep == c.BenchmarkSteps {
			fmt.Printf("estimated computation time: %f s\n",
				c.estimateRuntime(time.Since(loopStart), tstep))
			return
		}
		resid := c.step()
		c.Plot(showGraph, graphDelay)
		if tstep%logFrequency == 0 {
			fmt.Printf("step = %6d, contact points = %4d, umin = %10.6E, umax = %10.6E\n",
				tstep, c.ContactPoints, c.U.Min(), c.U.Max())
		}
		if c.MaxResidual > 0 && resid < c.MaxResidual {
			fmt.Printf("converged early: step = %d, residual = %10.6E\n", tstep, resid)
			return
		}
	}
}

// step performs one virtual-time transition and returns the largest spectral
// displacement change, used only by the optional early stop.
func (c *Contact) step() (resid float64) {
	var (
		u       = c.U.DataP()
		profile = c.Punch.Profile.DataP()
		dt      = c.TimeIncrement
	)
	c.Trans.Forward(u, c.Uhat)

	// Elastic half-space response per mode. Mode 0 carries the externally
	// applied load, held fixed; mode k responds with stiffness Q*E*/2.
	c.Fhat[0] = complex(c.PunchForce/c.XLength, 0)
	for ix := 1; ix < len(c.Fhat); ix++ {
		Q := 2 * math.Pi * float64(ix) / c.XLength
		c.Fhat[ix] = complex(-Q*c.EStar/(2*float64(c.XPoints)), 0) * c.Uhat[ix]
	}

	// Damped Verlet recurrence in virtual time.
	for ix := range c.Uhat {
		force := c.Fhat[ix] - complex(c.Damping[ix]/dt, 0)*(c.Uhat[ix]-c.UhatOld[ix])
		uhatNew := 2*c.Uhat[ix] - c.UhatOld[ix] + force*complex(dt*dt, 0)
		if du := cmplx.Abs(uhatNew - c.Uhat[ix]); du > resid {
			resid = du
		}
		c.UhatOld[ix] = c.Uhat[ix]
		c.Uhat[ix] = uhatNew
	}

	c.Trans.Backward(c.Uhat, u)
	c.Trans.Normalize(u)

	// Hard wall: the surface may separate freely but never penetrates the
	// punch. No adhesion, no tensile force is introduced here.
	c.ContactPoints = 0
	for ix := range u {
		if profile[ix] <= u[ix] {
			u[ix] = profile[ix]
			c.ContactPoints++
		}
	}
	c.StepsTaken++
	return
}

func (c *Contact) estimateRuntime(loopElapsed time.Duration, stepsDone int) float64 {
	avgStep := loopElapsed.Seconds() / float64(stepsDone)
	return c.InitDuration.Seconds() + avgStep*float64(c.NSteps)
}

// Results are the scalar contact metrics derived from the converged fields.
type Results struct {
	ContactPoints        int
	ContactWidth         float64 // [m]
	RelativeContactArea  float64
	IndentationDepth     float64 // [m]
	AverageContactGap    float64 // [m]
	HertzianContactWidth float64 // [m]
}

// Finalize recovers the spatial force field from the last spectral force
// values and computes the summary metrics. The force field is defined
// directly in physical units, so no normalization is applied.
func (c *Contact) Finalize() (res Results) {
	c.Trans.Backward(c.Fhat, c.F.DataP())

	res.ContactPoints = c.ContactPoints
	res.ContactWidth = float64(c.ContactPoints) * c.XLength / float64(c.XPoints)
	res.RelativeContactArea = res.ContactWidth / c.XLength
	res.IndentationDepth = c.U.Max() - c.U.Min()
	res.AverageContactGap = c.Punch.Profile.Copy().Sub(c.U).Sum() / float64(c.XPoints)
	res.HertzianContactWidth = c.HertzianWidth
	return
}
