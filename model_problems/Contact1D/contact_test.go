package Contact1D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/badmax333/LaserProcessing/InputParameters"
)

func TestZeroModeForce(t *testing.T) {
	c, err := NewContact(InputParameters.NewDefaultParameters())
	assert.NoError(t, err)

	// The zero mode carries the externally imposed load, unchanged by the
	// iteration count.
	want := c.PunchForce / c.XLength
	for i := 0; i < 50; i++ {
		c.step()
		assert.True(t, near(real(c.Fhat[0]), want))
		assert.Equal(t, 0., imag(c.Fhat[0]))
	}
}

func TestContactInvariant(t *testing.T) {
	c, err := NewContact(InputParameters.NewDefaultParameters())
	assert.NoError(t, err)

	profile := c.Punch.Profile.DataP()
	for i := 0; i < 200; i++ {
		c.step()
		u := c.U.DataP()
		for ix := range u {
			assert.True(t, u[ix] <= profile[ix])
		}
	}
}

// TestHertzianScenario is the end-to-end acceptance case: the converged
// contact width of the default cylindrical configuration must agree with the
// analytical Hertzian estimate within 20%.
func TestHertzianScenario(t *testing.T) {
	c, err := NewContact(InputParameters.NewDefaultParameters())
	assert.NoError(t, err)

	c.Run(false)
	assert.Equal(t, c.NSteps, c.StepsTaken)
	res := c.Finalize()

	assert.True(t, res.ContactWidth > 0)
	assert.InDelta(t, res.HertzianContactWidth, res.ContactWidth,
		0.20*res.HertzianContactWidth)
	assert.True(t, res.IndentationDepth > 0)
	assert.True(t, res.AverageContactGap > 0)
	assert.True(t, near(res.RelativeContactArea, res.ContactWidth/c.XLength))
}

func TestWavePunchScenario(t *testing.T) {
	ip := InputParameters.NewDefaultParameters()
	ip.Geometry = "wave"
	c, err := NewContact(ip)
	assert.NoError(t, err)
	// The wave asperity radius is derived, not taken from the input.
	assert.True(t, near(c.Punch.Radius, c.XLength*c.XLength/(2*math.Pi*math.Pi*0.010)))

	c.Run(false)
	res := c.Finalize()
	assert.True(t, res.ContactWidth > 0)
	assert.True(t, res.ContactWidth < c.XLength)
}

func TestBenchmarkMode(t *testing.T) {
	c, err := NewContact(InputParameters.NewDefaultParameters())
	assert.NoError(t, err)

	c.BenchmarkSteps = 100
	c.Run(false)
	// Exactly 100 relaxation steps, then the time estimate and an early
	// return, well short of the full budget.
	assert.Equal(t, 100, c.StepsTaken)
	assert.True(t, c.NSteps > c.StepsTaken)
}

func TestStepsPrefactorStability(t *testing.T) {
	run := func(prefactor int) Results {
		ip := InputParameters.NewDefaultParameters()
		ip.StepsPrefactor = prefactor
		c, err := NewContact(ip)
		assert.NoError(t, err)
		c.Run(false)
		return c.Finalize()
	}
	res4 := run(4)
	res8 := run(8)
	// Doubling the step budget must not move the converged contact width by
	// more than a small bounded amount.
	assert.InDelta(t, res4.ContactWidth, res8.ContactWidth,
		0.10*res4.HertzianContactWidth)
}

func TestGridCountScaling(t *testing.T) {
	run := func(points int) Results {
		ip := InputParameters.NewDefaultParameters()
		ip.XPoints = points
		c, err := NewContact(ip)
		assert.NoError(t, err)
		c.Run(false)
		return c.Finalize()
	}
	res128 := run(128)
	res256 := run(256)
	// Doubling the grid halves the minimum resolvable contact feature but
	// leaves the aggregate metrics stable within discretization error.
	assert.InDelta(t, res128.ContactWidth, res256.ContactWidth,
		0.10*res128.HertzianContactWidth)
	assert.InDelta(t, res128.IndentationDepth, res256.IndentationDepth,
		0.20*res128.IndentationDepth)
}

func TestResidualEarlyStop(t *testing.T) {
	ip := InputParameters.NewDefaultParameters()
	ip.MaxResidual = 1.e-30 // effectively unreachable, keeps the fixed budget
	c, err := NewContact(ip)
	assert.NoError(t, err)
	c.Run(false)
	assert.Equal(t, c.NSteps, c.StepsTaken)

	ip = InputParameters.NewDefaultParameters()
	ip.MaxResidual = 1.e-9
	c, err = NewContact(ip)
	assert.NoError(t, err)
	c.Run(false)
	assert.True(t, c.StepsTaken <= c.NSteps)
}

func TestInvalidConfiguration(t *testing.T) {
	ip := InputParameters.NewDefaultParameters()
	ip.PunchRadius = 0.005 // below the amplitude, arc half-width undefined
	_, err := NewContact(ip)
	assert.Error(t, err)

	ip = InputParameters.NewDefaultParameters()
	ip.Geometry = "sphere"
	_, err = NewContact(ip)
	assert.Error(t, err)

	ip = InputParameters.NewDefaultParameters()
	ip.BoundaryCondition = "periodic"
	_, err = NewContact(ip)
	assert.Error(t, err)
}

func near(a, b float64) (l bool) {
	if math.Abs(a-b) < 1.e-08*math.Abs(a)+1.e-14 {
		l = true
	}
	return
}
