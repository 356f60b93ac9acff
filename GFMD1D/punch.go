package GFMD1D

import (
	"fmt"
	"math"
	"strings"

	"github.com/badmax333/LaserProcessing/utils"
)

// PunchGeometry selects the shape of the rigid indenter.
type PunchGeometry uint8

const (
	// CylindricalPunch is a circular arc of given radius on a flat base.
	CylindricalPunch PunchGeometry = iota
	// WavePunch is a raised cosine spanning the full period.
	WavePunch
)

var (
	geometry_names = []string{
		"cylindrical punch",
		"sinusoidal wave punch",
	}
)

func (g PunchGeometry) String() string { return geometry_names[g] }

func NewPunchGeometry(label string) (PunchGeometry, error) {
	switch strings.ToLower(label) {
	case "cylinder", "cylindrical":
		return CylindricalPunch, nil
	case "wave", "sinusoidal":
		return WavePunch, nil
	}
	return CylindricalPunch, fmt.Errorf("unknown punch geometry %q, must be one of [cylinder, wave]", label)
}

// Punch is the rigid indenter sampled on the periodic grid. The profile is a
// height per grid sample, zero where the punch protrudes the most, so that a
// larger value means less protrusion.
type Punch struct {
	Geometry  PunchGeometry
	XLength   float64 // period of the system [m]
	Amplitude float64 // punch height / wave amplitude [m]
	Radius    float64 // asperity radius [m], derived for the wave case
	Profile   utils.Vector
}

// NewPunch builds the height profile over XPoints uniform samples.
//
// For the cylindrical geometry the profile follows the circle equation
// centered at mid-domain and is flat at the asperity height outside the
// arc's horizontal span; radius must not be smaller than amplitude or the
// arc half-width is undefined. For the wave geometry the asperity radius is
// derived from the crest curvature of the cosine.
func NewPunch(geometry PunchGeometry, XLength, amplitude, radius float64, XPoints int) (p *Punch, err error) {
	if XPoints < 2 || XPoints%2 != 0 {
		return nil, fmt.Errorf("XPoints must be a positive even number (a power of 2 is best), got %d", XPoints)
	}
	if XLength <= 0 || amplitude <= 0 {
		return nil, fmt.Errorf("XLength and amplitude must be positive, got %g and %g", XLength, amplitude)
	}
	p = &Punch{
		Geometry:  geometry,
		XLength:   XLength,
		Amplitude: amplitude,
		Radius:    radius,
		Profile:   utils.NewVector(XPoints),
	}
	profile := p.Profile.DataP()
	switch geometry {
	case CylindricalPunch:
		if radius < amplitude {
			return nil, fmt.Errorf("cylindrical punch radius %g is smaller than amplitude %g", radius, amplitude)
		}
		sphereBoundary := math.Sqrt(radius*radius - (radius-amplitude)*(radius-amplitude))
		for ix := range profile {
			X := XLength * float64(ix) / float64(XPoints)
			if X < XLength/2-sphereBoundary || X > XLength/2+sphereBoundary {
				profile[ix] = amplitude
				continue
			}
			profile[ix] = radius - math.Sqrt(radius*radius-(X-XLength/2)*(X-XLength/2))
		}
	case WavePunch:
		fallthrough
	default:
		for ix := range profile {
			X := XLength * float64(ix) / float64(XPoints)
			profile[ix] = amplitude * (math.Cos(2*math.Pi*X/XLength) + 1) / 2
		}
		// Small-deflection curvature of the wave crest.
		p.Radius = XLength * XLength / (2 * math.Pi * math.Pi * amplitude)
	}
	return
}

// HertzianContactWidth is the classical analytical estimate for a smooth
// convex punch pressed with line force per unit length against a substrate
// of effective modulus EStar. Used as the validation reference.
func (p *Punch) HertzianContactWidth(punchForce, EStar float64) float64 {
	return 4 * math.Sqrt(p.Radius*punchForce/(math.Pi*EStar))
}
