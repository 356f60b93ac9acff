package GFMD1D

import (
	"gonum.org/v1/gonum/dsp/fourier"
)

// Transforms is the forward/backward real transform pair for a grid of
// XPoints samples. The plan depends only on the grid size, so it is built
// once per run and reused on every relaxation step.
//
// The backward transform is unnormalized: Backward(Forward(u)) recovers
// XPoints*u, exactly as FFTW's r2c/c2r pair does. Callers round-tripping the
// displacement field must divide by XPoints afterwards (Normalize); the
// spectral force field is defined directly in physical units and is
// back-transformed without normalization.
type Transforms struct {
	XPoints int
	fft     *fourier.FFT
}

func NewTransforms(XPoints int) *Transforms {
	return &Transforms{
		XPoints: XPoints,
		fft:     fourier.NewFFT(XPoints),
	}
}

// NumModes is the number of degrees of freedom in Fourier space. The input
// is real, so the negative-frequency coefficients are redundant by Hermitian
// symmetry and only XPoints/2+1 are carried.
func (t *Transforms) NumModes() int { return t.XPoints/2 + 1 }

// Forward fills spectral (length NumModes) from spatial (length XPoints).
func (t *Transforms) Forward(spatial []float64, spectral []complex128) {
	t.fft.Coefficients(spectral, spatial)
}

// Backward fills spatial from spectral without normalization.
func (t *Transforms) Backward(spectral []complex128, spatial []float64) {
	t.fft.Sequence(spatial, spectral)
}

// Normalize divides every sample by XPoints, completing a displacement
// round trip. Omitting it silently corrupts all downstream physics.
func (t *Transforms) Normalize(spatial []float64) {
	scale := 1. / float64(t.XPoints)
	for i := range spatial {
		spatial[i] *= scale
	}
}
