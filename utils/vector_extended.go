package utils

import (
	"gonum.org/v1/gonum/mat"
)

// Vector is a fixed-size real field over the periodic grid, backed by a
// gonum dense vector.
type Vector struct {
	V *mat.VecDense
}

func NewVector(n int, dataO ...[]float64) Vector {
	var (
		data []float64
	)
	if len(dataO) != 0 {
		data = dataO[0]
	} else {
		data = make([]float64, n)
	}
	return Vector{mat.NewVecDense(n, data)}
}

func (v Vector) Len() int { return v.V.Len() }

// DataP exposes the backing slice for the fast paths in the solver loops.
func (v Vector) DataP() []float64 { return v.V.RawVector().Data }

// Chainable (extended) methods
func (v Vector) Sub(a Vector) Vector { v.V.SubVec(v.V, a.V); return v }

func (v Vector) Copy() Vector {
	var (
		data = v.V.RawVector().Data
		n    = v.Len()
		d    = make([]float64, n)
	)
	copy(d, data)
	return NewVector(n, d)
}

func (v Vector) Min() (min float64) {
	var (
		data = v.V.RawVector().Data
	)
	min = data[0]
	for _, val := range data {
		if val < min {
			min = val
		}
	}
	return
}

func (v Vector) Max() (max float64) {
	var (
		data = v.V.RawVector().Data
	)
	max = data[0]
	for _, val := range data {
		if val > max {
			max = val
		}
	}
	return
}

func (v Vector) Sum() (sum float64) {
	var (
		data = v.V.RawVector().Data
	)
	for _, val := range data {
		sum += val
	}
	return
}
