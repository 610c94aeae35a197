package vector

import (
	"math"
	"math/rand"
)

// Source is the process level random source used by SetRandn, SetRandUniform and
// RandCategorical. Float64 must return a uniform value in [0, 1).
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 {
	return rand.Float64()
}

var randSource Source = globalSource{}

// SetRandSource replaces the random source, nil restores the default one. It is not
// synchronized with the functions drawing from it.
func SetRandSource(src Source) {
	if src == nil {
		src = globalSource{}
	}
	randSource = src
}

// gauss2 draws two independent standard normal values with the Box-Muller transform.
func gauss2() (float64, float64) {
	u1 := 1 - randSource.Float64()
	u2 := randSource.Float64()
	r := math.Sqrt(-2 * math.Log(u1))
	s, c := math.Sincos(2 * math.Pi * u2)
	return r * c, r * s
}

// SetRandn fills v with standard normal values, drawn in pairs.
func (v *View[T]) SetRandn() {
	last := v.dim - v.dim%2
	for i := 0; i < last; i += 2 {
		a, b := gauss2()
		v.data[i*v.stride] = T(a)
		v.data[(i+1)*v.stride] = T(b)
	}
	if last != v.dim {
		a, _ := gauss2()
		v.data[last*v.stride] = T(a)
	}
}

// SetRandUniform fills v with uniform values in [0, 1).
func (v *View[T]) SetRandUniform() {
	for i := 0; i < v.dim; i++ {
		v.data[i*v.stride] = T(randSource.Float64())
	}
}
