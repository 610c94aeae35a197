package vector

import (
	"math"

	"github.com/evilsocket/vek/backend"
)

// Add adds c to every element.
func (v *View[T]) Add(c T) {
	for i := 0; i < v.dim; i++ {
		v.data[i*v.stride] += c
	}
}

// Scale multiplies every element by alpha.
func (v *View[T]) Scale(alpha T) {
	if v.dim == 0 {
		return
	}
	backend.For[T]().Scal(v.dim, alpha, v.data, v.stride)
}

// MulElements multiplies v by x elementwise.
func (v *View[T]) MulElements(x Viewer[T]) {
	o := x.AsView()
	checkDim("MulElements", v.dim, o.dim)
	for i := 0; i < v.dim; i++ {
		v.data[i*v.stride] *= o.data[i*o.stride]
	}
}

// DivElements divides v by x elementwise.
func (v *View[T]) DivElements(x Viewer[T]) {
	o := x.AsView()
	checkDim("DivElements", v.dim, o.dim)
	for i := 0; i < v.dim; i++ {
		v.data[i*v.stride] /= o.data[i*o.stride]
	}
}

// InvertElements replaces every element with its reciprocal.
func (v *View[T]) InvertElements() {
	for i := 0; i < v.dim; i++ {
		v.data[i*v.stride] = 1 / v.data[i*v.stride]
	}
}

// ReplaceValue sets every element equal to orig to changed.
func (v *View[T]) ReplaceValue(orig, changed T) {
	for i := 0; i < v.dim; i++ {
		if v.data[i*v.stride] == orig {
			v.data[i*v.stride] = changed
		}
	}
}

// ApplyAbs replaces every element with its magnitude.
func (v *View[T]) ApplyAbs() {
	for i := 0; i < v.dim; i++ {
		v.data[i*v.stride] = T(math.Abs(float64(v.data[i*v.stride])))
	}
}

// ApplyLog replaces every element with its natural logarithm.
func (v *View[T]) ApplyLog() error {
	for i := 0; i < v.dim; i++ {
		x := v.data[i*v.stride]
		if x < 0 {
			return domainError("ApplyLog", "element %d is negative (%v)", i, x)
		}
		v.data[i*v.stride] = T(math.Log(float64(x)))
	}
	return nil
}

// ApplyLogFrom sets v to the elementwise natural logarithm of x.
func (v *View[T]) ApplyLogFrom(x Viewer[T]) error {
	o := x.AsView()
	checkDim("ApplyLogFrom", v.dim, o.dim)
	for i := 0; i < v.dim; i++ {
		f := o.data[i*o.stride]
		if f < 0 {
			return domainError("ApplyLogFrom", "element %d is negative (%v)", i, f)
		}
		v.data[i*v.stride] = T(math.Log(float64(f)))
	}
	return nil
}

// ApplyExp replaces every element with its exponential.
func (v *View[T]) ApplyExp() {
	for i := 0; i < v.dim; i++ {
		v.data[i*v.stride] = T(math.Exp(float64(v.data[i*v.stride])))
	}
}

// ApplyPow raises every element to power. Powers 1, 2 and 0.5 are computed exactly,
// any other power fails when the result is not finite, which includes negative
// bases raised to non integer powers.
func (v *View[T]) ApplyPow(power T) error {
	switch power {
	case 1:
		return nil
	case 2:
		for i := 0; i < v.dim; i++ {
			x := v.data[i*v.stride]
			v.data[i*v.stride] = x * x
		}
	case 0.5:
		for i := 0; i < v.dim; i++ {
			x := v.data[i*v.stride]
			if !(x >= 0) {
				return domainError("ApplyPow", "cannot take square root of element %d (%v)", i, x)
			}
			v.data[i*v.stride] = T(math.Sqrt(float64(x)))
		}
	default:
		for i := 0; i < v.dim; i++ {
			x := v.data[i*v.stride]
			if x < 0 && math.Trunc(float64(power)) != float64(power) {
				return domainError("ApplyPow", "cannot raise negative element %d (%v) to non integer power %v", i, x, power)
			}
			y := T(math.Pow(float64(x), float64(power)))
			if !isFinite(y) {
				return domainError("ApplyPow", "could not raise element %d (%v) to power %v: returned value = %v", i, x, power, y)
			}
			v.data[i*v.stride] = y
		}
	}
	return nil
}

// ApplyPowAbs replaces every element x with |x|^power, multiplied by the sign of x
// when includeSign is set. Zero elements stay zero for negative powers.
func (v *View[T]) ApplyPowAbs(power T, includeSign bool) error {
	for i := 0; i < v.dim; i++ {
		x := v.data[i*v.stride]
		a := math.Abs(float64(x))
		var y T
		switch {
		case power == 1:
			y = T(a)
		case power == 2:
			y = T(a * a)
		case power == 0.5:
			y = T(math.Sqrt(a))
		case power < 0 && a == 0:
			y = 0
		default:
			y = T(math.Pow(a, float64(power)))
			if math.IsInf(float64(y), 1) {
				return domainError("ApplyPowAbs", "could not raise element %d (%v) to power %v: returned value = %v", i, x, power, y)
			}
		}
		if includeSign && x < 0 {
			y = -y
		}
		v.data[i*v.stride] = y
	}
	return nil
}

// ApplyFloor raises every element below floor to floor and returns how many were
// changed.
func (v *View[T]) ApplyFloor(floor T) int {
	changed := 0
	for i := 0; i < v.dim; i++ {
		if v.data[i*v.stride] < floor {
			v.data[i*v.stride] = floor
			changed++
		}
	}
	return changed
}

// ApplyCeiling lowers every element above ceiling to ceiling and returns how many
// were changed.
func (v *View[T]) ApplyCeiling(ceiling T) int {
	changed := 0
	for i := 0; i < v.dim; i++ {
		if v.data[i*v.stride] > ceiling {
			v.data[i*v.stride] = ceiling
			changed++
		}
	}
	return changed
}

// ApplyFloorVec raises every element below the corresponding element of floor and
// returns how many were changed.
func (v *View[T]) ApplyFloorVec(floor Viewer[T]) int {
	f := floor.AsView()
	checkDim("ApplyFloorVec", v.dim, f.dim)
	changed := 0
	for i := 0; i < v.dim; i++ {
		if fv := f.data[i*f.stride]; v.data[i*v.stride] < fv {
			v.data[i*v.stride] = fv
			changed++
		}
	}
	return changed
}

// Tanh sets v to the hyperbolic tangent of src.
func (v *View[T]) Tanh(src Viewer[T]) {
	o := src.AsView()
	checkDim("Tanh", v.dim, o.dim)
	for i := 0; i < v.dim; i++ {
		x := float64(o.data[i*o.stride])
		if x > 0 {
			inv := math.Exp(-x)
			x = -1 + 2/(1+inv*inv)
		} else {
			ex := math.Exp(x)
			x = 1 - 2/(1+ex*ex)
		}
		v.data[i*v.stride] = T(x)
	}
}

// Sigmoid sets v to the logistic function of src.
func (v *View[T]) Sigmoid(src Viewer[T]) {
	o := src.AsView()
	checkDim("Sigmoid", v.dim, o.dim)
	for i := 0; i < v.dim; i++ {
		x := float64(o.data[i*o.stride])
		if x > 0 {
			x = 1 / (1 + math.Exp(-x))
		} else {
			ex := math.Exp(x)
			x = ex / (ex + 1)
		}
		v.data[i*v.stride] = T(x)
	}
}
