package vector

import (
	"math"

	"github.com/evilsocket/vek/backend"
	"github.com/evilsocket/vek/matrix"
)

// Sum returns the sum of the elements.
func (v *View[T]) Sum() T {
	impl := backend.For[T]()
	one := ones[T]()
	sum := T(0)
	for off := 0; off < v.dim; off += chunk {
		n := min(chunk, v.dim-off)
		sum += impl.Dot(n, v.data[off*v.stride:], v.stride, one, 1)
	}
	return sum
}

// SumLog returns the sum of the logs of the elements. The running product is folded
// into the result whenever it leaves [1e-10, 1e10].
func (v *View[T]) SumLog() T {
	sumLog := 0.0
	prod := 1.0
	for i := 0; i < v.dim; i++ {
		prod *= float64(v.data[i*v.stride])
		if prod < 1.0e-10 || prod > 1.0e+10 {
			sumLog += math.Log(prod)
			prod = 1.0
		}
	}
	if prod != 1.0 {
		sumLog += math.Log(prod)
	}
	return T(sumLog)
}

// Max returns the largest element, -Inf for an empty vector.
func (v *View[T]) Max() T {
	ans := T(math.Inf(-1))
	i := 0
	for ; i+4 <= v.dim; i += 4 {
		a1, a2 := v.data[i*v.stride], v.data[(i+1)*v.stride]
		a3, a4 := v.data[(i+2)*v.stride], v.data[(i+3)*v.stride]
		if a1 > ans || a2 > ans || a3 > ans || a4 > ans {
			ans = max(ans, a1, a2, a3, a4)
		}
	}
	for ; i < v.dim; i++ {
		ans = max(ans, v.data[i*v.stride])
	}
	return ans
}

// Min returns the smallest element, +Inf for an empty vector.
func (v *View[T]) Min() T {
	ans := T(math.Inf(1))
	i := 0
	for ; i+4 <= v.dim; i += 4 {
		a1, a2 := v.data[i*v.stride], v.data[(i+1)*v.stride]
		a3, a4 := v.data[(i+2)*v.stride], v.data[(i+3)*v.stride]
		if a1 < ans || a2 < ans || a3 < ans || a4 < ans {
			ans = min(ans, a1, a2, a3, a4)
		}
	}
	for ; i < v.dim; i++ {
		ans = min(ans, v.data[i*v.stride])
	}
	return ans
}

// MaxIndex returns the largest element and its first index.
func (v *View[T]) MaxIndex() (T, int) {
	if v.dim == 0 {
		fail("MaxIndex", ErrEmpty, "no maximum of an empty vector")
	}
	ans, idx := v.data[0], 0
	for i := 1; i < v.dim; i++ {
		if x := v.data[i*v.stride]; x > ans {
			ans, idx = x, i
		}
	}
	return ans, idx
}

// MinIndex returns the smallest element and its first index.
func (v *View[T]) MinIndex() (T, int) {
	if v.dim == 0 {
		fail("MinIndex", ErrEmpty, "no minimum of an empty vector")
	}
	ans, idx := v.data[0], 0
	for i := 1; i < v.dim; i++ {
		if x := v.data[i*v.stride]; x < ans {
			ans, idx = x, i
		}
	}
	return ans, idx
}

// Norm returns the p-norm of the vector. p == 0 counts the non zero elements and
// p == +Inf returns the largest magnitude.
func (v *View[T]) Norm(p T) T {
	if p < 0 {
		fail("Norm", ErrPrecondition, "negative power %v", p)
	}
	sum := T(0)
	switch {
	case p == 0:
		for i := 0; i < v.dim; i++ {
			if v.data[i*v.stride] != 0 {
				sum++
			}
		}
		return sum
	case p == 1:
		for i := 0; i < v.dim; i++ {
			sum += T(math.Abs(float64(v.data[i*v.stride])))
		}
		return sum
	case p == 2:
		for i := 0; i < v.dim; i++ {
			x := v.data[i*v.stride]
			sum += x * x
		}
		return T(math.Sqrt(float64(sum)))
	case math.IsInf(float64(p), 1):
		for i := 0; i < v.dim; i++ {
			sum = max(sum, T(math.Abs(float64(v.data[i*v.stride]))))
		}
		return sum
	}

	ok := true
	for i := 0; i < v.dim; i++ {
		tmp := T(math.Pow(math.Abs(float64(v.data[i*v.stride])), float64(p)))
		if math.IsInf(float64(tmp), 1) {
			ok = false
		}
		sum += tmp
	}
	if ok {
		return T(math.Pow(float64(sum), 1/float64(p)))
	}
	// some power overflowed, rescale by the largest magnitude and try again
	maxAbs := max(v.Max(), -v.Min())
	tmp := Clone[T](v)
	tmp.Scale(1 / maxAbs)
	return tmp.Norm(p) * maxAbs
}

// LogSumExp returns log(Σ exp(x)). Elements too far below the maximum to change the
// result are skipped, prune > 0 tightens the cutoff to max - prune.
func (v *View[T]) LogSumExp(prune T) T {
	maxElem := v.Max()
	cutoff := float64(maxElem) + minLogDiff[T]()
	if prune > 0 && float64(maxElem-prune) > cutoff {
		cutoff = float64(maxElem - prune)
	}
	sum := 0.0
	for i := 0; i < v.dim; i++ {
		if f := float64(v.data[i*v.stride]); f >= cutoff {
			sum += math.Exp(f - float64(maxElem))
		}
	}
	return maxElem + T(math.Log(sum))
}

// ApplySoftMax replaces the elements with exp(x) / Σ exp(x) and returns the log of
// the normalizer.
func (v *View[T]) ApplySoftMax() T {
	maxElem := v.Max()
	sum := T(0)
	for i := 0; i < v.dim; i++ {
		e := T(math.Exp(float64(v.data[i*v.stride] - maxElem)))
		v.data[i*v.stride] = e
		sum += e
	}
	v.Scale(1 / sum)
	return maxElem + T(math.Log(float64(sum)))
}

// ApplyLogSoftMax replaces the elements with x - log(Σ exp(x)) and returns the
// subtracted constant.
func (v *View[T]) ApplyLogSoftMax() T {
	maxElem := v.Max()
	sum := T(0)
	for i := 0; i < v.dim; i++ {
		v.data[i*v.stride] -= maxElem
		sum += T(math.Exp(float64(v.data[i*v.stride])))
	}
	logSum := T(math.Log(float64(sum)))
	v.Add(-logSum)
	return maxElem + logSum
}

// RandCategorical draws an index with probability proportional to its element. The
// elements must be non negative with a positive sum.
func (v *View[T]) RandCategorical() int {
	sum := v.Sum()
	if !(v.Min() >= 0 && sum > 0) {
		fail("RandCategorical", ErrPrecondition, "elements must be non negative with a positive sum, got sum %v", sum)
	}
	r := T(randSource.Float64()) * sum
	running := T(0)
	for i := 0; i < v.dim; i++ {
		running += v.data[i*v.stride]
		if r < running {
			return i
		}
	}
	// rounding
	return v.dim - 1
}

// IsZero reports whether every magnitude is at most cutoff.
func (v *View[T]) IsZero(cutoff T) bool {
	absMax := T(0)
	for i := 0; i < v.dim; i++ {
		absMax = max(absMax, T(math.Abs(float64(v.data[i*v.stride]))))
	}
	return absMax <= cutoff
}

// ApproxEqual reports whether ‖v - other‖ <= tol·‖v‖, a zero tol demands exact
// equality.
func (v *View[T]) ApproxEqual(other Viewer[T], tol float64) bool {
	o := other.AsView()
	checkDim("ApproxEqual", v.dim, o.dim)
	if tol < 0 {
		fail("ApproxEqual", ErrPrecondition, "negative tolerance %v", tol)
	}
	if tol == 0 {
		for i := 0; i < v.dim; i++ {
			if v.data[i*v.stride] != o.data[i*o.stride] {
				return false
			}
		}
		return true
	}
	tmp := Clone[T](v)
	tmp.AddVec(-1, o)
	return tmp.Norm(2) <= T(tol)*v.Norm(2)
}

// VecVec returns the dot product of a and b.
func VecVec[T Float](a, b Viewer[T]) T {
	x, y := a.AsView(), b.AsView()
	checkDim("VecVec", x.dim, y.dim)
	if x.dim == 0 {
		return 0
	}
	return backend.For[T]().Dot(x.dim, x.data, x.stride, y.data, y.stride)
}

// VecMatVec returns v1ᵗ·M·v2.
func VecMatVec[T Float](v1 Viewer[T], m *matrix.General[T], v2 Viewer[T]) T {
	a, b := v1.AsView(), v2.AsView()
	if a.dim != m.Rows || b.dim != m.Cols {
		fail("VecMatVec", ErrShape, "%d x (%dx%d) x %d", a.dim, m.Rows, m.Cols, b.dim)
	}
	tmp := mustNew[T](m.Rows, Undefined)
	tmp.AddMatVec(1, m, backend.NoTrans, b, 0)
	return VecVec[T](a, tmp)
}
