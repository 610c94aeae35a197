package vector

import "math"

// chunk is the length of the all-ones operands: BLAS forbids a zero increment, so
// sums are computed as dot products against at most chunk ones at a time.
const chunk = 64

var (
	ones32 [chunk]float32
	ones64 [chunk]float64
)

func init() {
	for i := 0; i < chunk; i++ {
		ones32[i] = 1
		ones64[i] = 1
	}
}

func ones[T Float]() []T {
	var o any
	switch any(*new(T)).(type) {
	case float32:
		o = ones32[:]
	case float64:
		o = ones64[:]
	}
	return o.([]T)
}

func bitSize[T Float]() int {
	if _, ok := any(*new(T)).(float32); ok {
		return 32
	}
	return 64
}

func epsilon[T Float]() float64 {
	if bitSize[T]() == 32 {
		return 1.1920928955078125e-07
	}
	return 2.220446049250313e-16
}

// minLogDiff is the log of the smallest ratio between two summands that still
// changes their sum, elements further below the maximum are skipped by LogSumExp.
func minLogDiff[T Float]() float64 {
	return math.Log(epsilon[T]())
}

func isFinite[T Float](x T) bool {
	f := float64(x)
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
