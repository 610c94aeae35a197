package vector

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/stretchr/testify/require"
)

// fixedSource returns its values in a loop.
type fixedSource struct {
	values []float64
	next   int
}

func (s *fixedSource) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func TestSum(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	eachBackend(t, func(t *testing.T) {
		for _, n := range []int{0, 1, 63, 64, 65, 200} {
			v := randVector(r, n)
			require.InDelta(t, floats.Sum(v.ToSlice()), v.Sum(), 1e-12, "dim %d", n)
		}

		buf := make([]float64, 300)
		for i := range buf {
			buf[i] = float64(i)
		}
		strided := NewView(buf, 100, 3)
		require.Equal(t, floats.Sum(strided.ToSlice()), strided.Sum())

		f := NewFrom([]float32{0.5, 1.5, 2})
		require.Equal(t, float32(4), f.Sum())
	})
}

func TestSumLog(t *testing.T) {
	v := mustNew[float64](1000, Undefined)
	v.Set(1e-3)
	require.InDelta(t, 1000*math.Log(1e-3), v.SumLog(), 1e-9)

	v.Set(1e5)
	require.InDelta(t, 1000*math.Log(1e5), v.SumLog(), 1e-8)

	require.Equal(t, 0.0, (&View[float64]{stride: 1}).SumLog())
}

func TestMaxMin(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for _, n := range []int{1, 3, 4, 5, 9, 100} {
		v := randVector(r, n)
		data := v.ToSlice()
		require.Equal(t, floats.Max(data), v.Max())
		require.Equal(t, floats.Min(data), v.Min())

		m, i := v.MaxIndex()
		require.Equal(t, floats.Max(data), m)
		require.Equal(t, floats.MaxIdx(data), i)
		m, i = v.MinIndex()
		require.Equal(t, floats.Min(data), m)
		require.Equal(t, floats.MinIdx(data), i)
	}

	empty := &View[float64]{stride: 1}
	require.True(t, math.IsInf(empty.Max(), -1))
	require.True(t, math.IsInf(empty.Min(), 1))
	panicsWith(t, ErrEmpty, func() { empty.MaxIndex() })
	panicsWith(t, ErrEmpty, func() { empty.MinIndex() })
}

func TestNorm(t *testing.T) {
	require.Equal(t, 5.0, NewFrom([]float64{3, 4}).Norm(2))
	require.Equal(t, float32(5), NewFrom([]float32{3, 4}).Norm(2))
	require.Equal(t, 2.0, NewFrom([]float64{0, 1, 0, 2}).Norm(0))
	require.Equal(t, 5.0, NewFrom([]float64{-5, 3, 4}).Norm(math.Inf(1)))
	require.Equal(t, 12.0, NewFrom([]float64{-5, 3, 4}).Norm(1))

	r := rand.New(rand.NewSource(3))
	v := randVector(r, 50)
	require.InDelta(t, floats.Norm(v.ToSlice(), 3), v.Norm(3), 1e-12)

	panicsWith(t, ErrPrecondition, func() { v.Norm(-1) })
}

func TestNormRescalesOnOverflow(t *testing.T) {
	// 1e20^3 overflows float32, the rescaled computation does not
	v := NewFrom([]float32{1e20, 1e20})
	got := v.Norm(3)
	require.False(t, math.IsInf(float64(got), 0))
	require.InEpsilon(t, 1e20*math.Cbrt(2), float64(got), 1e-5)
}

func TestLogSumExp(t *testing.T) {
	require.InDelta(t, math.Log(2), NewFrom([]float64{0, 0}).LogSumExp(0), 1e-15)
	require.InDelta(t, float32(math.Log(2)), NewFrom([]float32{0, 0}).LogSumExp(0), 1e-7)

	// one element far above the others dominates
	require.Equal(t, 1000.0, NewFrom([]float64{1000, 0, -3, 1}).LogSumExp(0))
	require.Equal(t, float32(200), NewFrom([]float32{200, 1, 2}).LogSumExp(0))

	r := rand.New(rand.NewSource(4))
	v := randVector(r, 40)
	require.InDelta(t, floats.LogSumExp(v.ToSlice()), v.LogSumExp(0), 1e-12)

	// pruning drops the element 5 below the maximum
	pruned := NewFrom([]float64{0, -5}).LogSumExp(1)
	require.Equal(t, 0.0, pruned)
}

func TestSoftMax(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	eachBackend(t, func(t *testing.T) {
		for _, n := range []int{1, 2, 10, 100} {
			v := randVector(r, n)
			v.Scale(50)
			orig := v.ToSlice()
			logZ := v.ApplySoftMax()
			require.InDelta(t, floats.LogSumExp(orig), logZ, 1e-10)
			for _, x := range v.ToSlice() {
				require.True(t, x >= 0)
			}
			require.InDelta(t, 1.0, v.Sum(), 1e-12)
		}

		v := NewFrom([]float64{1, 2, 3})
		logZ := v.ApplyLogSoftMax()
		require.InDelta(t, floats.LogSumExp([]float64{1, 2, 3}), logZ, 1e-14)
		for i, x := range []float64{1, 2, 3} {
			require.InDelta(t, x-logZ, v.At(i), 1e-14)
		}
	})
}

func TestRandCategorical(t *testing.T) {
	defer SetRandSource(nil)

	oneHot := NewFrom([]float64{0, 0, 5, 0})
	for i := 0; i < 100; i++ {
		require.Equal(t, 2, oneHot.RandCategorical())
	}

	SetRandSource(&fixedSource{values: []float64{0, 0.25, 0.55, 0.999999}})
	v := NewFrom([]float64{1, 1, 2})
	require.Equal(t, 0, v.RandCategorical())
	require.Equal(t, 1, v.RandCategorical())
	require.Equal(t, 2, v.RandCategorical())
	require.Equal(t, 2, v.RandCategorical())

	// a uniform draw of exactly 1 falls on the last index
	SetRandSource(&fixedSource{values: []float64{1}})
	require.Equal(t, 2, v.RandCategorical())

	panicsWith(t, ErrPrecondition, func() { NewFrom([]float64{1, -1, 3}).RandCategorical() })
	panicsWith(t, ErrPrecondition, func() { NewFrom([]float64{0, 0}).RandCategorical() })
}

func TestIsZeroApproxEqual(t *testing.T) {
	v := NewFrom([]float64{1e-6, -1e-6})
	require.True(t, v.IsZero(1e-5))
	require.False(t, v.IsZero(1e-7))
	require.True(t, (&View[float64]{stride: 1}).IsZero(0))

	a := NewFrom([]float64{1, 2, 3})
	b := NewFrom([]float64{1, 2, 3.0001})
	require.False(t, a.ApproxEqual(b, 0))
	require.True(t, a.ApproxEqual(b, 1e-4))
	require.False(t, a.ApproxEqual(b, 1e-6))

	panicsWith(t, ErrShape, func() { a.ApproxEqual(NewFrom([]float64{1}), 0) })
}

func TestVecVec(t *testing.T) {
	eachBackend(t, func(t *testing.T) {
		a := NewFrom([]float64{1, 2, 3})
		buf := []float64{4, 0, 5, 0, 6}
		require.Equal(t, 32.0, VecVec[float64](a, NewView(buf, 3, 2)))
		require.Equal(t, 0.0, VecVec[float64](&View[float64]{stride: 1}, &View[float64]{stride: 1}))
	})
}

func BenchmarkSum1024(b *testing.B) {
	v := randVector(rand.New(rand.NewSource(1)), 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Sum()
	}
}

func BenchmarkLogSumExp1024(b *testing.B) {
	v := randVector(rand.New(rand.NewSource(1)), 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.LogSumExp(0)
	}
}
