package vector

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/evilsocket/vek/backend"

	"github.com/stretchr/testify/require"
)

// eachBackend runs f once per strategy.
func eachBackend(t *testing.T, f func(t *testing.T)) {
	t.Helper()
	defer backend.Select("blas")
	for _, name := range []string{"naive", "blas"} {
		require.NoError(t, backend.Select(name))
		t.Run(name, f)
	}
}

// panicsWith checks that f panics with an error wrapping sentinel.
func panicsWith(t *testing.T, sentinel error, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, errors.Is(err, sentinel), "%v does not wrap %v", err, sentinel)
		var verr *Error
		require.True(t, errors.As(err, &verr))
	}()
	f()
}

func randVector(r *rand.Rand, n int) *Vector[float64] {
	v := mustNew[float64](n, Undefined)
	for i := 0; i < n; i++ {
		v.SetAt(i, r.Float64()*2-1)
	}
	return v
}

func TestNewPolicies(t *testing.T) {
	v, err := New[float64](5, SetZero)
	require.NoError(t, err)
	require.Equal(t, 5, v.Dim())
	require.Equal(t, 1, v.Stride())
	require.Equal(t, []float64{0, 0, 0, 0, 0}, v.ToSlice())

	e, err := New[float32](0, SetZero)
	require.NoError(t, err)
	require.Equal(t, 0, e.Dim())
	require.Nil(t, e.Data())

	panicsWith(t, ErrPrecondition, func() { New[float64](-1, SetZero) })
	panicsWith(t, ErrPrecondition, func() { New[float64](1, ResizePolicy(42)) })
}

func TestNewFromAndClone(t *testing.T) {
	src := []float64{1, 2, 3}
	v := NewFrom(src)
	src[0] = 100
	require.Equal(t, []float64{1, 2, 3}, v.ToSlice())

	c := v.Clone()
	c.SetAt(0, -1)
	require.Equal(t, 1.0, v.At(0))
	require.Equal(t, -1.0, c.At(0))
}

func TestResizeCopyData(t *testing.T) {
	v := NewFrom([]float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, v.Resize(8, CopyData))
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6, 0, 0}, v.ToSlice())

	require.NoError(t, v.Resize(3, CopyData))
	require.Equal(t, []float64{1, 2, 3}, v.ToSlice())

	before := &v.Data()[0]
	require.NoError(t, v.Resize(3, CopyData))
	require.True(t, before == &v.Data()[0], "same dimension must not reallocate")

	require.NoError(t, v.Resize(0, CopyData))
	require.Equal(t, 0, v.Dim())
	require.Nil(t, v.Data())
}

func TestResizeSetZeroSameDim(t *testing.T) {
	v := NewFrom([]float32{1, 2, 3})
	require.NoError(t, v.Resize(3, SetZero))
	require.Equal(t, []float32{0, 0, 0}, v.ToSlice())

	require.NoError(t, v.Resize(4, Undefined))
	require.Equal(t, 4, v.Dim())
}

func TestResizeOutOfMemory(t *testing.T) {
	if backend.Space() == 0 {
		t.Skip("total memory unknown on this platform")
	}
	v := NewFrom([]float64{1})
	err := v.Resize(int(backend.Space()), Undefined)
	require.ErrorIs(t, err, backend.ErrOutOfMemory)
	require.Equal(t, 0, v.Dim())
}

func TestRemoveElement(t *testing.T) {
	v := NewFrom([]float64{1, 2, 3, 4})
	data := &v.Data()[0]
	v.RemoveElement(1)
	require.Equal(t, []float64{1, 3, 4}, v.ToSlice())
	require.True(t, data == &v.Data()[0])
	v.RemoveElement(2)
	require.Equal(t, []float64{1, 3}, v.ToSlice())
	v.RemoveElement(0)
	v.RemoveElement(0)
	require.Equal(t, 0, v.Dim())
	require.Nil(t, v.Data())

	panicsWith(t, ErrIndexOutOfRange, func() { v.RemoveElement(0) })
}

func TestSwap(t *testing.T) {
	a := NewFrom([]float64{1, 2})
	b := NewFrom([]float64{3, 4, 5})
	a.Swap(b)
	require.Equal(t, []float64{3, 4, 5}, a.ToSlice())
	require.Equal(t, []float64{1, 2}, b.ToSlice())
}

func TestViews(t *testing.T) {
	buf := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8}
	v := NewView(buf, 3, 3)
	require.Equal(t, []float64{0, 3, 6}, v.ToSlice())
	v.SetAt(1, -3)
	require.Equal(t, -3.0, buf[3])

	r := FromSlice(buf).Range(2, 4)
	require.Equal(t, []float64{2, -3, 4, 5}, r.ToSlice())
	require.Equal(t, 0, FromSlice(buf).Range(9, 0).Dim())

	panicsWith(t, ErrIndexOutOfRange, func() { v.At(3) })
	panicsWith(t, ErrIndexOutOfRange, func() { NewView(buf, 4, 3) })
	panicsWith(t, ErrPrecondition, func() { NewView(buf, 2, 0) })
	panicsWith(t, ErrIndexOutOfRange, func() { FromSlice(buf).Range(8, 2) })
}

func TestCopyFromVecThenApproxEqual(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	eachBackend(t, func(t *testing.T) {
		for _, n := range []int{0, 1, 7, 130} {
			src := randVector(r, n)
			dst := mustNew[float64](n, SetZero)
			dst.CopyFromVec(src)
			require.True(t, dst.ApproxEqual(src, 0))
		}

		buf := make([]float64, 10)
		strided := NewView(buf, 5, 2)
		strided.CopyFromVec(FromSlice([]float64{1, 2, 3, 4, 5}))
		require.Equal(t, []float64{1, 0, 2, 0, 3, 0, 4, 0, 5, 0}, buf)

		panicsWith(t, ErrShape, func() { strided.CopyFromVec(NewFrom([]float64{1})) })
	})
}

func TestSetAndString(t *testing.T) {
	v := mustNew[float32](3, Undefined)
	v.Set(1.5)
	require.Equal(t, "[ 1.5 1.5 1.5 ]", v.String())
	v.SetZero()
	require.Equal(t, "[ 0 0 0 ]", v.String())
	require.Equal(t, "[ ]", (&View[float64]{stride: 1}).String())
}

func BenchmarkResizeCopyData(b *testing.B) {
	v := mustNew[float64](1024, SetZero)
	for i := 0; i < b.N; i++ {
		if err := v.Resize(1024+i%2, CopyData); err != nil {
			b.Fatal(err)
		}
	}
}
