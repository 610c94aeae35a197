package vector

import (
	"math"
	"math/rand"
	"testing"

	"github.com/evilsocket/vek/backend"
	"github.com/evilsocket/vek/matrix"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func randDense(r *rand.Rand, rows, cols int) *mat.Dense {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = r.Float64()*2 - 1
	}
	return mat.NewDense(rows, cols, data)
}

func denseVec(v *Vector[float64]) *mat.VecDense {
	return mat.NewVecDense(v.Dim(), v.ToSlice())
}

func TestAddVecRoundTrip(t *testing.T) {
	eachBackend(t, func(t *testing.T) {
		// small integers keep the arithmetic exact
		v := NewFrom([]float64{1, -2, 3, 40, 5})
		x := NewFrom([]float64{7, 8, -9, 10, 11})
		orig := v.ToSlice()
		v.AddVec(1, x)
		require.Equal(t, []float64{8, 6, -6, 50, 16}, v.ToSlice())
		v.AddVec(-1, x)
		require.Equal(t, orig, v.ToSlice())

		panicsWith(t, ErrAlias, func() { v.AddVec(1, v) })
		panicsWith(t, ErrShape, func() { v.AddVec(1, NewFrom([]float64{1})) })
	})
}

func TestAddVec2AndVecVec(t *testing.T) {
	eachBackend(t, func(t *testing.T) {
		v := NewFrom([]float64{1, 1, 1})
		v.AddVec2(2, NewFrom([]float64{1, 2, 3}))
		require.Equal(t, []float64{3, 9, 19}, v.ToSlice())

		v.AddVecVec(1, NewFrom([]float64{1, 2, 3}), NewFrom([]float64{4, 5, 6}), 2)
		require.Equal(t, []float64{10, 28, 56}, v.ToSlice())

		// beta = 0 drops the previous content, NaNs included
		v.Set(math.NaN())
		buf := []float64{1, 0, 2, 0, 3}
		v.AddVecVec(2, NewView(buf, 3, 2), NewFrom([]float64{1, 1, 1}), 0)
		require.Equal(t, []float64{2, 4, 6}, v.ToSlice())

		panicsWith(t, ErrAlias, func() { v.AddVecVec(1, v, NewFrom([]float64{1, 1, 1}), 1) })

		v.AddVecDivVec(3, NewFrom([]float64{2, 4, 6}), NewFrom([]float64{2, 2, 2}), 1)
		require.Equal(t, []float64{5, 10, 15}, v.ToSlice())
	})
}

func TestAddMatVec(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	eachBackend(t, func(t *testing.T) {
		d := randDense(r, 4, 3)
		m := matrix.FromDense(d)

		x := randVector(r, 3)
		y := randVector(r, 4)
		var want mat.VecDense
		want.MulVec(d, denseVec(x))
		want.ScaleVec(2, &want)
		want.AddScaledVec(&want, 0.5, denseVec(y))

		got := y.Clone()
		got.AddMatVec(2, m, backend.NoTrans, x, 0.5)
		require.InDeltaSlice(t, want.RawVector().Data, got.ToSlice(), 1e-12)

		sparse := y.Clone()
		sparse.AddMatSvec(2, m, backend.NoTrans, x, 0.5)
		require.InDeltaSlice(t, want.RawVector().Data, sparse.ToSlice(), 1e-12)

		// transposed, with a mostly zero operand
		xt := NewFrom([]float64{0, 1.5, 0, 0})
		var wantT mat.VecDense
		wantT.MulVec(d.T(), denseVec(xt))
		got = mustNew[float64](3, SetZero)
		got.AddMatVec(1, m, backend.Trans, xt, 0)
		require.InDeltaSlice(t, wantT.RawVector().Data, got.ToSlice(), 1e-12)
		got.Set(math.NaN())
		got.AddMatSvec(1, m, backend.Trans, xt, 0)
		require.InDeltaSlice(t, wantT.RawVector().Data, got.ToSlice(), 1e-12)

		panicsWith(t, ErrShape, func() { got.AddMatVec(1, m, backend.NoTrans, x, 0) })
		square := matrix.FromDense(randDense(r, 3, 3))
		panicsWith(t, ErrAlias, func() { got.AddMatVec(1, square, backend.NoTrans, got, 0) })
	})
}

func TestVecMatVec(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	d := randDense(r, 3, 5)
	a, b := randVector(r, 3), randVector(r, 5)
	require.InDelta(t, mat.Inner(denseVec(a), d, denseVec(b)), VecMatVec[float64](a, matrix.FromDense(d), b), 1e-12)
	panicsWith(t, ErrShape, func() { VecMatVec[float64](b, matrix.FromDense(d), a) })
}

func TestPackedOps(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	eachBackend(t, func(t *testing.T) {
		n := 5
		sym := mat.NewSymDense(n, nil)
		for i := 0; i < n; i++ {
			for j := 0; j <= i; j++ {
				sym.SetSym(i, j, r.Float64())
			}
		}
		sp := matrix.FromSymDense(sym)
		x := randVector(r, n)
		var want mat.VecDense
		want.MulVec(sym, denseVec(x))
		got := mustNew[float64](n, SetZero)
		got.AddSpVec(1, sp, x, 0)
		require.InDeltaSlice(t, want.RawVector().Data, got.ToSlice(), 1e-12)

		tri := mat.NewTriDense(n, mat.Lower, nil)
		for i := 0; i < n; i++ {
			for j := 0; j < i; j++ {
				tri.SetTri(i, j, r.Float64())
			}
			tri.SetTri(i, i, 2+r.Float64())
		}
		tp, err := matrix.FromTriDense(tri)
		require.NoError(t, err)

		for _, trans := range []backend.Transpose{backend.NoTrans, backend.Trans} {
			var op mat.Matrix = tri
			if trans == backend.Trans {
				op = tri.T()
			}
			var prod mat.VecDense
			prod.MulVec(op, denseVec(x))

			v := x.Clone()
			v.MulTp(tp, trans)
			require.InDeltaSlice(t, prod.RawVector().Data, v.ToSlice(), 1e-12)

			v.Solve(tp, trans)
			require.InDeltaSlice(t, x.ToSlice(), v.ToSlice(), 1e-12)

			acc := NewFrom(make([]float64, n))
			acc.Set(1)
			acc.AddTpVec(2, tp, trans, x, 3)
			for i := 0; i < n; i++ {
				require.InDelta(t, 3+2*prod.AtVec(i), acc.At(i), 1e-12)
			}
			acc.AddTpVec(2, tp, trans, x, 0)
			for i := 0; i < n; i++ {
				require.InDelta(t, 2*prod.AtVec(i), acc.At(i), 1e-12)
			}
		}

		panicsWith(t, ErrShape, func() { mustNew[float64](n+1, SetZero).MulTp(tp, backend.NoTrans) })
	})
}

func TestRowColSums(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	eachBackend(t, func(t *testing.T) {
		// more than one chunk in both directions
		d := randDense(r, 130, 70)
		m := matrix.FromDense(d)

		rowSum := mustNew[float64](70, Undefined)
		rowSum.Set(1)
		rowSum.AddRowSumMat(2, m, 3)
		for j := 0; j < 70; j++ {
			require.InDelta(t, 3+2*mat.Sum(d.ColView(j)), rowSum.At(j), 1e-10)
		}

		colSum := mustNew[float64](130, Undefined)
		colSum.Set(math.NaN())
		colSum.AddColSumMat(1, m, 0)
		for i := 0; i < 130; i++ {
			require.InDelta(t, mat.Sum(d.RowView(i)), colSum.At(i), 1e-10)
		}

		panicsWith(t, ErrShape, func() { colSum.AddRowSumMat(1, m, 1) })
	})
}

func TestAddDiag(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	eachBackend(t, func(t *testing.T) {
		md := randDense(r, 4, 6)
		nd := randDense(r, 6, 4)
		m, n := matrix.FromDense(md), matrix.FromDense(nd)

		var mmt, mtm, mn mat.Dense
		mmt.Mul(md, md.T())
		mtm.Mul(md.T(), md)
		mn.Mul(md, nd)

		v := mustNew[float64](4, Undefined)
		v.Set(1)
		v.AddDiagMat2(2, m, backend.NoTrans, 1)
		for i := 0; i < 4; i++ {
			require.InDelta(t, 1+2*mmt.At(i, i), v.At(i), 1e-12)
		}

		w := mustNew[float64](6, Undefined)
		w.Set(math.NaN())
		w.AddDiagMat2(1, m, backend.Trans, 0)
		for i := 0; i < 6; i++ {
			require.InDelta(t, mtm.At(i, i), w.At(i), 1e-12)
		}

		v.AddDiagMatMat(1, m, backend.NoTrans, n, backend.NoTrans, 0)
		for i := 0; i < 4; i++ {
			require.InDelta(t, mn.At(i, i), v.At(i), 1e-12)
		}

		// diag(Nᵗ·Mᵗ) = diag(M·N)
		v.AddDiagMatMat(1, n, backend.Trans, m, backend.Trans, 1)
		for i := 0; i < 4; i++ {
			require.InDelta(t, 2*mn.At(i, i), v.At(i), 1e-12)
		}

		panicsWith(t, ErrShape, func() { v.AddDiagMatMat(1, m, backend.NoTrans, m, backend.NoTrans, 0) })
		panicsWith(t, ErrShape, func() { w.AddDiagMat2(1, m, backend.NoTrans, 0) })
	})
}

func BenchmarkAddMatVec(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	m := matrix.FromDense(randDense(r, 256, 256))
	x, y := randVector(r, 256), randVector(r, 256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		y.AddMatVec(1, m, backend.NoTrans, x, 0)
	}
}
