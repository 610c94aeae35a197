package vector

import (
	"testing"

	"github.com/evilsocket/vek/matrix"

	"github.com/stretchr/testify/require"
)

// 3x4 matrix with a padded stride of 5, the padding holds -1
func paddedMatrix() *matrix.General[float64] {
	return &matrix.General[float64]{
		Rows:   3,
		Cols:   4,
		Stride: 5,
		Data: []float64{
			1, 2, 3, 4, -1,
			5, 6, 7, 8, -1,
			9, 10, 11, 12, -1,
		},
	}
}

func TestCopyRowsCols(t *testing.T) {
	eachBackend(t, func(t *testing.T) {
		m := paddedMatrix()
		v := mustNew[float64](12, SetZero)
		v.CopyRowsFromMat(m)
		require.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, v.ToSlice())

		v.CopyColsFromMat(m)
		require.Equal(t, []float64{1, 5, 9, 2, 6, 10, 3, 7, 11, 4, 8, 12}, v.ToSlice())

		// strided destination
		buf := make([]float64, 23)
		NewView(buf, 12, 2).CopyColsFromMat(m)
		require.Equal(t, []float64{1, 5, 9, 2, 6, 10, 3, 7, 11, 4, 8, 12}, NewView(buf, 12, 2).ToSlice())
		require.Equal(t, 0.0, buf[1])

		contiguous := matrix.NewGeneral(2, 2, []float64{1, 2, 3, 4})
		w := mustNew[float64](4, SetZero)
		w.CopyRowsFromMat(contiguous)
		require.Equal(t, []float64{1, 2, 3, 4}, w.ToSlice())

		panicsWith(t, ErrShape, func() { w.CopyRowsFromMat(m) })
	})
}

func TestCopyRowColDiag(t *testing.T) {
	eachBackend(t, func(t *testing.T) {
		m := paddedMatrix()
		row := mustNew[float64](4, SetZero)
		row.CopyRowFromMat(m, 2)
		require.Equal(t, []float64{9, 10, 11, 12}, row.ToSlice())

		col := mustNew[float64](3, SetZero)
		col.CopyColFromMat(m, 3)
		require.Equal(t, []float64{4, 8, 12}, col.ToSlice())

		diag := mustNew[float64](3, SetZero)
		diag.CopyDiagFromMat(m)
		require.Equal(t, []float64{1, 6, 11}, diag.ToSlice())

		panicsWith(t, ErrIndexOutOfRange, func() { row.CopyRowFromMat(m, 3) })
		panicsWith(t, ErrIndexOutOfRange, func() { col.CopyColFromMat(m, -1) })
		panicsWith(t, ErrShape, func() { row.CopyDiagFromMat(m) })
	})
}

func TestCopyFromPacked(t *testing.T) {
	// lower triangle of
	// 1 2 4
	// 2 3 5
	// 4 5 6
	sp := matrix.NewSp(3, []float64{1, 2, 3, 4, 5, 6})
	tp := matrix.NewTp(3, []float64{1, 2, 3, 4, 5, 6})

	diag := mustNew[float64](3, SetZero)
	diag.CopyDiagFromPacked(sp)
	require.Equal(t, []float64{1, 3, 6}, diag.ToSlice())
	diag.SetZero()
	diag.CopyDiagFromPacked(tp)
	require.Equal(t, []float64{1, 3, 6}, diag.ToSlice())

	all := mustNew[float64](6, SetZero)
	all.CopyFromPacked(tp)
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, all.ToSlice())

	row := mustNew[float64](3, SetZero)
	for i, want := range [][]float64{{1, 2, 4}, {2, 3, 5}, {4, 5, 6}} {
		row.CopyRowFromSp(sp, i)
		require.Equal(t, want, row.ToSlice())
	}

	panicsWith(t, ErrShape, func() { diag.CopyFromPacked(sp) })
	panicsWith(t, ErrIndexOutOfRange, func() { row.CopyRowFromSp(sp, 3) })
}
