package vector

import (
	"github.com/evilsocket/vek/backend"
	"github.com/evilsocket/vek/matrix"
)

// The functions in this file operate between two element widths. They cannot be
// methods since Go methods have no type parameters of their own, and they never
// reach the accelerated strategy.

// CopyFromVecOf copies src into dst converting every element.
func CopyFromVecOf[T, U Float](dst Viewer[T], src Viewer[U]) {
	d, s := dst.AsView(), src.AsView()
	checkDim("CopyFromVecOf", d.dim, s.dim)
	backend.CopyMixed(d.dim, s.data, s.stride, d.data, d.stride)
}

// AddVecOf computes dst += alpha*src.
func AddVecOf[T, U Float](dst Viewer[T], alpha T, src Viewer[U]) {
	d, s := dst.AsView(), src.AsView()
	checkDim("AddVecOf", d.dim, s.dim)
	backend.AxpyMixed(d.dim, alpha, s.data, s.stride, d.data, d.stride)
}

// AddVec2Of computes dst += alpha*src∘src.
func AddVec2Of[T, U Float](dst Viewer[T], alpha T, src Viewer[U]) {
	d, s := dst.AsView(), src.AsView()
	checkDim("AddVec2Of", d.dim, s.dim)
	for i := 0; i < d.dim; i++ {
		e := T(s.data[i*s.stride])
		d.data[i*d.stride] += alpha * e * e
	}
}

// MulElementsOf multiplies dst by src elementwise.
func MulElementsOf[T, U Float](dst Viewer[T], src Viewer[U]) {
	d, s := dst.AsView(), src.AsView()
	checkDim("MulElementsOf", d.dim, s.dim)
	for i := 0; i < d.dim; i++ {
		d.data[i*d.stride] *= T(s.data[i*s.stride])
	}
}

// DivElementsOf divides dst by src elementwise.
func DivElementsOf[T, U Float](dst Viewer[T], src Viewer[U]) {
	d, s := dst.AsView(), src.AsView()
	checkDim("DivElementsOf", d.dim, s.dim)
	for i := 0; i < d.dim; i++ {
		d.data[i*d.stride] /= T(s.data[i*s.stride])
	}
}

// VecVecOf returns the dot product of a and b accumulated in the width of a.
func VecVecOf[T, U Float](a Viewer[T], b Viewer[U]) T {
	x, y := a.AsView(), b.AsView()
	checkDim("VecVecOf", x.dim, y.dim)
	return backend.DotMixed(x.dim, x.data, x.stride, y.data, y.stride)
}

// CopyRowsFromMatOf concatenates the rows of M into dst.
func CopyRowsFromMatOf[T, U Float](dst Viewer[T], m *matrix.General[U]) {
	d := dst.AsView()
	checkDim("CopyRowsFromMatOf", m.Rows*m.Cols, d.dim)
	if d.dim == 0 {
		return
	}
	for r := 0; r < m.Rows; r++ {
		backend.CopyMixed(m.Cols, m.RowData(r), 1, d.data[r*m.Cols*d.stride:], d.stride)
	}
}

// CopyRowFromMatOf copies row of M into dst.
func CopyRowFromMatOf[T, U Float](dst Viewer[T], m *matrix.General[U], row int) {
	d := dst.AsView()
	checkDim("CopyRowFromMatOf", m.Cols, d.dim)
	checkRow("CopyRowFromMatOf", m, row)
	backend.CopyMixed(d.dim, m.RowData(row), 1, d.data, d.stride)
}

// CopyColFromMatOf copies column col of M into dst.
func CopyColFromMatOf[T, U Float](dst Viewer[T], m *matrix.General[U], col int) {
	d := dst.AsView()
	checkDim("CopyColFromMatOf", m.Rows, d.dim)
	checkCol("CopyColFromMatOf", m, col)
	if d.dim == 0 {
		return
	}
	backend.CopyMixed(d.dim, m.Data[col:], m.Stride, d.data, d.stride)
}

// CopyRowFromSpOf copies row of the symmetric matrix S into dst.
func CopyRowFromSpOf[T, U Float](dst Viewer[T], s *matrix.Sp[U], row int) {
	d := dst.AsView()
	checkDim("CopyRowFromSpOf", s.N, d.dim)
	if row < 0 || row >= s.N {
		fail("CopyRowFromSpOf", ErrIndexOutOfRange, "row %d of a %dx%d matrix", row, s.N, s.N)
	}
	for i := 0; i < s.N; i++ {
		d.data[i*d.stride] = T(s.At(row, i))
	}
}

// CopyFromPackedOf copies the whole packed triangle of M into dst.
func CopyFromPackedOf[T, U Float](dst Viewer[T], m matrix.PackedMatrix[U]) {
	d, p := dst.AsView(), m.Raw()
	checkDim("CopyFromPackedOf", matrix.PackedSize(p.N), d.dim)
	backend.CopyMixed(d.dim, p.Data, 1, d.data, d.stride)
}
