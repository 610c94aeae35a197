package vector

import (
	"github.com/evilsocket/vek/backend"
	"github.com/evilsocket/vek/matrix"
)

func checkRow[T Float](op string, m *matrix.General[T], row int) {
	if row < 0 || row >= m.Rows {
		fail(op, ErrIndexOutOfRange, "row %d of a %dx%d matrix", row, m.Rows, m.Cols)
	}
}

func checkCol[T Float](op string, m *matrix.General[T], col int) {
	if col < 0 || col >= m.Cols {
		fail(op, ErrIndexOutOfRange, "column %d of a %dx%d matrix", col, m.Rows, m.Cols)
	}
}

// CopyRowsFromMat concatenates the rows of M into v.
func (v *View[T]) CopyRowsFromMat(m *matrix.General[T]) {
	checkDim("CopyRowsFromMat", m.Rows*m.Cols, v.dim)
	if v.dim == 0 {
		return
	}
	impl := backend.For[T]()
	if m.Stride == m.Cols {
		impl.Copy(v.dim, m.Data, 1, v.data, v.stride)
		return
	}
	for r := 0; r < m.Rows; r++ {
		impl.Copy(m.Cols, m.RowData(r), 1, v.data[r*m.Cols*v.stride:], v.stride)
	}
}

// CopyColsFromMat concatenates the columns of M into v.
func (v *View[T]) CopyColsFromMat(m *matrix.General[T]) {
	checkDim("CopyColsFromMat", m.Rows*m.Cols, v.dim)
	if v.dim == 0 {
		return
	}
	impl := backend.For[T]()
	for c := 0; c < m.Cols; c++ {
		impl.Copy(m.Rows, m.Data[c:], m.Stride, v.data[c*m.Rows*v.stride:], v.stride)
	}
}

// CopyRowFromMat copies row of M into v.
func (v *View[T]) CopyRowFromMat(m *matrix.General[T], row int) {
	checkDim("CopyRowFromMat", m.Cols, v.dim)
	checkRow("CopyRowFromMat", m, row)
	if v.dim == 0 {
		return
	}
	backend.For[T]().Copy(v.dim, m.RowData(row), 1, v.data, v.stride)
}

// CopyColFromMat copies column col of M into v.
func (v *View[T]) CopyColFromMat(m *matrix.General[T], col int) {
	checkDim("CopyColFromMat", m.Rows, v.dim)
	checkCol("CopyColFromMat", m, col)
	if v.dim == 0 {
		return
	}
	backend.For[T]().Copy(v.dim, m.Data[col:], m.Stride, v.data, v.stride)
}

// CopyDiagFromMat copies the main diagonal of M into v.
func (v *View[T]) CopyDiagFromMat(m *matrix.General[T]) {
	checkDim("CopyDiagFromMat", min(m.Rows, m.Cols), v.dim)
	if v.dim == 0 {
		return
	}
	backend.For[T]().Copy(v.dim, m.Data, m.Stride+1, v.data, v.stride)
}

// CopyDiagFromPacked copies the diagonal of a packed matrix into v.
func (v *View[T]) CopyDiagFromPacked(m matrix.PackedMatrix[T]) {
	p := m.Raw()
	checkDim("CopyDiagFromPacked", p.N, v.dim)
	for i := 0; i < v.dim; i++ {
		v.data[i*v.stride] = p.Data[p.Index(i, i)]
	}
}

// CopyFromPacked copies the whole packed triangle, row by row, into v.
func (v *View[T]) CopyFromPacked(m matrix.PackedMatrix[T]) {
	p := m.Raw()
	checkDim("CopyFromPacked", matrix.PackedSize(p.N), v.dim)
	if v.dim == 0 {
		return
	}
	backend.For[T]().Copy(v.dim, p.Data, 1, v.data, v.stride)
}

// CopyRowFromSp copies row of the symmetric matrix S into v.
func (v *View[T]) CopyRowFromSp(s *matrix.Sp[T], row int) {
	checkDim("CopyRowFromSp", s.N, v.dim)
	if row < 0 || row >= s.N {
		fail("CopyRowFromSp", ErrIndexOutOfRange, "row %d of a %dx%d matrix", row, s.N, s.N)
	}
	// up to the diagonal the row is stored contiguously, past it the elements come
	// from the following rows of the lower triangle
	packed := s.Data[s.Index(row, 0):]
	i := 0
	for ; i <= row; i++ {
		v.data[i*v.stride] = packed[i]
	}
	for ; i < s.N; i++ {
		v.data[i*v.stride] = s.Data[s.Index(i, row)]
	}
}
