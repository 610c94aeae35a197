// Package matrix holds the dense and packed matrix layouts the vector package reads
// rows, columns and diagonals from. The types only describe memory, all the algebra
// lives in the vector package.
package matrix

import (
	"fmt"

	"github.com/evilsocket/vek/backend"
)

// Float is the set of supported element types.
type Float = backend.Float

// General is a dense row-major matrix. Element (i, j) is Data[i*Stride+j].
type General[T Float] struct {
	Rows   int
	Cols   int
	Stride int
	Data   []T
}

// NewGeneral creates a rows×cols matrix over data, allocating it when data is nil.
func NewGeneral[T Float](rows, cols int, data []T) *General[T] {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("matrix: invalid shape %dx%d", rows, cols))
	}
	if data == nil {
		data = make([]T, rows*cols)
	} else if len(data) != rows*cols {
		panic(fmt.Sprintf("matrix: %d elements for a %dx%d matrix", len(data), rows, cols))
	}
	stride := cols
	if stride < 1 {
		stride = 1
	}
	return &General[T]{Rows: rows, Cols: cols, Stride: stride, Data: data}
}

// NumRows returns the number of rows.
func (m *General[T]) NumRows() int {
	return m.Rows
}

// NumCols returns the number of columns.
func (m *General[T]) NumCols() int {
	return m.Cols
}

// RowData returns the Cols elements of row i.
func (m *General[T]) RowData(i int) []T {
	off := i * m.Stride
	return m.Data[off : off+m.Cols]
}

// At returns element (i, j).
func (m *General[T]) At(i, j int) T {
	return m.Data[i*m.Stride+j]
}

// Set sets element (i, j).
func (m *General[T]) Set(i, j int, v T) {
	m.Data[i*m.Stride+j] = v
}

// Packed stores the lower triangle of an N×N matrix row by row: element (i, j) with
// j <= i is Data[i*(i+1)/2+j].
type Packed[T Float] struct {
	N    int
	Data []T
}

// PackedSize returns the number of elements needed to pack an n×n triangle.
func PackedSize(n int) int {
	return n * (n + 1) / 2
}

func newPacked[T Float](n int, data []T) Packed[T] {
	if n < 0 {
		panic(fmt.Sprintf("matrix: invalid packed size %d", n))
	}
	if data == nil {
		data = make([]T, PackedSize(n))
	} else if len(data) != PackedSize(n) {
		panic(fmt.Sprintf("matrix: %d elements for a packed %dx%d matrix", len(data), n, n))
	}
	return Packed[T]{N: n, Data: data}
}

// PackedMatrix is implemented by *Sp and *Tp, both exposing their packed triangle.
type PackedMatrix[T Float] interface {
	Raw() *Packed[T]
}

// Raw returns the packed storage itself.
func (p *Packed[T]) Raw() *Packed[T] {
	return p
}

// NumRows returns the number of rows.
func (p *Packed[T]) NumRows() int {
	return p.N
}

// NumCols returns the number of columns.
func (p *Packed[T]) NumCols() int {
	return p.N
}

// Index returns the offset in Data of element (i, j), j <= i.
func (p *Packed[T]) Index(i, j int) int {
	return i*(i+1)/2 + j
}

// Sp is a packed symmetric matrix.
type Sp[T Float] struct {
	Packed[T]
}

// NewSp creates an n×n symmetric matrix over the packed lower triangle data,
// allocating it when data is nil.
func NewSp[T Float](n int, data []T) *Sp[T] {
	return &Sp[T]{Packed: newPacked(n, data)}
}

// At returns element (i, j).
func (s *Sp[T]) At(i, j int) T {
	if j > i {
		i, j = j, i
	}
	return s.Data[s.Index(i, j)]
}

// Set sets elements (i, j) and (j, i).
func (s *Sp[T]) Set(i, j int, v T) {
	if j > i {
		i, j = j, i
	}
	s.Data[s.Index(i, j)] = v
}

// Tp is a packed lower triangular matrix.
type Tp[T Float] struct {
	Packed[T]
}

// NewTp creates an n×n lower triangular matrix over the packed data, allocating it
// when data is nil.
func NewTp[T Float](n int, data []T) *Tp[T] {
	return &Tp[T]{Packed: newPacked(n, data)}
}

// At returns element (i, j), zero above the diagonal.
func (t *Tp[T]) At(i, j int) T {
	if j > i {
		return 0
	}
	return t.Data[t.Index(i, j)]
}

// Set sets element (i, j) which must not be above the diagonal.
func (t *Tp[T]) Set(i, j int, v T) {
	if j > i {
		panic(fmt.Sprintf("matrix: element (%d, %d) is above the diagonal", i, j))
	}
	t.Data[t.Index(i, j)] = v
}
