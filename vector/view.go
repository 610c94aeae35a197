package vector

import (
	"strconv"
	"strings"

	"github.com/evilsocket/vek/backend"
)

// Float is the set of supported element types.
type Float = backend.Float

// Viewer is implemented by anything exposing a strided view, both *View and
// *Vector do.
type Viewer[T Float] interface {
	AsView() *View[T]
}

// View is a non-owning, stride-aware window over a buffer. Element i lives at
// Data()[i*Stride()]. A view must not be used after the buffer it points into has
// been released or reallocated, for instance by a Resize of its source vector.
type View[T Float] struct {
	data   []T
	dim    int
	stride int
}

// NewView creates a view of dim elements spaced by stride over data.
func NewView[T Float](data []T, dim, stride int) *View[T] {
	if dim < 0 {
		fail("NewView", ErrPrecondition, "negative dimension %d", dim)
	} else if stride < 1 {
		fail("NewView", ErrPrecondition, "invalid stride %d", stride)
	}
	if dim == 0 {
		return &View[T]{stride: stride}
	}
	need := (dim-1)*stride + 1
	if len(data) < need {
		fail("NewView", ErrIndexOutOfRange, "%d elements with stride %d need %d, buffer has %d", dim, stride, need, len(data))
	}
	return &View[T]{data: data[:need:need], dim: dim, stride: stride}
}

// FromSlice creates a contiguous view over data.
func FromSlice[T Float](data []T) *View[T] {
	return NewView(data, len(data), 1)
}

// AsView implements Viewer.
func (v *View[T]) AsView() *View[T] {
	return v
}

// Dim returns the number of elements.
func (v *View[T]) Dim() int {
	return v.dim
}

// Stride returns the distance in elements between two consecutive positions.
func (v *View[T]) Stride() int {
	return v.stride
}

// Data returns the backing buffer starting at element 0, nil for an empty view.
func (v *View[T]) Data() []T {
	return v.data
}

func (v *View[T]) checkIndex(op string, i int) {
	if i < 0 || i >= v.dim {
		fail(op, ErrIndexOutOfRange, "index %d, dimension %d", i, v.dim)
	}
}

// At returns element i.
func (v *View[T]) At(i int) T {
	v.checkIndex("At", i)
	return v.data[i*v.stride]
}

// SetAt sets element i.
func (v *View[T]) SetAt(i int, x T) {
	v.checkIndex("SetAt", i)
	v.data[i*v.stride] = x
}

// Range returns a view over n elements starting at offset.
func (v *View[T]) Range(offset, n int) *View[T] {
	if offset < 0 || n < 0 || offset+n > v.dim {
		fail("Range", ErrIndexOutOfRange, "range [%d, %d) of a %d elements vector", offset, offset+n, v.dim)
	}
	if n == 0 {
		return &View[T]{stride: v.stride}
	}
	return NewView(v.data[offset*v.stride:], n, v.stride)
}

// ToSlice returns a contiguous copy of the elements.
func (v *View[T]) ToSlice() []T {
	out := make([]T, v.dim)
	for i := range out {
		out[i] = v.data[i*v.stride]
	}
	return out
}

// sameData reports whether two views start at the same element.
func sameData[T Float](a, b *View[T]) bool {
	return a.dim > 0 && b.dim > 0 && &a.data[0] == &b.data[0]
}

// CopyFromVec copies the elements of src into v.
func (v *View[T]) CopyFromVec(src Viewer[T]) {
	o := src.AsView()
	checkDim("CopyFromVec", v.dim, o.dim)
	if sameData(v, o) && v.stride == o.stride {
		return
	}
	backend.For[T]().Copy(v.dim, o.data, o.stride, v.data, v.stride)
}

// Set sets every element to f.
func (v *View[T]) Set(f T) {
	for i := 0; i < v.dim; i++ {
		v.data[i*v.stride] = f
	}
}

// SetZero sets every element to zero.
func (v *View[T]) SetZero() {
	if v.stride == 1 {
		clear(v.data)
		return
	}
	v.Set(0)
}

// String returns the text serialization of the vector without the trailing newline.
func (v *View[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[ ")
	for i := 0; i < v.dim; i++ {
		sb.WriteString(formatElement(v.data[i*v.stride]))
		sb.WriteByte(' ')
	}
	sb.WriteString("]")
	return sb.String()
}

func formatElement[T Float](x T) string {
	return strconv.FormatFloat(float64(x), 'g', -1, bitSize[T]())
}
