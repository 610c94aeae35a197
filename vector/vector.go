package vector

import (
	"github.com/evilsocket/vek/backend"
)

// ResizePolicy tells Resize what to do with the content of the vector.
type ResizePolicy int

const (
	// SetZero zero-fills the vector, even when its dimension does not change.
	SetZero ResizePolicy = iota
	// Undefined leaves the content unspecified.
	Undefined
	// CopyData keeps the overlapping prefix and zero-fills any growth.
	CopyData
)

func (p ResizePolicy) String() string {
	switch p {
	case SetZero:
		return "zero"
	case Undefined:
		return "undefined"
	case CopyData:
		return "copy"
	}
	return "unknown"
}

// Vector is a View owning its contiguous buffer.
type Vector[T Float] struct {
	View[T]
}

// New allocates a vector of dim elements.
func New[T Float](dim int, policy ResizePolicy) (*Vector[T], error) {
	v := &Vector[T]{View: View[T]{stride: 1}}
	if err := v.Resize(dim, policy); err != nil {
		return nil, err
	}
	return v, nil
}

// NewFrom allocates a vector holding a copy of data.
func NewFrom[T Float](data []T) *Vector[T] {
	v := mustNew[T](len(data), Undefined)
	copy(v.data, data)
	return v
}

// mustNew is used for temporaries, an allocation failure becomes a panic.
func mustNew[T Float](dim int, policy ResizePolicy) *Vector[T] {
	v, err := New[T](dim, policy)
	if err != nil {
		panic(&Error{Op: "New", Err: err})
	}
	return v
}

// Clone returns an owning contiguous copy of a view.
func Clone[T Float](src Viewer[T]) *Vector[T] {
	o := src.AsView()
	v := mustNew[T](o.dim, Undefined)
	v.CopyFromVec(o)
	return v
}

// Clone returns a copy of the vector.
func (v *Vector[T]) Clone() *Vector[T] {
	return Clone[T](v)
}

func (v *Vector[T]) init(dim int) error {
	v.stride = 1
	if dim == 0 {
		v.data, v.dim = nil, 0
		return nil
	}
	data, err := backend.Alloc[T](dim)
	if err != nil {
		return &Error{Op: "Resize", Err: err}
	}
	v.data, v.dim = data, dim
	return nil
}

// Release drops the buffer, leaving an empty vector. Every view obtained from v
// becomes invalid.
func (v *Vector[T]) Release() {
	v.data, v.dim, v.stride = nil, 0, 1
}

// Resize changes the dimension of the vector. Apart from CopyData with an unchanged
// dimension, the buffer is reallocated and every view obtained from v becomes invalid.
func (v *Vector[T]) Resize(dim int, policy ResizePolicy) error {
	if dim < 0 {
		fail("Resize", ErrPrecondition, "negative dimension %d", dim)
	} else if policy < SetZero || policy > CopyData {
		fail("Resize", ErrPrecondition, "invalid policy %d", policy)
	}

	if policy == CopyData {
		if v.data == nil || dim == 0 {
			policy = SetZero
		} else if v.dim == dim {
			return nil
		} else {
			tmp, err := New[T](dim, Undefined)
			if err != nil {
				return err
			}
			n := copy(tmp.data, v.data[:v.dim])
			clear(tmp.data[n:])
			// the old buffer goes away with tmp
			tmp.Swap(v)
			return nil
		}
	}

	if v.data != nil {
		if v.dim == dim {
			if policy == SetZero {
				v.SetZero()
			}
			return nil
		}
		v.Release()
	}
	if err := v.init(dim); err != nil {
		return err
	}
	if policy == SetZero {
		v.SetZero()
	}
	return nil
}

// RemoveElement removes element i shifting the following ones left, the buffer is
// not reallocated.
func (v *Vector[T]) RemoveElement(i int) {
	v.checkIndex("RemoveElement", i)
	copy(v.data[i:], v.data[i+1:v.dim])
	v.dim--
	if v.dim == 0 {
		v.data = nil
	} else {
		v.data = v.data[:v.dim]
	}
}

// Swap exchanges buffers and dimensions with other in constant time.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.View, other.View = other.View, v.View
}
