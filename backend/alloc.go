package backend

import (
	"errors"
	"fmt"
	"runtime"
	"unsafe"

	"github.com/pbnjay/memory"
)

// Alignment is the byte boundary every buffer returned by Alloc starts at.
const Alignment = 16

// ErrOutOfMemory is returned when a buffer can not be allocated.
var ErrOutOfMemory = errors.New("out of memory")

// Space returns the total amount of system memory in bytes.
func Space() uint64 {
	return memory.TotalMemory()
}

// Used returns the amount of memory obtained from the OS by the process.
func Used() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Sys
}

// Alloc returns a zeroed buffer of n elements whose first element is aligned to
// Alignment bytes. A zero n yields a nil buffer.
func Alloc[T Float](n int) (buf []T, err error) {
	if n < 0 {
		return nil, fmt.Errorf("invalid buffer size %d", n)
	} else if n == 0 {
		return nil, nil
	}

	elemSize := uint64(unsafe.Sizeof(*new(T)))
	pad := Alignment/int(elemSize) - 1
	size := uint64(n+pad) * elemSize
	if total := memory.TotalMemory(); total > 0 && size > total {
		return nil, fmt.Errorf("%w: requested %d bytes, system has %d", ErrOutOfMemory, size, total)
	}

	defer func() {
		// make() panics with a runtime error when the length is out of range
		if r := recover(); r != nil {
			buf = nil
			err = fmt.Errorf("%w: %v", ErrOutOfMemory, r)
		}
	}()

	raw := make([]T, n+pad)
	offset := 0
	if mod := uintptr(unsafe.Pointer(&raw[0])) % Alignment; mod != 0 {
		offset = int((Alignment - mod) / uintptr(elemSize))
	}
	return raw[offset : offset+n : offset+n], nil
}
