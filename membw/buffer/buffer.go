// Package buffer allocates the fixed-width integer buffers the copy benchmark
// works on, either from the Go heap or from an anonymous memory mapping.
package buffer

import (
	"errors"
	"fmt"
	"unsafe"
)

var (
	ErrInvalidLength   = errors.New("buffer: length must be at least 1")
	ErrUnknownKind     = errors.New("buffer: unknown allocation kind")
	ErrMmapUnsupported = errors.New("buffer: mmap allocation not supported on this platform")
)

// ElemSize is the width in bytes of one buffer element.
const ElemSize = int(unsafe.Sizeof(uint64(0)))

// Kind selects where a buffer's memory comes from.
type Kind int

const (
	Heap Kind = iota // make([]uint64, n)
	Mmap             // anonymous private mapping, pre-faulted
)

func (k Kind) String() string {
	switch k {
	case Heap:
		return "heap"
	case Mmap:
		return "mmap"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Buffer is an owned sequence of uint64 elements.
type Buffer struct {
	kind  Kind
	data  []uint64
	unmap func() error
}

// New allocates a zeroed buffer of n elements.
func New(kind Kind, n int) (*Buffer, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLength, n)
	}

	switch kind {
	case Heap:
		return &Buffer{kind: kind, data: make([]uint64, n)}, nil
	case Mmap:
		data, unmap, err := mapAnon(n)
		if err != nil {
			return nil, err
		}
		return &Buffer{kind: kind, data: data, unmap: unmap}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
}

// Kind returns where the buffer was allocated.
func (b *Buffer) Kind() Kind { return b.kind }

// Data returns the backing slice. It is nil after Close.
func (b *Buffer) Data() []uint64 { return b.data }

// Len returns the number of elements.
func (b *Buffer) Len() int { return len(b.data) }

// Bytes returns the buffer size in bytes.
func (b *Buffer) Bytes() int64 { return int64(len(b.data)) * int64(ElemSize) }

// FillSequence sets element i to i.
func (b *Buffer) FillSequence() {
	for i := range b.data {
		b.data[i] = uint64(i)
	}
}

// Zero sets every element to 0.
func (b *Buffer) Zero() {
	clear(b.data)
}

// Close releases mapped memory. Heap buffers are left to the GC.
// Calling Close more than once is a no-op.
func (b *Buffer) Close() error {
	b.data = nil
	if b.unmap == nil {
		return nil
	}
	unmap := b.unmap
	b.unmap = nil
	return unmap()
}
