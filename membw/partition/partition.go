// Package partition splits a buffer into disjoint, contiguous chunk views.
//
// For a buffer of length L split into N chunks, the first N-1 chunks have length
// L/N and the last chunk absorbs the remainder, so it is never shorter than the
// others.
package partition

import (
	"errors"
	"fmt"
)

var (
	ErrZeroChunks    = errors.New("partition: chunk count must be at least 1")
	ErrTooManyChunks = errors.New("partition: chunk count exceeds buffer length")
)

// Range is an index-range handle into a buffer.
type Range struct {
	Index  int
	Offset int
	Len    int
}

// End returns the exclusive end offset of the range.
func (r Range) End() int { return r.Offset + r.Len }

func check(length, n int) error {
	if n < 1 {
		return fmt.Errorf("%w: got %d", ErrZeroChunks, n)
	}
	if n > length {
		return fmt.Errorf("%w: %d chunks, length %d", ErrTooManyChunks, n, length)
	}
	return nil
}

// Ranges partitions [0, length) into n ranges ordered by offset.
func Ranges(length, n int) ([]Range, error) {
	if err := check(length, n); err != nil {
		return nil, err
	}

	base := length / n
	ranges := make([]Range, 0, n)
	off := 0
	for i := 0; i < n-1; i++ {
		ranges = append(ranges, Range{Index: i, Offset: off, Len: base})
		off += base
	}
	// Last chunk takes whatever is left: base + length%n.
	ranges = append(ranges, Range{Index: n - 1, Offset: off, Len: length - off})
	return ranges, nil
}

// Split returns n disjoint mutable views into buf. Each view has its capacity
// clipped to its length so an append cannot spill into the next view.
func Split[T any](buf []T, n int) ([][]T, error) {
	ranges, err := Ranges(len(buf), n)
	if err != nil {
		return nil, err
	}

	views := make([][]T, len(ranges))
	for _, r := range ranges {
		views[r.Index] = buf[r.Offset:r.End():r.End()]
	}
	return views, nil
}

// MustSplit is like Split but panics if n is out of range.
func MustSplit[T any](buf []T, n int) [][]T {
	views, err := Split(buf, n)
	if err != nil {
		panic(err)
	}
	return views
}

// Lens returns the length of every view.
func Lens[T any](views [][]T) []int {
	lens := make([]int, len(views))
	for i, v := range views {
		lens[i] = len(v)
	}
	return lens
}
