package buffer

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// mapAnon maps n zeroed elements of anonymous memory, faulting every page in up
// front so the first timed copy does not pay for page faults.
func mapAnon(n int) ([]uint64, func() error, error) {
	size := n * ElemSize
	b, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON|unix.MAP_POPULATE)
	if err != nil {
		return nil, nil, fmt.Errorf("buffer: mmap %d bytes: %w", size, err)
	}

	// Transparent huge pages may be disabled; the hint is best effort.
	_ = unix.Madvise(b, unix.MADV_HUGEPAGE)

	data := unsafe.Slice((*uint64)(unsafe.Pointer(&b[0])), n)
	return data, func() error { return unix.Munmap(b) }, nil
}
