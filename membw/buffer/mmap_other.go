//go:build !linux

package buffer

func mapAnon(n int) ([]uint64, func() error, error) {
	return nil, nil, ErrMmapUnsupported
}
