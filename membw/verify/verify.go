// Package verify checks that a copy produced an identical destination buffer.
//
// Equal is the full element-by-element check. Diff and Tree hash each chunk with
// BLAKE2b-256 so a failed check can name the chunks (and therefore workers) whose
// data differs.
package verify

import (
	"encoding/binary"
	"errors"
	"fmt"
	"slices"

	"golang.org/x/crypto/blake2b"
)

var ErrChunkCountMismatch = errors.New("verify: chunk counts differ")

// Equal reports whether a and b have the same length and elements.
func Equal(a, b []uint64) bool {
	return slices.Equal(a, b)
}

// digestBlock is the number of elements encoded per hasher write.
const digestBlock = 512

// Digest returns the BLAKE2b-256 hash of chunk's little-endian encoding.
func Digest(chunk []uint64) []byte {
	h, _ := blake2b.New256(nil) // only fails for keys longer than 64 bytes
	var scratch [digestBlock * 8]byte
	for len(chunk) > 0 {
		n := min(len(chunk), digestBlock)
		buf := scratch[:0]
		for _, v := range chunk[:n] {
			buf = binary.LittleEndian.AppendUint64(buf, v)
		}
		h.Write(buf)
		chunk = chunk[n:]
	}
	return h.Sum(nil)
}

// Digests hashes every chunk in order.
func Digests(chunks [][]uint64) [][]byte {
	out := make([][]byte, len(chunks))
	for i, c := range chunks {
		out[i] = Digest(c)
	}
	return out
}

// Diff returns the indexes of chunks whose contents differ between src and dst.
// Chunks are paired by index.
func Diff(src, dst [][]uint64) ([]int, error) {
	if len(src) != len(dst) {
		return nil, fmt.Errorf("%w: %d source, %d destination", ErrChunkCountMismatch, len(src), len(dst))
	}

	if len(src) == 0 {
		return nil, nil
	}

	srcDigests, dstDigests := Digests(src), Digests(dst)
	srcTree, err := BuildTree(srcDigests)
	if err != nil {
		return nil, err
	}
	dstTree, err := BuildTree(dstDigests)
	if err != nil {
		return nil, err
	}
	if string(srcTree.Root()) == string(dstTree.Root()) {
		return nil, nil
	}

	var bad []int
	for i := range src {
		if len(src[i]) != len(dst[i]) || string(srcDigests[i]) != string(dstDigests[i]) {
			bad = append(bad, i)
		}
	}
	return bad, nil
}
