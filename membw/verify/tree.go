package verify

import (
	"errors"

	"golang.org/x/crypto/blake2b"
)

var ErrTreeEmpty = errors.New("verify: no chunk digests provided")

// Tree is a binary hash tree over per-chunk digests. Two buffers partitioned the
// same way are equal chunk-for-chunk exactly when their roots match.
type Tree struct {
	nodes [][]byte // complete binary tree stored as array, root at 0
}

// BuildTree constructs a tree from chunk digests, padding the leaf level to a
// power of two with the digest of an empty chunk.
func BuildTree(digests [][]byte) (*Tree, error) {
	if len(digests) == 0 {
		return nil, ErrTreeEmpty
	}

	n := 1
	for n < len(digests) {
		n *= 2
	}
	empty := blake2b.Sum256(nil)
	leaves := make([][]byte, n)
	for i := range leaves {
		if i < len(digests) {
			leaves[i] = digests[i]
		} else {
			leaves[i] = empty[:]
		}
	}

	// Leaves sit at [n-1, 2n-2].
	nodes := make([][]byte, 2*n-1)
	copy(nodes[n-1:], leaves)
	for i := n - 2; i >= 0; i-- {
		combined := make([]byte, 0, len(nodes[2*i+1])+len(nodes[2*i+2]))
		combined = append(combined, nodes[2*i+1]...)
		combined = append(combined, nodes[2*i+2]...)
		h := blake2b.Sum256(combined)
		nodes[i] = h[:]
	}

	return &Tree{nodes: nodes}, nil
}

// Root returns the root hash.
func (t *Tree) Root() []byte { return t.nodes[0] }
