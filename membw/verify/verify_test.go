package verify

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func seq(n int) []uint64 {
	s := make([]uint64, n)
	for i := range s {
		s[i] = uint64(i)
	}
	return s
}

func TestEqual(t *testing.T) {
	a, b := seq(8), seq(8)
	if !Equal(a, b) {
		t.Fatalf("identical slices reported unequal")
	}
	b[3] = 0
	if Equal(a, b) {
		t.Fatalf("differing slices reported equal")
	}
	if Equal(a, a[:7]) {
		t.Fatalf("slices of different length reported equal")
	}
}

func TestDigestSpansBlocks(t *testing.T) {
	a := seq(3*digestBlock + 17)
	b := seq(3*digestBlock + 17)
	if !bytes.Equal(Digest(a), Digest(b)) {
		t.Fatalf("equal chunks hashed differently")
	}
	if len(Digest(a)) != 32 {
		t.Fatalf("unexpected digest length %d", len(Digest(a)))
	}

	b[2*digestBlock+5]++
	if bytes.Equal(Digest(a), Digest(b)) {
		t.Fatalf("change in a later block not reflected in digest")
	}
}

func TestDiff(t *testing.T) {
	src := [][]uint64{seq(4), seq(4), seq(6)}
	dst := [][]uint64{seq(4), seq(4), seq(6)}
	dst[1][0] = 9
	dst[2] = dst[2][:5]

	bad, err := Diff(src, dst)
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if diff := cmp.Diff([]int{1, 2}, bad); diff != "" {
		t.Fatalf("Diff mismatch (-want +got):\n%s", diff)
	}

	if _, err := Diff(src, dst[:2]); !errors.Is(err, ErrChunkCountMismatch) {
		t.Fatalf("expected ErrChunkCountMismatch, got %v", err)
	}
}

func TestTreeRoots(t *testing.T) {
	chunks := [][]uint64{seq(10), seq(10), seq(10)}
	tree, err := BuildTree(Digests(chunks))
	if err != nil {
		t.Fatalf("BuildTree: %v", err)
	}
	if len(tree.Root()) != 32 {
		t.Fatalf("unexpected root length %d", len(tree.Root()))
	}

	same, _ := BuildTree(Digests([][]uint64{seq(10), seq(10), seq(10)}))
	if !bytes.Equal(tree.Root(), same.Root()) {
		t.Fatalf("identical chunk sets produced different roots")
	}

	chunks[2][9] = 0
	changed, _ := BuildTree(Digests(chunks))
	if bytes.Equal(tree.Root(), changed.Root()) {
		t.Fatalf("corrupted chunk did not change the root")
	}
}

func TestTreeEmpty(t *testing.T) {
	if _, err := BuildTree(nil); !errors.Is(err, ErrTreeEmpty) {
		t.Fatalf("expected ErrTreeEmpty, got %v", err)
	}
}

func BenchmarkDigest(b *testing.B) {
	chunk := seq(1 << 20)
	b.SetBytes(int64(len(chunk) * 8))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = Digest(chunk)
	}
}

func TestDiffEqualChunks(t *testing.T) {
	bad, err := Diff([][]uint64{seq(5), seq(3)}, [][]uint64{seq(5), seq(3)})
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if bad != nil {
		t.Fatalf("expected no differing chunks, got %v", bad)
	}

	if bad, err := Diff(nil, nil); err != nil || bad != nil {
		t.Fatalf("Diff(nil, nil) = %v, %v", bad, err)
	}
}
