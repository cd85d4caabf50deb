package copybench

import (
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/TheusHen/membw/membw/buffer"
	"github.com/TheusHen/membw/membw/partition"
	"github.com/TheusHen/membw/membw/verify"
)

// Result holds the measurements and verdict of one run.
type Result struct {
	ArrayBytes int64         // size of one buffer
	TotalBytes int64         // ArrayBytes * Iterations
	TotalMiB   float64       // TotalBytes in MiB
	Elapsed    time.Duration // wall clock across the fork/join region
	Bandwidth  float64       // MiB/sec
	ChunkLens  []int         // elements per worker, in launch order
	Workers    []WorkerStats
	Match      bool  // destination equals source
	Mismatched []int // chunk indexes that differ; only set when Match is false
}

// Driver runs the benchmark described by a Config and writes its report.
type Driver struct {
	cfg    Config
	stdout io.Writer
	stderr io.Writer

	// afterCopy runs between the join and verification. Tests use it to
	// inspect or corrupt the destination; it is nil otherwise.
	afterCopy func(src, dst [][]uint64)
}

// NewDriver validates cfg and returns a driver that reports to stdout, with the
// failure verdict going to stderr. A nil writer discards its output.
func NewDriver(cfg Config, stdout, stderr io.Writer) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}
	return &Driver{cfg: cfg, stdout: stdout, stderr: stderr}, nil
}

// Config returns the driver's configuration.
func (d *Driver) Config() Config { return d.cfg }

// Run executes one benchmark. Errors are limited to allocation failures; a
// destination that does not match the source is reported in Result.Match.
func (d *Driver) Run() (*Result, error) {
	src, err := buffer.New(d.cfg.Alloc, d.cfg.Elements)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	src.FillSequence()

	dst, err := buffer.New(d.cfg.Alloc, d.cfg.Elements)
	if err != nil {
		return nil, err
	}
	defer dst.Close()
	dst.Zero()

	res := &Result{ArrayBytes: src.Bytes()}
	res.TotalBytes = res.ArrayBytes * int64(d.cfg.Iterations)
	printHeader(d.stdout, res.ArrayBytes, d.cfg.Iterations)

	// Config.Validate guarantees 1 <= Threads <= Elements.
	srcChunks := partition.MustSplit(src.Data(), d.cfg.Threads)
	dstChunks := partition.MustSplit(dst.Data(), d.cfg.Threads)
	res.ChunkLens = partition.Lens(srcChunks)
	st := newStats(res.ChunkLens)

	start := time.Now()
	var g errgroup.Group
	for i := 0; i < d.cfg.Threads; i++ {
		s, t := srcChunks[i], dstChunks[i]
		printThread(d.stdout, i, len(s))

		w := &st.slots[i]
		g.Go(func() error {
			copyChunk(t, s, d.cfg.Iterations, w)
			return nil
		})
	}
	io.WriteString(d.stdout, "\n")
	if err := g.Wait(); err != nil {
		return nil, err
	}
	res.Elapsed = time.Since(start)

	res.TotalMiB, res.Bandwidth = Bandwidth(res.ArrayBytes, d.cfg.Iterations, res.Elapsed)
	res.Workers = st.snapshot()
	printSummary(d.stdout, res)

	if d.afterCopy != nil {
		d.afterCopy(srcChunks, dstChunks)
	}

	res.Match = verify.Equal(src.Data(), dst.Data())
	if !res.Match {
		// Chunk counts are equal by construction.
		res.Mismatched, _ = verify.Diff(srcChunks, dstChunks)
	}
	printVerdict(d.stdout, d.stderr, res.Match)

	return res, nil
}

// copyChunk overwrites dst with src iterations times.
func copyChunk(dst, src []uint64, iterations int, w *slot) {
	n := int64(len(src)) * int64(buffer.ElemSize)
	for i := 0; i < iterations; i++ {
		copy(dst, src)
		w.iterations++
		w.bytes += n
	}
}
