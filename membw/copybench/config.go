package copybench

import (
	"errors"
	"fmt"

	"github.com/TheusHen/membw/membw/buffer"
)

var (
	ErrInvalidElements   = errors.New("copybench: element count must be at least 1")
	ErrInvalidIterations = errors.New("copybench: iteration count must be at least 1")
	ErrInvalidThreads    = errors.New("copybench: thread count must be at least 1")
	ErrTooManyThreads    = errors.New("copybench: thread count exceeds element count")
)

const (
	// DefaultElements is the number of uint64 elements in each buffer (800 MB).
	DefaultElements = 100_000_000

	// DefaultIterations is how many times each worker repeats its copy.
	DefaultIterations = 200

	// DefaultThreads is the number of copy workers and chunks per buffer.
	DefaultThreads = 4
)

// Config configures one benchmark run.
type Config struct {
	Elements   int         // elements per buffer (L)
	Iterations int         // full-buffer copies per run
	Threads    int         // workers and chunks per buffer (N)
	Alloc      buffer.Kind // where both buffers are allocated
}

// DefaultConfig returns the stock benchmark parameters.
func DefaultConfig() Config {
	return Config{
		Elements:   DefaultElements,
		Iterations: DefaultIterations,
		Threads:    DefaultThreads,
		Alloc:      buffer.Heap,
	}
}

// Validate checks that the configuration describes a runnable benchmark.
func (c Config) Validate() error {
	if c.Elements < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidElements, c.Elements)
	}
	if c.Iterations < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidIterations, c.Iterations)
	}
	if c.Threads < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidThreads, c.Threads)
	}
	if c.Threads > c.Elements {
		return fmt.Errorf("%w: threads (%d), elements (%d)", ErrTooManyThreads, c.Threads, c.Elements)
	}
	return nil
}

// ArrayBytes returns the size in bytes of one buffer.
func (c Config) ArrayBytes() int64 {
	return int64(c.Elements) * int64(buffer.ElemSize)
}
