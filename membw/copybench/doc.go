// Package copybench drives the parallel memory-copy benchmark.
//
// A run allocates a source buffer filled with 0, 1, 2, ... and a zeroed
// destination buffer of the same length, splits both into Threads chunks, and
// starts one goroutine per chunk pair. Each goroutine copies its source chunk
// into its destination chunk Iterations times. The driver times the whole
// fork/join region, reports throughput, and finally checks that the destination
// equals the source.
//
// # Bandwidth
//
// Total bytes moved is the size of one buffer times Iterations. It is not
// multiplied by Threads: the chunks partition the same buffer, so every
// iteration moves exactly one buffer's worth of data regardless of how many
// workers share it.
//
// # Concurrency
//
// Chunks are disjoint, so workers never synchronise with each other. The source
// is only read. The driver blocks until every worker has finished all of its
// iterations before it stops the clock or verifies anything.
package copybench
