// Package membw measures achievable memory-copy bandwidth on a multi-core machine.
//
// Two equally sized buffers are split into contiguous chunks, one worker per chunk
// pair copies its source chunk into its destination chunk many times, and the
// aggregate throughput is reported. The building blocks live in subpackages:
// partition (chunk views), buffer (allocation), copybench (the driver) and verify
// (post-copy equality and per-chunk digests).
package membw
