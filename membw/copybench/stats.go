package copybench

import "golang.org/x/sys/cpu"

// WorkerStats is what one worker did during a run.
type WorkerStats struct {
	Index      int   // 0-based chunk index
	Elements   int   // chunk length
	Iterations int   // copies completed
	Bytes      int64 // bytes written to the destination chunk
}

// slot is written only by its own worker and read after the join. The padding
// keeps neighbouring workers' counters off the same cache line.
type slot struct {
	_          cpu.CacheLinePad
	iterations int
	bytes      int64
	_          cpu.CacheLinePad
}

type stats struct {
	slots []slot
	lens  []int
}

func newStats(lens []int) *stats {
	return &stats{slots: make([]slot, len(lens)), lens: lens}
}

func (s *stats) snapshot() []WorkerStats {
	out := make([]WorkerStats, len(s.slots))
	for i := range s.slots {
		out[i] = WorkerStats{
			Index:      i,
			Elements:   s.lens[i],
			Iterations: s.slots[i].iterations,
			Bytes:      s.slots[i].bytes,
		}
	}
	return out
}
