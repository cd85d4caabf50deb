package copybench

import (
	"fmt"
	"runtime"

	"github.com/klauspost/cpuid/v2"
)

// HostInfo describes the CPU the benchmark runs on. Cache sizes are in bytes
// and are -1 when the CPU does not report them.
type HostInfo struct {
	Brand         string
	PhysicalCores int
	LogicalCores  int
	CacheLine     int
	L1D           int
	L2            int
	L3            int
	GOMAXPROCS    int
}

// Host detects the current machine.
func Host() HostInfo {
	return HostInfo{
		Brand:         cpuid.CPU.BrandName,
		PhysicalCores: cpuid.CPU.PhysicalCores,
		LogicalCores:  cpuid.CPU.LogicalCores,
		CacheLine:     cpuid.CPU.CacheLine,
		L1D:           cpuid.CPU.Cache.L1D,
		L2:            cpuid.CPU.Cache.L2,
		L3:            cpuid.CPU.Cache.L3,
		GOMAXPROCS:    runtime.GOMAXPROCS(0),
	}
}

func (h HostInfo) String() string {
	brand := h.Brand
	if brand == "" {
		brand = runtime.GOARCH
	}
	return fmt.Sprintf("%s: %d cores / %d threads, L1d %s, L2 %s, L3 %s, line %dB, GOMAXPROCS=%d",
		brand, h.PhysicalCores, h.LogicalCores, kib(h.L1D), kib(h.L2), kib(h.L3), h.CacheLine, h.GOMAXPROCS)
}

func kib(n int) string {
	if n <= 0 {
		return "?"
	}
	return fmt.Sprintf("%d KiB", n/1024)
}
