package exporter

import "runtime"

// hostRuntime is the default RuntimeStats: it reads the Go runtime's
// own memory accounting and the OS rusage counters for the current
// process. MemStats maps onto the runtime-agnostic GCStats shape as
// heap size from HeapSys, free from HeapIdle, total from Sys, unmapped
// from HeapReleased, and bytes since GC from the live heap (HeapAlloc).
type hostRuntime struct{}

func (hostRuntime) GCStats() (GCStats, error) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return GCStats{
		HeapSizeBytes: float64(ms.HeapSys),
		FreeBytes:     float64(ms.HeapIdle),
		TotalBytes:    float64(ms.Sys),
		UnmappedBytes: float64(ms.HeapReleased),
		BytesSinceGC:  float64(ms.HeapAlloc),
	}, nil
}
