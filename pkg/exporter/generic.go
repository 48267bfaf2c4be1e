package exporter

// GCStats holds garbage-collector counters supplied by the execution
// runtime. All values are bytes.
type GCStats struct {
	HeapSizeBytes float64
	FreeBytes     float64
	TotalBytes    float64
	UnmappedBytes float64
	BytesSinceGC  float64
}

// ProcessTimes holds the CPU time the process has consumed so far.
type ProcessTimes struct {
	UserSeconds   float64
	SystemSeconds float64
}

// RuntimeStats supplies garbage-collector counters and process CPU
// time from the execution runtime.
type RuntimeStats interface {
	GCStats() (GCStats, error)
	ProcessTimes() (ProcessTimes, error)
}

// genericSource emits the six runtime-level samples. It is a pure
// function of the RuntimeStats snapshot: no caching, no filesystem
// I/O.
type genericSource struct {
	rt RuntimeStats
}

func newGenericSource(rt RuntimeStats) *genericSource {
	if rt == nil {
		rt = hostRuntime{}
	}
	return &genericSource{rt: rt}
}

func (s *genericSource) Collect(yield func(Sample)) error {
	// A runtime that cannot report its own counters is not a condition
	// this layer can degrade around: propagate unwrapped.
	gc, err := s.rt.GCStats()
	if err != nil {
		return err
	}
	tm, err := s.rt.ProcessTimes()
	if err != nil {
		return err
	}
	yield(Sample{Suffix: "gc_heap_bytes", Value: gc.HeapSizeBytes})
	yield(Sample{Suffix: "gc_free_bytes", Value: gc.FreeBytes})
	yield(Sample{Suffix: "gc_total_bytes", Value: gc.TotalBytes})
	yield(Sample{Suffix: "gc_unmapped_bytes", Value: gc.UnmappedBytes})
	yield(Sample{Suffix: "bytes_since_gc", Value: gc.BytesSinceGC})
	yield(Sample{Suffix: "cpu_seconds_total", Value: tm.UserSeconds + tm.SystemSeconds})
	return nil
}
