// Package exporter produces process-resource samples (memory, CPU,
// garbage-collector counters, and — where procfs is available — open
// file descriptors, memory sizes, and process start time) and adapts
// them to a prometheus registry.
//
// # Sources
//
//   - Source interface:
//     Collect(yield func(Sample)) error
//
//     Collect yields a fixed, finite sample sequence to the supplied
//     func, once per scrape. Collection is all-or-none: on error no
//     sample has been yielded, and the caller decides whether to abort
//     the scrape or report the failure.
//
//   - Generic source: six samples derived from a RuntimeStats reader
//     (gc_heap_bytes, gc_free_bytes, gc_total_bytes, gc_unmapped_bytes,
//     bytes_since_gc, cpu_seconds_total). Works on any platform; the
//     default reader uses runtime.MemStats and rusage.
//
//   - Procfs source: the generic six plus open_fds, max_fds,
//     virtual_memory_bytes, resident_memory_bytes and
//     start_time_seconds, parsed from <root>/<pid>/{fd,limits,stat}
//     and <root>/stat (eleven samples total).
//
// # Variant selection
//
// Detect probes the four procfs paths once, at construction time, and
// returns a Mode; NewSource consumes the Mode and builds the matching
// source. Detect never fails — a missing or unreadable path degrades
// to ModeGeneric.
//
// # Caches
//
// Two invariant values are computed lazily and never invalidated: the
// page size (process-wide, shared by every procfs source) and the
// process start time (per source, read from the system-wide stat file
// at most once).
//
// # Registry integration
//
// Collector implements prometheus.Collector on top of a Source,
// mapping sample suffixes to <namespace>_process_<suffix> metric
// names. New runs the probe, builds the source and optionally
// registers the collector in one step.
package exporter
