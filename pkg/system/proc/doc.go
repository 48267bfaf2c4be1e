// Package proc reads and parses the handful of procfs files that
// process-resource exporters need: the per-process fd directory, limits
// and stat files, and the system-wide stat file.
//
// The package is split into two layers:
//
//   - Pure parsers (MaxOpenFiles, StatFields, BootTime) that take raw
//     file text and fail explicitly on malformed input. procfs files
//     are loosely structured — limits is column-aligned prose, the
//     stat comm field may contain spaces and parentheses — so the
//     parsers never guess: a missing row or a short field list is an
//     error, not a zero value.
//
//   - File-backed readers (CountOpenFDs, ReadMaxOpenFiles, ReadStat,
//     ReadBootTime) that take the procfs root and a PID explicitly.
//     Production callers pass Root ("/proc"); tests pass a synthetic
//     directory tree. Every failure is wrapped in *Error, which names
//     the offending path and preserves the underlying cause for
//     errors.Is/errors.As.
//
// ClockTicks and PageSize answer the two system constants needed to
// convert stat fields (jiffies to seconds, pages to bytes). Both honor
// an env override (CLK_TCK, PAGE_SIZE) to ease testing.
package proc
