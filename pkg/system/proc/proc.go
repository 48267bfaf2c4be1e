package proc

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Root is the default procfs mount point. Every reader takes the root
// explicitly so tests can point it at a synthetic directory tree.
const Root = "/proc"

// ClockTicks returns the number of jiffies (clock ticks) per second.
// It first checks the env var CLK_TCK (useful for testing), otherwise
// falls back to 100 (common default).
//
// Note: On real systems, the authoritative way is `sysconf(_SC_CLK_TCK)`,
// but calling that requires cgo. For portability in a pure-Go library,
// this simplified approach is acceptable.
func ClockTicks() int {
	v, _ := strconv.Atoi(os.Getenv("CLK_TCK"))
	if v > 0 {
		return v
	}
	return 100
}

// PageSize returns the system memory page size in bytes.
// Like ClockTicks, it first checks an env override (PAGE_SIZE)
// to ease testing, then falls back to os.Getpagesize().
func PageSize() int {
	if ps := os.Getenv("PAGE_SIZE"); ps != "" {
		if v, _ := strconv.Atoi(ps); v > 0 {
			return v
		}
	}
	return os.Getpagesize()
}

// Stat holds the fields of /proc/<pid>/stat that resource exporters
// need.
type Stat struct {
	StartTimeJiffies uint64 // jiffies between boot and process start
	VSizeBytes       uint64 // virtual memory size
	RSSPages         uint64 // resident set size in pages
}

// CountOpenFDs returns the number of open file descriptors of a
// process, i.e. the number of entries under <root>/<pid>/fd not
// counting the "." and ".." pseudo-entries (os.ReadDir never reports
// them).
func CountOpenFDs(root string, pid int) (int, error) {
	dir := filepath.Join(root, strconv.Itoa(pid), "fd")
	ents, err := os.ReadDir(dir)
	if err != nil {
		return 0, pathErr(dir, err)
	}
	return len(ents), nil
}

// ReadMaxOpenFiles returns the soft "Max open files" limit from
// <root>/<pid>/limits.
func ReadMaxOpenFiles(root string, pid int) (uint64, error) {
	path := filepath.Join(root, strconv.Itoa(pid), "limits")
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, pathErr(path, err)
	}
	v, err := MaxOpenFiles(b)
	if err != nil {
		return 0, pathErr(path, err)
	}
	return v, nil
}

// ReadStat parses <root>/<pid>/stat into a Stat.
func ReadStat(root string, pid int) (Stat, error) {
	path := filepath.Join(root, strconv.Itoa(pid), "stat")
	b, err := os.ReadFile(path)
	if err != nil {
		return Stat{}, pathErr(path, err)
	}
	fields, err := StatFields(strings.TrimSpace(string(b)))
	if err != nil {
		return Stat{}, pathErr(path, err)
	}

	var st Stat
	for _, f := range []struct {
		idx int
		dst *uint64
	}{
		{statStartTime, &st.StartTimeJiffies},
		{statVSize, &st.VSizeBytes},
		{statRSS, &st.RSSPages},
	} {
		v, err := strconv.ParseUint(fields[f.idx], 10, 64)
		if err != nil {
			return Stat{}, pathErr(path, err)
		}
		*f.dst = v
	}
	return st, nil
}

// ReadBootTime returns the machine boot time in epoch seconds from the
// system-wide <root>/stat file.
func ReadBootTime(root string) (int64, error) {
	path := filepath.Join(root, "stat")
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, pathErr(path, err)
	}
	v, err := BootTime(b)
	if err != nil {
		return 0, pathErr(path, err)
	}
	return v, nil
}
