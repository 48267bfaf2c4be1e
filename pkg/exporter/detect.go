package exporter

import (
	"os"
	"path/filepath"
	"strconv"
)

// Mode selects which sample source variant a process can support.
type Mode int

const (
	ModeGeneric Mode = iota // runtime counters only
	ModeProcFS              // runtime counters plus procfs facts
)

func (m Mode) String() string {
	switch m {
	case ModeProcFS:
		return "procfs"
	default:
		return "generic"
	}
}

// Detect reports whether the procfs-backed source can serve the given
// pid under root. It requires the per-pid fd directory and limits and
// stat files, plus the system-wide stat file.
//
// Detect never fails: any stat error, including permission denied,
// counts as a failed check and degrades the result to ModeGeneric. The
// probe runs once at construction time; its result fixes the variant
// for the collector's lifetime.
func Detect(root string, pid int) Mode {
	p := strconv.Itoa(pid)
	if !isDir(filepath.Join(root, p, "fd")) {
		return ModeGeneric
	}
	for _, f := range []string{
		filepath.Join(root, p, "limits"),
		filepath.Join(root, p, "stat"),
		filepath.Join(root, "stat"),
	} {
		if !isRegular(f) {
			return ModeGeneric
		}
	}
	return ModeProcFS
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

func isRegular(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
