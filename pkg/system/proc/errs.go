package proc

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedStat indicates that a per-process stat line was empty
	// or had no comm delimiter.
	ErrMalformedStat = errors.New("proc: malformed or empty stat")

	// ErrShortStat indicates that a per-process stat line had fewer
	// fields than expected after the comm delimiter.
	ErrShortStat = errors.New("proc: short stat")

	// ErrNoMaxOpenFiles indicates that the limits file had no
	// "Max open files" row.
	ErrNoMaxOpenFiles = errors.New("proc: no max open files limit")

	// ErrNoBootTime indicates that the system-wide stat file had no
	// btime row.
	ErrNoBootTime = errors.New("proc: no btime")
)

// Error reports that required data could not be extracted from a procfs
// file. Path names the offending file; Err preserves the root cause, so
// errors.Is still matches the sentinels above through the wrapper.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("proc: %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func pathErr(path string, err error) error {
	return &Error{Path: path, Err: err}
}
