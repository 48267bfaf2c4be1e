package proc

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"
)

// statMinFields is the number of whitespace-separated fields required
// after the comm delimiter in /proc/<pid>/stat.
const statMinFields = 22

// Field indexes into the post-comm remainder of a stat line, where
// index 0 is the process state.
const (
	statStartTime = 19 // start time in jiffies since boot
	statVSize     = 20 // virtual memory size in bytes
	statRSS       = 21 // resident set size in pages
)

// MaxOpenFiles scans the raw text of /proc/<pid>/limits for the
// "Max open files" row and returns its soft limit.
//
// The limits file is column-aligned with free-form whitespace, so the
// value is simply the first integer after the row label. Returns
// ErrNoMaxOpenFiles when no row matches.
func MaxOpenFiles(limits []byte) (uint64, error) {
	sc := bufio.NewScanner(bytes.NewReader(limits))
	for sc.Scan() {
		rest, ok := strings.CutPrefix(sc.Text(), "Max open files")
		if !ok {
			continue
		}
		fs := strings.Fields(rest)
		if len(fs) == 0 {
			continue
		}
		return strconv.ParseUint(fs[0], 10, 64)
	}
	if err := sc.Err(); err != nil {
		return 0, err
	}
	return 0, ErrNoMaxOpenFiles
}

// StatFields splits a /proc/<pid>/stat line into the fields after the
// comm column.
//
// comm (the 2nd field) is parenthesized and may itself contain spaces
// and parentheses, so the only safe split point is the last ')' of the
// whole line; everything after it is whitespace-separated numeric
// fields starting with the process state.
func StatFields(line string) ([]string, error) {
	i := strings.LastIndexByte(line, ')')
	if i < 0 {
		return nil, ErrMalformedStat
	}
	fields := strings.Fields(line[i+1:])
	if len(fields) < statMinFields {
		return nil, ErrShortStat
	}
	return fields, nil
}

// BootTime scans the raw text of the system-wide /proc/stat for the
// btime row: the boot time of the machine in epoch seconds.
func BootTime(stat []byte) (int64, error) {
	sc := bufio.NewScanner(bytes.NewReader(stat))
	for sc.Scan() {
		fs := strings.Fields(sc.Text())
		if len(fs) >= 2 && fs[0] == "btime" {
			return strconv.ParseInt(fs[1], 10, 64)
		}
	}
	if err := sc.Err(); err != nil {
		return 0, err
	}
	return 0, ErrNoBootTime
}
