//go:build unix

package exporter

import "golang.org/x/sys/unix"

func (hostRuntime) ProcessTimes() (ProcessTimes, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return ProcessTimes{}, err
	}
	return ProcessTimes{
		UserSeconds:   timevalSeconds(ru.Utime),
		SystemSeconds: timevalSeconds(ru.Stime),
	}, nil
}

func timevalSeconds(tv unix.Timeval) float64 {
	return float64(tv.Sec) + float64(tv.Usec)/1e6
}
