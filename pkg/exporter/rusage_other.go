//go:build !unix

package exporter

// Without rusage the CPU sample degrades to zero rather than failing
// the whole collection.
func (hostRuntime) ProcessTimes() (ProcessTimes, error) {
	return ProcessTimes{}, nil
}
