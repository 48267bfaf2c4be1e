package exporter

import (
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ja7ad/procmetrics/pkg/system/proc"
)

// Sample is a single measurement. Suffix is combined with a metric
// name by the owning registry; samples are created fresh per
// collection and never retained.
type Sample struct {
	Suffix string
	Value  float64
}

// Source produces the fixed sample sequence for one process.
//
// Collect yields samples one at a time, in a fixed order, to the
// caller-supplied func. Collection is all-or-none: when Collect
// returns an error, yield has not been called.
type Source interface {
	Collect(yield func(Sample)) error
}

// Opts configures construction. Zero values select the defaults: the
// current process, the /proc mount point, no namespace, and the host
// runtime reader.
type Opts struct {
	// Namespace is prefixed to every exported metric name.
	Namespace string

	// PID selects the process to instrument. Default: current process.
	PID int

	// ProcRoot is the procfs mount point. Default: /proc. Tests point
	// it at a synthetic directory tree.
	ProcRoot string

	// Runtime overrides the runtime stats reader.
	Runtime RuntimeStats

	// Registry, when set, gets the collector registered at
	// construction time.
	Registry prometheus.Registerer

	// ReportErrors surfaces failed collections as invalid metrics in
	// the scrape instead of dropping the sample set silently.
	ReportErrors bool
}

func (o *Opts) setDefaults() {
	if o.PID == 0 {
		o.PID = os.Getpid()
	}
	if o.ProcRoot == "" {
		o.ProcRoot = proc.Root
	}
}

// NewSource builds the sample source variant selected by mode,
// typically the result of Detect.
func NewSource(mode Mode, o Opts) Source {
	o.setDefaults()
	g := newGenericSource(o.Runtime)
	if mode == ModeProcFS {
		return newProcSource(g, o.ProcRoot, o.PID)
	}
	return g
}
