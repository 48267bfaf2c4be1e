package exporter

import (
	"github.com/prometheus/client_golang/prometheus"
)

type metricDef struct {
	suffix string
	help   string
	typ    prometheus.ValueType
}

// Emission order matters: procfs sources yield the generic set first,
// then the procfs set.
var genericDefs = []metricDef{
	{"gc_heap_bytes", "Heap size of the runtime garbage collector in bytes.", prometheus.GaugeValue},
	{"gc_free_bytes", "Free bytes tracked by the runtime garbage collector.", prometheus.GaugeValue},
	{"gc_total_bytes", "Total bytes owned by the runtime garbage collector.", prometheus.GaugeValue},
	{"gc_unmapped_bytes", "Unmapped bytes tracked by the runtime garbage collector.", prometheus.GaugeValue},
	{"bytes_since_gc", "Bytes allocated since the last garbage collection.", prometheus.GaugeValue},
	{"cpu_seconds_total", "Total user and system CPU time spent in seconds.", prometheus.CounterValue},
}

var procDefs = []metricDef{
	{"open_fds", "Number of open file descriptors.", prometheus.GaugeValue},
	{"max_fds", "Maximum number of open file descriptors.", prometheus.GaugeValue},
	{"virtual_memory_bytes", "Virtual memory size in bytes.", prometheus.GaugeValue},
	{"resident_memory_bytes", "Resident memory size in bytes.", prometheus.GaugeValue},
	{"start_time_seconds", "Start time of the process since unix epoch in seconds.", prometheus.GaugeValue},
}

// Collector adapts a Source to a prometheus registry. The source
// variant is probed once at construction and fixed for the collector's
// lifetime.
type Collector struct {
	src          Source
	mode         Mode
	reportErrors bool

	descs   map[string]*prometheus.Desc
	types   map[string]prometheus.ValueType
	errDesc *prometheus.Desc
}

// New probes the process named in o, builds the matching sample source
// and wraps it as a prometheus collector. When o.Registry is set the
// collector is registered before returning.
func New(o Opts) (*Collector, error) {
	o.setDefaults()
	mode := Detect(o.ProcRoot, o.PID)

	defs := genericDefs
	if mode == ModeProcFS {
		defs = append(append([]metricDef{}, genericDefs...), procDefs...)
	}

	c := &Collector{
		src:          NewSource(mode, o),
		mode:         mode,
		reportErrors: o.ReportErrors,
		descs:        make(map[string]*prometheus.Desc, len(defs)),
		types:        make(map[string]prometheus.ValueType, len(defs)),
	}
	for _, d := range defs {
		c.descs[d.suffix] = prometheus.NewDesc(
			prometheus.BuildFQName(o.Namespace, "process", d.suffix),
			d.help, nil, nil,
		)
		c.types[d.suffix] = d.typ
	}
	c.errDesc = prometheus.NewDesc(
		prometheus.BuildFQName(o.Namespace, "process", "collect_errors"),
		"A failed process metrics collection.", nil, nil,
	)

	if o.Registry != nil {
		if err := o.Registry.Register(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Mode reports which variant the construction-time probe selected.
func (c *Collector) Mode() Mode { return c.mode }

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, d := range c.descs {
		ch <- d
	}
	ch <- c.errDesc
}

// Collect implements prometheus.Collector. The source is all-or-none,
// so a failed collection contributes no samples to the scrape; with
// ReportErrors set, the failure surfaces as an invalid metric instead
// of disappearing.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	err := c.src.Collect(func(s Sample) {
		d, ok := c.descs[s.Suffix]
		if !ok {
			return
		}
		ch <- prometheus.MustNewConstMetric(d, c.types[s.Suffix], s.Value)
	})
	if err != nil && c.reportErrors {
		ch <- prometheus.NewInvalidMetric(c.errDesc, err)
	}
}
