package exporter

import (
	"fmt"
	"sync"

	"github.com/ja7ad/procmetrics/pkg/system/proc"
)

// pageSizeBytes is resolved once per process and shared by every
// procfs source; the page size cannot change while the process runs.
// A failed or zero query falls back to 4096.
var pageSizeBytes = sync.OnceValue(func() float64 {
	if ps := proc.PageSize(); ps > 0 {
		return float64(ps)
	}
	return 4096
})

// procSource extends a generic source with facts read from procfs: the
// open and maximum file descriptor counts, virtual and resident memory
// sizes, and the process start time.
type procSource struct {
	generic *genericSource
	root    string
	pid     int

	pageSize float64

	// The process start time is constant, so the first successful
	// computation is cached for the life of the source. Guarded for
	// exactly-once computation under concurrent scrapes.
	mu          sync.Mutex
	startTime   float64
	startTimeOK bool
}

func newProcSource(g *genericSource, root string, pid int) *procSource {
	return &procSource{
		generic:  g,
		root:     root,
		pid:      pid,
		pageSize: pageSizeBytes(),
	}
}

// facts are derived fresh on every collection.
type facts struct {
	openFDs   int
	maxFDs    float64
	vsize     float64
	rss       float64
	startTime float64
}

func (s *procSource) Collect(yield func(Sample)) error {
	// All procfs facts are read before the first sample is yielded, so
	// a parse or read failure produces no partial sequence.
	f, err := s.facts()
	if err != nil {
		return fmt.Errorf("collect procfs samples for pid %d: %w", s.pid, err)
	}
	if err := s.generic.Collect(yield); err != nil {
		return err
	}
	yield(Sample{Suffix: "open_fds", Value: float64(f.openFDs)})
	yield(Sample{Suffix: "max_fds", Value: f.maxFDs})
	yield(Sample{Suffix: "virtual_memory_bytes", Value: f.vsize})
	yield(Sample{Suffix: "resident_memory_bytes", Value: f.rss})
	yield(Sample{Suffix: "start_time_seconds", Value: f.startTime})
	return nil
}

func (s *procSource) facts() (facts, error) {
	nfds, err := proc.CountOpenFDs(s.root, s.pid)
	if err != nil {
		return facts{}, err
	}
	maxFDs, err := proc.ReadMaxOpenFiles(s.root, s.pid)
	if err != nil {
		return facts{}, err
	}
	st, err := proc.ReadStat(s.root, s.pid)
	if err != nil {
		return facts{}, err
	}
	start, err := s.startTimeSeconds(st.StartTimeJiffies)
	if err != nil {
		return facts{}, err
	}
	return facts{
		openFDs:   nfds,
		maxFDs:    float64(maxFDs),
		vsize:     float64(st.VSizeBytes), // stat reports vsize in bytes, no scaling
		rss:       float64(st.RSSPages) * s.pageSize,
		startTime: start,
	}, nil
}

// startTimeSeconds converts the stat start-time jiffies into epoch
// seconds using the system tick rate and the machine boot time. The
// system-wide stat file is read at most once per source; errors are
// not cached, so a failed first collection retries on the next one.
func (s *procSource) startTimeSeconds(jiffies uint64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.startTimeOK {
		return s.startTime, nil
	}
	boot, err := proc.ReadBootTime(s.root)
	if err != nil {
		return 0, err
	}
	s.startTime = float64(jiffies)/float64(proc.ClockTicks()) + float64(boot)
	s.startTimeOK = true
	return s.startTime, nil
}
