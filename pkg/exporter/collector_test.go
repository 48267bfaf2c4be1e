package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorProcFSMode(t *testing.T) {
	root := fakeProcFS(t, 1234)
	t.Setenv("CLK_TCK", "100")

	c, err := New(Opts{PID: 1234, ProcRoot: root, Runtime: testRuntime()})
	require.NoError(t, err)
	require.Equal(t, ModeProcFS, c.Mode())

	// The resident-memory value depends on the host page size, which
	// is resolved once per process and shared by every source.
	expected := fmt.Sprintf(`
# HELP process_bytes_since_gc Bytes allocated since the last garbage collection.
# TYPE process_bytes_since_gc gauge
process_bytes_since_gc 128
# HELP process_cpu_seconds_total Total user and system CPU time spent in seconds.
# TYPE process_cpu_seconds_total counter
process_cpu_seconds_total 2
# HELP process_gc_free_bytes Free bytes tracked by the runtime garbage collector.
# TYPE process_gc_free_bytes gauge
process_gc_free_bytes 200
# HELP process_gc_heap_bytes Heap size of the runtime garbage collector in bytes.
# TYPE process_gc_heap_bytes gauge
process_gc_heap_bytes 1000
# HELP process_gc_total_bytes Total bytes owned by the runtime garbage collector.
# TYPE process_gc_total_bytes gauge
process_gc_total_bytes 3000
# HELP process_gc_unmapped_bytes Unmapped bytes tracked by the runtime garbage collector.
# TYPE process_gc_unmapped_bytes gauge
process_gc_unmapped_bytes 50
# HELP process_max_fds Maximum number of open file descriptors.
# TYPE process_max_fds gauge
process_max_fds 1024
# HELP process_open_fds Number of open file descriptors.
# TYPE process_open_fds gauge
process_open_fds 4
# HELP process_resident_memory_bytes Resident memory size in bytes.
# TYPE process_resident_memory_bytes gauge
process_resident_memory_bytes %v
# HELP process_start_time_seconds Start time of the process since unix epoch in seconds.
# TYPE process_start_time_seconds gauge
process_start_time_seconds 1700000024
# HELP process_virtual_memory_bytes Virtual memory size in bytes.
# TYPE process_virtual_memory_bytes gauge
process_virtual_memory_bytes 2097152
`, 100*pageSizeBytes())

	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected)))
}

func TestCollectorGenericMode(t *testing.T) {
	c, err := New(Opts{PID: 1234, ProcRoot: t.TempDir(), Runtime: testRuntime()})
	require.NoError(t, err)
	require.Equal(t, ModeGeneric, c.Mode())
	assert.Equal(t, 6, testutil.CollectAndCount(c))
}

func TestCollectorNamespace(t *testing.T) {
	root := fakeProcFS(t, 1234)
	t.Setenv("CLK_TCK", "100")

	c, err := New(Opts{Namespace: "myapp", PID: 1234, ProcRoot: root, Runtime: testRuntime()})
	require.NoError(t, err)
	assert.Equal(t, 1, testutil.CollectAndCount(c, "myapp_process_open_fds"))
	assert.Equal(t, 11, testutil.CollectAndCount(c))
}

func TestCollectorRegistryOption(t *testing.T) {
	root := fakeProcFS(t, 1234)
	t.Setenv("CLK_TCK", "100")
	reg := prometheus.NewPedanticRegistry()

	_, err := New(Opts{PID: 1234, ProcRoot: root, Runtime: testRuntime(), Registry: reg})
	require.NoError(t, err)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, mfs, 11)

	// Registering a second collector with the same names must fail.
	_, err = New(Opts{PID: 1234, ProcRoot: root, Runtime: testRuntime(), Registry: reg})
	require.Error(t, err)
}

func TestCollectorReportErrors(t *testing.T) {
	// The probe result is fixed at construction time, so a procfs file
	// vanishing afterwards turns into a per-scrape collection failure.
	t.Setenv("CLK_TCK", "100")

	t.Run("reported", func(t *testing.T) {
		root := fakeProcFS(t, 1234)
		limits := filepath.Join(root, "1234", "limits")
		reg := prometheus.NewPedanticRegistry()
		_, err := New(Opts{PID: 1234, ProcRoot: root, Runtime: testRuntime(), Registry: reg, ReportErrors: true})
		require.NoError(t, err)

		require.NoError(t, os.Remove(limits))
		_, err = reg.Gather()
		require.Error(t, err)
		assert.ErrorContains(t, err, limits)
	})

	t.Run("silent", func(t *testing.T) {
		// Without ReportErrors the scrape simply carries no process
		// samples.
		root := fakeProcFS(t, 1234)
		reg := prometheus.NewPedanticRegistry()
		_, err := New(Opts{PID: 1234, ProcRoot: root, Runtime: testRuntime(), Registry: reg})
		require.NoError(t, err)

		require.NoError(t, os.Remove(filepath.Join(root, "1234", "limits")))
		mfs, err := reg.Gather()
		require.NoError(t, err)
		assert.Empty(t, mfs)
	})
}
