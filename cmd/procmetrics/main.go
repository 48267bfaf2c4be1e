package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ja7ad/procmetrics/pkg/exporter"
)

type opts struct {
	listen    string
	endpoint  string
	pid       int
	procRoot  string
	namespace string
}

func main() {
	var o opts

	root := &cobra.Command{
		Use:   "procmetrics",
		Short: "Process resource metrics exporter",
		Long: `procmetrics exposes memory, CPU, garbage-collector, open-file and
process-age measurements for one process on a prometheus /metrics
endpoint. The target procfs is probed once at startup; on hosts
without a usable procfs the exporter degrades to the runtime-only
sample set.

Examples:
  procmetrics
  procmetrics --pid $(pidof myservice) --listen :9256
  procmetrics --namespace myapp --endpoint /internal/metrics`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), o)
		},
		SilenceUsage: true,
	}

	root.Flags().StringVarP(&o.listen, "listen", "l", ":9256", "address to expose metrics on")
	root.Flags().StringVar(&o.endpoint, "endpoint", "/metrics", "path under which to expose metrics")
	root.Flags().IntVarP(&o.pid, "pid", "p", 0, "process to instrument (0 = this exporter itself)")
	root.Flags().StringVar(&o.procRoot, "procfs-root", "/proc", "procfs mount point")
	root.Flags().StringVar(&o.namespace, "namespace", "", "prefix for every exported metric name")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, o opts) error {
	log, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	pid := o.pid
	if pid == 0 {
		pid = os.Getpid()
	}

	reg := prometheus.NewRegistry()
	col, err := exporter.New(exporter.Opts{
		Namespace:    o.namespace,
		PID:          pid,
		ProcRoot:     o.procRoot,
		Registry:     reg,
		ReportErrors: true,
	})
	if err != nil {
		return fmt.Errorf("register process collector: %w", err)
	}
	log.Info("process collector ready",
		zap.Stringer("mode", col.Mode()),
		zap.Int("pid", pid),
		zap.String("procfs_root", o.procRoot),
	)

	mux := http.NewServeMux()
	mux.Handle(o.endpoint, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	srv := &http.Server{Addr: o.listen, Handler: mux}
	errCh := make(chan error, 1)
	go func() {
		log.Info("serving metrics",
			zap.String("listen", o.listen),
			zap.String("endpoint", o.endpoint),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
