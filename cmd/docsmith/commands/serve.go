package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/docsmith/internal/config"
	"git.home.luguber.info/inful/docsmith/internal/metrics"
	"git.home.luguber.info/inful/docsmith/internal/site"
)

// ServeCmd implements the 'serve' command: an initial build, a static file
// server over the output, and watch-triggered rebuilds.
type ServeCmd struct {
	Addr string `default:"localhost:8080" help:"Listen address for the docs server"`
}

func (s *ServeCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	// Serve mode rebuilds in place; cleaning on every change would defeat
	// incremental regeneration.
	cfg.Output.Clean = false

	registry := prom.NewRegistry()
	recorder := metrics.NewPrometheusRecorder(registry)
	gen := site.NewGenerator(cfg, cfg.Output.Directory).SetRecorder(recorder)

	rebuild := func() {
		report, err := gen.Build()
		if err != nil {
			slog.Error("Rebuild failed", "error", err)
			return
		}
		if report.WarningCount() > 0 {
			slog.Warn("Build produced link warnings", "count", report.WarningCount())
		}
	}
	rebuild()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	watcher, err := site.NewWatcher(cfg.Source.Directory, func() {
		slog.Info("Source changed, rebuilding")
		recorder.IncRebuilds()
		rebuild()
	})
	if err != nil {
		return err
	}
	go watcher.Run(ctx)

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(cfg.Output.Directory)))
	mux.Handle("/metrics", metrics.HTTPHandler(registry))

	server := &http.Server{Addr: s.Addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	slog.Info("Serving documentation", "addr", s.Addr, "output", cfg.Output.Directory)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("docs server: %w", err)
	}
	return nil
}
