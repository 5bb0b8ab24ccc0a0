// Package server runs the side listener that exposes metrics and readiness.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/UnknownOlympus/hestia/internal/lib/logger/sl"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// NewMonitoringHandler serves /metrics from reg and /healthz from the database pinger.
func NewMonitoringHandler(log *slog.Logger, reg *prometheus.Registry, db DBPinger) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	mux.Handle("/healthz", NewHealthChecker(db, log))

	return mux
}

// StartMonitoringServer blocks until ctx is cancelled, then shuts the listener down.
func StartMonitoringServer(ctx context.Context, log *slog.Logger, reg *prometheus.Registry, db DBPinger, port int) {
	srv := &http.Server{
		Addr:              net.JoinHostPort("", strconv.Itoa(port)),
		Handler:           NewMonitoringHandler(log, reg, db),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "Starting monitoring server", "port", port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.ErrorContext(ctx, "Monitoring server failed", sl.Err(err))
		}
		return
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.ErrorContext(ctx, "Monitoring server shutdown failed", sl.Err(err))
	}
	log.InfoContext(ctx, "Monitoring server stopped")
}
