package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/UnknownOlympus/hestia/internal/config"
	"github.com/UnknownOlympus/hestia/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/UnknownOlympus/hestia/internal/repository"
	"github.com/UnknownOlympus/hestia/internal/server"
	"github.com/UnknownOlympus/hestia/internal/services/employees"
	"github.com/UnknownOlympus/hestia/internal/transport/http/handlers"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application.
func main() {
	var wgr sync.WaitGroup
	delta := 2

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()

	logger := setupLogger(cfg.Env)

	// Create a separate registry for metrics with exemplar
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	dtb, err := repository.NewDatabase(ctx, cfg.Postgres)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer dtb.Close()

	employeeRepo := repository.NewEmployeeRepository(dtb, appMetrics)
	service := employees.NewService(logger, employeeRepo, appMetrics)
	handler := handlers.NewHandler(logger, service)
	app := handlers.NewApp(logger, appMetrics, handler, cfg.HTTP)

	wgr.Add(delta)

	go func() {
		defer wgr.Done()
		server.StartMonitoringServer(ctx, logger, reg, dtb, cfg.Monitoring.Port)
	}()

	go func() {
		defer wgr.Done()
		logger.InfoContext(ctx, "Starting HTTP API", "addr", cfg.HTTP.Addr())
		if listenErr := app.Listen(cfg.HTTP.Addr()); listenErr != nil {
			logger.ErrorContext(ctx, "HTTP API failed", sl.Err(listenErr))
			stop()
		}
		logger.InfoContext(ctx, "HTTP API stopped.")
	}()

	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.")

	<-ctx.Done()

	if err = app.ShutdownWithTimeout(cfg.HTTP.ShutdownTimeout); err != nil {
		logger.ErrorContext(ctx, "HTTP API shutdown failed", sl.Err(err))
	}

	wgr.Wait()

	logger.InfoContext(ctx, "Application stopped gracefully...")
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					return a
				},
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelInfo,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					return a
				},
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelWarn,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{Key: "", Value: slog.Value{}}
					}
					return a
				},
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelError,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{Key: "", Value: slog.Value{}}
					}
					return a
				},
			}),
		)

		log.Error(
			"The env parameter was not specified, or was invalid. Logging will be minimal, by default." +
				" Please specify the value of `env`: local, development, production")
	}

	return log
}
