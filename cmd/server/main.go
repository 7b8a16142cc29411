// Command server runs the atomic-weight query service: it loads the isotope
// table CSV once at startup and answers lookups over HTTP until terminated.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/couchcryptid/isotope-weight-service/internal/adapter/csvtable"
	httpadapter "github.com/couchcryptid/isotope-weight-service/internal/adapter/http"
	"github.com/couchcryptid/isotope-weight-service/internal/config"
	"github.com/couchcryptid/isotope-weight-service/internal/observability"
	"github.com/couchcryptid/isotope-weight-service/internal/resolver"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	start := time.Now()
	table, err := csvtable.Load(cfg.CSVPath)
	if err != nil {
		logger.Error("failed to load isotope table", "path", cfg.CSVPath, "error", err)
		os.Exit(1)
	}
	metrics.TableLoadDuration.Observe(time.Since(start).Seconds())
	logger.Info("isotope table loaded", "path", cfg.CSVPath, "elements", len(table))

	res := resolver.New(table, logger, metrics)
	srv := httpadapter.NewServer(cfg.HTTPAddr, res, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
