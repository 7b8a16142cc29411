// Package http exposes the atomic-weight query API alongside health,
// readiness, and metrics endpoints.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/isotope-weight-service/internal/domain"
	"github.com/couchcryptid/isotope-weight-service/internal/resolver"
)

// Resolver answers atomic-weight lookups over a loaded isotope table.
type Resolver interface {
	Resolve(symbol string) (resolver.Result, error)
	Symbols() []string
	CheckReadiness(ctx context.Context) error
}

// Server exposes the query API plus health, readiness, and metrics routes.
type Server struct {
	httpServer *http.Server
	resolver   Resolver
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /healthz, /readyz, /metrics,
// /v1/weight/{symbol}, and /v1/elements routes.
func NewServer(addr string, res Resolver, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		resolver: res,
		logger:   logger,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /v1/weight/{symbol}", s.handleWeight)
	mux.HandleFunc("GET /v1/elements", s.handleElements)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.resolver.CheckReadiness(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) handleWeight(w http.ResponseWriter, r *http.Request) {
	symbol := strings.TrimSpace(r.PathValue("symbol"))
	if symbol == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing element symbol"})
		return
	}

	result, err := s.resolver.Resolve(symbol)
	if err != nil {
		var unknown *domain.UnknownElementError
		var undefined *domain.UndefinedWeightError
		switch {
		case errors.As(err, &unknown):
			writeJSON(w, http.StatusNotFound, map[string]string{
				"error":  err.Error(),
				"symbol": unknown.Symbol,
			})
		case errors.As(err, &undefined):
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
				"error":  err.Error(),
				"symbol": undefined.Symbol,
			})
		default:
			s.logger.Error("weight lookup failed", "symbol", symbol, "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleElements(w http.ResponseWriter, _ *http.Request) {
	symbols := s.resolver.Symbols()
	writeJSON(w, http.StatusOK, map[string]any{
		"elements": symbols,
		"count":    len(symbols),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response write
}
