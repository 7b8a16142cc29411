// Package resolver answers atomic-weight queries over a loaded isotope
// table, with logging and metrics around the pure domain computation.
package resolver

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/samber/lo"

	"github.com/couchcryptid/isotope-weight-service/internal/domain"
	"github.com/couchcryptid/isotope-weight-service/internal/observability"
)

// Result is a resolved atomic weight with provenance.
type Result struct {
	Symbol     string    `json:"symbol"`
	Weight     float64   `json:"atomic_weight"`
	Isotopes   int       `json:"isotopes"`
	Fallback   bool      `json:"fallback,omitempty"` // true when served from seed data
	ResolvedAt time.Time `json:"resolved_at"`
}

// Resolver wraps an immutable isotope table. The table is set once at
// construction; Resolver performs no mutation, so it is safe for concurrent
// HTTP handlers.
type Resolver struct {
	table   domain.Table
	logger  *slog.Logger
	metrics *observability.Metrics
	clock   clockwork.Clock
}

// New creates a Resolver over a loaded table.
func New(table domain.Table, logger *slog.Logger, metrics *observability.Metrics) *Resolver {
	var isotopes int
	for _, records := range table {
		isotopes += len(records)
	}
	metrics.TableElements.Set(float64(len(table)))
	metrics.TableIsotopes.Set(float64(isotopes))

	return &Resolver{
		table:   table,
		logger:  logger,
		metrics: metrics,
		clock:   clockwork.NewRealClock(),
	}
}

// Resolve computes the standard atomic weight for symbol. Errors are the
// domain taxonomy: [*domain.UnknownElementError] and
// [*domain.UndefinedWeightError].
func (r *Resolver) Resolve(symbol string) (Result, error) {
	sym := domain.NormalizeSymbol(symbol)

	records, err := domain.IsotopesFor(sym, r.table)
	if err != nil {
		r.metrics.Lookups.WithLabelValues("unknown").Inc()
		r.logger.Debug("unknown element", "symbol", sym)
		return Result{}, err
	}
	_, inTable := r.table[sym]

	weight, err := domain.Weight(sym, records)
	if err != nil {
		r.metrics.Lookups.WithLabelValues("undefined").Inc()
		r.logger.Debug("undefined weight", "symbol", sym)
		return Result{}, err
	}

	outcome := "ok"
	if !inTable {
		outcome = "seed"
		r.logger.Info("resolved from fallback seed", "symbol", sym)
	}
	r.metrics.Lookups.WithLabelValues(outcome).Inc()

	return Result{
		Symbol:     sym,
		Weight:     weight,
		Isotopes:   len(records),
		Fallback:   !inTable,
		ResolvedAt: r.clock.Now().UTC(),
	}, nil
}

// Symbols returns the element symbols present in the table, sorted.
func (r *Resolver) Symbols() []string {
	symbols := lo.Keys(r.table)
	sort.Strings(symbols)
	return symbols
}

// CheckReadiness returns nil once a non-empty table is loaded.
func (r *Resolver) CheckReadiness(_ context.Context) error {
	if len(r.table) == 0 {
		return errors.New("isotope table is empty")
	}
	return nil
}
