// Package pipeline orchestrates the one-shot isotope table build:
// fetch rows from the upstream source, check abundance sums, persist.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/couchcryptid/isotope-weight-service/internal/domain"
	"github.com/couchcryptid/isotope-weight-service/internal/observability"
)

// Source produces isotope records from an upstream data source.
type Source interface {
	FetchIsotopes(ctx context.Context) ([]domain.Isotope, error)
}

// Sink persists isotope records.
type Sink interface {
	WriteTable(rows []domain.Isotope) error
}

// Builder runs a single fetch-check-write cycle. There is no retry logic:
// a build is an offline, operator-triggered action, and a failed one is
// simply rerun.
type Builder struct {
	source    Source
	sink      Sink
	logger    *slog.Logger
	metrics   *observability.Metrics
	tolerance float64
}

// NewBuilder creates a Builder. tolerance is the allowed per-element
// deviation of abundance sums from 100% before a warning is logged.
func NewBuilder(source Source, sink Sink, logger *slog.Logger, metrics *observability.Metrics, tolerance float64) *Builder {
	return &Builder{
		source:    source,
		sink:      sink,
		logger:    logger,
		metrics:   metrics,
		tolerance: tolerance,
	}
}

// Run fetches the upstream table, warns on abundance sums that deviate from
// 100% beyond tolerance, and writes the result to the sink. Deviations warn
// rather than fail: the rows are still usable because weighted means
// normalize by the actual abundance sum.
func (b *Builder) Run(ctx context.Context) error {
	start := time.Now()

	rows, err := b.source.FetchIsotopes(ctx)
	if err != nil {
		return fmt.Errorf("fetch isotopes: %w", err)
	}
	b.metrics.RowsFetched.Add(float64(len(rows)))

	sums := make(map[string]float64)
	for _, iso := range rows {
		sums[domain.NormalizeSymbol(iso.Symbol)] += iso.Abundance
	}
	for sym, total := range sums {
		if math.Abs(total-100) > b.tolerance {
			b.logger.Warn("abundance sum deviates from 100%",
				"symbol", sym,
				"total", total,
			)
			b.metrics.AbundanceWarnings.Inc()
		}
	}

	if err := b.sink.WriteTable(rows); err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	b.metrics.BuildDuration.Observe(time.Since(start).Seconds())
	b.logger.Info("isotope table built",
		"rows", len(rows),
		"elements", len(sums),
		"elapsed", time.Since(start),
	)
	return nil
}
