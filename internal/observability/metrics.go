package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// resolver service and the table builder.
type Metrics struct {
	// Resolver metrics.
	Lookups           *prometheus.CounterVec // labels: outcome={ok,seed,unknown,undefined}
	TableElements     prometheus.Gauge
	TableIsotopes     prometheus.Gauge
	TableLoadDuration prometheus.Histogram

	// Builder metrics.
	RowsFetched       prometheus.Counter
	AbundanceWarnings prometheus.Counter
	FetchDuration     prometheus.Histogram
	BuildDuration     prometheus.Histogram
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.Lookups,
		m.TableElements,
		m.TableIsotopes,
		m.TableLoadDuration,
		m.RowsFetched,
		m.AbundanceWarnings,
		m.FetchDuration,
		m.BuildDuration,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering collectors, to
// avoid "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		Lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "isotope",
			Name:      "lookups_total",
			Help:      "Atomic weight lookups by outcome.",
		}, []string{"outcome"}),
		TableElements: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "isotope",
			Name:      "table_elements",
			Help:      "Distinct element symbols in the loaded table.",
		}),
		TableIsotopes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "isotope",
			Name:      "table_isotopes",
			Help:      "Total isotope rows in the loaded table.",
		}),
		TableLoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "isotope",
			Name:      "table_load_duration_seconds",
			Help:      "Duration of loading the isotope table from disk.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
		RowsFetched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "isotope",
			Name:      "rows_fetched_total",
			Help:      "Isotope rows parsed from the upstream NIST table.",
		}),
		AbundanceWarnings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "isotope",
			Name:      "abundance_warnings_total",
			Help:      "Elements whose abundance sum deviated from 100% beyond tolerance.",
		}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "isotope",
			Name:      "fetch_duration_seconds",
			Help:      "NIST table fetch request duration in seconds.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		BuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "isotope",
			Name:      "build_duration_seconds",
			Help:      "Duration of a complete fetch-check-write build cycle.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
	}
}
