// Package nist fetches and parses the NIST "Atomic Weights and Isotopic
// Compositions for All Elements" table, the upstream data source for the
// isotope table builder.
package nist

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/isotope-weight-service/internal/domain"
	"github.com/couchcryptid/isotope-weight-service/internal/observability"
)

// Client fetches isotope data over HTTP. It implements pipeline.Source.
type Client struct {
	httpClient *http.Client
	url        string
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewClient creates a NIST table client for the given URL.
func NewClient(url string, timeout time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		url:     url,
		logger:  logger,
		metrics: metrics,
	}
}

// FetchIsotopes downloads the ASCII table and parses it into isotope records.
func (c *Client) FetchIsotopes(ctx context.Context) ([]domain.Isotope, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch NIST table: %w", err)
	}
	defer resp.Body.Close()
	c.metrics.FetchDuration.Observe(time.Since(start).Seconds())

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("NIST table fetch: status %d: %s", resp.StatusCode, body)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	rows, err := ParseComposition(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse NIST table: %w", err)
	}

	c.logger.Debug("fetched NIST table", "bytes", len(data), "rows", len(rows))
	return rows, nil
}
