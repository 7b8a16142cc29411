package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// DefaultNISTURL is the NIST "Atomic Weights and Isotopic Compositions for
// All Elements" table in ASCII2 format, the upstream source for the builder.
const DefaultNISTURL = "https://physics.nist.gov/cgi-bin/Compositions/stand_alone.pl?all=all&ascii=ascii2&ele=&isotype=all"

// Config holds all service settings, populated from environment variables.
type Config struct {
	CSVPath         string
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Builder configuration.
	NISTURL            string
	NISTTimeout        time.Duration
	AbundanceTolerance float64
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := time.ParseDuration(envOrDefault("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil || shutdownTimeout <= 0 {
		return nil, errors.New("invalid SHUTDOWN_TIMEOUT")
	}

	nistTimeout, err := time.ParseDuration(envOrDefault("NIST_TIMEOUT", "30s"))
	if err != nil || nistTimeout <= 0 {
		return nil, errors.New("invalid NIST_TIMEOUT")
	}

	tolerance, err := parseAbundanceTolerance()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		CSVPath:         envOrDefault("ISOTOPE_CSV_PATH", "isotopes.csv"),
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		NISTURL:            envOrDefault("NIST_URL", DefaultNISTURL),
		NISTTimeout:        nistTimeout,
		AbundanceTolerance: tolerance,
	}

	if cfg.CSVPath == "" {
		return nil, errors.New("ISOTOPE_CSV_PATH is required")
	}
	if cfg.HTTPAddr == "" {
		return nil, errors.New("HTTP_ADDR is required")
	}
	if cfg.NISTURL == "" {
		return nil, errors.New("NIST_URL is required")
	}

	return cfg, nil
}

// parseAbundanceTolerance reads the allowed per-element deviation of
// abundance sums from 100%, used by the builder's integrity check.
func parseAbundanceTolerance() (float64, error) {
	s := envOrDefault("ABUNDANCE_TOLERANCE", "0.5")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid ABUNDANCE_TOLERANCE %q", s)
	}
	return v, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
