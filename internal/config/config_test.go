package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "isotopes.csv", cfg.CSVPath)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, DefaultNISTURL, cfg.NISTURL)
	assert.Equal(t, 30*time.Second, cfg.NISTTimeout)
	assert.Equal(t, 0.5, cfg.AbundanceTolerance)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("ISOTOPE_CSV_PATH", "/data/isotopes.csv")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("NIST_URL", "http://localhost:8999/compositions")
	t.Setenv("NIST_TIMEOUT", "5s")
	t.Setenv("ABUNDANCE_TOLERANCE", "1.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/data/isotopes.csv", cfg.CSVPath)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "http://localhost:8999/compositions", cfg.NISTURL)
	assert.Equal(t, 5*time.Second, cfg.NISTTimeout)
	assert.Equal(t, 1.5, cfg.AbundanceTolerance)
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_NegativeShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "-1s")
	_, err := Load()
	require.Error(t, err)
}

func TestLoad_InvalidNISTTimeout(t *testing.T) {
	t.Setenv("NIST_TIMEOUT", "0")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NIST_TIMEOUT")
}

func TestLoad_InvalidAbundanceTolerance(t *testing.T) {
	t.Setenv("ABUNDANCE_TOLERANCE", "-0.1")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ABUNDANCE_TOLERANCE")
}
