package resolver

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/isotope-weight-service/internal/domain"
	"github.com/couchcryptid/isotope-weight-service/internal/observability"
)

var frozenTime = time.Date(2026, time.August, 23, 12, 0, 0, 0, time.UTC)

func testResolver(table domain.Table) *Resolver {
	r := New(table, slog.New(slog.NewTextHandler(io.Discard, nil)), observability.NewMetricsForTesting())
	r.clock = clockwork.NewFakeClockAt(frozenTime)
	return r
}

func testTable() domain.Table {
	return domain.Table{
		"Cl": {
			{Symbol: "Cl", MassNumber: 35, Mass: 34.968852682, Abundance: 75.76, Stable: true},
			{Symbol: "Cl", MassNumber: 37, Mass: 36.965902602, Abundance: 24.24, Stable: true},
		},
		"He": {
			{Symbol: "He", MassNumber: 4, Mass: 4.002602, Abundance: 100, Stable: true},
		},
	}
}

func TestResolver_Resolve(t *testing.T) {
	r := testResolver(testTable())

	result, err := r.Resolve("cl")
	require.NoError(t, err)

	assert.Equal(t, "Cl", result.Symbol)
	assert.InDelta(t, 35.452937583, result.Weight, 1e-9)
	assert.Equal(t, 2, result.Isotopes)
	assert.False(t, result.Fallback)
	assert.Equal(t, frozenTime, result.ResolvedAt)
}

func TestResolver_Resolve_Fallback(t *testing.T) {
	r := testResolver(testTable())

	result, err := r.Resolve("Sn")
	require.NoError(t, err)

	assert.True(t, result.Fallback)
	assert.Equal(t, len(domain.TinSeed), result.Isotopes)
	assert.InDelta(t, 118.71, result.Weight, 0.01)
}

func TestResolver_Resolve_Unknown(t *testing.T) {
	r := testResolver(testTable())

	_, err := r.Resolve("Tc")
	var unknown *domain.UnknownElementError
	require.ErrorAs(t, err, &unknown)
}

func TestResolver_Resolve_UndefinedWeight(t *testing.T) {
	r := testResolver(domain.Table{
		"U": {{Symbol: "U", MassNumber: 238, Mass: 238.0507882, Abundance: 0}},
	})

	_, err := r.Resolve("U")
	var undefined *domain.UndefinedWeightError
	require.ErrorAs(t, err, &undefined)
}

func TestResolver_Symbols(t *testing.T) {
	r := testResolver(testTable())
	assert.Equal(t, []string{"Cl", "He"}, r.Symbols())
}

func TestResolver_CheckReadiness(t *testing.T) {
	require.NoError(t, testResolver(testTable()).CheckReadiness(context.Background()))
	require.Error(t, testResolver(domain.Table{}).CheckReadiness(context.Background()))
}
