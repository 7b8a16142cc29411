package domain

import (
	"errors"
	"fmt"
	"strings"
)

// NormalizeSymbol canonicalizes an element symbol for lookup: one-letter
// symbols are uppercased, two-letter symbols are title-cased ("sn" → "Sn"),
// anything longer is only trimmed. Lookups are therefore case-insensitive
// for every real element symbol.
func NormalizeSymbol(symbol string) string {
	symbol = strings.TrimSpace(symbol)
	switch len(symbol) {
	case 1:
		return strings.ToUpper(symbol)
	case 2:
		return strings.ToUpper(symbol[:1]) + strings.ToLower(symbol[1:])
	default:
		return symbol
	}
}

// IsotopesFor returns the isotope records for symbol, consulting the
// built-in fallback seeds when the table has none. Returns
// [*UnknownElementError] when neither has data.
func IsotopesFor(symbol string, table Table) ([]Isotope, error) {
	sym := NormalizeSymbol(symbol)
	if isotopes, ok := table[sym]; ok {
		return isotopes, nil
	}
	if seed, ok := fallbackSeeds[sym]; ok {
		return seed, nil
	}
	return nil, &UnknownElementError{Symbol: sym}
}

// Weight computes the abundance-weighted mean mass over records. Returns
// [*UndefinedWeightError] when the total abundance is zero. With a single
// record at abundance 100 the mean degenerates to that record's mass exactly.
func Weight(symbol string, records []Isotope) (float64, error) {
	var total, weighted float64
	for _, iso := range records {
		total += iso.Abundance
		weighted += iso.Mass * iso.Abundance
	}
	if total == 0 {
		return 0, &UndefinedWeightError{Symbol: NormalizeSymbol(symbol)}
	}
	return weighted / total, nil
}

// AtomicWeight resolves the standard atomic weight of an element:
// the abundance-weighted mean isotope mass over the table's records for
// symbol, falling back to the built-in seeds when the table has none.
func AtomicWeight(symbol string, table Table) (float64, error) {
	records, err := IsotopesFor(symbol, table)
	if err != nil {
		return 0, err
	}
	return Weight(symbol, records)
}

// WeightFromMassFractions computes an atomic weight from isotopic masses and
// a composition given by mass rather than by atom count. Compositions may be
// weight percents (summing ~100) or mass fractions (summing ~1); the formula
//
//	weight = ΣW / Σ(W_i / m_i)
//
// is scale-invariant, so both conventions produce the same result. Order of
// weights must match masses.
func WeightFromMassFractions(masses, weights []float64) (float64, error) {
	if len(masses) != len(weights) {
		return 0, fmt.Errorf("masses and weights must have the same length: %d vs %d", len(masses), len(weights))
	}
	if len(masses) == 0 {
		return 0, errors.New("no isotopes given")
	}

	var total, denom float64
	for i := range masses {
		if masses[i] <= 0 {
			return 0, fmt.Errorf("isotope mass must be positive, got %g", masses[i])
		}
		if weights[i] < 0 {
			return 0, fmt.Errorf("weight entries must be nonnegative, got %g", weights[i])
		}
		total += weights[i]
		denom += weights[i] / masses[i]
	}
	if total == 0 {
		return 0, errors.New("sum of weight percents/fractions is zero")
	}
	return total / denom, nil
}
