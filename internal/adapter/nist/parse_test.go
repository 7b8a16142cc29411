package nist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleTable is a trimmed excerpt of the NIST ASCII2 output: hydrogen with
// three isotopes (tritium has no composition), and beryllium whose single
// isotope carries the whole composition.
const sampleTable = `Atomic Number = 1
Atomic Symbol = H
Mass Number = 1
Relative Atomic Mass = 1.00782503207(10)
Isotopic Composition = 0.999885(70)
Standard Atomic Weight = [1.00784,1.00811]
Notes = m

Atomic Number = 1
Atomic Symbol = D
Mass Number = 2
Relative Atomic Mass = 2.0141017778(4)
Isotopic Composition = 0.000115(70)
Standard Atomic Weight = [1.00784,1.00811]
Notes = m

Atomic Number = 1
Atomic Symbol = T
Mass Number = 3
Relative Atomic Mass = 3.0160492777(25)
Isotopic Composition =
Standard Atomic Weight = [1.00784,1.00811]
Notes = m

Atomic Number = 4
Atomic Symbol = Be
Mass Number = 9
Relative Atomic Mass = 9.0121822(4)
Isotopic Composition = 1
Standard Atomic Weight = 9.0121822(4)
Notes =
`

func TestParseComposition(t *testing.T) {
	rows, err := ParseComposition(sampleTable)
	require.NoError(t, err)

	// Tritium has no listed composition and is dropped.
	require.Len(t, rows, 3)

	h := rows[0]
	assert.Equal(t, "Hydrogen", h.Element)
	assert.Equal(t, "H", h.Symbol)
	assert.Equal(t, 1, h.MassNumber)
	assert.Equal(t, 1.00782503207, h.Mass)
	assert.InDelta(t, 99.9885, h.Abundance, 1e-9)
	assert.True(t, h.Stable)

	d := rows[1]
	assert.Equal(t, "D", d.Symbol)
	assert.Equal(t, 2, d.MassNumber)
	assert.InDelta(t, 0.0115, d.Abundance, 1e-9)

	be := rows[2]
	assert.Equal(t, "Beryllium", be.Element)
	assert.Equal(t, 9, be.MassNumber)
	assert.InDelta(t, 100.0, be.Abundance, 1e-9)
}

func TestParseComposition_EstimateMarker(t *testing.T) {
	// "#" marks an estimated value; everything after it is stripped.
	rows, err := ParseComposition(`Atomic Number = 84
Atomic Symbol = Po
Mass Number = 209
Relative Atomic Mass = 208.9824304#
Isotopic Composition = 1
`)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 208.9824304, rows[0].Mass)
	assert.Equal(t, "Polonium", rows[0].Element)
}

func TestParseComposition_UnknownAtomicNumberFallsBackToSymbol(t *testing.T) {
	rows, err := ParseComposition(`Atomic Number = 999
Atomic Symbol = Zz
Mass Number = 300
Relative Atomic Mass = 300.0
Isotopic Composition = 1
`)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Zz", rows[0].Element)
}

func TestParseComposition_Empty(t *testing.T) {
	_, err := ParseComposition("")
	require.Error(t, err)

	// A table without compositions is as useless as an empty one.
	_, err = ParseComposition(`Atomic Number = 43
Atomic Symbol = Tc
Mass Number = 98
Relative Atomic Mass = 97.907212
Isotopic Composition =
`)
	require.Error(t, err)
}

func TestParseComposition_UnparseableValuesDropped(t *testing.T) {
	rows, err := ParseComposition(`Atomic Number = 1
Atomic Symbol = H
Mass Number = 1
Relative Atomic Mass = garbage
Isotopic Composition = 0.999885

Atomic Number = 4
Atomic Symbol = Be
Mass Number = 9
Relative Atomic Mass = 9.0121822(4)
Isotopic Composition = 1
`)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Be", rows[0].Symbol)
}
