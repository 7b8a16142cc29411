package domain

// Isotope is one row of the persisted isotope table: a single isotope of an
// element together with its natural abundance.
type Isotope struct {
	Element    string  `json:"element"`           // element name, e.g. "Tin"
	Symbol     string  `json:"symbol"`            // chemical symbol, e.g. "Sn"
	MassNumber int     `json:"mass_number"`       // A, protons + neutrons
	Mass       float64 `json:"mass_u"`            // isotopic mass in u
	Abundance  float64 `json:"abundance_percent"` // natural abundance, atom percent
	Stable     bool    `json:"stable"`
}

// Table maps a normalized element symbol to its isotope records. It is built
// once by the loader and must not be mutated afterwards; callers pass it
// explicitly so test fixtures and production data can coexist.
type Table map[string][]Isotope
