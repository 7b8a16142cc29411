// Package domain models isotope abundance data and the standard atomic
// weight computation over it.
//
// # Data Source
//
// Isotope records originate from the NIST PML "Atomic Weights and Isotopic
// Compositions for All Elements" table, available at
// https://physics.nist.gov/cgi-bin/Compositions/stand_alone.pl. The builder
// fetches that ASCII table, keeps the isotopes with a listed isotopic
// composition, and persists them as CSV rows. For a few elements the natural
// composition includes very long-lived radioisotopes (e.g. 40K); those belong
// in the natural mix used for atomic-weight calculations and are kept.
//
// # Conventions
//
// Abundance is atom percent: the NIST isotopic composition (a number
// fraction) multiplied by 100. For a natural element the abundances of its
// isotopes sum to ~100. Elements without a stable natural mix (Tc, Pm) have
// no composition listed and are simply absent from the table.
//
// Isotopic masses are the per-isotope relative atomic mass values in unified
// atomic mass units (u).
//
// The standard atomic weight of an element is the abundance-weighted mean of
// its isotope masses:
//
//	weight = Σ(mass_i × abundance_i) / Σ(abundance_i)
//
// Dividing by the abundance sum rather than by 100 keeps the result exact
// when a single isotope carries the whole composition and tolerates small
// rounding drift in source data. See [AtomicWeight].
//
// # Symbol Normalization
//
// Lookups are case-insensitive for one- and two-letter symbols: "sn", "SN"
// and "Sn" all resolve to tin. See [NormalizeSymbol].
//
// # Fallback Seed
//
// [TinSeed] is a built-in dataset for tin so a deployment with a missing or
// incomplete table can still answer the one query the original tooling was
// built around. Fallback data is only consulted when the loaded table has no
// rows for the symbol.
package domain
