package domain

import "fmt"

// UnknownElementError reports a symbol with no isotope records in the table
// or the fallback seeds. The CSV cannot distinguish "no natural isotopes"
// (Tc, Pm) from "missing due to an incomplete fetch"; both surface here.
type UnknownElementError struct {
	Symbol string
}

func (e *UnknownElementError) Error() string {
	return fmt.Sprintf("no natural isotope data for element %q: absent from table and fallback seeds", e.Symbol)
}

// UndefinedWeightError reports a symbol whose records carry zero total
// abundance, leaving the weighted mean undefined.
type UndefinedWeightError struct {
	Symbol string
}

func (e *UndefinedWeightError) Error() string {
	return fmt.Sprintf("atomic weight undefined for element %q: total abundance is zero", e.Symbol)
}
