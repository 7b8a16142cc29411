package cmd

import (
	"fmt"
	"math"
	"sort"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/couchcryptid/isotope-weight-service/internal/adapter/csvtable"
	"github.com/couchcryptid/isotope-weight-service/internal/domain"
)

var (
	validateCSV       string
	validateTolerance float64
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Run integrity checks over a built isotope table CSV",
	Long:  "Loads the isotope table and verifies row sanity, per-element abundance sums, and spot-checks computed weights against documented standard atomic weights.",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateCSV, "csv", "isotopes.csv", "path to the isotope table CSV")
	validateCmd.Flags().Float64Var(&validateTolerance, "tolerance", 0.5, "allowed abundance sum deviation from 100%")
}

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

// spotChecks are documented standard atomic weights the computed values must
// stay close to. The tolerance is loose because published standard weights
// are rounded and periodically revised.
var spotChecks = map[string]float64{
	"H":  1.008,
	"O":  15.999,
	"Fe": 55.845,
	"Sn": 118.71,
}

func runValidate(cmd *cobra.Command, _ []string) error {
	table, err := csvtable.Load(validateCSV)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "=== Isotope Table Validation: %s ===\n\n", validateCSV)

	phases := []*phase{
		validateRows(table),
		validateAbundanceSums(table),
		validateKnownWeights(table),
	}

	allPassed := true
	for _, p := range phases {
		status := "PASS"
		if !p.passed() {
			status = fmt.Sprintf("FAIL (%d errors)", len(p.errors))
			allPassed = false
		}
		fmt.Fprintf(out, "  %-40s %s\n", p.name, status)
	}

	symbols := lo.Keys(table)
	rows := lo.SumBy(symbols, func(sym string) int { return len(table[sym]) })
	fmt.Fprintf(out, "\nRows: %d isotopes across %d elements\n", rows, len(symbols))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Fprintf(out, "\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Fprintf(out, "  [%d] %s\n", i+1, e)
		}
	}

	if !allPassed {
		return fmt.Errorf("validation failed")
	}
	fmt.Fprintln(out, "\nAll validations passed.")
	return nil
}

// validateRows checks basic field sanity on every record.
func validateRows(table domain.Table) *phase {
	p := &phase{name: "Phase 1: Row Sanity"}

	for _, sym := range sortedSymbols(table) {
		for _, iso := range table[sym] {
			if iso.Mass <= 0 {
				p.errorf("%s-%d: nonpositive mass %g", sym, iso.MassNumber, iso.Mass)
			}
			if iso.Abundance < 0 || iso.Abundance > 100 {
				p.errorf("%s-%d: abundance %g outside [0,100]", sym, iso.MassNumber, iso.Abundance)
			}
		}
	}
	return p
}

// validateAbundanceSums checks that each element's abundances total ~100%.
func validateAbundanceSums(table domain.Table) *phase {
	p := &phase{name: "Phase 2: Abundance Sums"}

	for _, sym := range sortedSymbols(table) {
		total := lo.SumBy(table[sym], func(iso domain.Isotope) float64 { return iso.Abundance })
		if math.Abs(total-100) > validateTolerance {
			p.errorf("%s: abundances sum to %.4f%%, not ~100%%", sym, total)
		}
	}
	return p
}

// validateKnownWeights spot-checks computed weights against documented
// standard atomic weights.
func validateKnownWeights(table domain.Table) *phase {
	p := &phase{name: "Phase 3: Known Weights"}

	for _, sym := range sortedSymbols(lo.PickByKeys(table, lo.Keys(spotChecks))) {
		expected := spotChecks[sym]
		computed, err := domain.AtomicWeight(sym, table)
		if err != nil {
			p.errorf("%s: %v", sym, err)
			continue
		}
		if math.Abs(computed-expected) > 0.05 {
			p.errorf("%s: computed %.5f, documented %.5f", sym, computed, expected)
		}
	}
	return p
}

func sortedSymbols(table domain.Table) []string {
	symbols := lo.Keys(table)
	sort.Strings(symbols)
	return symbols
}
