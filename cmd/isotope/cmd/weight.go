package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/isotope-weight-service/internal/adapter/csvtable"
	"github.com/couchcryptid/isotope-weight-service/internal/domain"
)

var (
	weightSymbol string
	weightCSV    string
)

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Compute the standard atomic weight of an element",
	Long:  "Computes the abundance-weighted mean isotope mass for an element symbol from the isotope table CSV. When the CSV is missing, only the built-in seed data (tin) is available.",
	RunE:  runWeight,
}

func init() {
	weightCmd.Flags().StringVar(&weightSymbol, "symbol", "", "element symbol (e.g. Sn, Cu, O)")
	weightCmd.Flags().StringVar(&weightCSV, "csv", "isotopes.csv", "path to the isotope table CSV")
	_ = weightCmd.MarkFlagRequired("symbol")
}

func runWeight(cmd *cobra.Command, _ []string) error {
	table, err := csvtable.Load(weightCSV)
	if err != nil {
		// A missing table is not fatal: the resolver falls back to the
		// built-in seed, matching the original tooling's behavior.
		var dsErr *csvtable.DataSourceError
		if !errors.As(err, &dsErr) {
			return err
		}
		table = domain.Table{}
	}

	weight, err := domain.AtomicWeight(weightSymbol, table)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Atomic weight (natural) for %s: %.6f u\n",
		domain.NormalizeSymbol(weightSymbol), weight)
	return nil
}
