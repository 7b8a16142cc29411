package cmd

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/isotope-weight-service/internal/adapter/csvtable"
	"github.com/couchcryptid/isotope-weight-service/internal/adapter/nist"
	"github.com/couchcryptid/isotope-weight-service/internal/config"
	"github.com/couchcryptid/isotope-weight-service/internal/observability"
	"github.com/couchcryptid/isotope-weight-service/internal/pipeline"
)

var (
	buildCSV       string
	buildURL       string
	buildTimeout   time.Duration
	buildTolerance float64
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the isotope table CSV from the NIST compositions table",
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&buildCSV, "csv", "isotopes.csv", "output path for the isotope table CSV")
	buildCmd.Flags().StringVar(&buildURL, "url", config.DefaultNISTURL, "NIST compositions table URL")
	buildCmd.Flags().DurationVar(&buildTimeout, "timeout", 30*time.Second, "fetch timeout")
	buildCmd.Flags().Float64Var(&buildTolerance, "tolerance", 0.5, "allowed abundance sum deviation from 100% before warning")
}

func runBuild(cmd *cobra.Command, _ []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	metrics := observability.NewMetrics()

	client := nist.NewClient(buildURL, buildTimeout, logger, metrics)
	builder := pipeline.NewBuilder(client, csvtable.FileSink{Path: buildCSV}, logger, metrics, buildTolerance)

	return builder.Run(cmd.Context())
}
