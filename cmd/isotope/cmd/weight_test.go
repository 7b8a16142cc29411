package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestWeightCommand_SeedFallback(t *testing.T) {
	// No CSV on disk: tin resolves from the built-in seed.
	missing := filepath.Join(t.TempDir(), "absent.csv")

	out, err := runCLI(t, "weight", "--symbol", "Sn", "--csv", missing)
	require.NoError(t, err)
	assert.Contains(t, out, "Atomic weight (natural) for Sn: 118.710113 u")
}

func TestWeightCommand_FromCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "isotopes.csv")
	csv := `element,symbol,A,mass_u,abundance_percent,stable
Helium,He,4,4.002602,100,True
`
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o600))

	out, err := runCLI(t, "weight", "--symbol", "he", "--csv", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Atomic weight (natural) for He: 4.002602 u")
}

func TestWeightCommand_UnknownElement(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.csv")

	_, err := runCLI(t, "weight", "--symbol", "Tc", "--csv", missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Tc")
}
