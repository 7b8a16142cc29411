package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "isotopes.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestValidateCommand_Passes(t *testing.T) {
	path := writeTable(t, `element,symbol,A,mass_u,abundance_percent,stable
Chlorine,Cl,35,34.968852682,75.76,True
Chlorine,Cl,37,36.965902602,24.24,True
Tin,Sn,112,111.90482387,0.97,True
Tin,Sn,114,113.9027827,0.66,True
Tin,Sn,115,114.903344699,0.34,True
Tin,Sn,116,115.9017428,14.54,True
Tin,Sn,117,116.90295398,7.68,True
Tin,Sn,118,117.90160657,24.22,True
Tin,Sn,119,118.90331117,8.59,True
Tin,Sn,120,119.90220163,32.58,True
Tin,Sn,122,121.9034438,4.63,True
Tin,Sn,124,123.9052766,5.79,True
`)

	out, err := runCLI(t, "validate", "--csv", path)
	require.NoError(t, err)
	assert.Contains(t, out, "All validations passed.")
	assert.Contains(t, out, "12 isotopes across 2 elements")
}

func TestValidateCommand_FlagsBadAbundanceSum(t *testing.T) {
	path := writeTable(t, `element,symbol,A,mass_u,abundance_percent,stable
Chlorine,Cl,35,34.968852682,75.76,True
`)

	out, err := runCLI(t, "validate", "--csv", path)
	require.Error(t, err)
	assert.Contains(t, out, "abundances sum to 75.7600%")
}

func TestValidateCommand_FlagsDriftedWeight(t *testing.T) {
	// Fe with a deliberately wrong isotope mass.
	path := writeTable(t, `element,symbol,A,mass_u,abundance_percent,stable
Iron,Fe,56,60.0,100,True
`)

	out, err := runCLI(t, "validate", "--csv", path)
	require.Error(t, err)
	assert.Contains(t, out, "Phase 3: Known Weights")
	assert.Contains(t, out, "documented 55.84500")
}

func TestValidateCommand_MissingFile(t *testing.T) {
	_, err := runCLI(t, "validate", "--csv", filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
}
