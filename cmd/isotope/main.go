// Command isotope is the operator CLI: compute atomic weights, build the
// isotope table CSV from NIST, and validate a built table.
package main

import (
	"os"

	"github.com/couchcryptid/isotope-weight-service/cmd/isotope/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
