// scalar-themes installs the Scalar colour theme into terminal emulators and
// editors, deriving the 256-colour terminal palette in CIE LAB.
package main

import (
	"os"

	"github.com/jmylchreest/scalar-themes/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
