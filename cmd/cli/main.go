// gnufit - gnuplot curve-fit wrapper
//
// gnufit writes gnuplot fit input files from YAML-described samples, runs
// gnuplot, and extracts the fitted slope and intercept from the fit log.
package main

import (
	"os"

	"github.com/fitwrap/gnufit/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
