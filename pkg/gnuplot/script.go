// Package gnuplot renders fit scripts and invokes the gnuplot executable.
package gnuplot

import (
	"fmt"
	"os"
)

// FitScript renders the two-line gnuplot fit script for a linear model
// against the given data file: the model definition and the fit command.
// dataFile is the only substitution point; the template is otherwise fixed.
func FitScript(dataFile string) string {
	return fmt.Sprintf("f(x) = a*x + b\nfit f(x) '%s' using 1:2 via a, b\n", dataFile)
}

// WriteScript writes the fit script for dataFile to path.
// Re-invocation overwrites the previous script deterministically.
func WriteScript(path, dataFile string) error {
	if err := os.WriteFile(path, []byte(FitScript(dataFile)), 0644); err != nil { // #nosec G306 -- script file is not sensitive
		return fmt.Errorf("writing fit script %s: %w", path, err)
	}
	return nil
}
