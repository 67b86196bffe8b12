// Package fitlog parses the log file written by gnuplot's fit command.
package fitlog

// Marker is the line prefix that opens the result section of a fit log.
const Marker = "Final set of parameters"

// FitResult holds the extracted linear-model coefficients.
// A result is produced once and never mutated.
type FitResult struct {
	// Slope is the fitted coefficient a in f(x) = a*x + b.
	Slope float64 `json:"slope"`

	// Intercept is the fitted coefficient b in f(x) = a*x + b.
	Intercept float64 `json:"intercept"`
}

// Stats holds optional fit diagnostics reported by gnuplot.
// Fields are zero when the corresponding line is absent from the log.
type Stats struct {
	// Iterations is the iteration count from the convergence line.
	Iterations int `json:"iterations,omitempty"`

	// SumSquaredResiduals is gnuplot's final sum of squares of residuals.
	SumSquaredResiduals float64 `json:"sum_squared_residuals,omitempty"`

	// RMSResiduals is gnuplot's rms of residuals.
	RMSResiduals float64 `json:"rms_residuals,omitempty"`
}
