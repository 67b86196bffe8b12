// Package output provides formatting and report generation for fit results.
package output

import (
	"time"

	"github.com/fitwrap/gnufit/pkg/check"
	"github.com/fitwrap/gnufit/pkg/fitlog"
)

// Report is the complete output of a fit.
type Report struct {
	// Fit holds the extracted coefficients.
	Fit fitlog.FitResult `json:"fit"`

	// Stats holds optional fit diagnostics from the log, if present.
	Stats *fitlog.Stats `json:"stats,omitempty"`

	// Check holds the local least-squares cross-check, if one was run.
	Check *check.Result `json:"check,omitempty"`

	// Metadata provides context about the run.
	Metadata Metadata `json:"metadata"`
}

// Metadata provides context about a fit run.
type Metadata struct {
	// ConfigFile is the path to the configuration file used.
	ConfigFile string `json:"config_file"`

	// WorkDir is the directory the fit ran in.
	WorkDir string `json:"work_dir"`

	// LogFile is the fit log the coefficients were extracted from.
	LogFile string `json:"log_file"`

	// Samples is the number of (x, y) pairs fitted.
	Samples int `json:"samples"`

	// CollectedAt is when the fit log was parsed.
	CollectedAt time.Time `json:"collected_at"`

	// Duration is how long the whole pipeline took, when known.
	Duration time.Duration `json:"duration,omitempty"`
}

// HasCheckIssue returns true if a cross-check ran and found a mismatch.
func (r *Report) HasCheckIssue() bool {
	return r.Check != nil && !r.Check.OK()
}
