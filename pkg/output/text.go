package output

import (
	"context"
	"fmt"
	"io"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		_, err := fmt.Fprintf(w, "%g %g\n", report.Fit.Slope, report.Fit.Intercept)
		return err
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "Fit result (f(x) = a*x + b)\n")
	fmt.Fprintf(w, "  slope (a):     %g\n", report.Fit.Slope)
	fmt.Fprintf(w, "  intercept (b): %g\n", report.Fit.Intercept)

	if f.opts.Verbose && report.Stats != nil {
		fmt.Fprintf(w, "\nDiagnostics:\n")
		if report.Stats.Iterations > 0 {
			fmt.Fprintf(w, "  iterations:        %d\n", report.Stats.Iterations)
		}
		if report.Stats.SumSquaredResiduals > 0 {
			fmt.Fprintf(w, "  sum sq residuals:  %g\n", report.Stats.SumSquaredResiduals)
		}
		if report.Stats.RMSResiduals > 0 {
			fmt.Fprintf(w, "  rms of residuals:  %g\n", report.Stats.RMSResiduals)
		}
	}

	if report.Check != nil {
		fmt.Fprintf(w, "\nCross-check (local least squares):\n")
		fmt.Fprintf(w, "  reference slope:     %g (delta %g)\n",
			report.Check.Reference.Slope, report.Check.SlopeDelta)
		fmt.Fprintf(w, "  reference intercept: %g (delta %g)\n",
			report.Check.Reference.Intercept, report.Check.InterceptDelta)
		fmt.Fprintf(w, "  r-squared:           %g\n", report.Check.RSquared)
		if report.Check.OK() {
			fmt.Fprintf(w, "  within tolerance %g\n", report.Check.Tolerance)
		} else {
			fmt.Fprintf(w, "  MISMATCH: exceeds tolerance %g\n", report.Check.Tolerance)
		}
	}

	if f.opts.Verbose {
		fmt.Fprintf(w, "\nRun:\n")
		fmt.Fprintf(w, "  config:  %s\n", report.Metadata.ConfigFile)
		fmt.Fprintf(w, "  workdir: %s\n", report.Metadata.WorkDir)
		fmt.Fprintf(w, "  log:     %s\n", report.Metadata.LogFile)
		fmt.Fprintf(w, "  samples: %d\n", report.Metadata.Samples)
		if report.Metadata.Duration > 0 {
			fmt.Fprintf(w, "  took:    %s\n", report.Metadata.Duration)
		}
	}

	return nil
}
