package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fitwrap/gnufit/pkg/config"
	"github.com/fitwrap/gnufit/pkg/fitlog"
	"github.com/fitwrap/gnufit/pkg/output"
)

// CollectOptions holds command-line options for the collect command.
type CollectOptions struct {
	Output  string
	Verbose bool
	Quiet   bool
}

// NewCollectCommand creates the collect command.
func NewCollectCommand() *cobra.Command {
	opts := &CollectOptions{}

	cmd := &cobra.Command{
		Use:   "collect <config-file>",
		Short: "Extract fit coefficients from the fit log",
		Long: `Parse the fit log gnuplot wrote and report the fitted coefficients.

The log is scanned for the "Final set of parameters" section; the slope
and intercept are read from the two coefficient lines below it. A log
without that section means the fit did not complete.

Exit codes:
  0 - Coefficients extracted
  2 - Configuration or runtime error (including a missing or bad log)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCollect(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show fit diagnostics and run details")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Print only the two coefficients")

	return cmd
}

func runCollect(cmd *cobra.Command, args []string, opts *CollectOptions) error {
	configPath := args[0]
	ctx := cmdContext(cmd)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	report, err := collectReport(cfg, configPath)
	if err != nil {
		return err
	}

	formatter, err := createFormatter(opts.Output, output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	})
	if err != nil {
		return err
	}

	if err := formatter.Format(ctx, report, os.Stdout); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	return nil
}

// collectReport parses the fit log and assembles a report around the result.
// Coefficient extraction is strict; diagnostics are best-effort.
func collectReport(cfg *config.Config, configPath string) (*output.Report, error) {
	result, err := fitlog.ReadFile(cfg.LogPath())
	if err != nil {
		return nil, err
	}

	stats := readStatsBestEffort(cfg.LogPath(), os.Stderr)

	return &output.Report{
		Fit:   *result,
		Stats: stats,
		Metadata: output.Metadata{
			ConfigFile:  configPath,
			WorkDir:     cfg.WorkDir,
			LogFile:     cfg.LogPath(),
			Samples:     len(cfg.Samples.X),
			CollectedAt: time.Now(),
		},
	}, nil
}

// readStatsBestEffort reads fit diagnostics from the log. Absent diagnostic
// lines are normal; a read error is not, so it gets a warning rather than
// being conflated with absence.
func readStatsBestEffort(path string, warn io.Writer) *fitlog.Stats {
	stats, err := fitlog.ReadStatsFile(path)
	if err != nil {
		fmt.Fprintf(warn, "Warning: could not read fit diagnostics from %s: %v\n", path, err)
		return nil
	}
	return stats
}

// createFormatter builds the formatter for the requested output format.
func createFormatter(format string, opts output.FormatOptions) (output.Formatter, error) {
	switch format {
	case "text":
		return output.NewTextFormatter(opts), nil
	case "json":
		return output.NewJSONFormatter(opts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", format)
	}
}

// cmdContext returns the command's context, falling back to Background.
func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
