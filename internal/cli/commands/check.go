package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fitwrap/gnufit/pkg/check"
	"github.com/fitwrap/gnufit/pkg/config"
	"github.com/fitwrap/gnufit/pkg/dataset"
	"github.com/fitwrap/gnufit/pkg/output"
)

// CheckOptions holds command-line options for the check command.
type CheckOptions struct {
	Output  string
	Verbose bool
	Quiet   bool
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}

	cmd := &cobra.Command{
		Use:   "check <config-file>",
		Short: "Cross-check extracted coefficients against a local fit",
		Long: `Parse the fit log, then fit the same samples locally with ordinary
least squares and compare the two sets of coefficients.

A difference beyond the configured tolerance usually means the log
belongs to a different data set, or the fit did not converge.

Exit codes:
  0 - Coefficients match within tolerance
  1 - Coefficients differ beyond tolerance
  2 - Configuration or runtime error`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show fit diagnostics and run details")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Print only the two coefficients")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, opts *CheckOptions) error {
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

	set := &dataset.SampleSet{X: cfg.Samples.X, Y: cfg.Samples.Y}
	result, err := check.Compare(set, &report.Fit, cfg.Check.Tolerance)
	if err != nil {
		return fmt.Errorf("cross-check failed: %w", err)
	}
	report.Check = result

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

	if !result.OK() {
		ExitCode = 1
	}

	return nil
}
