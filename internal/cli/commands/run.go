package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fitwrap/gnufit/pkg/check"
	"github.com/fitwrap/gnufit/pkg/config"
	"github.com/fitwrap/gnufit/pkg/dataset"
	"github.com/fitwrap/gnufit/pkg/gnuplot"
	"github.com/fitwrap/gnufit/pkg/output"
	"github.com/fitwrap/gnufit/pkg/webhook"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// RunOptions holds command-line options for the run command.
type RunOptions struct {
	Output  string
	Verbose bool
	Quiet   bool
	Check   bool

	// Webhook options
	WebhookURL     string
	WebhookToken   string
	WebhookTrigger string
}

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	opts := &RunOptions{}

	cmd := &cobra.Command{
		Use:   "run <config-file>",
		Short: "Fit the samples with gnuplot end to end",
		Long: `Run the whole fit pipeline:

  validate samples -> write input files -> run gnuplot -> read the fit log

The extracted slope and intercept are reported when gnuplot finishes.
With --check, the coefficients are also compared against a local
least-squares fit of the same samples.

Exit codes:
  0 - Fit completed
  1 - Fit completed but the cross-check found a mismatch
  2 - Configuration or runtime error`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show fit diagnostics and run details")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Print only the two coefficients")
	cmd.Flags().BoolVar(&opts.Check, "check", false, "Cross-check coefficients against a local least-squares fit")

	// Webhook flags
	cmd.Flags().StringVar(&opts.WebhookURL, "webhook-url", "", "Webhook endpoint URL")
	cmd.Flags().StringVar(&opts.WebhookToken, "webhook-token", "", "Bearer token for webhook auth")
	cmd.Flags().StringVar(&opts.WebhookTrigger, "webhook-trigger", "always", "When to fire webhook (always|on_success|never)")

	return cmd
}

func runRun(cmd *cobra.Command, args []string, opts *RunOptions) error {
	configPath := args[0]
	ctx := cmdContext(cmd)
	start := time.Now()

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := prepareInputs(cfg); err != nil {
		return err
	}

	runner := &gnuplot.Runner{
		Binary:  cfg.Gnuplot.Binary,
		Timeout: cfg.Gnuplot.Timeout,
	}
	if err := runner.Run(ctx, cfg.WorkDir, cfg.Files.Script); err != nil {
		return err
	}

	report, err := collectReport(cfg, configPath)
	if err != nil {
		return err
	}
	report.Metadata.Duration = time.Since(start)

	if opts.Check {
		set := &dataset.SampleSet{X: cfg.Samples.X, Y: cfg.Samples.Y}
		result, err := check.Compare(set, &report.Fit, cfg.Check.Tolerance)
		if err != nil {
			return fmt.Errorf("cross-check failed: %w", err)
		}
		report.Check = result
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

	// Send webhooks (errors logged but don't fail the run)
	sendWebhooks(ctx, cfg, opts, report)

	if report.HasCheckIssue() {
		ExitCode = 1
	}

	return nil
}

// sendWebhooks sends the report to all configured webhooks.
// Errors are logged to stderr but don't fail the run.
func sendWebhooks(ctx context.Context, cfg *config.Config, opts *RunOptions, report *output.Report) {
	// Collect webhooks from config and CLI
	webhooks := collectWebhooks(cfg, opts)

	if len(webhooks) == 0 {
		return
	}

	client := webhook.NewClient()

	for _, wh := range webhooks {
		// Check trigger condition
		if !shouldFireWebhook(wh.Trigger, report.HasCheckIssue()) {
			continue
		}

		resp := client.Send(ctx, report, webhook.SendOptions{
			URL:     wh.URL,
			Token:   wh.Token,
			Timeout: wh.Timeout,
		})

		// Log result
		name := wh.Name
		if name == "" {
			name = wh.URL
		}

		if resp.Success() {
			fmt.Fprintf(os.Stderr, "Webhook %s: sent (%d, %s)\n", name, resp.StatusCode, resp.Duration)
		} else {
			fmt.Fprintf(os.Stderr, "Webhook %s: failed (%v)\n", name, resp.Error)
		}
	}
}

// collectWebhooks merges config file webhooks with the CLI webhook.
func collectWebhooks(cfg *config.Config, opts *RunOptions) []config.WebhookConfig {
	webhooks := make([]config.WebhookConfig, 0, len(cfg.Webhooks)+1)

	// Add config file webhooks
	webhooks = append(webhooks, cfg.Webhooks...)

	// Add CLI webhook if specified
	if opts.WebhookURL != "" {
		trigger := config.WebhookTrigger(opts.WebhookTrigger)
		if trigger == "" {
			trigger = config.WebhookTriggerAlways
		}

		webhooks = append(webhooks, config.WebhookConfig{
			Name:    "cli",
			URL:     opts.WebhookURL,
			Token:   opts.WebhookToken,
			Trigger: trigger,
			Timeout: config.DefaultWebhookTimeout,
		})
	}

	return webhooks
}

// shouldFireWebhook determines if a webhook should fire based on trigger
// and the cross-check outcome.
func shouldFireWebhook(trigger config.WebhookTrigger, hasIssue bool) bool {
	switch trigger {
	case config.WebhookTriggerAlways:
		return true
	case config.WebhookTriggerOnSuccess:
		return !hasIssue
	case config.WebhookTriggerNever:
		return false
	default:
		return true
	}
}
