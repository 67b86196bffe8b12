package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fitwrap/gnufit/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a gnufit configuration file without touching gnuplot.

Checks:
  - YAML syntax
  - Required fields
  - Sample list lengths
  - File name collisions
  - Webhook URLs and triggers
  - Work directory and fit log existence (warning only)`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmdContext(cmd)

	fmt.Printf("Validating %s...\n", configPath)

	// Load and validate config
	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	// Report what we found
	fmt.Printf("\nConfiguration valid!\n")
	fmt.Printf("  Samples:  %d pair(s)\n", len(cfg.Samples.X))
	fmt.Printf("  Work dir: %s\n", cfg.WorkDir)
	fmt.Printf("  Gnuplot:  %s (timeout %s)\n", cfg.Gnuplot.Binary, cfg.Gnuplot.Timeout)

	fmt.Printf("\nFiles:\n")
	fmt.Printf("  data:   %s\n", cfg.DataPath())
	fmt.Printf("  script: %s\n", cfg.ScriptPath())
	fmt.Printf("  log:    %s\n", cfg.LogPath())

	if len(cfg.Webhooks) > 0 {
		fmt.Printf("\nWebhooks:\n")
		for i, wh := range cfg.Webhooks {
			name := wh.Name
			if name == "" {
				name = wh.URL
			}
			fmt.Printf("  %d. %s (trigger: %s)\n", i+1, name, wh.Trigger)
		}
	}

	// Check the work directory state (warnings only)
	if _, err := os.Stat(cfg.WorkDir); os.IsNotExist(err) {
		fmt.Printf("\nWarning: Work directory does not exist yet (prepare will create it)\n")
	} else if _, err := os.Stat(cfg.LogPath()); os.IsNotExist(err) {
		fmt.Printf("\nWarning: No fit log yet; 'collect' needs a completed gnuplot run\n")
	}

	return nil
}
