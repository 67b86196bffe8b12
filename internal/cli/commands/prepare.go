package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fitwrap/gnufit/pkg/config"
	"github.com/fitwrap/gnufit/pkg/dataset"
	"github.com/fitwrap/gnufit/pkg/gnuplot"
)

// NewPrepareCommand creates the prepare command.
func NewPrepareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "prepare <config-file>",
		Short: "Write gnuplot input files for a fit",
		Long: `Write the gnuplot input files into the work directory:

  - a two-column data file with one (x, y) pair per line
  - a two-line fit script declaring f(x) = a*x + b

Re-running prepare with the same configuration produces byte-identical
files. Run gnuplot yourself afterwards, or use 'gnufit run' to do the
whole pipeline in one step.`,
		Args: cobra.ExactArgs(1),
		RunE: runPrepare,
	}
}

func runPrepare(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmdContext(cmd)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := prepareInputs(cfg); err != nil {
		return err
	}

	fmt.Printf("Wrote %s (%d samples)\n", cfg.DataPath(), len(cfg.Samples.X))
	fmt.Printf("Wrote %s\n", cfg.ScriptPath())

	return nil
}

// prepareInputs validates the samples and writes the data and script files
// into the work directory.
func prepareInputs(cfg *config.Config) error {
	set := &dataset.SampleSet{X: cfg.Samples.X, Y: cfg.Samples.Y}
	if err := set.Validate(); err != nil {
		return fmt.Errorf("invalid samples: %w", err)
	}

	if err := os.MkdirAll(cfg.WorkDir, 0755); err != nil { // #nosec G301 -- work dir holds non-sensitive fit files
		return fmt.Errorf("creating work directory: %w", err)
	}

	if err := set.WriteFile(cfg.DataPath()); err != nil {
		return err
	}

	// The script references the data file by its bare name: gnuplot runs
	// with the work directory as its working directory.
	if err := gnuplot.WriteScript(cfg.ScriptPath(), cfg.Files.Data); err != nil {
		return err
	}

	return nil
}
