package gnuplot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	log "github.com/sirupsen/logrus"
)

// Runner invokes the gnuplot executable on a fit script.
// The process runs in the work directory, where gnuplot writes its fit log.
type Runner struct {
	// Binary is the gnuplot executable name or path.
	Binary string

	// Timeout bounds a single invocation. Zero means no timeout.
	Timeout time.Duration
}

// Run executes the fit script in workDir and waits for completion.
// gnuplot's own output is logged at debug level; the fit log it writes
// on disk is the authoritative output, read separately by the caller.
func (r *Runner) Run(ctx context.Context, workDir, scriptFile string) error {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.Binary, scriptFile) // #nosec G204 -- binary comes from validated config
	cmd.Dir = workDir
	// Gnuplot may spawn children that inherit the output pipes; without a
	// wait delay, Wait blocks on them long after the context killed gnuplot.
	cmd.WaitDelay = time.Second

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	logger := log.WithFields(log.Fields{
		"binary": r.Binary,
		"script": scriptFile,
		"dir":    workDir,
	})
	logger.Info("running gnuplot")

	start := time.Now()
	err := cmd.Run()
	duration := time.Since(start)

	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			logger.WithField("timeout", r.Timeout).Error("gnuplot timed out")
			return fmt.Errorf("gnuplot timed out after %v", r.Timeout)
		}
		logger.WithError(err).WithField("output", output.String()).Error("gnuplot failed")
		return fmt.Errorf("running gnuplot: %w", err)
	}

	logger.WithField("duration", duration).Debug("gnuplot finished")
	if output.Len() > 0 {
		logger.WithField("output", output.String()).Debug("gnuplot output")
	}

	return nil
}
