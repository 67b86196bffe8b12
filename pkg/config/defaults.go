package config

import (
	"os"
	"time"
)

// Default values for configuration.
const (
	DefaultWorkDir        = "."
	DefaultDataFile       = "data.txt"
	DefaultScriptFile     = "fit.gp"
	DefaultLogFile        = "fit.log"
	DefaultGnuplotBinary  = "gnuplot"
	DefaultGnuplotTimeout = 60 * time.Second
	DefaultTolerance      = 1e-6
	DefaultWebhookTimeout = 10 * time.Second
)

// Environment variable names.
const (
	EnvGnuplotBinary = "GNUFIT_GNUPLOT"
	EnvWorkDir       = "GNUFIT_WORKDIR"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		WorkDir: DefaultWorkDir,
		Files: FilesConfig{
			Data:   DefaultDataFile,
			Script: DefaultScriptFile,
			Log:    DefaultLogFile,
		},
		Gnuplot: GnuplotConfig{
			Binary:  DefaultGnuplotBinary,
			Timeout: DefaultGnuplotTimeout,
		},
		Check: CheckConfig{
			Tolerance: DefaultTolerance,
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if binary := os.Getenv(EnvGnuplotBinary); binary != "" {
		c.Gnuplot.Binary = binary
	}
	if dir := os.Getenv(EnvWorkDir); dir != "" {
		c.WorkDir = dir
	}
}
