// Package config provides configuration loading and validation for gnufit.
package config

import (
	"path/filepath"
	"time"
)

// Config is the root configuration structure loaded from YAML.
type Config struct {
	Samples  SamplesConfig   `yaml:"samples"`
	WorkDir  string          `yaml:"workdir,omitempty"`
	Files    FilesConfig     `yaml:"files,omitempty"`
	Gnuplot  GnuplotConfig   `yaml:"gnuplot,omitempty"`
	Check    CheckConfig     `yaml:"check,omitempty"`
	Webhooks []WebhookConfig `yaml:"webhooks,omitempty"`
}

// SamplesConfig holds the literal sample lists to fit.
type SamplesConfig struct {
	// X is the ordered list of x values.
	X []float64 `yaml:"x"`

	// Y is the ordered list of y values. Must have the same length as X.
	Y []float64 `yaml:"y"`
}

// FilesConfig names the files exchanged with gnuplot, relative to WorkDir.
type FilesConfig struct {
	// Data is the two-column sample data file.
	Data string `yaml:"data,omitempty"`

	// Script is the gnuplot fit script.
	Script string `yaml:"script,omitempty"`

	// Log is the fit log gnuplot writes, read back for the coefficients.
	Log string `yaml:"log,omitempty"`
}

// GnuplotConfig controls how the external gnuplot process is invoked.
type GnuplotConfig struct {
	// Binary is the gnuplot executable name or path.
	Binary string `yaml:"binary,omitempty"`

	// Timeout bounds a single gnuplot invocation.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// CheckConfig controls the local least-squares cross-check.
type CheckConfig struct {
	// Tolerance is the maximum absolute difference allowed between a
	// coefficient extracted from the fit log and the locally computed one.
	Tolerance float64 `yaml:"tolerance,omitempty"`
}

// WebhookTrigger determines when a webhook fires.
type WebhookTrigger string

const (
	// WebhookTriggerAlways fires after every run (default).
	WebhookTriggerAlways WebhookTrigger = "always"
	// WebhookTriggerOnSuccess fires only when the fit completed.
	WebhookTriggerOnSuccess WebhookTrigger = "on_success"
	// WebhookTriggerNever disables the webhook.
	WebhookTriggerNever WebhookTrigger = "never"
)

// WebhookConfig defines a webhook endpoint for sending fit reports.
type WebhookConfig struct {
	// Name is an optional identifier for the webhook.
	Name string `yaml:"name,omitempty"`

	// URL is the webhook endpoint (required).
	URL string `yaml:"url"`

	// Token is an optional bearer token for authentication.
	Token string `yaml:"token,omitempty"`

	// Trigger determines when the webhook fires.
	// Defaults to "always" if not specified.
	Trigger WebhookTrigger `yaml:"trigger,omitempty"`

	// Timeout is the HTTP request timeout.
	// Defaults to 10s if not specified.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// DataPath returns the data file path joined with the work directory.
func (c *Config) DataPath() string { return filepath.Join(c.WorkDir, c.Files.Data) }

// ScriptPath returns the script file path joined with the work directory.
func (c *Config) ScriptPath() string { return filepath.Join(c.WorkDir, c.Files.Script) }

// LogPath returns the fit log path joined with the work directory.
func (c *Config) LogPath() string { return filepath.Join(c.WorkDir, c.Files.Log) }
