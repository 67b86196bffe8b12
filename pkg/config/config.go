package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if err := validateSamples(&cfg.Samples); err != nil {
		return fmt.Errorf("samples: %w", err)
	}

	if err := validateFiles(&cfg.Files); err != nil {
		return fmt.Errorf("files: %w", err)
	}

	if cfg.Gnuplot.Binary == "" {
		return errors.New("gnuplot: binary is required")
	}
	if cfg.Gnuplot.Timeout <= 0 {
		cfg.Gnuplot.Timeout = DefaultGnuplotTimeout
	}

	if cfg.Check.Tolerance < 0 {
		return errors.New("check: tolerance must not be negative")
	}
	if cfg.Check.Tolerance == 0 {
		cfg.Check.Tolerance = DefaultTolerance
	}

	// Webhooks are optional, but validate if present
	for i := range cfg.Webhooks {
		if err := validateWebhook(&cfg.Webhooks[i]); err != nil {
			name := cfg.Webhooks[i].Name
			if name == "" {
				name = cfg.Webhooks[i].URL
			}
			return fmt.Errorf("webhooks[%d] (%s): %w", i, name, err)
		}
	}

	return nil
}

func validateSamples(s *SamplesConfig) error {
	if len(s.X) != len(s.Y) {
		return fmt.Errorf("x has %d values but y has %d", len(s.X), len(s.Y))
	}
	if len(s.X) == 0 {
		return errors.New("at least one (x, y) pair is required")
	}
	return nil
}

func validateFiles(f *FilesConfig) error {
	names := map[string]string{
		"data":   f.Data,
		"script": f.Script,
		"log":    f.Log,
	}
	seen := make(map[string]string, len(names))
	for field, name := range names {
		if name == "" {
			return fmt.Errorf("%s is required", field)
		}
		if other, ok := seen[name]; ok {
			return fmt.Errorf("%s and %s both name %q", other, field, name)
		}
		seen[name] = field
	}
	return nil
}

func validateWebhook(wh *WebhookConfig) error {
	if wh.URL == "" {
		return errors.New("url is required")
	}

	u, err := url.Parse(wh.URL)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url scheme must be http or https, got %q", u.Scheme)
	}

	if u.Host == "" {
		return errors.New("url must have a host")
	}

	// Expand environment variables in token
	wh.Token = expandEnvVar(wh.Token)

	// Validate trigger if specified
	if wh.Trigger != "" {
		switch wh.Trigger {
		case WebhookTriggerAlways, WebhookTriggerOnSuccess, WebhookTriggerNever:
			// Valid
		default:
			return fmt.Errorf("invalid trigger %q (must be always, on_success, or never)", wh.Trigger)
		}
	} else {
		wh.Trigger = WebhookTriggerAlways
	}

	if wh.Timeout <= 0 {
		wh.Timeout = DefaultWebhookTimeout
	}

	return nil
}

// expandEnvVar expands environment variables in the format ${VAR} or $VAR.
func expandEnvVar(s string) string {
	if s == "" {
		return s
	}

	// Handle ${VAR} format
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		varName := s[2 : len(s)-1]
		return os.Getenv(varName)
	}

	// Handle $VAR format (no braces)
	if strings.HasPrefix(s, "$") && !strings.HasPrefix(s, "${") {
		varName := s[1:]
		return os.Getenv(varName)
	}

	return s
}
