package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeConfig(t, `
samples:
  x: [0, 1, 2, 3]
  y: [1.1, 2.9, 5.2, 7.0]
workdir: /tmp/fit
gnuplot:
  binary: gnuplot5
  timeout: 30s
`)

	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cfg.Samples.X) != 4 {
		t.Errorf("Got %d x values, want 4", len(cfg.Samples.X))
	}
	if cfg.WorkDir != "/tmp/fit" {
		t.Errorf("WorkDir = %q, want /tmp/fit", cfg.WorkDir)
	}
	if cfg.Gnuplot.Binary != "gnuplot5" {
		t.Errorf("Binary = %q, want gnuplot5", cfg.Gnuplot.Binary)
	}
	if cfg.Gnuplot.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Gnuplot.Timeout)
	}

	// Defaults fill the rest
	if cfg.Files.Data != DefaultDataFile {
		t.Errorf("Files.Data = %q, want default %q", cfg.Files.Data, DefaultDataFile)
	}
	if cfg.Check.Tolerance != DefaultTolerance {
		t.Errorf("Tolerance = %v, want default %v", cfg.Check.Tolerance, DefaultTolerance)
	}
}

func TestLoad_PathHelpers(t *testing.T) {
	path := writeConfig(t, `
samples:
  x: [1]
  y: [2]
workdir: /work
`)

	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := cfg.DataPath(); got != filepath.Join("/work", DefaultDataFile) {
		t.Errorf("DataPath() = %q", got)
	}
	if got := cfg.ScriptPath(); got != filepath.Join("/work", DefaultScriptFile) {
		t.Errorf("ScriptPath() = %q", got)
	}
	if got := cfg.LogPath(); got != filepath.Join("/work", DefaultLogFile) {
		t.Errorf("LogPath() = %q", got)
	}
}

func TestLoad_InvalidConfigs(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{
			name:    "no samples",
			content: "workdir: .\n",
			wantMsg: "at least one (x, y) pair",
		},
		{
			name: "length mismatch",
			content: `
samples:
  x: [1, 2]
  y: [1]
`,
			wantMsg: "x has 2 values but y has 1",
		},
		{
			name: "duplicate file names",
			content: `
samples:
  x: [1]
  y: [2]
files:
  data: out.txt
  script: out.txt
`,
			wantMsg: "both name",
		},
		{
			name: "negative tolerance",
			content: `
samples:
  x: [1]
  y: [2]
check:
  tolerance: -0.5
`,
			wantMsg: "tolerance must not be negative",
		},
		{
			name: "bad webhook scheme",
			content: `
samples:
  x: [1]
  y: [2]
webhooks:
  - url: ftp://example.com/hook
`,
			wantMsg: "scheme must be http or https",
		},
		{
			name: "bad webhook trigger",
			content: `
samples:
  x: [1]
  y: [2]
webhooks:
  - url: https://example.com/hook
    trigger: sometimes
`,
			wantMsg: "invalid trigger",
		},
		{
			name:    "bad yaml",
			content: "samples: [not a map",
			wantMsg: "parsing config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := Load(context.Background(), path)
			if err == nil {
				t.Fatal("Load() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Load() error = %v, want it to contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvGnuplotBinary, "/opt/gnuplot/bin/gnuplot")

	path := writeConfig(t, `
samples:
  x: [1]
  y: [2]
`)

	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Gnuplot.Binary != "/opt/gnuplot/bin/gnuplot" {
		t.Errorf("Binary = %q, want env override", cfg.Gnuplot.Binary)
	}
}

func TestLoad_WebhookTokenExpansion(t *testing.T) {
	t.Setenv("HOOK_TOKEN", "secret123")

	path := writeConfig(t, `
samples:
  x: [1]
  y: [2]
webhooks:
  - url: https://example.com/hook
    token: ${HOOK_TOKEN}
`)

	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Webhooks[0].Token != "secret123" {
		t.Errorf("Token = %q, want expanded value", cfg.Webhooks[0].Token)
	}
	if cfg.Webhooks[0].Trigger != WebhookTriggerAlways {
		t.Errorf("Trigger = %q, want default always", cfg.Webhooks[0].Trigger)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Load() succeeded on missing file")
	}
}
