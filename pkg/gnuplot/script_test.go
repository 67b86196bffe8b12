package gnuplot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFitScript(t *testing.T) {
	script := FitScript("data.txt")

	lines := strings.Split(strings.TrimSuffix(script, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Got %d lines, want 2:\n%s", len(lines), script)
	}
	if lines[0] != "f(x) = a*x + b" {
		t.Errorf("Model line = %q", lines[0])
	}
	if lines[1] != "fit f(x) 'data.txt' using 1:2 via a, b" {
		t.Errorf("Fit line = %q", lines[1])
	}
}

func TestWriteScript_Idempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fit.gp")

	if err := WriteScript(path, "samples.dat"); err != nil {
		t.Fatalf("WriteScript() error = %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := WriteScript(path, "samples.dat"); err != nil {
		t.Fatalf("second WriteScript() error = %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if string(first) != string(second) {
		t.Error("Script files differ between writes")
	}
	if !strings.Contains(string(first), "'samples.dat'") {
		t.Errorf("Script does not reference data file:\n%s", first)
	}
}

func TestWriteScript_UnwritableDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "fit.gp")
	if err := WriteScript(path, "data.txt"); err == nil {
		t.Error("WriteScript() succeeded, want error")
	}
}
