package gnuplot

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

func TestRunner_Run(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test uses a shell script as a stand-in binary")
	}

	dir := t.TempDir()
	// Stand-in for gnuplot: copies its argument to out.txt
	binary := filepath.Join(dir, "fake-gnuplot")
	script := "#!/bin/sh\necho \"ran $1\" > out.txt\n"
	if err := os.WriteFile(binary, []byte(script), 0755); err != nil {
		t.Fatal(err)
	}

	r := &Runner{Binary: binary, Timeout: 10 * time.Second}
	if err := r.Run(context.Background(), dir, "fit.gp"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	out, err := os.ReadFile(filepath.Join(dir, "out.txt"))
	if err != nil {
		t.Fatalf("Stand-in did not run in work dir: %v", err)
	}
	if string(out) != "ran fit.gp\n" {
		t.Errorf("Output = %q, want %q", out, "ran fit.gp\n")
	}
}

func TestRunner_Run_MissingBinary(t *testing.T) {
	r := &Runner{Binary: "definitely-not-gnuplot-xyz"}
	if err := r.Run(context.Background(), t.TempDir(), "fit.gp"); err == nil {
		t.Error("Run() succeeded with missing binary")
	}
}

func TestRunner_Run_Timeout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test uses a shell script as a stand-in binary")
	}

	dir := t.TempDir()
	// The sleep is a grandchild: the deadline kills sh, but sleep survives
	// it and keeps the inherited stdout pipe open. Run must still return
	// promptly instead of waiting out the full sleep.
	binary := filepath.Join(dir, "slow-gnuplot")
	if err := os.WriteFile(binary, []byte("#!/bin/sh\nsleep 5\n"), 0755); err != nil {
		t.Fatal(err)
	}

	r := &Runner{Binary: binary, Timeout: 50 * time.Millisecond}
	start := time.Now()
	err := r.Run(context.Background(), dir, "fit.gp")
	if err == nil {
		t.Fatal("Run() succeeded, want timeout error")
	}
	// 50ms deadline plus the one-second wait delay for abandoned pipes
	if elapsed := time.Since(start); elapsed > 3*time.Second {
		t.Errorf("Run() took %v, timeout not honored", elapsed)
	}
}
