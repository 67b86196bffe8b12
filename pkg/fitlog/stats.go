package fitlog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Diagnostic lines gnuplot writes above the result section. Matching is
// best-effort: a missing line leaves the corresponding Stats field zero.
const (
	convergedSuffix = " iterations the fit converged."
	ssrLabel        = "final sum of squares of residuals"
	rmsLabel        = "rms of residuals"
)

// ReadStats scans a fit log for gnuplot's fit diagnostics. Unlike Read,
// absence of any (or all) diagnostic lines is not an error.
func ReadStats(r io.Reader) (*Stats, error) {
	stats := &Stats{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, "After ") && strings.HasSuffix(line, convergedSuffix) {
			raw := strings.TrimSuffix(strings.TrimPrefix(line, "After "), convergedSuffix)
			if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
				stats.Iterations = n
			}
			continue
		}

		if strings.HasPrefix(line, ssrLabel) {
			if v, ok := trailingValue(line); ok {
				stats.SumSquaredResiduals = v
			}
			continue
		}

		if strings.HasPrefix(line, rmsLabel) {
			if v, ok := trailingValue(line); ok {
				stats.RMSResiduals = v
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading fit log: %w", err)
	}

	return stats, nil
}

// ReadStatsFile reads fit diagnostics from a log file on disk.
func ReadStatsFile(path string) (*Stats, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening fit log %s: %w", path, err)
	}
	defer f.Close()

	return ReadStats(f)
}

// trailingValue parses the float after the last ":" on a diagnostic line.
func trailingValue(line string) (float64, bool) {
	idx := strings.LastIndex(line, ":")
	if idx == -1 {
		return 0, false
	}
	fields := strings.Fields(line[idx+1:])
	if len(fields) == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
