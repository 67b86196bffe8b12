package fitlog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Read scans a fit log for the result section and extracts the fitted
// coefficients. The first line starting with Marker opens the section;
// the coefficient lines sit exactly two and three lines below it (gnuplot
// prints one separator line between the marker and the values). The first
// coefficient line yields the slope, the second the intercept.
//
// Extraction is all-or-nothing: on any error no partial result is returned.
// The whole document is scanned before ErrMarkerNotFound is reported.
func Read(r io.Reader) (*FitResult, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	markerIdx := -1
	for i, line := range lines {
		if strings.HasPrefix(line, Marker) {
			markerIdx = i
			break
		}
	}
	if markerIdx == -1 {
		return nil, ErrMarkerNotFound
	}

	slopeIdx := markerIdx + 2
	interceptIdx := markerIdx + 3
	if interceptIdx >= len(lines) {
		return nil, fmt.Errorf("%w: log ends %d line(s) after marker, need 3",
			ErrMalformedCoefficient, len(lines)-1-markerIdx)
	}

	slope, err := parseCoefficient(lines[slopeIdx], slopeIdx+1)
	if err != nil {
		return nil, err
	}
	intercept, err := parseCoefficient(lines[interceptIdx], interceptIdx+1)
	if err != nil {
		return nil, err
	}

	return &FitResult{Slope: slope, Intercept: intercept}, nil
}

// ReadFile reads a fit log from disk.
func ReadFile(path string) (*FitResult, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening fit log %s: %w", path, err)
	}
	defer f.Close()

	result, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("parsing fit log %s: %w", path, err)
	}
	return result, nil
}

// parseCoefficient extracts the value from a "name = value ..." line:
// split on "=", take the right-hand side, and parse its first
// whitespace-separated token as a float.
func parseCoefficient(line string, lineNum int) (float64, error) {
	parts := strings.SplitN(line, "=", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: line %d has no \"=\": %q", ErrMalformedCoefficient, lineNum, line)
	}

	fields := strings.Fields(parts[1])
	if len(fields) == 0 {
		return 0, fmt.Errorf("%w: line %d has no value after \"=\": %q", ErrMalformedCoefficient, lineNum, line)
	}

	value, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: parsing %q: %v", ErrMalformedCoefficient, lineNum, fields[0], err)
	}

	return value, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // 1MB max line size
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading fit log: %w", err)
	}
	return lines, nil
}
