// Package dataset provides the sample set fitted by gnuplot and its
// two-column data file representation.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ErrEmptySampleSet is returned when a sample set has no points.
var ErrEmptySampleSet = errors.New("sample set is empty")

// ErrLengthMismatch is returned when x and y have different lengths.
var ErrLengthMismatch = errors.New("x and y lengths differ")

// SampleSet is an ordered sequence of paired (x, y) samples.
type SampleSet struct {
	X []float64
	Y []float64
}

// Len returns the number of samples.
func (s *SampleSet) Len() int {
	return len(s.X)
}

// Validate checks the sample set preconditions: equal x and y lengths,
// at least one point. Violations fail fast; samples are never truncated
// to the shorter column.
func (s *SampleSet) Validate() error {
	if len(s.X) != len(s.Y) {
		return fmt.Errorf("%w: %d x values, %d y values", ErrLengthMismatch, len(s.X), len(s.Y))
	}
	if len(s.X) == 0 {
		return ErrEmptySampleSet
	}
	return nil
}

// WriteFile writes the sample set to path as whitespace-delimited text,
// one "x y" pair per line, no header. Floats are formatted with the
// shortest representation that parses back exactly, so writing the same
// set twice produces byte-identical files.
func (s *SampleSet) WriteFile(path string) error {
	if err := s.Validate(); err != nil {
		return err
	}

	var sb strings.Builder
	for i := range s.X {
		sb.WriteString(strconv.FormatFloat(s.X[i], 'g', -1, 64))
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatFloat(s.Y[i], 'g', -1, 64))
		sb.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil { // #nosec G306 -- data file is not sensitive
		return fmt.Errorf("writing data file %s: %w", path, err)
	}

	return nil
}

// ReadFile reads a two-column data file back into a SampleSet.
// Blank lines are skipped; anything else that is not two float columns
// is an error.
func ReadFile(path string) (*SampleSet, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening data file %s: %w", path, err)
	}
	defer f.Close()

	set := &SampleSet{}
	scanner := bufio.NewScanner(f)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%s:%d: expected 2 columns, got %d", path, lineNum, len(fields))
		}

		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: parsing x: %w", path, lineNum, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: parsing y: %w", path, lineNum, err)
		}

		set.X = append(set.X, x)
		set.Y = append(set.Y, y)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading data file %s: %w", path, err)
	}

	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("data file %s: %w", path, err)
	}

	return set, nil
}
