// Package candidates collects the list of things to pick from.
package candidates

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// maxLineSize bounds a single candidate line read from standard input
const maxLineSize = 1024 * 1024

var (
	// ErrConflictingSources is returned when both stdin and arguments were given
	ErrConflictingSources = errors.New("reading from standard input, but extra arguments provided")

	// ErrNoCandidates is returned when there is nothing to pick from
	ErrNoCandidates = errors.New("nothing from which to pick")
)

// Load returns the candidates in their original order. With fromStdin the
// lines of r are used, otherwise args.
func Load(args []string, fromStdin bool, r io.Reader) ([]string, error) {
	if !fromStdin {
		if len(args) == 0 {
			return nil, ErrNoCandidates
		}
		return append([]string(nil), args...), nil
	}

	if len(args) > 0 {
		return nil, ErrConflictingSources
	}

	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrNoCandidates
	}
	return lines, nil
}

// readLines reads non-empty lines, dropping the line terminator
func readLines(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read standard input: %w", err)
	}

	return lines, nil
}
