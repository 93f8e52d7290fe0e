package parser

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineSize bounds a single line; array literals can be long.
const maxLineSize = 1 << 20

// FindMarkerValue scans r line by line and returns the assigned value of the
// first line that contains marker.
//
// The value is the text after the first "=" on that line, up to the next "="
// if any, with surrounding whitespace removed. For the line
// "arr=[1, 2, 3]" and marker "arr=" the result is "[1, 2, 3]".
func FindMarkerValue(r io.Reader, marker string) (string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if !strings.Contains(line, marker) {
			continue
		}
		value, ok := assignedValue(line)
		if !ok {
			return "", fmt.Errorf("line %d has no assignment: %w", lineNum, ErrInvalidLiteral)
		}
		return value, nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}

	return "", fmt.Errorf("%w: no line contains %q", ErrMarkerNotFound, marker)
}

// assignedValue returns the second "="-separated field of line, trimmed.
func assignedValue(line string) (string, bool) {
	_, rest, ok := strings.Cut(line, "=")
	if !ok {
		return "", false
	}
	if value, _, found := strings.Cut(rest, "="); found {
		rest = value
	}
	return strings.TrimSpace(rest), true
}
