package parse

import (
	"fmt"
	"strings"
)

// Lines splits text into lines without the terminating newlines. A single
// trailing newline does not produce an empty final line, and empty text
// yields no lines at all. Carriage returns before a newline are dropped.
func Lines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Gather parses every line of a multi-line text independently with p,
// preserving line order. Each line must be consumed in full. The first
// failing line aborts the whole gather with that line's error; no partial
// results are returned.
func Gather[T any](p Parser[T], text string) ([]T, error) {
	lines := Lines(text)
	lineParser := All(p)
	out := make([]T, 0, len(lines))
	for i, line := range lines {
		v, err := Run(lineParser, line)
		if err != nil {
			return nil, fmt.Errorf("parse: line %d: %w", i+1, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// FromCSV parses a flat comma-separated list, one element per field, with
// surrounding whitespace per field allowed but nothing else left over.
// Like Gather it fails on the first bad element and returns no partial
// results.
func FromCSV[T any](p Parser[T], text string) ([]T, error) {
	fields := strings.Split(strings.TrimSuffix(text, "\n"), ",")
	trimmed := All(Trim(p, false))
	out := make([]T, 0, len(fields))
	for i, field := range fields {
		v, err := Run(trimmed, field)
		if err != nil {
			return nil, fmt.Errorf("parse: field %d: %w", i+1, err)
		}
		out = append(out, v)
	}
	return out, nil
}
