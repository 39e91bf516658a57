package solve

import (
	"fmt"
	"strings"
)

// Sections splits text on blank lines into exactly n sections. Any other
// section count is ErrInvalidInput; the sections keep their internal
// newlines.
func Sections(text string, n int) ([]string, error) {
	secs := strings.Split(strings.TrimSuffix(text, "\n"), "\n\n")
	if len(secs) != n {
		return nil, fmt.Errorf("%w: expected %d sections from the input, found %d", ErrInvalidInput, n, len(secs))
	}
	return secs, nil
}
