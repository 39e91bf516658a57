package parse

import (
	"errors"
	"fmt"
)

// ErrParse is the sentinel matched by every parse failure produced by this
// package, so callers can classify failures with errors.Is(err, ErrParse)
// without inspecting the concrete *Error.
var ErrParse = errors.New("parse: cannot parse input")

// Error describes a failed parse: the byte offset within the original input
// at which the active parser gave up, and a human-readable description of
// what it expected to find there.
type Error struct {
	// Off is the absolute byte offset of the failure in the original input.
	Off int

	// Expected describes the token or construct the parser was looking for.
	Expected string
}

// Error renders the expectation and position.
func (e *Error) Error() string {
	return fmt.Sprintf("parse: expected %s at offset %d", e.Expected, e.Off)
}

// Is reports ErrParse as a match so sentinel checks work through wrapping.
func (e *Error) Is(target error) bool { return target == ErrParse }

// errf builds a positioned *Error at the current input offset.
func errf(in Input, format string, args ...any) error {
	return &Error{Off: in.Off, Expected: fmt.Sprintf(format, args...)}
}

// farther returns whichever of the two failures progressed deeper into the
// input; ties keep the earlier-declared failure. Non-*Error values are
// treated as position zero.
func farther(a, b error) error {
	if a == nil {
		return b
	}
	if offset(b) > offset(a) {
		return b
	}
	return a
}

// offset extracts the failure position from an error chain.
func offset(err error) int {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Off
	}
	return 0
}
