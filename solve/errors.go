package solve

import (
	"errors"
	"fmt"

	"github.com/solvent-go/solvent/parse"
)

// Sentinel errors forming the closed taxonomy every solver reports through.
var (
	// ErrInvalidInput indicates structurally invalid domain data after
	// successful tokenization (or a parse failure converted at the
	// dispatch boundary).
	ErrInvalidInput = errors.New("solve: invalid input")

	// ErrProcess indicates a solver reached a logically unsolvable or
	// inconsistent state.
	ErrProcess = errors.New("solve: error while processing")

	// ErrNotFound indicates the requested (year, day) has no registered
	// Solution.
	ErrNotFound = errors.New("solve: no solution registered")

	// ErrDuplicate indicates a second registration for a (year, day) pair.
	ErrDuplicate = errors.New("solve: solution already registered")
)

// ErrNoAnswer is the ErrProcess specialization reported when a solver
// exhausts its search space without producing an answer.
var ErrNoAnswer = fmt.Errorf("%w: no answer found", ErrProcess)

// coerce normalizes an error leaving the dispatch boundary: parse failures
// become ErrInvalidInput, taxonomy errors pass through untouched, and
// anything else is classified as ErrProcess so every reported failure
// carries exactly one kind.
func coerce(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrProcess), errors.Is(err, ErrNotFound):
		return err
	case errors.Is(err, parse.ErrParse):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	default:
		return fmt.Errorf("%w: %w", ErrProcess, err)
	}
}
