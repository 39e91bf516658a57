package evolve

import (
	"fmt"

	"github.com/solvent-go/solvent/solve"
)

// ErrEmptyDomain indicates NextPoints yielded no points, leaving nothing
// to compute for the next generation.
var ErrEmptyDomain = fmt.Errorf("evolve: next generation has an empty point domain: %w", solve.ErrProcess)

// Evolver is the capability of a structure that evolves in discrete
// steps. E is the implementing type itself, P addresses a single cell and
// V is the cell value type.
//
// NextCell must depend only on the receiver's (current) state, never on
// the generation under construction.
type Evolver[E, P, V any] interface {
	// NewGeneration allocates a structure of the same shape and domain as
	// the receiver with unspecified (zero) contents, used as the blank
	// next generation.
	NewGeneration() E

	// Set stores a computed value into the generation under construction.
	Set(p P, v V)

	// NextCell returns the value the addressed cell takes in the next
	// generation, as a pure function of the current generation.
	NextCell(p P) V

	// NextPoints enumerates the cells that must be computed for the next
	// generation. Sparse or open domains may enumerate a subset.
	NextPoints() []P
}

// Sequence is a pull-driven, forward-only stream of generations. The zero
// value is not useful; derive one with NewSequence.
type Sequence[E Evolver[E, P, V], P, V any] struct {
	current E
	index   int
}

// NewSequence derives a sequence whose generation zero is initial. The
// first Next call produces generation one.
func NewSequence[E Evolver[E, P, V], P, V any](initial E) *Sequence[E, P, V] {
	return &Sequence[E, P, V]{current: initial}
}

// Current returns the most recent generation. It must be treated as
// immutable once a later generation has been pulled.
func (s *Sequence[E, P, V]) Current() E { return s.current }

// Index returns the position of the current generation in the sequence,
// starting at zero for the initial structure.
func (s *Sequence[E, P, V]) Index() int { return s.index }

// Next computes and returns the following generation: allocate a blank
// same-shape structure, fill every NextPoints cell from NextCell, and make
// the result current. The superseded generation is left untouched for
// whoever still references it. Fails with ErrEmptyDomain when there is
// nothing to compute.
func (s *Sequence[E, P, V]) Next() (E, error) {
	points := s.current.NextPoints()
	if len(points) == 0 {
		var zero E
		return zero, ErrEmptyDomain
	}

	next := s.current.NewGeneration()
	for _, p := range points {
		next.Set(p, s.current.NextCell(p))
	}
	s.current = next
	s.index++

	return next, nil
}

// Advance pulls n generations and returns the last one. Advancing by zero
// returns the current generation unchanged.
func (s *Sequence[E, P, V]) Advance(n int) (E, error) {
	for i := 0; i < n; i++ {
		if _, err := s.Next(); err != nil {
			var zero E
			return zero, err
		}
	}
	return s.current, nil
}
