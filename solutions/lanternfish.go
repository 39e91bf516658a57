package solutions

import (
	"fmt"

	"github.com/solvent-go/solvent/evolve"
	"github.com/solvent-go/solvent/parse"
	"github.com/solvent-go/solvent/solve"
)

const (
	// resetTimer is the spawn timer a fish restarts at after spawning.
	resetTimer = 6
	// newTimer is the spawn timer a newborn fish starts at.
	newTimer = 8
)

// School is a lanternfish population bucketed by spawn timer, evolving one
// day per generation. Bucketing keeps the exponential population linear in
// state: nine counters instead of one entry per fish.
type School struct {
	counts [newTimer + 1]uint64
}

// NewSchool buckets the given spawn timers into a School. Timers beyond
// newTimer are rejected with solve.ErrInvalidInput.
func NewSchool(timers []uint8) (*School, error) {
	s := &School{}
	for _, t := range timers {
		if int(t) > newTimer {
			return nil, fmt.Errorf("%w: spawn timer %d out of range 0..%d", solve.ErrInvalidInput, t, newTimer)
		}
		s.counts[t]++
	}
	return s, nil
}

// Population returns the total number of fish across all buckets.
func (s *School) Population() uint64 {
	var total uint64
	for _, n := range s.counts {
		total += n
	}
	return total
}

// NewGeneration allocates an empty same-shape school for the next day.
func (s *School) NewGeneration() *School { return &School{} }

// Set stores the computed count for one timer bucket.
func (s *School) Set(timer int, n uint64) { s.counts[timer] = n }

// NextCell computes one bucket of the next day: every timer shifts down,
// spawning fish restart at resetTimer and their offspring enter at
// newTimer.
func (s *School) NextCell(timer int) uint64 {
	switch timer {
	case newTimer:
		return s.counts[0]
	case resetTimer:
		return s.counts[resetTimer+1] + s.counts[0]
	default:
		return s.counts[timer+1]
	}
}

// NextPoints enumerates every timer bucket; the domain is always the full
// 0..newTimer range.
func (s *School) NextPoints() []int {
	timers := make([]int, newTimer+1)
	for i := range timers {
		timers[i] = i
	}
	return timers
}

// Evolutions derives the school's day-by-day generation sequence.
func (s *School) Evolutions() *evolve.Sequence[*School, int, uint64] {
	return evolve.NewSequence[*School, int, uint64](s)
}

// Lanternfish solves 2021 day 6: simulate exponential lanternfish growth
// for 80 and 256 days.
var Lanternfish = &solve.Solution{
	Day:  6,
	Name: "Lanternfish",
	Preprocess: func(text string) (solve.Input, error) {
		timers, err := parse.FromCSV(parse.Uint[uint8](), text)
		if err != nil {
			return solve.Input{}, err
		}
		school, err := NewSchool(timers)
		if err != nil {
			return solve.Input{}, err
		}
		return solve.DataInput(school), nil
	},
	Parts: []solve.Solver{
		populationAfter(80),
		populationAfter(256),
	},
}

// populationAfter advances the school's evolution sequence by days and
// reports the resulting population. Each part derives its own sequence
// from the shared initial school, which is never mutated.
func populationAfter(days int) solve.Solver {
	return func(in solve.Input) (solve.Answer, error) {
		school, err := solve.Data[*School](in)
		if err != nil {
			return solve.Answer{}, err
		}
		last, err := school.Evolutions().Advance(days)
		if err != nil {
			return solve.Answer{}, err
		}
		return solve.Unsigned(last.Population()), nil
	}
}
