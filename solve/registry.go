package solve

import (
	"fmt"
	"sort"
)

// key identifies one registered Solution.
type key struct {
	year, day int
}

// Registry is the composition root: a static table from (year, day) to
// Solution descriptors. It owns no other state; populate it once at process
// start, then look up and run.
type Registry struct {
	solutions map[key]*Solution
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{solutions: make(map[key]*Solution)}
}

// Register binds s to (year, s.Day). A nil solution or a day outside 1..366
// is rejected with ErrInvalidInput; binding an already-registered pair is
// rejected with ErrDuplicate.
func (r *Registry) Register(year int, s *Solution) error {
	if s == nil {
		return fmt.Errorf("%w: nil solution", ErrInvalidInput)
	}
	if s.Day < 1 || s.Day > 366 {
		return fmt.Errorf("%w: day %d out of range", ErrInvalidInput, s.Day)
	}
	k := key{year: year, day: s.Day}
	if _, ok := r.solutions[k]; ok {
		return fmt.Errorf("%w: year %d day %d", ErrDuplicate, year, s.Day)
	}
	r.solutions[k] = s

	return nil
}

// Lookup returns the Solution registered for (year, day), or ErrNotFound.
func (r *Registry) Lookup(year, day int) (*Solution, error) {
	s, ok := r.solutions[key{year: year, day: day}]
	if !ok {
		return nil, fmt.Errorf("%w: year %d day %d", ErrNotFound, year, day)
	}
	return s, nil
}

// Run looks up (year, day) and executes its Solution against text,
// returning the ordered per-part outcomes (see Solution.Run).
func (r *Registry) Run(year, day int, text string) ([]Outcome, error) {
	s, err := r.Lookup(year, day)
	if err != nil {
		return nil, err
	}
	return s.Run(text)
}

// Days lists the registered days of a year in ascending order.
func (r *Registry) Days(year int) []int {
	var days []int
	for k := range r.solutions {
		if k.year == year {
			days = append(days, k.day)
		}
	}
	sort.Ints(days)

	return days
}

// Titles lists the titles of a year's solutions in day order.
func (r *Registry) Titles(year int) []string {
	days := r.Days(year)
	titles := make([]string, 0, len(days))
	for _, d := range days {
		titles = append(titles, r.solutions[key{year: year, day: d}].Title())
	}
	return titles
}
