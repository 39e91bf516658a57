package solve

import "fmt"

// Solver is one solving step ("part") of a Solution: a pure function from
// the shared processed input to an Answer or a taxonomy error.
type Solver func(in Input) (Answer, error)

// Preprocessor turns raw puzzle text into the Input shared by every part.
type Preprocessor func(text string) (Input, error)

// Solution is an immutable descriptor binding a puzzle day to an optional
// preprocessing step and an ordered list of parts. Solutions are built once
// as static configuration and never mutated.
type Solution struct {
	// Day is the puzzle day identifier within its year.
	Day int

	// Name is the puzzle's display name.
	Name string

	// Preprocess, when non-nil, runs exactly once per Run regardless of
	// how many parts exist. When nil, the raw text itself is the Input.
	Preprocess Preprocessor

	// Parts are invoked in declared order against the same Input.
	Parts []Solver
}

// Outcome is one part's independent result: an Answer or an error, never
// both.
type Outcome struct {
	Answer Answer
	Err    error
}

// Failed reports whether the part produced an error instead of an answer.
func (o Outcome) Failed() bool { return o.Err != nil }

// Title renders the conventional "Day N: Name" heading.
func (s *Solution) Title() string {
	return fmt.Sprintf("Day %d: %s", s.Day, s.Name)
}

// Run executes the Solution against raw text: preprocess once (parse
// failures surfacing as ErrInvalidInput), then invoke each part in order
// against the same Input. The returned slice holds one Outcome per part in
// declaration order; a later part's failure never discards or suppresses an
// earlier part's answer. Run itself errors only when preprocessing fails,
// since then there is no meaningful input to hand any part.
func (s *Solution) Run(text string) ([]Outcome, error) {
	in := TextInput(text)
	if s.Preprocess != nil {
		var err error
		if in, err = s.Preprocess(text); err != nil {
			return nil, coerce(err)
		}
	}

	outs := make([]Outcome, len(s.Parts))
	for i, part := range s.Parts {
		ans, err := part(in)
		if err != nil {
			outs[i] = Outcome{Err: coerce(err)}
			continue
		}
		outs[i] = Outcome{Answer: ans}
	}

	return outs, nil
}
