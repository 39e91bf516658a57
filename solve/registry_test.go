package solve_test

import (
	"testing"

	"github.com/solvent-go/solvent/solve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoSolution returns a minimal one-part solution for registry fixtures.
func echoSolution(day int, name string) *solve.Solution {
	return &solve.Solution{
		Day:  day,
		Name: name,
		Parts: []solve.Solver{
			func(in solve.Input) (solve.Answer, error) {
				text, err := in.Text()
				if err != nil {
					return solve.Answer{}, err
				}
				return solve.String(text), nil
			},
		},
	}
}

// TestRegistry_RegisterAndLookup verifies the happy path and the distinct
// not-found condition for unregistered pairs.
func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := solve.NewRegistry()
	require.NoError(t, r.Register(2021, echoSolution(1, "Echo")))

	s, err := r.Lookup(2021, 1)
	require.NoError(t, err)
	assert.Equal(t, "Day 1: Echo", s.Title())

	_, err = r.Lookup(2021, 2)
	assert.ErrorIs(t, err, solve.ErrNotFound, "unregistered day")
	_, err = r.Lookup(2020, 1)
	assert.ErrorIs(t, err, solve.ErrNotFound, "unregistered year")
}

// TestRegistry_RejectsBadRegistrations verifies nil, out-of-range and
// duplicate registrations fail with the proper kinds.
func TestRegistry_RejectsBadRegistrations(t *testing.T) {
	r := solve.NewRegistry()
	assert.ErrorIs(t, r.Register(2021, nil), solve.ErrInvalidInput)
	assert.ErrorIs(t, r.Register(2021, echoSolution(0, "Zero")), solve.ErrInvalidInput)

	require.NoError(t, r.Register(2021, echoSolution(5, "First")))
	assert.ErrorIs(t, r.Register(2021, echoSolution(5, "Second")), solve.ErrDuplicate)
}

// TestRegistry_RunDispatches verifies the one meaningful operation: look
// up by (year, day) and execute against supplied text.
func TestRegistry_RunDispatches(t *testing.T) {
	r := solve.NewRegistry()
	require.NoError(t, r.Register(2021, echoSolution(1, "Echo")))

	outs, err := r.Run(2021, 1, "ping")
	require.NoError(t, err)
	require.Len(t, outs, 1)
	assert.Equal(t, solve.String("ping"), outs[0].Answer)

	_, err = r.Run(2021, 9, "ping")
	assert.ErrorIs(t, err, solve.ErrNotFound)
}

// TestRegistry_DaysAndTitles verifies day-ordered listings per year.
func TestRegistry_DaysAndTitles(t *testing.T) {
	r := solve.NewRegistry()
	require.NoError(t, r.Register(2021, echoSolution(6, "Lanternfish")))
	require.NoError(t, r.Register(2021, echoSolution(1, "Sonar Sweep")))
	require.NoError(t, r.Register(2020, echoSolution(2, "Passwords")))

	assert.Equal(t, []int{1, 6}, r.Days(2021))
	assert.Equal(t, []string{"Day 1: Sonar Sweep", "Day 6: Lanternfish"}, r.Titles(2021))
	assert.Empty(t, r.Days(2019))
}
