package solutions

import (
	"github.com/solvent-go/solvent/parse"
	"github.com/solvent-go/solvent/solve"
)

// SonarSweep solves 2021 day 1: count how often successive depth readings
// increase, directly and over three-measurement sliding windows.
var SonarSweep = &solve.Solution{
	Day:  1,
	Name: "Sonar Sweep",
	Preprocess: func(text string) (solve.Input, error) {
		depths, err := parse.Gather(parse.Uint[uint64](), text)
		if err != nil {
			return solve.Input{}, err
		}
		return solve.DataInput(depths), nil
	},
	Parts: []solve.Solver{
		countIncreases(1),
		countIncreases(3),
	},
}

// countIncreases counts readings larger than the reading gap positions
// earlier. Comparing three-measurement window sums reduces to comparing
// the readings three apart, since the two windows share the middle terms.
func countIncreases(gap int) solve.Solver {
	return func(in solve.Input) (solve.Answer, error) {
		depths, err := solve.Data[[]uint64](in)
		if err != nil {
			return solve.Answer{}, err
		}
		var n uint64
		for i := gap; i < len(depths); i++ {
			if depths[i] > depths[i-gap] {
				n++
			}
		}
		return solve.Unsigned(n), nil
	}
}
