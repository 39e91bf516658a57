package solutions

import "github.com/solvent-go/solvent/solve"

// Year is the puzzle year the sample solutions belong to.
const Year = 2021

// Register wires every sample solution into r under Year.
func Register(r *solve.Registry) error {
	for _, s := range []*solve.Solution{SonarSweep, Lanternfish} {
		if err := r.Register(Year, s); err != nil {
			return err
		}
	}
	return nil
}
