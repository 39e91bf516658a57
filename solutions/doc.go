// Package solutions holds fully wired sample solvers exercising the whole
// framework end to end: text through the parse layer, a Preprocessor into
// typed data, ordered parts producing Answers, dispatch via the Registry.
//
//   - SonarSweep (2021 day 1): gathered depth readings, pairwise and
//     three-measurement-window increase counts.
//   - Lanternfish (2021 day 6): a population bucketed by spawn timer,
//     advanced 80 and 256 generations through an evolve.Sequence.
//
// Register wires both into a solve.Registry under year 2021.
package solutions
