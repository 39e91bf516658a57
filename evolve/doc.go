// Package evolve drives generational simulations: structures that evolve
// in discrete steps, cellular-automaton style, as a lazy, unbounded,
// forward-only sequence of immutable generations.
//
// What
//
//   - Evolver[E, P, V] is the capability a structure needs: allocate a
//     same-shape empty next generation, set a cell, compute one cell of
//     the next generation purely from the current one, and enumerate the
//     points that must be computed (which need not be every point —
//     sparse and open domains enumerate only what matters).
//   - Sequence pulls one generation per Next call and never terminates on
//     its own; fixed-point or cycle detection belongs to the caller.
//   - A Generation is identified only by its position in the sequence
//     (Index); once it stops being current it is never mutated again, so
//     any number of holders may keep referencing it safely.
//
// Why
//
//   - Conway-style grids, lanternfish populations and other step
//     simulations share exactly one driver loop; each puzzle supplies the
//     four capability methods and nothing else.
//
// Determinism
//
//	NextCell must be a pure function of the current generation's full
//	state, so two Sequences derived from equal initial structures produce
//	identical values at every generation index. A Sequence is not
//	restartable; a second independent run means re-deriving from the same
//	initial structure.
//
// Complexity
//
//   - Next: O(|NextPoints| × cost(NextCell)) per generation plus the
//     allocation done by NewGeneration.
//
// Errors
//
//   - ErrEmptyDomain: NextPoints yielded no points, so no further
//     generation can be computed; wraps solve.ErrProcess.
package evolve
