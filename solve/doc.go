// Package solve defines the result vocabulary every solver shares — the
// Answer union and the error taxonomy — plus the Solution descriptor and
// the (year, day) Registry that dispatches raw puzzle text through it.
//
// What
//
//   - Answer: a closed tagged union over signed, unsigned, text and decimal
//     values, with widening (never truncating) generic constructors.
//   - Input: a solver's processed input; either the raw text itself or a
//     type-erased value produced by a Preprocessor, downcast with Data.
//   - Solution: an immutable descriptor binding a day to an optional
//     Preprocessor and an ordered list of Parts. Run preprocesses exactly
//     once, invokes every part against the same Input, and returns one
//     Outcome per part — a later part failing never discards an earlier
//     part's answer.
//   - Registry: the composition root; a static table from (year, day) to
//     Solution with lookup, listing, and one-shot Run.
//
// Why
//
//   - Dozens of tiny solvers stay uniform: same inputs, same outcomes,
//     same error kinds, one dispatch path for the CLI and for test tables.
//
// Error taxonomy
//
//	ErrInvalidInput — structurally invalid domain data; parse failures are
//	                  converted into this kind at the dispatch boundary.
//	ErrProcess      — a solver reached a logically unsolvable state.
//	ErrNoAnswer     — the ErrProcess specialization for exhausted searches.
//	ErrNotFound     — no Solution registered for the requested (year, day).
//	ErrDuplicate    — a second registration for an already-bound (year, day).
//
// All per-part failures propagate as explicit Outcome values, never as a
// panic, and each part's outcome is independent of every other part's.
package solve
