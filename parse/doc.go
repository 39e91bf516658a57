// Package parse provides prefix parsers and combinators for turning raw
// puzzle text into typed values.
//
// What
//
//   - Parser[T] consumes a prefix of its Input and returns the typed value
//     plus the unconsumed remainder, or a positioned *Error.
//   - Primitives: AnyRune, Rune, RuneWhere, Literal, Digits, Uint, Int,
//     Decimal, Spaces, EOF.
//   - Combinators: Map / MapRes (projection), Map2 / Map3 / SkipThen /
//     ThenSkip / Delimited (sequencing), Alt (ordered alternation, first
//     match wins), Default (optionality), Many0 / Many1 / Count
//     (repetition), SepBy1 (separated lists), Trim (whitespace trimming),
//     All (full consumption).
//   - Entry points: Run parses a prefix of a string; Gather parses every
//     line of a multi-line text independently; FromCSV parses a flat
//     comma-separated list.
//   - Names: an arena assigning dense sequential indices to parsed names,
//     owned by the parsing result instead of any process-wide counter.
//
// Why
//
//   - Each puzzle defines its own micro-grammar; combinators let a solver
//     state that grammar declaratively and get positioned errors for free.
//   - Failures are never silently defaulted: Gather and FromCSV abort on
//     the first failing element and return no partial results.
//
// Determinism
//
//	Alt tries alternatives strictly in declaration order and commits to the
//	first success. When every alternative fails, the reported error is the
//	one that progressed farthest into the input.
//
// Complexity
//
//   - All primitives are O(n) in consumed bytes; combinators add no more
//     than a constant factor per composition layer.
//
// Errors
//
//   - Every failure is a *Error carrying the byte offset and an
//     expectation description, and satisfies errors.Is(err, ErrParse).
//   - Gather and FromCSV wrap element failures with line / field context.
package parse
