// Package grid provides generic rectangular grids and the CharGrid
// capability that maps between characters and domain elements.
//
// What
//
//   - Point and Size: integer grid coordinates with bounds checks and
//     row-major enumeration; the origin is the upper-left corner and y
//     grows downward.
//   - Connectivity: the adjacency policy for neighbor enumeration, Conn4
//     (orthogonal) or Conn8 (including diagonals), with or without the
//     point itself; always bounds-checked against a Size.
//   - Grid[E]: an owned width×height row-major mapping from Point to E.
//     Invariant: Width ≥ 1, Height ≥ 1, every row exactly Width long —
//     construction fails rather than ever producing an inconsistent grid.
//   - CharMap[E]: a total bidirectional mapping between a recognized rune
//     alphabet and the element type; Binary and DigitMap are built in.
//   - CharGrid[G, E]: CharMap plus type-specific construction from
//     validated cells; FromText parses a character block through the parse
//     layer into any such G. Mapped[E] adapts a bare CharMap to *Grid[E].
//   - Viewer[E] and Render: row-by-row rune rendering for diagnostics.
//
// Why
//
//   - Most puzzle inputs are character grids; one validated parser and one
//     renderer replace per-puzzle ad hoc indexing and display code.
//
// Complexity
//
//   - FromText, FromRows, Render, Clone: O(W×H).
//   - At, Get, Set, Contains: O(1); Neighbors: O(1) (at most 9 points).
//
// Errors
//
//   - ErrEmptyGrid: no rows, or the first row has no columns.
//   - ErrNonRectangular: a row's length differs from the first row's.
//   - ErrNoView: Render was asked for a structure that retains no grid.
//
// ErrEmptyGrid and ErrNonRectangular also satisfy
// errors.Is(err, solve.ErrInvalidInput); ErrNoView satisfies
// errors.Is(err, solve.ErrProcess). Parse failures inside FromText are
// converted to ErrInvalidInput at that boundary.
package grid
