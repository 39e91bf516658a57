package grid

import "fmt"

// Grid is an owned rectangular mapping from Point to E, stored row-major.
// A constructed Grid always satisfies Width ≥ 1, Height ≥ 1 with every row
// exactly Width elements long; the constructors fail rather than ever
// producing an inconsistent grid.
type Grid[E any] struct {
	size  Size
	cells []E
}

// New returns a grid of the given size with every cell holding the zero
// value of E. Returns ErrEmptyGrid when the size is not valid.
func New[E any](size Size) (*Grid[E], error) {
	if !size.Valid() {
		return nil, ErrEmptyGrid
	}
	return &Grid[E]{size: size, cells: make([]E, size.Count())}, nil
}

// FromRows builds a grid from explicit rows, deep-copying the input.
// Returns ErrEmptyGrid for zero rows or an empty first row, and
// ErrNonRectangular when any row's length differs from the first row's.
func FromRows[E any](rows [][]E) (*Grid[E], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	size := Size{Width: len(rows[0]), Height: len(rows)}
	cells := make([]E, 0, size.Count())
	for y, row := range rows {
		if len(row) != size.Width {
			return nil, fmt.Errorf("row %d has length %d instead of the expected %d: %w",
				y, len(row), size.Width, ErrNonRectangular)
		}
		cells = append(cells, row...)
	}

	return &Grid[E]{size: size, cells: cells}, nil
}

// Size returns the grid's extent.
func (g *Grid[E]) Size() Size { return g.size }

// At returns the element at p, reporting false when p is out of bounds.
func (g *Grid[E]) At(p Point) (E, bool) {
	if !g.size.Contains(p) {
		var zero E
		return zero, false
	}
	return g.cells[p.Y*g.size.Width+p.X], true
}

// Get returns the element at p. It panics when p is out of bounds; use At
// for checked access.
func (g *Grid[E]) Get(p Point) E {
	if !g.size.Contains(p) {
		panic(fmt.Sprintf("grid: point (%d,%d) outside %dx%d grid", p.X, p.Y, g.size.Width, g.size.Height))
	}
	return g.cells[p.Y*g.size.Width+p.X]
}

// Set stores v at p. It panics when p is out of bounds.
func (g *Grid[E]) Set(p Point, v E) {
	if !g.size.Contains(p) {
		panic(fmt.Sprintf("grid: point (%d,%d) outside %dx%d grid", p.X, p.Y, g.size.Width, g.size.Height))
	}
	g.cells[p.Y*g.size.Width+p.X] = v
}

// Points enumerates every point of the grid in row-major order.
func (g *Grid[E]) Points() []Point { return g.size.Points() }

// Neighbors enumerates the in-bounds neighbors of p under the adjacency
// policy, optionally including p itself.
func (g *Grid[E]) Neighbors(p Point, conn Connectivity, includeSelf bool) []Point {
	return g.size.Neighbors(p, conn, includeSelf)
}

// Row returns the y-th row as a view into the grid's storage. The slice
// must not be resized; writing through it writes the grid.
func (g *Grid[E]) Row(y int) []E {
	start := y * g.size.Width
	return g.cells[start : start+g.size.Width : start+g.size.Width]
}

// View returns all rows as views into the grid's storage, satisfying
// Viewer[E] so any grid can be rendered.
func (g *Grid[E]) View() [][]E {
	rows := make([][]E, g.size.Height)
	for y := range rows {
		rows[y] = g.Row(y)
	}
	return rows
}

// Clone returns a deep copy of the grid.
func (g *Grid[E]) Clone() *Grid[E] {
	cells := make([]E, len(g.cells))
	copy(cells, g.cells)
	return &Grid[E]{size: g.size, cells: cells}
}

// CountIf counts the cells satisfying pred.
func (g *Grid[E]) CountIf(pred func(E) bool) int {
	n := 0
	for _, e := range g.cells {
		if pred(e) {
			n++
		}
	}
	return n
}
