package grid

import (
	"fmt"

	"github.com/solvent-go/solvent/solve"
)

// Sentinel errors for grid construction and rendering. The construction
// errors wrap solve.ErrInvalidInput and the rendering error wraps
// solve.ErrProcess, so they classify under the shared taxonomy.
var (
	// ErrEmptyGrid indicates input with no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("grid: must have at least one row and one column: %w", solve.ErrInvalidInput)

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("grid: all rows must have the same length: %w", solve.ErrInvalidInput)

	// ErrNoView indicates Render was called for a structure that retains
	// no explicit grid to display.
	ErrNoView = fmt.Errorf("grid: structure retains no grid view to render: %w", solve.ErrProcess)
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Point is an (x, y) grid coordinate. The origin is the upper-left corner;
// x grows rightward and y grows downward.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns the point offset by o.
func (p Point) Add(o Point) Point { return Point{X: p.X + o.X, Y: p.Y + o.Y} }

// Size is the width×height extent of a grid. Sizes with either dimension
// below one are not valid.
type Size struct {
	Width, Height int
}

// Valid reports whether both dimensions are at least one.
func (s Size) Valid() bool { return s.Width >= 1 && s.Height >= 1 }

// Contains reports whether p lies within the bounds of the size.
func (s Size) Contains(p Point) bool {
	return p.X >= 0 && p.X < s.Width && p.Y >= 0 && p.Y < s.Height
}

// Count returns the number of points in the size.
func (s Size) Count() int { return s.Width * s.Height }

// Points enumerates every point of the size in row-major order.
func (s Size) Points() []Point {
	pts := make([]Point, 0, s.Count())
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			pts = append(pts, Point{X: x, Y: y})
		}
	}
	return pts
}

// Neighbors enumerates the neighbors of p under the given adjacency
// policy, optionally including p itself, keeping only points within the
// size's bounds. Points are yielded in row-major order of the surrounding
// 3×3 box.
func (s Size) Neighbors(p Point, conn Connectivity, includeSelf bool) []Point {
	pts := make([]Point, 0, 9)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				if !includeSelf {
					continue
				}
			} else if conn == Conn4 && dx != 0 && dy != 0 {
				continue
			}
			n := Point{X: p.X + dx, Y: p.Y + dy}
			if s.Contains(n) {
				pts = append(pts, n)
			}
		}
	}
	return pts
}
