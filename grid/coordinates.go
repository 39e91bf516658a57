package grid

// Coordinates returns the points of every true cell of a boolean grid, in
// row-major order. Together with FromCoordinates it lets sparse puzzles
// switch between the grid and coordinate-set representations.
func Coordinates(g *Grid[bool]) []Point {
	pts := make([]Point, 0)
	for _, p := range g.Points() {
		if g.Get(p) {
			pts = append(pts, p)
		}
	}
	return pts
}

// FromCoordinates builds the smallest boolean grid containing every given
// point set to true, translating so the bounding box's corner becomes the
// origin. An empty point set yields a 1×1 grid with its single cell unset.
func FromCoordinates(points []Point) (*Grid[bool], error) {
	if len(points) == 0 {
		return New[bool](Size{Width: 1, Height: 1})
	}

	min, max := points[0], points[0]
	for _, p := range points[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}

	g, err := New[bool](Size{Width: max.X - min.X + 1, Height: max.Y - min.Y + 1})
	if err != nil {
		return nil, err
	}
	for _, p := range points {
		g.Set(Point{X: p.X - min.X, Y: p.Y - min.Y}, true)
	}

	return g, nil
}
