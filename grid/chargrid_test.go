package grid_test

import (
	"testing"

	"github.com/solvent-go/solvent/grid"
	"github.com/solvent-go/solvent/parse"
	"github.com/solvent-go/solvent/solve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// treeCover is a custom character grid retaining only the tree coordinates,
// exercising the FromCells hook and the no-view rendering condition.
type treeCover struct {
	grid.Binary
	trees []grid.Point
}

func (c *treeCover) FromCells(_ grid.Size, rows [][]bool) (*treeCover, error) {
	g, err := grid.FromRows(rows)
	if err != nil {
		return nil, err
	}
	return &treeCover{Binary: c.Binary, trees: grid.Coordinates(g)}, nil
}

// View is nil: the cover keeps only coordinates, no displayable grid.
func (c *treeCover) View() [][]bool { return nil }

// TestFromText_RoundTrip verifies that parsing a character block and
// rendering it back reproduces the block byte for byte.
func TestFromText_RoundTrip(t *testing.T) {
	m := grid.Mapped[bool]{CharMap: grid.DefaultBinary()}
	text := "..#\n#.#\n###"

	g, err := m.FromText(text)
	require.NoError(t, err)
	assert.Equal(t, grid.Size{Width: 3, Height: 3}, g.Size())
	assert.True(t, g.Get(grid.Pt(2, 0)))
	assert.False(t, g.Get(grid.Pt(1, 1)))

	out, err := grid.Render[bool](m, g)
	require.NoError(t, err)
	assert.Equal(t, text, out)
}

// TestFromText_TrailingNewline verifies a final newline does not create a
// phantom empty row.
func TestFromText_TrailingNewline(t *testing.T) {
	m := grid.Mapped[bool]{CharMap: grid.DefaultBinary()}
	g, err := m.FromText("#.\n.#\n")
	require.NoError(t, err)
	assert.Equal(t, grid.Size{Width: 2, Height: 2}, g.Size())
}

// TestFromText_EmptyInput verifies empty text and an empty first line both
// fail as an empty grid.
func TestFromText_EmptyInput(t *testing.T) {
	m := grid.Mapped[bool]{CharMap: grid.DefaultBinary()}
	_, err := m.FromText("")
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
	_, err = m.FromText("\n##\n")
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}

// TestFromText_NonRectangular verifies the ragged-row failure carries both
// lengths.
func TestFromText_NonRectangular(t *testing.T) {
	m := grid.Mapped[bool]{CharMap: grid.DefaultBinary()}
	_, err := m.FromText("###\n##\n###")
	require.ErrorIs(t, err, grid.ErrNonRectangular)
	assert.ErrorIs(t, err, solve.ErrInvalidInput)
	assert.Contains(t, err.Error(), "length 2 instead of the expected 3")
}

// TestFromText_UnrecognizedRune verifies a rune outside the alphabet fails
// as invalid input, names the line, and keeps the parse failure visible.
func TestFromText_UnrecognizedRune(t *testing.T) {
	m := grid.Mapped[bool]{CharMap: grid.DefaultBinary()}
	_, err := m.FromText("##\n#x")
	require.Error(t, err)
	assert.ErrorIs(t, err, solve.ErrInvalidInput)
	assert.ErrorIs(t, err, parse.ErrParse)
	assert.Contains(t, err.Error(), "line 2")
}

// TestDigitMap verifies the digit alphabet in both directions.
func TestDigitMap(t *testing.T) {
	m := grid.Mapped[int]{CharMap: grid.DigitMap{}}
	g, err := m.FromText("219\n398")
	require.NoError(t, err)
	assert.Equal(t, 9, g.Get(grid.Pt(2, 0)))
	assert.Equal(t, 3, g.Get(grid.Pt(0, 1)))

	out, err := grid.Render[int](grid.DigitMap{}, g)
	require.NoError(t, err)
	assert.Equal(t, "219\n398", out)

	assert.Equal(t, '?', grid.DigitMap{}.Rune(12))
	_, err = grid.DigitMap{}.Element('a')
	assert.Error(t, err)
}

// TestCustomCharGrid verifies a type-specific FromCells hook and the
// no-view rendering failure for structures that keep no grid.
func TestCustomCharGrid(t *testing.T) {
	proto := &treeCover{Binary: grid.DefaultBinary()}
	cover, err := grid.FromText[*treeCover, bool](proto, ".#.\n..#")
	require.NoError(t, err)
	assert.Equal(t, []grid.Point{grid.Pt(1, 0), grid.Pt(2, 1)}, cover.trees)

	_, err = grid.Render[bool](cover, cover)
	assert.ErrorIs(t, err, grid.ErrNoView)
	assert.ErrorIs(t, err, solve.ErrProcess)
}

// TestCoordinates_RoundTrip verifies the grid and coordinate-set
// representations convert into each other.
func TestCoordinates_RoundTrip(t *testing.T) {
	m := grid.Mapped[bool]{CharMap: grid.DefaultBinary()}
	g, err := m.FromText("#..\n..#")
	require.NoError(t, err)

	pts := grid.Coordinates(g)
	assert.Equal(t, []grid.Point{grid.Pt(0, 0), grid.Pt(2, 1)}, pts)

	back, err := grid.FromCoordinates(pts)
	require.NoError(t, err)
	out, err := grid.Render[bool](m, back)
	require.NoError(t, err)
	assert.Equal(t, "#..\n..#", out)
}

// TestFromCoordinates_TranslatesToOrigin verifies the bounding box is
// shifted so its corner lands on the origin.
func TestFromCoordinates_TranslatesToOrigin(t *testing.T) {
	g, err := grid.FromCoordinates([]grid.Point{grid.Pt(5, 7), grid.Pt(6, 8)})
	require.NoError(t, err)
	assert.Equal(t, grid.Size{Width: 2, Height: 2}, g.Size())
	assert.True(t, g.Get(grid.Pt(0, 0)))
	assert.True(t, g.Get(grid.Pt(1, 1)))
	assert.False(t, g.Get(grid.Pt(1, 0)))
}

// TestFromCoordinates_Empty verifies the degenerate single-cell grid for an
// empty point set.
func TestFromCoordinates_Empty(t *testing.T) {
	g, err := grid.FromCoordinates(nil)
	require.NoError(t, err)
	assert.Equal(t, grid.Size{Width: 1, Height: 1}, g.Size())
	assert.False(t, g.Get(grid.Pt(0, 0)))
	assert.Empty(t, grid.Coordinates(g))
}

// BenchmarkFromText measures character-block parsing on a 100x100 grid.
func BenchmarkFromText(b *testing.B) {
	m := grid.Mapped[bool]{CharMap: grid.DefaultBinary()}
	text := ""
	for y := 0; y < 100; y++ {
		line := make([]byte, 100)
		for x := range line {
			if (x+y)%3 == 0 {
				line[x] = '#'
			} else {
				line[x] = '.'
			}
		}
		text += string(line) + "\n"
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.FromText(text); err != nil {
			b.Fatal(err)
		}
	}
}
