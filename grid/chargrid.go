package grid

import (
	"fmt"
	"strings"

	"github.com/solvent-go/solvent/parse"
	"github.com/solvent-go/solvent/solve"
)

// CharMap is a total, bidirectional mapping between a recognized rune
// alphabet and a domain element type. Element rejects runes outside the
// alphabet with an error; Rune must render every element value.
type CharMap[E any] interface {
	// Element maps a read rune to its element.
	Element(r rune) (E, error)

	// Rune maps an element back to its display rune.
	Rune(e E) rune
}

// CharGrid is the capability a type needs to be parsed from a character
// block: the rune mapping plus type-specific construction from the
// validated size and rows (building derived indices, extra validation...).
type CharGrid[G, E any] interface {
	CharMap[E]

	// FromCells finishes construction from validated rectangular rows.
	FromCells(size Size, rows [][]E) (G, error)
}

// Viewer is the optional capability of structures that retain an explicit
// grid for display. A nil view means the structure keeps no grid.
type Viewer[E any] interface {
	View() [][]E
}

// FromText parses a character block into a G: split into lines, map every
// rune of every line through the capability's Element via the parse layer,
// validate rectangularity, then delegate to FromCells. Zero rows or zero
// columns fail with ErrEmptyGrid; a row length differing from the first
// row's fails with ErrNonRectangular carrying both lengths; an
// unrecognized rune surfaces as solve.ErrInvalidInput with the line
// position (the parse failure is converted at this boundary).
func FromText[G, E any](cg CharGrid[G, E], text string) (G, error) {
	var zero G
	lines := parse.Lines(text)
	if len(lines) == 0 || lines[0] == "" {
		return zero, ErrEmptyGrid
	}

	rowParser := parse.All(parse.Many1(parse.MapRes(parse.AnyRune(), cg.Element)))
	width := 0
	rows := make([][]E, 0, len(lines))
	for i, line := range lines {
		row, err := parse.Run(rowParser, line)
		if err != nil {
			return zero, fmt.Errorf("grid: line %d: %w: %w", i+1, solve.ErrInvalidInput, err)
		}
		if i == 0 {
			width = len(row)
		} else if len(row) != width {
			return zero, fmt.Errorf("grid: row %d has length %d instead of the expected %d: %w",
				i, len(row), width, ErrNonRectangular)
		}
		rows = append(rows, row)
	}

	return cg.FromCells(Size{Width: width, Height: len(rows)}, rows)
}

// Render formats a structure as its character block: rows rendered in
// order, every element mapped through Rune, newline-joined. It is meant
// for diagnostics, never for a hot path. A structure whose View is nil
// must not be asked to render; that is reported as ErrNoView rather than
// silently producing blank output.
func Render[E any](cm CharMap[E], v Viewer[E]) (string, error) {
	rows := v.View()
	if rows == nil {
		return "", ErrNoView
	}
	var b strings.Builder
	for y, row := range rows {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, e := range row {
			b.WriteRune(cm.Rune(e))
		}
	}

	return b.String(), nil
}

// Mapped adapts a bare CharMap into the CharGrid capability for plain
// element grids, so a character block can be parsed straight into a
// *Grid[E] without a dedicated wrapper type.
type Mapped[E any] struct {
	CharMap[E]
}

// FromCells builds the plain grid from the validated rows.
func (m Mapped[E]) FromCells(_ Size, rows [][]E) (*Grid[E], error) {
	return FromRows(rows)
}

// FromText parses a character block into a plain *Grid[E].
func (m Mapped[E]) FromText(text string) (*Grid[E], error) {
	return FromText[*Grid[E], E](m, text)
}

// Binary maps a two-rune alphabet onto booleans. The zero value is not
// useful; use DefaultBinary or set both runes.
type Binary struct {
	// Set is the rune rendered for true cells.
	Set rune
	// Unset is the rune rendered for false cells.
	Unset rune
}

// DefaultBinary returns the conventional '#' / '.' mapping.
func DefaultBinary() Binary { return Binary{Set: '#', Unset: '.'} }

// Element maps the two recognized runes to booleans.
func (m Binary) Element(r rune) (bool, error) {
	switch r {
	case m.Set:
		return true, nil
	case m.Unset:
		return false, nil
	default:
		return false, fmt.Errorf("one of %q or %q, found %q", m.Set, m.Unset, r)
	}
}

// Rune maps a boolean back to its display rune.
func (m Binary) Rune(v bool) rune {
	if v {
		return m.Set
	}
	return m.Unset
}

// DigitMap maps the runes '0'..'9' onto their integer values.
type DigitMap struct{}

// Element maps a decimal digit rune to its value.
func (DigitMap) Element(r rune) (int, error) {
	if r < '0' || r > '9' {
		return 0, fmt.Errorf("a decimal digit, found %q", r)
	}
	return int(r - '0'), nil
}

// Rune maps a digit value back to its rune; values outside 0..9 render
// as '?'.
func (DigitMap) Rune(v int) rune {
	if v < 0 || v > 9 {
		return '?'
	}
	return rune('0' + v)
}
