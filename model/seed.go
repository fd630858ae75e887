package model

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownSeed is returned by SeedByName for names it does not recognize.
var ErrUnknownSeed = errors.New("unknown seed")

// SeedFunc decides the initial state of the cell at (row, col).
type SeedFunc func(row, col int) Cell

// ReferenceSeed is alive iff (row+col)%2 == 0 or (row+col)%7 == 0.
func ReferenceSeed(row, col int) Cell {
	sum := row + col
	return cellOf(sum%2 == 0 || sum%7 == 0)
}

// DeadSeed leaves every cell dead.
func DeadSeed(int, int) Cell {
	return Dead
}

// FlatIndexSeed applies the i%2 == 0 || i%7 == 0 pattern to the row-major
// index i of a grid with the given width.
func FlatIndexSeed(width int) SeedFunc {
	return func(row, col int) Cell {
		i := row*width + col
		return cellOf(i%2 == 0 || i%7 == 0)
	}
}

// Union is alive wherever any of seeds is alive.
func Union(seeds ...SeedFunc) SeedFunc {
	return func(row, col int) Cell {
		for _, seed := range seeds {
			if seed(row, col) == Alive {
				return Alive
			}
		}
		return Dead
	}
}

// Offset is a position relative to a pattern's origin.
type Offset struct {
	Row, Col int
}

// Pattern is a set of live cells relative to a top-left origin.
type Pattern []Offset

var (
	// Block is the 2x2 still life.
	Block = Pattern{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	// Blinker is the period-2 oscillator in its horizontal phase.
	Blinker = Pattern{{0, 0}, {0, 1}, {0, 2}}
	// Glider travels one cell diagonally down and right every 4 generations.
	Glider = Pattern{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
)

// Bounds returns the number of rows and columns spanned by the pattern.
func (p Pattern) Bounds() (rows, cols int) {
	for _, o := range p {
		rows = max(rows, o.Row+1)
		cols = max(cols, o.Col+1)
	}
	return
}

// PatternSeed places the pattern with its origin at (originRow, originCol).
// Cells falling outside the grid are dropped; use Grid.Stamp to wrap them.
func PatternSeed(p Pattern, originRow, originCol int) SeedFunc {
	live := make(map[Offset]struct{}, len(p))
	for _, o := range p {
		live[Offset{originRow + o.Row, originCol + o.Col}] = struct{}{}
	}
	return func(row, col int) Cell {
		_, ok := live[Offset{row, col}]
		return cellOf(ok)
	}
}

// Stamp sets the pattern's cells alive with its origin at (row, col),
// wrapping around the edges.
func (g *Grid) Stamp(p Pattern, row, col int) {
	for _, o := range p {
		g.Set(row+o.Row, col+o.Col, Alive)
	}
}

// ParsePattern reads a picture of a pattern, one line per row. '■', '#', 'O'
// and '*' mark live cells; '□', '.' and ' ' mark dead ones. Blank leading and
// trailing lines are ignored.
func ParsePattern(text string) (Pattern, error) {
	var p Pattern
	lines := strings.Split(strings.Trim(text, "\n"), "\n")
	for row, line := range lines {
		col := 0
		for _, r := range strings.TrimRight(line, "\r") {
			switch r {
			case AliveGlyph, '#', 'O', '*':
				p = append(p, Offset{row, col})
			case DeadGlyph, '.', ' ':
			default:
				return nil, errors.Errorf("[ParsePattern] unexpected %q at row %d col %d", r, row, col)
			}
			col++
		}
	}
	return p, nil
}

// SeedByName resolves a configured seed name for a grid of the given size.
//
//	reference  alive iff (row+col)%2 == 0 || (row+col)%7 == 0
//	flat       alive iff i%2 == 0 || i%7 == 0 over the row-major index
//	dead       all cells dead
//	block, blinker, glider   the named pattern near the grid center
//	showcase   gliders and blinkers spread across the grid
func SeedByName(name string, width, height int) (SeedFunc, error) {
	centered := func(p Pattern) SeedFunc {
		rows, cols := p.Bounds()
		return PatternSeed(p, (height-rows)/2, (width-cols)/2)
	}

	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "reference":
		return ReferenceSeed, nil
	case "flat":
		return FlatIndexSeed(width), nil
	case "dead":
		return DeadSeed, nil
	case "block":
		return centered(Block), nil
	case "blinker":
		return centered(Blinker), nil
	case "glider":
		return centered(Glider), nil
	case "showcase":
		return showcaseSeed(width, height), nil
	}
	return nil, errors.Wrapf(ErrUnknownSeed, "[SeedByName] %q", name)
}

// showcaseSeed lays out a few gliders and blinkers, sized to the grid.
func showcaseSeed(width, height int) SeedFunc {
	seeds := []SeedFunc{PatternSeed(Glider, 1, 1)}
	if width >= 10 && height >= 10 {
		seeds = append(seeds,
			PatternSeed(Glider, 5, 5),
			PatternSeed(Blinker, height/4, width/4),
		)
	}
	if width >= 20 && height >= 15 {
		seeds = append(seeds, PatternSeed(Glider, 5, width-8))
	}
	if width >= 30 {
		seeds = append(seeds, PatternSeed(Blinker, 3*height/4, 3*width/4))
	}
	return Union(seeds...)
}
