package model

// Cell is the state of a single grid position.
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

// Glyphs used by Render. Alive is U+25A0, Dead is U+25A1.
const (
	AliveGlyph = '■'
	DeadGlyph  = '□'
)

// Glyph returns the printable symbol for the cell state.
func (c Cell) Glyph() rune {
	if c == Alive {
		return AliveGlyph
	}
	return DeadGlyph
}

func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

func cellOf(alive bool) Cell {
	if alive {
		return Alive
	}
	return Dead
}
