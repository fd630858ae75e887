package model

import (
	"crypto/md5"
	"fmt"
	"math"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// historySize is how many generation hashes are kept for cycle detection.
const historySize = 5

// ErrInvalidDimension is returned when a grid is requested with a non-positive width or height.
var ErrInvalidDimension = errors.New("invalid dimension")

// Grid is a fixed-size toroidal Game of Life board.
//
// Cells live in a flat row-major slice. A second slice of the same size receives
// each new generation and the two are swapped once it is complete, so neighbor
// counts only ever read the previous generation.
type Grid struct {
	width      int
	height     int
	cells      []Cell
	next       []Cell
	generation int
	history    []string // hashes of recent generations for cycle detection
}

// New creates a width x height grid whose cells are initialized by seed.
// A nil seed leaves every cell dead.
func New(width, height int, seed SeedFunc) (*Grid, error) {
	g := &Grid{}
	if err := g.reset(width, height, seed); err != nil {
		return nil, errors.Wrap(err, "[New] failed to build grid")
	}
	return g, nil
}

// reset resizes the grid and re-seeds it, reusing storage when it is large enough.
func (g *Grid) reset(width, height int, seed SeedFunc) error {
	if width <= 0 || height <= 0 || width > math.MaxInt/height {
		return errors.Wrapf(ErrInvalidDimension, "[reset] width=%d height=%d", width, height)
	}

	size := width * height
	if cap(g.cells) < size {
		g.cells = make([]Cell, size)
		g.next = make([]Cell, size)
	}
	g.cells = g.cells[:size]
	g.next = g.next[:size]

	g.width = width
	g.height = height
	g.generation = 0
	g.history = g.history[:0]

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			cell := Dead
			if seed != nil {
				cell = seed(row, col)
			}
			g.cells[row*width+col] = cell
		}
	}
	return nil
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// Generation returns how many ticks have been applied since construction.
func (g *Grid) Generation() int {
	return g.generation
}

// Index maps an in-range coordinate to its offset in the flat cell slice.
func (g *Grid) Index(row, col int) int {
	return row*g.width + col
}

// wrap folds any coordinate onto the torus.
func (g *Grid) wrap(row, col int) (int, int) {
	return (row%g.height + g.height) % g.height, (col%g.width + g.width) % g.width
}

// Get returns the state of a cell; coordinates wrap around the edges.
func (g *Grid) Get(row, col int) Cell {
	row, col = g.wrap(row, col)
	return g.cells[g.Index(row, col)]
}

// Set sets the state of a cell; coordinates wrap around the edges.
func (g *Grid) Set(row, col int, cell Cell) {
	row, col = g.wrap(row, col)
	g.cells[g.Index(row, col)] = cell
}

// Cells returns a copy of the current generation in row-major order.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// LiveNeighbors counts the living cells among the 8 toroidal neighbors of (row, col).
// On grids narrower or shorter than 3 the same cell can be counted more than once.
func (g *Grid) LiveNeighbors(row, col int) (count int) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if g.Get(row+dr, col+dc) == Alive {
				count++
			}
		}
	}
	return
}

// step writes the successors of rows [startRow, endRow) into the spare buffer.
func (g *Grid) step(startRow, endRow int) {
	for row := startRow; row < endRow; row++ {
		for col := 0; col < g.width; col++ {
			idx := g.Index(row, col)
			alive := g.cells[idx] == Alive
			g.next[idx] = cellOf(rules.ApplyConwayRules(g.LiveNeighbors(row, col), alive))
		}
	}
}

// swap publishes the spare buffer as the current generation.
func (g *Grid) swap() {
	g.cells, g.next = g.next, g.cells
	g.generation++
}

// Tick advances the grid by exactly one generation.
func (g *Grid) Tick() {
	g.step(0, g.height)
	g.swap()
}

// TickParallel advances the grid by one generation, splitting rows into bands
// computed concurrently. workers <= 0 uses one band per CPU. The result is
// identical to Tick.
func (g *Grid) TickParallel(workers int) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var (
		eg            errgroup.Group
		rowsPerWorker = (g.height + workers - 1) / workers // Ceiling division
	)

	for i := 0; i < workers; i++ {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			g.step(startRow, endRow)
			return nil
		})
	}

	// Tick has no error path; a failing band would leave g.next torn.
	if err := eg.Wait(); err != nil {
		panic(errors.Wrap(err, "[TickParallel] band failed"))
	}
	g.swap()
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, cell := range g.cells {
		if cell == Alive {
			count++
		}
	}
	return
}

// Hash returns an MD5 digest of the current generation.
func (g *Grid) Hash() string {
	buf := make([]byte, len(g.cells))
	for i, cell := range g.cells {
		buf[i] = byte(cell)
	}
	return fmt.Sprintf("%x", md5.Sum(buf))
}

// UpdateHistory records the current generation and keeps the last few.
func (g *Grid) UpdateHistory() {
	g.history = append(g.history, g.Hash())
	if len(g.history) > historySize {
		g.history = g.history[1:]
	}
}

// IsStagnant reports whether the current generation repeats one of the last
// three recorded ones: a still life or an oscillator of period 3 or less.
// Call it before UpdateHistory records the current generation.
func (g *Grid) IsStagnant() bool {
	if len(g.history) < 3 {
		return false
	}

	current := g.Hash()
	for _, h := range g.history[len(g.history)-3:] {
		if h == current {
			return true
		}
	}
	return false
}
