package model

import (
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

const clearCmd = "clear"

// Render returns the current generation as text: one line per row, one glyph
// per cell (AliveGlyph or DeadGlyph), rows separated by '\n' with no trailing
// newline.
func (g *Grid) Render() string {
	var b strings.Builder
	b.Grow(g.height * (g.width*3 + 1))
	for row := 0; row < g.height; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range g.cells[row*g.width : (row+1)*g.width] {
			b.WriteRune(cell.Glyph())
		}
	}
	return b.String()
}

// String implements fmt.Stringer.
func (g *Grid) String() string {
	return g.Render()
}

// TerminalRenderer writes frames to a terminal
type TerminalRenderer struct {
	Out io.Writer
	// ClearScreen runs the clear command before every frame.
	ClearScreen bool
}

// Display writes the status header and the rendered grid as one frame
func (r *TerminalRenderer) Display(status string, g *Grid) error {
	if r.ClearScreen {
		r.Clear()
	}
	if _, err := fmt.Fprintf(r.Out, "%s\n%s\n", status, g.Render()); err != nil {
		return errors.Wrap(err, "[Display] failed to write frame")
	}
	return nil
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.Out
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.Out, "Error clearing terminal:", err)
	}
}
