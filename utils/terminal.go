package utils

import (
	"os"

	"golang.org/x/term"
)

// statusLines is the number of rows the driver prints above the grid.
const statusLines = 3

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// FitTerminal shrinks the grid so a frame fits the terminal behind fd. Each
// glyph is assumed to take one column. Config is returned unchanged when fd is
// not a terminal or its size cannot be read.
func FitTerminal(config Config, fd int) Config {
	if !term.IsTerminal(fd) {
		return config
	}
	cols, rows, err := term.GetSize(fd)
	if err != nil {
		return config
	}
	return fitSize(config, cols, rows)
}

func fitSize(config Config, cols, rows int) Config {
	if cols > 0 {
		config.Width = max(1, min(config.Width, cols))
	}
	if rows > statusLines {
		config.Height = max(1, min(config.Height, rows-statusLines))
	}
	return config
}
