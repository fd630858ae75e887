package model

import (
	"bytes"
	"testing"
)

func TestTerminalRendererDisplay(t *testing.T) {
	var (
		buf bytes.Buffer
		r   = &TerminalRenderer{Out: &buf}
		g   = mustNew(t, 2, 2, PatternSeed(Pattern{{0, 0}}, 0, 0))
	)
	if err := r.Display("Gen: 0", g); err != nil {
		t.Fatalf("Display: %v", err)
	}
	if got, want := buf.String(), "Gen: 0\n■□\n□□\n"; got != want {
		t.Fatalf("frame = %q, want %q", got, want)
	}
}
