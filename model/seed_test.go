package model

import (
	"testing"

	"github.com/pkg/errors"
)

func TestReferenceSeed(t *testing.T) {
	cases := []struct {
		row, col int
		want     Cell
	}{
		{0, 0, Alive},
		{0, 1, Dead},
		{1, 1, Alive},
		{3, 4, Alive}, // 7
		{2, 3, Dead},  // 5
		{6, 8, Alive}, // 14
		{4, 5, Dead},  // 9
	}
	for _, tc := range cases {
		if got := ReferenceSeed(tc.row, tc.col); got != tc.want {
			t.Fatalf("ReferenceSeed(%d, %d) = %v, want %v", tc.row, tc.col, got, tc.want)
		}
	}
}

func TestFlatIndexSeed(t *testing.T) {
	seed := FlatIndexSeed(5)
	// index 7 sits at (1,2), index 9 at (1,4)
	if seed(1, 2) != Alive {
		t.Fatalf("index 7 should be alive")
	}
	if seed(1, 4) != Dead {
		t.Fatalf("index 9 should be dead")
	}
	if seed(0, 0) != Alive || seed(0, 1) != Dead {
		t.Fatalf("first row mismatch")
	}
}

func TestParsePatternRoundTrip(t *testing.T) {
	picture := "□■□\n□□■\n■■■"
	p, err := ParsePattern(picture)
	if err != nil {
		t.Fatalf("ParsePattern: %v", err)
	}
	if rows, cols := p.Bounds(); rows != 3 || cols != 3 {
		t.Fatalf("bounds = %dx%d, want 3x3", rows, cols)
	}

	g := mustNew(t, 3, 3, PatternSeed(p, 0, 0))
	if got := g.Render(); got != picture {
		t.Fatalf("Render() = %q, want %q", got, picture)
	}
	if glider := mustNew(t, 3, 3, PatternSeed(Glider, 0, 0)).Render(); glider != picture {
		t.Fatalf("Glider renders as %q", glider)
	}
}

func TestParsePatternRejectsUnknownRunes(t *testing.T) {
	if _, err := ParsePattern("#.\n.x"); err == nil {
		t.Fatalf("expected an error for 'x'")
	}
}

func TestStampWraps(t *testing.T) {
	g := mustNew(t, 4, 4, nil)
	g.Stamp(Block, 3, 3)
	for _, rc := range [][2]int{{3, 3}, {3, 0}, {0, 3}, {0, 0}} {
		if g.Get(rc[0], rc[1]) != Alive {
			t.Fatalf("cell (%d,%d) not stamped", rc[0], rc[1])
		}
	}
	if g.CountLivingCells() != 4 {
		t.Fatalf("living cells = %d, want 4", g.CountLivingCells())
	}
}

func TestPatternSeedDropsOutOfRange(t *testing.T) {
	g := mustNew(t, 4, 4, PatternSeed(Block, 3, 3))
	if g.CountLivingCells() != 1 {
		t.Fatalf("living cells = %d, want 1", g.CountLivingCells())
	}
}

func TestSeedByName(t *testing.T) {
	for _, name := range []string{"", "reference", "Flat", "dead", "block", "blinker", "glider", "showcase"} {
		seed, err := SeedByName(name, 40, 20)
		if err != nil {
			t.Fatalf("SeedByName(%q): %v", name, err)
		}
		mustNew(t, 40, 20, seed)
	}

	seed, err := SeedByName("block", 6, 6)
	if err != nil {
		t.Fatalf("SeedByName(block): %v", err)
	}
	g := mustNew(t, 6, 6, seed)
	for _, rc := range [][2]int{{2, 2}, {2, 3}, {3, 2}, {3, 3}} {
		if g.Get(rc[0], rc[1]) != Alive {
			t.Fatalf("block not centered: (%d,%d) dead", rc[0], rc[1])
		}
	}

	if _, err := SeedByName("acorn", 10, 10); !errors.Is(err, ErrUnknownSeed) {
		t.Fatalf("err = %v, want ErrUnknownSeed", err)
	}
}

func TestUnion(t *testing.T) {
	seed := Union(PatternSeed(Block, 0, 0), PatternSeed(Blinker, 4, 0))
	g := mustNew(t, 5, 5, seed)
	if g.CountLivingCells() != 7 {
		t.Fatalf("living cells = %d, want 7", g.CountLivingCells())
	}
}
