package model

import (
	"math"
	"testing"

	"github.com/pkg/errors"
)

func TestGridPoolReseeds(t *testing.T) {
	pool := NewGridPool()

	g, err := pool.Get(6, 6, PatternSeed(Block, 1, 1))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	g.UpdateHistory()
	g.Tick()
	GridToPool(g, pool)

	g, err = pool.Get(9, 4, ReferenceSeed)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if g.Width() != 9 || g.Height() != 4 {
		t.Fatalf("dimensions = %dx%d, want 9x4", g.Width(), g.Height())
	}
	if g.Generation() != 0 {
		t.Fatalf("generation = %d after reuse", g.Generation())
	}
	if want := mustNew(t, 9, 4, ReferenceSeed).Render(); g.Render() != want {
		t.Fatalf("reused grid not reseeded:\n%s", g.Render())
	}
	if g.IsStagnant() {
		t.Fatalf("history survived reuse")
	}
}

func TestGridPoolRejectsInvalidDimension(t *testing.T) {
	pool := NewGridPool()
	for _, dims := range [][2]int{{0, 3}, {math.MaxInt / 2, 3}} {
		if _, err := pool.Get(dims[0], dims[1], nil); !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("Get(%d, %d) err = %v, want ErrInvalidDimension", dims[0], dims[1], err)
		}
	}
}

func TestGridToPoolNil(t *testing.T) {
	GridToPool(nil, NewGridPool())
	GridToPool(&Grid{}, nil)
}
