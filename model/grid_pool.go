package model

import (
	"sync"

	"github.com/pkg/errors"
)

// GridToPool returns a grid to the pool for reuse
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles grid storage across simulation restarts
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() any {
				return &Grid{}
			},
		},
	}
}

// Get retrieves a grid from the pool, resized and seeded. It fails like New
// on non-positive dimensions.
func (p *GridPool) Get(width, height int, seed SeedFunc) (*Grid, error) {
	g := p.pool.Get().(*Grid)
	if err := g.reset(width, height, seed); err != nil {
		p.pool.Put(g)
		return nil, errors.Wrap(err, "[GridPool.Get] failed to reset grid")
	}
	return g, nil
}

// Put returns a grid to the pool. The caller must not use it afterwards.
func (p *GridPool) Put(g *Grid) {
	g.history = g.history[:0]
	p.pool.Put(g)
}
