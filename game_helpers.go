package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// game is the render loop driving a single grid
type game struct {
	config   utils.Config
	seed     model.SeedFunc
	grid     *model.Grid
	pool     *model.GridPool
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	logger   *slog.Logger

	generation     int
	stagnantCount  int
	lastRestartGen int
	lastFrameTime  time.Time
	settledHash    string // hash of the grid replaced by the last restart
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, out io.Writer, logger *slog.Logger) (*game, error) {
	seed, err := model.SeedByName(config.Seed, config.Width, config.Height)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to resolve seed")
	}

	g := &game{
		config:        config,
		seed:          seed,
		renderer:      &model.TerminalRenderer{Out: out, ClearScreen: config.ClearScreen},
		stats:         utils.NewStats(),
		logger:        logger,
		lastFrameTime: time.Now(),
	}
	if config.UseMemoryPool {
		g.pool = model.NewGridPool()
	}
	if g.grid, err = g.newGrid(); err != nil {
		return nil, err
	}

	logger.Info("game initialized",
		"width", config.Width,
		"height", config.Height,
		"seed", config.Seed,
		"parallel", config.UseParallel,
		"memory_pool", config.UseMemoryPool,
		"living", g.grid.CountLivingCells(),
	)
	return g, nil
}

// newGrid builds a freshly seeded grid, through the pool when enabled
func (g *game) newGrid() (*model.Grid, error) {
	var (
		grid *model.Grid
		err  error
	)
	if g.pool != nil {
		grid, err = g.pool.Get(g.config.Width, g.config.Height, g.seed)
	} else {
		grid, err = model.New(g.config.Width, g.config.Height, g.seed)
	}
	return grid, errors.Wrap(err, "[newGrid] failed to build grid")
}

// updateGameState refreshes stats and stagnation tracking and returns the status header
func (g *game) updateGameState() (livingCells int, status string) {
	var (
		now   = time.Now()
		grid  = g.grid
		total = grid.Width() * grid.Height()
	)
	livingCells = grid.CountLivingCells()
	density := float64(livingCells) / float64(total) * 100

	g.stats.Update(g.generation, livingCells, now.Sub(g.lastFrameTime))
	g.lastFrameTime = now

	if grid.IsStagnant() {
		g.stagnantCount++
	} else {
		g.stagnantCount = 0
	}
	grid.UpdateHistory()

	state := "Active"
	switch {
	case livingCells == 0:
		state = "Extinct"
	case g.stagnantCount > 0:
		state = fmt.Sprintf("Stagnant (%d)", g.stagnantCount)
	}

	status = fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n"+
		"Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs | Since restart: %d",
		g.generation, livingCells, density, state,
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.Runtime().Seconds(),
		g.generation-g.lastRestartGen)
	return livingCells, status
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// restartGame swaps the grid for a freshly seeded one
func (g *game) restartGame(reason string) error {
	g.logger.Info("restarting", "reason", reason, "generation", g.generation)

	g.settledHash = g.grid.Hash()
	model.GridToPool(g.grid, g.pool)
	grid, err := g.newGrid()
	if err != nil {
		return err
	}
	g.grid = grid
	g.lastRestartGen = g.generation
	g.stagnantCount = 0
	g.stats.Restarts++
	return nil
}

// restartRepeats reports whether the grid settled exactly where it did before
// the last restart. Seeds are deterministic, so restarting again would replay
// the same run.
func (g *game) restartRepeats() bool {
	return g.stats.Restarts > 0 && g.grid.Hash() == g.settledHash
}

// advance computes the next generation
func (g *game) advance() {
	if g.config.UseParallel {
		g.grid.TickParallel(g.config.Workers)
	} else {
		g.grid.Tick()
	}
	g.generation++
}

// run drives the game until ctx is done, the generation limit is reached, or
// a settled grid cannot be restarted usefully.
func run(ctx context.Context, config utils.Config, out io.Writer, logger *slog.Logger) (*utils.Stats, error) {
	g, err := initializeGame(config, out, logger)
	if err != nil {
		return nil, err
	}
	defer func() { model.GridToPool(g.grid, g.pool) }()

	for {
		if ctx.Err() != nil {
			return g.stats, nil
		}

		livingCells, status := g.updateGameState()
		if err := g.renderer.Display(status, g.grid); err != nil {
			return g.stats, err
		}

		if config.MaxGenerations > 0 && g.generation >= config.MaxGenerations {
			logger.Info("reached maximum generations", "limit", config.MaxGenerations)
			return g.stats, nil
		}

		if shouldRestart, reason := checkRestartConditions(livingCells, g.stagnantCount, config); shouldRestart {
			if !config.AutoRestart {
				logger.Info("simulation settled", "reason", reason, "generation", g.generation)
				return g.stats, nil
			}
			if g.restartRepeats() {
				logger.Info("simulation settled again after restart", "reason", reason, "generation", g.generation)
				return g.stats, nil
			}
			if err := g.restartGame(reason); err != nil {
				return g.stats, err
			}
		} else {
			// a fresh seed is drawn before it advances
			g.advance()
		}

		select {
		case <-ctx.Done():
			return g.stats, nil
		case <-time.After(config.FrameRate):
		}
	}
}
