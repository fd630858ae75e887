package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	var (
		configPath  = flag.String("config", "config.json", "JSON or YAML config file")
		width       = flag.Int("width", 0, "grid width, overrides the config file")
		height      = flag.Int("height", 0, "grid height, overrides the config file")
		seed        = flag.String("seed", "", "initial pattern: reference, flat, dead, block, blinker, glider, showcase")
		generations = flag.Int("generations", -1, "stop after this many generations, 0 runs forever")
		frameRate   = flag.Duration("frame-rate", -1, "delay between frames")
		fit         = flag.Bool("fit", true, "shrink the grid to fit the terminal")
	)
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		config = utils.DefaultConfig()
	}

	if *width > 0 {
		config.Width = *width
	}
	if *height > 0 {
		config.Height = *height
	}
	if *seed != "" {
		config.Seed = *seed
	}
	if *generations >= 0 {
		config.MaxGenerations = *generations
	}
	if *frameRate >= 0 {
		config.FrameRate = *frameRate
	}

	isTerminal := utils.IsTerminal(os.Stdout)
	if *fit && isTerminal {
		config = utils.FitTerminal(config, int(os.Stdout.Fd()))
	}
	config.ClearScreen = config.ClearScreen && isTerminal

	if err := config.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	logger, closer, err := utils.NewLogger(os.Stderr, config.LogLevel, config.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer closer.Close()

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stats, err := run(ctx, config, os.Stdout, logger)
	if err != nil {
		logger.Error("game failed", "error", err)
		return 1
	}

	logger.Info("shutting down",
		"generations", stats.TotalGenerations,
		"restarts", stats.Restarts,
		"runtime", stats.Runtime().Round(time.Millisecond),
		"avg_population", fmt.Sprintf("%.1f", stats.AveragePopulation),
	)
	return 0
}
