package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sheikhrachel/go-life/model"
)

// Config holds the configuration for the game
type Config struct {
	Width               int           `json:"width" yaml:"width"`
	Height              int           `json:"height" yaml:"height"`
	FrameRate           time.Duration `json:"frame_rate" yaml:"frame_rate"`
	MaxGenerations      int           `json:"max_generations" yaml:"max_generations"`
	Seed                string        `json:"seed" yaml:"seed"`
	UseParallel         bool          `json:"use_parallel" yaml:"use_parallel"`
	Workers             int           `json:"workers" yaml:"workers"`
	UseMemoryPool       bool          `json:"use_memory_pool" yaml:"use_memory_pool"`
	AutoRestart         bool          `json:"auto_restart" yaml:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold" yaml:"stagnation_threshold"`
	ClearScreen         bool          `json:"clear_screen" yaml:"clear_screen"`
	LogLevel            string        `json:"log_level" yaml:"log_level"`
	LogFile             string        `json:"log_file" yaml:"log_file"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               64,
		Height:              32,
		FrameRate:           150 * time.Millisecond,
		MaxGenerations:      1000,
		Seed:                "showcase",
		UseParallel:         true,
		UseMemoryPool:       true,
		AutoRestart:         true,
		StagnationThreshold: 5,
		ClearScreen:         true,
		LogLevel:            "info",
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
// Fields missing from the file keep their default values. In JSON, frame_rate
// is in nanoseconds; in YAML it is a duration string such as "150ms".
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	case ".json", "":
		err = json.Unmarshal(data, &config)
	default:
		return config, errors.Errorf("[LoadConfig] unsupported config format %q: %+v", ext, filename)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, config.Validate()
}

// Validate rejects configurations the game cannot run with
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(model.ErrInvalidDimension, "[Validate] width=%d height=%d", c.Width, c.Height)
	}
	if c.FrameRate < 0 {
		return errors.Errorf("[Validate] negative frame_rate %v", c.FrameRate)
	}
	if c.MaxGenerations < 0 {
		return errors.Errorf("[Validate] negative max_generations %d", c.MaxGenerations)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "[Validate] bad log_level")
	}
	return nil
}
