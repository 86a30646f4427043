package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config holds the simulator settings, sourced from TOYROVER_* environment
// variables with command-line flags layered on top. Board dimensions of zero
// disable the bounds check entirely.
type Config struct {
	BoardWidth      int    `env:"TOYROVER_BOARD_WIDTH" envDefault:"5"`
	BoardHeight     int    `env:"TOYROVER_BOARD_HEIGHT" envDefault:"5"`
	MaxIncludeDepth int    `env:"TOYROVER_MAX_INCLUDE_DEPTH" envDefault:"16"`
	HistoryFile     string `env:"TOYROVER_HISTORY_FILE"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("reading environment: %w", err)
	}
	if cfg.HistoryFile == "" {
		cfg.HistoryFile = filepath.Join(os.TempDir(), ".toyrover_history")
	}
	return cfg, nil
}
