// Package config provides YAML-based configuration loading with environment
// overrides for the hideseek tournament runner.
package config

import (
	"fmt"
	"time"
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config contains all runtime settings.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Match   MatchConfig   `yaml:"match"`
	Pacing  PacingConfig  `yaml:"pacing"`
	Players PlayersConfig `yaml:"players"`
	Storage StorageConfig `yaml:"storage"`
	Seed    int64         `yaml:"seed" env:"HIDESEEK_SEED"` // 0 = time based
}

// GridConfig defines the board.
type GridConfig struct {
	Size      int `yaml:"size" env:"HIDESEEK_GRID_SIZE"`
	Obstacles int `yaml:"obstacles" env:"HIDESEEK_GRID_OBSTACLES"`
}

// MatchConfig defines the tick budget of a match.
type MatchConfig struct {
	HidingTicks int `yaml:"hiding_ticks" env:"HIDESEEK_MATCH_HIDING_TICKS"`
	MaxTicks    int `yaml:"max_ticks" env:"HIDESEEK_MATCH_MAX_TICKS"`
}

// PacingConfig defines the delays used by the live view.
type PacingConfig struct {
	TickDelay  time.Duration `yaml:"tick_delay" env:"HIDESEEK_PACING_TICK_DELAY"`
	MatchDelay time.Duration `yaml:"match_delay" env:"HIDESEEK_PACING_MATCH_DELAY"`
}

// PlayersConfig defines where players come from.
type PlayersConfig struct {
	Dir     string `yaml:"dir" env:"HIDESEEK_PLAYERS_DIR"`
	Builtin bool   `yaml:"builtin" env:"HIDESEEK_PLAYERS_BUILTIN"`
}

// StorageConfig selects the persistence backend and its paths.
type StorageConfig struct {
	Backend    string `yaml:"backend" env:"HIDESEEK_STORAGE_BACKEND"`
	ScoresPath string `yaml:"scores_path" env:"HIDESEEK_STORAGE_SCORES_PATH"`
	LogPath    string `yaml:"log_path" env:"HIDESEEK_STORAGE_LOG_PATH"`
	DBPath     string `yaml:"db_path" env:"HIDESEEK_STORAGE_DB_PATH"`
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Grid.Size <= 0:
		return fmt.Errorf("config: grid.size must be positive, got %d", c.Grid.Size)
	case c.Grid.Obstacles < 0:
		return fmt.Errorf("config: grid.obstacles must not be negative, got %d", c.Grid.Obstacles)
	case c.Match.HidingTicks <= 0:
		return fmt.Errorf("config: match.hiding_ticks must be positive, got %d", c.Match.HidingTicks)
	case c.Match.MaxTicks <= 0:
		return fmt.Errorf("config: match.max_ticks must be positive, got %d", c.Match.MaxTicks)
	case c.Pacing.TickDelay < 0 || c.Pacing.MatchDelay < 0:
		return fmt.Errorf("config: pacing delays must not be negative")
	}

	switch c.Storage.Backend {
	case BackendFile:
		if c.Storage.ScoresPath == "" || c.Storage.LogPath == "" {
			return fmt.Errorf("config: file backend needs storage.scores_path and storage.log_path")
		}
	case BackendSQLite:
		if c.Storage.DBPath == "" {
			return fmt.Errorf("config: sqlite backend needs storage.db_path")
		}
	default:
		return fmt.Errorf("config: unknown storage backend %q", c.Storage.Backend)
	}
	return nil
}
