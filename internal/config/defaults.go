package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/hideseek.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Size:      10,
			Obstacles: 5,
		},
		Match: MatchConfig{
			HidingTicks: 10,
			MaxTicks:    90,
		},
		Pacing: PacingConfig{
			TickDelay:  100 * time.Millisecond,
			MatchDelay: 800 * time.Millisecond,
		},
		Players: PlayersConfig{
			Dir:     "./players",
			Builtin: true,
		},
		Storage: StorageConfig{
			Backend:    BackendFile,
			ScoresPath: "~/.hideseek/global_scores.json",
			LogPath:    "~/.hideseek/match_log.csv",
			DBPath:     "~/.hideseek/hideseek.db",
		},
	}
}
