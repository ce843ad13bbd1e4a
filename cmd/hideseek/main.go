// hideseek runs round-robin hide and seek tournaments between strategy players.
//
// Usage:
//
//	hideseek run             - Run a tournament (live view on a terminal)
//	hideseek players         - List the player catalog
//	hideseek scores          - Show cumulative standings
//	hideseek history         - Show recent matches (sqlite backend)
//
// Global flags:
//
//	--config <path>    - Config file (default search: ~/.hideseek/config.yaml, ./configs/hideseek.yaml)
//	--backend <name>   - Storage backend: file or sqlite
//	--players <dir>    - Directory with *.js players
//	--no-builtin       - Leave out the compiled-in players
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import players to register them
	_ "github.com/vovakirdan/hideseek/internal/players"
)

var (
	// Global flags
	flagConfig    string
	flagBackend   string
	flagPlayers   string
	flagNoBuiltin bool
	flagVerbose   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hideseek",
	Short: "Hide and seek tournaments for grid strategies",
	Long: `hideseek pits every player against every other player on a small grid,
once as hider and once as seeker, and keeps a cumulative record across runs.

Players are compiled in or loaded from JavaScript modules that export
a hider and a seeker function.

Available commands:
  run      - Run one or more tournaments
  players  - List available players
  scores   - View cumulative standings
  history  - View recent matches

Examples:
  hideseek run
  hideseek run --runs 5 --plain --seed 42
  hideseek players --players ./players
  hideseek scores --backend sqlite`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Storage backend: file or sqlite")
	rootCmd.PersistentFlags().StringVar(&flagPlayers, "players", "", "Directory with *.js players")
	rootCmd.PersistentFlags().BoolVar(&flagNoBuiltin, "no-builtin", false, "Do not include the built-in players")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
}
