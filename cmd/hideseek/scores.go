package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hideseek/internal/platform/tui"
	"github.com/vovakirdan/hideseek/internal/tournament"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show cumulative standings",
	Long: `Display the record of every player across all tournaments, ordered by
seeker wins plus hider survivals.

Examples:
  hideseek scores
  hideseek scores --backend sqlite`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fail("loading config", err)
	}

	b, err := openBackend(cfg, false)
	if err != nil {
		fail("opening storage", err)
	}
	defer b.Close()

	standings, err := b.scores.LoadScores()
	if errors.Is(err, tournament.ErrCorruptScores) {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	} else if err != nil {
		b.Close()
		fail("reading scores", err)
	}

	if len(standings) == 0 {
		fmt.Println("No tournaments recorded yet.")
		fmt.Println("Run 'hideseek run' to play one.")
		return
	}

	fmt.Printf("All tournaments (%s backend)\n", cfg.Storage.Backend)
	fmt.Println(tui.StandingsTable(standings))
}
