package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List all available players",
	Long: `Shows the built-in players and every *.js player that loads cleanly.
Rejected scripts are reported on stderr.`,
	Run: runPlayers,
}

func runPlayers(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fail("loading config", err)
	}

	catalog, err := buildCatalog(cfg, newLogger(os.Stderr))
	if err != nil {
		fail("loading players", err)
	}

	players := catalog.List()
	if len(players) == 0 {
		fmt.Println("No players available.")
		return
	}

	fmt.Println("Available players:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range players {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Source")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "------")

	for _, p := range players {
		fmt.Printf("  %-*s  %s\n", maxIDLen, p.ID, p.Source)
	}

	fmt.Println()
	fmt.Printf("%d players, %d matches per tournament.\n", len(players), len(players)*(len(players)-1))
}
