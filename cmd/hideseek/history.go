package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hideseek/internal/storage"
)

var (
	flagLimit  int
	flagPlayer string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent matches",
	Long: `Display the most recent matches stored in the SQLite match log.
The file backend writes a CSV log instead; open it with any spreadsheet.

Examples:
  hideseek history --backend sqlite
  hideseek history --backend sqlite --player holly --limit 50`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of matches to show")
	historyCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show matches of this player")
}

func runHistory(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fail("loading config", err)
	}

	b, err := openBackend(cfg, false)
	if err != nil {
		fail("opening storage", err)
	}
	defer b.Close()

	if b.db == nil {
		fmt.Fprintf(os.Stderr, "Error: history needs the sqlite backend (match log is at %s)\n", cfg.Storage.LogPath)
		b.Close()
		os.Exit(1)
	}

	var rows []storage.MatchRow
	if flagPlayer != "" {
		rows, err = b.db.PlayerMatches(flagPlayer, flagLimit)
	} else {
		rows, err = b.db.RecentMatches(flagLimit)
	}
	if err != nil {
		b.Close()
		fail("retrieving matches", err)
	}

	if len(rows) == 0 {
		fmt.Println("No matches recorded yet.")
		return
	}

	fmt.Printf("  %-19s  %-26s  %-14s  %-14s  %-7s  %s\n", "Time", "Tournament", "Hider", "Seeker", "Outcome", "Ticks")
	fmt.Printf("  %-19s  %-26s  %-14s  %-14s  %-7s  %s\n", "----", "----------", "-----", "------", "-------", "-----")
	for _, r := range rows {
		fmt.Printf("  %-19s  %-26s  %-14s  %-14s  %-7s  %d\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			r.TournamentID,
			r.Hider,
			r.Seeker,
			r.Outcome,
			r.Ticks,
		)
	}
}
