package main

import (
	"fmt"
	"io"

	"github.com/vovakirdan/hideseek/internal/match"
	"github.com/vovakirdan/hideseek/internal/platform/tui"
	"github.com/vovakirdan/hideseek/internal/tournament"
)

// printSummaries writes the session standings of every tournament followed
// by the cumulative record after the last one.
func printSummaries(w io.Writer, summaries []tournament.Summary) {
	if len(summaries) == 0 {
		return
	}

	for _, s := range summaries {
		faults := 0
		for _, m := range s.Matches {
			if m.Result.Outcome == match.OutcomeError {
				faults++
			}
		}

		fmt.Fprintf(w, "%s: %d matches, %d obstacles", s.ID, len(s.Matches), len(s.Grid.Obstacles))
		if faults > 0 {
			fmt.Fprintf(w, ", %d aborted", faults)
		}
		fmt.Fprintln(w)
		if len(s.Session) > 0 {
			fmt.Fprintln(w, tui.StandingsTable(s.Session))
		}
		fmt.Fprintln(w)
	}

	last := summaries[len(summaries)-1]
	if last.Cumulative == nil {
		fmt.Fprintln(w, "Cumulative scores were not saved.")
		return
	}
	fmt.Fprintln(w, "All tournaments:")
	fmt.Fprintln(w, tui.StandingsTable(last.Cumulative))
}
