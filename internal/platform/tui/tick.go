// Package tui provides the Bubble Tea live view for tournaments.
// It renders the board, the match header and both standings tables while
// the scheduler runs on its own goroutine.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hideseek/internal/match"
	"github.com/vovakirdan/hideseek/internal/tournament"
)

// TickMsg refreshes the elapsed clock.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the given interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// FrameMsg carries one engine tick.
type FrameMsg struct {
	Frame match.Frame
}

// MatchStartedMsg announces the next pairing.
type MatchStartedMsg struct {
	Info tournament.MatchInfo
}

// MatchFinishedMsg carries a completed pairing and the updated session table.
type MatchFinishedMsg struct {
	Info    tournament.MatchInfo
	Result  match.Result
	Session tournament.Standings
}

// TournamentDoneMsg is sent once after a tournament persisted its record.
type TournamentDoneMsg struct {
	Summary tournament.Summary
}

// DoneMsg is sent when the scheduling goroutine returns.
type DoneMsg struct {
	Err error
}
