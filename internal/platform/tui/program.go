package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hideseek/internal/match"
	"github.com/vovakirdan/hideseek/internal/tournament"
)

// Sender delivers messages to a running program.
type Sender interface {
	Send(msg tea.Msg)
}

// Observer forwards tournament events to the live view.
type Observer struct {
	p Sender
}

// NewObserver returns an observer sending to p.
func NewObserver(p Sender) *Observer {
	return &Observer{p: p}
}

// ObserveTick implements match.Observer.
func (o *Observer) ObserveTick(f match.Frame) {
	o.p.Send(FrameMsg{Frame: f})
}

// MatchStarted implements tournament.Observer.
func (o *Observer) MatchStarted(info tournament.MatchInfo) {
	o.p.Send(MatchStartedMsg{Info: info})
}

// MatchFinished implements tournament.Observer.
func (o *Observer) MatchFinished(info tournament.MatchInfo, res match.Result, session tournament.Standings) {
	o.p.Send(MatchFinishedMsg{Info: info, Result: res, Session: session})
}

// TournamentDone reports a persisted tournament.
func (o *Observer) TournamentDone(s tournament.Summary) {
	o.p.Send(TournamentDoneMsg{Summary: s})
}

// RunFunc drives one or more tournaments against the live view.
type RunFunc func(ctx context.Context, obs *Observer, sleeper match.Sleeper) error

// Run starts the live view and calls fn on a separate goroutine. Quitting the
// view cancels the context passed to fn; Run waits for fn to return so that
// persistence in progress completes.
func Run(ctx context.Context, fn RunFunc) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pacer := NewPacer(ctx)
	model := NewModel(pacer, cancel)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	done := make(chan error, 1)
	go func() {
		err := fn(ctx, NewObserver(p), pacer)
		p.Send(DoneMsg{Err: err})
		done <- err
	}()

	_, uiErr := p.Run()
	cancel()
	runErr := <-done

	if uiErr != nil && !errors.Is(uiErr, tea.ErrProgramKilled) {
		return errors.Join(runErr, uiErr)
	}
	return runErr
}
