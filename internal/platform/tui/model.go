package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hideseek/internal/match"
	"github.com/vovakirdan/hideseek/internal/tournament"
)

const clockInterval = time.Second

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	phaseStyles = map[match.Phase]lipgloss.Style{
		match.PhaseHiding:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		match.PhaseSeeking: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Model is the Bubble Tea model for watching tournaments.
type Model struct {
	pacer  *Pacer
	cancel context.CancelFunc
	keys   LiveKeyMap
	help   help.Model

	info       tournament.MatchInfo
	frame      match.Frame
	started    bool
	lastResult string
	finished   int // Tournaments completed

	session    table.Model
	cumulative table.Model
	sessionN   int
	totalN     int

	start    time.Time
	now      time.Time
	width    int
	height   int
	done     bool
	err      error
	quitting bool
}

// NewModel creates the live view. cancel is called when the user quits.
func NewModel(pacer *Pacer, cancel context.CancelFunc) Model {
	h := help.New()
	h.ShowAll = false

	now := time.Now()
	return Model{
		pacer:      pacer,
		cancel:     cancel,
		keys:       DefaultLiveKeyMap(),
		help:       h,
		session:    newStandingsTable(0),
		cumulative: newStandingsTable(0),
		start:      now,
		now:        now,
	}
}

// Init starts the elapsed clock.
func (m Model) Init() tea.Cmd {
	return tickCmd(clockInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.now = time.Time(msg)
		if m.done {
			return m, nil
		}
		return m, tickCmd(clockInterval)

	case MatchStartedMsg:
		m.info = msg.Info
		m.started = true
		m.frame = match.Frame{
			Phase:  match.PhaseHiding,
			Hider:  msg.Info.Grid.HiderStart(),
			Seeker: msg.Info.Grid.SeekerStart(),
		}
		m.setSession(msg.Info.Session)
		m.setCumulative(msg.Info.Cumulative)
		return m, nil

	case FrameMsg:
		m.frame = msg.Frame
		return m, nil

	case MatchFinishedMsg:
		m.lastResult = describeResult(msg.Info, msg.Result)
		m.setSession(msg.Session)
		return m, nil

	case TournamentDoneMsg:
		m.finished++
		m.setCumulative(msg.Summary.Cumulative)
		return m, nil

	case DoneMsg:
		m.done = true
		m.err = msg.Err
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		if m.pacer != nil && !m.done {
			m.pacer.Toggle()
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	return m, nil
}

func (m *Model) setSession(s tournament.Standings) {
	m.session.SetRows(standingsRows(s))
	m.sessionN = len(s)
}

func (m *Model) setCumulative(s tournament.Standings) {
	m.cumulative.SetRows(standingsRows(s))
	m.totalN = len(s)
}

func describeResult(info tournament.MatchInfo, res match.Result) string {
	switch res.Outcome {
	case match.OutcomeSeeker:
		return fmt.Sprintf("%s found %s at tick %d", info.Seeker, info.Hider, res.Tick)
	case match.OutcomeHider:
		return fmt.Sprintf("%s survived %s", info.Hider, info.Seeker)
	case match.OutcomeError:
		return fmt.Sprintf("%s vs %s aborted at tick %d: %v", info.Hider, info.Seeker, res.Tick, res.Err)
	}
	return ""
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	if !m.started {
		b.WriteString(headerStyle.Render("Waiting for the first match..."))
		b.WriteString("\n")
	} else {
		b.WriteString(headerStyle.Render(m.info.Label()))
		b.WriteString("\n")

		phase, ok := phaseStyles[m.frame.Phase]
		if !ok {
			phase = lipgloss.NewStyle()
		}
		b.WriteString(fmt.Sprintf("Tick %d (%s)", m.frame.Tick, phase.Render(m.frame.Phase.String())))
		b.WriteString("\n\n")

		b.WriteString(RenderBoard(m.info.Grid, m.frame.Hider, m.frame.Seeker))
		b.WriteString("\n\n")
	}

	tables := lipgloss.JoinHorizontal(lipgloss.Top,
		panel("Tournament", m.session, m.sessionN == 0),
		"  ",
		panel("All tournaments", m.cumulative, m.totalN == 0),
	)
	b.WriteString(tables)
	b.WriteString("\n")

	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m Model) statusLine() string {
	elapsed := m.now.Sub(m.start).Truncate(time.Second)

	switch {
	case m.done && m.err != nil:
		return errorStyle.Render(fmt.Sprintf("Stopped: %v", m.err))
	case m.done:
		return statusStyle.Render(fmt.Sprintf("Finished %d tournament(s) in %v. Press q to exit.", m.finished, elapsed))
	case m.pacer != nil && m.pacer.Paused():
		return statusStyle.Render("Paused")
	case m.lastResult != "":
		return statusStyle.Render(fmt.Sprintf("%s  [%v]", m.lastResult, elapsed))
	}
	return statusStyle.Render(fmt.Sprintf("[%v]", elapsed))
}

// Board returns the current board without styling.
func (m Model) Board() []string {
	if !m.started {
		return nil
	}
	return m.info.Grid.Rows(m.frame.Hider, m.frame.Seeker)
}

// Done reports whether the scheduler has returned.
func (m Model) Done() bool {
	return m.done
}
