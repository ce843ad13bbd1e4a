// Package match runs a single hide and seek contest between two bound
// strategies. The engine is synchronous and deterministic for a fixed grid
// and deterministic strategies.
package match

import (
	"fmt"
	"time"

	"github.com/vovakirdan/hideseek/internal/grid"
	"github.com/vovakirdan/hideseek/internal/strategy"
)

// Default tick budget.
const (
	HidingTicks = 10
	MaxTicks    = 90
)

// Phase is the state of the match state machine.
type Phase int

const (
	PhaseHiding Phase = iota
	PhaseSeeking
	PhaseDone
)

// String returns the phase label used by the live view.
func (p Phase) String() string {
	switch p {
	case PhaseHiding:
		return "HIDING"
	case PhaseSeeking:
		return "SEEKING"
	case PhaseDone:
		return "DONE"
	default:
		return "UNKNOWN"
	}
}

// Outcome is the terminal result of a match.
type Outcome int

const (
	OutcomeNone   Outcome = iota // Match still running
	OutcomeSeeker                // Hider was caught
	OutcomeHider                 // Hider survived the tick budget
	OutcomeError                 // Strategy fault, no score attributed
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeSeeker:
		return "seeker"
	case OutcomeHider:
		return "hider"
	case OutcomeError:
		return "error"
	default:
		return "unknown"
	}
}

// Config holds the fixed parameters of a match.
type Config struct {
	Grid        grid.Grid
	HidingTicks int
	MaxTicks    int
	TickDelay   time.Duration // Pause after each tick when a Sleeper is given
}

// DefaultConfig returns a Config with the default tick budget on g.
func DefaultConfig(g grid.Grid) Config {
	return Config{
		Grid:        g,
		HidingTicks: HidingTicks,
		MaxTicks:    MaxTicks,
	}
}

// Frame is a snapshot of the match after a tick.
type Frame struct {
	Tick      int
	Phase     Phase
	Hider     grid.Position
	Seeker    grid.Position
	Remaining int
	Outcome   Outcome
}

// Result is returned once the match is decided.
type Result struct {
	Outcome Outcome
	Tick    int // Last evaluated tick
	Hider   grid.Position
	Seeker  grid.Position
	Err     error // Set only for OutcomeError
}

// Observer receives a frame after every tick. Purely observational.
type Observer interface {
	ObserveTick(f Frame)
}

// Sleeper provides pacing between ticks. Implementations may return early.
type Sleeper interface {
	Sleep(d time.Duration)
}

// Match owns the state of one contest.
type Match struct {
	cfg    Config
	hider  strategy.Decide
	seeker strategy.Decide

	hiderPos  grid.Position
	seekerPos grid.Position
	tick      int
	phase     Phase
	outcome   Outcome
	err       error

	last Frame // State after the most recently evaluated tick
}

// New creates a match in the Hiding phase with both agents on their start corners.
// A nil decision function is reported as a strategy fault when it is first needed.
func New(cfg Config, hider, seeker strategy.Decide) *Match {
	m := &Match{
		cfg:       cfg,
		hider:     hider,
		seeker:    seeker,
		hiderPos:  cfg.Grid.HiderStart(),
		seekerPos: cfg.Grid.SeekerStart(),
		phase:     PhaseHiding,
	}
	m.record(PhaseHiding)
	return m
}

// Step evaluates one tick and reports whether the match is decided.
func (m *Match) Step() bool {
	if m.phase == PhaseDone {
		return true
	}
	if m.cfg.MaxTicks <= 0 {
		m.finish(PhaseHiding, OutcomeHider, nil)
		return true
	}

	if m.phase == PhaseHiding && m.tick >= m.cfg.HidingTicks {
		m.phase = PhaseSeeking
	}

	acting := m.phase
	decide, pos := m.hider, &m.hiderPos
	if acting == PhaseSeeking {
		decide, pos = m.seeker, &m.seekerPos
	}

	t := &turn{
		grid:      m.cfg.Grid,
		from:      *pos,
		remaining: m.cfg.MaxTicks - m.tick,
	}
	if err := invoke(decide, t); err != nil {
		m.finish(acting, OutcomeError, err)
		return true
	}
	if t.moved {
		*pos = t.to
	}

	if acting == PhaseSeeking && m.hiderPos == m.seekerPos {
		m.finish(acting, OutcomeSeeker, nil)
		return true
	}
	if m.tick >= m.cfg.MaxTicks-1 {
		m.finish(acting, OutcomeHider, nil)
		return true
	}

	m.record(acting)
	m.tick++
	return false
}

// Run steps the match to completion. obs and sleeper may be nil.
func (m *Match) Run(obs Observer, sleeper Sleeper) Result {
	for {
		done := m.Step()
		if obs != nil {
			obs.ObserveTick(m.Snapshot())
		}
		if done {
			return m.Result()
		}
		if sleeper != nil && m.cfg.TickDelay > 0 {
			sleeper.Sleep(m.cfg.TickDelay)
		}
	}
}

// Snapshot returns the state after the most recently evaluated tick.
// Phase is the phase that tick was played in; the match itself may be done.
func (m *Match) Snapshot() Frame {
	return m.last
}

// Done reports whether the match has an outcome.
func (m *Match) Done() bool {
	return m.phase == PhaseDone
}

// Result returns the outcome so far. Outcome is OutcomeNone while running.
func (m *Match) Result() Result {
	return Result{
		Outcome: m.outcome,
		Tick:    m.tick,
		Hider:   m.hiderPos,
		Seeker:  m.seekerPos,
		Err:     m.err,
	}
}

func (m *Match) finish(acting Phase, o Outcome, err error) {
	m.phase = PhaseDone
	m.outcome = o
	m.err = err
	m.record(acting)
}

func (m *Match) record(acting Phase) {
	m.last = Frame{
		Tick:      m.tick,
		Phase:     acting,
		Hider:     m.hiderPos,
		Seeker:    m.seekerPos,
		Remaining: m.cfg.MaxTicks - m.tick,
		Outcome:   m.outcome,
	}
}

// invoke calls decide, converting a panic into a fault.
func invoke(decide strategy.Decide, t *turn) (err error) {
	if decide == nil {
		return strategy.ErrMissingCapability
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("match: strategy panicked: %v", r)
		}
	}()
	if err := decide(t); err != nil {
		return fmt.Errorf("match: strategy fault: %w", err)
	}
	return nil
}
