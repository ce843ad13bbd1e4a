package tournament

import (
	"encoding/json"
	"time"

	"github.com/vovakirdan/hideseek/internal/grid"
	"github.com/vovakirdan/hideseek/internal/match"
)

// Result labels written to the match log.
const (
	ResultSurvived = "survived"
	ResultFound    = "found"
	ResultMissed   = "missed"
)

// Entry is one line of the match log.
type Entry struct {
	Time         time.Time
	TournamentID string
	MatchID      string
	Hider        string
	Seeker       string
	Outcome      match.Outcome
	Ticks        int
	Grid         grid.Grid
}

// HiderResult is "survived" only when the hider won.
func (e Entry) HiderResult() string {
	if e.Outcome == match.OutcomeHider {
		return ResultSurvived
	}
	return ResultFound
}

// SeekerResult is "found" only when the seeker won.
func (e Entry) SeekerResult() string {
	if e.Outcome == match.OutcomeSeeker {
		return ResultFound
	}
	return ResultMissed
}

// ObstacleJSON encodes the grid as {"gridSize":N,"obstacles":[{"x":..,"y":..}]}.
func (e Entry) ObstacleJSON() (string, error) {
	g := e.Grid
	if g.Obstacles == nil {
		g.Obstacles = []grid.Position{}
	}
	b, err := json.Marshal(g)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Timestamp formats Time as UTC ISO-8601 with milliseconds.
func (e Entry) Timestamp() string {
	return e.Time.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
