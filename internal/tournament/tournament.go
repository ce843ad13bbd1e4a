// Package tournament schedules a round-robin of hide and seek matches between
// every ordered pair of registered players, keeps the session standings and
// merges them into the persisted cumulative record when the run ends.
//
// Execution is strictly sequential: one match runs to completion before the
// next begins. Session standings are threaded through each match step and are
// only merged into the cumulative record at the end of the run.
package tournament

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/hideseek/internal/grid"
	"github.com/vovakirdan/hideseek/internal/match"
	"github.com/vovakirdan/hideseek/internal/strategy"
)

// DefaultObstacles is the number of obstacles drawn per run.
const DefaultObstacles = 5

// ErrCorruptScores is wrapped by score stores whose persisted data cannot be
// decoded. The run continues with an empty cumulative record.
var ErrCorruptScores = errors.New("tournament: corrupt cumulative scores")

// Catalog resolves player identities.
type Catalog interface {
	IDs() []string
	Lookup(id string) (strategy.Player, bool)
}

// ScoreStore persists the cumulative record.
type ScoreStore interface {
	LoadScores() (Standings, error)
	SaveScores(s Standings) error
}

// MatchLog is the append-only record of completed pairings.
type MatchLog interface {
	AppendMatch(e Entry) error
}

// Pairing is one scheduled match.
type Pairing struct {
	Hider  string
	Seeker string
}

// Pairings returns every ordered pair of distinct players, hider-major.
// n players yield n*(n-1) pairings; fewer than two yield none.
func Pairings(ids []string) []Pairing {
	var pairs []Pairing
	for i, h := range ids {
		for j, s := range ids {
			if i == j {
				continue
			}
			pairs = append(pairs, Pairing{Hider: h, Seeker: s})
		}
	}
	return pairs
}

// MatchInfo describes the match about to be played, for observers.
type MatchInfo struct {
	TournamentID string
	MatchID      string
	Index        int // 1-based
	Total        int
	Pairing
	Grid       grid.Grid
	Session    Standings
	Cumulative Standings
}

// Label returns the header line shown above the board.
func (i MatchInfo) Label() string {
	return fmt.Sprintf("%s | Match %d/%d: %s (H) vs %s (S)", i.TournamentID, i.Index, i.Total, i.Hider, i.Seeker)
}

// Observer follows a tournament. All calls happen on the scheduling goroutine.
type Observer interface {
	match.Observer
	MatchStarted(info MatchInfo)
	MatchFinished(info MatchInfo, res match.Result, session Standings)
}

// MatchRecord is the outcome of one pairing.
type MatchRecord struct {
	MatchID string
	Pairing
	Result match.Result
}

// Summary is returned when a run completes.
type Summary struct {
	ID         string
	Grid       grid.Grid
	Players    []string
	Matches    []MatchRecord
	Session    Standings
	Cumulative Standings
}

// Options configures a Tournament. Zero ID, GridSize, HidingTicks and
// MaxTicks fall back to defaults.
type Options struct {
	ID string // Defaults to "tournament-<unix ms>"

	// Grid is used as-is when Grid.Size > 0. Otherwise a GridSize grid with
	// Obstacles random obstacles is generated from Seed.
	Grid      grid.Grid
	GridSize  int
	Obstacles int
	Seed      int64

	HidingTicks int
	MaxTicks    int
	TickDelay   time.Duration
	MatchDelay  time.Duration

	Logger   *log.Logger
	Observer Observer
	Sleeper  match.Sleeper // nil disables pacing
	Now      func() time.Time
}

// Tournament is one round-robin pass over the catalog.
type Tournament struct {
	catalog Catalog
	scores  ScoreStore
	log     MatchLog
	opts    Options
	logger  *log.Logger
}

// New creates a tournament. scores and mlog may be nil to skip persistence.
func New(catalog Catalog, scores ScoreStore, mlog MatchLog, opts Options) *Tournament {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.ID == "" {
		opts.ID = fmt.Sprintf("tournament-%d", opts.Now().UnixMilli())
	}
	if opts.GridSize <= 0 {
		opts.GridSize = grid.DefaultSize
	}
	if opts.HidingTicks <= 0 {
		opts.HidingTicks = match.HidingTicks
	}
	if opts.MaxTicks <= 0 {
		opts.MaxTicks = match.MaxTicks
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Tournament{
		catalog: catalog,
		scores:  scores,
		log:     mlog,
		opts:    opts,
		logger:  logger.With("tournament", opts.ID),
	}
}

// ID returns the tournament identifier.
func (t *Tournament) ID() string {
	return t.opts.ID
}

// Run plays every pairing and persists the merged cumulative record.
// Persistence failures are fatal and stop scheduling. A cancelled ctx stops
// before the next match and leaves the cumulative record untouched.
func (t *Tournament) Run(ctx context.Context) (Summary, error) {
	ids := t.catalog.IDs()
	g := t.buildGrid()
	pairs := Pairings(ids)

	summary := Summary{
		ID:      t.opts.ID,
		Grid:    g,
		Players: ids,
	}

	cumulative, err := t.loadCumulative()
	if err != nil {
		return summary, err
	}

	t.logger.Info("tournament started",
		"players", len(ids),
		"matches", len(pairs),
		"obstacles", len(g.Obstacles),
	)

	session := NewStandings(ids)
	for i, p := range pairs {
		if err := ctx.Err(); err != nil {
			summary.Session = session
			return summary, fmt.Errorf("tournament: %s interrupted: %w", t.opts.ID, err)
		}
		if i > 0 && t.opts.Sleeper != nil && t.opts.MatchDelay > 0 {
			t.opts.Sleeper.Sleep(t.opts.MatchDelay)
		}

		info := MatchInfo{
			TournamentID: t.opts.ID,
			MatchID:      uuid.NewString(),
			Index:        i + 1,
			Total:        len(pairs),
			Pairing:      p,
			Grid:         g,
			Session:      session,
			Cumulative:   cumulative,
		}

		var rec MatchRecord
		session, rec, err = t.playMatch(session, info)
		summary.Matches = append(summary.Matches, rec)
		if err != nil {
			summary.Session = session
			return summary, err
		}
	}

	merged := cumulative.Merge(session)
	if t.scores != nil {
		if err := t.scores.SaveScores(merged); err != nil {
			summary.Session = session
			return summary, fmt.Errorf("tournament: cannot save cumulative scores: %w", err)
		}
	}

	summary.Session = session
	summary.Cumulative = merged
	t.logger.Info("tournament finished", "matches", len(summary.Matches))
	return summary, nil
}

// playMatch runs one pairing and returns the updated session standings.
func (t *Tournament) playMatch(session Standings, info MatchInfo) (Standings, MatchRecord, error) {
	if t.opts.Observer != nil {
		t.opts.Observer.MatchStarted(info)
	}

	cfg := match.Config{
		Grid:        info.Grid,
		HidingTicks: t.opts.HidingTicks,
		MaxTicks:    t.opts.MaxTicks,
		TickDelay:   t.opts.TickDelay,
	}
	m := match.New(cfg, t.bind(info.Hider, strategy.RoleHider), t.bind(info.Seeker, strategy.RoleSeeker))

	var obs match.Observer
	if t.opts.Observer != nil {
		obs = t.opts.Observer
	}
	res := m.Run(obs, t.opts.Sleeper)

	session = Score(session, info.Pairing, res.Outcome)
	rec := MatchRecord{MatchID: info.MatchID, Pairing: info.Pairing, Result: res}

	if res.Outcome == match.OutcomeError {
		t.logger.Warn("match aborted by strategy fault",
			"hider", info.Hider, "seeker", info.Seeker, "tick", res.Tick, "error", res.Err)
	} else {
		t.logger.Info("match finished",
			"hider", info.Hider, "seeker", info.Seeker, "outcome", res.Outcome, "tick", res.Tick)
	}

	if t.log != nil {
		entry := Entry{
			Time:         t.opts.Now(),
			TournamentID: info.TournamentID,
			MatchID:      info.MatchID,
			Hider:        info.Hider,
			Seeker:       info.Seeker,
			Outcome:      res.Outcome,
			Ticks:        res.Tick + 1,
			Grid:         info.Grid,
		}
		if err := t.log.AppendMatch(entry); err != nil {
			return session, rec, fmt.Errorf("tournament: cannot append match log: %w", err)
		}
	}

	if t.opts.Observer != nil {
		t.opts.Observer.MatchFinished(info, res, session)
	}
	return session, rec, nil
}

// Score applies the bookkeeping for one completed pairing and returns the
// updated table. An Error outcome only counts the game as played.
func Score(session Standings, p Pairing, o match.Outcome) Standings {
	out := session.Clone()
	h, s := out[p.Hider], out[p.Seeker]

	switch o {
	case match.OutcomeSeeker:
		s.SeekerWins++
	case match.OutcomeHider:
		h.HiderSurvived++
	case match.OutcomeError, match.OutcomeNone:
	}
	h.GamesPlayed++
	s.GamesPlayed++

	out[p.Hider] = h
	out[p.Seeker] = s
	return out
}

// bind resolves a player's capability for role. Unknown players bind to nil,
// which the engine reports as a missing capability.
func (t *Tournament) bind(id string, role strategy.Role) strategy.Decide {
	p, ok := t.catalog.Lookup(id)
	if !ok {
		t.logger.Warn("player not found in catalog", "player", id, "role", role)
		return nil
	}
	return strategy.Bind(p, role)
}

func (t *Tournament) buildGrid() grid.Grid {
	if t.opts.Grid.Size > 0 {
		return t.opts.Grid
	}
	seed := t.opts.Seed
	if seed == 0 {
		seed = t.opts.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	return grid.New(t.opts.GridSize, grid.RandomObstacles(t.opts.GridSize, t.opts.Obstacles, rng)...)
}

func (t *Tournament) loadCumulative() (Standings, error) {
	if t.scores == nil {
		return Standings{}, nil
	}
	cum, err := t.scores.LoadScores()
	switch {
	case errors.Is(err, ErrCorruptScores):
		t.logger.Warn("cumulative scores unreadable, starting empty", "error", err)
		return Standings{}, nil
	case err != nil:
		return nil, fmt.Errorf("tournament: cannot load cumulative scores: %w", err)
	}
	if cum == nil {
		cum = Standings{}
	}
	return cum, nil
}
