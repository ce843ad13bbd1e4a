package match

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/hideseek/internal/grid"
	"github.com/vovakirdan/hideseek/internal/players"
	"github.com/vovakirdan/hideseek/internal/strategy"
)

// recorder collects every frame the engine emits.
type recorder struct {
	frames []Frame
}

func (r *recorder) ObserveTick(f Frame) { r.frames = append(r.frames, f) }

type countingSleeper struct {
	calls int
	total time.Duration
}

func (s *countingSleeper) Sleep(d time.Duration) {
	s.calls++
	s.total += d
}

func still(strategy.Turn) error { return nil }

func goldenConfig() Config {
	return DefaultConfig(grid.New(10, grid.Position{X: 3, Y: 3}))
}

func TestGoldenPath(t *testing.T) {
	holly := players.Holly{}

	run := func() Result {
		return New(goldenConfig(), holly.Hide, holly.Seek).Run(nil, nil)
	}

	res := run()
	if res.Outcome != OutcomeSeeker {
		t.Fatalf("Outcome = %v, expected seeker", res.Outcome)
	}
	if res.Tick != 17 {
		t.Errorf("Caught at tick %d, expected 17", res.Tick)
	}
	want := grid.Position{X: 1, Y: 9}
	if res.Hider != want || res.Seeker != want {
		t.Errorf("Final positions hider=%v seeker=%v, expected both %v", res.Hider, res.Seeker, want)
	}

	// Reproducible
	again := run()
	if again != res {
		t.Errorf("Second run differs: %+v vs %+v", again, res)
	}
}

func TestPhaseOwnership(t *testing.T) {
	sweeper := players.Sweeper{}
	holly := players.Holly{}
	cfg := goldenConfig()

	rec := &recorder{}
	res := New(cfg, sweeper.Hide, holly.Seek).Run(rec, nil)
	if res.Outcome == OutcomeError {
		t.Fatalf("unexpected fault: %v", res.Err)
	}

	var hiderAtSwitch grid.Position
	for _, f := range rec.frames {
		if f.Tick < cfg.HidingTicks {
			if f.Phase != PhaseHiding {
				t.Errorf("tick %d: phase %v, expected HIDING", f.Tick, f.Phase)
			}
			if f.Seeker != cfg.Grid.SeekerStart() {
				t.Errorf("tick %d: seeker moved to %v during hiding", f.Tick, f.Seeker)
			}
			hiderAtSwitch = f.Hider
			continue
		}
		if f.Phase != PhaseSeeking {
			t.Errorf("tick %d: phase %v, expected SEEKING", f.Tick, f.Phase)
		}
		if f.Hider != hiderAtSwitch {
			t.Errorf("tick %d: hider moved to %v during seeking", f.Tick, f.Hider)
		}
	}
}

func TestHiderSurvives(t *testing.T) {
	cfg := goldenConfig()
	rec := &recorder{}

	res := New(cfg, still, still).Run(rec, nil)
	if res.Outcome != OutcomeHider {
		t.Fatalf("Outcome = %v, expected hider", res.Outcome)
	}
	if res.Tick != cfg.MaxTicks-1 {
		t.Errorf("Last tick = %d, expected %d", res.Tick, cfg.MaxTicks-1)
	}
	if len(rec.frames) != cfg.MaxTicks {
		t.Errorf("Observed %d frames, expected %d", len(rec.frames), cfg.MaxTicks)
	}
	for i, f := range rec.frames {
		if f.Tick != i || f.Tick < 0 || f.Tick >= cfg.MaxTicks {
			t.Errorf("frame %d has tick %d", i, f.Tick)
		}
	}
}

func TestIllegalMovesIgnored(t *testing.T) {
	g := grid.New(10, grid.Position{X: 1, Y: 0})
	cfg := DefaultConfig(g)

	// From (0,0): left and up leave the grid, right hits the obstacle.
	pushWalls := func(t strategy.Turn) error {
		t.Move(grid.Left)
		t.Move(grid.Up)
		t.Move(grid.Right)
		return nil
	}
	// From (9,9): right and down leave the grid.
	pushCorner := func(t strategy.Turn) error {
		t.Move(grid.Right)
		t.Move(grid.Down)
		return nil
	}

	rec := &recorder{}
	res := New(cfg, pushWalls, pushCorner).Run(rec, nil)
	if res.Outcome != OutcomeHider {
		t.Fatalf("Outcome = %v, expected hider", res.Outcome)
	}
	for _, f := range rec.frames {
		if f.Hider != g.HiderStart() || f.Seeker != g.SeekerStart() {
			t.Fatalf("tick %d: agents moved to %v / %v", f.Tick, f.Hider, f.Seeker)
		}
	}
}

func TestLastAcceptedMoveWins(t *testing.T) {
	cfg := DefaultConfig(grid.New(10))

	tests := []struct {
		name     string
		moves    []grid.Direction
		expected grid.Position
	}{
		{"down then right", []grid.Direction{grid.Down, grid.Right}, grid.Position{X: 1, Y: 0}},
		{"right then blocked left", []grid.Direction{grid.Right, grid.Left}, grid.Position{X: 1, Y: 0}},
		{"unknown direction", []grid.Direction{"nowhere"}, grid.Position{X: 0, Y: 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hider := func(t strategy.Turn) error {
				for _, d := range tc.moves {
					t.Move(d)
				}
				return nil
			}
			m := New(cfg, hider, still)
			m.Step()
			if got := m.Snapshot().Hider; got != tc.expected {
				t.Errorf("Hider at %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestFaultOnFirstCall(t *testing.T) {
	boom := errors.New("boom")
	cfg := goldenConfig()

	tests := []struct {
		name   string
		hider  strategy.Decide
		target error
	}{
		{
			name: "returned error",
			hider: func(t strategy.Turn) error {
				t.Move(grid.Down)
				return boom
			},
			target: boom,
		},
		{
			name:   "missing capability",
			hider:  nil,
			target: strategy.ErrMissingCapability,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			seekerCalls := 0
			seeker := func(strategy.Turn) error {
				seekerCalls++
				return nil
			}

			res := New(cfg, tc.hider, seeker).Run(nil, nil)
			if res.Outcome != OutcomeError {
				t.Fatalf("Outcome = %v, expected error", res.Outcome)
			}
			if !errors.Is(res.Err, tc.target) {
				t.Errorf("Err = %v, expected %v", res.Err, tc.target)
			}
			if res.Tick != 0 {
				t.Errorf("Fault at tick %d, expected 0", res.Tick)
			}
			if res.Hider != cfg.Grid.HiderStart() || res.Seeker != cfg.Grid.SeekerStart() {
				t.Errorf("Agents moved: hider=%v seeker=%v", res.Hider, res.Seeker)
			}
			if seekerCalls != 0 {
				t.Errorf("Seeker called %d times after fault", seekerCalls)
			}
		})
	}
}

func TestPanicIsFault(t *testing.T) {
	seeker := func(strategy.Turn) error {
		panic("seeker exploded")
	}

	res := New(goldenConfig(), still, seeker).Run(nil, nil)
	if res.Outcome != OutcomeError {
		t.Fatalf("Outcome = %v, expected error", res.Outcome)
	}
	if res.Tick != HidingTicks {
		t.Errorf("Fault at tick %d, expected %d", res.Tick, HidingTicks)
	}
	if res.Err == nil {
		t.Error("Err should describe the panic")
	}
}

func TestRemainingTicks(t *testing.T) {
	var remaining []int
	track := func(t strategy.Turn) error {
		remaining = append(remaining, t.RemainingTicks())
		return nil
	}

	New(goldenConfig(), track, track).Run(nil, nil)

	if len(remaining) != MaxTicks {
		t.Fatalf("Got %d decisions, expected %d", len(remaining), MaxTicks)
	}
	for i, r := range remaining {
		if r != MaxTicks-i {
			t.Errorf("decision %d saw %d remaining, expected %d", i, r, MaxTicks-i)
		}
	}
}

func TestNoTicksAfterCatch(t *testing.T) {
	holly := players.Holly{}
	calls := 0
	seeker := func(t strategy.Turn) error {
		calls++
		return holly.Seek(t)
	}

	m := New(goldenConfig(), holly.Hide, seeker)
	res := m.Run(nil, nil)
	if res.Outcome != OutcomeSeeker {
		t.Fatalf("Outcome = %v, expected seeker", res.Outcome)
	}
	if calls != 8 {
		t.Errorf("Seeker called %d times, expected 8", calls)
	}

	// Further steps are no-ops
	if !m.Step() {
		t.Error("Step() after catch should report done")
	}
	if calls != 8 || m.Result() != res {
		t.Error("Step() after catch changed the match")
	}
}

func TestSensorsScopedToActor(t *testing.T) {
	var walls []grid.Sides
	seeker := func(t strategy.Turn) error {
		walls = append(walls, t.Walls())
		return nil
	}

	cfg := goldenConfig()
	cfg.MaxTicks = HidingTicks + 1
	New(cfg, still, seeker).Run(nil, nil)

	if len(walls) != 1 {
		t.Fatalf("Seeker decided %d times, expected 1", len(walls))
	}
	if want := (grid.Sides{Right: true, Down: true}); walls[0] != want {
		t.Errorf("Seeker walls = %+v, expected %+v", walls[0], want)
	}
}

func TestPacing(t *testing.T) {
	cfg := goldenConfig()
	cfg.TickDelay = 100 * time.Millisecond
	holly := players.Holly{}

	s := &countingSleeper{}
	res := New(cfg, holly.Hide, holly.Seek).Run(nil, s)

	// One pause between consecutive ticks, none after the last
	if s.calls != res.Tick {
		t.Errorf("Sleep called %d times, expected %d", s.calls, res.Tick)
	}
	if s.total != time.Duration(res.Tick)*cfg.TickDelay {
		t.Errorf("Slept %v in total", s.total)
	}
}

func TestOutcomeAndPhaseStrings(t *testing.T) {
	if OutcomeSeeker.String() != "seeker" || OutcomeHider.String() != "hider" || OutcomeError.String() != "error" {
		t.Error("unexpected outcome names")
	}
	if PhaseHiding.String() != "HIDING" || PhaseSeeking.String() != "SEEKING" {
		t.Error("unexpected phase names")
	}
}
