package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hideseek/internal/config"
	"github.com/vovakirdan/hideseek/internal/match"
	"github.com/vovakirdan/hideseek/internal/platform/tui"
	"github.com/vovakirdan/hideseek/internal/tournament"
)

var (
	flagRuns    int
	flagPlain   bool
	flagSeed    int64
	flagFast    bool
	flagLogFile string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run round-robin tournaments",
	Long: `Run every player against every other player, once in each role, and
merge the results into the cumulative record.

On a terminal the matches are shown live. Use --plain for log output only.

Examples:
  hideseek run
  hideseek run --runs 10 --fast
  hideseek run --plain --seed 42 --backend sqlite`,
	Run: runRun,
}

func init() {
	runCmd.Flags().IntVar(&flagRuns, "runs", 1, "Number of tournaments to run back to back")
	runCmd.Flags().BoolVar(&flagPlain, "plain", false, "Disable the live view")
	runCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Obstacle RNG seed (0 = random based on time)")
	runCmd.Flags().BoolVar(&flagFast, "fast", false, "Disable pacing delays in the live view")
	runCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while the live view runs")
}

func runRun(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fail("loading config", err)
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flagRuns < 1 {
		fail("parsing flags", fmt.Errorf("--runs must be at least 1"))
	}

	live := !flagPlain && term.IsTerminal(int(os.Stdout.Fd()))

	// The live view owns the screen, so logs go to a file or nowhere
	var logOut io.Writer = os.Stderr
	if live {
		logOut = io.Discard
		if flagLogFile != "" {
			f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				fail("opening log file", err)
			}
			defer f.Close()
			logOut = f
		}
	}
	logger := newLogger(logOut)

	catalog, err := buildCatalog(cfg, logger)
	if err != nil {
		fail("loading players", err)
	}
	if catalog.Len() < 2 {
		logger.Warn("fewer than two players, no matches will be played", "players", catalog.Len())
	}

	b, err := openBackend(cfg, true)
	if err != nil {
		fail("opening storage", err)
	}
	defer b.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := &series{
		cfg:     cfg,
		catalog: catalog,
		backend: b,
		logger:  logger,
		runs:    flagRuns,
	}

	if live {
		err = tui.Run(ctx, func(ctx context.Context, obs *tui.Observer, sleeper match.Sleeper) error {
			if flagFast {
				sleeper = nil
			}
			return s.play(ctx, obs, sleeper)
		})
	} else {
		err = s.play(ctx, nil, nil)
	}

	printSummaries(os.Stdout, s.summaries)
	if err != nil {
		b.Close()
		fail("running tournament", err)
	}
}

// series runs consecutive tournaments against one backend.
type series struct {
	cfg     config.Config
	catalog tournament.Catalog
	backend *backend
	logger  *log.Logger
	runs    int
	now     func() time.Time

	lastMS    int64
	summaries []tournament.Summary
}

// play runs the tournaments in order and stops at the first error.
func (s *series) play(ctx context.Context, obs *tui.Observer, sleeper match.Sleeper) error {
	for i := 0; i < s.runs; i++ {
		opts := s.options(i)
		if obs != nil {
			opts.Observer = obs
			opts.Sleeper = sleeper
		}

		t := tournament.New(s.catalog, s.backend.scores, s.backend.log, opts)
		summary, err := t.Run(ctx)
		s.summaries = append(s.summaries, summary)
		if err != nil {
			return err
		}
		if obs != nil {
			obs.TournamentDone(summary)
		}
	}
	return nil
}

// options builds the tournament options for run i.
func (s *series) options(i int) tournament.Options {
	now := s.now
	if now == nil {
		now = time.Now
	}

	seed := s.cfg.Seed
	if seed != 0 {
		seed += int64(i)
	}

	return tournament.Options{
		ID:          s.nextID(now()),
		GridSize:    s.cfg.Grid.Size,
		Obstacles:   s.cfg.Grid.Obstacles,
		Seed:        seed,
		HidingTicks: s.cfg.Match.HidingTicks,
		MaxTicks:    s.cfg.Match.MaxTicks,
		TickDelay:   s.cfg.Pacing.TickDelay,
		MatchDelay:  s.cfg.Pacing.MatchDelay,
		Logger:      s.logger,
		Now:         now,
	}
}

// nextID returns "tournament-<unix ms>", bumped past the previous ID when
// two runs start within the same millisecond.
func (s *series) nextID(t time.Time) string {
	ms := t.UnixMilli()
	if ms <= s.lastMS {
		ms = s.lastMS + 1
	}
	s.lastMS = ms
	return fmt.Sprintf("tournament-%d", ms)
}
