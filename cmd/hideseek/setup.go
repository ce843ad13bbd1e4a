package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hideseek/internal/config"
	"github.com/vovakirdan/hideseek/internal/players/script"
	"github.com/vovakirdan/hideseek/internal/storage"
	"github.com/vovakirdan/hideseek/internal/strategy"
	"github.com/vovakirdan/hideseek/internal/tournament"
)

// loadConfig reads the config file and environment, then applies any global
// flag the user set explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Storage.Backend = flagBackend
	}
	if flags.Changed("players") {
		cfg.Players.Dir = flagPlayers
	}
	if flags.Changed("no-builtin") {
		cfg.Players.Builtin = !flagNoBuiltin
	}
	return cfg, cfg.Validate()
}

func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "hideseek",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// buildCatalog resolves built-in and script players into one registry.
func buildCatalog(cfg config.Config, logger *log.Logger) (*strategy.Registry, error) {
	reg := strategy.NewRegistry()
	if cfg.Players.Builtin {
		reg = strategy.Default.Clone()
	}

	ids, err := script.LoadDir(cfg.Players.Dir, reg, logger)
	if err != nil {
		return nil, err
	}
	logger.Debug("script players loaded", "dir", cfg.Players.Dir, "count", len(ids))
	return reg, nil
}

// backend bundles the configured persistence.
type backend struct {
	scores  tournament.ScoreStore
	log     tournament.MatchLog
	db      *storage.Store // nil for the file backend
	closers []io.Closer
}

// openBackend opens the cumulative record and, when withLog is set, the
// match log of the configured backend.
func openBackend(cfg config.Config, withLog bool) (*backend, error) {
	b := &backend{}

	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		store, err := storage.Open(cfg.Storage.DBPath)
		if err != nil {
			return nil, err
		}
		b.scores = store
		b.db = store
		b.closers = append(b.closers, store)
		if withLog {
			b.log = store
		}

	case config.BackendFile:
		scores, err := storage.NewScoreFile(cfg.Storage.ScoresPath)
		if err != nil {
			return nil, err
		}
		b.scores = scores
		if withLog {
			mlog, err := storage.OpenCSVLog(cfg.Storage.LogPath)
			if err != nil {
				return nil, err
			}
			b.log = mlog
			b.closers = append(b.closers, mlog)
		}

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
	return b, nil
}

func (b *backend) Close() error {
	var errs []error
	for _, c := range b.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// fail prints an error and exits.
func fail(what string, err error) {
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", what, err)
	os.Exit(1)
}
