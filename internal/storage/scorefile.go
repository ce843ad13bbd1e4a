package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vovakirdan/hideseek/internal/tournament"
)

// ScoreFile keeps the cumulative record in a JSON object keyed by player:
//
//	{"holly.js": {"seekerWins": 3, "hiderSurvived": 1, "gamesPlayed": 6}}
type ScoreFile struct {
	path string
}

// NewScoreFile returns a score file at path, creating parent directories.
func NewScoreFile(path string) (*ScoreFile, error) {
	path, err := prepare(path)
	if err != nil {
		return nil, err
	}
	return &ScoreFile{path: path}, nil
}

// Path returns the expanded file path.
func (f *ScoreFile) Path() string {
	return f.path
}

// LoadScores reads the cumulative record. A missing file is created empty.
// Undecodable contents yield an empty record and an error wrapping
// tournament.ErrCorruptScores.
func (f *ScoreFile) LoadScores() (tournament.Standings, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := os.WriteFile(f.path, []byte("{}"), 0o644); err != nil {
			return nil, fmt.Errorf("storage: cannot create %s: %w", f.path, err)
		}
		return tournament.Standings{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot read %s: %w", f.path, err)
	}

	var s tournament.Standings
	if err := json.Unmarshal(data, &s); err != nil {
		return tournament.Standings{}, fmt.Errorf("storage: %s: %w: %v", f.path, tournament.ErrCorruptScores, err)
	}
	if s == nil {
		s = tournament.Standings{}
	}
	return s, nil
}

// SaveScores replaces the file contents with s, indented by two spaces.
// The write goes through a temporary file so a crash never truncates the
// previous record.
func (f *ScoreFile) SaveScores(s tournament.Standings) error {
	if s == nil {
		s = tournament.Standings{}
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: cannot encode scores: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".scores-*")
	if err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", f.path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write %s: %w", f.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", f.path, err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("storage: cannot replace %s: %w", f.path, err)
	}
	return nil
}
