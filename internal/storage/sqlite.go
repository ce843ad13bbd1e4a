// Package storage persists the cumulative record and the match log.
// Two backends are provided: a JSON score file paired with a CSV log, and a
// single SQLite database using the pure-Go modernc.org/sqlite driver.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/hideseek/internal/tournament"
)

// Store keeps scores and match history in SQLite.
type Store struct {
	db *sql.DB
}

// MatchRow is one stored match log entry.
type MatchRow struct {
	ID           int64
	MatchID      string
	TournamentID string
	Hider        string
	Seeker       string
	Outcome      string
	HiderResult  string
	SeekerResult string
	Ticks        int
	Obstacles    string
	CreatedAt    time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := prepare(dbPath)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS cumulative_scores (
			player_id TEXT PRIMARY KEY,
			seeker_wins INTEGER NOT NULL DEFAULT 0,
			hider_survived INTEGER NOT NULL DEFAULT 0,
			games_played INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS match_log (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			tournament_id TEXT NOT NULL,
			hider TEXT NOT NULL,
			seeker TEXT NOT NULL,
			outcome TEXT NOT NULL,
			result_hider TEXT NOT NULL,
			result_seeker TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			obstacles TEXT NOT NULL,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_match_log_tournament ON match_log(tournament_id);
		CREATE INDEX IF NOT EXISTS idx_match_log_hider ON match_log(hider);
		CREATE INDEX IF NOT EXISTS idx_match_log_seeker ON match_log(seeker);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// LoadScores returns the cumulative record for every stored player.
func (s *Store) LoadScores() (tournament.Standings, error) {
	rows, err := s.db.Query(
		`SELECT player_id, seeker_wins, hider_survived, games_played
		 FROM cumulative_scores`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	out := tournament.Standings{}
	for rows.Next() {
		var id string
		var r tournament.Record
		if err := rows.Scan(&id, &r.SeekerWins, &r.HiderSurvived, &r.GamesPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		out[id] = r
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// SaveScores writes every record of st in one transaction. Players missing
// from st keep their stored record.
func (s *Store) SaveScores(st tournament.Standings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT INTO cumulative_scores (player_id, seeker_wins, hider_survived, games_played, updated_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(player_id) DO UPDATE SET
		   seeker_wins = excluded.seeker_wins,
		   hider_survived = excluded.hider_survived,
		   games_played = excluded.games_played,
		   updated_at = excluded.updated_at`,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot prepare score update: %w", err)
	}
	defer stmt.Close()

	for id, r := range st {
		if _, err := stmt.Exec(id, r.SeekerWins, r.HiderSurvived, r.GamesPlayed); err != nil {
			return fmt.Errorf("storage: cannot save score for %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit scores: %w", err)
	}
	return nil
}

// AppendMatch records one completed match.
func (s *Store) AppendMatch(e tournament.Entry) error {
	obstacles, err := e.ObstacleJSON()
	if err != nil {
		return fmt.Errorf("storage: cannot encode obstacles: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO match_log
		 (match_id, tournament_id, hider, seeker, outcome, result_hider, result_seeker, ticks, obstacles, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.MatchID,
		e.TournamentID,
		e.Hider,
		e.Seeker,
		e.Outcome.String(),
		e.HiderResult(),
		e.SeekerResult(),
		e.Ticks,
		obstacles,
		e.Timestamp(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save match: %w", err)
	}
	return nil
}

// RecentMatches returns the latest matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchRow, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryMatches(
		`SELECT id, match_id, tournament_id, hider, seeker, outcome,
		        result_hider, result_seeker, ticks, obstacles, created_at
		 FROM match_log
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

// PlayerMatches returns the latest matches the player took part in, in
// either role, newest first.
func (s *Store) PlayerMatches(playerID string, limit int) ([]MatchRow, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryMatches(
		`SELECT id, match_id, tournament_id, hider, seeker, outcome,
		        result_hider, result_seeker, ticks, obstacles, created_at
		 FROM match_log
		 WHERE hider = ? OR seeker = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		playerID, playerID, limit,
	)
}

func (s *Store) queryMatches(query string, args ...any) ([]MatchRow, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var results []MatchRow
	for rows.Next() {
		var r MatchRow
		var createdAt string
		if err := rows.Scan(
			&r.ID,
			&r.MatchID,
			&r.TournamentID,
			&r.Hider,
			&r.Seeker,
			&r.Outcome,
			&r.HiderResult,
			&r.SeekerResult,
			&r.Ticks,
			&r.Obstacles,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if parsed, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			r.CreatedAt = parsed
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}
