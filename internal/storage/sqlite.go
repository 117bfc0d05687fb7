// Package storage persists finished taxi runs: a SQLite database for the
// scoreboard and a plain score file with one line per session.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-taxi/internal/core"
)

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry is one finished run.
type ScoreEntry struct {
	ID        int64
	GameID    string
	RunID     string
	Player    string
	Earnings  float64
	Won       bool
	Frames    int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := ExpandHome(dbPath)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
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

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			run_id TEXT NOT NULL UNIQUE,
			player TEXT NOT NULL,
			earnings REAL NOT NULL,
			won INTEGER NOT NULL DEFAULT 0,
			frames INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_game_id ON runs(game_id);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(game_id, earnings DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_player ON runs(player);
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

// SaveScore records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(rec core.ScoreRecord) (int64, error) {
	at := rec.At
	if at.IsZero() {
		at = time.Now()
	}
	if rec.RunID == "" {
		rec.RunID = uuid.NewString()
	}

	result, err := s.db.Exec(
		`INSERT INTO runs (game_id, run_id, player, earnings, won, frames, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.GameID, rec.RunID, rec.Player, rec.Earnings, rec.Won, rec.Frames,
		at.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecordScore implements core.ScoreRecorder.
func (s *Store) RecordScore(rec core.ScoreRecord) error {
	_, err := s.SaveScore(rec)
	return err
}

var _ core.ScoreRecorder = (*Store)(nil)

const selectRuns = `SELECT id, game_id, run_id, player, earnings, won, frames, created_at FROM runs`

// TopScores retrieves the best N runs for the given game.
// Results are ordered by earnings descending, older runs first on ties.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(selectRuns+` WHERE game_id = ? ORDER BY earnings DESC, id ASC LIMIT ?`, gameID, limit)
}

// AllScores retrieves every run for the given game (no limit).
func (s *Store) AllScores(gameID string) ([]ScoreEntry, error) {
	return s.query(selectRuns+` WHERE game_id = ? ORDER BY earnings DESC, id ASC`, gameID)
}

// RecentScores retrieves the latest N runs for the given game, newest first.
func (s *Store) RecentScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(selectRuns+` WHERE game_id = ? ORDER BY created_at DESC, id DESC LIMIT ?`, gameID, limit)
}

// PlayerScores retrieves a player's most recent runs across all modes.
func (s *Store) PlayerScores(player string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.query(selectRuns+` WHERE player = ? ORDER BY created_at DESC, id DESC LIMIT ?`, player, limit)
}

func (s *Store) query(q string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.RunID, &e.Player, &e.Earnings, &e.Won, &e.Frames, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(timeLayout, v); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// HighScore returns the best earnings for the given game.
// Returns 0 if no runs exist.
func (s *Store) HighScore(gameID string) (float64, error) {
	var best sql.NullFloat64
	err := s.db.QueryRow(
		"SELECT MAX(earnings) FROM runs WHERE game_id = ?",
		gameID,
	).Scan(&best)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !best.Valid {
		return 0, nil
	}

	return best.Float64, nil
}

// ClearScores deletes all runs for the given game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game mode.
type GameStats struct {
	GameID        string
	GamesCount    int
	Wins          int
	BestEarnings  float64
	AvgEarnings   float64
	TotalEarnings float64
	LastPlayed    time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), COALESCE(MAX(earnings), 0),
		        COALESCE(AVG(earnings), 0), COALESCE(SUM(earnings), 0)
		 FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.Wins, &stats.BestEarnings, &stats.AvgEarnings, &stats.TotalEarnings)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE game_id = ? ORDER BY created_at DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// GetAllGamesStats retrieves statistics for every mode that has been played.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*), SUM(won), MAX(earnings), AVG(earnings), SUM(earnings), MAX(created_at)
		 FROM runs
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var gs GameStats
		var lastPlayed any
		if err := rows.Scan(&gs.GameID, &gs.GamesCount, &gs.Wins, &gs.BestEarnings,
			&gs.AvgEarnings, &gs.TotalEarnings, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		gs.LastPlayed = parseTime(lastPlayed)
		stats[gs.GameID] = &gs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
