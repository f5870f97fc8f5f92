// Package storage provides SQLite-based persistence for the high-score list
// and the history of finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-jumper/internal/highscore"
	"github.com/vovakirdan/tui-jumper/internal/jumper"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RunEntry represents one finished run.
type RunEntry struct {
	ID              int64
	Score           int
	CoinsCollected  int
	DifficultyLevel int
	Ticks           int
	Rank            int
	Seed            int64
	CreatedAt       time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// SSH sessions share one store; a single connection serializes writers.
	db.SetMaxOpenConns(1)

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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			coins INTEGER NOT NULL DEFAULT 0,
			level INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			rank INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_score ON runs(score DESC);

		CREATE TABLE IF NOT EXISTS high_scores (
			rank INTEGER PRIMARY KEY,
			score INTEGER NOT NULL
		);
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

// SaveRun appends a finished run to the history.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(run jumper.RunSummary) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (score, coins, level, ticks, rank, seed)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.Score, run.CoinsCollected, run.DifficultyLevel, run.Ticks, run.Rank, run.Seed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecordRun implements jumper.RunRecorder.
func (s *Store) RecordRun(run jumper.RunSummary) error {
	_, err := s.SaveRun(run)
	return err
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT id, score, coins, level, ticks, rank, seed, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

// TopRuns retrieves the best runs ever played, ordered by score descending.
func (s *Store) TopRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, score, coins, level, ticks, rank, seed, created_at
		 FROM runs
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]RunEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Score, &e.CoinsCollected, &e.DifficultyLevel,
			&e.Ticks, &e.Rank, &e.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ClearRuns deletes the whole run history.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// RunStats contains aggregated statistics over the run history.
type RunStats struct {
	RunsCount  int
	BestScore  int
	AvgScore   float64
	TotalCoins int64
	MaxLevel   int
	TotalTicks int64
	LastPlayed time.Time
}

// Stats retrieves aggregated statistics over all recorded runs.
func (s *Store) Stats() (*RunStats, error) {
	stats := &RunStats{}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(coins), 0), COALESCE(MAX(level), 0), COALESCE(SUM(ticks), 0),
		        MAX(created_at)
		 FROM runs`,
	).Scan(&stats.RunsCount, &stats.BestScore, &stats.AvgScore,
		&stats.TotalCoins, &stats.MaxLevel, &stats.TotalTicks, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	stats.LastPlayed = parseTimestamp(lastPlayed)

	return stats, nil
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	Query(query string, args ...any) (*sql.Rows, error)
	Exec(query string, args ...any) (sql.Result, error)
}

// Load implements highscore.Store. Any database error yields an empty list.
func (s *Store) Load() []int {
	scores, err := loadScores(s.db)
	if err != nil {
		return []int{}
	}
	return scores
}

// Save implements highscore.Store, replacing the stored list atomically.
func (s *Store) Save(scores []int) error {
	return s.inTx(func(tx *sql.Tx) error {
		return saveScores(tx, scores)
	})
}

// Update implements highscore.Updater. The list is read and rewritten in
// one transaction; with a single connection, concurrent updates queue up.
func (s *Store) Update(fn func(scores []int) []int) error {
	return s.inTx(func(tx *sql.Tx) error {
		current, err := loadScores(tx)
		if err != nil {
			return err
		}
		return saveScores(tx, fn(current))
	})
}

func (s *Store) inTx(fn func(tx *sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit high scores: %w", err)
	}
	return nil
}

func loadScores(q queryer) ([]int, error) {
	rows, err := q.Query("SELECT score FROM high_scores ORDER BY rank ASC")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot read high scores: %w", err)
	}
	defer rows.Close()

	scores := []int{}
	for rows.Next() {
		var score int
		if err := rows.Scan(&score); err != nil {
			return nil, fmt.Errorf("storage: cannot scan high score: %w", err)
		}
		scores = append(scores, score)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: cannot read high scores: %w", err)
	}
	return scores, nil
}

func saveScores(q queryer, scores []int) error {
	if _, err := q.Exec("DELETE FROM high_scores"); err != nil {
		return fmt.Errorf("storage: cannot clear high scores: %w", err)
	}
	for i, score := range scores {
		if _, err := q.Exec("INSERT INTO high_scores (rank, score) VALUES (?, ?)", i+1, score); err != nil {
			return fmt.Errorf("storage: cannot save high score: %w", err)
		}
	}
	return nil
}

// parseTimestamp handles both time.Time and string DATETIME values.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Ensure Store implements the persistence contracts.
var (
	_ highscore.Store    = (*Store)(nil)
	_ highscore.Updater  = (*Store)(nil)
	_ jumper.RunRecorder = (*Store)(nil)
)
