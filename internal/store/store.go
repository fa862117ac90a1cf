// Package store persists attempt history and save slots in a local
// SQLite database. The engine itself never touches I/O; callers
// snapshot engine state and hand it to this layer.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps the SQLite connection and provides access to
// repositories.
type Store struct {
	db  *sql.DB
	seq *sequenceCounter
}

// Open creates a Store connected to the SQLite database at dsn. It
// applies recommended pragmas and creates any missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	seq, err := newSequenceCounter(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, seq: seq}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Events returns the attempt event repository backed by this store.
func (s *Store) Events() EventRepo {
	return &eventRepo{db: s.db, seq: s.seq}
}

// Saves returns the save-slot repository backed by this store.
func (s *Store) Saves() SaveRepo {
	return &saveRepo{db: s.db}
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS decision_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			sequence INTEGER NOT NULL UNIQUE,
			timestamp DATETIME NOT NULL,
			attempt_id TEXT NOT NULL,
			scenario_id TEXT NOT NULL,
			step_id TEXT NOT NULL,
			action TEXT NOT NULL,
			action_type TEXT NOT NULL,
			was_optimal INTEGER NOT NULL,
			score_delta INTEGER NOT NULL,
			mood_after TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_decision_attempt ON decision_events (attempt_id, sequence)`,
		`CREATE TABLE IF NOT EXISTS completion_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			sequence INTEGER NOT NULL UNIQUE,
			timestamp DATETIME NOT NULL,
			attempt_id TEXT NOT NULL,
			scenario_id TEXT NOT NULL,
			final_score INTEGER NOT NULL,
			time_minutes REAL NOT NULL,
			satisfaction REAL NOT NULL,
			badges TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS llm_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			sequence INTEGER NOT NULL UNIQUE,
			timestamp DATETIME NOT NULL,
			provider TEXT NOT NULL,
			model TEXT NOT NULL,
			purpose TEXT NOT NULL,
			input_tokens INTEGER NOT NULL,
			output_tokens INTEGER NOT NULL,
			latency_ms INTEGER NOT NULL,
			success INTEGER NOT NULL,
			error_message TEXT NOT NULL,
			request_body TEXT NOT NULL,
			response_body TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS saves (
			slot TEXT PRIMARY KEY,
			version TEXT NOT NULL,
			timestamp DATETIME NOT NULL,
			data TEXT NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. SUPPORTSIM_DB environment variable
// 2. $XDG_DATA_HOME/supportsim/supportsim.db
// 3. ~/.local/share/supportsim/supportsim.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("SUPPORTSIM_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "supportsim", "supportsim.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
