package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store is the SQLite-backed activity journal.
type Store struct {
	db *sql.DB

	mu  sync.Mutex
	seq int64
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates the journal tables.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// Pragmas below are per connection.
	db.SetMaxOpenConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	ctx := context.Background()
	if err := ensureSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	s := &Store{db: db}
	if err := s.loadSequence(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// EventRepo returns an EventRepo backed by this store.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{store: s}
}

// Reset deletes every journal entry in one transaction. The sequence
// counter keeps running so entries stay ordered across resets.
func (s *Store) Reset(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"request_events", "run_events", "hint_events"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return tx.Commit()
}

// nextSequence hands out a journal-wide, strictly increasing sequence number.
func (s *Store) nextSequence() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq
}

func (s *Store) loadSequence(ctx context.Context) error {
	var max sql.NullInt64
	err := s.db.QueryRowContext(ctx, `SELECT MAX(seq) FROM (
		SELECT MAX(sequence) AS seq FROM request_events
		UNION ALL SELECT MAX(sequence) FROM run_events
		UNION ALL SELECT MAX(sequence) FROM hint_events
	)`).Scan(&max)
	if err != nil {
		return fmt.Errorf("load sequence: %w", err)
	}
	s.seq = max.Int64
	return nil
}

func ensureSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS request_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			sequence INTEGER NOT NULL,
			timestamp TEXT NOT NULL,
			session_id TEXT NOT NULL,
			request_id TEXT NOT NULL,
			method TEXT NOT NULL,
			endpoint TEXT NOT NULL,
			status_code INTEGER NOT NULL DEFAULT 0,
			latency_ms INTEGER NOT NULL DEFAULT 0,
			success INTEGER NOT NULL,
			error_message TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE TABLE IF NOT EXISTS run_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			sequence INTEGER NOT NULL,
			timestamp TEXT NOT NULL,
			session_id TEXT NOT NULL,
			problem_id INTEGER NOT NULL DEFAULT 0,
			language TEXT NOT NULL,
			code TEXT NOT NULL,
			output TEXT NOT NULL,
			success INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS hint_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			sequence INTEGER NOT NULL,
			timestamp TEXT NOT NULL,
			session_id TEXT NOT NULL,
			problem_id INTEGER NOT NULL,
			audio_bytes INTEGER NOT NULL DEFAULT 0,
			content_type TEXT NOT NULL DEFAULT '',
			success INTEGER NOT NULL,
			error_message TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE INDEX IF NOT EXISTS idx_run_events_sequence ON run_events(sequence);`,
		`CREATE INDEX IF NOT EXISTS idx_hint_events_sequence ON hint_events(sequence);`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// applyPragmas configures SQLite for single-user use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the journal file path in priority order:
// 1. CODEVOICE_DB environment variable
// 2. $XDG_DATA_HOME/codevoice/journal.db
// 3. ~/.local/share/codevoice/journal.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("CODEVOICE_DB"); p != "" {
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

	p := filepath.Join(dataHome, "codevoice", "journal.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
