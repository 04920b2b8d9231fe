package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists runs in one SQLite table on modernc.org/sqlite (no
// cgo). Each row carries the JSON payload of EncodeRun next to its seed
// and cost columns. Methods are safe for concurrent use.
type SQLiteStore struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

// NewSQLiteStore returns a store for the database file at path. Nothing is
// opened until Init.
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

// Init opens the database, pings it and creates the runs table if missing.
// Calling Init on an open store does nothing.
//
// Errors: an empty path, or any open, ping or schema error.
func (s *SQLiteStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.New("store: sqlite path is required")
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}
	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db

	return nil
}

// SaveRun upserts run by ID, assigning a UUID when the ID is empty, and
// returns the ID.
//
// Errors: ErrNotInitialized, or the encode or exec error.
func (s *SQLiteStore) SaveRun(ctx context.Context, run Run) (string, error) {
	db, err := s.getDB()
	if err != nil {
		return "", err
	}

	assignID(&run)
	payload, err := EncodeRun(run)
	if err != nil {
		return "", err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO runs (id, schema_version, seed, cost, payload)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			schema_version = excluded.schema_version,
			seed = excluded.seed,
			cost = excluded.cost,
			payload = excluded.payload
	`, run.ID, run.SchemaVersion, run.Seed, run.Cost, payload)
	if err != nil {
		return "", err
	}

	return run.ID, nil
}

// GetRun loads the run with id. A missing row is (Run{}, false, nil).
func (s *SQLiteStore) GetRun(ctx context.Context, id string) (Run, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return Run{}, false, err
	}

	var payload []byte
	err = db.QueryRowContext(ctx, `SELECT payload FROM runs WHERE id = ?`, id).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, false, nil
		}
		return Run{}, false, err
	}

	run, err := DecodeRun(payload)
	if err != nil {
		return Run{}, false, fmt.Errorf("decode run %s: %w", id, err)
	}

	return run, true, nil
}

// ListRuns returns every run in insertion (rowid) order.
func (s *SQLiteStore) ListRuns(ctx context.Context) ([]Run, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT id, payload FROM runs ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var (
			id      string
			payload []byte
		)
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, err
		}
		run, err := DecodeRun(payload)
		if err != nil {
			return nil, fmt.Errorf("decode run %s: %w", id, err)
		}
		out = append(out, run)
	}

	return out, rows.Err()
}

// Close closes the database. The store can be reopened with Init.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil

	return err
}

func (s *SQLiteStore) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, ErrNotInitialized
	}

	return s.db, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			schema_version INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			cost REAL NOT NULL,
			payload BLOB NOT NULL
		);
	`)

	return err
}
