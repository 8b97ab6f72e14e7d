// ============================================================================
// mictylish - scripting language front end
// ============================================================================
//
// Package:     repl
// Description: Persistent input history for the interactive shell
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package repl

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	mcerror "github.com/msto63/mictylish/foundation/core/error"
)

// HistoryEntry is one accepted input line
type HistoryEntry struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	EnteredAt time.Time `json:"entered_at"`
	Line      string    `json:"line"`
}

// HistoryStore persists input lines across sessions
type HistoryStore interface {
	Append(ctx context.Context, sessionID, line string) error
	// Recent returns up to limit lines, oldest first
	Recent(ctx context.Context, limit int) ([]string, error)
	// Prune keeps the newest keep lines and returns how many were removed
	Prune(ctx context.Context, keep int) (int64, error)
	Close() error
}

// SQLiteHistory implements HistoryStore using SQLite
type SQLiteHistory struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteHistory opens or creates the history database at path
func NewSQLiteHistory(path string) (*SQLiteHistory, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, storageError(err, "failed to create history directory", path)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, storageError(err, "failed to open history database", path)
	}

	store := &SQLiteHistory{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, storageError(err, "failed to initialize history schema", path)
	}
	return store, nil
}

func (s *SQLiteHistory) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS history (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		session_id TEXT NOT NULL,
		entered_at DATETIME NOT NULL,
		line TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_history_session ON history(session_id);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Append records line for sessionID
func (s *SQLiteHistory) Append(ctx context.Context, sessionID, line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO history (id, session_id, entered_at, line) VALUES (?, ?, ?, ?)`,
		uuid.New().String(), sessionID, time.Now().UTC(), line)
	if err != nil {
		return storageError(err, "failed to append history", "")
	}
	return nil
}

// Recent returns up to limit lines, oldest first. A limit of 0 or less
// returns nothing.
func (s *SQLiteHistory) Recent(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT line FROM history ORDER BY seq DESC LIMIT ?`, limit)
	if err != nil {
		return nil, storageError(err, "failed to query history", "")
	}
	defer rows.Close()

	var lines []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, storageError(err, "failed to scan history", "")
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(err, "failed to read history", "")
	}

	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
	return lines, nil
}

// Entries returns every entry of one session in input order
func (s *SQLiteHistory) Entries(ctx context.Context, sessionID string) ([]HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, entered_at, line FROM history WHERE session_id = ? ORDER BY seq`, sessionID)
	if err != nil {
		return nil, storageError(err, "failed to query history", "")
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.ID, &e.SessionID, &e.EnteredAt, &e.Line); err != nil {
			return nil, storageError(err, "failed to scan history", "")
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Prune keeps the newest keep lines
func (s *SQLiteHistory) Prune(ctx context.Context, keep int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM history WHERE seq NOT IN (SELECT seq FROM history ORDER BY seq DESC LIMIT ?)`,
		max(keep, 0))
	if err != nil {
		return 0, storageError(err, "failed to prune history", "")
	}
	removed, _ := result.RowsAffected()
	return removed, nil
}

// Close closes the database connection
func (s *SQLiteHistory) Close() error {
	return s.db.Close()
}

// MemoryHistory is an in-memory HistoryStore used when persistence is off
type MemoryHistory struct {
	mu      sync.Mutex
	entries []HistoryEntry
}

// NewMemoryHistory creates an empty in-memory store
func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{}
}

// Append records line for sessionID
func (m *MemoryHistory) Append(_ context.Context, sessionID, line string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = append(m.entries, HistoryEntry{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		EnteredAt: time.Now().UTC(),
		Line:      line,
	})
	return nil
}

// Recent returns up to limit lines, oldest first
func (m *MemoryHistory) Recent(_ context.Context, limit int) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if limit <= 0 {
		return nil, nil
	}
	start := max(len(m.entries)-limit, 0)
	lines := make([]string, 0, len(m.entries)-start)
	for _, e := range m.entries[start:] {
		lines = append(lines, e.Line)
	}
	return lines, nil
}

// Prune keeps the newest keep lines
func (m *MemoryHistory) Prune(_ context.Context, keep int) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	keep = max(keep, 0)
	if len(m.entries) <= keep {
		return 0, nil
	}
	removed := len(m.entries) - keep
	m.entries = append([]HistoryEntry(nil), m.entries[removed:]...)
	return int64(removed), nil
}

// Close is a no-op
func (m *MemoryHistory) Close() error {
	return nil
}

func storageError(err error, message, path string) error {
	e := mcerror.Wrap(err, message).
		WithCode(mcerror.CodeStorageError).
		WithOperation("repl.history")
	if path != "" {
		e = e.WithDetail("path", path)
	}
	return e
}
