// Package history persists provider-resolved translations to SQLite so
// operators can inspect what the service has been asked for. The store is
// optional; the service runs without it.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Entry is one recorded translation.
type Entry struct {
	ID          int64
	Text        string
	Translation string
	Source      string
	Target      string
	Method      string
	CreatedAt   time.Time
}

// Store wraps the SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	const schema = `
	CREATE TABLE IF NOT EXISTS translations (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		text        TEXT NOT NULL,
		translation TEXT NOT NULL,
		source      TEXT NOT NULL,
		target      TEXT NOT NULL,
		method      TEXT NOT NULL,
		created_at  INTEGER NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create history schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Record appends one translation.
func (s *Store) Record(e Entry) error {
	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := s.db.Exec(
		`INSERT INTO translations (text, translation, source, target, method, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.Text, e.Translation, e.Source, e.Target, e.Method, createdAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to record translation: %w", err)
	}
	return nil
}

// Recent returns up to n entries, newest first.
func (s *Store) Recent(n int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, text, translation, source, target, method, created_at
		 FROM translations ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt int64
		if err := rows.Scan(&e.ID, &e.Text, &e.Translation, &e.Source, &e.Target, &e.Method, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		e.CreatedAt = time.Unix(createdAt, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Count returns the number of recorded translations.
func (s *Store) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM translations`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count history: %w", err)
	}
	return count, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
