// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history keeps a small local cache of recently opened chat
// sessions so the session picker renders instantly. The cache is a
// display projection only; the backend stays authoritative and entries
// are refreshed from /chat/history whenever it is reachable.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/jeranaias/clarilaw-tui/internal/model"
)

// ErrNotFound indicates the session id is not in the local cache.
var ErrNotFound = errors.New("session not in local history")

// schema creates the cache table. opened_at drives the recency ordering.
const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id             TEXT PRIMARY KEY,
	title          TEXT NOT NULL,
	document_id    TEXT NOT NULL,
	document_title TEXT NOT NULL DEFAULT '',
	message_count  INTEGER NOT NULL DEFAULT 0,
	opened_at      TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sessions_opened_at ON sessions(opened_at DESC);
`

// Entry is one cached session row.
type Entry struct {
	ID            string
	Title         string
	DocumentID    string
	DocumentTitle string
	MessageCount  int
	OpenedAt      time.Time
}

// Store is the SQLite-backed session history cache.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Touch records that a session was opened now, inserting or refreshing
// its row.
func (s *Store) Touch(ctx context.Context, sess model.Session, documentTitle string) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO sessions (id, title, document_id, document_title, message_count, opened_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	title = excluded.title,
	document_title = excluded.document_title,
	message_count = excluded.message_count,
	opened_at = excluded.opened_at`,
		sess.ID, sess.Title, sess.DocumentID, documentTitle, sess.MessageCount, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to record session: %w", err)
	}
	return nil
}

// Refresh updates a cached session's title and message count from a
// backend listing without advancing opened_at, so recency ordering still
// reflects actual opens. Unknown ids are ignored; only opened sessions
// enter the cache.
func (s *Store) Refresh(ctx context.Context, sess model.Session) error {
	_, err := s.db.ExecContext(ctx, `
UPDATE sessions SET title = ?, message_count = ? WHERE id = ?`,
		sess.Title, sess.MessageCount, sess.ID)
	if err != nil {
		return fmt.Errorf("failed to refresh session: %w", err)
	}
	return nil
}

// Recent returns the most recently opened sessions, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT id, title, document_id, document_title, message_count, opened_at
FROM sessions ORDER BY opened_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Title, &e.DocumentID, &e.DocumentTitle, &e.MessageCount, &e.OpenedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Get looks up one cached session by id.
func (s *Store) Get(ctx context.Context, id string) (*Entry, error) {
	var e Entry
	err := s.db.QueryRowContext(ctx, `
SELECT id, title, document_id, document_title, message_count, opened_at
FROM sessions WHERE id = ?`, id).
		Scan(&e.ID, &e.Title, &e.DocumentID, &e.DocumentTitle, &e.MessageCount, &e.OpenedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read history row: %w", err)
	}
	return &e, nil
}

// Remove deletes one cached session; removing an unknown id is a no-op.
func (s *Store) Remove(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	return err
}

// Clear empties the cache. Called on logout so one account's history
// never leaks into the next login.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions`)
	return err
}
