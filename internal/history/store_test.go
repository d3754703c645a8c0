// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/clarilaw-tui/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestTouchAndRecent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Touch(ctx, model.Session{ID: "s1", Title: "Lease", DocumentID: "d1", MessageCount: 4}, "lease.pdf"))
	time.Sleep(2 * time.Millisecond)
	require.NoError(t, s.Touch(ctx, model.Session{ID: "s2", Title: "NDA", DocumentID: "d2", MessageCount: 2}, "nda.docx"))

	entries, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "s2", entries[0].ID, "newest first")
	assert.Equal(t, "nda.docx", entries[0].DocumentTitle)
	assert.Equal(t, "s1", entries[1].ID)
}

func TestTouch_RefreshesExistingRow(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Touch(ctx, model.Session{ID: "s1", Title: "Lease", DocumentID: "d1", MessageCount: 2}, "lease.pdf"))
	require.NoError(t, s.Touch(ctx, model.Session{ID: "s1", Title: "Lease (renamed)", DocumentID: "d1", MessageCount: 6}, "lease.pdf"))

	entries, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1, "touching the same session must not duplicate it")
	assert.Equal(t, "Lease (renamed)", entries[0].Title)
	assert.Equal(t, 6, entries[0].MessageCount)
}

func TestRefresh_KeepsRecencyOrdering(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Touch(ctx, model.Session{ID: "s1", Title: "Lease", DocumentID: "d1", MessageCount: 2}, "lease.pdf"))
	time.Sleep(2 * time.Millisecond)
	require.NoError(t, s.Touch(ctx, model.Session{ID: "s2", Title: "NDA", DocumentID: "d2", MessageCount: 1}, "nda.docx"))

	require.NoError(t, s.Refresh(ctx, model.Session{ID: "s1", Title: "Lease (renamed)", MessageCount: 9}))

	entries, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "s2", entries[0].ID, "refresh must not advance opened_at")
	assert.Equal(t, "Lease (renamed)", entries[1].Title)
	assert.Equal(t, 9, entries[1].MessageCount)
	assert.Equal(t, "lease.pdf", entries[1].DocumentTitle, "refresh leaves document_title alone")
}

func TestRefresh_IgnoresUnknownSession(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Refresh(ctx, model.Session{ID: "never-opened", Title: "X", MessageCount: 3}))

	entries, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, entries, "refresh must not insert sessions that were never opened")
}

func TestRecent_HonorsLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, s.Touch(ctx, model.Session{ID: id, Title: id, DocumentID: "d"}, ""))
	}

	entries, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Touch(ctx, model.Session{ID: "s1", Title: "Lease", DocumentID: "d1"}, "lease.pdf"))

	e, err := s.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Lease", e.Title)

	_, err = s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveAndClear(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Touch(ctx, model.Session{ID: "s1", DocumentID: "d1"}, ""))
	require.NoError(t, s.Touch(ctx, model.Session{ID: "s2", DocumentID: "d2"}, ""))

	require.NoError(t, s.Remove(ctx, "s1"))
	require.NoError(t, s.Remove(ctx, "never-existed"))

	entries, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	require.NoError(t, s.Clear(ctx))
	entries, err = s.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
