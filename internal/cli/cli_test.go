// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/clarilaw-tui/internal/api"
	"github.com/jeranaias/clarilaw-tui/internal/config"
	"github.com/jeranaias/clarilaw-tui/internal/model"
	"github.com/jeranaias/clarilaw-tui/internal/ui/chat"
	"github.com/jeranaias/clarilaw-tui/internal/ui/styles"
	"github.com/jeranaias/clarilaw-tui/internal/upload"
)

func TestGetSetting(t *testing.T) {
	cfg := config.Default()

	val, err := getSetting(cfg, "backend.base_url")
	require.NoError(t, err)
	assert.Equal(t, cfg.Backend.BaseURL, val)

	val, err = getSetting(cfg, "ui.mouse_enabled")
	require.NoError(t, err)
	assert.Equal(t, "true", val)

	_, err = getSetting(cfg, "no.such.key")
	assert.Error(t, err)
}

func TestSetSetting(t *testing.T) {
	cfg := config.Default()

	require.NoError(t, setSetting(cfg, "backend.timeout_secs", "30"))
	assert.Equal(t, 30, cfg.Backend.TimeoutSecs)

	require.NoError(t, setSetting(cfg, "ui.mouse_enabled", "false"))
	assert.False(t, cfg.UI.MouseEnabled)

	assert.Error(t, setSetting(cfg, "backend.timeout_secs", "soon"))
	assert.Error(t, setSetting(cfg, "no.such.key", "x"))
}

func TestUploadHandoffSeedsChatSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"success":true,"message":"","data":{
			"document":{"id":"doc-1","filename":"lease.txt","file_type":"text/plain"},
			"summary":{"document_id":"doc-1","summary":"A residential lease.","complexity_score":4},
			"chat_session":{"id":"sess-1","document_id":"doc-1"},
			"suggested_questions":["What is the notice period?"]}}`)
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "lease.txt")
	require.NoError(t, os.WriteFile(path, []byte("the tenant agrees to pay rent"), 0o600))

	ctrl := upload.NewController(api.NewClient(srv.URL), 0)
	result, err := ctrl.UploadFile(context.Background(), path, "", nil)
	require.NoError(t, err)
	require.Equal(t, "sess-1", result.SessionID)

	m := chat.New(api.NewClient(srv.URL), styles.NewTheme(), result.SessionID)
	applyHandoff(m, result)

	sess := m.Session()
	require.NotNil(t, sess.Document())
	assert.Equal(t, "lease.txt", sess.Document().Filename)
	require.NotNil(t, sess.Summary())
	assert.Equal(t, []string{"What is the notice period?"}, sess.SuggestedQuestions())

	// Once the session fetch lands, the handoff document suppresses the
	// chained document fetch.
	sess.ApplyDetail(&api.SessionDetail{
		Session: model.Session{ID: "sess-1", DocumentID: "doc-1"},
	})
	assert.False(t, sess.NeedsDocument())
}

func TestApplyHandoffNilResult(t *testing.T) {
	m := chat.New(api.NewClient("http://unused.test"), styles.NewTheme(), "sess-1")

	applyHandoff(m, nil)
	assert.Nil(t, m.Session().Document())

	applyHandoff(m, &upload.Result{})
	assert.Nil(t, m.Session().Document())
}

func TestNewRootCmd_HasCommands(t *testing.T) {
	root := NewRootCmd()

	want := []string{"login", "logout", "upload", "sessions", "chat", "config"}
	for _, name := range want {
		found := false
		for _, c := range root.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		assert.True(t, found, "missing command %q", name)
	}
}
