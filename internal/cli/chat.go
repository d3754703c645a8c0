// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jeranaias/clarilaw-tui/internal/ui/chat"
	"github.com/jeranaias/clarilaw-tui/internal/ui/styles"
	"github.com/jeranaias/clarilaw-tui/internal/upload"
)

// newChatCmd opens the dual-pane chat view for a session. With no
// argument it opens the most recently updated session.
func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat [session-id]",
		Short: "Open a chat session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(app); err != nil {
				return err
			}
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("chat needs an interactive terminal")
			}

			sessionID := ""
			if len(args) == 1 {
				sessionID = args[0]
			} else {
				id, err := mostRecentSession(cmd.Context(), app)
				if err != nil {
					return err
				}
				sessionID = id
			}
			return runChat(app, sessionID, nil)
		},
	}
}

// applyHandoff seeds the session view with the document, summary and
// suggested questions an upload just returned, suppressing the chained
// document fetch.
func applyHandoff(m *chat.Model, result *upload.Result) {
	if result == nil || result.Upload == nil {
		return
	}
	m.Session().ApplyHandoff(
		&result.Upload.Document,
		result.Upload.Summary,
		result.Upload.SuggestedQuestions,
	)
}

// mostRecentSession picks the newest session from the backend, falling
// back to the local cache.
func mostRecentSession(ctx context.Context, app *App) (string, error) {
	sessions, err := app.Client.ChatHistory(ctx)
	if err == nil && len(sessions) > 0 {
		return sessions[0].ID, nil
	}
	if err != nil {
		log.WithError(err).Warn("chat history fetch failed, trying local cache")
	}

	if hist, herr := openHistory(); herr == nil {
		defer hist.Close()
		if entries, rerr := hist.Recent(ctx, 1); rerr == nil && len(entries) > 0 {
			return entries[0].ID, nil
		}
	}
	return "", fmt.Errorf("no chat sessions found; upload a document first")
}

// runChat launches the session TUI and records the visit in the local
// history cache. A fresh upload result rides along as one-shot handoff
// state so the view does not re-fetch what the upload round-trip
// already returned.
func runChat(app *App, sessionID string, handoff *upload.Result) error {
	theme := styles.NewTheme()
	m := chat.New(app.Client, theme, sessionID)
	applyHandoff(m, handoff)
	if profile, ok := app.Store.Profile(); ok {
		m.SetUser(profile.Name)
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if app.Config.UI.MouseEnabled {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return err
	}

	if m.AuthExpired() {
		if err := app.Store.Logout(); err != nil {
			log.WithError(err).Warn("forced logout failed")
		}
		return fmt.Errorf("session expired; run 'clarilaw login' again")
	}

	if sess := m.Session().Session(); sess != nil {
		if hist, err := openHistory(); err == nil {
			docTitle := ""
			if doc := m.Session().Document(); doc != nil {
				docTitle = doc.Filename
			}
			if err := hist.Touch(context.Background(), *sess, docTitle); err != nil {
				log.WithError(err).Debug("history touch failed")
			}
			hist.Close()
		}
	}
	return nil
}
