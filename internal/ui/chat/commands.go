// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/jeranaias/clarilaw-tui/internal/api"
	"github.com/jeranaias/clarilaw-tui/internal/config"
)

// requestTimeout bounds every command-issued request.
const requestTimeout = 60 * time.Second

// loadSessionCmd fetches the session with its message history.
func loadSessionCmd(client *api.Client, sessionID string, messageLimit int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		detail, err := client.GetSession(ctx, sessionID, true, messageLimit)
		if err != nil {
			if errors.Is(err, api.ErrAuthFailed) {
				return authExpiredMsg{}
			}
			return sessionFailedMsg{err: err}
		}
		return sessionLoadedMsg{detail: detail}
	}
}

// loadDocumentCmd fetches the document and its summary, chained after a
// session load when the handoff payload did not already carry them.
func loadDocumentCmd(client *api.Client, documentID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		doc, err := client.GetDocumentWithSummary(ctx, documentID, false)
		if err != nil {
			if errors.Is(err, api.ErrAuthFailed) {
				return authExpiredMsg{}
			}
			return documentFailedMsg{err: err}
		}
		return documentLoadedMsg{doc: doc}
	}
}

// fetchPDFURLCmd fetches a presigned download URL for the PDF viewer.
// Failures are logged only; the viewer simply stays empty.
func fetchPDFURLCmd(client *api.Client, documentID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		info, err := client.GetDownloadURL(ctx, documentID, config.Global().Backend.DownloadExpirationMinutes)
		if err != nil {
			log.WithError(err).WithField("document", documentID).Debug("download url fetch failed")
			return nil
		}
		return pdfURLMsg{url: info.DownloadURL}
	}
}

// sendMessageCmd delivers the drafted message. pendingID names the
// optimistic bubble the reply reconciles against.
func sendMessageCmd(client *api.Client, sessionID, pendingID, content string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		result, err := client.SendMessage(ctx, sessionID, content)
		if err != nil {
			if errors.Is(err, api.ErrAuthFailed) {
				return authExpiredMsg{}
			}
			return sendFailedMsg{pendingID: pendingID, err: err}
		}
		return sendCompletedMsg{pendingID: pendingID, result: result}
	}
}
