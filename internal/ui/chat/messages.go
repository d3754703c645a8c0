// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/jeranaias/clarilaw-tui/internal/api"
)

// sessionLoadedMsg carries the session detail fetched on entry.
type sessionLoadedMsg struct {
	detail *api.SessionDetail
}

// sessionFailedMsg reports a failed session load.
type sessionFailedMsg struct {
	err error
}

// documentLoadedMsg carries the chained document+summary fetch.
type documentLoadedMsg struct {
	doc *api.DocumentWithSummary
}

// documentFailedMsg reports a failed document fetch.
type documentFailedMsg struct {
	err error
}

// pdfURLMsg carries the presigned download URL for the open document.
type pdfURLMsg struct {
	url string
}

// sendCompletedMsg carries the server's reply to a sent message. The
// pendingID identifies the optimistic bubble to reconcile.
type sendCompletedMsg struct {
	pendingID string
	result    *api.SendResult
}

// sendFailedMsg reports a failed send; the optimistic bubble rolls back.
type sendFailedMsg struct {
	pendingID string
	err       error
}

// authExpiredMsg forces a return to the login screen.
type authExpiredMsg struct{}
