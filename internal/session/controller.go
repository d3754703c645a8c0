// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session owns the state of the active chat session: identity,
// message list, suggested questions, the associated document and summary,
// and the derived PDF download URL.
//
// The message list is owned exclusively by the controller and mutated only
// through its documented operations: optimistic append (BeginSend),
// reconcile (CompleteSend), and rollback (FailSend). The controller is
// driven from a single event loop; network calls happen outside it and
// feed results back in.
package session

import (
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/jeranaias/clarilaw-tui/internal/api"
	"github.com/jeranaias/clarilaw-tui/internal/model"
	"github.com/jeranaias/clarilaw-tui/internal/util"
)

// User-facing error strings. The underlying causes go to the diagnostics
// log only.
const (
	MsgNoSession  = "No active chat session"
	MsgLoadFailed = "Failed to load session"
	MsgSendFailed = "Failed to send message"
)

// Sentinel errors returned by BeginSend.
var (
	// ErrNoSession means no session id is set; surfaced to the user.
	ErrNoSession = errors.New("no active chat session")
	// ErrEmptyMessage means the draft was empty or whitespace-only; a no-op.
	ErrEmptyMessage = errors.New("empty message")
	// ErrSendInFlight means a send is already outstanding; a no-op.
	ErrSendInFlight = errors.New("send already in flight")
)

// Controller synchronizes the chat session with the backend and manages
// the optimistic-update protocol for sent messages.
type Controller struct {
	sessionID string
	session   *model.Session
	messages  []model.Message
	suggested []string

	document *model.Document
	summary  *model.Summary
	pdfURL   string

	draft     string
	busy      bool
	pendingID string
	lastError string
}

// NewController creates an empty controller. A session becomes active via
// Reset followed by ApplyDetail (route navigation) or ApplyHandoff (upload
// flow).
func NewController() *Controller {
	return &Controller{}
}

// =============================================================================
// LOAD PROTOCOL
// =============================================================================

// Reset clears all session state and targets a new session id. Messages
// from the previous session never survive into the next one.
func (c *Controller) Reset(sessionID string) {
	*c = Controller{sessionID: sessionID}
}

// ApplyDetail populates the controller from a session fetch. Messages that
// belong to a different session are dropped: the list never mixes sessions.
func (c *Controller) ApplyDetail(detail *api.SessionDetail) {
	c.session = &detail.Session
	c.sessionID = detail.Session.ID
	c.suggested = detail.SuggestedQuestions

	c.messages = c.messages[:0]
	for _, m := range detail.Messages {
		if m.SessionID != "" && m.SessionID != c.sessionID {
			log.WithFields(log.Fields{
				"message": m.ID, "session": m.SessionID, "active": c.sessionID,
			}).Warn("dropping message from foreign session")
			continue
		}
		m.Delivery = model.Confirmed
		c.messages = append(c.messages, m)
	}
	c.lastError = ""
}

// ApplyHandoff installs the one-shot navigation payload carried from the
// upload flow, avoiding a redundant document fetch.
func (c *Controller) ApplyHandoff(doc *model.Document, summary *model.Summary, questions []string) {
	c.document = doc
	c.summary = summary
	if len(questions) > 0 {
		c.suggested = questions
	}
}

// ApplyDocument populates the document and summary from the chained fetch
// keyed by the loaded session's document id.
func (c *Controller) ApplyDocument(payload *api.DocumentWithSummary) {
	c.document = &payload.Document
	c.summary = payload.Summary
}

// NeedsDocument reports whether the chained document fetch is required,
// i.e. the session is loaded but no handoff payload supplied the document.
func (c *Controller) NeedsDocument() bool {
	return c.session != nil && c.document == nil && c.session.DocumentID != ""
}

// SetPDFURL records the time-limited download URL for the document view.
func (c *Controller) SetPDFURL(url string) {
	c.pdfURL = url
}

// FailLoad surfaces a load failure. The cause is logged, not shown.
func (c *Controller) FailLoad(cause error) {
	log.WithError(cause).WithField("session", c.sessionID).Error("session load failed")
	c.lastError = MsgLoadFailed
}

// =============================================================================
// SEND PROTOCOL
// =============================================================================

// BeginSend starts the optimistic send of the current draft. On success it
// appends exactly one pending user message, clears the draft, sets the
// busy flag, and returns the pending message for the network round-trip.
//
// Empty/whitespace drafts and reentrant calls while a send is outstanding
// are rejected as no-ops; a missing session id is a user-visible error.
func (c *Controller) BeginSend() (model.Message, error) {
	if util.IsBlank(c.draft) {
		return model.Message{}, ErrEmptyMessage
	}
	if c.busy {
		return model.Message{}, ErrSendInFlight
	}
	if c.sessionID == "" {
		c.lastError = MsgNoSession
		return model.Message{}, ErrNoSession
	}

	pending := model.NewPendingMessage(c.sessionID, c.draft)
	c.messages = append(c.messages, pending)
	c.draft = ""
	c.busy = true
	c.pendingID = pending.ID
	c.lastError = ""
	return pending, nil
}

// CompleteSend reconciles a successful round-trip: the pending message is
// removed by id and the two server-confirmed messages are appended in the
// order received. The busy flag clears unconditionally.
func (c *Controller) CompleteSend(pendingID string, result *api.SendResult) {
	c.removePending(pendingID)

	user := result.UserMessage
	ai := result.AIMessage
	user.Delivery = model.Confirmed
	ai.Delivery = model.Confirmed
	c.messages = append(c.messages, user, ai)

	if c.session != nil && result.MessageCount > 0 {
		c.session.MessageCount = result.MessageCount
	}
	c.busy = false
	c.pendingID = ""
}

// FailSend rolls back a failed round-trip: the pending message is removed
// and a short error string is surfaced. The busy flag clears
// unconditionally; the cause is logged for diagnostics only.
func (c *Controller) FailSend(pendingID string, cause error) {
	c.removePending(pendingID)
	log.WithError(cause).WithField("session", c.sessionID).Error("message send failed")
	c.lastError = MsgSendFailed
	c.busy = false
	c.pendingID = ""
}

// removePending deletes the optimistic message by its temporary id.
func (c *Controller) removePending(pendingID string) {
	for i, m := range c.messages {
		if m.ID == pendingID {
			c.messages = append(c.messages[:i], c.messages[i+1:]...)
			return
		}
	}
}

// =============================================================================
// DRAFT / SUGGESTED QUESTIONS
// =============================================================================

// SetDraft replaces the draft input text.
func (c *Controller) SetDraft(text string) {
	c.draft = text
}

// Draft returns the current draft input text.
func (c *Controller) Draft() string {
	return c.draft
}

// UseSuggestedQuestion puts a suggested question into the draft without
// sending it; the send decision stays with the user.
func (c *Controller) UseSuggestedQuestion(q string) {
	c.draft = q
}

// =============================================================================
// ACCESSORS
// =============================================================================

// SessionID returns the active session id, or "" when none is loaded.
func (c *Controller) SessionID() string { return c.sessionID }

// Session returns the loaded session, or nil.
func (c *Controller) Session() *model.Session { return c.session }

// Messages returns the message list in append order. No reordering or
// timestamp sorting is ever applied; the backend returns messages in order.
func (c *Controller) Messages() []model.Message { return c.messages }

// SuggestedQuestions returns the backend-supplied candidate prompts.
func (c *Controller) SuggestedQuestions() []string { return c.suggested }

// Document returns the associated document projection, or nil.
func (c *Controller) Document() *model.Document { return c.document }

// Summary returns the document summary, or nil when absent.
func (c *Controller) Summary() *model.Summary { return c.summary }

// PDFURL returns the derived download URL, or "" when the best-effort
// fetch failed or has not completed. The document view stays usable
// without it.
func (c *Controller) PDFURL() string { return c.pdfURL }

// Busy reports whether a send round-trip is outstanding.
func (c *Controller) Busy() bool { return c.busy }

// LastError returns the current user-facing error string, or "".
func (c *Controller) LastError() string { return c.lastError }

// ClearError dismisses the surfaced error.
func (c *Controller) ClearError() { c.lastError = "" }
