// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a message.
type Role string

const (
	RoleUser   Role = "user"
	RoleAI     Role = "ai"
	RoleSystem Role = "system"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleAI:
		return "Assistant"
	case RoleSystem:
		return "System"
	default:
		return string(r)
	}
}

// =============================================================================
// DELIVERY STATE
// =============================================================================

// DeliveryState tracks a message through the optimistic-update protocol.
// Server-provided messages are always Confirmed. A locally synthesized user
// message starts Pending and is removed from the list on both outcomes:
// replaced by the server-confirmed pair on success, rolled back on failure.
// Failed exists so a rolled-back message can be shown for re-send UX.
type DeliveryState int

const (
	Confirmed DeliveryState = iota
	Pending
	Failed
)

// String returns the display string for the delivery state.
func (s DeliveryState) String() string {
	switch s {
	case Confirmed:
		return "confirmed"
	case Pending:
		return "pending"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message is a single message in a chat session.
type Message struct {
	ID        string    `json:"id"`
	SessionID string    `json:"chat_session_id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`

	// Delivery tracks the optimistic-update protocol; never sent on the wire.
	Delivery DeliveryState `json:"-"`
}

// NewPendingMessage synthesizes an optimistic user message with a
// locally-unique temporary id. The id is replaced by server ids when the
// send round-trip confirms.
func NewPendingMessage(sessionID, content string) Message {
	return Message{
		ID:        "tmp_" + uuid.NewString(),
		SessionID: sessionID,
		Role:      RoleUser,
		Content:   content,
		Timestamp: time.Now(),
		Delivery:  Pending,
	}
}

// IsPending reports whether the message is an unconfirmed optimistic entry.
func (m Message) IsPending() bool {
	return m.Delivery == Pending
}

// Preview returns a truncated single-line preview of the message content.
func (m Message) Preview(maxRunes int) string {
	runes := []rune(m.Content)
	if len(runes) <= maxRunes {
		return m.Content
	}
	if maxRunes <= 3 {
		return string(runes[:maxRunes])
	}
	return string(runes[:maxRunes-3]) + "..."
}
