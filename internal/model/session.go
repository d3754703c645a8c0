// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "time"

// Session is a persisted conversation thread bound to one uploaded document.
// Identity is the id; the server is authoritative for every field.
type Session struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	DocumentID   string    `json:"document_id"`
	Title        string    `json:"title"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	MessageCount int       `json:"message_count"`
	IsActive     bool      `json:"is_active"`
}
