// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/jeranaias/clarilaw-tui/internal/model"
)

// SessionCreated is the payload of a session creation.
type SessionCreated struct {
	Session            model.Session `json:"session"`
	SuggestedQuestions []string      `json:"suggested_questions"`
}

// SessionDetail is the payload of a session fetch.
type SessionDetail struct {
	Session            model.Session   `json:"session"`
	Messages           []model.Message `json:"messages"`
	SuggestedQuestions []string        `json:"suggested_questions"`
	MessageCount       int             `json:"message_count"`
	UserMessageCount   int             `json:"user_message_count"`
}

// SendResult is the payload of a message send: the server-confirmed user
// message and the AI answer, in the order the server committed them.
type SendResult struct {
	UserMessage    model.Message `json:"user_message"`
	AIMessage      model.Message `json:"ai_message"`
	SessionUpdated bool          `json:"session_updated"`
	MessageCount   int           `json:"message_count"`
}

// CreateSession creates a chat session bound to a document. The title is
// optional; the backend derives one when it is empty.
func (c *Client) CreateSession(ctx context.Context, documentID, title string) (*SessionCreated, error) {
	body := map[string]string{"document_id": documentID}
	if title != "" {
		body["title"] = title
	}
	data, err := c.post(ctx, "/chat/sessions", body)
	if err != nil {
		return nil, err
	}
	var created SessionCreated
	if err := json.Unmarshal(data, &created); err != nil {
		return nil, fmt.Errorf("failed to parse created session: %w", err)
	}
	return &created, nil
}

// GetSession fetches a session, optionally with its message history.
func (c *Client) GetSession(ctx context.Context, sessionID string, includeMessages bool, messageLimit int) (*SessionDetail, error) {
	query := url.Values{}
	query.Set("include_messages", strconv.FormatBool(includeMessages))
	if messageLimit > 0 {
		query.Set("message_limit", strconv.Itoa(messageLimit))
	}

	data, err := c.get(ctx, "/chat/sessions/"+url.PathEscape(sessionID), query)
	if err != nil {
		return nil, err
	}
	var detail SessionDetail
	if err := json.Unmarshal(data, &detail); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}
	return &detail, nil
}

// SendMessage sends a user message and returns the server-confirmed pair.
func (c *Client) SendMessage(ctx context.Context, sessionID, message string) (*SendResult, error) {
	data, err := c.post(ctx, "/chat/sessions/"+url.PathEscape(sessionID)+"/messages",
		map[string]string{"message": message})
	if err != nil {
		return nil, err
	}
	var result SendResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse send result: %w", err)
	}
	return &result, nil
}

// ChatHistory lists the user's chat sessions, newest first.
func (c *Client) ChatHistory(ctx context.Context) ([]model.Session, error) {
	data, err := c.get(ctx, "/chat/history", nil)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Sessions      []model.Session `json:"sessions"`
		TotalSessions int             `json:"total_sessions"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse chat history: %w", err)
	}
	return payload.Sessions, nil
}
