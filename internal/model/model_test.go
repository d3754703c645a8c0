// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"
	"testing"
)

func TestNewPendingMessage(t *testing.T) {
	msg := NewPendingMessage("sess-1", "What is the payment schedule?")

	if !strings.HasPrefix(msg.ID, "tmp_") {
		t.Errorf("pending message id = %q, want tmp_ prefix", msg.ID)
	}
	if msg.Role != RoleUser {
		t.Errorf("pending message role = %q, want %q", msg.Role, RoleUser)
	}
	if msg.SessionID != "sess-1" {
		t.Errorf("pending message session = %q, want sess-1", msg.SessionID)
	}
	if !msg.IsPending() {
		t.Error("new pending message must report IsPending")
	}

	other := NewPendingMessage("sess-1", "again")
	if other.ID == msg.ID {
		t.Error("pending message ids must be locally unique")
	}
}

func TestRole_DisplayName(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleUser, "You"},
		{RoleAI, "Assistant"},
		{RoleSystem, "System"},
		{Role("other"), "other"},
	}
	for _, tc := range tests {
		if got := tc.role.DisplayName(); got != tc.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tc.role, got, tc.want)
		}
	}
}

func TestMessage_Preview(t *testing.T) {
	m := Message{Content: "a very long clause about indemnification"}
	got := m.Preview(10)
	if len([]rune(got)) > 10 {
		t.Errorf("Preview too long: %q", got)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("Preview = %q, want ellipsis suffix", got)
	}
}

func TestSummary_ComplexityLabel(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "unrated"},
		{2, "plain"},
		{5, "moderate"},
		{8, "dense"},
		{10, "very dense"},
	}
	for _, tc := range tests {
		s := Summary{ComplexityScore: tc.score}
		if got := s.ComplexityLabel(); got != tc.want {
			t.Errorf("ComplexityLabel(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}
