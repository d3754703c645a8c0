// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/clarilaw-tui/internal/api"
	"github.com/jeranaias/clarilaw-tui/internal/model"
	"github.com/jeranaias/clarilaw-tui/internal/ui/layout"
	"github.com/jeranaias/clarilaw-tui/internal/ui/styles"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m := New(api.NewClient("http://localhost:1"), styles.NewTheme(), "sess-1")
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func loadTestSession(m *Model) {
	m.Update(sessionLoadedMsg{detail: &api.SessionDetail{
		Session: model.Session{ID: "sess-1", DocumentID: "doc-1", Title: "Lease"},
		Messages: []model.Message{
			{ID: "m1", SessionID: "sess-1", Role: model.RoleUser, Content: "hi"},
		},
		SuggestedQuestions: []string{"What is the deposit?", "When does it end?"},
	}})
}

func TestUpdate_SessionLoadChainsDocumentFetch(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(sessionLoadedMsg{detail: &api.SessionDetail{
		Session: model.Session{ID: "sess-1", DocumentID: "doc-1"},
	}})
	if cmd == nil {
		t.Fatal("expected chained document and pdf fetch commands")
	}
	if !m.loaded {
		t.Error("model must mark itself loaded")
	}
}

func TestUpdate_SendReconcile(t *testing.T) {
	m := newTestModel(t)
	loadTestSession(m)

	m.input.SetValue("what about late fees?")
	_, cmd := m.submit()
	if cmd == nil {
		t.Fatal("submit must issue a send command")
	}
	msgs := m.sess.Messages()
	pending := msgs[len(msgs)-1]
	if !pending.IsPending() {
		t.Fatal("optimistic bubble missing")
	}
	if m.input.Value() != "" {
		t.Error("input must clear on send")
	}

	m.Update(sendCompletedMsg{pendingID: pending.ID, result: &api.SendResult{
		UserMessage: model.Message{ID: "srv-u", SessionID: "sess-1", Role: model.RoleUser},
		AIMessage:   model.Message{ID: "srv-a", SessionID: "sess-1", Role: model.RoleAI},
	}})

	for _, msg := range m.sess.Messages() {
		if msg.ID == pending.ID {
			t.Error("temporary message must be reconciled away")
		}
	}
	if m.sess.Busy() {
		t.Error("busy must clear after reconcile")
	}
}

func TestUpdate_SendFailureShowsBanner(t *testing.T) {
	m := newTestModel(t)
	loadTestSession(m)

	m.input.SetValue("question")
	m.submit()
	msgs := m.sess.Messages()
	pending := msgs[len(msgs)-1]
	before := len(msgs) - 1

	m.Update(sendFailedMsg{pendingID: pending.ID, err: errors.New("dial tcp: refused")})

	if len(m.sess.Messages()) != before {
		t.Error("failed send must roll the message list back")
	}
	if !m.errBanner.Visible() {
		t.Error("failure must surface an inline error")
	}
	view := m.View()
	if !strings.Contains(view, "Failed to send message") {
		t.Error("view must show the short error string")
	}
}

func TestUpdate_SubmitWithoutSessionShowsError(t *testing.T) {
	m := newTestModel(t)
	// No session loaded.
	m.input.SetValue("hello")
	_, cmd := m.submit()
	if cmd != nil {
		t.Error("no command may be issued without an active session")
	}
}

func TestUpdate_AuthExpiredQuits(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(authExpiredMsg{})
	if !m.AuthExpired() {
		t.Error("auth expiry flag must be set")
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestUpdate_MouseDragResizesDivider(t *testing.T) {
	m := newTestModel(t)
	loadTestSession(m)

	docCols, _ := m.layout.Split(m.width, NominalViewportW)

	m.Update(tea.MouseMsg{X: docCols, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !m.layout.DraggingAxis(layout.AxisWidth) {
		t.Fatal("press on divider must start a width drag")
	}

	// Drag to a position yielding a valid width (~300px).
	targetX := (NominalViewportW - 300) * m.width / NominalViewportW
	m.Update(tea.MouseMsg{X: targetX, Y: 5, Action: tea.MouseActionMotion})
	if got := m.layout.ChatWidth(); got == layout.DefaultChatWidth {
		t.Error("drag must move the committed width")
	}

	m.Update(tea.MouseMsg{X: targetX, Y: 5, Action: tea.MouseActionRelease})
	if m.layout.Dragging() {
		t.Error("release must end the drag")
	}
}

func TestSummaryMarkdown(t *testing.T) {
	doc := &model.Document{Title: "Lease Agreement", Filename: "lease.pdf"}
	sum := &model.Summary{
		Summary:         "A twelve month lease.",
		ComplexityScore: 7,
		KeyPoints:       []string{"Rent due on the 1st"},
		Risks:           []string{"Automatic renewal"},
	}

	md := summaryMarkdown(doc, sum, "https://blob.test/x.pdf")
	for _, want := range []string{
		"# Lease Agreement",
		"7/10",
		"Key Points",
		"Rent due on the 1st",
		"Risks",
		"https://blob.test/x.pdf",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}

	if !strings.Contains(summaryMarkdown(doc, nil, ""), "still being prepared") {
		t.Error("missing summary must render the pending note")
	}
}

func TestDocumentTitle_FallsBackToFilename(t *testing.T) {
	if got := documentTitle(&model.Document{Filename: "x.pdf"}); got != "x.pdf" {
		t.Errorf("title = %q, want filename fallback", got)
	}
}
