// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/jeranaias/clarilaw-tui/internal/ui/layout"
)

// Update handles all messages for the session view.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizePanes()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case sessionLoadedMsg:
		return m.handleSessionLoaded(msg)

	case sessionFailedMsg:
		m.loaded = true
		m.sess.FailLoad(msg.err)
		m.errBanner.Show(m.sess.LastError())
		return m, nil

	case documentLoadedMsg:
		m.sess.ApplyDocument(msg.doc)
		m.header.SetDocument(documentTitle(&msg.doc.Document))
		m.refreshDocPane()
		return m, nil

	case documentFailedMsg:
		log.WithError(msg.err).Warn("document fetch failed")
		return m, nil

	case pdfURLMsg:
		m.sess.SetPDFURL(msg.url)
		m.refreshDocPane()
		return m, nil

	case sendCompletedMsg:
		m.sess.CompleteSend(msg.pendingID, msg.result)
		m.spinner.Stop()
		m.refreshConversation(true)
		return m, nil

	case sendFailedMsg:
		m.sess.FailSend(msg.pendingID, msg.err)
		m.spinner.Stop()
		m.errBanner.Show(m.sess.LastError())
		m.refreshConversation(true)
		return m, nil

	case authExpiredMsg:
		m.authExpired = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// handleSessionLoaded applies the fetched detail and chains the document
// fetch when no handoff payload supplied it.
func (m *Model) handleSessionLoaded(msg sessionLoadedMsg) (tea.Model, tea.Cmd) {
	m.loaded = true
	m.sess.ApplyDetail(msg.detail)
	m.refreshConversation(true)

	var cmds []tea.Cmd
	if sess := m.sess.Session(); sess != nil && sess.DocumentID != "" {
		if m.sess.NeedsDocument() {
			cmds = append(cmds, loadDocumentCmd(m.client, sess.DocumentID))
		}
		if m.sess.PDFURL() == "" {
			cmds = append(cmds, fetchPDFURLCmd(m.client, sess.DocumentID))
		}
	}
	if doc := m.sess.Document(); doc != nil {
		m.header.SetDocument(documentTitle(doc))
		m.refreshDocPane()
	}
	return m, tea.Batch(cmds...)
}

// handleKey routes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.SwitchPane):
		if m.focus == PaneChat {
			m.focus = PaneDocument
			m.input.Blur()
		} else {
			m.focus = PaneChat
			m.input.Focus()
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleChat):
		m.layout.ToggleChat()
		if m.layout.Collapsed() {
			m.focus = PaneDocument
			m.input.Blur()
		}
		m.resizePanes()
		return m, nil

	case key.Matches(msg, m.keys.Suggested):
		if qs := m.sess.SuggestedQuestions(); len(qs) > 0 {
			m.sess.UseSuggestedQuestion(qs[m.suggestedIdx%len(qs)])
			m.suggestedIdx++
			m.input.SetValue(m.sess.Draft())
		}
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m.submit()

	case key.Matches(msg, m.keys.ScrollUp), key.Matches(msg, m.keys.ScrollDown),
		key.Matches(msg, m.keys.PageUp), key.Matches(msg, m.keys.PageDown):
		var cmd tea.Cmd
		if m.focus == PaneDocument {
			m.docView, cmd = m.docView.Update(msg)
		} else {
			m.convoView, cmd = m.convoView.Update(msg)
		}
		return m, cmd
	}

	if m.focus == PaneChat {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.sess.SetDraft(m.input.Value())
		m.errBanner.Clear()
		return m, cmd
	}
	return m, nil
}

// submit starts the optimistic send flow.
func (m *Model) submit() (tea.Model, tea.Cmd) {
	m.sess.SetDraft(m.input.Value())
	pending, err := m.sess.BeginSend()
	if err != nil {
		if msg := m.sess.LastError(); msg != "" {
			m.errBanner.Show(msg)
		}
		return m, nil
	}

	m.input.SetValue("")
	m.errBanner.Clear()
	m.refreshConversation(true)

	return m, tea.Batch(
		m.spinner.Start(),
		sendMessageCmd(m.client, m.sess.SessionID(), pending.ID, pending.Content),
	)
}

// handleMouse wires drag events into the layout controller. Cell
// coordinates scale into the controller's nominal pixel space.
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.width <= 0 || m.height <= 0 {
		return m, nil
	}

	nominalX := msg.X * NominalViewportW / m.width
	nominalY := msg.Y * NominalViewportH / m.height

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if axis, ok := m.hitDivider(msg.X, msg.Y); ok {
			m.layout.StartResize(axis)
			m.resizePanes()
		}

	case tea.MouseActionMotion:
		if m.layout.Dragging() {
			m.layout.Move(nominalX, nominalY, NominalViewportW, NominalViewportH)
			m.resizePanes()
		}

	case tea.MouseActionRelease:
		m.layout.Release()
	}
	return m, nil
}

// hitDivider tests whether a press lands on the vertical pane divider or
// the horizontal splitter inside the chat pane.
func (m *Model) hitDivider(x, y int) (layout.Axis, bool) {
	bodyTop := 1               // header row
	bodyBottom := m.height - 2 // status bar row
	if y < bodyTop || y > bodyBottom {
		return 0, false
	}

	docCols, chatCols := m.layout.Split(m.width, NominalViewportW)
	if !m.layout.Collapsed() && x >= docCols-1 && x <= docCols {
		return layout.AxisWidth, true
	}

	if chatCols > 0 && x > docCols {
		convoRows := m.layout.ConversationRows(bodyBottom - bodyTop)
		if y == bodyTop+convoRows {
			return layout.AxisHeight, true
		}
	}
	return 0, false
}

// resizePanes recomputes viewport dimensions from the committed layout.
func (m *Model) resizePanes() {
	if m.width <= 0 || m.height <= 0 {
		return
	}

	bodyRows := m.height - 2 // header + status bar
	if bodyRows < 1 {
		bodyRows = 1
	}

	docCols, chatCols := m.layout.Split(m.width, NominalViewportW)

	m.docView.Width = max(docCols-1, 1)
	m.docView.Height = bodyRows
	m.refreshDocPane()

	if chatCols > 0 {
		convoRows := m.layout.ConversationRows(bodyRows)
		m.convoView.Width = max(chatCols-1, 1)
		m.convoView.Height = convoRows
		m.input.Width = max(chatCols-6, 10)
		m.renderer.SetWidth(m.convoView.Width)
		m.refreshConversation(false)
	}
}

// refreshConversation re-renders the message list into the viewport.
func (m *Model) refreshConversation(scrollToBottom bool) {
	m.convoView.SetContent(m.renderer.RenderAll(m.sess.Messages()))
	if scrollToBottom {
		m.convoView.GotoBottom()
	}
}
