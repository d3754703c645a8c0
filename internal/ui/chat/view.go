// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/clarilaw-tui/internal/ui/layout"
)

// View renders the dual-pane session screen.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if !m.loaded {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			"Loading session...")
	}

	header := m.header.View(m.width)
	status := m.statusBar.View(m.width)

	bodyRows := m.height - 2
	if bodyRows < 1 {
		bodyRows = 1
	}

	docCols, chatCols := m.layout.Split(m.width, NominalViewportW)
	doc := m.renderDocPane(docCols, bodyRows)

	var body string
	if chatCols > 0 {
		divider := m.renderDivider(bodyRows)
		chat := m.renderChatPane(chatCols-1, bodyRows)
		body = lipgloss.JoinHorizontal(lipgloss.Top, doc, divider, chat)
	} else {
		body = doc
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, status)
}

// renderDocPane draws the document summary viewport.
func (m *Model) renderDocPane(cols, rows int) string {
	pane := m.theme.DocumentPane.
		Width(max(cols-1, 1)).
		Height(rows)
	return pane.Render(m.docView.View())
}

// renderDivider draws the vertical divider, highlighted during a drag.
func (m *Model) renderDivider(rows int) string {
	style := m.theme.Divider
	if m.layout.DraggingAxis(layout.AxisWidth) {
		style = m.theme.DividerActive
	}
	return style.Render(strings.TrimSuffix(strings.Repeat("|\n", rows), "\n"))
}

// renderChatPane draws the conversation, suggested questions, inline
// error, thinking indicator and input area.
func (m *Model) renderChatPane(cols, rows int) string {
	var sections []string

	sections = append(sections, m.convoView.View())

	splitter := m.theme.Divider
	if m.layout.DraggingAxis(layout.AxisHeight) {
		splitter = m.theme.DividerActive
	}
	sections = append(sections, splitter.Render(strings.Repeat("-", max(cols, 1))))

	if m.spinner.IsActive() {
		sections = append(sections, m.spinner.View())
	}
	if m.errBanner.Visible() {
		sections = append(sections, m.errBanner.View(cols))
	}
	if qs := m.sess.SuggestedQuestions(); len(qs) > 0 && len(m.sess.Messages()) == 0 {
		sections = append(sections, m.theme.Suggested.Render("Try: "+qs[0]))
	}

	sections = append(sections, m.theme.InputContainer.Width(cols).Render(
		m.theme.InputPrompt.Render("> ")+m.input.View()))

	pane := m.theme.ChatPane.
		Width(cols).
		Height(rows)
	return pane.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
