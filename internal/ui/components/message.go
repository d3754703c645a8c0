// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jeranaias/clarilaw-tui/internal/model"
	"github.com/jeranaias/clarilaw-tui/internal/ui/styles"
)

// MessageRenderer draws chat messages as aligned bubbles: user messages
// on the right, AI and system messages on the left.
type MessageRenderer struct {
	theme *styles.Theme
	width int
}

// NewMessageRenderer creates a renderer for the given theme.
func NewMessageRenderer(theme *styles.Theme) *MessageRenderer {
	return &MessageRenderer{theme: theme, width: 80}
}

// SetWidth sets the available pane width in cells.
func (r *MessageRenderer) SetWidth(width int) {
	if width > 0 {
		r.width = width
	}
}

// Render draws one message as a bubble with sender label and timestamp.
func (r *MessageRenderer) Render(msg model.Message) string {
	bubbleWidth := r.width * 3 / 4
	if bubbleWidth < 20 {
		bubbleWidth = r.width
	}

	content := wordwrap.String(msg.Content, bubbleWidth-4)

	var bubble lipgloss.Style
	align := lipgloss.Left
	switch {
	case msg.IsPending():
		bubble = r.theme.PendingBubble
		align = lipgloss.Right
	case msg.Role == model.RoleUser:
		bubble = r.theme.UserBubble
		align = lipgloss.Right
	case msg.Role == model.RoleSystem:
		bubble = r.theme.SystemBubble
	default:
		bubble = r.theme.AIBubble
	}

	label := msg.Role.DisplayName()
	if msg.IsPending() {
		label += " (sending...)"
	} else if !msg.Timestamp.IsZero() {
		label += " " + msg.Timestamp.Local().Format("15:04")
	}

	rendered := bubble.MaxWidth(bubbleWidth).Render(content)
	meta := r.theme.Timestamp.Render(label)

	block := lipgloss.JoinVertical(align, meta, rendered)
	return lipgloss.PlaceHorizontal(r.width, align, block)
}

// RenderAll draws a message list separated by blank lines.
func (r *MessageRenderer) RenderAll(msgs []model.Message) string {
	var out string
	for i, m := range msgs {
		if i > 0 {
			out += "\n\n"
		}
		out += r.Render(m)
	}
	return out
}
