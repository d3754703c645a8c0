// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/jeranaias/clarilaw-tui/internal/ui/styles"
)

// Shortcut is one key hint shown in the status bar.
type Shortcut struct {
	Key  string
	Desc string
}

// StatusBar renders the bottom status line: user identity on the left,
// keyboard shortcuts on the right, truncated to the terminal width.
type StatusBar struct {
	theme     *styles.Theme
	userName  string
	shortcuts []Shortcut
}

// NewStatusBar creates a status bar with the default shortcut set.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		theme: theme,
		shortcuts: []Shortcut{
			{"tab", "switch pane"},
			{"ctrl+t", "toggle chat"},
			{"ctrl+c", "quit"},
		},
	}
}

// SetUser sets the display name shown on the left.
func (b *StatusBar) SetUser(name string) {
	b.userName = name
}

// SetShortcuts replaces the shortcut hints.
func (b *StatusBar) SetShortcuts(shortcuts []Shortcut) {
	b.shortcuts = shortcuts
}

// View renders the bar for the given terminal width.
func (b *StatusBar) View(width int) string {
	if width <= 0 {
		return ""
	}

	var hints []string
	for _, s := range b.shortcuts {
		hints = append(hints,
			b.theme.ShortcutKey.Render(s.Key)+" "+b.theme.ShortcutDesc.Render(s.Desc))
	}
	right := strings.Join(hints, "  ")

	left := b.userName
	if left == "" {
		left = "not signed in"
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		// Drop the hints before the identity.
		line := truncate.StringWithTail(left, uint(width-2), "...")
		return b.theme.StatusBar.Width(width).Render(line)
	}

	return b.theme.StatusBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
