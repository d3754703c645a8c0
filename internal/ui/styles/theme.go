// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	IsDark       bool
	ColorProfile termenv.Profile

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App    lipgloss.Style
	Header lipgloss.Style
	Brand  lipgloss.Style

	// ==========================================================================
	// PANE STYLES
	// ==========================================================================

	DocumentPane   lipgloss.Style
	ChatPane       lipgloss.Style
	Divider        lipgloss.Style
	DividerActive  lipgloss.Style
	SectionHeading lipgloss.Style

	// ==========================================================================
	// MESSAGE BUBBLE STYLES
	// ==========================================================================

	UserBubble    lipgloss.Style
	AIBubble      lipgloss.Style
	SystemBubble  lipgloss.Style
	PendingBubble lipgloss.Style
	Timestamp     lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer   lipgloss.Style
	InputPrompt      lipgloss.Style
	InputPlaceholder lipgloss.Style

	// ==========================================================================
	// STATUS AND FEEDBACK STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
	ErrorBanner  lipgloss.Style
	Spinner      lipgloss.Style
	Suggested    lipgloss.Style
}

// NewTheme builds the theme for the current terminal.
func NewTheme() *Theme {
	output := termenv.DefaultOutput()
	t := &Theme{
		IsDark:       lipgloss.HasDarkBackground(),
		ColorProfile: output.Profile,
	}

	t.App = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.Header = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextPrimary).
		Bold(true).
		Padding(0, 1)

	t.Brand = lipgloss.NewStyle().
		Foreground(Indigo).
		Bold(true)

	t.DocumentPane = lipgloss.NewStyle().
		Padding(0, 1)

	t.ChatPane = lipgloss.NewStyle().
		Padding(0, 1)

	t.Divider = lipgloss.NewStyle().
		Foreground(Overlay)

	t.DividerActive = lipgloss.NewStyle().
		Foreground(OverlayBright).
		Bold(true)

	t.SectionHeading = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Bold(true).
		MarginTop(1)

	t.UserBubble = lipgloss.NewStyle().
		Background(UserBubbleBg).
		Foreground(UserBubbleFg).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(UserBubbleBorder).
		Padding(0, 1)

	t.AIBubble = lipgloss.NewStyle().
		Background(AIBubbleBg).
		Foreground(AIBubbleFg).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(AIBubbleBorder).
		Padding(0, 1)

	t.SystemBubble = lipgloss.NewStyle().
		Background(SystemBubbleBg).
		Foreground(SystemBubbleFg).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(SystemBubbleBorder).
		Padding(0, 1)

	// Pending sends render dimmed until the server confirms them.
	t.PendingBubble = t.UserBubble.
		Foreground(TextMuted).
		Faint(true)

	t.Timestamp = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.InputContainer = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(Indigo).
		Bold(true)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.ErrorBanner = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	t.Spinner = lipgloss.NewStyle().
		Foreground(Indigo)

	t.Suggested = lipgloss.NewStyle().
		Foreground(Cyan).
		Italic(true)

	return t
}
