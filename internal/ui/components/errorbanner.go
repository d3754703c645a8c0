// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/muesli/reflow/truncate"

	"github.com/jeranaias/clarilaw-tui/internal/ui/styles"
)

// ErrorBanner renders a one-line inline error above the input area.
// Messages are short, human-readable strings; raw error chains never
// reach this component.
type ErrorBanner struct {
	theme   *styles.Theme
	message string
}

// NewErrorBanner creates an empty banner.
func NewErrorBanner(theme *styles.Theme) *ErrorBanner {
	return &ErrorBanner{theme: theme}
}

// Show sets the message. An empty string hides the banner.
func (b *ErrorBanner) Show(message string) {
	b.message = message
}

// Clear hides the banner.
func (b *ErrorBanner) Clear() {
	b.message = ""
}

// Visible reports whether a message is set.
func (b *ErrorBanner) Visible() bool {
	return b.message != ""
}

// View renders the banner, truncated to width.
func (b *ErrorBanner) View(width int) string {
	if b.message == "" {
		return ""
	}
	line := styles.StatusIndicators.Error + " " + b.message
	if width > 4 {
		line = truncate.StringWithTail(line, uint(width), "...")
	}
	return b.theme.ErrorBanner.Render(line)
}
