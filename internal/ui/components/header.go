// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/jeranaias/clarilaw-tui/internal/ui/styles"
)

// Header renders the top bar: brand on the left, the open document's
// title on the right.
type Header struct {
	theme    *styles.Theme
	document string
}

// NewHeader creates the top bar.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{theme: theme}
}

// SetDocument sets the document title shown on the right.
func (h *Header) SetDocument(title string) {
	h.document = title
}

// View renders the header for the given terminal width.
func (h *Header) View(width int) string {
	if width <= 0 {
		return ""
	}

	brand := h.theme.Brand.Render("clarilaw")
	doc := h.document

	gap := width - lipgloss.Width(brand) - lipgloss.Width(doc) - 2
	if gap < 1 {
		doc = truncate.StringWithTail(doc, uint(max(width-lipgloss.Width(brand)-5, 4)), "...")
		gap = width - lipgloss.Width(brand) - lipgloss.Width(doc) - 2
		if gap < 1 {
			gap = 1
		}
	}

	return h.theme.Header.Width(width).Render(brand + strings.Repeat(" ", gap) + doc)
}
