// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/clarilaw-tui/internal/ui/styles"
	"github.com/jeranaias/clarilaw-tui/internal/upload"
	"github.com/jeranaias/clarilaw-tui/internal/util"
)

// RenderBar renders an ASCII progress bar of the given width, filled to
// percent (0-100).
func RenderBar(width, percent int) string {
	if width < 4 {
		width = 4
	}
	percent = util.Clamp(percent, 0, 100)
	filled := width * percent / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// UploadProgress renders the progress line for a document upload,
// coloring by status and labeling the processing phase where the bytes
// are sent but the server has not answered yet.
func UploadProgress(width int, p upload.Progress) string {
	var color lipgloss.AdaptiveColor
	var label string
	switch p.Status {
	case upload.StatusProcessing:
		color = styles.Amber
		label = "Processing document..."
	case upload.StatusCompleted:
		color = styles.Emerald
		label = "Done"
	case upload.StatusError:
		color = styles.Rose
		label = "Failed"
	default:
		color = styles.Indigo
		label = fmt.Sprintf("Uploading %d%%", p.Percent)
	}

	barWidth := width - 24
	if barWidth < 10 {
		barWidth = 10
	}
	bar := lipgloss.NewStyle().Foreground(color).Render(RenderBar(barWidth, p.Percent))
	text := lipgloss.NewStyle().Foreground(styles.TextSecondary).Render(label)
	return bar + " " + text
}
