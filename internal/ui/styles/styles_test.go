// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestComplexityColor(t *testing.T) {
	tests := []struct {
		score int
		want  lipgloss.AdaptiveColor
	}{
		{1, ComplexityLow},
		{3, ComplexityLow},
		{4, ComplexityMedium},
		{6, ComplexityMedium},
		{7, ComplexityHigh},
		{10, ComplexityHigh},
	}
	for _, tc := range tests {
		if got := ComplexityColor(tc.score); got != tc.want {
			t.Errorf("ComplexityColor(%d) = %v, want %v", tc.score, got, tc.want)
		}
	}
}

func TestRenderHelpersIncludeIndicators(t *testing.T) {
	if !strings.Contains(RenderSuccess("done"), "[OK]") {
		t.Error("success output missing [OK] indicator")
	}
	if !strings.Contains(RenderError("bad"), "[X]") {
		t.Error("error output missing [X] indicator")
	}
	if !strings.Contains(RenderWarning("careful"), "[!]") {
		t.Error("warning output missing [!] indicator")
	}
	if !strings.Contains(RenderInfo("note"), "[i]") {
		t.Error("info output missing [i] indicator")
	}
}

func TestNewThemeStylesPopulated(t *testing.T) {
	theme := NewTheme()

	// Spot-check styles that rendering depends on.
	if theme.UserBubble.GetPaddingLeft() != 1 {
		t.Error("user bubble padding not applied")
	}
	if !theme.DividerActive.GetBold() {
		t.Error("active divider must be bold")
	}
	if !theme.PendingBubble.GetFaint() {
		t.Error("pending bubble must render faint")
	}
}
