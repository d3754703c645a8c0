// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/jeranaias/clarilaw-tui/internal/model"
	"github.com/jeranaias/clarilaw-tui/internal/ui/styles"
	"github.com/jeranaias/clarilaw-tui/internal/upload"
)

func TestRenderBar(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		percent int
		want    string
	}{
		{"empty", 10, 0, "[----------]"},
		{"half", 10, 50, "[#####-----]"},
		{"full", 10, 100, "[##########]"},
		{"clamped high", 10, 250, "[##########]"},
		{"clamped low", 10, -5, "[----------]"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := RenderBar(tc.width, tc.percent); got != tc.want {
				t.Errorf("RenderBar(%d, %d) = %q, want %q", tc.width, tc.percent, got, tc.want)
			}
		})
	}
}

func TestUploadProgressLabels(t *testing.T) {
	tests := []struct {
		progress upload.Progress
		want     string
	}{
		{upload.Progress{Percent: 40, Status: upload.StatusUploading}, "Uploading 40%"},
		{upload.Progress{Percent: 100, Status: upload.StatusProcessing}, "Processing document..."},
		{upload.Progress{Percent: 100, Status: upload.StatusCompleted}, "Done"},
		{upload.Progress{Status: upload.StatusError}, "Failed"},
	}
	for _, tc := range tests {
		out := UploadProgress(60, tc.progress)
		if !strings.Contains(out, tc.want) {
			t.Errorf("UploadProgress(%v) = %q, want substring %q", tc.progress, out, tc.want)
		}
	}
}

func TestMessageRenderer_PendingMarker(t *testing.T) {
	r := NewMessageRenderer(styles.NewTheme())
	r.SetWidth(60)

	pending := model.NewPendingMessage("sess-1", "on its way")
	out := r.Render(pending)
	if !strings.Contains(out, "(sending...)") {
		t.Error("pending message must carry the sending marker")
	}

	confirmed := model.Message{Role: model.RoleAI, Content: "done"}
	if strings.Contains(r.Render(confirmed), "(sending...)") {
		t.Error("confirmed message must not carry the sending marker")
	}
}

func TestErrorBanner(t *testing.T) {
	b := NewErrorBanner(styles.NewTheme())
	if b.Visible() {
		t.Error("new banner must be hidden")
	}

	b.Show("Failed to send message")
	if !b.Visible() || !strings.Contains(b.View(80), "Failed to send message") {
		t.Error("banner must render its message")
	}

	b.Clear()
	if b.Visible() || b.View(80) != "" {
		t.Error("cleared banner must render nothing")
	}
}

func TestStatusBar_FitsWidth(t *testing.T) {
	bar := NewStatusBar(styles.NewTheme())
	bar.SetUser("Jane Tenant")

	out := bar.View(100)
	if !strings.Contains(out, "Jane Tenant") {
		t.Error("status bar must show the user name")
	}

	if NewStatusBar(styles.NewTheme()).View(0) != "" {
		t.Error("zero width must render nothing")
	}
}

func TestStatusBar_DefaultHintsAreBound(t *testing.T) {
	out := NewStatusBar(styles.NewTheme()).View(120)

	if strings.Contains(out, "ctrl+u") {
		t.Error("status bar must not advertise a shortcut the chat view does not bind")
	}
	for _, key := range []string{"tab", "ctrl+t", "ctrl+c"} {
		if !strings.Contains(out, key) {
			t.Errorf("status bar missing %q hint", key)
		}
	}
}

func TestHeader_ShowsDocument(t *testing.T) {
	h := NewHeader(styles.NewTheme())
	h.SetDocument("lease_agreement.pdf")

	out := h.View(80)
	if !strings.Contains(out, "clarilaw") || !strings.Contains(out, "lease_agreement.pdf") {
		t.Errorf("header = %q, want brand and document title", out)
	}
}
