// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/clarilaw-tui/internal/ui/styles"
)

// Spinner is a loading spinner with a message and optional elapsed timer.
type Spinner struct {
	spinner   spinner.Model
	message   string
	startTime time.Time
	active    bool
	showTimer bool
}

// NewSpinner creates a spinner with ASCII-compatible frames.
func NewSpinner(message string) Spinner {
	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: []string{"|", "/", "-", "\\"},
		FPS:    time.Second / 10,
	}
	return Spinner{spinner: s, message: message, showTimer: true}
}

// NewThinkingSpinner creates the spinner shown while the AI composes a reply.
func NewThinkingSpinner() Spinner {
	return NewSpinner("Thinking")
}

// SetMessage sets the text displayed next to the spinner.
func (s *Spinner) SetMessage(msg string) {
	s.message = msg
}

// Start activates the spinner and records the start time.
func (s *Spinner) Start() tea.Cmd {
	s.active = true
	s.startTime = time.Now()
	return s.spinner.Tick
}

// Stop deactivates the spinner.
func (s *Spinner) Stop() {
	s.active = false
}

// IsActive returns whether the spinner is currently running.
func (s Spinner) IsActive() bool {
	return s.active
}

// Update handles messages for the spinner.
func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	if !s.active {
		return s, nil
	}
	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	return s, cmd
}

// View renders the spinner.
func (s Spinner) View() string {
	if !s.active {
		return ""
	}

	frame := lipgloss.NewStyle().
		Foreground(styles.Indigo).
		Render(s.spinner.View())
	text := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Render(s.message + "...")

	out := frame + " " + text
	if s.showTimer && !s.startTime.IsZero() {
		elapsed := int(time.Since(s.startTime).Seconds())
		out += lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Render(fmt.Sprintf(" (%ds)", elapsed))
	}
	return out
}
