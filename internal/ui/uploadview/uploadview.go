// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package uploadview is a minimal Bubble Tea program that runs one
// document upload and renders its progress bar. The upload itself runs
// in a goroutine; progress arrives over a channel and is drained one
// update per frame.
package uploadview

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/clarilaw-tui/internal/ui/components"
	"github.com/jeranaias/clarilaw-tui/internal/ui/styles"
	"github.com/jeranaias/clarilaw-tui/internal/upload"
)

// progressMsg carries one progress update from the upload goroutine.
type progressMsg upload.Progress

// doneMsg carries the final outcome.
type doneMsg struct {
	result *upload.Result
	err    error
}

// Model drives a single upload to completion.
type Model struct {
	ctrl     *upload.Controller
	path     string
	title    string
	width    int
	progress upload.Progress
	updates  chan upload.Progress
	done     chan doneMsg

	// Final outcome, readable after the program exits.
	Result *upload.Result
	Err    error
}

// New creates the upload view for one file.
func New(ctrl *upload.Controller, path, title string) *Model {
	return &Model{
		ctrl:    ctrl,
		path:    path,
		title:   title,
		width:   80,
		updates: make(chan upload.Progress, 16),
		done:    make(chan doneMsg, 1),
	}
}

// Init starts the upload goroutine and begins draining progress.
func (m *Model) Init() tea.Cmd {
	go func() {
		result, err := m.ctrl.UploadFile(context.Background(), m.path, m.title,
			func(p upload.Progress) {
				// Drop updates rather than block the upload when the
				// program has already quit.
				select {
				case m.updates <- p:
				default:
				}
			})
		m.done <- doneMsg{result: result, err: err}
	}()
	return m.wait()
}

// wait blocks on the next progress update or the final outcome.
func (m *Model) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case p := <-m.updates:
			return progressMsg(p)
		case d := <-m.done:
			return d
		}
	}
}

// Update handles progress and completion.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.Err = context.Canceled
			return m, tea.Quit
		}
		return m, nil

	case progressMsg:
		m.progress = upload.Progress(msg)
		return m, m.wait()

	case doneMsg:
		m.Result = msg.result
		m.Err = msg.err
		if msg.err == nil {
			m.progress = upload.Progress{Percent: 100, Status: upload.StatusCompleted}
		} else {
			m.progress.Status = upload.StatusError
		}
		return m, tea.Quit
	}
	return m, nil
}

// View renders the progress line.
func (m *Model) View() string {
	if m.Err != nil {
		return styles.RenderError(m.Err.Error()) + "\n"
	}
	return components.UploadProgress(m.width, m.progress) + "\n"
}
