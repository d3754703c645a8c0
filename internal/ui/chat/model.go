// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/clarilaw-tui/internal/api"
	"github.com/jeranaias/clarilaw-tui/internal/config"
	"github.com/jeranaias/clarilaw-tui/internal/session"
	"github.com/jeranaias/clarilaw-tui/internal/ui/components"
	"github.com/jeranaias/clarilaw-tui/internal/ui/layout"
	"github.com/jeranaias/clarilaw-tui/internal/ui/styles"
)

// NominalViewport is the pixel space the layout controller's bounds are
// defined in. Terminal cells are scaled into this space for divider
// math and back out for rendering.
const (
	NominalViewportW = 1280
	NominalViewportH = 800
)

// Pane identifies which pane holds keyboard focus.
type Pane int

const (
	PaneChat Pane = iota
	PaneDocument
)

// Model is the Bubble Tea model for the dual-pane session view.
type Model struct {
	// Styling
	theme *styles.Theme

	// Dimensions in terminal cells
	width  int
	height int

	// Backend access
	client *api.Client

	// Controllers
	sess   *session.Controller
	layout *layout.Controller

	// UI components
	docView   viewport.Model
	convoView viewport.Model
	input     textinput.Model
	spinner   components.Spinner
	renderer  *components.MessageRenderer
	header    *components.Header
	statusBar *components.StatusBar
	errBanner *components.ErrorBanner

	// Key bindings
	keys KeyMap

	// Focus and suggestion cycling
	focus        Pane
	suggestedIdx int

	// True once the initial session load has settled.
	loaded bool

	// Set when the backend rejects our token; the app layer reads this
	// and returns to login.
	authExpired bool
}

// New creates the session view for the given session id. The model
// fetches the session and, unless handoff data is supplied via
// ApplyHandoff, chains the document fetch.
func New(client *api.Client, theme *styles.Theme, sessionID string) *Model {
	input := textinput.New()
	input.Placeholder = "Ask about your document..."
	input.CharLimit = 2000
	input.Focus()

	sess := session.NewController()
	sess.Reset(sessionID)

	m := &Model{
		theme:     theme,
		client:    client,
		sess:      sess,
		layout:    layout.NewController(),
		input:     input,
		spinner:   components.NewThinkingSpinner(),
		renderer:  components.NewMessageRenderer(theme),
		header:    components.NewHeader(theme),
		statusBar: components.NewStatusBar(theme),
		errBanner: components.NewErrorBanner(theme),
		keys:      DefaultKeyMap(),
	}
	return m
}

// Session exposes the session controller, used by the app layer for
// upload handoffs.
func (m *Model) Session() *session.Controller {
	return m.sess
}

// SetUser sets the signed-in user's display name in the status bar.
func (m *Model) SetUser(name string) {
	m.statusBar.SetUser(name)
}

// AuthExpired reports whether the backend rejected the session token.
func (m *Model) AuthExpired() bool {
	return m.authExpired
}

// Init fetches the session on entry.
func (m *Model) Init() tea.Cmd {
	return loadSessionCmd(m.client, m.sess.SessionID(), config.Global().UI.MessageLimit)
}
