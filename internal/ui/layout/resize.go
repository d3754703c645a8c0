// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package layout tracks the geometry of the dual-pane session view: a
// document pane on the left, a chat pane on the right, with a draggable
// vertical divider, plus a horizontally draggable splitter inside the
// chat pane separating the conversation from the input area.
//
// The controller works in nominal pixel coordinates. Pointer positions
// arrive from mouse events; the view layer maps terminal cells to
// nominal pixels before calling in and back when rendering.
package layout

import (
	"github.com/jeranaias/clarilaw-tui/internal/util"
)

// Chat pane geometry bounds. Width commits only strictly inside
// (MinChatWidth, MaxChatWidth); the height fraction only strictly
// inside (MinHeightPercent, MaxHeightPercent).
const (
	MinChatWidth = 250
	MaxChatWidth = 600

	MinHeightPercent = 15.0
	MaxHeightPercent = 90.0
)

// Defaults applied before any drag.
const (
	DefaultChatWidth     = 420
	DefaultHeightPercent = 65.0
)

// Axis identifies which divider a drag operates on.
type Axis int

const (
	// AxisWidth is the vertical divider between document and chat panes.
	AxisWidth Axis = iota
	// AxisHeight is the horizontal splitter inside the chat pane.
	AxisHeight
)

// Controller holds the resizable dual-pane state. It is owned by the
// program's update loop and is not safe for concurrent use.
type Controller struct {
	chatWidth     int
	heightPercent float64
	collapsed     bool

	draggingWidth  bool
	draggingHeight bool
}

// NewController returns a controller with default geometry.
func NewController() *Controller {
	return &Controller{
		chatWidth:     DefaultChatWidth,
		heightPercent: DefaultHeightPercent,
	}
}

// StartResize begins a drag on the given axis. Starting a height drag
// while the chat pane is collapsed expands it first, so the user is
// always resizing a visible pane.
func (c *Controller) StartResize(axis Axis) {
	switch axis {
	case AxisWidth:
		c.draggingWidth = true
	case AxisHeight:
		if c.collapsed {
			c.collapsed = false
		}
		c.draggingHeight = true
	}
}

// Move applies a pointer position while a drag is active. Candidate
// values outside their open interval are discarded and the previous
// committed value stays in effect, so dragging past a bound pins the
// pane at its last in-range size.
func (c *Controller) Move(x, y, viewportW, viewportH int) {
	if c.draggingWidth {
		candidate := viewportW - x
		if util.InOpenRange(float64(candidate), MinChatWidth, MaxChatWidth) {
			c.chatWidth = candidate
		}
	}
	if c.draggingHeight && viewportH > 0 {
		candidate := float64(viewportH-y) / float64(viewportH) * 100
		if util.InOpenRange(candidate, MinHeightPercent, MaxHeightPercent) {
			c.heightPercent = candidate
		}
	}
}

// Release ends any active drag on both axes.
func (c *Controller) Release() {
	c.draggingWidth = false
	c.draggingHeight = false
}

// ToggleChat flips the collapsed state of the chat pane. Geometry is
// preserved across collapse so re-expanding restores the prior size.
func (c *Controller) ToggleChat() {
	c.collapsed = !c.collapsed
}

// Dragging reports whether a drag is active on either axis.
func (c *Controller) Dragging() bool {
	return c.draggingWidth || c.draggingHeight
}

// DraggingAxis reports whether a drag is active on the given axis.
func (c *Controller) DraggingAxis(axis Axis) bool {
	if axis == AxisWidth {
		return c.draggingWidth
	}
	return c.draggingHeight
}

// Collapsed reports whether the chat pane is collapsed.
func (c *Controller) Collapsed() bool {
	return c.collapsed
}

// ChatWidth returns the committed chat pane width in nominal pixels.
func (c *Controller) ChatWidth() int {
	return c.chatWidth
}

// HeightPercent returns the committed conversation height as a
// percentage of the chat pane.
func (c *Controller) HeightPercent() float64 {
	return c.heightPercent
}

// Split maps the committed geometry onto a terminal of the given cell
// size, returning the document and chat pane widths in cells. The
// nominal pixel width scales against the nominal viewport so the
// proportions match what the bounds describe.
func (c *Controller) Split(cols, nominalViewportW int) (docCols, chatCols int) {
	if c.collapsed || cols <= 0 {
		return cols, 0
	}
	if nominalViewportW <= 0 {
		nominalViewportW = DefaultChatWidth + MaxChatWidth
	}
	chatCols = c.chatWidth * cols / nominalViewportW
	chatCols = util.Clamp(chatCols, 1, cols-1)
	return cols - chatCols, chatCols
}

// ConversationRows splits the chat pane's rows between conversation and
// input area using the committed height percentage.
func (c *Controller) ConversationRows(rows int) int {
	if rows <= 0 {
		return 0
	}
	conv := int(float64(rows) * c.heightPercent / 100)
	return util.Clamp(conv, 1, rows-1)
}
