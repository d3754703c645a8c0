// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the dual-pane session view: the document
// summary on the left, the conversation on the right, separated by a
// mouse-draggable divider.
//
// All state transitions run on the Bubble Tea update loop. Network
// calls happen inside tea.Cmd functions and come back as messages, so
// the model itself is single-threaded and the optimistic send flow
// (pending bubble, server reconcile, rollback) needs no locking.
package chat
