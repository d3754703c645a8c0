// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the reusable visual components for the
// clarilaw TUI: spinners, progress bars, message bubbles, the status
// bar and error banners.
package components
