// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small shared helpers for the clarilaw TUI:
// rune- and width-safe string truncation and numeric range checks.
package util
