// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api implements the typed HTTP client for the clarilaw backend.
//
// Every endpoint wraps its payload in the shared envelope
// {success, message, data}; callers branch on success, never on the HTTP
// status alone. The bearer token is attached automatically whenever the
// configured token source holds one.
package api
