// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the client-side data structures for chat sessions,
// messages, documents, and summaries.
//
// All of these entities are created and owned by the backend; the client
// holds read-only projections of them. The one exception is the optimistic
// pending message, which the client synthesizes locally while a send is in
// flight and discards once the server confirms or rejects it.
package model
