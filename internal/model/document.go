// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "time"

// Document is the client's read-only projection of an uploaded document.
type Document struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Filename  string    `json:"filename"`
	BlobPath  string    `json:"blob_path"`
	FileSize  int64     `json:"file_size"`
	FileType  string    `json:"file_type"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Summary is the AI-generated explanation of a document, 1:1 with the
// document it summarizes. It may be absent while the backend is still
// processing.
type Summary struct {
	DocumentID      string   `json:"document_id"`
	Summary         string   `json:"summary"`
	KeyPoints       []string `json:"key_points"`
	Highlights      []string `json:"highlights"`
	ComplexityScore int      `json:"complexity_score"`
	ImportantDates  []string `json:"important_dates"`
	Obligations     []string `json:"obligations"`
	Rights          []string `json:"rights"`
	Risks           []string `json:"risks"`
}

// ComplexityLabel maps the 1-10 complexity score to a short reader-facing label.
func (s Summary) ComplexityLabel() string {
	switch {
	case s.ComplexityScore <= 0:
		return "unrated"
	case s.ComplexityScore <= 3:
		return "plain"
	case s.ComplexityScore <= 6:
		return "moderate"
	case s.ComplexityScore <= 8:
		return "dense"
	default:
		return "very dense"
	}
}
