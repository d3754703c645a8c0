// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package upload validates a selected file and drives a progress-reporting
// upload to the backend.
//
// Validation failures are rejected before any network call. Progress moves
// through uploading -> processing -> completed: "processing" begins the
// moment the request body is fully on the wire, while the server response
// is still pending.
package upload

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/jeranaias/clarilaw-tui/internal/api"
)

// DefaultMaxFileBytes is the upload size ceiling (10 MiB).
const DefaultMaxFileBytes = 10 * 1024 * 1024

// genericUploadError is shown when the backend supplies no message.
const genericUploadError = "Upload failed. Please try again."

// Validation errors, surfaced synchronously with no network call issued.
var (
	ErrFileTooLarge    = errors.New("File size must be less than 10MB")
	ErrUnsupportedType = errors.New("Only PDF, DOC, DOCX and TXT files are supported")
	ErrFileNotReadable = errors.New("File could not be read")
	ErrUploadInFlight  = errors.New("an upload is already in progress")
)

// allowedTypes is the MIME allow-list for uploads.
var allowedTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"text/plain": true,
}

// extensionTypes maps known file extensions to their MIME types.
var extensionTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".txt":  "text/plain",
}

// =============================================================================
// STATUS
// =============================================================================

// Status is the upload lifecycle state.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusUploading  Status = "uploading"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusError      Status = "error"
)

// Progress is the {progress, status} tuple reported while an upload runs.
type Progress struct {
	Percent int
	Status  Status
}

// ProgressFunc receives progress updates during an upload.
type ProgressFunc func(Progress)

// Result carries everything the chat view needs as one-shot navigation
// payload after a successful upload.
type Result struct {
	Upload *api.UploadResult
	// SessionID is the created chat session id, or "" when the backend
	// did not create one and the caller falls back to the generic chat
	// entry point.
	SessionID string
}

// =============================================================================
// CONTROLLER
// =============================================================================

// Controller validates and uploads documents.
type Controller struct {
	client   *api.Client
	maxBytes int64
	busy     bool
}

// NewController creates an upload controller. maxBytes <= 0 applies the
// default 10 MiB ceiling.
func NewController(client *api.Client, maxBytes int64) *Controller {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxFileBytes
	}
	return &Controller{client: client, maxBytes: maxBytes}
}

// DetectType resolves a file's MIME type from its extension. Unknown
// extensions return "" and fail validation.
func DetectType(filename string) string {
	return extensionTypes[strings.ToLower(filepath.Ext(filename))]
}

// Validate rejects unsupported types and oversized files before any
// network traffic.
func (c *Controller) Validate(mimeType string, size int64) error {
	if !allowedTypes[mimeType] {
		return ErrUnsupportedType
	}
	if size > c.maxBytes {
		return ErrFileTooLarge
	}
	return nil
}

// UploadFile validates and uploads the file at path, reporting progress.
// On success the returned Result carries the created session handoff; on
// failure the error text is the backend's message verbatim when present,
// else a generic fallback.
func (c *Controller) UploadFile(ctx context.Context, path, title string, onProgress ProgressFunc) (*Result, error) {
	if c.busy {
		return nil, ErrUploadInFlight
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, ErrFileNotReadable
	}
	mimeType := DetectType(path)
	if err := c.Validate(mimeType, info.Size()); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, ErrFileNotReadable
	}
	defer f.Close()

	c.busy = true
	defer func() { c.busy = false }()

	report := func(p Progress) {
		if onProgress != nil {
			onProgress(p)
		}
	}
	report(Progress{Percent: 0, Status: StatusUploading})

	result, err := c.client.UploadDocument(ctx, filepath.Base(path), mimeType, f, title,
		func(sent, total int64) {
			percent := 0
			if total > 0 {
				percent = int(sent * 100 / total)
			}
			status := StatusUploading
			if sent >= total {
				// Bytes are fully sent; the server is now processing.
				status = StatusProcessing
			}
			report(Progress{Percent: percent, Status: status})
		})
	if err != nil {
		report(Progress{Percent: 0, Status: StatusError})
		log.WithError(err).WithField("file", path).Error("upload failed")
		if msg := api.BackendMessage(err); msg != "" {
			return nil, errors.New(msg)
		}
		return nil, errors.New(genericUploadError)
	}

	report(Progress{Percent: 100, Status: StatusCompleted})

	res := &Result{Upload: result}
	if result.ChatSession != nil {
		res.SessionID = result.ChatSession.ID
	}
	return res, nil
}

// Busy reports whether an upload is outstanding.
func (c *Controller) Busy() bool {
	return c.busy
}

// CeilingLabel renders the size ceiling for error display, e.g. "10MB".
func (c *Controller) CeilingLabel() string {
	return fmt.Sprintf("%dMB", c.maxBytes/(1024*1024))
}
