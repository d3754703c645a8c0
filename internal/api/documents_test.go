// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestClient_UploadDocument(t *testing.T) {
	fileBody := bytes.Repeat([]byte("contract "), 1024)

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Fatalf("ParseMultipartForm: %v", err)
		}
		f, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("FormFile: %v", err)
		}
		defer f.Close()

		if header.Filename != "lease.pdf" {
			t.Errorf("filename = %q, want lease.pdf", header.Filename)
		}
		if ct := header.Header.Get("Content-Type"); ct != "application/pdf" {
			t.Errorf("part content type = %q, want application/pdf", ct)
		}
		got, _ := io.ReadAll(f)
		if !bytes.Equal(got, fileBody) {
			t.Errorf("file body mismatch: got %d bytes, want %d", len(got), len(fileBody))
		}
		if title := r.FormValue("title"); title != "My Lease" {
			t.Errorf("title = %q, want My Lease", title)
		}

		writeEnvelope(w, true, "", map[string]any{
			"document": map[string]any{"id": "doc-1", "title": "My Lease", "filename": "lease.pdf"},
			"summary":  map[string]any{"document_id": "doc-1", "summary": "A lease.", "complexity_score": 4},
			"chat_session": map[string]any{
				"id": "sess-9", "document_id": "doc-1", "title": "My Lease",
			},
			"suggested_questions": []string{"When does it end?"},
			"file_info":           map[string]any{"filename": "lease.pdf", "content_type": "application/pdf", "size": len(fileBody)},
		})
	})

	var lastSent, total int64
	result, err := client.UploadDocument(context.Background(), "lease.pdf", "application/pdf",
		bytes.NewReader(fileBody), "My Lease", func(sent, tot int64) {
			lastSent, total = sent, tot
		})
	if err != nil {
		t.Fatalf("UploadDocument: %v", err)
	}

	if result.Document.ID != "doc-1" {
		t.Errorf("document id = %q", result.Document.ID)
	}
	if result.ChatSession == nil || result.ChatSession.ID != "sess-9" {
		t.Errorf("chat session = %+v, want sess-9", result.ChatSession)
	}
	if result.Summary == nil || result.Summary.ComplexityScore != 4 {
		t.Errorf("summary = %+v", result.Summary)
	}

	// Progress must have reached the full multipart body size.
	if lastSent != total || total == 0 {
		t.Errorf("progress sent=%d total=%d, want sent == total > 0", lastSent, total)
	}
}

func TestClient_UploadDocument_BackendError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.Copy(io.Discard, r.Body)
		writeEnvelope(w, false, "Unsupported file type", nil)
	})

	_, err := client.UploadDocument(context.Background(), "x.bin", "application/octet-stream",
		strings.NewReader("junk"), "", nil)
	if err == nil {
		t.Fatal("expected error for rejected upload")
	}
	if !strings.Contains(err.Error(), "Unsupported file type") {
		t.Errorf("err = %v, want backend message preserved", err)
	}
}

func TestClient_GetDownloadURL(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("expiration_minutes"); got != "60" {
			t.Errorf("expiration_minutes = %q, want 60", got)
		}
		writeEnvelope(w, true, "", map[string]any{
			"download_url":       "https://blob.test/lease.pdf?sig=abc",
			"filename":           "lease.pdf",
			"file_size":          12345,
			"expires_in_minutes": 60,
		})
	})

	info, err := client.GetDownloadURL(context.Background(), "doc-1", 60)
	if err != nil {
		t.Fatalf("GetDownloadURL: %v", err)
	}
	if info.DownloadURL == "" || info.Filename != "lease.pdf" {
		t.Errorf("unexpected info: %+v", info)
	}
}
