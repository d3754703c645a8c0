// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"

	"github.com/jeranaias/clarilaw-tui/internal/model"
)

// DocumentWithSummary is the payload of the combined document+summary fetch.
// Summary may be nil while the backend is still processing the document.
type DocumentWithSummary struct {
	Document        model.Document  `json:"document"`
	Summary         *model.Summary  `json:"summary"`
	ChatSessions    []model.Session `json:"chat_sessions"`
	HasChatSessions bool            `json:"has_chat_sessions"`
}

// DownloadInfo is the payload of a time-limited download URL fetch.
type DownloadInfo struct {
	DownloadURL      string `json:"download_url"`
	Filename         string `json:"filename"`
	FileSize         int64  `json:"file_size"`
	ExpiresInMinutes int    `json:"expires_in_minutes"`
}

// FileInfo describes the stored upload as reported by the backend.
type FileInfo struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// UploadResult is the payload of a document upload. ChatSession is set
// when the backend created a conversation for the document in the same
// round-trip.
type UploadResult struct {
	Document           model.Document `json:"document"`
	Summary            *model.Summary `json:"summary"`
	ChatSession        *model.Session `json:"chat_session"`
	SuggestedQuestions []string       `json:"suggested_questions"`
	FileInfo           FileInfo       `json:"file_info"`
}

// ProgressFunc reports upload byte progress. total is the full multipart
// body size, so sent == total means the request body is fully on the wire.
type ProgressFunc func(sent, total int64)

// GetDocumentWithSummary fetches a document together with its summary and
// any existing chat sessions.
func (c *Client) GetDocumentWithSummary(ctx context.Context, documentID string, regenerate bool) (*DocumentWithSummary, error) {
	query := url.Values{}
	if regenerate {
		query.Set("regenerate", "true")
	}
	data, err := c.get(ctx, "/documents/"+url.PathEscape(documentID)+"/with-summary", query)
	if err != nil {
		return nil, err
	}
	var payload DocumentWithSummary
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return &payload, nil
}

// GetDownloadURL fetches a time-limited download URL for the original file.
func (c *Client) GetDownloadURL(ctx context.Context, documentID string, expirationMinutes int) (*DownloadInfo, error) {
	query := url.Values{}
	if expirationMinutes > 0 {
		query.Set("expiration_minutes", strconv.Itoa(expirationMinutes))
	}
	data, err := c.get(ctx, "/documents/"+url.PathEscape(documentID)+"/download", query)
	if err != nil {
		return nil, err
	}
	var info DownloadInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("failed to parse download info: %w", err)
	}
	return &info, nil
}

// ListDocuments lists the user's uploaded documents.
func (c *Client) ListDocuments(ctx context.Context) ([]model.Document, error) {
	data, err := c.get(ctx, "/documents/", nil)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Documents []model.Document `json:"documents"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse documents: %w", err)
	}
	return payload.Documents, nil
}

// UploadDocument uploads a file as multipart/form-data. Uploads are not
// retried; the caller decides whether re-submitting is safe. onProgress,
// when non-nil, receives byte progress as the body is written to the wire.
func (c *Client) UploadDocument(ctx context.Context, filename, contentType string, content io.Reader, title string, onProgress ProgressFunc) (*UploadResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename="%s"`, escapeQuotes(filename)))
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("failed to buffer file: %w", err)
	}
	if title != "" {
		if err := mw.WriteField("title", title); err != nil {
			return nil, fmt.Errorf("failed to write title field: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form: %w", err)
	}

	total := int64(buf.Len())
	body := &progressReader{r: &buf, total: total, onProgress: onProgress}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/documents/upload", body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.ContentLength = total

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := readResponse(resp)
	if err != nil {
		return nil, err
	}
	data, err := decodeEnvelope(resp.StatusCode, raw)
	if err != nil {
		return nil, err
	}

	var result UploadResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse upload result: %w", err)
	}
	return &result, nil
}

// progressReader counts bytes as the HTTP transport drains the body.
type progressReader struct {
	r          io.Reader
	total      int64
	sent       int64
	onProgress ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.sent += int64(n)
		if p.onProgress != nil {
			p.onProgress(p.sent, p.total)
		}
	}
	return n, err
}

// escapeQuotes mirrors multipart's quoting for filename fields.
func escapeQuotes(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}
