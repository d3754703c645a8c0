// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	log "github.com/sirupsen/logrus"

	"github.com/jeranaias/clarilaw-tui/internal/model"
)

// documentTitle resolves the display title, falling back to the stored
// filename.
func documentTitle(doc *model.Document) string {
	if doc == nil {
		return ""
	}
	if doc.Title != "" {
		return doc.Title
	}
	return doc.Filename
}

// summaryMarkdown builds the document pane content as markdown, rendered
// through glamour for the terminal.
func summaryMarkdown(doc *model.Document, summary *model.Summary, pdfURL string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", documentTitle(doc))

	if summary == nil {
		b.WriteString("_Summary is still being prepared..._\n")
		return b.String()
	}

	fmt.Fprintf(&b, "**Complexity:** %d/10 (%s)\n\n", summary.ComplexityScore, summary.ComplexityLabel())
	b.WriteString(summary.Summary)
	b.WriteString("\n")

	writeSection(&b, "Key Points", summary.KeyPoints)
	writeSection(&b, "Important Dates", summary.ImportantDates)
	writeSection(&b, "Your Obligations", summary.Obligations)
	writeSection(&b, "Your Rights", summary.Rights)
	writeSection(&b, "Risks", summary.Risks)
	writeSection(&b, "Highlights", summary.Highlights)

	if pdfURL != "" {
		fmt.Fprintf(&b, "\n[Open original document](%s)\n", pdfURL)
	}
	return b.String()
}

func writeSection(b *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n## %s\n\n", heading)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
}

// refreshDocPane re-renders the document summary into the left viewport.
func (m *Model) refreshDocPane() {
	doc := m.sess.Document()
	if doc == nil {
		m.docView.SetContent("Loading document...")
		return
	}

	md := summaryMarkdown(doc, m.sess.Summary(), m.sess.PDFURL())

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(max(m.docView.Width, 20)),
	)
	if err != nil {
		log.WithError(err).Warn("glamour renderer init failed")
		m.docView.SetContent(md)
		return
	}

	out, err := renderer.Render(md)
	if err != nil {
		log.WithError(err).Warn("summary render failed")
		m.docView.SetContent(md)
		return
	}
	m.docView.SetContent(out)
}
