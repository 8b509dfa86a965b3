// Package document renders generated text into Word (.docx) files.
package document

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fumiama/go-docx"
)

const ContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

const headingSize = "32" // half-points

// Assemble builds a .docx holding a heading set to title followed by one
// paragraph per non-empty line of text. The whole file is buffered in memory.
func Assemble(title, text string) ([]byte, error) {
	doc := docx.New().WithDefaultTheme().WithA4Page()
	doc.AddParagraph().AddText(title).Bold().Size(headingSize)
	for _, line := range Paragraphs(text) {
		doc.AddParagraph().AddText(line)
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("document: write docx: %w", err)
	}
	return buf.Bytes(), nil
}

// Paragraphs splits text on newlines and drops lines that are empty or only
// whitespace. Kept lines are returned verbatim, in order.
func Paragraphs(text string) []string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

var filenameReplacer = strings.NewReplacer(" ", "_", "/", "_")

// Filename derives the attachment name for a document type.
func Filename(docType string) string {
	return filenameReplacer.Replace(docType) + ".docx"
}
