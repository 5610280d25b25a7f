// Package export renders extraction results for the CLI: JSON for
// machine consumers, XLSX workbooks for review, and a terminal summary.
package export

import (
	"encoding/json"
	"io"

	"github.com/quizforge/docxtract/pkg/docx"
)

// WriteJSON serializes the full extraction result. Image bytes are
// emitted base64-encoded by the standard marshaller.
func WriteJSON(w io.Writer, result *docx.ExtractResult, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(result)
}

// WriteParagraphsJSON serializes only the paragraph records, matching
// the reduced extraction entry point.
func WriteParagraphsJSON(w io.Writer, paragraphs []docx.Paragraph, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(paragraphs)
}
