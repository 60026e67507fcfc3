package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"WikiCollector/internal/domain"
	"WikiCollector/internal/ports"
)

// Writer serializes collected records into a JSON snapshot file.
type Writer struct{}

var _ ports.ReportWriter = (*Writer)(nil)

// NewWriter builds the snapshot writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write stores the records as a 2-space indented JSON array. Non-ASCII titles
// are kept literal so the output stays human-readable.
func (w *Writer) Write(path string, records []domain.ArticleRecord) error {
	if records == nil {
		records = []domain.ArticleRecord{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}

	return nil
}
