package adapter

import (
	"encoding/json"
	"io"

	m "github.com/locsift/locsift/internal/model"
)

// JSONLExporter writes one JSON object per record, suitable for machine
// consumption and diff-friendly storage.
type JSONLExporter struct{}

// Format returns the exporter name.
func (e *JSONLExporter) Format() string { return "jsonl" }

type jsonlRecord struct {
	File           string `json:"file"`
	Line           int    `json:"line"`
	Column         int    `json:"column"`
	RawText        string `json:"rawText"`
	NormalizedText string `json:"normalizedText"`
	IsLocalized    bool   `json:"isLocalized"`
}

// Export writes the report's records as JSON lines.
func (e *JSONLExporter) Export(w io.Writer, report *m.ScanReport) error {
	enc := json.NewEncoder(w)

	for _, r := range dedupeRecords(report.Records) {
		entry := jsonlRecord{
			File:           string(r.File),
			Line:           r.Line,
			Column:         r.Column,
			RawText:        r.RawText,
			NormalizedText: r.NormalizedText,
			IsLocalized:    r.IsLocalized,
		}
		if err := enc.Encode(entry); err != nil {
			return err
		}
	}

	return nil
}
