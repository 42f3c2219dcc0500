package adapter

import (
	"encoding/csv"
	"io"
	"strconv"

	m "github.com/locsift/locsift/internal/model"
)

// CSVExporter writes records as a flat delimited table with a header row.
type CSVExporter struct{}

// Format returns the exporter name.
func (e *CSVExporter) Format() string { return "csv" }

// Export writes the report's records as CSV.
func (e *CSVExporter) Export(w io.Writer, report *m.ScanReport) error {
	cw := csv.NewWriter(w)

	header := []string{"file", "line", "column", "raw_text", "normalized_text", "is_localized"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range dedupeRecords(report.Records) {
		row := []string{
			string(r.File),
			strconv.Itoa(r.Line),
			strconv.Itoa(r.Column),
			r.RawText,
			r.NormalizedText,
			strconv.FormatBool(r.IsLocalized),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}
