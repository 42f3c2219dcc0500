package adapter

import (
	"fmt"
	"io"

	m "github.com/locsift/locsift/internal/model"
)

// Exporter renders a scan report into one downstream format. Exporters
// treat NormalizedText as the stable identity key and deduplicate on it
// themselves, in case they are handed records that bypassed the core
// merge.
type Exporter interface {
	// Format returns the name the exporter is registered under.
	Format() string
	// Export writes the rendered records to w.
	Export(w io.Writer, report *m.ScanReport) error
}

// NewExporter returns the exporter registered under format.
func NewExporter(format string, opts ExportOptions) (Exporter, error) {
	switch format {
	case "jsonl":
		return &JSONLExporter{}, nil
	case "csv":
		return &CSVExporter{}, nil
	case "strings":
		return &StringsExporter{}, nil
	case "xcstrings":
		return &XCStringsExporter{SourceLanguage: opts.SourceLanguage}, nil
	default:
		return nil, fmt.Errorf("unknown export format: %s", format)
	}
}

// ExportFormats lists the registered exporter names.
func ExportFormats() []string {
	return []string{"jsonl", "csv", "strings", "xcstrings"}
}

// ExportOptions carries format-specific settings.
type ExportOptions struct {
	// SourceLanguage is the locale the extracted strings are written in.
	SourceLanguage string
}

// dedupeRecords drops records whose normalized text was already seen,
// preferring a localized occurrence over an unconfirmed one.
func dedupeRecords(records []m.StringRecord) []m.StringRecord {
	seen := make(map[string]int, len(records))
	out := make([]m.StringRecord, 0, len(records))

	for _, r := range records {
		if i, ok := seen[r.NormalizedText]; ok {
			if !out[i].IsLocalized && r.IsLocalized {
				out[i] = r
			}

			continue
		}

		seen[r.NormalizedText] = len(out)
		out = append(out, r)
	}

	return out
}
