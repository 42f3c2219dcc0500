package adapter

import (
	"encoding/json"
	"io"

	m "github.com/locsift/locsift/internal/model"
)

// XCStringsExporter writes a structured single-file localization catalog
// keyed by normalized text.
type XCStringsExporter struct {
	// SourceLanguage is the locale tag recorded as the catalog's source
	// language. Defaults to zh-Hans when empty.
	SourceLanguage string
}

// Format returns the exporter name.
func (e *XCStringsExporter) Format() string { return "xcstrings" }

type xcCatalog struct {
	SourceLanguage string             `json:"sourceLanguage"`
	Strings        map[string]xcEntry `json:"strings"`
	Version        string             `json:"version"`
}

type xcEntry struct {
	ExtractionState string                    `json:"extractionState,omitempty"`
	Localizations   map[string]xcLocalization `json:"localizations,omitempty"`
}

type xcLocalization struct {
	StringUnit xcStringUnit `json:"stringUnit"`
}

type xcStringUnit struct {
	State string `json:"state"`
	Value string `json:"value"`
}

// Export writes the report's records as a localization catalog.
func (e *XCStringsExporter) Export(w io.Writer, report *m.ScanReport) error {
	lang := e.SourceLanguage
	if lang == "" {
		lang = "zh-Hans"
	}

	catalog := xcCatalog{
		SourceLanguage: lang,
		Strings:        make(map[string]xcEntry),
		Version:        "1.0",
	}

	for _, r := range dedupeRecords(report.Records) {
		state := "manual"
		if !r.IsLocalized {
			state = "extracted_with_value"
		}

		catalog.Strings[r.NormalizedText] = xcEntry{
			ExtractionState: state,
			Localizations: map[string]xcLocalization{
				lang: {
					StringUnit: xcStringUnit{
						State: "translated",
						Value: r.NormalizedText,
					},
				},
			},
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	return enc.Encode(catalog)
}
