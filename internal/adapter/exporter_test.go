package adapter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/locsift/locsift/internal/model"
)

func sampleReport() *m.ScanReport {
	return &m.ScanReport{
		ScanID: "test-scan",
		Root:   "project",
		Records: []m.StringRecord{
			{File: "a.swift", Line: 2, Column: 5, RawText: "确定", NormalizedText: "确定"},
			{File: "a.swift", Line: 4, Column: 5, RawText: `欢迎 \(user)`, NormalizedText: "欢迎 %@"},
			{File: "b.swift", Line: 1, Column: 1, RawText: "确定", NormalizedText: "确定", IsLocalized: true},
		},
	}
}

func TestNewExporterKnownFormats(t *testing.T) {
	for _, format := range ExportFormats() {
		t.Run(format, func(t *testing.T) {
			e, err := NewExporter(format, ExportOptions{})
			require.NoError(t, err)
			assert.Equal(t, format, e.Format())
		})
	}
}

func TestNewExporterUnknownFormat(t *testing.T) {
	_, err := NewExporter("xml", ExportOptions{})
	assert.ErrorContains(t, err, "unknown export format")
}

func TestJSONLExportDeduplicates(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&JSONLExporter{}).Export(&buf, sampleReport()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2, "duplicate normalized text collapses even without core dedup")

	var first jsonlRecord
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "确定", first.NormalizedText)
	assert.True(t, first.IsLocalized, "localized duplicate wins")
}

func TestCSVExport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&CSVExporter{}).Export(&buf, sampleReport()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 3, "header plus two unique records")
	assert.Equal(t, []string{"file", "line", "column", "raw_text", "normalized_text", "is_localized"}, rows[0])
	assert.Equal(t, "欢迎 %@", rows[2][4])
}

func TestStringsExport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&StringsExporter{}).Export(&buf, sampleReport()))

	out := buf.String()
	assert.Contains(t, out, `"确定" = "确定";`)
	assert.Contains(t, out, `"欢迎 %@" = "欢迎 %@";`)
	assert.Equal(t, 1, strings.Count(out, `"确定" = "确定";`))
}

func TestStringsExportEscapes(t *testing.T) {
	report := &m.ScanReport{Records: []m.StringRecord{
		{File: "a.swift", Line: 1, Column: 1, NormalizedText: "第一行\n\"第二行\""},
	}}

	var buf bytes.Buffer
	require.NoError(t, (&StringsExporter{}).Export(&buf, report))

	assert.Contains(t, buf.String(), `"第一行\n\"第二行\"" = `)
}

func TestXCStringsExport(t *testing.T) {
	var buf bytes.Buffer
	exporter := &XCStringsExporter{SourceLanguage: "zh-Hant"}
	require.NoError(t, exporter.Export(&buf, sampleReport()))

	var catalog xcCatalog
	require.NoError(t, json.Unmarshal(buf.Bytes(), &catalog))

	assert.Equal(t, "zh-Hant", catalog.SourceLanguage)
	assert.Equal(t, "1.0", catalog.Version)
	require.Len(t, catalog.Strings, 2)

	entry, ok := catalog.Strings["确定"]
	require.True(t, ok)
	assert.Equal(t, "确定", entry.Localizations["zh-Hant"].StringUnit.Value)
}

func TestXCStringsDefaultLanguage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&XCStringsExporter{}).Export(&buf, sampleReport()))

	var catalog xcCatalog
	require.NoError(t, json.Unmarshal(buf.Bytes(), &catalog))
	assert.Equal(t, "zh-Hans", catalog.SourceLanguage)
}

func TestDedupeRecordsUpgrade(t *testing.T) {
	records := []m.StringRecord{
		{File: "a.swift", NormalizedText: "确定", IsLocalized: false},
		{File: "b.swift", NormalizedText: "确定", IsLocalized: true},
		{File: "c.swift", NormalizedText: "取消", IsLocalized: false},
	}

	got := dedupeRecords(records)

	require.Len(t, got, 2)
	assert.True(t, got[0].IsLocalized)
	assert.Equal(t, "取消", got[1].NormalizedText)
}
