package adapter

import (
	"fmt"
	"io"
	"strings"

	m "github.com/locsift/locsift/internal/model"
)

// StringsExporter writes a per-locale key/value resource file in the
// `"key" = "value";` form. The normalized text serves as both key and
// initial value; translators replace the value side.
type StringsExporter struct{}

// Format returns the exporter name.
func (e *StringsExporter) Format() string { return "strings" }

// Export writes the report's records as a .strings resource file.
func (e *StringsExporter) Export(w io.Writer, report *m.ScanReport) error {
	for _, r := range dedupeRecords(report.Records) {
		comment := fmt.Sprintf("/* %s:%d */\n", r.File, r.Line)
		if _, err := io.WriteString(w, comment); err != nil {
			return err
		}

		key := escapeStringsValue(r.NormalizedText)

		if _, err := fmt.Fprintf(w, "\"%s\" = \"%s\";\n\n", key, key); err != nil {
			return err
		}
	}

	return nil
}

// escapeStringsValue escapes characters that would break the resource
// syntax.
func escapeStringsValue(s string) string {
	return strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"\n", `\n`,
		"\t", `\t`,
	).Replace(s)
}
