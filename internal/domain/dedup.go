package domain

import (
	"sort"

	m "github.com/locsift/locsift/internal/model"
)

// Deduplicate merges a record collection into the canonical inventory:
// unique normalized texts, ordered by (file, line, column). The input may
// arrive in any order — workers append as they finish — and the output is
// identical regardless.
//
// When two records share a normalized text the earliest one under the
// canonical order wins, unless the incumbent is unconfirmed
// (IsLocalized false) and a later occurrence is confirmed localized; the
// confirmed record then replaces it wholesale. Only that false-to-true
// transition triggers replacement.
func Deduplicate(records []m.StringRecord) []m.StringRecord {
	sorted := make([]m.StringRecord, len(records))
	copy(sorted, records)
	sortRecords(sorted)

	seen := make(map[string]int, len(sorted))
	merged := make([]m.StringRecord, 0, len(sorted))

	for _, r := range sorted {
		i, ok := seen[r.NormalizedText]
		if !ok {
			seen[r.NormalizedText] = len(merged)
			merged = append(merged, r)

			continue
		}

		if !merged[i].IsLocalized && r.IsLocalized {
			merged[i] = r
		}
	}

	// A replacement record carries its own position; restore canonical
	// order so Deduplicate is idempotent.
	sortRecords(merged)

	return merged
}

func sortRecords(records []m.StringRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]

		if a.File != b.File {
			return a.File < b.File
		}

		if a.Line != b.Line {
			return a.Line < b.Line
		}

		return a.Column < b.Column
	})
}
