package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/locsift/locsift/internal/model"
)

func sampleRecords() []m.StringRecord {
	return []m.StringRecord{
		{File: "b.swift", Line: 3, Column: 9, RawText: "保存", NormalizedText: "保存"},
		{File: "a.swift", Line: 10, Column: 5, RawText: "确定", NormalizedText: "确定"},
		{File: "a.swift", Line: 2, Column: 14, RawText: "取消", NormalizedText: "取消"},
		{File: "c.swift", Line: 1, Column: 1, RawText: "确定", NormalizedText: "确定"},
		{File: "a.swift", Line: 2, Column: 30, RawText: `欢迎 \(user)`, NormalizedText: "欢迎 %@"},
	}
}

func TestDeduplicateCanonicalOrder(t *testing.T) {
	got := Deduplicate(sampleRecords())

	require.Len(t, got, 4)

	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1], got[i]
		inOrder := prev.File < cur.File ||
			(prev.File == cur.File && prev.Line < cur.Line) ||
			(prev.File == cur.File && prev.Line == cur.Line && prev.Column < cur.Column)
		assert.True(t, inOrder, "records %d and %d out of order", i-1, i)
	}

	// "确定" appears in a.swift:10 and c.swift:1; the earlier one under the
	// canonical order wins.
	for _, r := range got {
		if r.NormalizedText == "确定" {
			assert.Equal(t, m.Path("a.swift"), r.File)
		}
	}
}

func TestDeduplicateOrderIndependence(t *testing.T) {
	want := Deduplicate(sampleRecords())

	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 20; i++ {
		shuffled := sampleRecords()
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		assert.Equal(t, want, Deduplicate(shuffled), "permutation %d changed the output", i)
	}
}

func TestDeduplicateIdempotence(t *testing.T) {
	once := Deduplicate(sampleRecords())
	twice := Deduplicate(once)

	assert.Equal(t, once, twice)
}

func TestDeduplicateLocalizationUpgrade(t *testing.T) {
	records := []m.StringRecord{
		{File: "a.swift", Line: 1, Column: 1, NormalizedText: "确定", IsLocalized: false},
		{File: "b.swift", Line: 7, Column: 3, NormalizedText: "确定", IsLocalized: true},
	}

	got := Deduplicate(records)

	require.Len(t, got, 1)
	assert.True(t, got[0].IsLocalized, "confirmed localization replaces the unconfirmed duplicate")
	assert.Equal(t, m.Path("b.swift"), got[0].File, "the replacement is the challenger record, not an edit")
}

func TestDeduplicateNoDowngrade(t *testing.T) {
	records := []m.StringRecord{
		{File: "a.swift", Line: 1, Column: 1, NormalizedText: "确定", IsLocalized: true},
		{File: "b.swift", Line: 7, Column: 3, NormalizedText: "确定", IsLocalized: false},
	}

	got := Deduplicate(records)

	require.Len(t, got, 1)
	assert.True(t, got[0].IsLocalized)
	assert.Equal(t, m.Path("a.swift"), got[0].File)
}

func TestDeduplicateEmpty(t *testing.T) {
	assert.Empty(t, Deduplicate(nil))
}
