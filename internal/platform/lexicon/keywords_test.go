package lexicon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/expensio/invoice_ocr_api/internal/platform/lexicon"
)

func TestIsSupported(t *testing.T) {
	assert.True(t, lexicon.IsSupported("en"))
	assert.True(t, lexicon.IsSupported("DE"))
	assert.False(t, lexicon.IsSupported("xx"))
	assert.False(t, lexicon.IsSupported(""))
}

func TestTotalKeywords_LongestFirst(t *testing.T) {
	keywords := lexicon.TotalKeywords([]string{"en"})

	assert.Contains(t, keywords, "GRAND TOTAL")
	assert.Contains(t, keywords, "TOTAL")
	assert.Less(t,
		indexOf(keywords, "GRAND TOTAL"), indexOf(keywords, "TOTAL"),
		"longer keywords must be tried first",
	)
}

func TestTotalKeywords_EmptyMeansAll(t *testing.T) {
	all := lexicon.TotalKeywords(nil)

	assert.Contains(t, all, "TOTAL")
	assert.Contains(t, all, "GESAMTBETRAG")
	assert.Contains(t, all, "合計")
}

func TestHasTotalKeyword(t *testing.T) {
	kw, ok := lexicon.HasTotalKeyword("Grand total: 99.00", []string{"en"})
	assert.True(t, ok)
	assert.Equal(t, "GRAND TOTAL", kw)

	kw, ok = lexicon.HasTotalKeyword("Gesamtbetrag: 42,50", []string{"de"})
	assert.True(t, ok)
	assert.Equal(t, "GESAMTBETRAG", kw)

	_, ok = lexicon.HasTotalKeyword("Item line 12.00", []string{"en"})
	assert.False(t, ok)
}

func TestHasTotalKeyword_LanguageScoping(t *testing.T) {
	// German keyword must not match when only English is requested.
	_, ok := lexicon.HasTotalKeyword("Gesamtbetrag: 42,50", []string{"en"})
	assert.False(t, ok)
}

func indexOf(items []string, target string) int {
	for i, item := range items {
		if item == target {
			return i
		}
	}
	return -1
}
