// Package lexicon holds the multilingual "total" keyword table used by the
// extraction service. Keywords are stored uppercase; matching is done on
// uppercased input. The table is immutable after package load.
package lexicon

import (
	"sort"
	"strings"
)

// totalKeywords maps an ISO 639-1 language code to the labels that mark a
// document total in that language. Multi-word entries are matched as plain
// substrings of the uppercased line.
var totalKeywords = map[string][]string{
	"en": {"TOTAL", "AMOUNT", "SUM", "GRAND TOTAL", "NET TOTAL", "FINAL AMOUNT", "BALANCE DUE", "AMOUNT DUE"},
	"de": {"BETRAG", "GESAMT", "GESAMTBETRAG", "SUMME", "ENDBETRAG"},
	"fr": {"MONTANT", "TOTAL", "SOMME", "MONTANT TOTAL", "TOTAL A PAYER", "SOLDE"},
	"it": {"TOTALE", "IMPORTO", "SOMMA", "SALDO"},
	"es": {"TOTAL", "SUMA", "IMPORTE", "MONTO"},
	"pt": {"TOTAL", "MONTANTE", "SOMA", "SALDO"},
	"hi": {"कुल", "राशि", "रकम", "TOTAL", "AMOUNT"},
	"zh": {"总计", "总额", "合计", "金额"},
	"ja": {"合計", "総額", "金額"},
	"ar": {"المجموع", "المبلغ", "الإجمالي"},
	"ru": {"ИТОГО", "СУММА", "ВСЕГО"},
	"tr": {"TOPLAM", "TUTAR"},
	"pl": {"SUMA", "RAZEM", "ŁĄCZNIE"},
	"nl": {"TOTAAL", "BEDRAG"},
	"sv": {"TOTALT", "BELOPP", "SUMMA"},
	"th": {"รวม", "ยอดรวม"},
	"vi": {"TỔNG", "TỔNG CỘNG"},
	"ko": {"합계", "총액"},
	"id": {"JUMLAH", "TOTAL"},
}

// Languages returns the supported language codes in sorted order.
func Languages() []string {
	langs := make([]string, 0, len(totalKeywords))
	for lang := range totalKeywords {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// IsSupported reports whether keywords exist for the given language code.
func IsSupported(lang string) bool {
	_, ok := totalKeywords[strings.ToLower(lang)]
	return ok
}

// TotalKeywords returns the distinct total keywords for the requested
// languages, longest first so that "GRAND TOTAL" wins over "TOTAL" when
// both match a line. An empty language set means all supported languages.
func TotalKeywords(languages []string) []string {
	if len(languages) == 0 {
		languages = Languages()
	}

	seen := make(map[string]struct{})
	var keywords []string
	for _, lang := range languages {
		for _, kw := range totalKeywords[strings.ToLower(lang)] {
			if _, ok := seen[kw]; ok {
				continue
			}
			seen[kw] = struct{}{}
			keywords = append(keywords, kw)
		}
	}

	sort.SliceStable(keywords, func(i, j int) bool {
		if len(keywords[i]) != len(keywords[j]) {
			return len(keywords[i]) > len(keywords[j])
		}
		return keywords[i] < keywords[j]
	})
	return keywords
}

// HasTotalKeyword reports whether the line contains any total keyword for
// the requested languages, and returns the longest matching keyword.
func HasTotalKeyword(line string, languages []string) (string, bool) {
	upper := strings.ToUpper(line)
	for _, kw := range TotalKeywords(languages) {
		if strings.Contains(upper, kw) {
			return kw, true
		}
	}
	return "", false
}
