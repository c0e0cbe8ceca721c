package services

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/expensio/invoice_ocr_api/internal/apperrors"
	"github.com/expensio/invoice_ocr_api/internal/core/domain"
	"github.com/expensio/invoice_ocr_api/internal/dto"
	"github.com/expensio/invoice_ocr_api/internal/platform/iso4217"
	"github.com/expensio/invoice_ocr_api/internal/platform/lexicon"
	"github.com/expensio/invoice_ocr_api/internal/utils/amountparse"
)

// exchangeRateRegex matches ratio-like lines such as "1 USD = 0.92 EUR".
// The currency code boundary keeps "TOTAL = 100.00 EUR" out of its reach.
var exchangeRateRegex = regexp.MustCompile(`\b[A-Z]{3}\b\s*=`)

// rateKeywords are labels that mark a conversion line rather than a total.
var rateKeywords = []string{
	"EXCHANGE RATE", "WECHSELKURS", "TAUX DE CHANGE", "TIPO DE CAMBIO", "TASSO DI CAMBIO", "KURS",
}

// majorCurrencyPriority ranks currencies when an ambiguous symbol ("$",
// "kr") could stand for several codes. The company currency always wins.
var majorCurrencyPriority = map[string]int{
	"USD": 95, "EUR": 90, "GBP": 85, "CHF": 100, "JPY": 80, "CNY": 75,
	"INR": 70, "AUD": 70, "CAD": 70, "SGD": 70, "HKD": 65,
}

// Reasonable bounds for a single document total, per currency class.
var (
	minStandardAmount    = decimal.RequireFromString("0.50")
	maxStandardAmount    = decimal.NewFromInt(100000)
	minZeroDecimalAmount = decimal.NewFromInt(100)
	maxZeroDecimalAmount = decimal.NewFromInt(10000000)
)

// ExtractionService locates a document total in OCR text. It is stateless;
// the only shared data are the immutable ISO 4217 and keyword tables.
type ExtractionService struct {
	defaultCompanyCurrency string
	defaultLanguages       []string
}

// NewExtractionService creates a new ExtractionService. companyCurrency and
// defaultLanguages are the fallbacks used when a request does not name them.
func NewExtractionService(companyCurrency string, defaultLanguages []string) *ExtractionService {
	return &ExtractionService{
		defaultCompanyCurrency: strings.ToUpper(companyCurrency),
		defaultLanguages:       defaultLanguages,
	}
}

// scoredCandidate carries parse metadata the domain candidate does not need.
type scoredCandidate struct {
	domain.TotalCandidate
	fractionDigits int
}

// ExtractTotal scans OCR text for the document total.
//
// Keyword lines are located first, then each line's window is searched for
// numeric tokens with an adjacent currency. Exchange-rate lines, amounts
// outside the currency's reasonable range and decimal-misalignment
// artifacts are filtered out. Exactly one surviving amount is a find; zero
// or several are reported as NOT_FOUND / AMBIGUOUS instead of guessing.
func (s *ExtractionService) ExtractTotal(ctx context.Context, req dto.ExtractTotalRequest) (*domain.ExtractionResult, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, fmt.Errorf("%w: text must not be empty", apperrors.ErrValidation)
	}
	languages := req.Languages
	if len(languages) == 0 {
		// Empty still means all supported languages unless a narrower
		// default set is configured.
		languages = s.defaultLanguages
	}
	for _, lang := range languages {
		if !lexicon.IsSupported(lang) {
			return nil, fmt.Errorf("%w: unsupported language %q", apperrors.ErrValidation, lang)
		}
	}

	companyCurrency := strings.ToUpper(req.CompanyCurrency)
	if companyCurrency == "" {
		companyCurrency = s.defaultCompanyCurrency
	}
	if !iso4217.IsValid(companyCurrency) {
		return nil, fmt.Errorf("%w: company currency %q", apperrors.ErrUnknownCurrency, companyCurrency)
	}

	lines := strings.Split(req.Text, "\n")
	var candidates []scoredCandidate
	for i, line := range lines {
		keyword, ok := lexicon.HasTotalKeyword(line, languages)
		if !ok {
			continue
		}

		window, lineNumber := line, i
		if len(amountparse.FindTokens(line)) == 0 && i+1 < len(lines) {
			// Label-above-value layout: the amount sits on the next line.
			window, lineNumber = lines[i+1], i+1
		}
		if isExchangeRateLine(window) || isExchangeRateLine(line) {
			continue
		}

		for _, cand := range s.lineCandidates(window, languages, companyCurrency) {
			cand.Keyword = keyword
			cand.Line = strings.TrimSpace(window)
			cand.LineNumber = lineNumber + 1
			candidates = append(candidates, cand)
		}
	}

	candidates = dropMisaligned(candidates)
	distinct := dedupe(candidates)
	for i := range distinct {
		distinct[i].Score = scoreCandidate(distinct[i].TotalCandidate, companyCurrency)
	}
	sort.SliceStable(distinct, func(i, j int) bool { return distinct[i].Score > distinct[j].Score })

	result := &domain.ExtractionResult{
		Status:     domain.ExtractionNotFound,
		Candidates: make([]domain.TotalCandidate, 0, len(distinct)),
	}
	for _, cand := range distinct {
		result.Candidates = append(result.Candidates, cand.TotalCandidate)
	}

	switch len(distinct) {
	case 0:
	case 1:
		winner := distinct[0]
		rounded := winner.Amount.Round(int32(iso4217.Precision(winner.CurrencyCode)))
		result.Status = domain.ExtractionFound
		result.Total = &domain.MonetaryAmount{Amount: rounded, CurrencyCode: winner.CurrencyCode}
	default:
		// Conflicting totals: report the ambiguity, never pick one.
		result.Status = domain.ExtractionAmbiguous
	}
	return result, nil
}

// lineCandidates extracts the plausible amounts from one window line.
func (s *ExtractionService) lineCandidates(window string, languages []string, companyCurrency string) []scoredCandidate {
	currencyCode, assumed := resolveCurrency(window, companyCurrency)

	var out []scoredCandidate
	searchFrom := 0
	for _, token := range amountparse.FindTokens(window) {
		idx := strings.Index(window[searchFrom:], token)
		if idx < 0 {
			continue
		}
		start := searchFrom + idx
		searchFrom = start + len(token)

		if hasUnknownAdjacentCode(window, start, start+len(token), languages) {
			// UnknownCurrency: the candidate is excluded, not the whole call.
			continue
		}

		value, err := amountparse.Parse(token)
		if err != nil || value.IsZero() {
			continue
		}

		precision := iso4217.Precision(currencyCode)
		fractionDigits := amountparse.FractionDigits(value)
		if fractionDigits > precision {
			// More decimals than the currency has minor units: OCR artifact.
			continue
		}
		if assumed && fractionDigits == 0 && len(token) <= 2 {
			// A lone small integer with no currency evidence is layout noise.
			continue
		}
		if !reasonableAmount(value, currencyCode) {
			continue
		}

		out = append(out, scoredCandidate{
			TotalCandidate: domain.TotalCandidate{Amount: value, CurrencyCode: currencyCode},
			fractionDigits: fractionDigits,
		})
	}
	return out
}

// resolveCurrency picks the currency for a line: the company currency when
// present, then the highest-priority detected currency, then the company
// currency as an assumption.
func resolveCurrency(line, companyCurrency string) (code string, assumed bool) {
	detected := iso4217.DetectCurrencies(line)
	if len(detected) == 0 {
		return companyCurrency, true
	}
	best, bestPriority := "", -1
	for _, cand := range detected {
		priority := majorCurrencyPriority[cand]
		if priority == 0 {
			priority = 50
		}
		if cand == companyCurrency {
			priority = 200
		}
		if priority > bestPriority {
			best, bestPriority = cand, priority
		}
	}
	return best, false
}

// hasUnknownAdjacentCode reports whether the word immediately next to the
// numeric token looks like a 3-letter currency code outside the ISO set.
func hasUnknownAdjacentCode(line string, start, end int, languages []string) bool {
	keywords := lexicon.TotalKeywords(languages)
	isKeywordWord := func(word string) bool {
		for _, kw := range keywords {
			if word == kw || strings.Contains(kw, word) {
				return true
			}
		}
		return false
	}
	check := func(word string) bool {
		word = strings.Trim(word, ":;.,()-")
		if len(word) != 3 || word != strings.ToUpper(word) {
			return false
		}
		for _, r := range word {
			if r < 'A' || r > 'Z' {
				return false
			}
		}
		return !iso4217.IsValid(word) && !isKeywordWord(word)
	}

	before := strings.Fields(line[:start])
	if len(before) > 0 && check(before[len(before)-1]) {
		return true
	}
	after := strings.Fields(line[end:])
	return len(after) > 0 && check(after[0])
}

// isExchangeRateLine reports whether a line is a currency conversion rather
// than a total.
func isExchangeRateLine(line string) bool {
	upper := strings.ToUpper(line)
	if exchangeRateRegex.MatchString(upper) {
		return true
	}
	for _, kw := range rateKeywords {
		if strings.Contains(upper, kw) {
			return true
		}
	}
	return false
}

// reasonableAmount bounds a document total per currency class. Values far
// outside are account numbers, reference ids or parse artifacts.
func reasonableAmount(value decimal.Decimal, currencyCode string) bool {
	if iso4217.IsZeroDecimal(currencyCode) {
		return value.GreaterThanOrEqual(minZeroDecimalAmount) && value.LessThanOrEqual(maxZeroDecimalAmount)
	}
	return value.GreaterThanOrEqual(minStandardAmount) && value.LessThanOrEqual(maxStandardAmount)
}

// dropMisaligned removes candidates that are another candidate shifted by a
// power of ten, keeping the one whose decimals match the currency.
func dropMisaligned(candidates []scoredCandidate) []scoredCandidate {
	drop := make([]bool, len(candidates))
	for i, a := range candidates {
		for j, b := range candidates {
			if i == j || a.CurrencyCode != b.CurrencyCode || drop[j] {
				continue
			}
			precision := iso4217.Precision(a.CurrencyCode)
			if a.fractionDigits != 0 || b.fractionDigits != precision || precision == 0 {
				continue
			}
			// a lost its decimal separator if it equals b scaled up.
			scaled := b.Amount.Shift(int32(precision))
			if a.Amount.Equal(scaled) {
				drop[i] = true
			}
		}
	}
	out := candidates[:0]
	for i, cand := range candidates {
		if !drop[i] {
			out = append(out, cand)
		}
	}
	return out
}

// dedupe collapses identical (amount, currency) pairs, keeping the first.
func dedupe(candidates []scoredCandidate) []scoredCandidate {
	seen := make(map[string]struct{}, len(candidates))
	var out []scoredCandidate
	for _, cand := range candidates {
		key := cand.Amount.String() + "|" + cand.CurrencyCode
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, cand)
	}
	return out
}

// scoreCandidate ranks candidates for diagnostics: company currency and
// larger amounts score higher. Scores never decide between conflicting
// candidates.
func scoreCandidate(cand domain.TotalCandidate, companyCurrency string) float64 {
	score := 30.0 // every candidate sits next to a total keyword
	if cand.CurrencyCode == companyCurrency {
		score += 50
	}
	magnitude, _ := cand.Amount.Div(decimal.NewFromInt(100)).Float64()
	if magnitude > 20 {
		magnitude = 20
	}
	return score + magnitude
}
