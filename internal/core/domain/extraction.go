package domain

import "github.com/shopspring/decimal"

// ExtractionStatus classifies the outcome of a total extraction.
type ExtractionStatus string

const (
	// ExtractionFound means exactly one candidate survived filtering.
	ExtractionFound ExtractionStatus = "FOUND"
	// ExtractionNotFound means no candidate survived filtering.
	ExtractionNotFound ExtractionStatus = "NOT_FOUND"
	// ExtractionAmbiguous means multiple conflicting candidates survived.
	// The extractor never guesses between them.
	ExtractionAmbiguous ExtractionStatus = "AMBIGUOUS"
)

// MonetaryAmount pairs a non-negative decimal value with an ISO 4217 code.
// The value is rounded to the currency's minor unit count.
type MonetaryAmount struct {
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
}

// TotalCandidate is one amount considered during extraction, with the
// evidence that produced it. Scores are diagnostic only; they never decide
// between conflicting candidates.
type TotalCandidate struct {
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	Keyword      string          `json:"keyword"`
	Line         string          `json:"line"`
	LineNumber   int             `json:"lineNumber"`
	Score        float64         `json:"score"`
}

// ExtractionResult is the immutable outcome of a single extraction call.
// Total is nil unless Status is ExtractionFound.
type ExtractionResult struct {
	Status     ExtractionStatus `json:"status"`
	Total      *MonetaryAmount  `json:"total,omitempty"`
	Candidates []TotalCandidate `json:"candidates"`
}
