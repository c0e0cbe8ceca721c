package dto

import "github.com/shopspring/decimal"

// VerifyTotalRequest defines the input for total verification: the
// individually verified line amounts and the total the submitter reported.
type VerifyTotalRequest struct {
	LineAmounts   []decimal.Decimal `json:"lineAmounts" binding:"required,min=1"`
	ReportedTotal decimal.Decimal   `json:"reportedTotal" binding:"required"`
	CurrencyCode  string            `json:"currencyCode" binding:"required,len=3,uppercase"`
}

// VerifyTotalResponse defines the arithmetic comparison outcome.
type VerifyTotalResponse struct {
	CalculatedTotal    string `json:"calculatedTotal"`
	ReportedTotal      string `json:"reportedTotal"`
	Matched            bool   `json:"matched"`
	DiscrepancyAmount  string `json:"discrepancyAmount"`
	DiscrepancyMessage string `json:"discrepancyMessage,omitempty"`
	CurrencyCode       string `json:"currencyCode"`
}
