package dto

import (
	"github.com/expensio/invoice_ocr_api/internal/core/domain"
)

// ExtractTotalRequest defines the input for a total extraction call.
// Languages limits which "total" keyword variants are searched; empty means
// all supported languages. CompanyCurrency resolves ambiguous symbols and
// currency-less candidates; empty falls back to the configured default.
type ExtractTotalRequest struct {
	Text            string   `json:"text" binding:"required"`
	Languages       []string `json:"languages" binding:"omitempty,dive,len=2,lowercase"`
	CompanyCurrency string   `json:"companyCurrency" binding:"omitempty,len=3,uppercase,iso4217"`
}

// TotalCandidateResponse is one candidate surfaced for diagnostics.
type TotalCandidateResponse struct {
	Amount       string  `json:"amount"`
	CurrencyCode string  `json:"currencyCode"`
	Keyword      string  `json:"keyword"`
	LineNumber   int     `json:"lineNumber"`
	Score        float64 `json:"score"`
}

// ExtractTotalResponse defines the extraction outcome returned to callers.
// Amount and CurrencyCode are set only when Status is FOUND.
type ExtractTotalResponse struct {
	Status       string                   `json:"status"`
	Amount       string                   `json:"amount,omitempty"`
	CurrencyCode string                   `json:"currencyCode,omitempty"`
	Candidates   []TotalCandidateResponse `json:"candidates"`
}

// ToExtractTotalResponse converts a domain.ExtractionResult to its DTO.
func ToExtractTotalResponse(result *domain.ExtractionResult) ExtractTotalResponse {
	resp := ExtractTotalResponse{
		Status:     string(result.Status),
		Candidates: make([]TotalCandidateResponse, len(result.Candidates)),
	}
	if result.Total != nil {
		resp.Amount = result.Total.Amount.String()
		resp.CurrencyCode = result.Total.CurrencyCode
	}
	for i, cand := range result.Candidates {
		resp.Candidates[i] = TotalCandidateResponse{
			Amount:       cand.Amount.String(),
			CurrencyCode: cand.CurrencyCode,
			Keyword:      cand.Keyword,
			LineNumber:   cand.LineNumber,
			Score:        cand.Score,
		}
	}
	return resp
}
