package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/expensio/invoice_ocr_api/internal/apperrors"
	"github.com/expensio/invoice_ocr_api/internal/dto"
	"github.com/expensio/invoice_ocr_api/internal/platform/iso4217"
)

// standardTolerance absorbs rounding differences on 2-minor-unit currencies.
var standardTolerance = decimal.RequireFromString("0.01")

// TotalsService verifies a reported total against its line amounts.
// Pure arithmetic; no inference is applied to the inputs.
type TotalsService struct{}

// NewTotalsService creates a new TotalsService.
func NewTotalsService() *TotalsService {
	return &TotalsService{}
}

// VerifyTotal sums the verified line amounts and compares them to the
// reported total within the currency's tolerance (one minor unit).
func (s *TotalsService) VerifyTotal(ctx context.Context, req dto.VerifyTotalRequest) (*dto.VerifyTotalResponse, error) {
	if !iso4217.IsValid(req.CurrencyCode) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownCurrency, req.CurrencyCode)
	}
	for _, amount := range req.LineAmounts {
		if amount.IsNegative() {
			return nil, fmt.Errorf("%w: line amounts must be non-negative", apperrors.ErrValidation)
		}
	}
	if req.ReportedTotal.IsNegative() {
		return nil, fmt.Errorf("%w: reported total must be non-negative", apperrors.ErrValidation)
	}

	precision := int32(iso4217.Precision(req.CurrencyCode))
	tolerance := standardTolerance
	if precision == 0 {
		tolerance = decimal.NewFromInt(1)
	}

	calculated := decimal.Zero
	for _, amount := range req.LineAmounts {
		calculated = calculated.Add(amount)
	}
	calculated = calculated.Round(precision)

	discrepancy := calculated.Sub(req.ReportedTotal).Abs()
	resp := &dto.VerifyTotalResponse{
		CalculatedTotal:   calculated.StringFixed(precision),
		ReportedTotal:     req.ReportedTotal.StringFixed(precision),
		Matched:           discrepancy.LessThan(tolerance),
		DiscrepancyAmount: decimal.Zero.StringFixed(precision),
		CurrencyCode:      req.CurrencyCode,
	}
	if !resp.Matched {
		resp.DiscrepancyAmount = discrepancy.StringFixed(precision)
		resp.DiscrepancyMessage = fmt.Sprintf(
			"Total is incorrect by %s %s, should be %s %s",
			discrepancy.StringFixed(precision), req.CurrencyCode,
			calculated.StringFixed(precision), req.CurrencyCode,
		)
	}
	return resp, nil
}
