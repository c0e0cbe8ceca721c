package services

import (
	"context"

	"github.com/expensio/invoice_ocr_api/internal/dto"
)

// TotalsSvc defines arithmetic verification of a reported total against
// its line amounts.
type TotalsSvc interface {
	// VerifyTotal sums the line amounts and compares them to the reported
	// total within the currency's tolerance.
	VerifyTotal(ctx context.Context, req dto.VerifyTotalRequest) (*dto.VerifyTotalResponse, error)
}

// TotalsSvcFacade is the full totals service surface.
type TotalsSvcFacade interface {
	TotalsSvc
}
