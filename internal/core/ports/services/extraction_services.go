package services

import (
	"context"

	"github.com/expensio/invoice_ocr_api/internal/core/domain"
	"github.com/expensio/invoice_ocr_api/internal/dto"
)

// ExtractionSvc defines the total extraction operation over OCR text.
type ExtractionSvc interface {
	// ExtractTotal scans OCR text for a document total. NotFound and
	// Ambiguous are reported in the result status, not as errors.
	ExtractTotal(ctx context.Context, req dto.ExtractTotalRequest) (*domain.ExtractionResult, error)
}

// ExtractionSvcFacade is the full extraction service surface.
type ExtractionSvcFacade interface {
	ExtractionSvc
}
