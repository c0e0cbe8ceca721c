package services

import (
	"context"

	"github.com/expensio/invoice_ocr_api/internal/core/domain"
)

// CurrencyReaderSvc defines read operations for currency reference data
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencySeederSvc defines the seeding operation that loads the ISO 4217
// reference table into the repository.
type CurrencySeederSvc interface {
	// SeedCurrencies upserts the full ISO 4217 table.
	SeedCurrencies(ctx context.Context, creatorUserID string) (int, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencySeederSvc
}
