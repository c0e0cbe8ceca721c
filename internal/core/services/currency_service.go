package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/expensio/invoice_ocr_api/internal/apperrors"
	"github.com/expensio/invoice_ocr_api/internal/core/domain"
	portsrepo "github.com/expensio/invoice_ocr_api/internal/core/ports/repositories"
	"github.com/expensio/invoice_ocr_api/internal/platform/iso4217"
)

// CurrencyService serves the ISO 4217 currency reference data.
type CurrencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo}
}

// GetCurrencyByCode retrieves a currency by its 3-letter code.
func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currencyCode = strings.ToUpper(strings.TrimSpace(currencyCode))
	if len(currencyCode) != 3 {
		return nil, fmt.Errorf("%w: currency code must be 3 letters", apperrors.ErrValidation)
	}
	if !iso4217.IsValid(currencyCode) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownCurrency, currencyCode)
	}

	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by code in service: %w", err)
	}
	return currency, nil
}

// ListCurrencies retrieves all currencies.
func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

// SeedCurrencies upserts the full ISO 4217 reference table into the
// repository. It returns the number of currencies written.
func (s *CurrencyService) SeedCurrencies(ctx context.Context, creatorUserID string) (int, error) {
	now := time.Now()
	count := 0
	for _, code := range iso4217.Codes() {
		currency := domain.Currency{
			CurrencyCode: code,
			Symbol:       iso4217.SymbolFor(code),
			Name:         iso4217.DisplayName(code),
			Precision:    iso4217.Precision(code),
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     creatorUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: creatorUserID,
			},
		}
		if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
			return count, fmt.Errorf("failed to seed currency %s: %w", code, err)
		}
		count++
	}
	return count, nil
}
