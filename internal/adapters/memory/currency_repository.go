// Package memory provides repository adapters backed by in-process maps.
// The currency repository serves the static ISO 4217 table when the service
// runs without a database, and doubles as a test fixture.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/expensio/invoice_ocr_api/internal/apperrors"
	"github.com/expensio/invoice_ocr_api/internal/core/domain"
	portsrepo "github.com/expensio/invoice_ocr_api/internal/core/ports/repositories"
)

type currencyRepository struct {
	mu         sync.RWMutex
	currencies map[string]domain.Currency
}

// NewCurrencyRepository creates an empty in-memory currency repository.
// Callers seed it through the currency service.
func NewCurrencyRepository() portsrepo.CurrencyRepositoryFacade {
	return &currencyRepository{currencies: make(map[string]domain.Currency)}
}

func (r *currencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.currencies[currency.CurrencyCode] = currency
	return nil
}

func (r *currencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	currency, ok := r.currencies[currencyCode]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &currency, nil
}

func (r *currencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	currencies := make([]domain.Currency, 0, len(r.currencies))
	for _, currency := range r.currencies {
		currencies = append(currencies, currency)
	}
	sort.Slice(currencies, func(i, j int) bool {
		return currencies[i].CurrencyCode < currencies[j].CurrencyCode
	})
	return currencies, nil
}
