package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expensio/invoice_ocr_api/internal/adapters/memory"
	"github.com/expensio/invoice_ocr_api/internal/apperrors"
	"github.com/expensio/invoice_ocr_api/internal/core/domain"
)

func TestCurrencyRepository_SaveAndFind(t *testing.T) {
	repo := memory.NewCurrencyRepository()
	ctx := context.Background()

	err := repo.SaveCurrency(ctx, domain.Currency{CurrencyCode: "CHF", Symbol: "Fr", Name: "Swiss Franc", Precision: 2})
	require.NoError(t, err)

	found, err := repo.FindCurrencyByCode(ctx, "CHF")
	require.NoError(t, err)
	assert.Equal(t, "CHF", found.CurrencyCode)
	assert.Equal(t, 2, found.Precision)
}

func TestCurrencyRepository_FindMissing(t *testing.T) {
	repo := memory.NewCurrencyRepository()

	_, err := repo.FindCurrencyByCode(context.Background(), "EUR")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCurrencyRepository_ListSorted(t *testing.T) {
	repo := memory.NewCurrencyRepository()
	ctx := context.Background()

	require.NoError(t, repo.SaveCurrency(ctx, domain.Currency{CurrencyCode: "JPY"}))
	require.NoError(t, repo.SaveCurrency(ctx, domain.Currency{CurrencyCode: "CHF"}))
	require.NoError(t, repo.SaveCurrency(ctx, domain.Currency{CurrencyCode: "EUR"}))

	currencies, err := repo.ListCurrencies(ctx)
	require.NoError(t, err)
	require.Len(t, currencies, 3)
	assert.Equal(t, "CHF", currencies[0].CurrencyCode)
	assert.Equal(t, "EUR", currencies[1].CurrencyCode)
	assert.Equal(t, "JPY", currencies[2].CurrencyCode)
}

func TestCurrencyRepository_SaveOverwrites(t *testing.T) {
	repo := memory.NewCurrencyRepository()
	ctx := context.Background()

	require.NoError(t, repo.SaveCurrency(ctx, domain.Currency{CurrencyCode: "CHF", Name: "old"}))
	require.NoError(t, repo.SaveCurrency(ctx, domain.Currency{CurrencyCode: "CHF", Name: "Swiss Franc"}))

	found, err := repo.FindCurrencyByCode(ctx, "CHF")
	require.NoError(t, err)
	assert.Equal(t, "Swiss Franc", found.Name)
}
