package iso4217_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/expensio/invoice_ocr_api/internal/platform/iso4217"
)

func TestIsValid(t *testing.T) {
	assert.True(t, iso4217.IsValid("CHF"))
	assert.True(t, iso4217.IsValid("usd"))
	assert.False(t, iso4217.IsValid("XQZ"))
	assert.False(t, iso4217.IsValid(""))
	assert.False(t, iso4217.IsValid("CHFX"))
}

func TestPrecision(t *testing.T) {
	assert.Equal(t, 2, iso4217.Precision("CHF"))
	assert.Equal(t, 0, iso4217.Precision("JPY"))
	assert.Equal(t, 0, iso4217.Precision("KRW"))
	assert.Equal(t, 0, iso4217.Precision("VND"))
}

func TestCodes_AllSelfConsistent(t *testing.T) {
	codes := iso4217.Codes()
	assert.NotEmpty(t, codes)

	for _, code := range codes {
		assert.True(t, iso4217.IsValid(code), "code %s should be valid", code)
		assert.Len(t, code, 3)
		precision := iso4217.Precision(code)
		if iso4217.IsZeroDecimal(code) {
			assert.Equal(t, 0, precision)
		} else {
			assert.Equal(t, 2, precision)
		}
		assert.NotEmpty(t, iso4217.DisplayName(code))
		assert.NotEmpty(t, iso4217.SymbolFor(code))
	}
}

func TestDetectCurrencies_Codes(t *testing.T) {
	detected := iso4217.DetectCurrencies("Subtotal 80.00 EUR plus 20.00 chf")

	assert.Contains(t, detected, "EUR")
	assert.Contains(t, detected, "CHF")
}

func TestDetectCurrencies_WordBoundary(t *testing.T) {
	// "CHF" inside a longer word must not count.
	detected := iso4217.DetectCurrencies("ACHFX reference line")

	assert.NotContains(t, detected, "CHF")
}

func TestDetectCurrencies_AmbiguousSymbol(t *testing.T) {
	detected := iso4217.DetectCurrencies("Total $49.99")

	assert.Contains(t, detected, "USD")
	assert.Contains(t, detected, "CAD")
	assert.Contains(t, detected, "AUD")
}

func TestDetectCurrencies_LetterSymbolNeedsBoundary(t *testing.T) {
	assert.Contains(t, iso4217.DetectCurrencies("Fr 12.50"), "CHF")
	assert.NotContains(t, iso4217.DetectCurrencies("France 12.50"), "CHF")
}

func TestDetectCurrencies_Empty(t *testing.T) {
	assert.Empty(t, iso4217.DetectCurrencies(""))
	assert.Empty(t, iso4217.DetectCurrencies("no money here"))
}
