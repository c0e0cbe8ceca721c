package amountparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expensio/invoice_ocr_api/internal/utils/amountparse"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"plain integer", "1000", "1000"},
		{"dot decimal", "123.45", "123.45"},
		{"comma decimal", "42,50", "42.50"},
		{"single fraction digit", "7.5", "7.5"},
		{"comma grouping", "1,234", "1234"},
		{"dot grouping", "1.234", "1234"},
		{"us style", "1,234.56", "1234.56"},
		{"european style", "1.234,56", "1234.56"},
		{"swiss apostrophe", "1'234.50", "1234.50"},
		{"french narrow space", "1\u202f234,56", "1234.56"},
		{"non breaking space", "1\u00a0234,56", "1234.56"},
		{"repeated grouping", "1,234,567", "1234567"},
		{"lakh grouping", "12,34,567", "1234567"},
		{"million us style", "1,234,567.89", "1234567.89"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := amountparse.Parse(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"empty", "", amountparse.ErrNotANumber},
		{"letters", "12a4", amountparse.ErrNotANumber},
		{"leading separator", ".50", amountparse.ErrNotANumber},
		{"trailing separator", "50.", amountparse.ErrNotANumber},
		{"four digit head with triple tail", "1234,567", amountparse.ErrAmbiguousFormat},
		{"four digit tail", "1,2345", amountparse.ErrAmbiguousFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := amountparse.Parse(tt.token)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFindTokens(t *testing.T) {
	tokens := amountparse.FindTokens("Item 2  CHF 1'234.50  (ref 778)")

	assert.Equal(t, []string{"2", "1'234.50", "778"}, tokens)
}

func TestFindTokens_NoDigits(t *testing.T) {
	assert.Empty(t, amountparse.FindTokens("TOTAL"))
}

func TestFractionDigits(t *testing.T) {
	two, err := amountparse.Parse("123.45")
	require.NoError(t, err)
	assert.Equal(t, 2, amountparse.FractionDigits(two))

	none, err := amountparse.Parse("12345")
	require.NoError(t, err)
	assert.Equal(t, 0, amountparse.FractionDigits(none))
}
