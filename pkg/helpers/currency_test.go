package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{1234.5, "$1,234.50"},
		{1000000, "$1,000,000"},
		{0.1, "$0.10"},
		{19.99, "$19.99"},
		{-5.25, "-$5.25"},
		{7.001, "$7"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCurrency(tt.in), "amount %v", tt.in)
	}
	assert.Contains(t, FormatCurrency(1234.5), "$1,234.5")
}

func TestFormatCurrencyAutoTrailingZeros(t *testing.T) {
	f, err := New(WithTrailingZeros(TrailingZerosAuto))
	require.NoError(t, err)

	assert.Equal(t, "$0.00", f.FormatCurrency(0))
	assert.Equal(t, "$1,234.50", f.FormatCurrency(1234.5))
	assert.Equal(t, "$12.00", f.FormatCurrency(12))
	assert.Equal(t, "$0.00", f.FormatCurrency(-0.001))
	assert.Equal(t, "-$0.01", f.FormatCurrency(-0.006))
}

func TestFormatCurrencyNegativeRoundingToZero(t *testing.T) {
	assert.Equal(t, "$0", FormatCurrency(-0.001))
	assert.Equal(t, "$0", FormatCurrency(-0.004))
	assert.Equal(t, "-$0.40", FormatCurrency(-0.4))
}

func TestFormatCurrencyZeroDecimalUnit(t *testing.T) {
	f, err := New(WithCurrency(currency.JPY), WithTrailingZeros(TrailingZerosAuto))
	require.NoError(t, err)

	assert.Contains(t, f.FormatCurrency(1234), "1,234")
	assert.NotContains(t, f.FormatCurrency(1234), ".")
}
