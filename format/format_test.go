package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceBRL(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "R$ 0,00"},
		{9.9, "R$ 9,90"},
		{1234.56, "R$ 1.234,56"},
		{1000000, "R$ 1.000.000,00"},
		{-42.5, "-R$ 42,50"},
		{0.999, "R$ 1,00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Price(tt.amount, "BRL"))
	}
}

func TestPriceUSD(t *testing.T) {
	assert.Equal(t, "$ 1,234.56", Price(1234.56, "USD"))
	assert.Equal(t, "$ 0.50", Price(0.5, "USD"))
}

func TestPriceUnknownCurrency(t *testing.T) {
	// Unknown codes render with the code itself as symbol
	assert.Equal(t, "GBP 10,00", Price(10, "GBP"))
}

func TestPhone(t *testing.T) {
	assert.Equal(t, "+55 (11) 91234-5678", Phone("+5511912345678"))
	assert.Equal(t, "+55 (11) 3123-4567", Phone("+551131234567"))
	// Non-Brazilian numbers pass through unchanged
	assert.Equal(t, "+12025550123", Phone("+12025550123"))
	assert.Equal(t, "", Phone(""))
}
