package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
		ok       bool
	}{
		{"plain price", "199.99", 199.99, true},
		{"dollar sign", "$199.99", 199.99, true},
		{"thousands separator", "$1,234.56", 1234.56, true},
		{"millions", "$1,234,567.89", 1234567.89, true},
		{"surrounding whitespace", "  $42.00 ", 42.0, true},
		{"integer price", "$120", 120.0, true},
		{"zero", "$0.00", 0.0, true},
		{"empty cell", "", 0, false},
		{"whitespace only", "   ", 0, false},
		{"not a number", "N/A", 0, false},
		{"trailing garbage", "$12.50/month", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val, ok := ParseCurrency(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.expected, val, 1e-9)
			}
		})
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
		ok       bool
	}{
		{"plain count", "36", 36, true},
		{"thousands separator", "1,200", 1200, true},
		{"large count", "10,000", 10000, true},
		{"zero", "0", 0, true},
		{"empty cell", "", 0, false},
		{"not a number", "sold out", 0, false},
		{"fractional", "12.5", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val, ok := ParseCount(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, val)
			}
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{199.99, "$199.99"},
		{1234.56, "$1,234.56"},
		{1234567.89, "$1,234,567.89"},
		{0, "$0.00"},
		{-45.5, "-$45.50"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(tt.input))
		})
	}
}

// Formatting a cleaned value back to currency text and re-parsing it
// must return the same number.
func TestCurrencyRoundTrip(t *testing.T) {
	values := []float64{0, 0.01, 19.99, 199.99, 1234.56, 987654.32}

	for _, v := range values {
		parsed, ok := ParseCurrency(FormatCurrency(v))
		require.True(t, ok)
		assert.InDelta(t, v, parsed, 1e-9)
	}
}
