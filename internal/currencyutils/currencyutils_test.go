package currencyutils_test

import (
	"testing"

	"github.com/smalldjo-coder/Budget-Manager-v2/internal/currencyutils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStandardizeAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "decimal comma", input: "1234,56", expected: "1234.56"},
		{name: "embedded spaces", input: "1 234,56", expected: "1234.56"},
		{name: "currency symbol", input: "-42,10 EUR", expected: "-42.10"},
		{name: "euro sign", input: "12,00€", expected: "12.00"},
		{name: "already standard", input: "-99.95", expected: "-99.95"},
		{name: "empty", input: "", expected: ""},
		{name: "letters only", input: "n/a", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, currencyutils.StandardizeAmount(tt.input))
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "french format", input: "1 234,56", expected: "1234.56"},
		{name: "negative", input: "-42,10", expected: "-42.1"},
		{name: "plain integer", input: "100", expected: "100"},
		{name: "empty yields zero", input: "", expected: "0"},
		{name: "garbage yields zero", input: "abc", expected: "0"},
		{name: "two dashes yield zero", input: "1-2-3", expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expected, err := decimal.NewFromString(tt.expected)
			assert.NoError(t, err)
			assert.True(t, expected.Equal(currencyutils.ParseAmount(tt.input)),
				"ParseAmount(%q) = %s", tt.input, currencyutils.ParseAmount(tt.input))
		})
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{name: "half up", input: 1.005, expected: "1.01"},
		{name: "truncating zeros", input: 2.5, expected: "2.5"},
		{name: "negative", input: -1.006, expected: "-1.01"},
		{name: "no change", input: 10.25, expected: "10.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := currencyutils.Round2(decimal.NewFromFloat(tt.input))
			assert.Equal(t, tt.expected, result.String())
		})
	}
}
