// Package currencyutils provides locale-aware amount parsing and the
// 2-decimal rounding used for every monetary value in the application.
package currencyutils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount decodes a bank-export amount string into a decimal value.
// French exports use a comma as decimal separator and may embed spaces,
// non-breaking spaces or currency symbols. An empty or unparseable string
// yields zero; callers treat a zero amount as "row has no amount" and skip
// the row.
func ParseAmount(amountStr string) decimal.Decimal {
	standardized := StandardizeAmount(amountStr)
	if standardized == "" {
		return decimal.Zero
	}
	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// StandardizeAmount normalizes an amount string: whitespace stripped, the
// decimal comma replaced by a dot, and any remaining character outside
// [0-9.-] dropped.
func StandardizeAmount(amountStr string) string {
	var b strings.Builder
	b.Grow(len(amountStr))
	for _, r := range amountStr {
		switch {
		case r == ',':
			b.WriteRune('.')
		case r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Round2 rounds to 2 decimal places. Applying it after every arithmetic step
// keeps all stored values expressible as an exact number of cents.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
