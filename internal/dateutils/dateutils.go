// Package dateutils provides the date handling for bank-export rows.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// DateLayoutFrench is the fixed day/month/year layout of the bank export.
const DateLayoutFrench = "02/01/2006"

// ParseFrenchDate parses a strict DD/MM/YYYY date. A row whose date does not
// parse is skipped entirely by the importers.
func ParseFrenchDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	t, err := time.Parse(DateLayoutFrench, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date '%s': %w", dateStr, err)
	}
	return t, nil
}

// FormatFrenchDate renders a date in the export layout.
func FormatFrenchDate(t time.Time) string {
	return t.Format(DateLayoutFrench)
}

// MonthIndex returns the 0-based month of a date.
func MonthIndex(t time.Time) int {
	return int(t.Month()) - 1
}
