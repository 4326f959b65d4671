package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Mapping is the result of classifying a free-text account label onto the
// budget taxonomy. Subcategory is empty for revenue mappings. Source is set
// to "livret" when the label matched a savings-instrument rule, and Kind
// records the internal-flow direction for such rows.
type Mapping struct {
	Section     string
	Category    string
	Subcategory string
	Source      string
	Kind        string
}

// IsLivret reports whether the mapping came from a savings-instrument rule.
func (m Mapping) IsLivret() bool {
	return m.Source == "livret" || m.Kind == FluxVersementLivret || m.Kind == FluxRetraitLivret
}

// Transaction is one classified ledger row. Immutable once created; a new
// import replaces the whole set for the year.
type Transaction struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Label       string          `json:"label"`
	Payee       string          `json:"payee"`
	Amount      decimal.Decimal `json:"amount"`
	Month       int             `json:"month"`
	Section     string          `json:"section"`
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory,omitempty"`
}

// NewTransaction builds a fully-populated transaction. The amount is stored
// as an absolute value rounded to 2 decimal places.
func NewTransaction(date time.Time, label, payee string, amount decimal.Decimal, month int, mapping Mapping) Transaction {
	return Transaction{
		ID:          uuid.NewString(),
		Date:        date,
		Label:       label,
		Payee:       payee,
		Amount:      Round2(amount.Abs()),
		Month:       month,
		Section:     mapping.Section,
		Category:    mapping.Category,
		Subcategory: mapping.Subcategory,
	}
}
