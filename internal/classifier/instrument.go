package classifier

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/smalldjo-coder/Budget-Manager-v2/internal/models"
)

// instrumentRule binds one instrument key to its label keywords. Evaluated
// top to bottom; a label matching none of them is dropped by the
// reconciliation import.
type instrumentRule struct {
	Instrument string
	Keywords   []string
}

var instrumentRules = []instrumentRule{
	{models.InstrumentLEP, []string{"LEP", "LIVRET D'ÉPARGNE", "LIVRET D'EPARGNE"}},
	{models.InstrumentLivretA, []string{"LIVRET A", "LDDS"}},
	{models.InstrumentPEA, []string{"PEA", "PLAN D'ÉPARGNE", "PLAN D'EPARGNE"}},
}

// DetectInstrument maps a label to a savings-instrument key, or "" when the
// label names no known instrument.
func DetectInstrument(label string) string {
	upper := strings.ToUpper(label)
	for _, rule := range instrumentRules {
		if containsAny(upper, rule.Keywords...) {
			return rule.Instrument
		}
	}
	return ""
}

// DetectOpKind classifies one instrument row: interest-labeled rows are
// interest regardless of sign, otherwise the sign of the amount decides
// between deposit and withdrawal.
func DetectOpKind(label string, amount decimal.Decimal) string {
	upper := strings.ToUpper(label)
	if containsAny(upper, "INTÉRÊT", "INTERET", "INT.") {
		return models.OpInterets
	}
	if amount.IsPositive() {
		return models.OpVersement
	}
	return models.OpRetrait
}
