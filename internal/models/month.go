// Package models provides the data structures shared by the importers, the
// reconciliation engine and the cascade calculator.
package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Revenus holds one month's income by category.
type Revenus struct {
	Activite     decimal.Decimal `json:"activite"`
	Sociaux      decimal.Decimal `json:"sociaux"`
	Interets     decimal.Decimal `json:"interets"`
	FluxInternes decimal.Decimal `json:"fluxInternes"`
}

// Besoins holds the needs envelope.
type Besoins struct {
	Fixes     decimal.Decimal `json:"fixes"`
	Variables decimal.Decimal `json:"variables"`
	Necessite decimal.Decimal `json:"necessite"`
}

// Dettes holds the debt envelope.
type Dettes struct {
	CreditImmo decimal.Decimal `json:"creditImmo"`
	CreditAuto decimal.Decimal `json:"creditAuto"`
	Autres     decimal.Decimal `json:"autres"`
}

// Epargne holds the savings envelope.
type Epargne struct {
	Livret      decimal.Decimal `json:"livret"`
	Placement   decimal.Decimal `json:"placement"`
	InvestPerso decimal.Decimal `json:"investPerso"`
}

// Envies holds the discretionary-spending envelope.
type Envies struct {
	Fourmilles  decimal.Decimal `json:"fourmilles"`
	Occasionnel decimal.Decimal `json:"occasionnel"`
}

// Sorties groups the four outflow envelopes.
type Sorties struct {
	Besoins Besoins `json:"besoins"`
	Dettes  Dettes  `json:"dettes"`
	Epargne Epargne `json:"epargne"`
	Envies  Envies  `json:"envies"`
}

// Patrimoine holds point-in-time balances of the savings instruments.
type Patrimoine struct {
	LEP     decimal.Decimal `json:"lep"`
	LivretA decimal.Decimal `json:"livretA"`
	PEA     decimal.Decimal `json:"pea"`
}

// MonthRecord is the envelope data for one calendar month. All monetary
// fields are kept rounded to 2 decimal places after any mutation.
type MonthRecord struct {
	Revenus    Revenus         `json:"revenus"`
	Sorties    Sorties         `json:"sorties"`
	Patrimoine Patrimoine      `json:"patrimoine"`
	Levier     decimal.Decimal `json:"levier"`
}

// DefaultLevier is the savings/wants split applied when none is recorded.
var DefaultLevier = decimal.NewFromFloat(0.5)

// NewMonthRecord returns an empty month with the default levier.
func NewMonthRecord() MonthRecord {
	return MonthRecord{Levier: DefaultLevier}
}

// NewYear returns twelve empty month records.
func NewYear() [12]MonthRecord {
	var months [12]MonthRecord
	for i := range months {
		months[i] = NewMonthRecord()
	}
	return months
}

// Round2 rounds a monetary value to 2 decimal places.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// AddRevenu adds an amount to the given revenue category, keeping the field
// rounded to 2 decimal places.
func (m *MonthRecord) AddRevenu(category string, amount decimal.Decimal) error {
	switch category {
	case RevenuActivite:
		m.Revenus.Activite = Round2(m.Revenus.Activite.Add(amount))
	case RevenuSociaux:
		m.Revenus.Sociaux = Round2(m.Revenus.Sociaux.Add(amount))
	case RevenuInterets:
		m.Revenus.Interets = Round2(m.Revenus.Interets.Add(amount))
	case RevenuFluxInternes:
		m.Revenus.FluxInternes = Round2(m.Revenus.FluxInternes.Add(amount))
	default:
		return fmt.Errorf("unknown revenue category: %s", category)
	}
	return nil
}

// SetRevenu overwrites a revenue category with a rounded value.
func (m *MonthRecord) SetRevenu(category string, amount decimal.Decimal) error {
	switch category {
	case RevenuActivite:
		m.Revenus.Activite = Round2(amount)
	case RevenuSociaux:
		m.Revenus.Sociaux = Round2(amount)
	case RevenuInterets:
		m.Revenus.Interets = Round2(amount)
	case RevenuFluxInternes:
		m.Revenus.FluxInternes = Round2(amount)
	default:
		return fmt.Errorf("unknown revenue category: %s", category)
	}
	return nil
}

// SetSortie overwrites an outflow subcategory with a rounded value.
func (m *MonthRecord) SetSortie(category, subcategory string, amount decimal.Decimal) error {
	field, err := m.sortieField(category, subcategory)
	if err != nil {
		return err
	}
	*field = Round2(amount)
	return nil
}

// SetLevier sets the savings/wants split ratio, clamped to [0, 1].
func (m *MonthRecord) SetLevier(levier decimal.Decimal) {
	if levier.IsNegative() {
		levier = decimal.Zero
	}
	if levier.GreaterThan(decimal.NewFromInt(1)) {
		levier = decimal.NewFromInt(1)
	}
	m.Levier = levier
}

// AddSortie adds an amount to the given outflow envelope/subcategory,
// keeping the field rounded to 2 decimal places.
func (m *MonthRecord) AddSortie(category, subcategory string, amount decimal.Decimal) error {
	field, err := m.sortieField(category, subcategory)
	if err != nil {
		return err
	}
	*field = Round2(field.Add(amount))
	return nil
}

func (m *MonthRecord) sortieField(category, subcategory string) (*decimal.Decimal, error) {
	switch category {
	case CategorieBesoins:
		switch subcategory {
		case BesoinsFixes:
			return &m.Sorties.Besoins.Fixes, nil
		case BesoinsVariables:
			return &m.Sorties.Besoins.Variables, nil
		case BesoinsNecessite:
			return &m.Sorties.Besoins.Necessite, nil
		}
	case CategorieDettes:
		switch subcategory {
		case DettesCreditImmo:
			return &m.Sorties.Dettes.CreditImmo, nil
		case DettesCreditAuto:
			return &m.Sorties.Dettes.CreditAuto, nil
		case DettesAutres:
			return &m.Sorties.Dettes.Autres, nil
		}
	case CategorieEpargne:
		switch subcategory {
		case EpargneLivret:
			return &m.Sorties.Epargne.Livret, nil
		case EpargnePlacement:
			return &m.Sorties.Epargne.Placement, nil
		case EpargneInvestPerso:
			return &m.Sorties.Epargne.InvestPerso, nil
		}
	case CategorieEnvies:
		switch subcategory {
		case EnviesFourmilles:
			return &m.Sorties.Envies.Fourmilles, nil
		case EnviesOccasionnel:
			return &m.Sorties.Envies.Occasionnel, nil
		}
	}
	return nil, fmt.Errorf("unknown outflow: %s/%s", category, subcategory)
}

// SetInstrumentBalance overwrites one instrument balance, rounded.
func (m *MonthRecord) SetInstrumentBalance(instrument string, balance decimal.Decimal) error {
	switch instrument {
	case InstrumentLEP:
		m.Patrimoine.LEP = Round2(balance)
	case InstrumentLivretA:
		m.Patrimoine.LivretA = Round2(balance)
	case InstrumentPEA:
		m.Patrimoine.PEA = Round2(balance)
	default:
		return fmt.Errorf("unknown instrument: %s", instrument)
	}
	return nil
}

// MonthIndex resolves a full French month name (case-insensitive) to its
// 0-based index, or -1 when the name is unknown.
func MonthIndex(name string) int {
	for i, m := range Months {
		if strings.EqualFold(m, strings.TrimSpace(name)) {
			return i
		}
	}
	return -1
}
