package models

import "github.com/shopspring/decimal"

// Objectifs holds the process-wide budget thresholds and target balances.
// Percentage thresholds are stored as whole percents (10 means 10%).
type Objectifs struct {
	LEP            decimal.Decimal `json:"lep"`
	LivretA        decimal.Decimal `json:"livretA"`
	PEA            decimal.Decimal `json:"pea"`
	SeuilDettes    decimal.Decimal `json:"seuilDettes"`
	EpargneMin     decimal.Decimal `json:"epargneMin"`
	EpargneMax     decimal.Decimal `json:"epargneMax"`
	EnviesMin      decimal.Decimal `json:"enviesMin"`
	EnviesMax      decimal.Decimal `json:"enviesMax"`
	AlertesActives bool            `json:"alertesActives"`
}

// DefaultObjectifs returns the built-in thresholds and targets.
func DefaultObjectifs() Objectifs {
	return Objectifs{
		LEP:            decimal.NewFromInt(7812),
		LivretA:        decimal.NewFromInt(3000),
		PEA:            decimal.NewFromInt(10000),
		SeuilDettes:    decimal.NewFromInt(10),
		EpargneMin:     decimal.NewFromInt(5),
		EpargneMax:     decimal.NewFromInt(20),
		EnviesMin:      decimal.NewFromInt(10),
		EnviesMax:      decimal.NewFromInt(30),
		AlertesActives: true,
	}
}

// PrevuRevenus is the planned monthly income.
type PrevuRevenus struct {
	Activite decimal.Decimal `json:"activite"`
	Sociaux  decimal.Decimal `json:"sociaux"`
	Interets decimal.Decimal `json:"interets"`
}

// PrevuBesoins is the planned monthly needs spending.
type PrevuBesoins struct {
	Fixes     decimal.Decimal `json:"fixes"`
	Variables decimal.Decimal `json:"variables"`
}

// PrevuTotal is a planned monthly envelope total.
type PrevuTotal struct {
	Total decimal.Decimal `json:"total"`
}

// BudgetPrevu is the planned monthly budget for a year, used to compare
// realised totals against the plan.
type BudgetPrevu struct {
	Revenus PrevuRevenus `json:"revenus"`
	Besoins PrevuBesoins `json:"besoins"`
	Dettes  PrevuTotal   `json:"dettes"`
	Epargne PrevuTotal   `json:"epargne"`
	Envies  PrevuTotal   `json:"envies"`
}
