package models

import "github.com/shopspring/decimal"

// CascadeResult holds the derived metrics of the envelope cascade for one
// month. It is recomputed on every read and never stored. Ratios are plain
// fractions (0.10 means 10%); the "solde" values may be negative.
type CascadeResult struct {
	CA decimal.Decimal

	TotalBesoins      decimal.Decimal
	PctBesoins        decimal.Decimal
	SoldeApresBesoins decimal.Decimal

	TotalDettes      decimal.Decimal
	SeuilMaxDettes   decimal.Decimal
	PctDettes        decimal.Decimal
	AlerteDettes     bool
	SoldeApresDettes decimal.Decimal

	TotalEpargne      decimal.Decimal
	PctEpargne        decimal.Decimal
	AlerteEpargneMin  bool
	AlerteEpargneMax  bool
	SoldeApresEpargne decimal.Decimal

	EpargneObjectif    decimal.Decimal
	PctEpargneObjectif decimal.Decimal

	TotalEnvies     decimal.Decimal
	PctEnvies       decimal.Decimal
	AlerteEnviesMax bool

	EnviesObjectif    decimal.Decimal
	PctEnviesObjectif decimal.Decimal

	SoldeFinal decimal.Decimal

	// HealthScore is a 0-100 composite penalizing envelope ratios outside
	// their healthy ranges.
	HealthScore int
}

// MonthSummary is one month's envelope totals, used by annual aggregates.
type MonthSummary struct {
	Mois       string
	CA         decimal.Decimal
	Besoins    decimal.Decimal
	Dettes     decimal.Decimal
	Epargne    decimal.Decimal
	Envies     decimal.Decimal
	SoldeFinal decimal.Decimal

	// EpargneCumulee is filled by the cumulative-savings pass.
	EpargneCumulee decimal.Decimal
}

// EnvelopeTotals holds one set of annual envelope totals.
type EnvelopeTotals struct {
	Revenus decimal.Decimal
	Besoins decimal.Decimal
	Dettes  decimal.Decimal
	Epargne decimal.Decimal
	Envies  decimal.Decimal
	Solde   decimal.Decimal
}

// AnnualStats compares realised annual totals against the planned budget.
type AnnualStats struct {
	Realise EnvelopeTotals
	Prevu   EnvelopeTotals
}

// PatrimoineEvolution is one month's instrument balances with their total.
type PatrimoineEvolution struct {
	Mois    string
	LEP     decimal.Decimal
	LivretA decimal.Decimal
	PEA     decimal.Decimal
	Total   decimal.Decimal
}
