package models

// Sections
const (
	SectionRevenus = "revenus"
	SectionSorties = "sorties"
)

// Revenue categories
const (
	RevenuActivite     = "activite"
	RevenuSociaux      = "sociaux"
	RevenuInterets     = "interets"
	RevenuFluxInternes = "fluxInternes"
)

// Outflow categories (the four envelopes)
const (
	CategorieBesoins = "besoins"
	CategorieDettes  = "dettes"
	CategorieEpargne = "epargne"
	CategorieEnvies  = "envies"
)

// Outflow subcategories
const (
	BesoinsFixes     = "fixes"
	BesoinsVariables = "variables"
	BesoinsNecessite = "necessite"

	DettesCreditImmo = "creditImmo"
	DettesCreditAuto = "creditAuto"
	DettesAutres     = "autres"

	EpargneLivret      = "livret"
	EpargnePlacement   = "placement"
	EpargneInvestPerso = "investPerso"

	EnviesFourmilles  = "fourmilles"
	EnviesOccasionnel = "occasionnel"
)

// Long-lived savings instruments tracked by the reconciliation engine.
const (
	InstrumentLEP     = "lep"
	InstrumentLivretA = "livretA"
	InstrumentPEA     = "pea"
)

// Instruments lists the tracked instruments in display order.
var Instruments = []string{InstrumentLEP, InstrumentLivretA, InstrumentPEA}

// Ledger operation kinds
const (
	OpVersement = "versement"
	OpRetrait   = "retrait"
	OpInterets  = "interets"
)

// Internal-flow kinds recorded for savings-instrument transfers.
const (
	FluxVersementLivret = "versement_livret"
	FluxRetraitLivret   = "retrait_livret"
)

// Months holds the full French month names used by the round-trip CSV format.
var Months = []string{
	"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
}

// MonthsShort holds the abbreviated month names used in summaries.
var MonthsShort = []string{
	"Jan", "Fév", "Mar", "Avr", "Mai", "Juin",
	"Juil", "Août", "Sep", "Oct", "Nov", "Déc",
}
