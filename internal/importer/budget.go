package importer

import (
	"github.com/shopspring/decimal"

	"github.com/smalldjo-coder/Budget-Manager-v2/internal/currencyutils"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/logging"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/models"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/parsererror"
)

// Round-trip CSV column names.
const (
	colMois = "Mois"

	colRevenusActivite = "Revenus_Activite"
	colRevenusSociaux  = "Revenus_Sociaux"
	colRevenusInterets = "Revenus_Interets"
	colFluxInternes    = "Flux_Internes"

	colBesoinsFixes     = "Besoins_Fixes"
	colBesoinsVariables = "Besoins_Variables"
	colBesoinsNecessite = "Besoins_Necessite"

	colDettesCreditImmo = "Dettes_CreditImmo"
	colDettesCreditAuto = "Dettes_CreditAuto"
	colDettesAutres     = "Dettes_Autres"

	colEpargneLivret      = "Epargne_Livret"
	colEpargnePlacement   = "Epargne_Placement"
	colEpargneInvestPerso = "Epargne_InvestPerso"

	colEnviesFourmilles  = "Envies_Fourmilles"
	colEnviesOccasionnel = "Envies_Occasionnel"

	colPatrimoineLEP     = "Patrimoine_LEP"
	colPatrimoineLivretA = "Patrimoine_LivretA"
	colPatrimoinePEA     = "Patrimoine_PEA"

	colLevier = "Levier"
)

// BudgetResult is the outcome of a round-trip budget import.
type BudgetResult struct {
	Months   [12]models.MonthRecord
	Imported int // months recognized in the file
}

// ImportBudget parses the application's own export format: one row per
// month, columns located by exact header name, missing columns defaulting
// to 0 and a missing levier to 0.5.
func (i *Importer) ImportBudget(text, filePath string) (BudgetResult, error) {
	rows := i.tokenize(text)
	if len(rows) < 2 {
		return BudgetResult{}, &parsererror.InvalidFormatError{
			FilePath:       filePath,
			ExpectedFormat: "budget round-trip CSV",
			Msg:            "file has no data rows",
		}
	}

	headers := rows[0]
	if exactIndex(headers, colMois) == -1 || exactIndex(headers, colRevenusActivite) == -1 {
		return BudgetResult{}, &parsererror.InvalidFormatError{
			FilePath:       filePath,
			ExpectedFormat: "budget round-trip CSV",
			Msg:            "required columns Mois / Revenus_Activite are missing",
		}
	}

	result := BudgetResult{Months: models.NewYear()}

	for _, row := range rows[1:] {
		monthIndex := models.MonthIndex(fieldAt(row, 0))
		if monthIndex == -1 {
			continue
		}

		value := func(name string) decimal.Decimal {
			idx := exactIndex(headers, name)
			if idx == -1 || idx >= len(row) {
				return decimal.Zero
			}
			return currencyutils.Round2(currencyutils.ParseAmount(row[idx]))
		}

		month := models.MonthRecord{
			Revenus: models.Revenus{
				Activite:     value(colRevenusActivite),
				Sociaux:      value(colRevenusSociaux),
				Interets:     value(colRevenusInterets),
				FluxInternes: value(colFluxInternes),
			},
			Sorties: models.Sorties{
				Besoins: models.Besoins{
					Fixes:     value(colBesoinsFixes),
					Variables: value(colBesoinsVariables),
					Necessite: value(colBesoinsNecessite),
				},
				Dettes: models.Dettes{
					CreditImmo: value(colDettesCreditImmo),
					CreditAuto: value(colDettesCreditAuto),
					Autres:     value(colDettesAutres),
				},
				Epargne: models.Epargne{
					Livret:      value(colEpargneLivret),
					Placement:   value(colEpargnePlacement),
					InvestPerso: value(colEpargneInvestPerso),
				},
				Envies: models.Envies{
					Fourmilles:  value(colEnviesFourmilles),
					Occasionnel: value(colEnviesOccasionnel),
				},
			},
			Patrimoine: models.Patrimoine{
				LEP:     value(colPatrimoineLEP),
				LivretA: value(colPatrimoineLivretA),
				PEA:     value(colPatrimoinePEA),
			},
			Levier: value(colLevier),
		}
		if month.Levier.IsZero() {
			month.Levier = models.DefaultLevier
		}

		result.Months[monthIndex] = month
		result.Imported++
	}

	i.logger.Info("Budget import finished",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: result.Imported})

	return result, nil
}

// exactIndex finds a column by its exact (trimmed) header name.
func exactIndex(headers []string, name string) int {
	for idx, h := range headers {
		if h == name {
			return idx
		}
	}
	return -1
}
