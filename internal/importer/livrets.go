package importer

import (
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/classifier"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/currencyutils"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/dateutils"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/ledger"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/logging"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/models"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/parsererror"
)

// minLivretsFields is the minimum row width of a savings-instrument export.
// These exports can be narrower than the full bank format.
const minLivretsFields = 5

// LivretsResult is the outcome of a savings-instrument reconciliation
// import: the given months with their instrument balances rewritten, the
// derived opening balances, and counters.
type LivretsResult struct {
	Months [12]models.MonthRecord
	Soldes models.SoldesInitiaux

	Stats         models.ImportStats
	PriorYearOps  int
	TargetYearOps int
}

// ImportLivrets parses a multi-year instrument export, replays every
// operation chronologically and rewrites the target year's opening balances
// and month-end instrument balances onto the given months.
func (i *Importer) ImportLivrets(text, filePath string, targetYear int, months [12]models.MonthRecord) (LivretsResult, error) {
	rows := i.tokenize(text)
	if len(rows) < 2 {
		return LivretsResult{}, &parsererror.InvalidFormatError{
			FilePath:       filePath,
			ExpectedFormat: "savings-instrument CSV",
			Msg:            "file has no data rows",
		}
	}

	headers := rows[0]
	compteIdx := headerIndex(headers, "compte", fallbackCompteIdx)
	dateIdx := headerIndex(headers, "date de valeur", fallbackDateIdx)
	montantIdx := headerIndex(headers, "montant", fallbackMontantIdx)

	result := LivretsResult{}
	var ops []models.LedgerOperation

	for _, row := range rows[1:] {
		if len(row) < minLivretsFields {
			continue
		}

		montant := currencyutils.ParseAmount(fieldAt(row, montantIdx))
		if montant.IsZero() {
			continue
		}

		date, err := dateutils.ParseFrenchDate(fieldAt(row, dateIdx))
		if err != nil {
			continue
		}

		result.Stats.Total++

		label := fieldAt(row, compteIdx)
		instrument := classifier.DetectInstrument(label)
		if instrument == "" {
			continue
		}
		result.Stats.Mapped++

		ops = append(ops, models.LedgerOperation{
			Date:       date,
			Year:       date.Year(),
			Month:      dateutils.MonthIndex(date),
			Instrument: instrument,
			Kind:       classifier.DetectOpKind(label, montant),
			Amount:     currencyutils.Round2(montant.Abs()),
		})
	}

	replay := ledger.Reconcile(ops, targetYear)
	result.Soldes = replay.Opening
	result.PriorYearOps = replay.PriorYearOps
	result.TargetYearOps = replay.TargetYearOps

	result.Months = months
	for m := 0; m < 12; m++ {
		result.Months[m].Patrimoine = replay.MonthEnd[m]
	}

	i.logger.Info("Savings reconciliation finished",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldYear, Value: targetYear},
		logging.Field{Key: "prior_year_ops", Value: replay.PriorYearOps},
		logging.Field{Key: "target_year_ops", Value: replay.TargetYearOps})

	return result, nil
}
