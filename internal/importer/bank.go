package importer

import (
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/classifier"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/currencyutils"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/dateutils"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/logging"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/models"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/parsererror"
)

// Column-index fallbacks used when the fuzzy header match finds nothing.
const (
	fallbackCompteIdx  = 0
	fallbackDateIdx    = 4
	fallbackNomIdx     = 5
	fallbackMontantIdx = 7
)

// minBankFields is the minimum row width of the bank export.
const minBankFields = 8

// BankResult is the outcome of a bank-export import: fresh month totals,
// the classified transaction list and the per-row accounting.
type BankResult struct {
	Months       [12]models.MonthRecord
	Transactions []models.Transaction
	Stats        models.ImportStats
}

// ImportBank parses a bank/ledger export for the target year. Rows outside
// the year, with unparseable dates, zero amounts or implausible amounts are
// skipped and counted; classification misses are counted as unmapped.
func (i *Importer) ImportBank(text, filePath string, targetYear int) (BankResult, error) {
	rows := i.tokenize(text)
	if len(rows) < 2 {
		return BankResult{}, &parsererror.InvalidFormatError{
			FilePath:       filePath,
			ExpectedFormat: "bank transaction CSV",
			Msg:            "file has no data rows",
		}
	}

	headers := rows[0]
	compteIdx := headerIndex(headers, "compte", fallbackCompteIdx)
	dateIdx := headerIndex(headers, "date de valeur", fallbackDateIdx)
	montantIdx := headerIndex(headers, "montant", fallbackMontantIdx)
	nomIdx := headerIndex(headers, "nom", fallbackNomIdx)

	result := BankResult{Months: models.NewYear()}

	for _, row := range rows[1:] {
		if len(row) < minBankFields {
			continue
		}

		label := fieldAt(row, compteIdx)
		montant := currencyutils.Round2(currencyutils.ParseAmount(fieldAt(row, montantIdx)))
		if montant.IsZero() || i.implausible(montant) {
			continue
		}

		date, err := dateutils.ParseFrenchDate(fieldAt(row, dateIdx))
		if err != nil {
			continue
		}
		if date.Year() != targetYear {
			result.Stats.SkippedYear++
			continue
		}
		monthIndex := dateutils.MonthIndex(date)

		result.Stats.Total++

		mapping, ok := classifier.Classify(label)
		if !ok {
			result.Stats.RecordUnmapped(label)
			continue
		}
		result.Stats.Mapped++

		mapping = i.applyInterestPolicy(mapping)

		tx := models.NewTransaction(date, label, fieldAt(row, nomIdx), montant, monthIndex, mapping)
		result.Transactions = append(result.Transactions, tx)

		switch {
		case mapping.Section == models.SectionRevenus:
			if err := result.Months[monthIndex].AddRevenu(mapping.Category, montant.Abs()); err != nil {
				i.logger.WithError(err).Warn("Skipping unaggregatable revenue row",
					logging.Field{Key: logging.FieldLabel, Value: label})
			}
		case mapping.Section == models.SectionSorties && mapping.Subcategory != "":
			if err := result.Months[monthIndex].AddSortie(mapping.Category, mapping.Subcategory, montant.Abs()); err != nil {
				i.logger.WithError(err).Warn("Skipping unaggregatable outflow row",
					logging.Field{Key: logging.FieldLabel, Value: label})
			}
		}
	}

	result.Stats.LogSummary(i.logger, "bank")
	return result, nil
}

// applyInterestPolicy reroutes savings-instrument interest to internal flows
// when the configuration says it must not count toward gross income.
func (i *Importer) applyInterestPolicy(mapping models.Mapping) models.Mapping {
	if i.cfg.Import.LivretInterestAsIncome {
		return mapping
	}
	if mapping.Source == "livret" && mapping.Category == models.RevenuInterets {
		mapping.Category = models.RevenuFluxInternes
	}
	return mapping
}
