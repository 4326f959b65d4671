// Package budget holds the explicit state container for one working year.
// All mutations go through scoped update methods that persist immediately;
// imports commit through whole-year replacement so no reader ever observes a
// half-updated year.
package budget

import (
	"github.com/shopspring/decimal"

	"github.com/smalldjo-coder/Budget-Manager-v2/internal/logging"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/models"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/store"
)

// Service owns the in-memory state of the selected year and its persistence.
type Service struct {
	repo   *store.Repository
	logger logging.Logger

	year         int
	months       [12]models.MonthRecord
	transactions []models.Transaction
	soldes       models.SoldesInitiaux
	objectifs    models.Objectifs
	prevu        models.BudgetPrevu
}

// NewService loads the state of the given year from the repository. A year
// with no stored data starts empty (all zeros, default levier).
func NewService(repo *store.Repository, year int, logger logging.Logger) *Service {
	if logger == nil {
		logger = logging.GetLogger()
	}
	s := &Service{repo: repo, logger: logger}
	s.loadYear(year)
	s.objectifs = repo.Objectifs()
	return s
}

func (s *Service) loadYear(year int) {
	s.year = year
	s.months = s.repo.Months(year)
	s.transactions = s.repo.Transactions(year)
	s.soldes = s.repo.SoldesInitiaux(year)
	s.prevu = s.repo.BudgetPrevu(year)
}

// SelectYear switches the working year, loading its data and persisting the
// selection.
func (s *Service) SelectYear(year int) error {
	s.loadYear(year)
	return s.repo.SaveSelectedYear(year)
}

// Year returns the working year.
func (s *Service) Year() int { return s.year }

// Months returns the twelve month records.
func (s *Service) Months() [12]models.MonthRecord { return s.months }

// Month returns one month record.
func (s *Service) Month(index int) models.MonthRecord { return s.months[index] }

// Transactions returns the classified transactions of the year.
func (s *Service) Transactions() []models.Transaction { return s.transactions }

// SoldesInitiaux returns the opening balances of the year.
func (s *Service) SoldesInitiaux() models.SoldesInitiaux { return s.soldes }

// Objectifs returns the global thresholds.
func (s *Service) Objectifs() models.Objectifs { return s.objectifs }

// BudgetPrevu returns the planned budget of the year.
func (s *Service) BudgetPrevu() models.BudgetPrevu { return s.prevu }

// --- manual edits ----------------------------------------------------------

// UpdateRevenu overwrites one revenue field of one month.
func (s *Service) UpdateRevenu(month int, category string, amount decimal.Decimal) error {
	if err := s.months[month].SetRevenu(category, amount); err != nil {
		return err
	}
	return s.repo.SaveMonths(s.year, s.months)
}

// UpdateSortie overwrites one outflow field of one month.
func (s *Service) UpdateSortie(month int, category, subcategory string, amount decimal.Decimal) error {
	if err := s.months[month].SetSortie(category, subcategory, amount); err != nil {
		return err
	}
	return s.repo.SaveMonths(s.year, s.months)
}

// UpdatePatrimoine overwrites one instrument balance of one month.
func (s *Service) UpdatePatrimoine(month int, instrument string, balance decimal.Decimal) error {
	if err := s.months[month].SetInstrumentBalance(instrument, balance); err != nil {
		return err
	}
	return s.repo.SaveMonths(s.year, s.months)
}

// UpdateLevier sets the savings/wants split of one month.
func (s *Service) UpdateLevier(month int, levier decimal.Decimal) error {
	s.months[month].SetLevier(levier)
	return s.repo.SaveMonths(s.year, s.months)
}

// UpdateSoldeInitial overwrites one instrument's opening balance.
func (s *Service) UpdateSoldeInitial(instrument string, balance decimal.Decimal) error {
	s.soldes.Set(instrument, balance)
	return s.repo.SaveSoldesInitiaux(s.year, s.soldes)
}

// --- settings --------------------------------------------------------------

// SetObjectifs replaces the global thresholds.
func (s *Service) SetObjectifs(objectifs models.Objectifs) error {
	s.objectifs = objectifs
	return s.repo.SaveObjectifs(objectifs)
}

// SetBudgetPrevu replaces the planned budget of the year.
func (s *Service) SetBudgetPrevu(prevu models.BudgetPrevu) error {
	s.prevu = prevu
	return s.repo.SaveBudgetPrevu(s.year, prevu)
}

// --- import commits --------------------------------------------------------

// ApplyBudgetImport replaces the twelve months from a round-trip import.
func (s *Service) ApplyBudgetImport(months [12]models.MonthRecord) error {
	if err := s.repo.SaveMonths(s.year, months); err != nil {
		return err
	}
	s.months = months
	return nil
}

// ApplyBankImport replaces the months and the transaction set from a bank
// import in one commit.
func (s *Service) ApplyBankImport(months [12]models.MonthRecord, txs []models.Transaction) error {
	if err := s.repo.SaveMonths(s.year, months); err != nil {
		return err
	}
	if err := s.repo.SaveTransactions(s.year, txs); err != nil {
		return err
	}
	s.months = months
	s.transactions = txs
	return nil
}

// ApplyLivretsImport replaces the months (instrument balances rewritten) and
// the opening balances from a reconciliation import.
func (s *Service) ApplyLivretsImport(months [12]models.MonthRecord, soldes models.SoldesInitiaux) error {
	if err := s.repo.SaveMonths(s.year, months); err != nil {
		return err
	}
	if err := s.repo.SaveSoldesInitiaux(s.year, soldes); err != nil {
		return err
	}
	s.months = months
	s.soldes = soldes
	return nil
}

// ResetYear clears the working year: months, transactions and opening
// balances, all at once.
func (s *Service) ResetYear() error {
	if err := s.repo.ResetYear(s.year); err != nil {
		return err
	}
	s.months = models.NewYear()
	s.transactions = nil
	s.soldes = models.SoldesInitiaux{}
	s.logger.Info("Year data reset", logging.Field{Key: logging.FieldYear, Value: s.year})
	return nil
}
