package store

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/smalldjo-coder/Budget-Manager-v2/internal/logging"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/models"
)

// Key prefix shared by every persisted value.
const keyPrefix = "budget-manager-data"

func yearKey(suffix string, year int) string {
	if suffix == "" {
		return fmt.Sprintf("%s-%d", keyPrefix, year)
	}
	return fmt.Sprintf("%s-%s-%d", keyPrefix, suffix, year)
}

// Repository serializes the application data into the key-value store, one
// key per concern per year. Absent or malformed values yield fresh defaults.
type Repository struct {
	store  Store
	logger logging.Logger
}

// NewRepository wraps a Store.
func NewRepository(store Store, logger logging.Logger) *Repository {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Repository{store: store, logger: logger}
}

// load unmarshals the value at key into out, reporting whether usable data
// was found. Malformed data is logged and treated as absent.
func (r *Repository) load(key string, out interface{}) bool {
	value, ok, err := r.store.Get(key)
	if err != nil {
		r.logger.WithError(err).Warn("Failed to read from store",
			logging.Field{Key: logging.FieldKey, Value: key})
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(value), out); err != nil {
		r.logger.WithError(err).Warn("Malformed stored value, using defaults",
			logging.Field{Key: logging.FieldKey, Value: key})
		return false
	}
	return true
}

func (r *Repository) save(key string, in interface{}) error {
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal value for key '%s': %w", key, err)
	}
	return r.store.Set(key, string(data))
}

// Months loads the twelve month records of a year, synthesizing an empty
// year when nothing usable is stored.
func (r *Repository) Months(year int) [12]models.MonthRecord {
	var loaded []models.MonthRecord
	if r.load(yearKey("", year), &loaded) && len(loaded) == 12 {
		var months [12]models.MonthRecord
		copy(months[:], loaded)
		return months
	}
	return models.NewYear()
}

// SaveMonths persists the full year at once. Writes are whole-year
// replacements so readers never observe a half-updated year.
func (r *Repository) SaveMonths(year int, months [12]models.MonthRecord) error {
	return r.save(yearKey("", year), months[:])
}

// Transactions loads the transaction list of a year.
func (r *Repository) Transactions(year int) []models.Transaction {
	var txs []models.Transaction
	if r.load(yearKey("transactions", year), &txs) {
		return txs
	}
	return nil
}

// SaveTransactions replaces the transaction list of a year.
func (r *Repository) SaveTransactions(year int, txs []models.Transaction) error {
	return r.save(yearKey("transactions", year), txs)
}

// SoldesInitiaux loads the opening balances of a year.
func (r *Repository) SoldesInitiaux(year int) models.SoldesInitiaux {
	var soldes models.SoldesInitiaux
	if r.load(yearKey("soldes-initiaux", year), &soldes) {
		return soldes
	}
	return models.SoldesInitiaux{}
}

// SaveSoldesInitiaux persists the opening balances of a year.
func (r *Repository) SaveSoldesInitiaux(year int, soldes models.SoldesInitiaux) error {
	return r.save(yearKey("soldes-initiaux", year), soldes)
}

// BudgetPrevu loads the planned budget of a year.
func (r *Repository) BudgetPrevu(year int) models.BudgetPrevu {
	var prevu models.BudgetPrevu
	if r.load(yearKey("prevu", year), &prevu) {
		return prevu
	}
	return models.BudgetPrevu{}
}

// SaveBudgetPrevu persists the planned budget of a year.
func (r *Repository) SaveBudgetPrevu(year int, prevu models.BudgetPrevu) error {
	return r.save(yearKey("prevu", year), prevu)
}

// Objectifs loads the global thresholds, falling back to the defaults.
func (r *Repository) Objectifs() models.Objectifs {
	objectifs := models.DefaultObjectifs()
	r.load(keyPrefix+"-objectifs", &objectifs)
	return objectifs
}

// SaveObjectifs persists the global thresholds.
func (r *Repository) SaveObjectifs(objectifs models.Objectifs) error {
	return r.save(keyPrefix+"-objectifs", objectifs)
}

// SelectedYear loads the persisted working year, or fallback.
func (r *Repository) SelectedYear(fallback int) int {
	value, ok, err := r.store.Get(keyPrefix + "-selected-year")
	if err != nil || !ok {
		return fallback
	}
	year, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return year
}

// SaveSelectedYear persists the working year.
func (r *Repository) SaveSelectedYear(year int) error {
	return r.store.Set(keyPrefix+"-selected-year", strconv.Itoa(year))
}

// ResetYear removes the budget data, transactions and opening balances of a
// year in one call. The planned budget and global objectives survive.
func (r *Repository) ResetYear(year int) error {
	for _, key := range []string{
		yearKey("", year),
		yearKey("transactions", year),
		yearKey("soldes-initiaux", year),
	} {
		if err := r.store.Remove(key); err != nil {
			return err
		}
	}
	return nil
}
