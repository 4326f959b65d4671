package store_test

import (
	"errors"
	"testing"
	"time"

	"github.com/smalldjo-coder/Budget-Manager-v2/internal/logging"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/models"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func newRepo() (*store.Repository, *store.MemoryStore, *logging.MockLogger) {
	mem := store.NewMemoryStore()
	log := &logging.MockLogger{}
	return store.NewRepository(mem, log), mem, log
}

func TestMonthsRoundTrip(t *testing.T) {
	repo, _, _ := newRepo()

	months := models.NewYear()
	months[0].Revenus.Activite = d(3000)
	months[5].Sorties.Besoins.Fixes = d(1200.5)
	months[5].SetLevier(d(0.7))

	require.NoError(t, repo.SaveMonths(2024, months))
	loaded := repo.Months(2024)

	assert.True(t, d(3000).Equal(loaded[0].Revenus.Activite))
	assert.True(t, d(1200.5).Equal(loaded[5].Sorties.Besoins.Fixes))
	assert.True(t, d(0.7).Equal(loaded[5].Levier))
	assert.True(t, models.DefaultLevier.Equal(loaded[1].Levier))
}

func TestMonthsDefaultsWhenAbsent(t *testing.T) {
	repo, _, _ := newRepo()

	months := repo.Months(2024)
	for i := range months {
		assert.True(t, months[i].Revenus.Activite.IsZero())
		assert.True(t, models.DefaultLevier.Equal(months[i].Levier))
	}
}

func TestMonthsMalformedValueYieldsDefaults(t *testing.T) {
	repo, mem, log := newRepo()

	require.NoError(t, mem.Set("budget-manager-data-2024", "][ not json"))
	months := repo.Months(2024)

	assert.True(t, months[0].Revenus.Activite.IsZero())
	assert.True(t, log.HasMessage("Malformed stored value, using defaults"))
}

func TestMonthsIsolatedPerYear(t *testing.T) {
	repo, _, _ := newRepo()

	months2023 := models.NewYear()
	months2023[0].Revenus.Activite = d(1000)
	months2024 := models.NewYear()
	months2024[0].Revenus.Activite = d(2000)

	require.NoError(t, repo.SaveMonths(2023, months2023))
	require.NoError(t, repo.SaveMonths(2024, months2024))

	assert.True(t, d(1000).Equal(repo.Months(2023)[0].Revenus.Activite))
	assert.True(t, d(2000).Equal(repo.Months(2024)[0].Revenus.Activite))
}

func TestTransactionsRoundTrip(t *testing.T) {
	repo, _, _ := newRepo()

	date := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		models.NewTransaction(date, "Entrées : Activité", "ACME", d(3000), 2, models.Mapping{
			Section:  models.SectionRevenus,
			Category: models.RevenuActivite,
		}),
	}

	require.NoError(t, repo.SaveTransactions(2024, txs))
	loaded := repo.Transactions(2024)

	require.Len(t, loaded, 1)
	assert.Equal(t, txs[0].ID, loaded[0].ID)
	assert.Equal(t, "Entrées : Activité", loaded[0].Label)
	assert.True(t, d(3000).Equal(loaded[0].Amount))
	assert.Nil(t, repo.Transactions(2023))
}

func TestSoldesInitiauxRoundTrip(t *testing.T) {
	repo, _, _ := newRepo()

	soldes := models.SoldesInitiaux{LEP: d(100), LivretA: d(50.25)}
	require.NoError(t, repo.SaveSoldesInitiaux(2024, soldes))

	loaded := repo.SoldesInitiaux(2024)
	assert.True(t, d(100).Equal(loaded.LEP))
	assert.True(t, d(50.25).Equal(loaded.LivretA))
	assert.True(t, loaded.PEA.IsZero())
}

func TestObjectifs(t *testing.T) {
	repo, _, _ := newRepo()

	// Defaults come back when nothing is stored.
	objectifs := repo.Objectifs()
	assert.True(t, d(7812).Equal(objectifs.LEP))
	assert.True(t, objectifs.AlertesActives)

	objectifs.LEP = d(9000)
	objectifs.SeuilDettes = d(15)
	require.NoError(t, repo.SaveObjectifs(objectifs))

	loaded := repo.Objectifs()
	assert.True(t, d(9000).Equal(loaded.LEP))
	assert.True(t, d(15).Equal(loaded.SeuilDettes))
	assert.True(t, d(3000).Equal(loaded.LivretA), "untouched fields keep their defaults")
}

func TestBudgetPrevuRoundTrip(t *testing.T) {
	repo, _, _ := newRepo()

	var prevu models.BudgetPrevu
	prevu.Revenus.Activite = d(3000)
	prevu.Dettes.Total = d(500)
	require.NoError(t, repo.SaveBudgetPrevu(2024, prevu))

	loaded := repo.BudgetPrevu(2024)
	assert.True(t, d(3000).Equal(loaded.Revenus.Activite))
	assert.True(t, d(500).Equal(loaded.Dettes.Total))
}

func TestSelectedYear(t *testing.T) {
	repo, mem, _ := newRepo()

	assert.Equal(t, 2026, repo.SelectedYear(2026))

	require.NoError(t, repo.SaveSelectedYear(2024))
	assert.Equal(t, 2024, repo.SelectedYear(2026))

	require.NoError(t, mem.Set("budget-manager-data-selected-year", "not a year"))
	assert.Equal(t, 2026, repo.SelectedYear(2026))
}

func TestResetYear(t *testing.T) {
	repo, _, _ := newRepo()

	months := models.NewYear()
	months[0].Revenus.Activite = d(3000)
	require.NoError(t, repo.SaveMonths(2024, months))
	require.NoError(t, repo.SaveTransactions(2024, []models.Transaction{{ID: "t1"}}))
	require.NoError(t, repo.SaveSoldesInitiaux(2024, models.SoldesInitiaux{LEP: d(100)}))
	require.NoError(t, repo.SaveMonths(2023, months))

	objectifs := repo.Objectifs()
	objectifs.LEP = d(9999)
	require.NoError(t, repo.SaveObjectifs(objectifs))
	var prevu models.BudgetPrevu
	prevu.Dettes.Total = d(400)
	require.NoError(t, repo.SaveBudgetPrevu(2024, prevu))

	require.NoError(t, repo.ResetYear(2024))

	assert.True(t, repo.Months(2024)[0].Revenus.Activite.IsZero())
	assert.Nil(t, repo.Transactions(2024))
	assert.True(t, repo.SoldesInitiaux(2024).LEP.IsZero())

	// Other years and global settings survive.
	assert.True(t, d(3000).Equal(repo.Months(2023)[0].Revenus.Activite))
	assert.True(t, d(9999).Equal(repo.Objectifs().LEP))
	assert.True(t, d(400).Equal(repo.BudgetPrevu(2024).Dettes.Total))
}

func TestRepositoryStoreErrors(t *testing.T) {
	repo, mem, log := newRepo()

	mem.GetError = errors.New("disk gone")
	months := repo.Months(2024)
	assert.True(t, months[0].Revenus.Activite.IsZero(), "read errors fall back to defaults")
	assert.True(t, log.HasMessage("Failed to read from store"))

	mem.SetError = errors.New("disk gone")
	assert.Error(t, repo.SaveMonths(2024, months))
}
