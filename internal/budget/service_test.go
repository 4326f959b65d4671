package budget_test

import (
	"errors"
	"testing"

	"github.com/smalldjo-coder/Budget-Manager-v2/internal/budget"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/logging"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/models"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func newService(year int) (*budget.Service, *store.MemoryStore) {
	mem := store.NewMemoryStore()
	repo := store.NewRepository(mem, &logging.MockLogger{})
	return budget.NewService(repo, year, &logging.MockLogger{}), mem
}

func TestNewServiceStartsEmpty(t *testing.T) {
	svc, _ := newService(2024)

	assert.Equal(t, 2024, svc.Year())
	assert.True(t, svc.Month(0).Revenus.Activite.IsZero())
	assert.True(t, models.DefaultLevier.Equal(svc.Month(0).Levier))
	assert.Nil(t, svc.Transactions())
	assert.True(t, svc.SoldesInitiaux().LEP.IsZero())
	assert.True(t, d(7812).Equal(svc.Objectifs().LEP), "objectives default")
}

func TestUpdateRevenuPersists(t *testing.T) {
	svc, mem := newService(2024)

	require.NoError(t, svc.UpdateRevenu(0, models.RevenuActivite, d(3000)))
	assert.True(t, d(3000).Equal(svc.Month(0).Revenus.Activite))

	// A fresh service re-reads the persisted value.
	repo := store.NewRepository(mem, &logging.MockLogger{})
	reloaded := budget.NewService(repo, 2024, &logging.MockLogger{})
	assert.True(t, d(3000).Equal(reloaded.Month(0).Revenus.Activite))
}

func TestUpdateRevenuUnknownCategory(t *testing.T) {
	svc, mem := newService(2024)

	err := svc.UpdateRevenu(0, "loyer", d(100))
	require.Error(t, err)
	assert.Equal(t, 0, mem.Len(), "nothing is persisted on a rejected edit")
}

func TestUpdateSortie(t *testing.T) {
	svc, _ := newService(2024)

	require.NoError(t, svc.UpdateSortie(3, models.CategorieBesoins, models.BesoinsFixes, d(1200)))
	assert.True(t, d(1200).Equal(svc.Month(3).Sorties.Besoins.Fixes))

	assert.Error(t, svc.UpdateSortie(3, models.CategorieBesoins, "inconnue", d(1)))
}

func TestUpdateLevierClamped(t *testing.T) {
	svc, _ := newService(2024)

	require.NoError(t, svc.UpdateLevier(0, d(1.4)))
	assert.True(t, d(1).Equal(svc.Month(0).Levier))

	require.NoError(t, svc.UpdateLevier(0, d(-0.2)))
	assert.True(t, svc.Month(0).Levier.IsZero())
}

func TestUpdatePatrimoineAndSoldes(t *testing.T) {
	svc, _ := newService(2024)

	require.NoError(t, svc.UpdatePatrimoine(2, models.InstrumentPEA, d(1500)))
	assert.True(t, d(1500).Equal(svc.Month(2).Patrimoine.PEA))
	assert.Error(t, svc.UpdatePatrimoine(2, "bitcoin", d(1)))

	require.NoError(t, svc.UpdateSoldeInitial(models.InstrumentLEP, d(100)))
	assert.True(t, d(100).Equal(svc.SoldesInitiaux().LEP))
}

func TestSelectYearSwitchesData(t *testing.T) {
	svc, mem := newService(2023)
	require.NoError(t, svc.UpdateRevenu(0, models.RevenuActivite, d(1000)))

	require.NoError(t, svc.SelectYear(2024))
	assert.Equal(t, 2024, svc.Year())
	assert.True(t, svc.Month(0).Revenus.Activite.IsZero())

	repo := store.NewRepository(mem, &logging.MockLogger{})
	assert.Equal(t, 2024, repo.SelectedYear(1970), "selection is persisted")

	require.NoError(t, svc.SelectYear(2023))
	assert.True(t, d(1000).Equal(svc.Month(0).Revenus.Activite))
}

func TestApplyBankImportCommitsBoth(t *testing.T) {
	svc, _ := newService(2024)

	months := models.NewYear()
	months[0].Revenus.Activite = d(2500)
	txs := []models.Transaction{{ID: "t1", Month: 0, Section: models.SectionRevenus}}

	require.NoError(t, svc.ApplyBankImport(months, txs))
	assert.True(t, d(2500).Equal(svc.Month(0).Revenus.Activite))
	assert.Len(t, svc.Transactions(), 1)
}

func TestApplyBankImportFailureKeepsMemoryState(t *testing.T) {
	svc, mem := newService(2024)
	require.NoError(t, svc.UpdateRevenu(0, models.RevenuActivite, d(111)))

	mem.SetError = errors.New("disk full")
	months := models.NewYear()
	months[0].Revenus.Activite = d(9999)

	err := svc.ApplyBankImport(months, nil)
	require.Error(t, err)
	assert.True(t, d(111).Equal(svc.Month(0).Revenus.Activite), "failed commit leaves state untouched")
}

func TestApplyLivretsImport(t *testing.T) {
	svc, _ := newService(2024)

	months := models.NewYear()
	months[5].Patrimoine.LivretA = d(800)
	soldes := models.SoldesInitiaux{LivretA: d(500)}

	require.NoError(t, svc.ApplyLivretsImport(months, soldes))
	assert.True(t, d(800).Equal(svc.Month(5).Patrimoine.LivretA))
	assert.True(t, d(500).Equal(svc.SoldesInitiaux().LivretA))
}

func TestSetObjectifsAndPrevu(t *testing.T) {
	svc, mem := newService(2024)

	objectifs := svc.Objectifs()
	objectifs.SeuilDettes = d(12)
	require.NoError(t, svc.SetObjectifs(objectifs))

	var prevu models.BudgetPrevu
	prevu.Revenus.Activite = d(3200)
	require.NoError(t, svc.SetBudgetPrevu(prevu))

	repo := store.NewRepository(mem, &logging.MockLogger{})
	reloaded := budget.NewService(repo, 2024, &logging.MockLogger{})
	assert.True(t, d(12).Equal(reloaded.Objectifs().SeuilDettes))
	assert.True(t, d(3200).Equal(reloaded.BudgetPrevu().Revenus.Activite))
}

func TestResetYear(t *testing.T) {
	svc, _ := newService(2024)

	require.NoError(t, svc.UpdateRevenu(0, models.RevenuActivite, d(3000)))
	require.NoError(t, svc.UpdateSoldeInitial(models.InstrumentLEP, d(100)))
	require.NoError(t, svc.ApplyBankImport(svc.Months(), []models.Transaction{{ID: "t1"}}))

	objectifs := svc.Objectifs()
	objectifs.LEP = d(9000)
	require.NoError(t, svc.SetObjectifs(objectifs))

	require.NoError(t, svc.ResetYear())

	assert.True(t, svc.Month(0).Revenus.Activite.IsZero())
	assert.Nil(t, svc.Transactions())
	assert.True(t, svc.SoldesInitiaux().LEP.IsZero())
	assert.True(t, d(9000).Equal(svc.Objectifs().LEP), "objectives survive a reset")
}
