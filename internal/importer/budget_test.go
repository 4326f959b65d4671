package importer_test

import (
	"strings"
	"testing"

	"github.com/smalldjo-coder/Budget-Manager-v2/internal/models"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/parsererror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

const budgetCSV = `Mois;Revenus_Activite;Revenus_Sociaux;Besoins_Fixes;Dettes_CreditImmo;Epargne_Livret;Envies_Occasionnel;Patrimoine_LEP;Levier
Janvier;3000,00;250,50;1200;550;400;150;5000;0.60
Février;2800;0;1100;550;300;100;5300;0
Pas un mois;1;2;3;4;5;6;7;8
`

func TestImportBudget(t *testing.T) {
	imp, _ := newImporter()

	result, err := imp.ImportBudget(budgetCSV, "budget.csv")
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)

	jan := result.Months[0]
	assert.True(t, d(3000).Equal(jan.Revenus.Activite))
	assert.True(t, d(250.50).Equal(jan.Revenus.Sociaux))
	assert.True(t, d(1200).Equal(jan.Sorties.Besoins.Fixes))
	assert.True(t, d(550).Equal(jan.Sorties.Dettes.CreditImmo))
	assert.True(t, d(400).Equal(jan.Sorties.Epargne.Livret))
	assert.True(t, d(150).Equal(jan.Sorties.Envies.Occasionnel))
	assert.True(t, d(5000).Equal(jan.Patrimoine.LEP))
	assert.True(t, d(0.60).Equal(jan.Levier))

	// Columns absent from the file stay zero.
	assert.True(t, jan.Revenus.Interets.IsZero())
	assert.True(t, jan.Sorties.Besoins.Variables.IsZero())
	assert.True(t, jan.Patrimoine.PEA.IsZero())

	// A zero levier falls back to the default split.
	fev := result.Months[1]
	assert.True(t, models.DefaultLevier.Equal(fev.Levier))

	// Unrecognized month rows are ignored; untouched months stay empty.
	mars := result.Months[2]
	assert.True(t, mars.Revenus.Activite.IsZero())
	assert.True(t, models.DefaultLevier.Equal(mars.Levier))
}

func TestImportBudgetMonthNameMatching(t *testing.T) {
	imp, _ := newImporter()

	csv := "Mois;Revenus_Activite\nDÉCEMBRE;1000\n"
	result, err := imp.ImportBudget(csv, "budget.csv")
	require.NoError(t, err)

	assert.Equal(t, 1, result.Imported)
	assert.True(t, d(1000).Equal(result.Months[11].Revenus.Activite))
}

func TestImportBudgetInvalidFormat(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{name: "empty file", csv: ""},
		{name: "header only", csv: "Mois;Revenus_Activite\n"},
		{name: "missing Mois column", csv: "Month;Revenus_Activite\nJanvier;100\n"},
		{name: "missing Revenus_Activite column", csv: "Mois;Revenus\nJanvier;100\n"},
	}

	imp, _ := newImporter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := imp.ImportBudget(tt.csv, "budget.csv")
			require.Error(t, err)
			var invalid *parsererror.InvalidFormatError
			assert.ErrorAs(t, err, &invalid)
		})
	}
}

func TestImportBudgetHeadersAreExact(t *testing.T) {
	imp, _ := newImporter()

	// A prefixed header must not be picked up by mistake.
	csv := strings.Join([]string{
		"Mois;Revenus_Activite;X_Besoins_Fixes",
		"Janvier;2000;999",
	}, "\n")

	result, err := imp.ImportBudget(csv, "budget.csv")
	require.NoError(t, err)
	assert.True(t, result.Months[0].Sorties.Besoins.Fixes.IsZero())
}
