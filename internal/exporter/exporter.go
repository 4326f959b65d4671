// Package exporter writes the round-trip budget CSV and the transactions
// CSV. Files are written UTF-8 with a byte-order mark so spreadsheet tools
// open them with the right encoding.
package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/smalldjo-coder/Budget-Manager-v2/internal/logging"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/models"
)

const utf8BOM = "\ufeff"

// Exporter renders application data to CSV files.
type Exporter struct {
	delimiter rune
	logger    logging.Logger
}

// New creates an Exporter with the given field delimiter.
func New(delimiter rune, logger logging.Logger) *Exporter {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Exporter{delimiter: delimiter, logger: logger}
}

// BudgetCSVRow is one month of the round-trip format. The column names are
// part of the format contract; the importer matches them literally.
type BudgetCSVRow struct {
	Mois                string `csv:"Mois"`
	RevenusActivite     string `csv:"Revenus_Activite"`
	RevenusSociaux      string `csv:"Revenus_Sociaux"`
	RevenusInterets     string `csv:"Revenus_Interets"`
	FluxInternes        string `csv:"Flux_Internes"`
	BesoinsFixes        string `csv:"Besoins_Fixes"`
	BesoinsVariables    string `csv:"Besoins_Variables"`
	BesoinsNecessite    string `csv:"Besoins_Necessite"`
	DettesCreditImmo    string `csv:"Dettes_CreditImmo"`
	DettesCreditAuto    string `csv:"Dettes_CreditAuto"`
	DettesAutres        string `csv:"Dettes_Autres"`
	EpargneLivret       string `csv:"Epargne_Livret"`
	EpargnePlacement    string `csv:"Epargne_Placement"`
	EpargneInvestPerso  string `csv:"Epargne_InvestPerso"`
	EnviesFourmilles    string `csv:"Envies_Fourmilles"`
	EnviesOccasionnel   string `csv:"Envies_Occasionnel"`
	PatrimoineLEP       string `csv:"Patrimoine_LEP"`
	PatrimoineLivretA   string `csv:"Patrimoine_LivretA"`
	PatrimoinePEA       string `csv:"Patrimoine_PEA"`
	Levier              string `csv:"Levier"`
}

// BudgetRows converts a year of month records to export rows.
func BudgetRows(months [12]models.MonthRecord) []*BudgetCSVRow {
	rows := make([]*BudgetCSVRow, 0, 12)
	for i, m := range months {
		rows = append(rows, &BudgetCSVRow{
			Mois:               models.Months[i],
			RevenusActivite:    m.Revenus.Activite.StringFixed(2),
			RevenusSociaux:     m.Revenus.Sociaux.StringFixed(2),
			RevenusInterets:    m.Revenus.Interets.StringFixed(2),
			FluxInternes:       m.Revenus.FluxInternes.StringFixed(2),
			BesoinsFixes:       m.Sorties.Besoins.Fixes.StringFixed(2),
			BesoinsVariables:   m.Sorties.Besoins.Variables.StringFixed(2),
			BesoinsNecessite:   m.Sorties.Besoins.Necessite.StringFixed(2),
			DettesCreditImmo:   m.Sorties.Dettes.CreditImmo.StringFixed(2),
			DettesCreditAuto:   m.Sorties.Dettes.CreditAuto.StringFixed(2),
			DettesAutres:       m.Sorties.Dettes.Autres.StringFixed(2),
			EpargneLivret:      m.Sorties.Epargne.Livret.StringFixed(2),
			EpargnePlacement:   m.Sorties.Epargne.Placement.StringFixed(2),
			EpargneInvestPerso: m.Sorties.Epargne.InvestPerso.StringFixed(2),
			EnviesFourmilles:   m.Sorties.Envies.Fourmilles.StringFixed(2),
			EnviesOccasionnel:  m.Sorties.Envies.Occasionnel.StringFixed(2),
			PatrimoineLEP:      m.Patrimoine.LEP.StringFixed(2),
			PatrimoineLivretA:  m.Patrimoine.LivretA.StringFixed(2),
			PatrimoinePEA:      m.Patrimoine.PEA.StringFixed(2),
			Levier:             m.Levier.String(),
		})
	}
	return rows
}

// ExportBudget writes the round-trip budget CSV for a year.
func (e *Exporter) ExportBudget(months [12]models.MonthRecord, filePath string) error {
	rows := BudgetRows(months)
	content, err := e.marshal(&rows)
	if err != nil {
		return fmt.Errorf("marshal budget CSV: %w", err)
	}
	return e.writeFile(filePath, content)
}

// TransactionCSVRow is one classified transaction in the export.
type TransactionCSVRow struct {
	Date          string `csv:"Date"`
	Compte        string `csv:"Compte"`
	Nom           string `csv:"Nom"`
	Montant       string `csv:"Montant"`
	Mois          string `csv:"Mois"`
	Section       string `csv:"Section"`
	Categorie     string `csv:"Categorie"`
	SousCategorie string `csv:"SousCategorie"`
}

// ExportTransactions writes the classified transaction list of a year.
func (e *Exporter) ExportTransactions(txs []models.Transaction, filePath string) error {
	rows := make([]*TransactionCSVRow, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, &TransactionCSVRow{
			Date:          tx.Date.Format("02/01/2006"),
			Compte:        tx.Label,
			Nom:           tx.Payee,
			Montant:       tx.Amount.StringFixed(2),
			Mois:          models.Months[tx.Month],
			Section:       tx.Section,
			Categorie:     tx.Category,
			SousCategorie: tx.Subcategory,
		})
	}
	content, err := e.marshal(&rows)
	if err != nil {
		return fmt.Errorf("marshal transactions CSV: %w", err)
	}
	return e.writeFile(filePath, content)
}

func (e *Exporter) marshal(rows interface{}) (string, error) {
	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		w := csv.NewWriter(out)
		w.Comma = e.delimiter
		return gocsv.NewSafeCSVWriter(w)
	})
	defer gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		return gocsv.NewSafeCSVWriter(csv.NewWriter(out))
	})
	return gocsv.MarshalString(rows)
}

func (e *Exporter) writeFile(filePath, content string) error {
	if err := os.WriteFile(filePath, []byte(utf8BOM+content), 0644); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	e.logger.Info("Export written",
		logging.Field{Key: logging.FieldFile, Value: filePath})
	return nil
}

// DefaultBudgetFileName names an export after its year and the current day.
func DefaultBudgetFileName(year int) string {
	return fmt.Sprintf("budget_%d_%s.csv", year, time.Now().Format("2006-01-02"))
}
