// Package saisie handles manual edits of a single month field
package saisie

import (
	"fmt"
	"strings"

	"github.com/smalldjo-coder/Budget-Manager-v2/cmd/root"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/logging"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/models"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	month        int
	revenu       string
	sortie       string
	patrimoine   string
	soldeInitial string
	montant      float64
	levier       float64
)

// Cmd represents the saisie command
var Cmd = &cobra.Command{
	Use:   "saisie",
	Short: "Manually set one budget field of a month",
	Long: `Overwrite a single field of the working year: a revenue category,
an outflow envelope subcategory, an instrument balance, the levier of a
month, or an instrument's opening balance.

Examples:
  budget-manager saisie -m 3 --revenu activite --montant 2500
  budget-manager saisie -m 3 --sortie besoins/fixes --montant 1200
  budget-manager saisie -m 3 --patrimoine lep --montant 5000
  budget-manager saisie -m 3 --levier 0.6
  budget-manager saisie --solde-initial lep --montant 100`,
	RunE: saisieFunc,
}

func init() {
	Cmd.Flags().IntVarP(&month, "month", "m", 0, "Month to edit (1-12)")
	Cmd.Flags().StringVar(&revenu, "revenu", "", "Revenue category to set (activite, sociaux, interets, fluxInternes)")
	Cmd.Flags().StringVar(&sortie, "sortie", "", "Outflow to set, as category/subcategory (e.g. besoins/fixes)")
	Cmd.Flags().StringVar(&patrimoine, "patrimoine", "", "Instrument balance to set (lep, livretA, pea)")
	Cmd.Flags().StringVar(&soldeInitial, "solde-initial", "", "Instrument opening balance to set (lep, livretA, pea)")
	Cmd.Flags().Float64Var(&montant, "montant", 0, "Amount to store")
	Cmd.Flags().Float64Var(&levier, "levier", 0, "Savings/wants split ratio for the month (0-1)")
}

func saisieFunc(cmd *cobra.Command, args []string) error {
	targets := 0
	for _, name := range []string{"revenu", "sortie", "patrimoine", "solde-initial", "levier"} {
		if cmd.Flags().Changed(name) {
			targets++
		}
	}
	if targets != 1 {
		return fmt.Errorf("exactly one of --revenu, --sortie, --patrimoine, --solde-initial or --levier must be set")
	}

	amount := decimal.NewFromFloat(montant)

	if soldeInitial != "" {
		if err := root.Svc.UpdateSoldeInitial(soldeInitial, amount); err != nil {
			return err
		}
		root.Log.Info("Opening balance updated",
			logging.F(logging.FieldInstrument, soldeInitial))
		return nil
	}

	if month < 1 || month > 12 {
		return fmt.Errorf("invalid month %d: must be between 1 and 12", month)
	}
	monthName := models.Months[month-1]

	switch {
	case revenu != "":
		if err := root.Svc.UpdateRevenu(month-1, revenu, amount); err != nil {
			return err
		}
	case sortie != "":
		category, subcategory, ok := strings.Cut(sortie, "/")
		if !ok {
			return fmt.Errorf("invalid outflow %q: expected category/subcategory", sortie)
		}
		if err := root.Svc.UpdateSortie(month-1, category, subcategory, amount); err != nil {
			return err
		}
	case patrimoine != "":
		if err := root.Svc.UpdatePatrimoine(month-1, patrimoine, amount); err != nil {
			return err
		}
	default:
		if err := root.Svc.UpdateLevier(month-1, decimal.NewFromFloat(levier)); err != nil {
			return err
		}
	}

	root.Log.Info("Month updated", logging.F(logging.FieldMonth, monthName))
	return nil
}
