// Package prevu handles the planned-budget display and update command
package prevu

import (
	"fmt"

	"github.com/smalldjo-coder/Budget-Manager-v2/cmd/root"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	revenusActivite  float64
	revenusSociaux   float64
	revenusInterets  float64
	besoinsFixes     float64
	besoinsVariables float64
	dettes           float64
	epargne          float64
	envies           float64
)

// Cmd represents the prevu command
var Cmd = &cobra.Command{
	Use:   "prevu",
	Short: "Show or update the planned monthly budget of the working year",
	Long: `Show the planned monthly income and envelope totals that the annual
cascade view compares realised figures against. Any flag that is set
updates the stored plan for the working year.`,
	RunE: prevuFunc,
}

func init() {
	Cmd.Flags().Float64Var(&revenusActivite, "revenus-activite", 0, "Planned monthly activity income")
	Cmd.Flags().Float64Var(&revenusSociaux, "revenus-sociaux", 0, "Planned monthly social income")
	Cmd.Flags().Float64Var(&revenusInterets, "revenus-interets", 0, "Planned monthly interest income")
	Cmd.Flags().Float64Var(&besoinsFixes, "besoins-fixes", 0, "Planned monthly fixed needs")
	Cmd.Flags().Float64Var(&besoinsVariables, "besoins-variables", 0, "Planned monthly variable needs")
	Cmd.Flags().Float64Var(&dettes, "dettes", 0, "Planned monthly debt total")
	Cmd.Flags().Float64Var(&epargne, "epargne", 0, "Planned monthly savings total")
	Cmd.Flags().Float64Var(&envies, "envies", 0, "Planned monthly wants total")
}

func prevuFunc(cmd *cobra.Command, args []string) error {
	prevu := root.Svc.BudgetPrevu()

	changed := false
	set := func(name string, dst *decimal.Decimal, value float64) {
		if cmd.Flags().Changed(name) {
			*dst = decimal.NewFromFloat(value).Round(2)
			changed = true
		}
	}
	set("revenus-activite", &prevu.Revenus.Activite, revenusActivite)
	set("revenus-sociaux", &prevu.Revenus.Sociaux, revenusSociaux)
	set("revenus-interets", &prevu.Revenus.Interets, revenusInterets)
	set("besoins-fixes", &prevu.Besoins.Fixes, besoinsFixes)
	set("besoins-variables", &prevu.Besoins.Variables, besoinsVariables)
	set("dettes", &prevu.Dettes.Total, dettes)
	set("epargne", &prevu.Epargne.Total, epargne)
	set("envies", &prevu.Envies.Total, envies)

	if changed {
		if err := root.Svc.SetBudgetPrevu(prevu); err != nil {
			return err
		}
		root.Log.Info("Planned budget updated successfully")
	}

	revenus := prevu.Revenus.Activite.Add(prevu.Revenus.Sociaux).Add(prevu.Revenus.Interets)
	besoins := prevu.Besoins.Fixes.Add(prevu.Besoins.Variables)
	solde := revenus.Sub(besoins).Sub(prevu.Dettes.Total).Sub(prevu.Epargne.Total).Sub(prevu.Envies.Total)

	fmt.Printf("Budget prevu %d (mensuel)\n\n", root.Svc.Year())
	fmt.Printf("%-20s %12s\n", "Revenus activite", prevu.Revenus.Activite.StringFixed(2))
	fmt.Printf("%-20s %12s\n", "Revenus sociaux", prevu.Revenus.Sociaux.StringFixed(2))
	fmt.Printf("%-20s %12s\n", "Revenus interets", prevu.Revenus.Interets.StringFixed(2))
	fmt.Printf("%-20s %12s\n", "Besoins fixes", prevu.Besoins.Fixes.StringFixed(2))
	fmt.Printf("%-20s %12s\n", "Besoins variables", prevu.Besoins.Variables.StringFixed(2))
	fmt.Printf("%-20s %12s\n", "Dettes", prevu.Dettes.Total.StringFixed(2))
	fmt.Printf("%-20s %12s\n", "Epargne", prevu.Epargne.Total.StringFixed(2))
	fmt.Printf("%-20s %12s\n", "Envies", prevu.Envies.Total.StringFixed(2))
	fmt.Printf("\n%-20s %12s\n", "Solde prevu", solde.StringFixed(2))
	return nil
}
