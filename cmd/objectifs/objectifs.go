// Package objectifs handles the objectives display and update command
package objectifs

import (
	"fmt"

	"github.com/smalldjo-coder/Budget-Manager-v2/cmd/root"
	calc "github.com/smalldjo-coder/Budget-Manager-v2/internal/cascade"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	lep         float64
	livretA     float64
	pea         float64
	seuilDettes float64
	epargneMin  float64
	epargneMax  float64
	enviesMin   float64
	enviesMax   float64
	alertes     bool
)

// Cmd represents the objectifs command
var Cmd = &cobra.Command{
	Use:   "objectifs",
	Short: "Show or update savings targets and cascade thresholds",
	Long: `Show the configured instrument targets and cascade alert thresholds,
together with income-derived recommendations for the working year.
Any flag that is set updates the stored objectives.`,
	RunE: objectifsFunc,
}

func init() {
	Cmd.Flags().Float64Var(&lep, "lep", 0, "LEP target amount")
	Cmd.Flags().Float64Var(&livretA, "livret-a", 0, "Livret A target amount")
	Cmd.Flags().Float64Var(&pea, "pea", 0, "PEA target amount")
	Cmd.Flags().Float64Var(&seuilDettes, "seuil-dettes", 0, "Debt alert threshold in percent of activity income")
	Cmd.Flags().Float64Var(&epargneMin, "epargne-min", 0, "Minimum savings rate in percent of income")
	Cmd.Flags().Float64Var(&epargneMax, "epargne-max", 0, "Maximum savings rate in percent of income")
	Cmd.Flags().Float64Var(&enviesMin, "envies-min", 0, "Minimum wants rate in percent of income")
	Cmd.Flags().Float64Var(&enviesMax, "envies-max", 0, "Maximum wants rate in percent of income")
	Cmd.Flags().BoolVar(&alertes, "alertes", true, "Enable threshold alerts")
}

func objectifsFunc(cmd *cobra.Command, args []string) error {
	objectifs := root.Svc.Objectifs()

	changed := false
	set := func(name string, dst *decimal.Decimal, value float64) {
		if cmd.Flags().Changed(name) {
			*dst = decimal.NewFromFloat(value).Round(2)
			changed = true
		}
	}
	set("lep", &objectifs.LEP, lep)
	set("livret-a", &objectifs.LivretA, livretA)
	set("pea", &objectifs.PEA, pea)
	set("seuil-dettes", &objectifs.SeuilDettes, seuilDettes)
	set("epargne-min", &objectifs.EpargneMin, epargneMin)
	set("epargne-max", &objectifs.EpargneMax, epargneMax)
	set("envies-min", &objectifs.EnviesMin, enviesMin)
	set("envies-max", &objectifs.EnviesMax, enviesMax)
	if cmd.Flags().Changed("alertes") {
		objectifs.AlertesActives = alertes
		changed = true
	}

	if changed {
		if err := root.Svc.SetObjectifs(objectifs); err != nil {
			return err
		}
		root.Log.Info("Objectifs updated successfully")
	}

	months := root.Svc.Months()
	recommended := calc.PatrimoineObjectifs(months)
	evolution := calc.PatrimoineEvolution(months)
	current := evolution[len(evolution)-1]

	fmt.Printf("Objectifs %d\n\n", root.Svc.Year())
	fmt.Printf("%-10s %12s %12s %12s\n", "Instrument", "Actuel", "Objectif", "Recommande")
	fmt.Printf("%-10s %12s %12s %12s\n", "LEP", current.LEP.StringFixed(2), objectifs.LEP.StringFixed(2), recommended.LEP.StringFixed(2))
	fmt.Printf("%-10s %12s %12s %12s\n", "Livret A", current.LivretA.StringFixed(2), objectifs.LivretA.StringFixed(2), recommended.LivretA.StringFixed(2))
	fmt.Printf("%-10s %12s %12s %12s\n", "PEA", current.PEA.StringFixed(2), objectifs.PEA.StringFixed(2), recommended.PEA.StringFixed(2))

	fmt.Printf("\nSeuil dettes    %6s%%\n", objectifs.SeuilDettes.StringFixed(0))
	fmt.Printf("Epargne         %5s%% - %s%%\n", objectifs.EpargneMin.StringFixed(0), objectifs.EpargneMax.StringFixed(0))
	fmt.Printf("Envies          %5s%% - %s%%\n", objectifs.EnviesMin.StringFixed(0), objectifs.EnviesMax.StringFixed(0))
	fmt.Printf("Alertes         %v\n", objectifs.AlertesActives)
	return nil
}
