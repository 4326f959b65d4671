// Package cascade handles the envelope cascade reporting command
package cascade

import (
	"fmt"

	"github.com/smalldjo-coder/Budget-Manager-v2/cmd/root"
	calc "github.com/smalldjo-coder/Budget-Manager-v2/internal/cascade"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/models"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var month int

// Cmd represents the cascade command
var Cmd = &cobra.Command{
	Use:   "cascade",
	Short: "Compute the envelope cascade for a month or the whole year",
	Long: `Compute the besoins/dettes/epargne/envies cascade from the working
year's months. With --month it prints one month in detail, otherwise a
per-month summary with cumulative savings and annual totals.`,
	RunE: cascadeFunc,
}

func init() {
	Cmd.Flags().IntVarP(&month, "month", "m", 0, "Month to detail (1-12, 0 for the annual view)")
}

func cascadeFunc(cmd *cobra.Command, args []string) error {
	if month < 0 || month > 12 {
		return fmt.Errorf("invalid month %d: must be between 1 and 12", month)
	}

	months := root.Svc.Months()
	objectifs := root.Svc.Objectifs()

	if month > 0 {
		printMonth(models.Months[month-1], calc.ComputeMonth(months[month-1], objectifs))
		return nil
	}

	summaries := calc.EpargnesCumulees(calc.ComputeAllMonths(months))
	stats := calc.AnnualStats(summaries, root.Svc.BudgetPrevu())

	fmt.Printf("Cascade %d\n\n", root.Svc.Year())
	fmt.Printf("%-10s %10s %10s %10s %10s %10s %10s %12s\n",
		"Mois", "CA", "Besoins", "Dettes", "Epargne", "Envies", "Solde", "Ep. cumulee")
	for _, s := range summaries {
		fmt.Printf("%-10s %10s %10s %10s %10s %10s %10s %12s\n",
			s.Mois, money(s.CA), money(s.Besoins), money(s.Dettes),
			money(s.Epargne), money(s.Envies), money(s.SoldeFinal), money(s.EpargneCumulee))
	}

	fmt.Printf("\n%-10s %10s %10s %10s %10s %10s %10s\n",
		"", "Revenus", "Besoins", "Dettes", "Epargne", "Envies", "Solde")
	fmt.Printf("%-10s %10s %10s %10s %10s %10s %10s\n",
		"Realise", money(stats.Realise.Revenus), money(stats.Realise.Besoins),
		money(stats.Realise.Dettes), money(stats.Realise.Epargne),
		money(stats.Realise.Envies), money(stats.Realise.Solde))
	fmt.Printf("%-10s %10s %10s %10s %10s %10s %10s\n",
		"Prevu", money(stats.Prevu.Revenus), money(stats.Prevu.Besoins),
		money(stats.Prevu.Dettes), money(stats.Prevu.Epargne),
		money(stats.Prevu.Envies), money(stats.Prevu.Solde))
	return nil
}

func printMonth(monthName string, result models.CascadeResult) {
	fmt.Printf("Cascade %s\n\n", monthName)
	fmt.Printf("CA                 %12s\n\n", money(result.CA))

	fmt.Printf("Besoins            %12s  (%s)%s\n", money(result.TotalBesoins), pct(result.PctBesoins), "")
	fmt.Printf("Solde apres        %12s\n\n", money(result.SoldeApresBesoins))

	fmt.Printf("Dettes             %12s  (%s)%s\n", money(result.TotalDettes), pct(result.PctDettes), alert(result.AlerteDettes))
	fmt.Printf("Seuil max dettes   %12s\n", money(result.SeuilMaxDettes))
	fmt.Printf("Solde apres        %12s\n\n", money(result.SoldeApresDettes))

	fmt.Printf("Epargne            %12s  (%s)%s%s\n", money(result.TotalEpargne), pct(result.PctEpargne),
		alert(result.AlerteEpargneMin), alert(result.AlerteEpargneMax))
	fmt.Printf("Objectif epargne   %12s  (%s)\n", money(result.EpargneObjectif), pct(result.PctEpargneObjectif))
	fmt.Printf("Solde apres        %12s\n\n", money(result.SoldeApresEpargne))

	fmt.Printf("Envies             %12s  (%s)%s\n", money(result.TotalEnvies), pct(result.PctEnvies), alert(result.AlerteEnviesMax))
	fmt.Printf("Objectif envies    %12s  (%s)\n\n", money(result.EnviesObjectif), pct(result.PctEnviesObjectif))

	fmt.Printf("Solde final        %12s\n", money(result.SoldeFinal))
	fmt.Printf("Sante              %12d/100\n", result.HealthScore)
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func pct(d decimal.Decimal) string {
	return d.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}

func alert(on bool) string {
	if on {
		return "  [!]"
	}
	return ""
}
