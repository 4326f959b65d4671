// Package exportcmd handles the CSV export commands
package exportcmd

import (
	"fmt"

	"github.com/smalldjo-coder/Budget-Manager-v2/cmd/root"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/exporter"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/logging"

	"github.com/spf13/cobra"
)

var transactions bool

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the working year to CSV",
	Long: `Export the working year's budget months as a round-trippable CSV,
or its imported transactions with --transactions.`,
	RunE: exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.SharedFlags.Output, "output", "o", "", "Output CSV file (defaults to budget_<year>_<date>.csv)")
	Cmd.Flags().BoolVarP(&transactions, "transactions", "t", false, "Export transactions instead of budget months")
}

func exportFunc(cmd *cobra.Command, args []string) error {
	exp := exporter.New(root.Cfg.Delimiter(), root.Log)

	output := root.SharedFlags.Output
	if output == "" {
		output = exporter.DefaultBudgetFileName(root.Svc.Year())
	}

	if transactions {
		txs := root.Svc.Transactions()
		if len(txs) == 0 {
			return fmt.Errorf("no transactions to export for year %d", root.Svc.Year())
		}
		if err := exp.ExportTransactions(txs, output); err != nil {
			return err
		}
		root.Log.WithFields(
			logging.F(logging.FieldFile, output),
			logging.F(logging.FieldCount, len(txs)),
		).Info("Transactions export completed successfully")
		return nil
	}

	if err := exp.ExportBudget(root.Svc.Months(), output); err != nil {
		return err
	}
	root.Log.WithFields(
		logging.F(logging.FieldFile, output),
		logging.F(logging.FieldYear, root.Svc.Year()),
	).Info("Budget export completed successfully")
	return nil
}
