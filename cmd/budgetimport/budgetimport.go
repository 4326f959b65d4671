// Package budgetimport handles the budget CSV import command
package budgetimport

import (
	"github.com/smalldjo-coder/Budget-Manager-v2/cmd/root"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/importer"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the import-budget command
var Cmd = &cobra.Command{
	Use:   "import-budget",
	Short: "Import a budget CSV into the working year",
	Long: `Import a semicolon-delimited budget CSV (one row per French month)
and replace the working year's months with its values.`,
	RunE: importFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.SharedFlags.Input, "input", "i", "", "Input CSV file (required)")
	_ = Cmd.MarkFlagRequired("input")
}

func importFunc(cmd *cobra.Command, args []string) error {
	root.Log.WithField(logging.FieldFile, root.SharedFlags.Input).Info("Import budget command called")

	imp := importer.New(root.Cfg, root.Log)
	text, err := imp.ReadFile(root.SharedFlags.Input)
	if err != nil {
		return err
	}

	result, err := imp.ImportBudget(text, root.SharedFlags.Input)
	if err != nil {
		return err
	}

	if err := root.Svc.ApplyBudgetImport(result.Months); err != nil {
		return err
	}

	root.Log.WithFields(
		logging.F(logging.FieldYear, root.Svc.Year()),
		logging.F(logging.FieldCount, result.Imported),
	).Info("Budget import completed successfully")
	return nil
}
