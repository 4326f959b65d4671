// Package livrets handles the savings-instrument CSV import command
package livrets

import (
	"github.com/smalldjo-coder/Budget-Manager-v2/cmd/root"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/importer"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the import-livrets command
var Cmd = &cobra.Command{
	Use:   "import-livrets",
	Short: "Import a savings-instrument CSV and rebuild monthly balances",
	Long: `Import a multi-year export of savings-instrument operations
(versements, retraits, interets), replay them chronologically and
rewrite the working year's opening balances and month-end patrimoine.`,
	RunE: importFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.SharedFlags.Input, "input", "i", "", "Input CSV file (required)")
	_ = Cmd.MarkFlagRequired("input")
}

func importFunc(cmd *cobra.Command, args []string) error {
	root.Log.WithField(logging.FieldFile, root.SharedFlags.Input).Info("Import livrets command called")

	imp := importer.New(root.Cfg, root.Log)
	text, err := imp.ReadFile(root.SharedFlags.Input)
	if err != nil {
		return err
	}

	result, err := imp.ImportLivrets(text, root.SharedFlags.Input, root.Svc.Year(), root.Svc.Months())
	if err != nil {
		return err
	}

	if err := root.Svc.ApplyLivretsImport(result.Months, result.Soldes); err != nil {
		return err
	}

	root.Log.WithFields(
		logging.F(logging.FieldYear, root.Svc.Year()),
		logging.F("prior_year_ops", result.PriorYearOps),
		logging.F("target_year_ops", result.TargetYearOps),
	).Info("Livrets import completed successfully")
	return nil
}
