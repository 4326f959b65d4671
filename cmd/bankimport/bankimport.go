// Package bankimport handles the bank CSV import command
package bankimport

import (
	"github.com/smalldjo-coder/Budget-Manager-v2/cmd/root"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/importer"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the import-bank command
var Cmd = &cobra.Command{
	Use:   "import-bank",
	Short: "Import a bank CSV and classify its rows into envelopes",
	Long: `Import a raw bank export, classify each row by its label keywords
and add the mapped amounts to the working year's monthly envelopes.
Rows outside the working year are skipped.`,
	RunE: importFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.SharedFlags.Input, "input", "i", "", "Input CSV file (required)")
	_ = Cmd.MarkFlagRequired("input")
}

func importFunc(cmd *cobra.Command, args []string) error {
	root.Log.WithField(logging.FieldFile, root.SharedFlags.Input).Info("Import bank command called")

	imp := importer.New(root.Cfg, root.Log)
	text, err := imp.ReadFile(root.SharedFlags.Input)
	if err != nil {
		return err
	}

	result, err := imp.ImportBank(text, root.SharedFlags.Input, root.Svc.Year())
	if err != nil {
		return err
	}

	if err := root.Svc.ApplyBankImport(result.Months, result.Transactions); err != nil {
		return err
	}

	root.Log.WithFields(
		logging.F(logging.FieldYear, root.Svc.Year()),
		logging.F(logging.FieldCount, len(result.Transactions)),
	).Info("Bank import completed successfully")
	return nil
}
