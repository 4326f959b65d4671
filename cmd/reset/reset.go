// Package reset handles the per-year data reset command
package reset

import (
	"fmt"

	"github.com/smalldjo-coder/Budget-Manager-v2/cmd/root"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/logging"

	"github.com/spf13/cobra"
)

var force bool

// Cmd represents the reset command
var Cmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase the working year's data",
	Long: `Erase months, transactions and opening balances for the working
year. Objectives and the planned budget are kept.`,
	RunE: resetFunc,
}

func init() {
	Cmd.Flags().BoolVarP(&force, "force", "f", false, "Reset without confirmation")
}

func resetFunc(cmd *cobra.Command, args []string) error {
	if !force {
		return fmt.Errorf("refusing to erase year %d without --force", root.Svc.Year())
	}

	if err := root.Svc.ResetYear(); err != nil {
		return err
	}

	root.Log.WithField(logging.FieldYear, root.Svc.Year()).Info("Year reset completed successfully")
	return nil
}
