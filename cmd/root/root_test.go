package root_test

import (
	"testing"

	"github.com/smalldjo-coder/Budget-Manager-v2/cmd/root"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "budget-manager", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "household envelope budget")
	assert.Contains(t, root.Cmd.Long, "cascade")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRunE)
	assert.NotNil(t, root.Cmd.PersistentPostRun)
}

func TestRootCommand_Run(t *testing.T) {
	cmd := &cobra.Command{}

	assert.NotPanics(t, func() {
		root.Cmd.Run(cmd, []string{})
	})
}

func TestRootCommand_YearFlag(t *testing.T) {
	// Init() may have been called by main already; only register once.
	if root.Cmd.PersistentFlags().Lookup("year") == nil {
		root.Init()
	}

	yearFlag := root.Cmd.PersistentFlags().Lookup("year")
	assert.NotNil(t, yearFlag)
	assert.Equal(t, "y", yearFlag.Shorthand)
	assert.Equal(t, "0", yearFlag.DefValue)
	assert.NotEmpty(t, yearFlag.Usage)
}

func TestCommonFlags_Structure(t *testing.T) {
	flags := root.CommonFlags{
		Input:  "budget.csv",
		Output: "export.csv",
	}

	assert.Equal(t, "budget.csv", flags.Input)
	assert.Equal(t, "export.csv", flags.Output)
}

func TestSharedFlags_Access(t *testing.T) {
	originalInput := root.SharedFlags.Input
	originalOutput := root.SharedFlags.Output

	root.SharedFlags.Input = "modified.csv"
	root.SharedFlags.Output = "modified-out.csv"

	assert.Equal(t, "modified.csv", root.SharedFlags.Input)
	assert.Equal(t, "modified-out.csv", root.SharedFlags.Output)

	root.SharedFlags.Input = originalInput
	root.SharedFlags.Output = originalOutput
}

func TestRootCommand_PersistentPostRun(t *testing.T) {
	testCmd := &cobra.Command{}

	// No store has been opened in this process; PostRun must tolerate that.
	assert.NotPanics(t, func() {
		root.Cmd.PersistentPostRun(testCmd, []string{})
	})
}

func TestGlobalVariables_Initialization(t *testing.T) {
	assert.NotNil(t, root.Log)
	assert.NotNil(t, root.Cmd)
	assert.NotNil(t, &root.SharedFlags)
}
