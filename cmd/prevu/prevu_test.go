package prevu_test

import (
	"testing"

	"github.com/smalldjo-coder/Budget-Manager-v2/cmd/prevu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrevuCommand_Metadata(t *testing.T) {
	assert.Equal(t, "prevu", prevu.Cmd.Use)
	assert.Contains(t, prevu.Cmd.Short, "planned monthly budget")
	assert.NotNil(t, prevu.Cmd.RunE)
}

func TestPrevuCommand_Flags(t *testing.T) {
	for _, name := range []string{
		"revenus-activite", "revenus-sociaux", "revenus-interets",
		"besoins-fixes", "besoins-variables", "dettes", "epargne", "envies",
	} {
		flag := prevu.Cmd.Flags().Lookup(name)
		require.NotNil(t, flag, name)
		assert.Equal(t, "0", flag.DefValue, name)
		assert.NotEmpty(t, flag.Usage, name)
	}
}
