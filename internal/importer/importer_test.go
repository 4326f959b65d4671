package importer_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/smalldjo-coder/Budget-Manager-v2/internal/config"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/importer"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/logging"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.CSV.Delimiter = ";"
	cfg.Import.MaxFileSizeMB = 10
	cfg.Import.MaxAmount = 1_000_000_000
	cfg.Import.LivretInterestAsIncome = true
	return cfg
}

func newImporter() (*importer.Importer, *logging.MockLogger) {
	log := &logging.MockLogger{}
	return importer.New(testConfig(), log), log
}

func TestReadFile(t *testing.T) {
	imp, _ := newImporter()

	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(path, []byte("\ufeffCompte;Montant\n"), 0o644))

	text, err := imp.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Compte;Montant\n", text, "byte-order mark is stripped")
}

func TestReadFileMissing(t *testing.T) {
	imp, _ := newImporter()

	_, err := imp.ReadFile(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestReadFileTooLarge(t *testing.T) {
	cfg := testConfig()
	cfg.Import.MaxFileSizeMB = 1
	imp := importer.New(cfg, &logging.MockLogger{})

	path := filepath.Join(t.TempDir(), "big.csv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("x", 1024*1024+1)), 0o644))

	_, err := imp.ReadFile(path)
	require.Error(t, err)
	var tooLarge *parsererror.FileTooLargeError
	assert.ErrorAs(t, err, &tooLarge)
	assert.Equal(t, path, tooLarge.FilePath)
	assert.Equal(t, int64(1024*1024), tooLarge.Limit)
}
