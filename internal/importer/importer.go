// Package importer contains the orchestrators that feed the tokenizer, the
// parsers and the classifier, and accumulate their output into the month
// records or the reconciliation engine.
//
// Imports are synchronous and all-or-nothing: the whole file is read into
// memory before parsing, results are built in local accumulators, and the
// caller commits them in one atomic year replacement. A failed import never
// mutates stored state.
package importer

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/smalldjo-coder/Budget-Manager-v2/internal/config"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/logging"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/parsererror"
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/tokenizer"
)

// Importer runs the import pipelines with the configured limits.
type Importer struct {
	cfg    *config.Config
	logger logging.Logger
}

// New creates an Importer.
func New(cfg *config.Config, logger logging.Logger) *Importer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Importer{cfg: cfg, logger: logger}
}

// ReadFile loads a whole export file, rejecting oversized files before any
// parsing and stripping a UTF-8 byte-order mark.
func (i *Importer) ReadFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("cannot stat file: %w", err)
	}
	if limit := i.cfg.MaxFileBytes(); info.Size() > limit {
		return "", &parsererror.FileTooLargeError{FilePath: path, Size: info.Size(), Limit: limit}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot read file: %w", err)
	}
	return strings.TrimPrefix(string(data), "\ufeff"), nil
}

// tokenize runs the tokenizer with the configured delimiter.
func (i *Importer) tokenize(text string) [][]string {
	return tokenizer.Tokenize(text, i.cfg.Delimiter())
}

// headerIndex finds a column by fuzzy header match (substring,
// case-insensitive), with a hard-coded fallback when no header matches.
func headerIndex(headers []string, name string, fallback int) int {
	lower := strings.ToLower(name)
	for idx, h := range headers {
		if strings.Contains(strings.ToLower(h), lower) {
			return idx
		}
	}
	return fallback
}

// fieldAt returns the field at idx, or "" when the row is too short.
func fieldAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// implausible reports whether an amount exceeds the configured ceiling.
func (i *Importer) implausible(amount decimal.Decimal) bool {
	return amount.Abs().GreaterThan(i.cfg.MaxAmount())
}
