package models

import (
	"github.com/smalldjo-coder/Budget-Manager-v2/internal/logging"
)

// ImportStats aggregates per-row accounting for one import run. Skipped rows
// are counted here instead of raised as errors.
type ImportStats struct {
	Total          int
	Mapped         int
	Unmapped       int
	SkippedYear    int
	UnmappedLabels []string
}

// RecordUnmapped counts a classification miss and remembers the label once.
func (s *ImportStats) RecordUnmapped(label string) {
	s.Unmapped++
	if label == "" {
		return
	}
	for _, l := range s.UnmappedLabels {
		if l == label {
			return
		}
	}
	s.UnmappedLabels = append(s.UnmappedLabels, label)
}

// MappedRate returns the share of classified rows as a percentage.
func (s ImportStats) MappedRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Mapped) / float64(s.Total) * 100.0
}

// LogSummary logs a one-line summary of the import.
func (s ImportStats) LogSummary(logger logging.Logger, source string) {
	if logger == nil {
		return
	}
	logger.Info("Import summary",
		logging.Field{Key: "source", Value: source},
		logging.Field{Key: "total", Value: s.Total},
		logging.Field{Key: "mapped", Value: s.Mapped},
		logging.Field{Key: "unmapped", Value: s.Unmapped},
		logging.Field{Key: "skipped_year", Value: s.SkippedYear},
		logging.Field{Key: "mapped_rate", Value: s.MappedRate()},
	)
}
