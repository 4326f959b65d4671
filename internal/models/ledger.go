package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerOperation is a transient record used by the reconciliation engine.
// It is never persisted; it only lives for the duration of one import.
type LedgerOperation struct {
	Date       time.Time
	Year       int
	Month      int // 0-11 within Year
	Instrument string
	Kind       string // OpVersement, OpRetrait or OpInterets
	Amount     decimal.Decimal
}

// SoldesInitiaux holds the per-instrument balances at the instant before the
// target year begins, derived by replaying all earlier operations.
type SoldesInitiaux struct {
	LEP     decimal.Decimal `json:"lep"`
	LivretA decimal.Decimal `json:"livretA"`
	PEA     decimal.Decimal `json:"pea"`
}

// Get returns the balance for one instrument.
func (s SoldesInitiaux) Get(instrument string) decimal.Decimal {
	switch instrument {
	case InstrumentLEP:
		return s.LEP
	case InstrumentLivretA:
		return s.LivretA
	case InstrumentPEA:
		return s.PEA
	}
	return decimal.Zero
}

// Set overwrites the balance for one instrument, rounded.
func (s *SoldesInitiaux) Set(instrument string, balance decimal.Decimal) {
	switch instrument {
	case InstrumentLEP:
		s.LEP = Round2(balance)
	case InstrumentLivretA:
		s.LivretA = Round2(balance)
	case InstrumentPEA:
		s.PEA = Round2(balance)
	}
}
