// Package ledger reconstructs historical savings-instrument balances from an
// unordered multi-year operation export. No starting balance is ever given:
// replaying every operation from the beginning yields the balance at the
// target year's doorstep, and the target year's own operations yield the
// twelve month-end snapshots.
package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/smalldjo-coder/Budget-Manager-v2/internal/models"
)

// MonthFlows accumulates one instrument's operations within one month of the
// target year.
type MonthFlows struct {
	Versements decimal.Decimal
	Retraits   decimal.Decimal
	Interets   decimal.Decimal
}

// Net is the month's balance movement.
func (f MonthFlows) Net() decimal.Decimal {
	return f.Versements.Sub(f.Retraits).Add(f.Interets)
}

// Result is the outcome of one reconciliation run.
type Result struct {
	// Opening holds each instrument's balance at the instant before the
	// target year begins.
	Opening models.SoldesInitiaux

	// MonthEnd holds each instrument's balance at the end of every month of
	// the target year.
	MonthEnd [12]models.Patrimoine

	// Flows holds the per-instrument, per-month operation sums for the
	// target year.
	Flows map[string][12]MonthFlows

	// PriorYearOps and TargetYearOps count replayed operations before and
	// within the target year.
	PriorYearOps  int
	TargetYearOps int
}

func round2(d decimal.Decimal) decimal.Decimal { return d.Round(2) }

// Reconcile replays all operations in chronological order and derives the
// target year's opening balance and month-end balances per instrument.
// Operations dated after the target year participate in the replay but not
// in the month-end computation. Ties on identical dates keep input order.
func Reconcile(ops []models.LedgerOperation, targetYear int) Result {
	sorted := make([]models.LedgerOperation, len(ops))
	copy(sorted, ops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	running := map[string]decimal.Decimal{}
	flows := map[string][12]MonthFlows{}
	for _, inst := range models.Instruments {
		running[inst] = decimal.Zero
		flows[inst] = [12]MonthFlows{}
	}

	result := Result{}
	passedYearStart := false

	for _, op := range sorted {
		// Snapshot the running balances the instant the replay reaches the
		// target year.
		if !passedYearStart && op.Year >= targetYear {
			result.Opening = snapshot(running)
			passedYearStart = true
		}

		switch op.Kind {
		case models.OpVersement, models.OpInterets:
			running[op.Instrument] = running[op.Instrument].Add(op.Amount)
		case models.OpRetrait:
			running[op.Instrument] = running[op.Instrument].Sub(op.Amount)
		}

		switch {
		case op.Year < targetYear:
			result.PriorYearOps++
		case op.Year == targetYear:
			result.TargetYearOps++
			monthly := flows[op.Instrument]
			f := monthly[op.Month]
			switch op.Kind {
			case models.OpVersement:
				f.Versements = f.Versements.Add(op.Amount)
			case models.OpRetrait:
				f.Retraits = f.Retraits.Add(op.Amount)
			case models.OpInterets:
				f.Interets = f.Interets.Add(op.Amount)
			}
			monthly[op.Month] = f
			flows[op.Instrument] = monthly
		}
	}

	// Every operation predates the target year: the opening balance is the
	// final balance of the full replay.
	if !passedYearStart {
		result.Opening = snapshot(running)
	}

	result.Flows = flows

	for _, inst := range models.Instruments {
		solde := result.Opening.Get(inst)
		monthly := flows[inst]
		for m := 0; m < 12; m++ {
			solde = round2(solde.Add(monthly[m].Net()))
			// MonthEnd is written via the instrument key so a new
			// instrument only needs a models.Patrimoine field.
			switch inst {
			case models.InstrumentLEP:
				result.MonthEnd[m].LEP = solde
			case models.InstrumentLivretA:
				result.MonthEnd[m].LivretA = solde
			case models.InstrumentPEA:
				result.MonthEnd[m].PEA = solde
			}
		}
	}

	return result
}

func snapshot(running map[string]decimal.Decimal) models.SoldesInitiaux {
	var s models.SoldesInitiaux
	for inst, balance := range running {
		s.Set(inst, balance)
	}
	return s
}
