package cascade

import (
	"github.com/shopspring/decimal"

	"github.com/smalldjo-coder/Budget-Manager-v2/internal/models"
)

var twelve = decimal.NewFromInt(12)

// ComputeAllMonths summarizes the envelope totals of every month.
func ComputeAllMonths(months [12]models.MonthRecord) []models.MonthSummary {
	summaries := make([]models.MonthSummary, 0, 12)
	for i, m := range months {
		ca := m.Revenus.Activite.Add(m.Revenus.Sociaux).Add(m.Revenus.Interets)
		besoins := m.Sorties.Besoins.Fixes.Add(m.Sorties.Besoins.Variables).Add(m.Sorties.Besoins.Necessite)
		dettes := m.Sorties.Dettes.CreditImmo.Add(m.Sorties.Dettes.CreditAuto).Add(m.Sorties.Dettes.Autres)
		epargne := m.Sorties.Epargne.Livret.Add(m.Sorties.Epargne.Placement).Add(m.Sorties.Epargne.InvestPerso)
		envies := m.Sorties.Envies.Fourmilles.Add(m.Sorties.Envies.Occasionnel)
		summaries = append(summaries, models.MonthSummary{
			Mois:       models.MonthsShort[i],
			CA:         round2(ca),
			Besoins:    round2(besoins),
			Dettes:     round2(dettes),
			Epargne:    round2(epargne),
			Envies:     round2(envies),
			SoldeFinal: round2(ca.Sub(besoins).Sub(dettes).Sub(epargne).Sub(envies)),
		})
	}
	return summaries
}

// AnnualStats aggregates the realised totals over the year and compares them
// against twelve months of the planned budget.
func AnnualStats(summaries []models.MonthSummary, prevu models.BudgetPrevu) models.AnnualStats {
	var realise models.EnvelopeTotals
	for _, m := range summaries {
		realise.Revenus = round2(realise.Revenus.Add(m.CA))
		realise.Besoins = round2(realise.Besoins.Add(m.Besoins))
		realise.Dettes = round2(realise.Dettes.Add(m.Dettes))
		realise.Epargne = round2(realise.Epargne.Add(m.Epargne))
		realise.Envies = round2(realise.Envies.Add(m.Envies))
		realise.Solde = round2(realise.Solde.Add(m.SoldeFinal))
	}

	planned := models.EnvelopeTotals{
		Revenus: round2(prevu.Revenus.Activite.Add(prevu.Revenus.Sociaux).Add(prevu.Revenus.Interets).Mul(twelve)),
		Besoins: round2(prevu.Besoins.Fixes.Add(prevu.Besoins.Variables).Mul(twelve)),
		Dettes:  round2(prevu.Dettes.Total.Mul(twelve)),
		Epargne: round2(prevu.Epargne.Total.Mul(twelve)),
		Envies:  round2(prevu.Envies.Total.Mul(twelve)),
	}
	planned.Solde = round2(planned.Revenus.Sub(planned.Besoins).Sub(planned.Dettes).Sub(planned.Epargne).Sub(planned.Envies))

	return models.AnnualStats{Realise: realise, Prevu: planned}
}

// EpargnesCumulees fills the cumulative-savings column of the summaries.
func EpargnesCumulees(summaries []models.MonthSummary) []models.MonthSummary {
	out := make([]models.MonthSummary, len(summaries))
	cumul := decimal.Zero
	for i, m := range summaries {
		cumul = round2(cumul.Add(m.Epargne))
		m.EpargneCumulee = cumul
		out[i] = m
	}
	return out
}

// PatrimoineTargets holds derived target balances per instrument.
type PatrimoineTargets struct {
	LEP     decimal.Decimal
	LivretA decimal.Decimal
	PEA     decimal.Decimal
}

var defaultTargets = PatrimoineTargets{
	LEP:     decimal.NewFromInt(7812),
	LivretA: decimal.NewFromInt(3000),
	PEA:     decimal.NewFromInt(10000),
}

// PatrimoineObjectifs derives instrument targets from the months that have
// income: six months of average needs for the emergency fund, three for the
// secondary one, twelve months of average activity income for the long-term
// placement. Months without income fall back to the built-in targets.
func PatrimoineObjectifs(months [12]models.MonthRecord) PatrimoineTargets {
	var withIncome []models.MonthRecord
	for _, m := range months {
		ca := m.Revenus.Activite.Add(m.Revenus.Sociaux).Add(m.Revenus.Interets)
		if ca.IsPositive() {
			withIncome = append(withIncome, m)
		}
	}
	if len(withIncome) == 0 {
		return defaultTargets
	}

	n := decimal.NewFromInt(int64(len(withIncome)))
	sumBesoins := decimal.Zero
	sumActivite := decimal.Zero
	for _, m := range withIncome {
		sumBesoins = sumBesoins.Add(m.Sorties.Besoins.Fixes).Add(m.Sorties.Besoins.Variables).Add(m.Sorties.Besoins.Necessite)
		sumActivite = sumActivite.Add(m.Revenus.Activite)
	}
	avgBesoins := sumBesoins.Div(n)
	avgActivite := sumActivite.Div(n)

	return PatrimoineTargets{
		LEP:     orDefault(avgBesoins.Mul(decimal.NewFromInt(6)).Round(0), defaultTargets.LEP),
		LivretA: orDefault(avgBesoins.Mul(decimal.NewFromInt(3)).Round(0), defaultTargets.LivretA),
		PEA:     orDefault(avgActivite.Mul(twelve).Round(0), defaultTargets.PEA),
	}
}

func orDefault(d, fallback decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return fallback
	}
	return d
}

// PatrimoineEvolution lists the month-by-month instrument balances.
func PatrimoineEvolution(months [12]models.MonthRecord) []models.PatrimoineEvolution {
	out := make([]models.PatrimoineEvolution, 0, 12)
	for i, m := range months {
		p := m.Patrimoine
		out = append(out, models.PatrimoineEvolution{
			Mois:    models.MonthsShort[i],
			LEP:     p.LEP,
			LivretA: p.LivretA,
			PEA:     p.PEA,
			Total:   round2(p.LEP.Add(p.LivretA).Add(p.PEA)),
		})
	}
	return out
}
