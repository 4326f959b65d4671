// Package cascade implements the envelope cascade: gross income flows
// through needs, debt, savings and wants, producing intermediate balances,
// ratio alerts and a composite health score. Everything here is a pure
// function over a MonthRecord and the configured objectives, safe for
// concurrent use.
package cascade

import (
	"github.com/shopspring/decimal"

	"github.com/smalldjo-coder/Budget-Manager-v2/internal/models"
)

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)

	// Health-score thresholds. Fixed by the method, not configurable.
	besoinsWarn  = decimal.NewFromFloat(0.50)
	besoinsAlarm = decimal.NewFromFloat(0.75)
	dettesWarn   = decimal.NewFromFloat(0.10)
	dettesAlarm  = decimal.NewFromFloat(0.20)
	epargneFloor = decimal.NewFromFloat(0.05)
	epargneCeil  = decimal.NewFromFloat(0.20)
	enviesFloor  = decimal.NewFromFloat(0.10)
	enviesCeil   = decimal.NewFromFloat(0.30)
)

func round2(d decimal.Decimal) decimal.Decimal { return d.Round(2) }

// ratio returns num/den, or zero when den is not positive. Every percentage
// in the cascade is defined as 0 when income is 0, never a division error.
func ratio(num, den decimal.Decimal) decimal.Decimal {
	if !den.IsPositive() {
		return decimal.Zero
	}
	return num.Div(den)
}

// ComputeMonth derives the cascade metrics for one month. The result is
// recomputed on every call and never stored.
func ComputeMonth(month models.MonthRecord, objectifs models.Objectifs) models.CascadeResult {
	r := month.Revenus
	s := month.Sorties

	ca := round2(r.Activite.Add(r.Sociaux).Add(r.Interets))

	totalBesoins := round2(s.Besoins.Fixes.Add(s.Besoins.Variables).Add(s.Besoins.Necessite))
	soldeApresBesoins := round2(ca.Sub(totalBesoins))

	totalDettes := round2(s.Dettes.CreditImmo.Add(s.Dettes.CreditAuto).Add(s.Dettes.Autres))
	pctDettes := ratio(totalDettes, r.Activite)
	soldeApresDettes := round2(soldeApresBesoins.Sub(totalDettes))

	totalEpargne := round2(s.Epargne.Livret.Add(s.Epargne.Placement).Add(s.Epargne.InvestPerso))
	pctEpargne := ratio(totalEpargne, ca)
	soldeApresEpargne := round2(soldeApresDettes.Sub(totalEpargne))

	totalEnvies := round2(s.Envies.Fourmilles.Add(s.Envies.Occasionnel))
	pctEnvies := ratio(totalEnvies, ca)
	soldeFinal := round2(soldeApresEpargne.Sub(totalEnvies))

	seuilDettes := objectifs.SeuilDettes.Div(hundred)
	epargneMin := objectifs.EpargneMin.Div(hundred)
	epargneMax := objectifs.EpargneMax.Div(hundred)
	enviesMax := objectifs.EnviesMax.Div(hundred)

	// Target allocation: the post-debt surplus is split between savings and
	// wants according to the levier.
	epargneObjectif := decimal.Zero
	enviesObjectif := decimal.Zero
	if soldeApresDettes.IsPositive() {
		epargneObjectif = round2(soldeApresDettes.Mul(month.Levier))
		enviesObjectif = round2(soldeApresDettes.Mul(one.Sub(month.Levier)))
	}

	pctBesoins := ratio(totalBesoins, ca)

	return models.CascadeResult{
		CA: ca,

		TotalBesoins:      totalBesoins,
		PctBesoins:        pctBesoins,
		SoldeApresBesoins: soldeApresBesoins,

		TotalDettes:      totalDettes,
		SeuilMaxDettes:   round2(r.Activite.Mul(seuilDettes)),
		PctDettes:        pctDettes,
		AlerteDettes:     pctDettes.GreaterThan(seuilDettes),
		SoldeApresDettes: soldeApresDettes,

		TotalEpargne:      totalEpargne,
		PctEpargne:        pctEpargne,
		AlerteEpargneMin:  pctEpargne.IsPositive() && pctEpargne.LessThan(epargneMin),
		AlerteEpargneMax:  pctEpargne.GreaterThan(epargneMax),
		SoldeApresEpargne: soldeApresEpargne,

		EpargneObjectif:    epargneObjectif,
		PctEpargneObjectif: ratio(epargneObjectif, ca),

		TotalEnvies:     totalEnvies,
		PctEnvies:       pctEnvies,
		AlerteEnviesMax: pctEnvies.GreaterThan(enviesMax),

		EnviesObjectif:    enviesObjectif,
		PctEnviesObjectif: ratio(enviesObjectif, ca),

		SoldeFinal: soldeFinal,

		HealthScore: healthScore(ca, pctBesoins, pctDettes, pctEpargne, pctEnvies),
	}
}

// healthScore starts at 100 and subtracts fixed penalties when an envelope
// ratio leaves its healthy range, clamped to 0. A month without income keeps
// the full score.
func healthScore(ca, pctBesoins, pctDettes, pctEpargne, pctEnvies decimal.Decimal) int {
	score := 100

	if pctBesoins.GreaterThan(besoinsAlarm) {
		score -= 30
	} else if pctBesoins.GreaterThan(besoinsWarn) {
		score -= 15
	}

	if pctDettes.GreaterThan(dettesAlarm) {
		score -= 25
	} else if pctDettes.GreaterThan(dettesWarn) {
		score -= 10
	}

	if pctEpargne.LessThan(epargneFloor) && ca.IsPositive() {
		score -= 20
	} else if pctEpargne.GreaterThan(epargneCeil) {
		score -= 5
	}

	if pctEnvies.LessThan(enviesFloor) && ca.IsPositive() {
		score -= 15
	} else if pctEnvies.GreaterThan(enviesCeil) {
		score -= 20
	}

	if score < 0 {
		score = 0
	}
	return score
}
