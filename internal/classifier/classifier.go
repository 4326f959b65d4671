// Package classifier maps free-text account labels onto the fixed budget
// taxonomy. It is a best-effort heuristic over bank category labels, not a
// guaranteed classifier; the only promises are determinism (same label, same
// result) and reproducible totals from the raw export.
package classifier

import (
	"strings"

	"github.com/smalldjo-coder/Budget-Manager-v2/internal/models"
)

// Rule is one entry of the decision table. Rules are evaluated top to
// bottom; the first rule whose Match succeeds decides the outcome, even when
// its Map discards the label.
type Rule struct {
	Name  string
	Match func(label string) bool
	Map   func(label string) (models.Mapping, bool)
}

// Rules is the fixed-priority decision table. The priority between the
// savings-instrument branch, inbound funds, internal flows and outbound
// envelopes is fixed here once: instrument rows are special-cased first,
// then inbound, then internal transfers, then outbound.
var Rules = []Rule{
	{Name: "livret", Match: matchLivret, Map: mapLivret},
	{Name: "entrees", Match: matchEntrees, Map: mapEntrees},
	{Name: "flux-internes", Match: matchFluxInternes, Map: mapFluxInternes},
	{Name: "sorties", Match: matchSorties, Map: mapSorties},
}

// Classify maps a label to its taxonomy tag. The second return value is
// false when the label is unmapped (or discarded by the instrument branch).
func Classify(label string) (models.Mapping, bool) {
	if strings.TrimSpace(label) == "" {
		return models.Mapping{}, false
	}
	upper := strings.ToUpper(label)
	for _, rule := range Rules {
		if rule.Match(upper) {
			return rule.Map(upper)
		}
	}
	return models.Mapping{}, false
}

func containsAny(label string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(label, k) {
			return true
		}
	}
	return false
}

// --- savings instruments (LEP, Livret A, LDDS) -----------------------------

func matchLivret(label string) bool {
	return containsAny(label, "LIVRET", "LEP", "LDDS", "🟢")
}

func mapLivret(label string) (models.Mapping, bool) {
	switch {
	case containsAny(label, "INTÉRÊT", "INTERET"):
		// Interest on an instrument is passive income.
		return models.Mapping{
			Section:  models.SectionRevenus,
			Category: models.RevenuInterets,
			Source:   "livret",
		}, true
	case containsAny(label, "VERSEMENT", "VIREMENT", "TRANSFERT", "DEPOT", "DÉPÔT"):
		// Deposits into an instrument are internal flows, never envelope
		// spending: the money stays in the household.
		return models.Mapping{
			Section:  models.SectionRevenus,
			Category: models.RevenuFluxInternes,
			Source:   "livret",
			Kind:     models.FluxVersementLivret,
		}, true
	case containsAny(label, "RETRAIT", "PRÉLÈVEMENT", "PRELEVEMENT"):
		return models.Mapping{
			Section:  models.SectionRevenus,
			Category: models.RevenuFluxInternes,
			Source:   "livret",
			Kind:     models.FluxRetraitLivret,
		}, true
	}
	// Any other instrument row is discarded.
	return models.Mapping{}, false
}

// --- inbound funds ---------------------------------------------------------

func matchEntrees(label string) bool {
	return containsAny(label, "ENTRÉES", "ENTREES", "ENTRÉE", "ENTREE")
}

func mapEntrees(label string) (models.Mapping, bool) {
	category := models.RevenuActivite
	switch {
	case containsAny(label, "ACTIVITÉ", "ACTIVITE"):
		category = models.RevenuActivite
	case containsAny(label, "SOCIALES", "SOCIAL"):
		category = models.RevenuSociaux
	case containsAny(label, "INTÉRÊT", "INTERET", "REMBOURSEMENT", "PRIMES"):
		category = models.RevenuInterets
	}
	return models.Mapping{Section: models.SectionRevenus, Category: category}, true
}

// --- internal transfers between operating accounts -------------------------

func matchFluxInternes(label string) bool {
	return strings.Contains(label, "FLUX") && strings.Contains(label, "INTERNE")
}

func mapFluxInternes(string) (models.Mapping, bool) {
	return models.Mapping{
		Section:  models.SectionRevenus,
		Category: models.RevenuFluxInternes,
	}, true
}

// --- outbound envelopes ----------------------------------------------------

func matchSorties(label string) bool {
	return containsAny(label, "SORTIES", "SORTIE")
}

func mapSorties(label string) (models.Mapping, bool) {
	switch {
	case strings.Contains(label, "BESOIN"):
		return sortie(models.CategorieBesoins, mapBesoins(label)), true
	case strings.Contains(label, "DETTE"):
		return sortie(models.CategorieDettes, mapDettes(label)), true
	case containsAny(label, "EPARGNE", "ÉPARGNE"):
		return sortie(models.CategorieEpargne, mapEpargne(label)), true
	case strings.Contains(label, "ENVIE"):
		return sortie(models.CategorieEnvies, mapEnvies(label)), true
	}
	return models.Mapping{}, false
}

func sortie(category, subcategory string) models.Mapping {
	return models.Mapping{
		Section:     models.SectionSorties,
		Category:    category,
		Subcategory: subcategory,
	}
}

func mapBesoins(label string) string {
	switch {
	case containsAny(label, "FIXES", "FIXE"):
		return models.BesoinsFixes
	case containsAny(label, "VARIABLES", "VARIABLE"):
		return models.BesoinsVariables
	case containsAny(label, "NECESSITE", "NÉCESSITÉ", "NECESSITÉ", "NÉCÉSSITÉ", "NECES"):
		return models.BesoinsNecessite
	}
	return models.BesoinsVariables
}

func mapDettes(label string) string {
	switch {
	case containsAny(label, "IMMO", "HYPOTHE", "LOGEMENT"):
		return models.DettesCreditImmo
	case containsAny(label, "AUTO", "VOITURE", "VEHICULE"):
		return models.DettesCreditAuto
	}
	return models.DettesAutres
}

func mapEpargne(label string) string {
	switch {
	case containsAny(label, "LIVRET", "LEP", "LDD"):
		return models.EpargneLivret
	case containsAny(label, "PLACEMENT", "PEA", "ASSURANCE VIE", "BOURSE", "ACTION", "INVEST"):
		return models.EpargnePlacement
	case containsAny(label, "PERSONNEL", "FORMATION", "EDUCATION", "COURS", "LIVRE"):
		return models.EpargneInvestPerso
	}
	return models.EpargneLivret
}

func mapEnvies(label string) string {
	if containsAny(label, "FOURMILLES", "FOURMILLE") {
		return models.EnviesFourmilles
	}
	return models.EnviesOccasionnel
}
