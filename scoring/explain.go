package scoring

import (
	"fmt"

	"scan-service/models"
)

// Explain renders the consumer-facing narrative for a scored product: an
// ordered list of statements explaining the score and a separate list of
// advisory tips. Line order is fixed for output stability.
func Explain(n models.NutritionProfile, b models.ScoreBreakdown, who models.WHOImpact, q models.DataQuality) (why []string, tips []string) {
	why = []string{}
	tips = []string{}

	if q.IsBeverage {
		why = append(why, "Beverage detected: a stricter sugar profile applies.")
	}

	why = append(why, fmt.Sprintf("Sugar per 100%s: %.1f g", n.Unit, n.SugarG))
	if n.SatFatG > 0 {
		why = append(why, fmt.Sprintf("Saturated fat per 100%s: %.1f g", n.Unit, n.SatFatG))
	}
	if n.SaltG > 0 {
		why = append(why, fmt.Sprintf("Salt per 100%s: %.2f g", n.Unit, n.SaltG))
	}

	if n.ServingSize > 1 {
		why = append(why, fmt.Sprintf("Serving size: %.0f%s, sugar per serving: %.1f g", n.ServingSize, n.Unit, who.SugarPerServingG))
	} else if who.SugarPerServingG > 0 {
		why = append(why, fmt.Sprintf("Sugar per serving: %.1f g", who.SugarPerServingG))
	}

	if b.PenaltyServingSugar > 0 {
		why = append(why, fmt.Sprintf("Extra serving penalty: +%d (high sugar per serving)", b.PenaltyServingSugar))
	}
	if b.BonusProtein > 0 {
		why = append(why, fmt.Sprintf("Protein bonus: +%d (protein %.1f g/100%s)", b.BonusProtein, n.ProteinG, n.Unit))
	}
	if who.SugarPerServingG > 0 {
		why = append(why, fmt.Sprintf("WHO sugar impact: %.0f%% of the ideal limit (25 g), %.0f%% of the upper limit (50 g)",
			who.PercentOfIdeal, who.PercentOfUpper))
	}

	if q.ServingSizeInferred {
		tips = append(tips, "Serving size was estimated; the product did not declare a usable serving size.")
	}
	if reasonTipDue(q.BeverageReason) {
		tips = append(tips, fmt.Sprintf("Beverage detection reason: %s", q.BeverageReason))
	}
	if q.IsBeverage && n.SugarG >= 5 {
		tips = append(tips, "Tip: for beverages, sugar adds up quickly per serving. Check sugar-free alternatives too.")
	}
	if !q.IsBeverage && n.SatFatG >= 5 {
		tips = append(tips, "Tip: if cardiovascular health matters to you, compare saturated fat per 100 g as well.")
	}

	return why, tips
}

// reasonTipDue reports whether the classification reason warrants a tip.
// A direct category match speaks for itself, and a catalog record asserts
// its own flag; every other reason is surfaced so the reader can judge it.
func reasonTipDue(reason string) bool {
	switch reason {
	case "", models.ReasonCategoriesNegative, models.ReasonCategoriesPositive, models.ReasonLocalFlag:
		return false
	}
	return true
}
