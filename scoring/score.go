package scoring

import (
	"math"

	"scan-service/models"
)

// Version tags the scoring formula so breakdowns stay auditable across
// future revisions.
const Version = "v3_hybrid"

// Formula weights and caps. Beverages get the stricter sugar weight and no
// protein bonus.
const (
	sugarWeightBeverage = 6.0
	sugarWeightSolid    = 5.0
	saltWeight          = 10.0
	satFatWeight        = 4.0

	servingSugarThresholdG = 12.5
	servingSugarMultiplier = 1.0
	servingSugarPenaltyCap = 20.0

	proteinBonusThresholdG = 3.0
	proteinBonusMultiplier = 1.0
	proteinBonusCap        = 8.0
)

// Score computes the deterministic 0-100 health score and its full
// breakdown. All terms are computed at full precision; rounding happens
// only in the reported breakdown.
func Score(n models.NutritionProfile, isBeverage bool) (int, models.ScoreBreakdown) {
	sugarWeight := sugarWeightSolid
	if isBeverage {
		sugarWeight = sugarWeightBeverage
	}

	penaltySugar := n.SugarG * sugarWeight
	penaltySalt := n.SaltG * saltWeight
	penaltySatFat := n.SatFatG * satFatWeight

	sugarPerServing := SugarPerServing(n)

	rawServingPenalty := 0.0
	if sugarPerServing > servingSugarThresholdG {
		rawServingPenalty = (sugarPerServing - servingSugarThresholdG) * servingSugarMultiplier
	}
	penaltyServingSugar := math.Min(servingSugarPenaltyCap, math.Max(0, rawServingPenalty))

	bonusProtein := proteinBonus(n.ProteinG, isBeverage)

	totalPenalty := penaltySugar + penaltySalt + penaltySatFat + penaltyServingSugar
	final := clampScore(100 - totalPenalty + bonusProtein)

	breakdown := models.ScoreBreakdown{
		Version: Version,
		Unit:    n.Unit,

		SugarGPer100:     n.SugarG,
		SaltGPer100:      n.SaltG,
		SatFatGPer100:    n.SatFatG,
		ProteinGPer100:   n.ProteinG,
		ServingSize:      n.ServingSize,
		SugarPerServingG: round1(sugarPerServing),

		PenaltySugar:        roundInt(penaltySugar),
		PenaltySalt:         roundInt(penaltySalt),
		PenaltySatFat:       roundInt(penaltySatFat),
		PenaltyServingSugar: roundInt(penaltyServingSugar),

		BonusProtein: roundInt(bonusProtein),
		TotalPenalty: roundInt(totalPenalty),
		FinalScore:   final,

		Basis:         "per_100g_or_100ml + per_serving_sugar + protein_bonus",
		StrictProfile: isBeverage,

		ProteinBonusRule: models.ProteinBonusRule{
			ThresholdG: proteinBonusThresholdG,
			Multiplier: proteinBonusMultiplier,
			Cap:        proteinBonusCap,
			AppliesTo:  "solids_only",
		},
		ServingPenaltyRule: models.ServingPenaltyRule{
			ThresholdG: servingSugarThresholdG,
			Multiplier: servingSugarMultiplier,
			Cap:        servingSugarPenaltyCap,
		},
	}

	return final, breakdown
}

// SugarPerServing converts per-100-unit sugar to grams per declared serving.
func SugarPerServing(n models.NutritionProfile) float64 {
	return n.SugarG / 100.0 * n.ServingSize
}

func proteinBonus(proteinG float64, isBeverage bool) float64 {
	if isBeverage || proteinG <= proteinBonusThresholdG {
		return 0
	}
	raw := (proteinG - proteinBonusThresholdG) * proteinBonusMultiplier
	return math.Min(proteinBonusCap, math.Max(0, raw))
}

func clampScore(x float64) int {
	s := roundInt(x)
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

func roundInt(x float64) int {
	return int(math.Round(x))
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
