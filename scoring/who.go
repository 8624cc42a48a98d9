package scoring

import "scan-service/models"

// WHO free-sugar guideline: ideally under 25 g per day, never above 50 g.
const (
	whoSugarIdealG = 25.0
	whoSugarUpperG = 50.0
)

// WHOImpact expresses the per-serving sugar of a profile against the WHO
// daily guideline limits. Pure derivation, no inference.
func WHOImpact(n models.NutritionProfile) models.WHOImpact {
	sugarPerServing := SugarPerServing(n)

	return models.WHOImpact{
		SugarPerServingG: round1(sugarPerServing),
		IdealLimitG:      whoSugarIdealG,
		UpperLimitG:      whoSugarUpperG,
		PercentOfIdeal:   round1(sugarPerServing / whoSugarIdealG * 100),
		PercentOfUpper:   round1(sugarPerServing / whoSugarUpperG * 100),
		ExceedsIdeal:     sugarPerServing > whoSugarIdealG,
		ExceedsUpper:     sugarPerServing > whoSugarUpperG,
	}
}
