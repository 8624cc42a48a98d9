package scoring

import "scan-service/models"

// Confidence labels for the data quality assessment.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// Data sources.
const (
	SourceLocal  = "local"
	SourceRemote = "openfoodfacts"
)

// AssessQuality derives the confidence label for a scan. Local catalog
// records are trusted unconditionally; remote data needs all three required
// nutrients for medium, plus an ingredient list for high. Confidence never
// alters the score itself.
func AssessQuality(source string, p models.NormalizedProduct) models.DataQuality {
	present := p.FieldsPresent
	if present == nil {
		present = []string{}
	}
	missing := p.FieldsMissing
	if missing == nil {
		missing = []string{}
	}

	nutritionComplete := len(missing) == 0
	ingredientsAvailable := len(p.Ingredients) > 0

	var confidence string
	switch {
	case source == SourceLocal:
		confidence = ConfidenceHigh
	case nutritionComplete && ingredientsAvailable:
		confidence = ConfidenceHigh
	case nutritionComplete:
		confidence = ConfidenceMedium
	default:
		confidence = ConfidenceLow
	}

	return models.DataQuality{
		Source:                 source,
		NutritionFieldsPresent: present,
		MissingFields:          missing,
		NutritionComplete:      nutritionComplete,
		IngredientsAvailable:   ingredientsAvailable,
		ServingSizeInferred:    p.ServingSizeInferred,
		IsBeverage:             p.Classification.IsBeverage,
		IsBeverageInferred:     p.Classification.IsInferred,
		BeverageReason:         p.Classification.Reason,
		Confidence:             confidence,
	}
}
