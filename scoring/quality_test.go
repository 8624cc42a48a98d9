package scoring

import (
	"testing"

	"scan-service/models"

	"github.com/stretchr/testify/assert"
)

func TestAssessQualityConfidence(t *testing.T) {
	allFields := []string{"sugar_g", "salt_g", "sat_fat_g"}
	someIngredients := []models.Ingredient{{Name: "water", Class: "unclassified"}}

	tests := []struct {
		name    string
		source  string
		present []string
		missing []string
		ings    []models.Ingredient
		want    string
	}{
		{
			name:    "local source is high regardless of completeness",
			source:  SourceLocal,
			present: nil,
			missing: allFields,
			want:    ConfidenceHigh,
		},
		{
			name:    "remote complete with ingredients is high",
			source:  SourceRemote,
			present: allFields,
			missing: nil,
			ings:    someIngredients,
			want:    ConfidenceHigh,
		},
		{
			name:    "remote complete without ingredients is medium",
			source:  SourceRemote,
			present: allFields,
			missing: nil,
			want:    ConfidenceMedium,
		},
		{
			name:    "remote incomplete is low even with ingredients",
			source:  SourceRemote,
			present: []string{"sugar_g", "salt_g"},
			missing: []string{"sat_fat_g"},
			ings:    someIngredients,
			want:    ConfidenceLow,
		},
		{
			name:    "remote fully missing without ingredients is low",
			source:  SourceRemote,
			present: nil,
			missing: allFields,
			want:    ConfidenceLow,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			np := models.NormalizedProduct{
				FieldsPresent: tc.present,
				FieldsMissing: tc.missing,
				Ingredients:   tc.ings,
			}

			q := AssessQuality(tc.source, np)
			assert.Equal(t, tc.want, q.Confidence)
		})
	}
}

func TestAssessQualityPassThroughFlags(t *testing.T) {
	np := models.NormalizedProduct{
		Classification: models.Classification{
			IsBeverage: true,
			IsInferred: true,
			Reason:     models.ReasonQuantityVolume,
		},
		ServingSizeInferred: true,
		FieldsPresent:       []string{"sugar_g", "salt_g", "sat_fat_g"},
		FieldsMissing:       []string{},
	}

	q := AssessQuality(SourceRemote, np)

	assert.Equal(t, SourceRemote, q.Source)
	assert.True(t, q.IsBeverage)
	assert.True(t, q.IsBeverageInferred)
	assert.Equal(t, models.ReasonQuantityVolume, q.BeverageReason)
	assert.True(t, q.ServingSizeInferred)
	assert.True(t, q.NutritionComplete)
	assert.False(t, q.IngredientsAvailable)
}

func TestAssessQualityNilSlicesBecomeEmpty(t *testing.T) {
	q := AssessQuality(SourceRemote, models.NormalizedProduct{})

	assert.NotNil(t, q.NutritionFieldsPresent)
	assert.NotNil(t, q.MissingFields)
	assert.True(t, q.NutritionComplete, "no tracked fields means nothing is missing")
}
