package scoring

import (
	"testing"

	"scan-service/models"

	"github.com/stretchr/testify/assert"
)

func TestWHOImpact(t *testing.T) {
	n := models.NutritionProfile{
		Unit:        models.UnitMilliliters,
		SugarG:      10,
		ServingSize: 330,
	}

	who := WHOImpact(n)

	assert.InDelta(t, 33.0, who.SugarPerServingG, 1e-9)
	assert.Equal(t, 25.0, who.IdealLimitG)
	assert.Equal(t, 50.0, who.UpperLimitG)
	assert.InDelta(t, 132.0, who.PercentOfIdeal, 1e-9)
	assert.InDelta(t, 66.0, who.PercentOfUpper, 1e-9)
	assert.True(t, who.ExceedsIdeal)
	assert.False(t, who.ExceedsUpper)
}

func TestWHOImpactZeroSugar(t *testing.T) {
	n := models.NutritionProfile{Unit: models.UnitGrams, ServingSize: 100}

	who := WHOImpact(n)

	assert.Zero(t, who.SugarPerServingG)
	assert.Zero(t, who.PercentOfIdeal)
	assert.Zero(t, who.PercentOfUpper)
	assert.False(t, who.ExceedsIdeal)
	assert.False(t, who.ExceedsUpper)
}

func TestWHOImpactExceedsUpper(t *testing.T) {
	n := models.NutritionProfile{
		Unit:        models.UnitMilliliters,
		SugarG:      11,
		ServingSize: 500,
	}

	who := WHOImpact(n)

	assert.InDelta(t, 55.0, who.SugarPerServingG, 1e-9)
	assert.True(t, who.ExceedsIdeal)
	assert.True(t, who.ExceedsUpper)
}

func TestWHOImpactAtLimitDoesNotExceed(t *testing.T) {
	n := models.NutritionProfile{
		Unit:        models.UnitGrams,
		SugarG:      25,
		ServingSize: 100,
	}

	who := WHOImpact(n)

	assert.InDelta(t, 25.0, who.SugarPerServingG, 1e-9)
	assert.False(t, who.ExceedsIdeal, "exactly at the limit is not exceeding it")
}
