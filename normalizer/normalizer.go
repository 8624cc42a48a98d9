package normalizer

import (
	"scan-service/models"
)

// Default serving sizes applied when the source declares none.
const (
	defaultServingBeverage = 330.0
	defaultServingSolid    = 100.0
)

const unknownProductName = "Unknown Product"

// NormalizeRemote converts a raw Open Food Facts payload into the canonical
// normalized product. The payload is usually {"status": .., "product": {..}};
// a bare product map is tolerated. Malformed values degrade to defaults,
// never to an error.
func NormalizeRemote(payload map[string]any, barcode string) models.NormalizedProduct {
	product := payload
	if p, ok := payload["product"].(map[string]any); ok {
		product = p
	}
	nutriments, _ := product["nutriments"].(map[string]any)

	nutrition := models.NutritionProfile{}
	var present, missing []string
	for _, field := range requiredFields {
		v, found := nutrientValue(nutriments, field)
		if found {
			present = append(present, field)
		} else {
			missing = append(missing, field)
		}
		switch field {
		case "sugar_g":
			nutrition.SugarG = v
		case "salt_g":
			nutrition.SaltG = v
		case "sat_fat_g":
			nutrition.SatFatG = v
		}
	}
	nutrition.ProteinG, _ = nutrientValue(nutriments, "protein_g")

	class := Classify(product)
	if class.IsBeverage {
		nutrition.Unit = models.UnitMilliliters
	} else {
		nutrition.Unit = models.UnitGrams
	}

	serving, ok := parseServingSize(product["serving_size"])
	if !ok && nutriments != nil {
		serving, ok = parseServingSize(nutriments["serving_size"])
	}
	servingInferred := false
	if !ok {
		serving = defaultServingSolid
		if class.IsBeverage {
			serving = defaultServingBeverage
		}
		servingInferred = true
	}
	nutrition.ServingSize = serving

	name := stringField(product, "product_name", "product_name_en", "generic_name")
	if name == "" {
		name = unknownProductName
	}

	code := barcode
	if code == "" {
		code = stringField(product, "code")
	}

	structured, _ := product["ingredients"].([]any)
	freeText := stringField(product, "ingredients_text", "ingredients_text_en")

	return models.NormalizedProduct{
		Code:                code,
		Name:                name,
		Brand:               stringField(product, "brands", "brand_owner"),
		ImageURL:            stringField(product, "image_url", "image_front_url"),
		Classification:      class,
		ServingSizeInferred: servingInferred,
		Ingredients:         extractIngredients(structured, freeText, "From OpenFoodFacts"),
		Nutrition:           nutrition,
		FieldsPresent:       present,
		FieldsMissing:       missing,
	}
}

// NormalizeLocal converts a catalog record into the canonical normalized
// product. Local records assert beverage status directly, so the
// classification is never inferred.
func NormalizeLocal(p models.LocalProduct) models.NormalizedProduct {
	class := models.Classification{
		IsBeverage: p.IsBeverage,
		IsInferred: false,
		Reason:     models.ReasonLocalFlag,
	}

	unit := models.UnitGrams
	if p.IsBeverage {
		unit = models.UnitMilliliters
	}

	serving := p.ServingSize
	servingInferred := false
	if serving <= 0 {
		serving = defaultServingSolid
		if p.IsBeverage {
			serving = defaultServingBeverage
		}
		servingInferred = true
	}

	name := p.Name
	if name == "" {
		name = unknownProductName
	}

	return models.NormalizedProduct{
		Code:                p.ID,
		Name:                name,
		Brand:               p.Brand,
		ImageURL:            p.ImageURL,
		Classification:      class,
		ServingSizeInferred: servingInferred,
		Ingredients:         extractIngredients(p.Ingredients, "", "From local catalog"),
		Nutrition: models.NutritionProfile{
			Unit:        unit,
			SugarG:      clampNonNeg(p.Sugar),
			SaltG:       clampNonNeg(p.Salt),
			SatFatG:     clampNonNeg(p.SatFat),
			ProteinG:    clampNonNeg(p.Protein),
			ServingSize: serving,
		},
		FieldsPresent: append([]string(nil), requiredFields...),
		FieldsMissing: []string{},
	}
}

func clampNonNeg(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
