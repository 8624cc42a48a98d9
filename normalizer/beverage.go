package normalizer

import (
	"regexp"
	"strings"

	"scan-service/models"
)

// Category tags that reliably indicate a beverage.
var categoriesPositive = []string{
	"en:beverages",
	"en:soft-drinks",
	"en:sodas",
	"en:carbonated-drinks",
	"en:carbonated-soft-drinks",
	"en:colas",
	"en:cola",
	"en:juices",
	"en:fruit-juices",
	"en:energy-drinks",
	"en:iced-teas",
	"en:waters",
	"en:flavoured-waters",
	"en:sports-drinks",
}

// Category tags that reliably indicate a solid even when the product is
// liquid-adjacent (yogurts, soups, sauces).
var categoriesNegative = []string{
	"en:yogurts",
	"en:greek-yogurts",
	"en:dairy-desserts",
	"en:cheeses",
	"en:milk",
	"en:cream",
	"en:fermented-milk-products",
	"en:desserts",
	"en:soups",
	"en:sauces",
}

// Weak name/brand hints, consulted only when no strong signal fired.
var namePositive = []string{
	"cola",
	"coca-cola",
	"soft drink",
	"soda",
	"carbonated",
	"sparkling",
	"juice",
	"energy drink",
	"iced tea",
	"water",
}

var nameNegative = []string{
	"yogurt",
	"yoghurt",
	"joghurt",
	"cream",
	"cheese",
	"soup",
	"sauce",
	"dessert",
}

var (
	quantityMultiPackRe = regexp.MustCompile(`\b(\d+)\s*[x×]\s*(\d+(?:\.\d+)?)\s*(ml|cl|l)\b`)
	quantityVolumeRe    = regexp.MustCompile(`\b(\d+(?:\.\d+)?)\s*(ml|cl|l)\b`)
)

// beverageRule is one step of the classification cascade.
type beverageRule struct {
	matches func(product map[string]any) bool
	result  models.Classification
}

// The cascade is evaluated strictly in order; the first matching rule wins.
// Rules 1-3 are strong signals and not marked inferred. A per-100g
// declaration is deliberately not a solid signal: upstream data frequently
// declares beverages per 100 g.
var beverageRules = []beverageRule{
	{
		matches: func(p map[string]any) bool {
			per := strings.ToLower(stringField(p, "nutrition_data_per"))
			return strings.Contains(per, "100ml")
		},
		result: models.Classification{IsBeverage: true, IsInferred: false, Reason: models.ReasonDeclaredPer100ml},
	},
	{
		matches: func(p map[string]any) bool {
			return hasAnyCategory(p, categoriesNegative)
		},
		result: models.Classification{IsBeverage: false, IsInferred: false, Reason: models.ReasonCategoriesNegative},
	},
	{
		matches: func(p map[string]any) bool {
			return hasAnyCategory(p, categoriesPositive)
		},
		result: models.Classification{IsBeverage: true, IsInferred: false, Reason: models.ReasonCategoriesPositive},
	},
	{
		matches: func(p map[string]any) bool {
			quantity := strings.ToLower(stringField(p, "quantity"))
			return quantityMultiPackRe.MatchString(quantity) || quantityVolumeRe.MatchString(quantity)
		},
		result: models.Classification{IsBeverage: true, IsInferred: true, Reason: models.ReasonQuantityVolume},
	},
	{
		matches: func(p map[string]any) bool {
			return nameContainsAny(p, nameNegative)
		},
		result: models.Classification{IsBeverage: false, IsInferred: true, Reason: models.ReasonNameNegative},
	},
	{
		matches: func(p map[string]any) bool {
			return nameContainsAny(p, namePositive)
		},
		result: models.Classification{IsBeverage: true, IsInferred: true, Reason: models.ReasonNamePositive},
	},
	{
		matches: func(p map[string]any) bool { return true },
		result:  models.Classification{IsBeverage: false, IsInferred: true, Reason: models.ReasonDefaultSolid},
	},
}

// Classify decides beverage-vs-solid for a remote product map. It always
// returns a definite classification; the final rule is an unconditional
// solid default.
func Classify(product map[string]any) models.Classification {
	for _, rule := range beverageRules {
		if rule.matches(product) {
			return rule.result
		}
	}
	// unreachable: the last rule always matches
	return models.Classification{IsBeverage: false, IsInferred: true, Reason: models.ReasonDefaultSolid}
}

func hasAnyCategory(product map[string]any, wanted []string) bool {
	tags, _ := product["categories_tags"].([]any)
	for _, t := range tags {
		s, ok := t.(string)
		if !ok {
			continue
		}
		s = strings.ToLower(s)
		for _, w := range wanted {
			if s == w {
				return true
			}
		}
	}
	return false
}

func nameContainsAny(product map[string]any, keywords []string) bool {
	name := strings.ToLower(stringField(product, "product_name", "product_name_en", "generic_name"))
	brand := strings.ToLower(stringField(product, "brands", "brand_owner"))
	text := strings.TrimSpace(name + " " + brand)
	if text == "" {
		return false
	}
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
