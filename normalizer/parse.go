package normalizer

import (
	"regexp"
	"strconv"
	"strings"

	"scan-service/models"
)

// Ordered alias lists for each canonical nutrient field. Upstream data is
// inconsistent about key names; the first alias that parses wins.
var nutrientAliases = map[string][]string{
	"sugar_g":   {"sugars_100g", "sugar_100g", "sugars", "sugar"},
	"salt_g":    {"salt_100g", "salt"},
	"sat_fat_g": {"saturated-fat_100g", "saturated_fat_100g", "saturated-fat", "saturated_fat"},
	"protein_g": {"proteins_100g", "protein_100g", "proteins", "protein"},
}

// requiredFields are the nutrient fields the data quality assessor checks.
var requiredFields = []string{"sugar_g", "salt_g", "sat_fat_g"}

// toFloat coerces a raw source value to a float64. Strings may use a comma
// decimal separator. The second return value distinguishes "absent or
// unparseable" from "present but zero".
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(x), ",", ".")
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// nutrientValue looks up a canonical nutrient field in a nutriments map,
// trying each alias in order. Negative values are clamped to zero. The
// boolean reports whether any alias produced a usable value.
func nutrientValue(nutriments map[string]any, field string) (float64, bool) {
	for _, key := range nutrientAliases[field] {
		v, ok := nutriments[key]
		if !ok {
			continue
		}
		f, ok := toFloat(v)
		if !ok {
			continue
		}
		if f < 0 {
			f = 0
		}
		return f, true
	}
	return 0, false
}

var (
	servingSizeRe      = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(g|gr|gram|grams|ml|cl|l)\b`)
	servingSizeParenRe = regexp.MustCompile(`\((\d+(?:\.\d+)?)\s*(g|gr|ml|cl|l)\)`)
)

// parseServingSize extracts a quantity in grams or milliliters from free
// text like "30 g", "250ml", "0.33 L" or "(250 ml)". Centiliters and liters
// are converted; grams and milliliters pass through. Returns false when no
// quantity+unit pattern matches; a bare number carries no unit, so it does
// not resolve and the caller falls back to the default serving size.
func parseServingSize(v any) (float64, bool) {
	raw, ok := v.(string)
	if !ok || raw == "" {
		return 0, false
	}
	s := strings.ToLower(strings.TrimSpace(raw))

	m := servingSizeRe.FindStringSubmatch(s)
	if m == nil {
		m = servingSizeParenRe.FindStringSubmatch(s)
	}
	if m == nil {
		return 0, false
	}

	qty, ok := toFloat(m[1])
	if !ok {
		return 0, false
	}

	switch m[2] {
	case "g", "gr", "gram", "grams", "ml":
		return qty, true
	case "cl":
		return qty * 10.0, true
	case "l":
		return qty * 1000.0, true
	}
	return 0, false
}

var ingredientSplitRe = regexp.MustCompile(`[;,]`)

// extractIngredients builds the normalized ingredient list. A structured
// entry list is preferred; otherwise the free-text ingredient string is
// split on commas and semicolons. Every entry carries the unclassified tag
// and a provenance note.
func extractIngredients(structured []any, freeText string, note string) []models.Ingredient {
	out := []models.Ingredient{}

	for _, entry := range structured {
		var name string
		switch e := entry.(type) {
		case map[string]any:
			if s, ok := e["text"].(string); ok && s != "" {
				name = s
			} else if s, ok := e["id"].(string); ok {
				name = s
			}
		case string:
			name = e
		}
		name = strings.TrimSpace(name)
		if name != "" {
			out = append(out, models.Ingredient{Name: name, Class: "unclassified", Note: note})
		}
	}
	if len(out) > 0 {
		return out
	}

	for _, part := range ingredientSplitRe.Split(freeText, -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, models.Ingredient{Name: part, Class: "unclassified", Note: note})
		}
	}
	return out
}

// stringField returns a trimmed string value from a source map, tolerating
// non-string values by ignoring them.
func stringField(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
		}
	}
	return ""
}
