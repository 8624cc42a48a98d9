package models

// Unit is the reference unit of a normalized nutrition profile.
type Unit string

const (
	UnitGrams       Unit = "g"
	UnitMilliliters Unit = "ml"
)

// Beverage classification reasons, in cascade priority order.
// The first three are strong signals; the rest are heuristics.
const (
	ReasonDeclaredPer100ml   = "declared_per_100ml"
	ReasonCategoriesNegative = "categories_negative"
	ReasonCategoriesPositive = "categories_positive"
	ReasonQuantityVolume     = "quantity_volume"
	ReasonNameNegative       = "name_negative"
	ReasonNamePositive       = "name_positive"
	ReasonDefaultSolid       = "default_solid"
	ReasonLocalFlag          = "local_flag"
)

// NutritionProfile is the canonical per-100g/per-100ml nutrition record.
// All nutrient fields are non-negative; missing source values are zero.
type NutritionProfile struct {
	Unit        Unit    `json:"unit"`
	SugarG      float64 `json:"sugar_g"`
	SaltG       float64 `json:"salt_g"`
	SatFatG     float64 `json:"sat_fat_g"`
	ProteinG    float64 `json:"protein_g"`
	ServingSize float64 `json:"serving_size"`
}

// Classification is the beverage-vs-solid decision.
// IsInferred is false only when a strong signal fired.
type Classification struct {
	IsBeverage bool   `json:"is_beverage"`
	IsInferred bool   `json:"is_inferred"`
	Reason     string `json:"reason"`
}

// Ingredient is a single normalized ingredient entry.
type Ingredient struct {
	Name  string `json:"name"`
	Class string `json:"class"`
	Note  string `json:"note"`
}

// ProteinBonusRule documents the protein bonus parameters in the breakdown.
type ProteinBonusRule struct {
	ThresholdG float64 `json:"threshold_g"`
	Multiplier float64 `json:"multiplier"`
	Cap        float64 `json:"cap"`
	AppliesTo  string  `json:"applies_to"`
}

// ServingPenaltyRule documents the per-serving sugar penalty parameters.
type ServingPenaltyRule struct {
	ThresholdG float64 `json:"threshold_g"`
	Multiplier float64 `json:"multiplier"`
	Cap        float64 `json:"cap"`
}

// ScoreBreakdown reports every term of the scoring formula. Penalty and
// bonus terms are rounded to integers here only; the running computation
// keeps full precision.
type ScoreBreakdown struct {
	Version string `json:"version"`
	Unit    Unit   `json:"unit"`

	SugarGPer100     float64 `json:"sugar_g_per_100"`
	SaltGPer100      float64 `json:"salt_g_per_100"`
	SatFatGPer100    float64 `json:"sat_fat_g_per_100"`
	ProteinGPer100   float64 `json:"protein_g_per_100"`
	ServingSize      float64 `json:"serving_size"`
	SugarPerServingG float64 `json:"sugar_per_serving_g"`

	PenaltySugar        int `json:"penalty_sugar"`
	PenaltySalt         int `json:"penalty_salt"`
	PenaltySatFat       int `json:"penalty_sat_fat"`
	PenaltyServingSugar int `json:"penalty_serving_sugar"`

	BonusProtein int `json:"bonus_protein"`
	TotalPenalty int `json:"total_penalty"`
	FinalScore   int `json:"final_score"`

	Basis         string `json:"basis"`
	StrictProfile bool   `json:"strict_profile"`

	ProteinBonusRule   ProteinBonusRule   `json:"protein_bonus_rule"`
	ServingPenaltyRule ServingPenaltyRule `json:"serving_penalty_rule"`
}

// WHOImpact expresses per-serving sugar against the WHO daily guideline.
type WHOImpact struct {
	SugarPerServingG float64 `json:"sugar_per_serving_g"`
	IdealLimitG      float64 `json:"ideal_limit_g"`
	UpperLimitG      float64 `json:"upper_limit_g"`
	PercentOfIdeal   float64 `json:"percent_of_ideal"`
	PercentOfUpper   float64 `json:"percent_of_upper"`
	ExceedsIdeal     bool    `json:"exceeds_ideal"`
	ExceedsUpper     bool    `json:"exceeds_upper"`
}

// DataQuality summarizes completeness and provenance of the scan inputs.
type DataQuality struct {
	Source                 string   `json:"source"`
	NutritionFieldsPresent []string `json:"nutrition_fields_present"`
	MissingFields          []string `json:"missing_fields"`
	NutritionComplete      bool     `json:"nutrition_complete"`
	IngredientsAvailable   bool     `json:"ingredients_available"`
	ServingSizeInferred    bool     `json:"serving_size_inferred"`
	IsBeverage             bool     `json:"is_beverage"`
	IsBeverageInferred     bool     `json:"is_beverage_inferred"`
	BeverageReason         string   `json:"beverage_inference_reason"`
	Confidence             string   `json:"confidence"`
}

// NormalizedProduct is the normalizer output: the canonical profile plus
// display fields and provenance flags, before scoring.
type NormalizedProduct struct {
	Code                string
	Name                string
	Brand               string
	ImageURL            string
	Classification      Classification
	ServingSizeInferred bool
	Ingredients         []Ingredient
	Nutrition           NutritionProfile
	FieldsPresent       []string
	FieldsMissing       []string
}

// LocalProduct is a record from the local catalog.
type LocalProduct struct {
	ID          string
	Name        string
	Brand       string
	ImageURL    string
	IsBeverage  bool
	ServingSize float64
	Sugar       float64
	Salt        float64
	SatFat      float64
	Protein     float64
	Ingredients []any
}

// ScanResult is the terminal output of a scan request.
type ScanResult struct {
	Source    string `json:"source"`
	MatchedBy string `json:"matched_by"`
	ProductID string `json:"product_id"`

	Name     string `json:"name"`
	Brand    string `json:"brand,omitempty"`
	ImageURL string `json:"image_url,omitempty"`

	Alerts      []string     `json:"alerts"`
	Ingredients []Ingredient `json:"ingredients"`

	Nutrition NutritionProfile `json:"nutrition_per_100"`

	HealthScore    int            `json:"health_score"`
	ScoreVersion   string         `json:"score_version"`
	ScoreBreakdown ScoreBreakdown `json:"score_breakdown"`

	WHOImpact   WHOImpact   `json:"who_impact"`
	DataQuality DataQuality `json:"data_quality"`

	WhyThisScore []string `json:"why_this_score"`
	Tips         []string `json:"tips"`
}
