// Package intent classifies food search queries and extracts structured
// nutritional filters from them.
package intent

// Type is a coarse search intent.
type Type string

const (
	TypeNutritional Type = "nutritional"
	TypeDietary     Type = "dietary"
	TypeMealTime    Type = "mealTime"
	TypeIngredient  Type = "ingredient"
	TypeCooking     Type = "cooking"
	TypeTaste       Type = "taste"
	TypeHealth      Type = "health"
	TypeGeneral     Type = "general"
)

// GeneralConfidence is the confidence of the fallback intent.
const GeneralConfidence = 0.5

// SearchIntent is the detected intent of one query.
type SearchIntent struct {
	Type       Type     `json:"type"`
	Confidence float64  `json:"confidence"`
	SubType    string   `json:"subType,omitempty"`
	Entities   []string `json:"entities"`
	Modifiers  []string `json:"modifiers"`
	Negations  []string `json:"negations"`
}

func generalIntent() SearchIntent {
	return SearchIntent{
		Type:       TypeGeneral,
		Confidence: GeneralConfidence,
		Entities:   []string{},
		Modifiers:  []string{},
		Negations:  []string{},
	}
}

func (s SearchIntent) clone() SearchIntent {
	s.Entities = append([]string{}, s.Entities...)
	s.Modifiers = append([]string{}, s.Modifiers...)
	s.Negations = append([]string{}, s.Negations...)
	return s
}

// Range is an optional numeric interval; nil bounds are open.
type Range struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// NutritionalFilter holds per-nutrient bounds. Nil fields are unconstrained.
// Calories are kcal, sodium mg, everything else grams.
type NutritionalFilter struct {
	Calories *Range `json:"calories,omitempty"`
	Protein  *Range `json:"protein,omitempty"`
	Carbs    *Range `json:"carbs,omitempty"`
	Fat      *Range `json:"fat,omitempty"`
	Sugar    *Range `json:"sugar,omitempty"`
	Sodium   *Range `json:"sodium,omitempty"`
}

// IsEmpty reports whether no nutrient is constrained.
func (f NutritionalFilter) IsEmpty() bool {
	return f.Calories == nil && f.Protein == nil && f.Carbs == nil &&
		f.Fat == nil && f.Sugar == nil && f.Sodium == nil
}

// FoodItem carries the flags search filters inspect.
type FoodItem struct {
	Name                   string
	ContainsMeat           bool
	ContainsAnimalProducts bool
	ContainsGluten         bool
	ContainsPork           bool
	IsSpicy                bool
	IsGreasy               bool
}

// Filter is a named keep-predicate over food items.
type Filter struct {
	Name string
	Keep func(FoodItem) bool
}

// SortPreference orders search results.
type SortPreference string

const (
	SortRelevance   SortPreference = "relevance"
	SortCaloriesAsc SortPreference = "calories_asc"
	SortProteinDesc SortPreference = "protein_desc"
	SortProteinAsc  SortPreference = "protein_asc"
	SortFatAsc      SortPreference = "fat_asc"
	SortSugarAsc    SortPreference = "sugar_asc"
	SortSodiumAsc   SortPreference = "sodium_asc"
	SortHealthDesc  SortPreference = "health_score_desc"
	SortCookTimeAsc SortPreference = "cooking_time_asc"
	SortPopularDesc SortPreference = "popularity_desc"
)

// SearchModifiers tell the search layer how to bias results for an intent.
type SearchModifiers struct {
	BoostFactors   map[string]float64
	Filters        []Filter
	SortPreference SortPreference
}
