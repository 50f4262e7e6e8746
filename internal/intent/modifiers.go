package intent

var (
	excludeMeat   = Filter{Name: "exclude_meat", Keep: func(f FoodItem) bool { return !f.ContainsMeat }}
	excludeAnimal = Filter{Name: "exclude_animal_products", Keep: func(f FoodItem) bool {
		return !f.ContainsMeat && !f.ContainsAnimalProducts
	}}
	excludePork   = Filter{Name: "exclude_pork", Keep: func(f FoodItem) bool { return !f.ContainsPork }}
	excludeGluten = Filter{Name: "exclude_gluten", Keep: func(f FoodItem) bool { return !f.ContainsGluten }}
	excludeSpicy  = Filter{Name: "exclude_spicy", Keep: func(f FoodItem) bool { return !f.IsSpicy }}
	excludeGreasy = Filter{Name: "exclude_greasy", Keep: func(f FoodItem) bool { return !f.IsGreasy }}
)

// negationFilters map a negated term to the exclusion it implies.
var negationFilters = map[string]Filter{
	"辣": excludeSpicy,
	"油": excludeGreasy,
}

var nutritionalSort = map[string]SortPreference{
	"low_calorie":  SortCaloriesAsc,
	"high_protein": SortProteinDesc,
	"low_protein":  SortProteinAsc,
	"low_fat":      SortFatAsc,
	"low_sugar":    SortSugarAsc,
	"low_sodium":   SortSodiumAsc,
}

var dietaryFilters = map[string][]Filter{
	"vegetarian":  {excludeMeat},
	"vegan":       {excludeAnimal},
	"halal":       {excludePork},
	"gluten_free": {excludeGluten},
}

// GetSearchModifiers maps an intent to boosts, filters and a sort order.
// It is pure; the returned value is freshly allocated.
func GetSearchModifiers(in SearchIntent) SearchModifiers {
	m := SearchModifiers{
		BoostFactors:   map[string]float64{},
		SortPreference: SortRelevance,
	}

	switch in.Type {
	case TypeNutritional:
		m.BoostFactors["nutrition_match"] = 1.5
		if in.SubType != "" {
			m.BoostFactors[in.SubType] = 1.3
		}
		if s, ok := nutritionalSort[in.SubType]; ok {
			m.SortPreference = s
		}
	case TypeDietary:
		m.BoostFactors["dietary_match"] = 2.0
		m.Filters = append(m.Filters, dietaryFilters[in.SubType]...)
		if in.SubType == "weight_loss" || in.SubType == "keto" {
			m.SortPreference = SortCaloriesAsc
		}
	case TypeMealTime:
		m.BoostFactors["meal_time_match"] = 1.3
		if in.SubType != "" {
			m.BoostFactors[in.SubType] = 1.2
		}
		m.SortPreference = SortPopularDesc
	case TypeIngredient:
		m.BoostFactors["ingredient_match"] = 1.8
	case TypeCooking:
		m.BoostFactors["cooking_method_match"] = 1.5
		if in.SubType == "steamed" || in.SubType == "stewed" {
			m.SortPreference = SortHealthDesc
		}
	case TypeTaste:
		m.BoostFactors["flavor_match"] = 1.4
		if in.SubType == "light" {
			m.Filters = append(m.Filters, excludeGreasy)
		}
	case TypeHealth:
		m.BoostFactors["health_score"] = 1.5
		m.SortPreference = SortHealthDesc
	}

	for _, neg := range in.Negations {
		if f, ok := negationFilters[neg]; ok && !hasFilter(m.Filters, f.Name) {
			m.Filters = append(m.Filters, f)
		}
	}
	return m
}

func hasFilter(fs []Filter, name string) bool {
	for _, f := range fs {
		if f.Name == name {
			return true
		}
	}
	return false
}

// Apply keeps the items every filter accepts.
func (m SearchModifiers) Apply(items []FoodItem) []FoodItem {
	out := make([]FoodItem, 0, len(items))
	for _, it := range items {
		keep := true
		for _, f := range m.Filters {
			if !f.Keep(it) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, it)
		}
	}
	return out
}

// FilterNames lists the filter names in order.
func (m SearchModifiers) FilterNames() []string {
	names := make([]string, len(m.Filters))
	for i, f := range m.Filters {
		names[i] = f.Name
	}
	return names
}
