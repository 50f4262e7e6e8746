package intent

import (
	"regexp"
	"strings"
)

// subTypeRule assigns subType when the query contains any of markers.
type subTypeRule struct {
	markers []string
	subType string
}

// detector recognises one intent category.
type detector struct {
	kind       Type
	confidence float64
	// gate decides whether the category applies; nil means the query must
	// contain one of keywords instead.
	gate     *regexp.Regexp
	keywords []string
	// classify, when set, replaces rules.
	classify func(query string) (string, bool)
	rules    []subTypeRule
	fallback string
}

// Evaluated in this order; on equal confidence the earlier detector wins.
var detectors = []detector{
	{
		kind:       TypeNutritional,
		confidence: 0.9,
		gate:       regexp.MustCompile(`(?i)(低卡|高卡|低热量|高热量|低脂|无脂|脱脂|高蛋白|低蛋白|低糖|无糖|低钠|低盐|少盐|低碳|卡路里|热量|大卡|千卡|kcal|\d+\s*卡|蛋白质|脂肪|碳水|营养)`),
		keywords:   []string{"低卡", "高卡", "低热量", "高热量", "高蛋白", "低蛋白", "低脂", "低糖", "无糖", "低钠", "低盐", "低碳水", "卡路里", "热量", "蛋白质", "脂肪", "碳水"},
		classify:   nutritionalSubType,
		fallback:   "general_nutrition",
	},
	{
		kind:       TypeDietary,
		confidence: 0.85,
		gate:       regexp.MustCompile(`(素食|纯素|吃素|素菜|蛋奶素|清真|无麸质|生酮|减肥|减脂|不吃肉|无乳糖|低嘌呤|vegan|vegetarian|halal|keto)`),
		keywords:   []string{"素食", "纯素", "吃素", "素菜", "蛋奶素", "清真", "无麸质", "生酮", "减肥", "减脂", "不吃肉", "无乳糖", "低嘌呤"},
		rules: []subTypeRule{
			{[]string{"纯素", "vegan"}, "vegan"},
			{[]string{"素", "不吃肉", "vegetarian"}, "vegetarian"},
			{[]string{"清真", "halal"}, "halal"},
			{[]string{"无麸质"}, "gluten_free"},
			{[]string{"生酮", "keto"}, "keto"},
			{[]string{"减肥", "减脂"}, "weight_loss"},
			{[]string{"无乳糖"}, "lactose_free"},
			{[]string{"低嘌呤"}, "low_purine"},
		},
	},
	{
		kind:       TypeMealTime,
		confidence: 0.75,
		gate:       regexp.MustCompile(`(早餐|早饭|早点|午餐|午饭|中饭|晚餐|晚饭|夜宵|宵夜|下午茶|加餐|零食|点心)`),
		keywords:   []string{"早餐", "早饭", "早点", "午餐", "午饭", "中饭", "晚餐", "晚饭", "夜宵", "宵夜", "下午茶", "加餐", "零食", "点心"},
		rules: []subTypeRule{
			{[]string{"早餐", "早饭", "早点"}, "breakfast"},
			{[]string{"午餐", "午饭", "中饭"}, "lunch"},
			{[]string{"晚餐", "晚饭"}, "dinner"},
			{[]string{"夜宵", "宵夜"}, "late_night"},
			{[]string{"下午茶"}, "afternoon_tea"},
			{[]string{"加餐", "零食", "点心"}, "snack"},
		},
	},
	{
		kind:       TypeIngredient,
		confidence: 0.85,
		gate:       regexp.MustCompile(`(含有|包含|加了|配上|用料|食材|原料|里面有|带有)`),
		keywords:   []string{"鸡肉", "牛肉", "猪肉", "羊肉", "鸭肉", "鱼", "虾", "蟹", "鸡蛋", "豆腐", "土豆", "番茄", "蘑菇", "青菜", "米饭", "面条"},
		rules: []subTypeRule{
			{[]string{"鱼", "虾", "蟹", "海鲜"}, "seafood"},
			{[]string{"肉"}, "meat"},
			{[]string{"蛋"}, "egg"},
			{[]string{"豆腐", "豆"}, "soy"},
			{[]string{"菜", "土豆", "番茄", "蘑菇"}, "vegetable"},
			{[]string{"米", "面"}, "staple"},
		},
	},
	{
		kind:       TypeCooking,
		confidence: 0.75,
		keywords:   []string{"红烧", "清蒸", "油炸", "凉拌", "爆炒", "水煮", "炒", "蒸", "煮", "炸", "烤", "炖", "煎", "卤"},
		rules: []subTypeRule{
			{[]string{"蒸"}, "steamed"},
			{[]string{"炸"}, "fried"},
			{[]string{"烤"}, "grilled"},
			{[]string{"炖", "煮"}, "stewed"},
			{[]string{"红烧", "卤"}, "braised"},
			{[]string{"凉拌"}, "cold_dressed"},
			{[]string{"煎"}, "pan_fried"},
			{[]string{"炒"}, "stir_fried"},
		},
	},
	{
		kind:       TypeTaste,
		confidence: 0.7,
		keywords:   []string{"麻辣", "香辣", "酸甜", "清淡", "辣", "甜", "酸", "咸", "鲜", "香", "苦"},
		rules: []subTypeRule{
			{[]string{"清淡"}, "light"},
			{[]string{"辣"}, "spicy"},
			{[]string{"甜"}, "sweet"},
			{[]string{"酸"}, "sour"},
			{[]string{"咸"}, "salty"},
			{[]string{"鲜"}, "umami"},
			{[]string{"香"}, "fragrant"},
			{[]string{"苦"}, "bitter"},
		},
	},
	{
		kind:       TypeHealth,
		confidence: 0.8,
		gate:       regexp.MustCompile(`(健康|养生|滋补|降压|降血糖|降血脂|糖尿病|高血压|孕妇|儿童|宝宝|老人|护胃|养胃|增肌|免疫|补血|补钙)`),
		keywords:   []string{"健康", "养生", "滋补", "降压", "降血糖", "降血脂", "糖尿病", "高血压", "孕妇", "儿童", "宝宝", "老人", "护胃", "养胃", "增肌", "免疫", "补血", "补钙"},
		rules: []subTypeRule{
			{[]string{"糖尿病", "降血糖"}, "diabetes"},
			{[]string{"高血压", "降压"}, "hypertension"},
			{[]string{"降血脂"}, "cholesterol"},
			{[]string{"孕妇"}, "pregnancy"},
			{[]string{"儿童", "宝宝"}, "children"},
			{[]string{"老人"}, "elderly"},
			{[]string{"护胃", "养胃"}, "digestive"},
			{[]string{"增肌"}, "muscle_gain"},
			{[]string{"免疫"}, "immunity"},
		},
		fallback: "general_health",
	},
}

var (
	negationPattern = regexp.MustCompile(`(?:不要|不加|不放|不含|不吃|别放|去掉|没有|免|无)(香菜|味精|麸质|乳糖|花生|辣|油|糖|盐|葱|蒜|肉|蛋)`)

	qualifiers = []string{"非常", "特别", "比较", "稍微", "一点", "超级", "最", "很", "多", "少"}
)

// matches reports whether d applies to query.
func (d detector) matches(query string) bool {
	if d.gate != nil {
		return d.gate.MatchString(query)
	}
	for _, k := range d.keywords {
		if strings.Contains(query, k) {
			return true
		}
	}
	return false
}

func (d detector) evaluate(query string) (SearchIntent, bool) {
	if !d.matches(query) {
		return SearchIntent{}, false
	}

	entities := []string{}
	for _, k := range d.keywords {
		if strings.Contains(query, k) {
			entities = append(entities, k)
		}
	}

	return SearchIntent{
		Type:       d.kind,
		Confidence: d.confidence,
		SubType:    d.subType(query),
		Entities:   entities,
		Modifiers:  []string{},
		Negations:  []string{},
	}, true
}

// nutritionalRules are tried in order against the query and the bounds
// extracted from it; the first that holds names the subType.
var nutritionalRules = []struct {
	subType string
	holds   func(q string, f NutritionalFilter) bool
}{
	{"low_calorie", func(q string, f NutritionalFilter) bool { return f.Calories.capped() }},
	{"low_protein", func(q string, f NutritionalFilter) bool { return f.Protein.capped() }},
	{"high_protein", func(q string, f NutritionalFilter) bool {
		return f.Protein.floored() || strings.Contains(q, "蛋白质")
	}},
	{"low_fat", func(q string, f NutritionalFilter) bool { return f.Fat.capped() }},
	{"low_sugar", func(q string, f NutritionalFilter) bool { return f.Sugar.capped() }},
	{"low_sodium", func(q string, f NutritionalFilter) bool { return f.Sodium.capped() }},
	{"low_carb", func(q string, f NutritionalFilter) bool { return f.Carbs.capped() }},
	{"high_calorie", func(q string, f NutritionalFilter) bool { return f.Calories.floored() }},
}

func nutritionalSubType(query string) (string, bool) {
	f := ExtractNutritionalFilters(query)
	for _, r := range nutritionalRules {
		if r.holds(query, f) {
			return r.subType, true
		}
	}
	return "", false
}

// capped reports an upper bound with no lower bound.
func (r *Range) capped() bool { return r != nil && r.Max != nil && r.Min == nil }

// floored reports a lower bound with no upper bound.
func (r *Range) floored() bool { return r != nil && r.Min != nil && r.Max == nil }

func (d detector) subType(query string) string {
	if d.classify != nil {
		if st, ok := d.classify(query); ok {
			return st
		}
		return d.fallback
	}
	q := strings.ToLower(query)
	for _, r := range d.rules {
		for _, m := range r.markers {
			if strings.Contains(q, m) {
				return r.subType
			}
		}
	}
	return d.fallback
}

func extractNegations(query string) []string {
	out := []string{}
	for _, m := range negationPattern.FindAllStringSubmatch(query, -1) {
		if !containsString(out, m[1]) {
			out = append(out, m[1])
		}
	}
	return out
}

func extractModifiers(query string) []string {
	out := []string{}
	for _, q := range qualifiers {
		if strings.Contains(query, q) {
			out = append(out, q)
		}
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
