package intent

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Fixed thresholds for qualitative nutrient words.
const (
	LowCalorieMax   = 300.0
	HighCalorieMin  = 500.0
	HighProteinMin  = 20.0
	LowProteinMax   = 10.0
	LowSugarMax     = 5.0
	LowSodiumMax    = 120.0
	LowFatMax       = 3.0
	LowCarbMax      = 20.0
	nutrientFreeMax = 0.0
)

type nutrient int

const (
	calories nutrient = iota
	protein
	carbs
	fat
	sugar
	sodium
)

type bound int

const (
	lower bound = iota
	upper
	between
	// compared takes the bound from the comparator word in group 1 and
	// the value from group 2.
	compared
)

// filterRule sets one or both bounds of a nutrient when pattern matches.
// A fixed value is used when set; otherwise numbers come from the
// pattern's capture groups.
type filterRule struct {
	pattern  *regexp.Regexp
	nutrient nutrient
	bound    bound
	fixed    *float64
}

// Negated forms come first so the alternation never stops at the plain
// comparator inside them.
const comparator = `(不超过|不高于|不多于|不大于|不到|不低于|不少于|不小于|至少|低于|少于|小于|高于|多于|大于|超过|<|>)`

var comparatorBounds = map[string]bound{
	"不超过": upper, "不高于": upper, "不多于": upper, "不大于": upper, "不到": upper,
	"低于": upper, "少于": upper, "小于": upper, "<": upper,
	"不低于": lower, "不少于": lower, "不小于": lower, "至少": lower,
	"高于": lower, "多于": lower, "大于": lower, "超过": lower, ">": lower,
}

func flip(b bound) bound {
	if b == upper {
		return lower
	}
	return upper
}

// comparatorBound maps the comparator matched at start to a bound. A plain
// comparator preceded by 不 is negated.
func comparatorBound(query string, start int, word string) bound {
	b := comparatorBounds[word]
	if strings.HasPrefix(word, "不") {
		return b
	}
	if r, _ := utf8.DecodeLastRuneInString(query[:start]); r == '不' {
		return flip(b)
	}
	return b
}

func ptr(v float64) *float64 { return &v }

const calorieUnit = `\s*(?:大卡|千卡|卡路里|卡|kcal|cal)`

// Applied in order; a later match overwrites the same bound.
var filterRules = []filterRule{
	{regexp.MustCompile(`低卡|低热量`), calories, upper, ptr(LowCalorieMax)},
	{regexp.MustCompile(`高卡|高热量`), calories, lower, ptr(HighCalorieMin)},
	{regexp.MustCompile(`(?i)` + comparator + `\s*(\d+(?:\.\d+)?)` + calorieUnit), calories, compared, nil},
	{regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:-|~|到|至)\s*(\d+(?:\.\d+)?)` + calorieUnit), calories, between, nil},

	{regexp.MustCompile(`高蛋白`), protein, lower, ptr(HighProteinMin)},
	{regexp.MustCompile(`低蛋白`), protein, upper, ptr(LowProteinMax)},
	{regexp.MustCompile(`(?i)蛋白质?(?:含量)?\s*` + comparator + `\s*(\d+(?:\.\d+)?)\s*(?:克|g)?`), protein, compared, nil},

	{regexp.MustCompile(`低糖`), sugar, upper, ptr(LowSugarMax)},
	{regexp.MustCompile(`无糖`), sugar, upper, ptr(nutrientFreeMax)},
	{regexp.MustCompile(`低钠|低盐|少盐`), sodium, upper, ptr(LowSodiumMax)},
	{regexp.MustCompile(`低脂`), fat, upper, ptr(LowFatMax)},
	{regexp.MustCompile(`无脂|脱脂`), fat, upper, ptr(nutrientFreeMax)},
	{regexp.MustCompile(`(?i)脂肪(?:含量)?\s*` + comparator + `\s*(\d+(?:\.\d+)?)\s*(?:克|g)?`), fat, compared, nil},
	{regexp.MustCompile(`低碳水|低碳`), carbs, upper, ptr(LowCarbMax)},
}

// ExtractNutritionalFilters derives nutrient bounds from query. It is
// independent of intent detection.
func ExtractNutritionalFilters(query string) NutritionalFilter {
	var f NutritionalFilter
	for _, rule := range filterRules {
		if rule.bound == compared {
			applyCompared(&f, rule, query)
			continue
		}

		m := rule.pattern.FindStringSubmatch(query)
		if m == nil {
			continue
		}

		if rule.fixed != nil {
			f.rangeFor(rule.nutrient).set(rule.bound, *rule.fixed)
			continue
		}

		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if rule.bound != between {
			f.rangeFor(rule.nutrient).set(rule.bound, v)
			continue
		}

		hi, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			continue
		}
		lo := min(v, hi)
		hi = max(v, hi)
		r := f.rangeFor(rule.nutrient)
		r.Min, r.Max = ptr(lo), ptr(hi)
	}
	return f
}

// applyCompared applies every comparator match in query order, so a later
// match overwrites the same bound.
func applyCompared(f *NutritionalFilter, rule filterRule, query string) {
	for _, loc := range rule.pattern.FindAllStringSubmatchIndex(query, -1) {
		word := query[loc[2]:loc[3]]
		v, err := strconv.ParseFloat(query[loc[4]:loc[5]], 64)
		if err != nil {
			continue
		}
		f.rangeFor(rule.nutrient).set(comparatorBound(query, loc[2], word), v)
	}
}

func (r *Range) set(b bound, v float64) {
	if b == lower {
		r.Min = ptr(v)
		return
	}
	r.Max = ptr(v)
}

// rangeFor returns the field's range, allocating it on first use.
func (f *NutritionalFilter) rangeFor(n nutrient) *Range {
	var field **Range
	switch n {
	case calories:
		field = &f.Calories
	case protein:
		field = &f.Protein
	case carbs:
		field = &f.Carbs
	case fat:
		field = &f.Fat
	case sugar:
		field = &f.Sugar
	default:
		field = &f.Sodium
	}
	if *field == nil {
		*field = &Range{}
	}
	return *field
}
