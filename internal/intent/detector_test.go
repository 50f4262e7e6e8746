package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dietsurvey/foodindex/internal/logging"
)

func newTestDetector(opts ...Option) *Detector {
	return NewDetector(append([]Option{WithLogger(logging.Discard())}, opts...)...)
}

func TestDetectIntent(t *testing.T) {
	tests := []struct {
		query      string
		wantType   Type
		wantSub    string
		confidence float64
	}{
		{"低卡的素食午餐", TypeNutritional, "low_calorie", 0.9},
		{"高蛋白素食", TypeNutritional, "high_protein", 0.9},
		{"热量", TypeNutritional, "general_nutrition", 0.9},
		{"低于200卡", TypeNutritional, "low_calorie", 0.9},
		{"不低于600卡", TypeNutritional, "high_calorie", 0.9},
		{"蛋白质低于10克", TypeNutritional, "low_protein", 0.9},
		{"低蛋白", TypeNutritional, "low_protein", 0.9},
		{"蛋白质至少30克", TypeNutritional, "high_protein", 0.9},
		{"脂肪少于5克的早餐", TypeNutritional, "low_fat", 0.9},
		{"低糖", TypeNutritional, "low_sugar", 0.9},
		{"300到500卡", TypeNutritional, "general_nutrition", 0.9},
		{"素食", TypeDietary, "vegetarian", 0.85},
		{"纯素", TypeDietary, "vegan", 0.85},
		{"清真牛肉", TypeDietary, "halal", 0.85},
		{"早餐吃什么", TypeMealTime, "breakfast", 0.75},
		{"含有鸡肉的菜", TypeIngredient, "meat", 0.85},
		{"清蒸鱼", TypeCooking, "steamed", 0.75},
		{"麻辣", TypeTaste, "spicy", 0.7},
		{"糖尿病食谱", TypeHealth, "diabetes", 0.8},
		{"养生", TypeHealth, "general_health", 0.8},
		{"pizza", TypeGeneral, "", GeneralConfidence},
	}

	d := newTestDetector()
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := d.DetectIntent(tt.query)
			assert.Equal(t, tt.wantType, got.Type)
			assert.Equal(t, tt.wantSub, got.SubType)
			assert.InDelta(t, tt.confidence, got.Confidence, 1e-9)
		})
	}
}

func TestDetectIntent_EmptyQueryIsGeneral(t *testing.T) {
	d := newTestDetector()

	for _, q := range []string{"", "   "} {
		got := d.DetectIntent(q)

		assert.Equal(t, TypeGeneral, got.Type)
		assert.InDelta(t, 0.5, got.Confidence, 1e-9)
		assert.Empty(t, got.SubType)
		require.NotNil(t, got.Entities)
		require.NotNil(t, got.Modifiers)
		require.NotNil(t, got.Negations)
		assert.Empty(t, got.Entities)
	}
}

func TestDetectIntent_TieKeepsEarlierCategory(t *testing.T) {
	d := newTestDetector()

	// Given: meal time and cooking both score 0.75
	// When: both match
	got := d.DetectIntent("清蒸早餐")

	// Then: meal time is evaluated first and is not displaced
	assert.Equal(t, TypeMealTime, got.Type)
	assert.Equal(t, "breakfast", got.SubType)
}

func TestDetectIntent_EntitiesNegationsModifiers(t *testing.T) {
	d := newTestDetector()

	got := d.DetectIntent("含有鸡肉的菜")
	assert.Equal(t, []string{"鸡肉"}, got.Entities)

	got = d.DetectIntent("清蒸鱼")
	assert.Equal(t, []string{"清蒸", "蒸"}, got.Entities)

	got = d.DetectIntent("不要辣的川菜")
	assert.Equal(t, TypeTaste, got.Type)
	assert.Equal(t, []string{"辣"}, got.Negations)
	assert.Empty(t, got.Modifiers)

	got = d.DetectIntent("无糖")
	assert.Equal(t, "low_sugar", got.SubType)
	assert.Equal(t, []string{"糖"}, got.Negations)

	got = d.DetectIntent("少油清淡")
	assert.Equal(t, "light", got.SubType)
	assert.Equal(t, []string{"少"}, got.Modifiers)
	assert.Empty(t, got.Negations)
}

func TestDetectIntent_CallersGetCopies(t *testing.T) {
	d := newTestDetector()

	first := d.DetectIntent("不要辣的川菜")
	require.Len(t, first.Negations, 1)
	first.Negations[0] = "mutated"
	first.Entities = append(first.Entities, "extra")

	second := d.DetectIntent("不要辣的川菜")
	assert.Equal(t, []string{"辣"}, second.Negations)
	assert.NotContains(t, second.Entities, "extra")
}

func TestDetectIntent_CacheDisabled(t *testing.T) {
	d := newTestDetector(WithCacheSize(0))
	assert.Nil(t, d.cache)

	a := d.DetectIntent("素食")
	b := d.DetectIntent("素食")
	assert.Equal(t, a, b)
}

func TestDetectIntent_TrimmedQueriesShareCacheEntry(t *testing.T) {
	d := newTestDetector(WithCacheSize(4))

	d.DetectIntent("  素食 ")
	d.DetectIntent("素食")

	assert.Equal(t, 1, d.cache.Len())
}

func TestDetectAll(t *testing.T) {
	d := newTestDetector()

	got := d.DetectAll("低卡的素食午餐")
	types := make([]Type, len(got))
	for i, in := range got {
		types[i] = in.Type
	}
	assert.Equal(t, []Type{TypeNutritional, TypeDietary, TypeMealTime}, types)

	assert.Empty(t, d.DetectAll("pizza"))
}

func TestDetectIntent_NutrientConstraintPicksItsOwnSort(t *testing.T) {
	tests := []struct {
		query string
		want  SortPreference
	}{
		{"蛋白质低于10克", SortProteinAsc},
		{"脂肪少于5克的早餐", SortFatAsc},
		{"不超过450大卡的晚餐", SortCaloriesAsc},
	}

	d := newTestDetector()
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			// Given: a query bounding one nutrient
			// When: detecting and mapping to modifiers
			m := GetSearchModifiers(d.DetectIntent(tt.query))

			// Then: results are sorted by that nutrient
			assert.Equal(t, tt.want, m.SortPreference)
		})
	}
}
