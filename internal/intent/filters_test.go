package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireRange(t *testing.T, r *Range, lo, hi *float64) {
	t.Helper()
	require.NotNil(t, r)
	if lo == nil {
		assert.Nil(t, r.Min)
	} else {
		require.NotNil(t, r.Min)
		assert.InDelta(t, *lo, *r.Min, 1e-9)
	}
	if hi == nil {
		assert.Nil(t, r.Max)
	} else {
		require.NotNil(t, r.Max)
		assert.InDelta(t, *hi, *r.Max, 1e-9)
	}
}

func TestExtractNutritionalFilters_Calories(t *testing.T) {
	tests := []struct {
		query  string
		lo, hi *float64
	}{
		{"低卡的素食午餐", nil, ptr(300)},
		{"高热量", ptr(500), nil},
		{"低于200卡", nil, ptr(200)},
		{"不超过450大卡的晚餐", nil, ptr(450)},
		{"超过500kcal", ptr(500), nil},
		{"300到500卡", ptr(300), ptr(500)},
		{"500-300卡", ptr(300), ptr(500)},
		{"低卡 低于200卡", nil, ptr(200)},
		{"不低于300卡", ptr(300), nil},
		{"热量不少于400卡", ptr(400), nil},
		{"不高于600千卡", nil, ptr(600)},
		{"超过300卡 不超过500卡", ptr(300), ptr(500)},
		{"不<250卡", ptr(250), nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			f := ExtractNutritionalFilters(tt.query)
			requireRange(t, f.Calories, tt.lo, tt.hi)
			assert.Nil(t, f.Protein)
		})
	}
}

func TestExtractNutritionalFilters_OtherNutrients(t *testing.T) {
	f := ExtractNutritionalFilters("高蛋白低脂")
	requireRange(t, f.Protein, ptr(HighProteinMin), nil)
	requireRange(t, f.Fat, nil, ptr(LowFatMax))
	assert.Nil(t, f.Calories)

	f = ExtractNutritionalFilters("蛋白质至少30克")
	requireRange(t, f.Protein, ptr(30), nil)

	f = ExtractNutritionalFilters("蛋白质不低于25克")
	requireRange(t, f.Protein, ptr(25), nil)

	f = ExtractNutritionalFilters("蛋白质不超过8克")
	requireRange(t, f.Protein, nil, ptr(8))

	f = ExtractNutritionalFilters("脂肪少于5克的早餐")
	requireRange(t, f.Fat, nil, ptr(5))
	assert.Nil(t, f.Calories)

	f = ExtractNutritionalFilters("无糖")
	requireRange(t, f.Sugar, nil, ptr(0))

	f = ExtractNutritionalFilters("低糖")
	requireRange(t, f.Sugar, nil, ptr(LowSugarMax))

	f = ExtractNutritionalFilters("低钠")
	requireRange(t, f.Sodium, nil, ptr(LowSodiumMax))

	f = ExtractNutritionalFilters("低碳水")
	requireRange(t, f.Carbs, nil, ptr(LowCarbMax))
}

func TestExtractNutritionalFilters_NothingToExtract(t *testing.T) {
	for _, q := range []string{"", "pizza", "红烧肉"} {
		assert.True(t, ExtractNutritionalFilters(q).IsEmpty(), q)
	}
}
