package compound

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_MethodProteinBase(t *testing.T) {
	// Given: a classic braised beef noodle name
	p := NewParser()

	// When
	fs := p.Parse("红烧牛肉面")

	// Then
	assert.Equal(t, "红烧牛肉面", fs.Original)
	assert.Equal(t, "红烧", fs.Method)
	assert.Equal(t, "牛肉", fs.Protein)
	assert.Equal(t, "面", fs.Base)
	assert.Equal(t, []string{"牛肉"}, fs.Ingredients)
}

func TestParse_Table(t *testing.T) {
	tests := []struct {
		name string
		want FoodStructure
	}{
		{"黄焖鸡米饭", FoodStructure{Method: "黄焖", Protein: "鸡", Base: "米饭", Ingredients: []string{"鸡"}}},
		{"宫保鸡丁", FoodStructure{Flavor: "宫保", Protein: "鸡丁", Ingredients: []string{"鸡丁"}}},
		{"土豆炖牛肉", FoodStructure{Method: "炖", Protein: "牛肉", Vegetables: []string{"土豆"}, Ingredients: []string{"牛肉", "土豆"}}},
		{"川味麻辣火锅", FoodStructure{Style: "川味", Flavor: "麻辣", Base: "火锅"}},
		{"招牌番茄炒蛋", FoodStructure{Modifiers: []string{"招牌"}, Vegetables: []string{"番茄"}, Method: "炒", Protein: "蛋", Ingredients: []string{"蛋", "番茄"}}},
	}

	p := NewParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.want.Original = tt.name
			assert.Equal(t, tt.want, p.Parse(tt.name))
		})
	}
}

func TestParse_ContiguousProteinsConcatenate(t *testing.T) {
	fs := NewParser().Parse("牛羊肉串")

	assert.Equal(t, "牛羊肉", fs.Protein)
}

func TestParse_BaseIsLastOccurrence(t *testing.T) {
	fs := NewParser().Parse("汤面")
	assert.Equal(t, "面", fs.Base)
}

func TestParse_MethodHighestConfidence(t *testing.T) {
	// 炖 and 烤 share confidence; the first keeps the slot
	fs := NewParser().Parse("炖烤鸭")
	assert.Equal(t, "炖", fs.Method)
}

func TestParse_FishFlavorIsNotFish(t *testing.T) {
	fs := NewParser().Parse("鱼香肉丝")

	assert.Equal(t, "鱼香", fs.Flavor)
	assert.Equal(t, "肉丝", fs.Protein)
	assert.NotContains(t, fs.Ingredients, "鱼")
}

func TestParse_FishFlavorWithRealFish(t *testing.T) {
	fs := NewParser().Parse("鱼香鱼片")
	assert.Equal(t, "鱼香", fs.Flavor)
	assert.Equal(t, "鱼", fs.Protein)
}

func TestParse_MergesFlavorIntoMethod(t *testing.T) {
	fs := NewParser().Parse("香烤鸡翅")

	assert.Equal(t, "香烤", fs.Method)
	assert.Empty(t, fs.Flavor)
	assert.Equal(t, "鸡翅", fs.Protein)
}

func TestParse_Overrides(t *testing.T) {
	p := NewParser()

	mapo := p.Parse("麻婆豆腐")
	assert.Equal(t, "豆腐", mapo.Base)
	assert.Empty(t, mapo.Protein)
	assert.Equal(t, "麻辣", mapo.Flavor)

	lion := p.Parse("红烧狮子头")
	assert.Equal(t, "红烧", lion.Method)
	assert.Equal(t, "狮子头", lion.Base)
	assert.Equal(t, "猪肉", lion.Protein)

	ants := p.Parse("蚂蚁上树")
	assert.Equal(t, "粉丝", ants.Base)
	assert.Equal(t, []string{"粉丝", "肉末"}, ants.Ingredients)
}

func TestParse_TrailingQuantityModifier(t *testing.T) {
	p := NewParser()

	assert.Contains(t, p.Parse("饺子20个").Modifiers, "20个")
	assert.Contains(t, p.Parse("包子三个").Modifiers, "三个")
	assert.Empty(t, p.Parse("二十").Modifiers, "whole name is not a trailing quantity")
	assert.Contains(t, p.Parse("鸡翅12").Modifiers, "12")

	tests := []struct {
		name    string
		numeral string
	}{
		{"烤鸭千", "千"},
		{"酸辣粉二", "二"},
		{"牛肉面一百", "一百"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a name ending in a Han numeral with no measure word
			// Then: the numeral is not taken as a quantity
			assert.NotContains(t, p.Parse(tt.name).Modifiers, tt.numeral)
		})
	}
}

func TestParse_UnknownFallsBackToOriginal(t *testing.T) {
	p := NewParser()

	assert.Equal(t, FoodStructure{Original: "abc"}, p.Parse("abc"))
	assert.Equal(t, FoodStructure{Original: ""}, p.Parse(""))
	assert.Equal(t, FoodStructure{Original: "   "}, p.Parse("   "))
}

func TestComponents(t *testing.T) {
	cs := NewParser().Components("拍黄瓜")

	require.Len(t, cs, 2)
	assert.Equal(t, Component{Text: "拍", Type: TypeUnknown, Position: 0, Confidence: unknownConfidence}, cs[0])
	assert.Equal(t, Component{Text: "黄瓜", Type: TypeVegetable, Position: 1, Confidence: 0.8}, cs[1])
}

func TestComponents_FoodCharacterIsIngredient(t *testing.T) {
	cs := NewParser().Components("笋")

	require.Len(t, cs, 1)
	assert.Equal(t, TypeIngredient, cs[0].Type)
	assert.Equal(t, ingredientConfidence, cs[0].Confidence)
}

func TestGenerateSearchVariations(t *testing.T) {
	p := NewParser()

	got := p.GenerateSearchVariations(p.Parse("红烧牛肉面"))

	assert.Equal(t, []string{"红烧牛肉面", "面", "牛肉面", "红烧面", "红烧牛肉"}, got)
}

func TestGenerateSearchVariations_WithVegetablesAndFlavor(t *testing.T) {
	p := NewParser()

	got := p.GenerateSearchVariations(p.Parse("香辣土豆炖牛肉"))

	assert.Equal(t, "香辣土豆炖牛肉", got[0])
	assert.Contains(t, got, "炖牛肉")
	assert.Contains(t, got, "炖土豆")
	assert.Contains(t, got, "炖牛肉土豆", "simplified name")
	assert.Contains(t, got, "香辣土豆")
	assert.Contains(t, got, "香辣牛肉")
}

func TestGenerateSearchVariations_AlwaysContainsOriginal(t *testing.T) {
	p := NewParser()
	for _, name := range []string{"", "abc", "面", "麻婆豆腐", "饺子20个", "鱼香肉丝"} {
		got := p.GenerateSearchVariations(p.Parse(name))
		assert.Contains(t, got, name)

		seen := map[string]bool{}
		for _, v := range got {
			assert.False(t, seen[v], "duplicate %q", v)
			seen[v] = true
		}
	}
}

func TestAreSimilar(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"红烧牛肉面", "清炖牛肉面", true},
		{"红烧牛肉面", "红烧猪肉面", false},
		{"牛肉面", "牛肉饭", true},
		{"番茄炒蛋", "西红柿炒蛋", true},
		{"拍黄瓜", "红烧肉", false},
		{"汤面", "炒面", true},
	}

	p := NewParser()
	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, p.AreSimilar(tt.a, tt.b))
			assert.Equal(t, tt.want, p.AreSimilar(tt.b, tt.a), "symmetric")
		})
	}
}

func TestAreSimilar_Reflexive(t *testing.T) {
	p := NewParser()
	for _, s := range []string{"", "abc", "红烧牛肉面", "🍜", "麻婆豆腐"} {
		assert.True(t, p.AreSimilar(s, s), s)
	}
}

func TestIngredientOverlap(t *testing.T) {
	assert.Equal(t, 0.0, ingredientOverlap(nil, nil))
	assert.Equal(t, 0.5, ingredientOverlap([]string{"a", "b"}, []string{"a"}))
	assert.Equal(t, 1.0, ingredientOverlap([]string{"a"}, []string{"a"}))
	assert.InDelta(t, 2.0/3.0, ingredientOverlap([]string{"a", "b", "c"}, []string{"a", "b"}), 1e-9)
}
