package phonetic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dietsurvey/foodindex/internal/logging"
)

func newTestChineseEncoder(opts ...ChineseOption) *ChineseEncoder {
	return NewChineseEncoder(append([]ChineseOption{WithLogger(logging.Discard())}, opts...)...)
}

func TestChineseEncoder_Romanization(t *testing.T) {
	got := newTestChineseEncoder().Encode("红烧牛肉面")

	assert.Equal(t, "红烧牛肉面", got[0])
	assert.Contains(t, got, "hóng shāo niú ròu miàn")
	assert.Contains(t, got, "hong2 shao1 niu2 rou4 mian4")
	assert.Contains(t, got, "hongshaoniuroumian")
	assert.Contains(t, got, "hong shao niu rou mian")
	assert.Contains(t, got, "hsnrm")
}

func TestChineseEncoder_ScriptVariants(t *testing.T) {
	enc := newTestChineseEncoder()

	assert.Contains(t, enc.Encode("牛肉面"), "牛肉麵")
	assert.Contains(t, enc.Encode("牛肉麵"), "牛肉面")
	assert.Contains(t, enc.Encode("雞湯"), "鸡汤")
}

func TestChineseEncoder_WidthFold(t *testing.T) {
	got := newTestChineseEncoder().Encode("ＡＢＣ套餐")
	assert.Contains(t, got, "abc套餐")
}

func TestChineseEncoder_Heteronyms(t *testing.T) {
	got := newTestChineseEncoder().Encode("长寿面")

	assert.Contains(t, got, "changshoumian")
	assert.Contains(t, got, "zhangshoumian")
	assert.Contains(t, got, "zhang shou mian")
}

func TestChineseEncoder_Confusions(t *testing.T) {
	got := newTestChineseEncoder().Encode("牛肉")

	assert.Contains(t, got, "liurou", "n/l merger")
	assert.Contains(t, got, "liu rou")
	assert.Contains(t, got, "niulou", "r/l merger")
	assert.Contains(t, got, "nuirou", "iu/ui transposition")
}

func TestChineseEncoder_ConfusionsRespectBoundaries(t *testing.T) {
	got := newTestChineseEncoder().Encode("烧")

	assert.Contains(t, got, "sao")
	assert.NotContains(t, got, "shhao")
}

func TestChineseEncoder_CustomConfusions(t *testing.T) {
	enc := newTestChineseEncoder(WithConfusions(nil))
	assert.NotContains(t, enc.Encode("牛肉"), "liurou")
}

func TestChineseEncoder_AlternativeNames(t *testing.T) {
	got := newTestChineseEncoder().Encode("土豆")

	assert.Contains(t, got, "马铃薯")
	assert.Contains(t, got, "洋芋")
	assert.Contains(t, got, "薯仔")
	assert.Contains(t, got, "malingshu", "closing pass romanizes alternatives")
}

func TestChineseEncoder_RegionalVariants(t *testing.T) {
	got := newTestChineseEncoder().Encode("凤梨")
	assert.Contains(t, got, "菠萝")
}

func TestChineseEncoder_Numerals(t *testing.T) {
	enc := newTestChineseEncoder()

	assert.Contains(t, enc.Encode("三碗米饭"), "3碗米饭")
	assert.Contains(t, enc.Encode("半个西瓜"), "0.5个西瓜")
	assert.Contains(t, enc.Encode("二十三个饺子"), "23个饺子")
	assert.Contains(t, enc.Encode("三分之一杯"), "1/3杯")
}

func TestChineseEncoder_Tolerance(t *testing.T) {
	enc := newTestChineseEncoder()

	assert.Contains(t, enc.Encode("一碗面条"), "面条", "numeral+measure stripped")
	assert.Contains(t, enc.Encode("饺子"), "饺", "trailing 子 stripped")
	assert.Contains(t, enc.Encode("面条儿"), "面条", "trailing 儿 stripped")
	assert.Contains(t, enc.Encode("面条"), "面条儿", "trailing 儿 added")
	assert.Contains(t, enc.Encode("番茄炒蛋"), "蕃茄炒蛋")
}

func TestChineseEncoder_NonChineseInput(t *testing.T) {
	got := newTestChineseEncoder().Encode("Tofu")
	assert.Contains(t, got, "tofu")
}

func TestChineseEncoder_CacheReturnsCopies(t *testing.T) {
	enc := newTestChineseEncoder()

	first := enc.Encode("鸡汤")
	first[0] = "mutated"
	second := enc.Encode("鸡汤")

	require.NotEmpty(t, second)
	assert.Equal(t, "鸡汤", second[0])
}

func TestChineseEncoder_CacheDisabled(t *testing.T) {
	enc := newTestChineseEncoder(WithCacheSize(0))
	assert.Nil(t, enc.cache)
	assert.Contains(t, enc.Encode("鸡汤"), "jitang")
}

func TestChineseEncoder_Deterministic(t *testing.T) {
	a := newTestChineseEncoder(WithCacheSize(0)).Encode("麻婆豆腐")
	b := newTestChineseEncoder(WithCacheSize(0)).Encode("麻婆豆腐")
	assert.Equal(t, a, b)
}

func TestSubstitute(t *testing.T) {
	tests := []struct {
		syl, from, to string
		at            Position
		want          string
		ok            bool
	}{
		{"zhu", "zh", "z", Initial, "zu", true},
		{"zu", "z", "zh", Initial, "zhu", true},
		{"zhu", "z", "zh", Initial, "", false},
		{"niu", "n", "l", Initial, "liu", true},
		{"n", "n", "l", Initial, "", false},
		{"fang", "ang", "an", Final, "fan", true},
		{"fan", "an", "ang", Final, "fang", true},
		{"an", "an", "ang", Final, "", false},
		{"guo", "uo", "ou", Anywhere, "gou", true},
		{"mian", "uo", "ou", Anywhere, "", false},
	}

	for _, tt := range tests {
		got, ok := substitute(tt.syl, tt.from, tt.to, tt.at)
		assert.Equal(t, tt.ok, ok, "%s %s->%s", tt.syl, tt.from, tt.to)
		assert.Equal(t, tt.want, got, "%s %s->%s", tt.syl, tt.from, tt.to)
	}
}

func TestParseComplexChineseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"二十三", "23", true},
		{"一百二十五", "125", true},
		{"十", "10", true},
		{"十三", "13", true},
		{"一百零五", "105", true},
		{"三万五千", "35000", true},
		{"十万", "100000", true},
		{"两千", "2000", true},
		{"一零五", "105", true},
		{"半", "0.5", true},
		{"", "", false},
		{"面", "", false},
		{"百十", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseComplexChineseNumber(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNumeralVariants_PreservesMeasureWord(t *testing.T) {
	got := numeralVariants("半碗饭")
	assert.Contains(t, got, "0.5碗饭")
}
