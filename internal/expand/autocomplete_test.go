package expand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetAutocompleteSuggestions_PrefixFirst(t *testing.T) {
	e := newTestExpander()

	got := e.GetAutocompleteSuggestions("鸡", 3)

	assert.Equal(t, []string{"鸡肉", "鸡翅", "鸡腿"}, got)
}

func TestGetAutocompleteSuggestions_NearestTermFill(t *testing.T) {
	e := newTestExpander()

	got := e.GetAutocompleteSuggestions("鸡", 10)

	assert.Equal(t, []string{"鸡肉", "鸡翅", "鸡腿", "鸡胸肉", "鸡蛋", "鸡子"}, got)
}

func TestGetAutocompleteSuggestions_Backfill(t *testing.T) {
	e := newTestExpander()

	got := e.GetAutocompleteSuggestions("土豆", 2)

	// No expansion extends 土豆, so expansions backfill in order
	assert.Equal(t, []string{"马铃薯", "洋芋"}, got)
}

func TestGetAutocompleteSuggestions_Typo(t *testing.T) {
	e := newTestExpander()
	assert.Equal(t, []string{"马铃薯"}, e.GetAutocompleteSuggestions("马铃", 5))
}

func TestGetAutocompleteSuggestions_Edges(t *testing.T) {
	e := newTestExpander()

	assert.Empty(t, e.GetAutocompleteSuggestions("", 5))
	assert.Empty(t, e.GetAutocompleteSuggestions("鸡", 0))
	assert.Empty(t, e.GetAutocompleteSuggestions("zzzz", 5))
}

func TestGetAutocompleteSuggestions_NeverIncludesQuery(t *testing.T) {
	e := newTestExpander()
	for _, q := range []string{"鸡", "面", "土豆", "海鲜"} {
		got := e.GetAutocompleteSuggestions(q, 20)
		assert.NotContains(t, got, q)
		assert.LessOrEqual(t, len(got), 20)
	}
}
