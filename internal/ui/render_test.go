package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderSnapshot_AllSections(t *testing.T) {
	// Given: a full snapshot
	s := Snapshot{
		Query:       "牛肉面",
		Suggestions: []string{"牛肉面", "牛肉"},
		Expansions:  []string{"牛肉面", "牛肉"},
		Intent:      "ingredient/meat (0.80)",
		Filters:     []string{"calories<=300"},
		Structure:   [][2]string{{"base", "面"}, {"protein", "牛肉"}},
	}

	// When: rendering without color
	out := RenderSnapshot(s, NoColorStyles())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// Then: one row per section, structure spans two rows
	assert.Equal(t, []string{
		"Suggestions 牛肉面  牛肉",
		"Expansions  牛肉面  牛肉",
		"Intent      ingredient/meat (0.80)",
		"Filters     calories<=300",
		"Structure   base: 面",
		"            protein: 牛肉",
	}, lines)
}

func TestRenderSnapshot_EmptySectionsShowDash(t *testing.T) {
	// When: rendering an empty snapshot
	out := RenderSnapshot(Snapshot{}, NoColorStyles())

	// Then: every section shows a dash
	assert.Equal(t, 5, strings.Count(out, " -\n"))
}

func TestRenderSnapshot_Error(t *testing.T) {
	// When: the lookup failed
	out := RenderSnapshot(Snapshot{Err: errors.New("boom")}, NoColorStyles())

	// Then: only the error is shown
	assert.Equal(t, "error: boom\n", out)
}
