package phonetic

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Transformers carry state, so each call builds its own chain.

// NormalizeWidth folds full-width forms to half-width and applies NFKC.
func NormalizeWidth(s string) string {
	out, _, err := transform.String(transform.Chain(width.Fold, norm.NFKC), s)
	if err != nil {
		return s
	}
	return out
}

// StripMarks removes combining marks (accents, Arabic harakat) after NFD.
func StripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// ToSimplified maps traditional dish characters to simplified ones.
func ToSimplified(s string) string {
	return mapRunes(s, toSimplified)
}

// ToTraditional maps simplified dish characters to traditional ones.
func ToTraditional(s string) string {
	return mapRunes(s, toTraditional)
}

func mapRunes(s string, table map[rune]rune) string {
	return strings.Map(func(r rune) rune {
		if m, ok := table[r]; ok {
			return m
		}
		return r
	}, s)
}

// scriptVariants returns the simplified and traditional forms of s.
func scriptVariants(s string) []string {
	return []string{ToSimplified(s), ToTraditional(s)}
}

// ContainsHan reports whether s has at least one Han character.
func ContainsHan(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}

// replacePairs substitutes each side of every pair for the other, one pair
// at a time, returning every string that changed.
func replacePairs(s string, pairs [][2]string) []string {
	var out []string
	for _, p := range pairs {
		if strings.Contains(s, p[0]) {
			out = append(out, strings.ReplaceAll(s, p[0], p[1]))
		}
		if strings.Contains(s, p[1]) {
			out = append(out, strings.ReplaceAll(s, p[1], p[0]))
		}
	}
	return out
}
