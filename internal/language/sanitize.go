package language

import (
	"strings"
	"unicode"
)

// sanitizeWords lower-cases text, turns every rune keep rejects into a
// separator and rejoins the remaining words with single spaces.
func sanitizeWords(text string, keep func(rune) bool) string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !keep(r)
	})
	return strings.Join(words, " ")
}

// isWordRune keeps letters, digits and combining marks.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// isLatinWordRune additionally keeps in-word hyphens for SplitCompound.
func isLatinWordRune(r rune) bool {
	return isWordRune(r) || r == '-'
}

// splitHyphenated splits on hyphens, dropping empty parts.
func splitHyphenated(word string) []string {
	parts := strings.FieldsFunc(word, func(r rune) bool { return r == '-' })
	if len(parts) == 0 {
		return single(word)
	}
	return parts
}

// trimHyphens removes leading and trailing hyphens left by sanitizing.
func trimHyphens(text string) string {
	words := strings.Fields(text)
	out := words[:0]
	for _, w := range words {
		if w = strings.Trim(w, "-"); w != "" {
			out = append(out, w)
		}
	}
	return strings.Join(out, " ")
}
