package language

import (
	"strings"

	"github.com/surgebase/porter2"

	"github.com/dietsurvey/foodindex/internal/phonetic"
)

var englishStopWords = []string{
	"a", "an", "and", "as", "at", "by", "for", "from", "in", "into", "of",
	"on", "or", "the", "to", "with", "without",
}

// English stems with Porter2 and encodes with Double Metaphone.
type English struct {
	core
}

// NewEnglish returns the "en" backend.
func NewEnglish() *English {
	return &English{core: newCore("English", "en", phonetic.MetaphoneEncoder{}, englishStopWords...)}
}

// SplitCompound splits hyphenated words such as stir-fried.
func (e *English) SplitCompound(word string) []string {
	return splitHyphenated(word)
}

// Stem implements Backend.
func (e *English) Stem(word string) string {
	w := strings.ToLower(word)
	if w == "" {
		return w
	}
	return porter2.Stem(w)
}

// SanitizeDescription lower-cases text and turns punctuation into spaces.
func (e *English) SanitizeDescription(text string) string {
	return trimHyphens(sanitizeWords(text, isLatinWordRune))
}

var _ Backend = (*English)(nil)
