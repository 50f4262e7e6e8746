package language

import (
	"strings"

	"github.com/dietsurvey/foodindex/internal/phonetic"
)

var tamilIgnore = []string{"மற்றும்", "உடன்", "ஒரு", "இல்"}

const tamilPlural = "கள்"

// Tamil encodes transliterations and strips the plural suffix.
type Tamil struct {
	core
}

// NewTamil returns the "ta" backend.
func NewTamil() *Tamil {
	return &Tamil{core: newCore("Tamil", "ta", phonetic.NewTamilEncoder(), tamilIgnore...)}
}

// SplitCompound implements Backend.
func (t *Tamil) SplitCompound(word string) []string {
	return single(word)
}

// Stem strips கள், e.g. தோசைகள் -> தோசை.
func (t *Tamil) Stem(word string) string {
	if stem, ok := strings.CutSuffix(word, tamilPlural); ok && stem != "" {
		return stem
	}
	return word
}

// SanitizeDescription implements Backend.
func (t *Tamil) SanitizeDescription(text string) string {
	return sanitizeWords(text, isWordRune)
}

var _ Backend = (*Tamil)(nil)
