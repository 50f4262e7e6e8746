package language

import (
	"strings"
	"unicode/utf8"

	"github.com/dietsurvey/foodindex/internal/phonetic"
)

var arabicIgnore = []string{"و", "في", "مع", "من", "على", "او", "بدون"}

// Checked in order; the first match is stripped. Input is already
// normalized, so ta marbuta appears as ه.
var (
	arabicPrefixes = []string{"وال", "بال", "كال", "فال", "لل", "ال"}
	arabicSuffixes = []string{"ها", "ان", "ات", "ون", "ين", "يه", "ه", "ي"}
)

// minArabicStem is the shortest stem, in runes, affix stripping may leave.
const minArabicStem = 2

// Arabic normalizes letters and applies a light prefix/suffix stemmer.
type Arabic struct {
	core
}

// NewArabic returns the "ar-AE" backend.
func NewArabic() *Arabic {
	return &Arabic{core: newCore("Arabic (UAE)", "ar-AE", phonetic.ArabicEncoder{}, arabicIgnore...)}
}

// SplitCompound implements Backend.
func (a *Arabic) SplitCompound(word string) []string {
	return single(word)
}

// Stem normalizes word and strips one definite-article prefix and one
// suffix, never leaving fewer than two letters.
func (a *Arabic) Stem(word string) string {
	w := phonetic.NormalizeArabic(word)
	w = stripAffix(w, arabicPrefixes, strings.CutPrefix)
	if utf8.RuneCountInString(w) > 3 {
		w = stripAffix(w, []string{"و"}, strings.CutPrefix)
	}
	return stripAffix(w, arabicSuffixes, strings.CutSuffix)
}

func stripAffix(w string, affixes []string, cut func(s, affix string) (string, bool)) string {
	for _, a := range affixes {
		if rest, ok := cut(w, a); ok && utf8.RuneCountInString(rest) >= minArabicStem {
			return rest
		}
	}
	return w
}

// SanitizeDescription normalizes letters and drops punctuation.
func (a *Arabic) SanitizeDescription(text string) string {
	return sanitizeWords(phonetic.NormalizeArabic(text), isWordRune)
}

var _ Backend = (*Arabic)(nil)
