package language

import (
	"strings"

	"github.com/blevesearch/snowballstem"
	"github.com/blevesearch/snowballstem/french"

	"github.com/dietsurvey/foodindex/internal/phonetic"
)

var frenchStopWords = []string{
	"à", "a", "au", "aux", "avec", "d", "de", "des", "du", "en", "et", "l",
	"la", "le", "les", "ou", "par", "pour", "sans", "sur", "un", "une",
}

// elided articles and pronouns, matched before an apostrophe
var frenchElisions = []string{"l", "d", "j", "m", "n", "s", "t", "c", "qu", "jusqu", "lorsqu", "puisqu"}

var apostrophes = strings.NewReplacer("’", "'", "‘", "'", "`", "'")

// French stems with the Snowball French stemmer and encodes accent-folded
// Double Metaphone.
type French struct {
	core
}

// NewFrench returns the "fr" backend.
func NewFrench() *French {
	return &French{core: newCore("French", "fr", phonetic.MetaphoneEncoder{Fold: true}, frenchStopWords...)}
}

// SplitCompound splits hyphenated words such as chou-fleur.
func (f *French) SplitCompound(word string) []string {
	return splitHyphenated(word)
}

// Stem implements Backend.
func (f *French) Stem(word string) string {
	w := strings.ToLower(word)
	if w == "" {
		return w
	}
	env := snowballstem.NewEnv(w)
	french.Stem(env)
	return env.Current()
}

// SanitizeDescription removes elisions (l'huile -> huile) and punctuation.
func (f *French) SanitizeDescription(text string) string {
	text = apostrophes.Replace(strings.ToLower(text))
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !isLatinWordRune(r) && r != '\''
	})
	for i, w := range words {
		words[i] = stripElision(w)
	}
	return trimHyphens(sanitizeWords(strings.Join(words, " "), isLatinWordRune))
}

func stripElision(word string) string {
	prefix, rest, ok := strings.Cut(word, "'")
	if !ok {
		return word
	}
	for _, e := range frenchElisions {
		if prefix == e {
			return rest
		}
	}
	return prefix + " " + rest
}

var _ Backend = (*French)(nil)
