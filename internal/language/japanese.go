package language

import (
	"strings"

	"github.com/dietsurvey/foodindex/internal/phonetic"
	"github.com/dietsurvey/foodindex/internal/tokenize"
)

var japaneseIgnore = []string{"の", "を", "に", "と", "は", "が", "で", "や", "も", "へ", "から", "より"}

// Japanese segments descriptions with kagome once it has loaded.
// Segmentation happens in SanitizeDescription, so SplitCompound is a no-op.
type Japanese struct {
	core
	lazy *tokenize.Lazy
}

// NewJapanese returns the "ja" backend.
func NewJapanese(opts Options) *Japanese {
	j := &Japanese{lazy: opts.lazy("kagome", opts.JapaneseTokenizer, opts.JapaneseLoader)}
	j.core = newCore("Japanese", "ja", phonetic.KanaEncoder{Reading: j.reading}, japaneseIgnore...)
	return j
}

// Tokenizer implements TokenizerBackend.
func (j *Japanese) Tokenizer() *tokenize.Lazy { return j.lazy }

// SplitCompound implements Backend.
func (j *Japanese) SplitCompound(word string) []string {
	return single(word)
}

// Stem folds width; conjugations are already reduced to base forms by
// SanitizeDescription.
func (j *Japanese) Stem(word string) string {
	return strings.ToLower(phonetic.NormalizeWidth(word))
}

// SanitizeDescription segments text and keeps content words in their
// dictionary form. Particles, auxiliary verbs and symbols are dropped.
func (j *Japanese) SanitizeDescription(text string) string {
	tokens, tagged := j.lazy.TokensOrFallback(phonetic.NormalizeWidth(text))

	words := make([]string, 0, len(tokens))
	for _, t := range tokens {
		term := t.Surface
		if tagged {
			if tokenize.HasPOS(t, tokenize.POSParticle) ||
				tokenize.HasPOS(t, tokenize.POSAuxVerb) ||
				tokenize.HasPOS(t, tokenize.POSSymbol) {
				continue
			}
			term = t.Term()
		}
		if term = strings.TrimSpace(term); term != "" {
			words = append(words, strings.ToLower(term))
		}
	}
	return strings.Join(words, " ")
}

// reading returns the kana reading of term once the tokenizer is ready.
func (j *Japanese) reading(term string) (string, bool) {
	tokens, err := j.lazy.Tokenize(term)
	if err != nil || len(tokens) == 0 {
		return "", false
	}
	var b strings.Builder
	for _, t := range tokens {
		if t.Reading == "" {
			return "", false
		}
		b.WriteString(t.Reading)
	}
	return b.String(), true
}

var _ TokenizerBackend = (*Japanese)(nil)
