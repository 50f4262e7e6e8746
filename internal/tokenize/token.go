// Package tokenize adapts dictionary-backed morphological tokenizers and
// segmenters for the language backends.
//
// Dictionaries are expensive to load, so each tokenizer sits behind a Lazy
// that loads it once on first use. Until it is ready, callers get a
// deterministic script-boundary split from Fallback instead of blocking.
package tokenize

import "context"

// Token is one segment of tokenized text. POS, BaseForm and Reading are
// empty when the tokenizer does not provide them.
type Token struct {
	Surface  string `json:"surface"`
	POS      string `json:"pos,omitempty"`
	BaseForm string `json:"base_form,omitempty"`
	Reading  string `json:"reading,omitempty"`
}

// Term returns the dictionary base form when known, else the surface.
func (t Token) Term() string {
	if t.BaseForm != "" {
		return t.BaseForm
	}
	return t.Surface
}

// Tokenizer splits text into tagged tokens. Implementations must be safe
// for concurrent use once constructed.
type Tokenizer interface {
	Tokenize(text string) ([]Token, error)
}

// TokenizerFunc adapts a function to Tokenizer.
type TokenizerFunc func(text string) ([]Token, error)

// Tokenize calls f.
func (f TokenizerFunc) Tokenize(text string) ([]Token, error) {
	return f(text)
}

// LoadFunc builds a Tokenizer, typically by loading a dictionary.
type LoadFunc func(ctx context.Context) (Tokenizer, error)

// Surfaces returns the surface forms of tokens.
func Surfaces(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Surface
	}
	return out
}
