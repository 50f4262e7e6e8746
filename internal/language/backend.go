// Package language defines the per-language backends that turn food text
// into normalized, fuzzy-matchable tokens, and the registry that holds them.
package language

import (
	"sort"
	"strings"

	"github.com/dietsurvey/foodindex/internal/phonetic"
	"github.com/dietsurvey/foodindex/internal/tokenize"
)

// Backend is the capability set every supported language provides. All
// operations are total: they return a usable value for any input,
// including the empty string, and never block on tokenizer loading.
type Backend interface {
	// Name is the human-readable language name.
	Name() string
	// Code is the registry key, e.g. "zh" or "ar-AE".
	Code() string
	// Ignores reports whether word is skipped when building index keys.
	Ignores(word string) bool
	// Encoder generates phonetic variants for a single token.
	Encoder() phonetic.Encoder
	// SplitCompound breaks a word into parts. It may return [word].
	SplitCompound(word string) []string
	// Stem reduces a word to its index form.
	Stem(word string) string
	// SanitizeDescription normalizes free text into space-separated words.
	SanitizeDescription(text string) string
}

// TokenizerBackend is a Backend that depends on a lazily loaded
// dictionary tokenizer.
type TokenizerBackend interface {
	Backend
	Tokenizer() *tokenize.Lazy
}

// core holds the fields every backend shares.
type core struct {
	name    string
	code    string
	ignore  map[string]struct{}
	encoder phonetic.Encoder
}

func newCore(name, code string, encoder phonetic.Encoder, ignore ...string) core {
	set := make(map[string]struct{}, len(ignore))
	for _, w := range ignore {
		set[strings.ToLower(w)] = struct{}{}
	}
	return core{name: name, code: code, ignore: set, encoder: encoder}
}

func (c *core) Name() string              { return c.name }
func (c *core) Code() string              { return c.code }
func (c *core) Encoder() phonetic.Encoder { return c.encoder }

func (c *core) Ignores(word string) bool {
	_, ok := c.ignore[strings.ToLower(word)]
	return ok
}

// IndexIgnore returns the sorted ignore list of b.
func IndexIgnore(b Backend) []string {
	c, ok := coreOf(b)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(c.ignore))
	for w := range c.ignore {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

type hasCore interface{ base() *core }

func (c *core) base() *core { return c }

func coreOf(b Backend) (*core, bool) {
	if hc, ok := b.(hasCore); ok {
		return hc.base(), true
	}
	return nil, false
}

// single is the SplitCompound result for words that are not split.
func single(word string) []string {
	return []string{word}
}
