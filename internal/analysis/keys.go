// Package analysis turns language backends into index keys and plugs them
// into bleve as per-language tokenizers and analyzers.
package analysis

import (
	"strings"

	"github.com/dietsurvey/foodindex/internal/language"
)

// Group is the set of keys produced for one word or compound part. Keys in
// a group are alternatives for the same token position.
type Group struct {
	Word string   `json:"word"`
	Keys []string `json:"keys"`
}

// Groups runs the index pipeline over text: sanitize, drop ignored words,
// split compounds, stem, encode. A split word also contributes a group for
// itself ahead of its parts, so whole-name queries still match.
func Groups(b language.Backend, text string) []Group {
	var out []Group
	for _, word := range strings.Fields(b.SanitizeDescription(text)) {
		if b.Ignores(word) {
			continue
		}

		parts := b.SplitCompound(word)
		if len(parts) > 1 {
			out = appendGroup(out, b, word)
		}
		for _, part := range parts {
			if b.Ignores(part) {
				continue
			}
			out = appendGroup(out, b, part)
		}
	}
	return out
}

func appendGroup(out []Group, b language.Backend, word string) []Group {
	stem := b.Stem(word)
	if stem == "" {
		return out
	}
	keys := b.Encoder().Encode(stem)
	filtered := keys[:0]
	for _, k := range keys {
		if strings.TrimSpace(k) != "" {
			filtered = append(filtered, k)
		}
	}
	if len(filtered) == 0 {
		return out
	}
	return append(out, Group{Word: word, Keys: filtered})
}

// IndexKeys returns every key for text, in pipeline order, deduplicated.
func IndexKeys(b language.Backend, text string) []string {
	var keys []string
	seen := make(map[string]struct{})
	for _, g := range Groups(b, text) {
		for _, k := range g.Keys {
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	return keys
}
