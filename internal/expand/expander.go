// Package expand widens food queries with synonyms, related terms and
// category terms.
package expand

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/dietsurvey/foodindex/internal/logging"
)

// DefaultMaxExpansions is used when ExpandOptions.MaxExpansions is not positive.
const DefaultMaxExpansions = 10

// ExpandOptions selects the expansion sources and bounds the result.
type ExpandOptions struct {
	IncludeSynonyms   bool
	IncludeRelated    bool
	IncludeCategories bool
	MaxExpansions     int
}

// DefaultExpandOptions enables every source with the default bound.
func DefaultExpandOptions() ExpandOptions {
	return ExpandOptions{
		IncludeSynonyms:   true,
		IncludeRelated:    true,
		IncludeCategories: true,
		MaxExpansions:     DefaultMaxExpansions,
	}
}

// QueryExpander expands queries over read-only tables built at construction.
type QueryExpander struct {
	groups     [][]string
	related    map[string][]string
	categories map[string][]string // label -> members
	labels     map[string][]string // member -> labels
	vocabulary []string
	logger     *slog.Logger
}

// Option configures a QueryExpander.
type Option func(*QueryExpander)

// WithExtraSynonyms appends synonym groups to the built-in table.
func WithExtraSynonyms(groups [][]string) Option {
	return func(e *QueryExpander) {
		for _, g := range groups {
			if len(g) > 1 {
				e.groups = append(e.groups, append([]string(nil), g...))
			}
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *QueryExpander) {
		e.logger = l
	}
}

// NewQueryExpander builds an expander over the built-in tables.
func NewQueryExpander(opts ...Option) *QueryExpander {
	e := &QueryExpander{
		groups:     append([][]string(nil), SynonymGroups...),
		related:    make(map[string][]string),
		categories: make(map[string][]string),
		labels:     make(map[string][]string),
	}

	for _, rp := range relatedPairs {
		for _, r := range rp.related {
			e.related[rp.term] = appendUnique(e.related[rp.term], r)
			e.related[r] = appendUnique(e.related[r], rp.term)
		}
	}
	for _, c := range categoryTable {
		e.categories[c.label] = c.members
		for _, m := range c.members {
			e.labels[m] = appendUnique(e.labels[m], c.label)
		}
	}

	for _, opt := range opts {
		opt(e)
	}
	e.logger = logging.OrDefault(e.logger)
	e.vocabulary = e.buildVocabulary()
	return e
}

func (e *QueryExpander) buildVocabulary() []string {
	var vocab []string
	seen := make(map[string]bool)
	add := func(terms ...string) {
		for _, t := range terms {
			if !seen[t] {
				seen[t] = true
				vocab = append(vocab, t)
			}
		}
	}
	for _, g := range e.groups {
		add(g...)
	}
	for _, rp := range relatedPairs {
		add(rp.term)
		add(rp.related...)
	}
	for _, c := range categoryTable {
		add(c.label)
		add(c.members...)
	}
	return vocab
}

// Vocabulary returns every term the tables know, in table order.
func (e *QueryExpander) Vocabulary() []string {
	return append([]string(nil), e.vocabulary...)
}

// ExpandQuery returns the query followed by its expansions, deduplicated and
// capped at opts.MaxExpansions. When the candidates exceed the cap, the
// original comes first, then direct synonyms of each token in token order,
// then the remaining candidates in discovery order.
func (e *QueryExpander) ExpandQuery(query string, opts ExpandOptions) []string {
	limit := opts.MaxExpansions
	if limit <= 0 {
		limit = DefaultMaxExpansions
	}

	q := strings.TrimSpace(query)
	if q == "" {
		return []string{query}
	}

	tokens := tokenize(q)

	union := newOrderedSet(query)
	direct := newOrderedSet()
	for _, tok := range tokens {
		if opts.IncludeSynonyms {
			syns := e.synonyms(tok)
			union.add(syns...)
			direct.add(syns...)
		}
		if opts.IncludeRelated {
			union.add(e.related[tok]...)
		}
		if opts.IncludeCategories {
			union.add(e.categories[tok]...)
			union.add(e.labels[tok]...)
		}
	}
	if len(union.items) <= limit {
		return union.items
	}

	e.logger.Debug("expansion_truncated",
		slog.String("query", q),
		slog.Int("candidates", len(union.items)),
		slog.Int("max", limit))

	out := newOrderedSet(query)
	for _, s := range direct.items {
		if len(out.items) >= limit {
			return out.items
		}
		out.add(s)
	}
	for _, s := range union.items {
		if len(out.items) >= limit {
			break
		}
		out.add(s)
	}
	return out.items
}

// synonyms returns the other members of every group containing term.
func (e *QueryExpander) synonyms(term string) []string {
	var out []string
	for _, g := range e.groups {
		if !contains(g, term) {
			continue
		}
		for _, m := range g {
			if m != term {
				out = appendUnique(out, m)
			}
		}
	}
	return out
}

// tokenize splits a trimmed query into lookup tokens. The whole query is
// always the first token, followed by its words when it has several.
func tokenize(q string) []string {
	set := newOrderedSet(q)

	if fields := strings.Fields(q); len(fields) > 1 {
		set.add(fields...)
		return set.items
	}

	n := utf8.RuneCountInString(q)
	switch {
	case n >= 2 && n <= 4:
		for _, r := range q {
			set.add(string(r))
		}
	case n > 4:
		for _, head := range headNouns {
			if rest, ok := strings.CutSuffix(q, head); ok && rest != "" {
				set.add(head, rest)
				break
			}
		}
		for _, prefix := range prefixPatterns {
			if rest, ok := strings.CutPrefix(q, prefix); ok && rest != "" {
				set.add(prefix, rest)
				break
			}
		}
	}
	return set.items
}

// orderedSet keeps first-insertion order.
type orderedSet struct {
	items []string
	seen  map[string]struct{}
}

func newOrderedSet(initial ...string) *orderedSet {
	s := &orderedSet{seen: make(map[string]struct{})}
	s.add(initial...)
	return s
}

func (s *orderedSet) add(vs ...string) {
	for _, v := range vs {
		if _, ok := s.seen[v]; ok {
			continue
		}
		s.seen[v] = struct{}{}
		s.items = append(s.items, v)
	}
}

func (s *orderedSet) has(v string) bool {
	_, ok := s.seen[v]
	return ok
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func appendUnique(list []string, s string) []string {
	if contains(list, s) {
		return list
	}
	return append(list, s)
}
