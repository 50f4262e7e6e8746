package expand

import (
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"
)

// MinSuggestionSimilarity is the Jaro-Winkler floor for nearest-term fill.
const MinSuggestionSimilarity = 0.6

// GetAutocompleteSuggestions returns up to limit completions for a partial
// query: expansions that extend it as a prefix first, then other expansions,
// then the closest vocabulary terms by Jaro-Winkler similarity.
func (e *QueryExpander) GetAutocompleteSuggestions(partial string, limit int) []string {
	partial = strings.TrimSpace(partial)
	if partial == "" || limit <= 0 {
		return []string{}
	}

	expansions := e.ExpandQuery(partial, ExpandOptions{
		IncludeSynonyms:   true,
		IncludeRelated:    true,
		IncludeCategories: true,
		MaxExpansions:     max(limit*3, 20),
	})

	out := newOrderedSet()
	for _, s := range expansions {
		if len(out.items) >= limit {
			return out.items
		}
		if s != partial && strings.HasPrefix(s, partial) {
			out.add(s)
		}
	}
	for _, s := range expansions {
		if len(out.items) >= limit {
			return out.items
		}
		if s != partial {
			out.add(s)
		}
	}

	for _, s := range e.nearestTerms(partial) {
		if len(out.items) >= limit {
			break
		}
		if !out.has(s) {
			out.add(s)
		}
	}
	return out.items
}

type scoredTerm struct {
	term  string
	score float32
}

// nearestTerms ranks the vocabulary by similarity to partial, best first,
// keeping table order among equal scores.
func (e *QueryExpander) nearestTerms(partial string) []string {
	var scored []scoredTerm
	for _, term := range e.vocabulary {
		if term == partial {
			continue
		}
		score, err := edlib.StringsSimilarity(partial, term, edlib.JaroWinkler)
		if err != nil {
			e.logger.Debug("similarity_failed", "term", term, "error", err)
			continue
		}
		if score >= MinSuggestionSimilarity {
			scored = append(scored, scoredTerm{term: term, score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	out := make([]string, len(scored))
	for i, s := range scored {
		out[i] = s.term
	}
	return out
}
