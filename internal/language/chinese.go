package language

import (
	"strings"

	"github.com/dietsurvey/foodindex/internal/compound"
	"github.com/dietsurvey/foodindex/internal/expand"
	"github.com/dietsurvey/foodindex/internal/intent"
	"github.com/dietsurvey/foodindex/internal/phonetic"
	"github.com/dietsurvey/foodindex/internal/tokenize"
)

var chineseIgnore = []string{"的", "和", "与", "及", "或", "了", "之", "配"}

// gse tags dropped from descriptions
var chineseDropPOS = []string{
	tokenize.POSPunctuation,
	tokenize.POSAuxiliary,
	tokenize.POSPreposition,
	tokenize.POSConjunction,
	tokenize.POSModal,
}

// Chinese segments with gse once loaded, splits dish names with the
// compound parser and carries the query-time helpers: expansion,
// autocomplete and intent detection.
type Chinese struct {
	core
	lazy     *tokenize.Lazy
	parser   *compound.Parser
	expander *expand.QueryExpander
	detector *intent.Detector
}

// NewChinese returns the "zh" backend.
func NewChinese(opts Options) *Chinese {
	logger := opts.logger()
	enc := phonetic.NewChineseEncoder(
		phonetic.WithLogger(logger),
		phonetic.WithCacheSize(opts.EncoderCacheSize),
	)
	return &Chinese{
		core:   newCore("Chinese", "zh", enc, chineseIgnore...),
		lazy:   opts.lazy("gse", opts.ChineseTokenizer, opts.ChineseLoader),
		parser: compound.NewParser(),
		expander: expand.NewQueryExpander(
			expand.WithExtraSynonyms(opts.ExtraSynonyms),
			expand.WithLogger(logger),
		),
		detector: intent.NewDetector(
			intent.WithCacheSize(opts.IntentCacheSize),
			intent.WithLogger(logger),
		),
	}
}

// Tokenizer implements TokenizerBackend.
func (c *Chinese) Tokenizer() *tokenize.Lazy { return c.lazy }

// Parser returns the compound dish-name parser.
func (c *Chinese) Parser() *compound.Parser { return c.parser }

// Expander returns the query expander.
func (c *Chinese) Expander() *expand.QueryExpander { return c.expander }

// Detector returns the intent detector.
func (c *Chinese) Detector() *intent.Detector { return c.detector }

// ExpandSearchQuery returns the bounded alternative query strings for query.
func (c *Chinese) ExpandSearchQuery(query string, opts expand.ExpandOptions) []string {
	return c.expander.ExpandQuery(query, opts)
}

// GetAutocompleteSuggestions implements the query-time autocomplete entry point.
func (c *Chinese) GetAutocompleteSuggestions(partial string, limit int) []string {
	return c.expander.GetAutocompleteSuggestions(partial, limit)
}

// SplitCompound returns the recognised components of a dish name, with
// adjacent unrecognised characters kept together. Names with no
// recognised component come back whole.
func (c *Chinese) SplitCompound(word string) []string {
	cs := c.parser.Components(word)

	var (
		parts      []string
		unknown    strings.Builder
		recognised bool
	)
	for _, comp := range cs {
		if comp.Type == compound.TypeUnknown {
			unknown.WriteString(comp.Text)
			continue
		}
		recognised = true
		if unknown.Len() > 0 {
			parts = append(parts, unknown.String())
			unknown.Reset()
		}
		parts = append(parts, comp.Text)
	}
	if !recognised || len(parts) == 0 {
		return single(word)
	}
	if unknown.Len() > 0 {
		parts = append(parts, unknown.String())
	}
	return parts
}

// Stem folds traditional characters to simplified.
func (c *Chinese) Stem(word string) string {
	return strings.ToLower(phonetic.ToSimplified(word))
}

// SanitizeDescription folds width, segments and drops punctuation and
// function words.
func (c *Chinese) SanitizeDescription(text string) string {
	tokens, tagged := c.lazy.TokensOrFallback(strings.ToLower(phonetic.NormalizeWidth(text)))

	words := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if tagged && dropChinesePOS(t.POS) {
			continue
		}
		if w := sanitizeWords(t.Surface, isWordRune); w != "" {
			words = append(words, w)
		}
	}
	return strings.Join(words, " ")
}

func dropChinesePOS(pos string) bool {
	for _, p := range chineseDropPOS {
		if pos == p {
			return true
		}
	}
	return false
}

var _ TokenizerBackend = (*Chinese)(nil)
