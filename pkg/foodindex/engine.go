package foodindex

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/dietsurvey/foodindex/internal/analysis"
	"github.com/dietsurvey/foodindex/internal/compound"
	"github.com/dietsurvey/foodindex/internal/config"
	fierrors "github.com/dietsurvey/foodindex/internal/errors"
	"github.com/dietsurvey/foodindex/internal/expand"
	"github.com/dietsurvey/foodindex/internal/intent"
	"github.com/dietsurvey/foodindex/internal/language"
	"github.com/dietsurvey/foodindex/internal/logging"
	"github.com/dietsurvey/foodindex/internal/tokenize"
)

// chineseCode is the backend carrying the query-time helpers.
const chineseCode = "zh"

// Engine is safe for concurrent use.
type Engine struct {
	cfg      *config.Config
	registry *language.Registry
	logger   *slog.Logger
}

type engineOptions struct {
	logger   *slog.Logger
	jaLoader tokenize.LoadFunc
	zhLoader tokenize.LoadFunc
}

// Option configures an Engine.
type Option func(*engineOptions)

// WithLogger sets the logger passed to every component.
func WithLogger(l *slog.Logger) Option {
	return func(o *engineOptions) {
		o.logger = l
	}
}

// WithTokenizerLoaders replaces the kagome and gse loaders. A nil loader
// keeps the default.
func WithTokenizerLoaders(japanese, chinese tokenize.LoadFunc) Option {
	return func(o *engineOptions) {
		if japanese != nil {
			o.jaLoader = japanese
		}
		if chinese != nil {
			o.zhLoader = chinese
		}
	}
}

// New builds an Engine from cfg. A nil cfg uses defaults.
func New(cfg *config.Config, opts ...Option) (*Engine, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fierrors.ConfigError("invalid configuration", err)
	}

	o := engineOptions{jaLoader: tokenize.LoadKagome, zhLoader: tokenize.LoadGse}
	for _, opt := range opts {
		opt(&o)
	}
	logger := logging.OrDefault(o.logger)

	reg, err := language.Build(language.Options{
		Enabled:           cfg.Language.Enabled,
		JapaneseTokenizer: cfg.Tokenizers.Japanese,
		ChineseTokenizer:  cfg.Tokenizers.Chinese,
		JapaneseLoader:    o.jaLoader,
		ChineseLoader:     o.zhLoader,
		EncoderCacheSize:  cfg.Cache.EncoderSize,
		IntentCacheSize:   cfg.Cache.IntentSize,
		ExtraSynonyms:     cfg.Expansion.ExtraSynonyms,
		Logger:            logger,
	})
	if err != nil {
		return nil, err
	}

	return &Engine{cfg: cfg, registry: reg, logger: logger}, nil
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() *config.Config { return e.cfg }

// Registry returns the language registry.
func (e *Engine) Registry() *language.Registry { return e.registry }

// Resolve returns the backend for code. An empty code means the default
// language; a code with no backend falls back to the configured fallback.
func (e *Engine) Resolve(code string) (language.Backend, error) {
	if code == "" {
		code = e.cfg.Language.Default
	}
	if b, ok := e.registry.Lookup(code); ok {
		return b, nil
	}

	fallback := e.cfg.Language.Fallback
	e.logger.Debug("language_fallback",
		slog.String("requested", code),
		slog.String("fallback", fallback))
	return e.registry.Get(fallback)
}

// Warmup loads the dictionary tokenizers, bounded by the configured
// timeout. Backends stay usable if it fails.
func (e *Engine) Warmup(ctx context.Context) error {
	timeout, err := e.cfg.WarmupTimeout()
	if err != nil {
		return fierrors.ConfigError("invalid tokenizers.warmup_timeout", err)
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := e.registry.Warmup(ctx); err != nil {
		e.logger.Warn("warmup_incomplete", fierrors.LogAttrs(err)...)
		return err
	}
	return nil
}

// WarmupLanguage loads only the tokenizer behind code, if it has one.
// A tokenizer switched off in the config is not an error.
func (e *Engine) WarmupLanguage(ctx context.Context, code string) error {
	b, err := e.Resolve(code)
	if err != nil {
		return err
	}
	tb, ok := b.(language.TokenizerBackend)
	if !ok {
		return nil
	}

	timeout, err := e.cfg.WarmupTimeout()
	if err != nil {
		return fierrors.ConfigError("invalid tokenizers.warmup_timeout", err)
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	_, err = tb.Tokenizer().Init(ctx)
	if err == nil || fierrors.GetCode(err) == fierrors.ErrCodeDependencyUnavailable {
		return nil
	}
	e.logger.Warn("warmup_incomplete",
		append([]any{slog.String("language", b.Code())}, fierrors.LogAttrs(err)...)...)
	return err
}

// Settled reports whether no tokenizer load is pending or in flight.
func (e *Engine) Settled() bool {
	for _, code := range e.registry.Codes() {
		b, _ := e.registry.Lookup(code)
		tb, ok := b.(language.TokenizerBackend)
		if !ok {
			continue
		}
		switch tb.Tokenizer().State() {
		case tokenize.Uninitialized, tokenize.Initializing:
			return false
		}
	}
	return true
}

// Encode returns the phonetic variants of word in language code.
func (e *Engine) Encode(code, word string) ([]string, error) {
	b, err := e.Resolve(code)
	if err != nil {
		return nil, err
	}
	return b.Encoder().Encode(word), nil
}

// Analysis is the index pipeline's view of one text.
type Analysis struct {
	Language  string           `json:"language"`
	Sanitized string           `json:"sanitized"`
	Groups    []analysis.Group `json:"groups"`
	Keys      []string         `json:"keys"`
}

// Analyze runs the index pipeline over text and reports each step.
func (e *Engine) Analyze(code, text string) (Analysis, error) {
	b, err := e.Resolve(code)
	if err != nil {
		return Analysis{}, err
	}
	return Analysis{
		Language:  b.Code(),
		Sanitized: b.SanitizeDescription(text),
		Groups:    analysis.Groups(b, text),
		Keys:      analysis.IndexKeys(b, text),
	}, nil
}

// IndexKeys returns the deduplicated index keys of text.
func (e *Engine) IndexKeys(code, text string) ([]string, error) {
	b, err := e.Resolve(code)
	if err != nil {
		return nil, err
	}
	return analysis.IndexKeys(b, text), nil
}

// Match indexes candidates in memory and ranks them against query.
func (e *Engine) Match(ctx context.Context, code, query string, candidates []string, limit int) ([]analysis.Hit, error) {
	b, err := e.Resolve(code)
	if err != nil {
		return nil, err
	}
	idx, err := analysis.NewMemIndex(b)
	if err != nil {
		return nil, fierrors.InternalError("failed to build match index", err)
	}
	defer func() { _ = idx.Close() }()

	docs := make(map[string]string, len(candidates))
	for i, c := range candidates {
		docs[strconv.Itoa(i)] = c
	}
	if err := idx.Add(ctx, docs); err != nil {
		return nil, err
	}

	hits, err := idx.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	for i := range hits {
		n, _ := strconv.Atoi(hits[i].ID)
		hits[i].ID = candidates[n]
	}
	return hits, nil
}

func (e *Engine) chinese() (*language.Chinese, error) {
	b, err := e.registry.Get(chineseCode)
	if err != nil {
		return nil, err
	}
	zh, ok := b.(*language.Chinese)
	if !ok {
		return nil, fierrors.InternalError(fmt.Sprintf("backend %q has type %T", chineseCode, b), nil)
	}
	return zh, nil
}

// ExpandOptions returns the configured expansion options.
func (e *Engine) ExpandOptions() expand.ExpandOptions {
	x := e.cfg.Expansion
	return expand.ExpandOptions{
		IncludeSynonyms:   x.IncludeSynonyms,
		IncludeRelated:    x.IncludeRelated,
		IncludeCategories: x.IncludeCategories,
		MaxExpansions:     x.MaxExpansions,
	}
}

// ExpandSearchQuery expands a Chinese query with the configured options.
func (e *Engine) ExpandSearchQuery(query string) ([]string, error) {
	return e.ExpandSearchQueryWith(query, e.ExpandOptions())
}

// ExpandSearchQueryWith expands a Chinese query with opts.
func (e *Engine) ExpandSearchQueryWith(query string, opts expand.ExpandOptions) ([]string, error) {
	zh, err := e.chinese()
	if err != nil {
		return nil, err
	}
	return zh.ExpandSearchQuery(query, opts), nil
}

// Suggest returns autocomplete suggestions. A non-positive limit uses the
// configured one.
func (e *Engine) Suggest(partial string, limit int) ([]string, error) {
	zh, err := e.chinese()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = e.cfg.Expansion.AutocompleteLimit
	}
	return zh.GetAutocompleteSuggestions(partial, limit), nil
}

// Parse decomposes a Chinese dish name.
func (e *Engine) Parse(name string) (compound.FoodStructure, error) {
	zh, err := e.chinese()
	if err != nil {
		return compound.FoodStructure{Original: name}, err
	}
	return zh.Parser().Parse(name), nil
}

// Variations returns search variations derived from a dish name's structure.
func (e *Engine) Variations(name string) ([]string, error) {
	zh, err := e.chinese()
	if err != nil {
		return nil, err
	}
	p := zh.Parser()
	return p.GenerateSearchVariations(p.Parse(name)), nil
}

// Similar reports whether two dish names are structurally similar.
func (e *Engine) Similar(a, b string) (bool, error) {
	zh, err := e.chinese()
	if err != nil {
		return false, err
	}
	return zh.Parser().AreSimilar(a, b), nil
}

// QueryIntent bundles everything derived from a query's intent.
type QueryIntent struct {
	Intent    intent.SearchIntent      `json:"intent"`
	Filters   intent.NutritionalFilter `json:"filters"`
	Modifiers intent.SearchModifiers   `json:"-"`
}

// DetectIntent classifies a Chinese query and derives filters and search
// modifiers from it.
func (e *Engine) DetectIntent(query string) (QueryIntent, error) {
	zh, err := e.chinese()
	if err != nil {
		return QueryIntent{}, err
	}
	in := zh.Detector().DetectIntent(query)
	return QueryIntent{
		Intent:    in,
		Filters:   intent.ExtractNutritionalFilters(query),
		Modifiers: intent.GetSearchModifiers(in),
	}, nil
}
