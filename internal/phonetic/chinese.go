package phonetic

import (
	"fmt"
	"log/slog"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dietsurvey/foodindex/internal/logging"
)

// DefaultCacheSize bounds the Chinese encoder's result cache.
const DefaultCacheSize = 10000

// ChineseEncoder generates romanized, script, numeral and typo-tolerant
// variants of Chinese food terms.
type ChineseEncoder struct {
	confusions []ConfusionPair
	cache      *lru.Cache[string, []string]
	logger     *slog.Logger
	pipe       *pipeline
}

// ChineseOption configures a ChineseEncoder.
type ChineseOption func(*ChineseEncoder)

// WithLogger sets the logger used for skipped stages.
func WithLogger(l *slog.Logger) ChineseOption {
	return func(e *ChineseEncoder) {
		e.logger = l
	}
}

// WithCacheSize sets the LRU size. Zero or negative disables caching.
func WithCacheSize(n int) ChineseOption {
	return func(e *ChineseEncoder) {
		if n <= 0 {
			e.cache = nil
			return
		}
		e.cache, _ = lru.New[string, []string](n)
	}
}

// WithConfusions replaces the confusion table.
func WithConfusions(pairs []ConfusionPair) ChineseOption {
	return func(e *ChineseEncoder) {
		e.confusions = pairs
	}
}

// NewChineseEncoder creates an encoder with the default tables.
func NewChineseEncoder(opts ...ChineseOption) *ChineseEncoder {
	cache, _ := lru.New[string, []string](DefaultCacheSize)
	e := &ChineseEncoder{
		confusions: DefaultConfusions,
		cache:      cache,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = logging.OrDefault(e.logger)

	e.pipe = (&pipeline{logger: e.logger}).
		then("normalize", stageNormalize).
		then("script", stageScript).
		then("romanize", stageRomanize).
		then("heteronyms", stageHeteronyms).
		then("confusions", e.stageConfusions).
		then("alternatives", stageAlternatives).
		then("numerals", stageNumerals).
		then("tolerance", stageTolerance).
		then("closing", stageClosing)
	return e
}

// Encode implements Encoder. The returned slice is owned by the caller.
func (e *ChineseEncoder) Encode(input string) []string {
	if e.cache != nil {
		if cached, ok := e.cache.Get(input); ok {
			return clone(cached)
		}
	}

	set := newVariantSet(32)
	set.add(input)
	if strings.TrimSpace(input) != "" {
		e.pipe.run(input, set)
	}

	if e.cache != nil {
		e.cache.Add(input, clone(set.items))
	}
	return set.items
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func stageNormalize(input string, set *variantSet) error {
	set.add(NormalizeWidth(input))
	return nil
}

func stageScript(input string, set *variantSet) error {
	set.addAll(scriptVariants(NormalizeWidth(input)))
	return nil
}

func stageRomanize(input string, set *variantSet) error {
	r, ok := romanize(NormalizeWidth(input))
	if !ok {
		if ContainsHan(input) {
			return fmt.Errorf("no reading for %q", input)
		}
		return nil
	}
	set.addAll(r.all())
	return nil
}

func stageHeteronyms(input string, set *variantSet) error {
	r, ok := romanize(NormalizeWidth(input))
	if !ok {
		return nil
	}
	set.addAll(heteronymVariants(r.toneless, heteronyms))
	return nil
}

func (e *ChineseEncoder) stageConfusions(input string, set *variantSet) error {
	r, ok := romanize(NormalizeWidth(input))
	if !ok {
		return nil
	}
	set.addAll(confusionVariants(r.toneless, e.confusions))
	return nil
}

func stageAlternatives(input string, set *variantSet) error {
	s := ToSimplified(NormalizeWidth(input))
	set.addAll(replacePairs(s, alternativeNames))
	set.addAll(replacePairs(s, regionalVariants))
	return nil
}

func stageNumerals(input string, set *variantSet) error {
	set.addAll(numeralVariants(NormalizeWidth(input)))
	return nil
}

func stageTolerance(input string, set *variantSet) error {
	s := NormalizeWidth(input)

	if stripped := numeralMeasure.ReplaceAllString(s, ""); stripped != s && stripped != "" {
		set.add(stripped)
	}
	for _, mw := range measureWords {
		if strings.Contains(s, mw) {
			if stripped := strings.ReplaceAll(s, mw, ""); stripped != "" {
				set.add(stripped)
			}
		}
	}

	runes := []rune(s)
	if n := len(runes); n > 1 {
		switch runes[n-1] {
		case '儿', '子':
			set.add(string(runes[:n-1]))
		default:
			set.add(s + "儿")
		}
	}

	set.addAll(replacePairs(s, similarCharacters))
	return nil
}

// stageClosing re-runs script and romanization over everything collected.
func stageClosing(_ string, set *variantSet) error {
	for _, v := range set.snapshot() {
		if !ContainsHan(v) {
			continue
		}
		set.addAll(scriptVariants(v))
		if r, ok := romanize(v); ok {
			set.addAll(r.all())
		}
	}
	return nil
}

var _ Encoder = (*ChineseEncoder)(nil)
