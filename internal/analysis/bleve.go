package analysis

import (
	"fmt"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	bleveanalysis "github.com/blevesearch/bleve/v2/analysis"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/custom"
	"github.com/blevesearch/bleve/v2/analysis/token/lowercase"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/registry"

	"github.com/dietsurvey/foodindex/internal/language"
	"github.com/dietsurvey/foodindex/internal/phonetic"
)

const (
	// TokenizerType is the bleve tokenizer type backed by a language backend.
	TokenizerType = "food"

	// NameField is the indexed document field.
	NameField = "name"

	configLanguage = "language"
)

// TokenizerName returns the per-language tokenizer name, e.g. food_zh.
func TokenizerName(code string) string { return TokenizerType + "_" + code }

// AnalyzerName returns the per-language analyzer name.
func AnalyzerName(code string) string { return "food_analyzer_" + code }

// bleve resolves tokenizers through its global registry, so the backends
// it may ask for are kept here by code.
var (
	backendsMu sync.RWMutex
	backends   = map[string]language.Backend{}
)

func init() {
	_ = registry.RegisterTokenizer(TokenizerType, tokenizerConstructor)
}

func tokenizerConstructor(config map[string]interface{}, _ *registry.Cache) (bleveanalysis.Tokenizer, error) {
	code, _ := config[configLanguage].(string)

	backendsMu.RLock()
	b, ok := backends[code]
	backendsMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no backend registered for food tokenizer language %q", code)
	}
	return &Tokenizer{backend: b}, nil
}

// Tokenizer implements bleve's analysis.Tokenizer over a backend. Keys of
// the same word share a position so phrase and match queries treat them as
// alternatives.
type Tokenizer struct {
	backend language.Backend
}

// NewTokenizer returns a Tokenizer for b.
func NewTokenizer(b language.Backend) *Tokenizer {
	return &Tokenizer{backend: b}
}

// Tokenize implements analysis.Tokenizer.
func (t *Tokenizer) Tokenize(input []byte) bleveanalysis.TokenStream {
	text := string(input)
	lower := strings.ToLower(text)
	groups := Groups(t.backend, text)

	stream := make(bleveanalysis.TokenStream, 0, len(groups)*4)
	offset := 0
	for i, g := range groups {
		start := strings.Index(lower[offset:], strings.ToLower(g.Word))
		if start == -1 {
			start = offset
		} else {
			start += offset
		}
		end := min(start+len(g.Word), len(text))

		typ := bleveanalysis.AlphaNumeric
		if phonetic.ContainsHan(g.Word) {
			typ = bleveanalysis.Ideographic
		}
		for _, k := range g.Keys {
			stream = append(stream, &bleveanalysis.Token{
				Term:     []byte(k),
				Start:    start,
				End:      end,
				Position: i + 1,
				Type:     typ,
			})
		}
		if end > offset {
			offset = end
		}
	}
	return stream
}

// IndexMapping returns a mapping whose default analyzer indexes with b.
func IndexMapping(b language.Backend) (*mapping.IndexMappingImpl, error) {
	backendsMu.Lock()
	backends[b.Code()] = b
	backendsMu.Unlock()

	m := bleve.NewIndexMapping()
	tokenizer := TokenizerName(b.Code())
	if err := m.AddCustomTokenizer(tokenizer, map[string]interface{}{
		"type":         TokenizerType,
		configLanguage: b.Code(),
	}); err != nil {
		return nil, fmt.Errorf("failed to add food tokenizer: %w", err)
	}

	analyzer := AnalyzerName(b.Code())
	if err := m.AddCustomAnalyzer(analyzer, map[string]interface{}{
		"type":          custom.Name,
		"tokenizer":     tokenizer,
		"token_filters": []string{lowercase.Name},
	}); err != nil {
		return nil, fmt.Errorf("failed to add food analyzer: %w", err)
	}
	m.DefaultAnalyzer = analyzer
	return m, nil
}
