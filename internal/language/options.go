package language

import (
	"log/slog"

	"github.com/dietsurvey/foodindex/internal/intent"
	"github.com/dietsurvey/foodindex/internal/logging"
	"github.com/dietsurvey/foodindex/internal/phonetic"
	"github.com/dietsurvey/foodindex/internal/tokenize"
)

// Options configures the backends built by Build.
type Options struct {
	// Enabled lists the language codes to build. Empty means all.
	Enabled []string

	// JapaneseTokenizer and ChineseTokenizer switch the dictionary-backed
	// tokenizers on. When off, backends always use the fallback split.
	JapaneseTokenizer bool
	ChineseTokenizer  bool

	// Loaders default to kagome and gse; tests replace them.
	JapaneseLoader tokenize.LoadFunc
	ChineseLoader  tokenize.LoadFunc

	EncoderCacheSize int
	IntentCacheSize  int
	ExtraSynonyms    [][]string

	Logger *slog.Logger
}

// DefaultOptions enables every language and both tokenizers.
func DefaultOptions() Options {
	return Options{
		JapaneseTokenizer: true,
		ChineseTokenizer:  true,
		JapaneseLoader:    tokenize.LoadKagome,
		ChineseLoader:     tokenize.LoadGse,
		EncoderCacheSize:  phonetic.DefaultCacheSize,
		IntentCacheSize:   intent.DefaultCacheSize,
	}
}

func (o Options) logger() *slog.Logger {
	return logging.OrDefault(o.Logger)
}

func (o Options) lazy(name string, enabled bool, load tokenize.LoadFunc) *tokenize.Lazy {
	if !enabled || load == nil {
		return tokenize.Disabled(name)
	}
	return tokenize.NewLazy(name, load, o.logger())
}
