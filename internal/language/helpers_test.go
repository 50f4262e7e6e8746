package language

import (
	"context"
	"sync/atomic"

	"github.com/dietsurvey/foodindex/internal/logging"
	"github.com/dietsurvey/foodindex/internal/tokenize"
)

// testOptions builds every backend with tokenizers off and caches disabled.
func testOptions() Options {
	return Options{Logger: logging.Discard()}
}

// fakeJapanese knows a few analyses and treats anything else as one noun.
func fakeJapanese() tokenize.Tokenizer {
	known := map[string][]tokenize.Token{
		"寿司を食べた。": {
			{Surface: "寿司", POS: "名詞-一般", BaseForm: "寿司", Reading: "スシ"},
			{Surface: "を", POS: "助詞-格助詞-一般"},
			{Surface: "食べ", POS: "動詞-自立", BaseForm: "食べる", Reading: "タベ"},
			{Surface: "た", POS: "助動詞"},
			{Surface: "。", POS: "記号-句点"},
		},
		"寿司": {{Surface: "寿司", POS: "名詞-一般", BaseForm: "寿司", Reading: "スシ"}},
	}
	return tokenize.TokenizerFunc(func(text string) ([]tokenize.Token, error) {
		if toks, ok := known[text]; ok {
			return toks, nil
		}
		return []tokenize.Token{{Surface: text, POS: tokenize.POSNoun}}, nil
	})
}

func countingLoader(calls *atomic.Int32, tok tokenize.Tokenizer, err error) tokenize.LoadFunc {
	return func(context.Context) (tokenize.Tokenizer, error) {
		calls.Add(1)
		if err != nil {
			return nil, err
		}
		return tok, nil
	}
}
