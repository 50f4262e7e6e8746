package tokenize

import (
	"context"
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Japanese IPA part-of-speech heads.
const (
	POSParticle  = "助詞"
	POSAuxVerb   = "助動詞"
	POSSymbol    = "記号"
	POSNoun      = "名詞"
	posUnknown   = "*"
	posSeparator = "-"
)

type kagomeTokenizer struct {
	t *tokenizer.Tokenizer
}

// LoadKagome builds a Japanese tokenizer over the IPA dictionary.
func LoadKagome(_ context.Context) (Tokenizer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &kagomeTokenizer{t: t}, nil
}

// Tokenize returns tokens with POS joined as "名詞-一般".
func (k *kagomeTokenizer) Tokenize(text string) ([]Token, error) {
	morphs := k.t.Tokenize(text)
	out := make([]Token, 0, len(morphs))
	for _, m := range morphs {
		tok := Token{Surface: m.Surface, POS: joinPOS(m.POS())}
		if base, ok := m.BaseForm(); ok && base != posUnknown {
			tok.BaseForm = base
		}
		if reading, ok := m.Reading(); ok && reading != posUnknown {
			tok.Reading = reading
		}
		out = append(out, tok)
	}
	return out, nil
}

func joinPOS(parts []string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" && p != posUnknown {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, posSeparator)
}

// HasPOS reports whether tok's POS starts with head.
func HasPOS(tok Token, head string) bool {
	return tok.POS == head || strings.HasPrefix(tok.POS, head+posSeparator)
}
