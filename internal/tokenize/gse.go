package tokenize

import (
	"context"

	"github.com/go-ego/gse"
)

// gse part-of-speech tags the Chinese backend cares about.
const (
	POSPunctuation = "x"
	POSAuxiliary   = "u"
	POSPreposition = "p"
	POSConjunction = "c"
	POSModal       = "y"
)

type gseTokenizer struct {
	seg *gse.Segmenter
}

// LoadGse builds a Chinese segmenter over gse's embedded dictionary.
func LoadGse(_ context.Context) (Tokenizer, error) {
	seg := new(gse.Segmenter)
	if err := seg.LoadDict(); err != nil {
		return nil, err
	}
	return &gseTokenizer{seg: seg}, nil
}

func (g *gseTokenizer) Tokenize(text string) ([]Token, error) {
	segs := g.seg.Pos(text, false)
	out := make([]Token, 0, len(segs))
	for _, s := range segs {
		out = append(out, Token{Surface: s.Text, POS: s.Pos})
	}
	return out, nil
}
