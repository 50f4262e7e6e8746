package tokenize

import "unicode"

type script int

const (
	scriptSeparator script = iota
	scriptJoin
	scriptHan
	scriptHiragana
	scriptKatakana
	scriptLatin
	scriptDigit
	scriptArabic
	scriptTamil
	scriptOther
)

func scriptOf(r rune) script {
	switch {
	case unicode.IsSpace(r), unicode.IsPunct(r), unicode.IsSymbol(r), unicode.IsControl(r):
		return scriptSeparator
	case unicode.Is(unicode.Mn, r), r == 'ー', r == '\u200c', r == '\u200d':
		return scriptJoin
	case unicode.Is(unicode.Han, r):
		return scriptHan
	case unicode.Is(unicode.Hiragana, r):
		return scriptHiragana
	case unicode.Is(unicode.Katakana, r):
		return scriptKatakana
	case unicode.IsDigit(r):
		return scriptDigit
	case unicode.Is(unicode.Latin, r):
		return scriptLatin
	case unicode.Is(unicode.Arabic, r):
		return scriptArabic
	case unicode.Is(unicode.Tamil, r):
		return scriptTamil
	default:
		return scriptOther
	}
}

// Fallback splits text at whitespace, punctuation and script changes, so
// "鸡肉とtofu、100g" becomes 鸡肉 と tofu 100 g. Combining marks and the
// prolonged sound mark stay with the preceding run. Tokens carry no tags.
func Fallback(text string) []Token {
	var (
		out  []Token
		run  []rune
		last = scriptSeparator
	)
	flush := func() {
		if len(run) > 0 {
			out = append(out, Token{Surface: string(run)})
			run = run[:0]
		}
	}

	for _, r := range text {
		s := scriptOf(r)
		switch s {
		case scriptSeparator:
			flush()
			last = scriptSeparator
			continue
		case scriptJoin:
			if len(run) > 0 {
				run = append(run, r)
				continue
			}
			s = scriptOther
		}
		if s != last {
			flush()
		}
		run = append(run, r)
		last = s
	}
	flush()
	return out
}
