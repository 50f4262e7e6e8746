package phonetic

import "strings"

const (
	hiraganaStart = 0x3041
	hiraganaEnd   = 0x3096
	katakanaStart = 0x30A1
	katakanaEnd   = 0x30F6
	kanaOffset    = katakanaStart - hiraganaStart
)

// ReadingFunc looks up the kana reading of a term. ok is false when no
// reading is available yet.
type ReadingFunc func(term string) (reading string, ok bool)

// KanaEncoder folds Japanese text between hiragana and katakana and, when a
// reading source is set, adds the term's reading in both scripts.
type KanaEncoder struct {
	Reading ReadingFunc
}

// Encode implements Encoder.
func (e KanaEncoder) Encode(input string) []string {
	set := newVariantSet(5)
	set.add(input)

	s := NormalizeWidth(input)
	set.add(s)
	set.add(ToHiragana(s))
	set.add(ToKatakana(s))

	if e.Reading != nil {
		if reading, ok := e.Reading(s); ok && reading != "" {
			set.add(ToHiragana(reading))
			set.add(ToKatakana(reading))
		}
	}
	return set.items
}

// ToHiragana maps katakana to hiragana, leaving other runes alone.
func ToHiragana(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= katakanaStart && r <= katakanaEnd {
			return r - kanaOffset
		}
		return r
	}, s)
}

// ToKatakana maps hiragana to katakana, leaving other runes alone.
func ToKatakana(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= hiraganaStart && r <= hiraganaEnd {
			return r + kanaOffset
		}
		return r
	}, s)
}

var _ Encoder = KanaEncoder{}
