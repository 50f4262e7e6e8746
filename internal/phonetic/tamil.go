package phonetic

import (
	"strings"
)

var tamilVowels = map[rune]string{
	'அ': "a", 'ஆ': "aa", 'இ': "i", 'ஈ': "ii", 'உ': "u", 'ஊ': "uu",
	'எ': "e", 'ஏ': "ee", 'ஐ': "ai", 'ஒ': "o", 'ஓ': "oo", 'ஔ': "au",
	'ஃ': "k",
}

var tamilConsonants = map[rune]string{
	'க': "k", 'ங': "ng", 'ச': "ch", 'ஞ': "ny", 'ட': "t", 'ண': "nn",
	'த': "th", 'ந': "n", 'ப': "p", 'ம': "m", 'ய': "y", 'ர': "r",
	'ல': "l", 'வ': "v", 'ழ': "zh", 'ள': "ll", 'ற': "rr", 'ன': "n",
	'ஜ': "j", 'ஷ': "sh", 'ஸ': "s", 'ஹ': "h",
}

var tamilVowelSigns = map[rune]string{
	'ா': "aa", 'ி': "i", 'ீ': "ii", 'ு': "u", 'ூ': "uu",
	'ெ': "e", 'ே': "ee", 'ை': "ai", 'ொ': "o", 'ோ': "oo", 'ௌ': "au",
}

const tamilVirama = '்'

// Simplification passes, applied in order.
var (
	tamilLongVowels = strings.NewReplacer("aa", "a", "ii", "i", "uu", "u", "ee", "e", "oo", "o")
	tamilClusters   = strings.NewReplacer("ch", "s", "sh", "s", "zh", "l", "ng", "n", "th", "t", "ny", "n")
)

// TamilEncoder transliterates Tamil script syllable by syllable and adds a
// simplified spelling that tolerates common romanization differences.
type TamilEncoder struct{}

// NewTamilEncoder returns a TamilEncoder.
func NewTamilEncoder() *TamilEncoder { return &TamilEncoder{} }

// Encode implements Encoder.
func (TamilEncoder) Encode(input string) []string {
	set := newVariantSet(3)
	set.add(input)

	full := TransliterateTamil(input)
	set.add(full)
	set.add(SimplifyTamil(full))
	return set.items
}

// TransliterateTamil romanizes Tamil script. A consonant carries an
// inherent "a" unless followed by a vowel sign or the virama. Other runes
// are lower-cased and kept.
func TransliterateTamil(s string) string {
	rs := []rune(s)
	var b strings.Builder
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		if v, ok := tamilVowels[r]; ok {
			b.WriteString(v)
			continue
		}
		c, ok := tamilConsonants[r]
		if !ok {
			if _, sign := tamilVowelSigns[r]; sign || r == tamilVirama {
				continue // stray sign without a consonant
			}
			b.WriteString(strings.ToLower(string(r)))
			continue
		}

		b.WriteString(c)
		if i+1 < len(rs) {
			next := rs[i+1]
			if next == tamilVirama {
				i++
				continue
			}
			if v, ok := tamilVowelSigns[next]; ok {
				b.WriteString(v)
				i++
				continue
			}
		}
		b.WriteString("a")
	}
	return b.String()
}

// SimplifyTamil shortens long vowels, merges similar clusters and collapses
// doubled consonants.
func SimplifyTamil(s string) string {
	s = tamilLongVowels.Replace(s)
	s = tamilClusters.Replace(s)

	var b strings.Builder
	var prev rune
	for _, r := range s {
		if r == prev && !isVowelRune(r) {
			continue
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}

func isVowelRune(r rune) bool {
	return strings.ContainsRune("aeiou", r)
}

var _ Encoder = TamilEncoder{}
