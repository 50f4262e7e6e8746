package phonetic

import "strings"

const arabicTatweel = 'ـ'

var arabicLetterFolds = strings.NewReplacer(
	"أ", "ا", "إ", "ا", "آ", "ا", "ٱ", "ا",
	"ة", "ه",
	"ى", "ي",
	"ؤ", "و",
	"ئ", "ي",
)

var arabicLatin = map[rune]string{
	'ا': "a", 'ب': "b", 'ت': "t", 'ث': "th", 'ج': "j", 'ح': "h", 'خ': "kh",
	'د': "d", 'ذ': "dh", 'ر': "r", 'ز': "z", 'س': "s", 'ش': "sh", 'ص': "s",
	'ض': "d", 'ط': "t", 'ظ': "z", 'ع': "a", 'غ': "gh", 'ف': "f", 'ق': "q",
	'ك': "k", 'ل': "l", 'م': "m", 'ن': "n", 'ه': "h", 'و': "w", 'ي': "y",
	'ء': "", 'ﻻ': "la",
}

// NormalizeArabic strips harakat and tatweel and folds alef, ta marbuta and
// alef maksura variants to their base letters.
func NormalizeArabic(s string) string {
	s = StripMarks(s)
	s = strings.Map(func(r rune) rune {
		if r == arabicTatweel {
			return -1
		}
		return r
	}, s)
	return arabicLetterFolds.Replace(s)
}

// TransliterateArabic gives a rough Latin spelling of normalized Arabic text.
// Runes outside the table pass through.
func TransliterateArabic(s string) string {
	var b strings.Builder
	for _, r := range s {
		if lat, ok := arabicLatin[r]; ok {
			b.WriteString(lat)
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

// ArabicEncoder adds the normalized and transliterated forms.
type ArabicEncoder struct{}

// Encode implements Encoder.
func (ArabicEncoder) Encode(input string) []string {
	set := newVariantSet(3)
	set.add(input)

	norm := NormalizeArabic(input)
	set.add(norm)
	set.add(TransliterateArabic(norm))
	return set.items
}

var _ Encoder = ArabicEncoder{}
