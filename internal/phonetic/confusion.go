package phonetic

import "strings"

// Position restricts where a confusion pair may substitute inside a syllable.
type Position int

const (
	// Initial matches at the start of a syllable.
	Initial Position = iota
	// Final matches at the end of a syllable.
	Final
	// Anywhere matches the first occurrence inside a syllable.
	Anywhere
)

// ConfusionPair is a bidirectional pair of substrings speakers or typists
// confuse, e.g. retroflex zh against z.
type ConfusionPair struct {
	A, B string
	At   Position
}

// DefaultConfusions covers the common Mandarin dialect mergers plus a few
// vowel transpositions seen in typed pinyin.
var DefaultConfusions = []ConfusionPair{
	{"zh", "z", Initial},
	{"ch", "c", Initial},
	{"sh", "s", Initial},
	{"n", "l", Initial},
	{"f", "h", Initial},
	{"r", "l", Initial},
	{"ang", "an", Final},
	{"eng", "en", Final},
	{"ing", "in", Final},
	{"uo", "ou", Anywhere},
	{"ie", "ei", Anywhere},
	{"iu", "ui", Anywhere},
}

func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u', 'v':
		return true
	}
	return false
}

// substitute replaces from with to in syl at the given position. It reports
// false when the pattern does not apply. Single-letter initials only fire
// when followed by a vowel, and a short form never rewrites the prefix of
// its longer partner (z does not match zh).
func substitute(syl, from, to string, at Position) (string, bool) {
	switch at {
	case Initial:
		if !strings.HasPrefix(syl, from) {
			return "", false
		}
		rest := syl[len(from):]
		if rest == "" {
			return "", false
		}
		if len(from) == 1 && !isVowel(rest[0]) {
			return "", false
		}
		if len(to) > len(from) && strings.HasPrefix(syl, to) {
			return "", false
		}
		return to + rest, true

	case Final:
		if !strings.HasSuffix(syl, from) {
			return "", false
		}
		stem := syl[:len(syl)-len(from)]
		if stem == "" {
			return "", false
		}
		return stem + to, true

	default:
		i := strings.Index(syl, from)
		if i < 0 {
			return "", false
		}
		return syl[:i] + to + syl[i+len(from):], true
	}
}

// confusionVariants applies each pair in both directions to one syllable at
// a time and returns compact and spaced forms of every resulting string.
func confusionVariants(toneless []syllable, pairs []ConfusionPair) []string {
	var out []string
	for i, sy := range toneless {
		if sy.han == 0 {
			continue
		}
		for _, p := range pairs {
			for _, dir := range [2][2]string{{p.A, p.B}, {p.B, p.A}} {
				replaced, ok := substitute(sy.text, dir[0], dir[1], p.At)
				if !ok {
					continue
				}
				alt := make([]syllable, len(toneless))
				copy(alt, toneless)
				alt[i].text = replaced
				out = append(out, joinSyllables(alt, ""), joinSyllables(alt, " "))
			}
		}
	}
	return out
}

// heteronymVariants substitutes every alternate reading of each heteronym
// character, one position at a time.
func heteronymVariants(toneless []syllable, table map[rune][]string) []string {
	var out []string
	for i, sy := range toneless {
		readings, ok := table[sy.han]
		if sy.han == 0 || !ok {
			continue
		}
		for _, reading := range readings {
			if reading == sy.text {
				continue
			}
			alt := make([]syllable, len(toneless))
			copy(alt, toneless)
			alt[i].text = reading
			out = append(out, joinSyllables(alt, ""), joinSyllables(alt, " "))
		}
	}
	return out
}
