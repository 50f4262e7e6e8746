package phonetic

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-pinyin"
)

// syllable is one romanized unit: a Han character's reading, or a run of
// non-Han text carried through verbatim.
type syllable struct {
	text string
	han  rune // 0 for carried-through text
}

func pinyinArgs(style int) pinyin.Args {
	a := pinyin.NewArgs()
	a.Style = style
	return a
}

var (
	argsTone    = pinyinArgs(pinyin.Tone)
	argsTone3   = pinyinArgs(pinyin.Tone3)
	argsNormal  = pinyinArgs(pinyin.Normal)
	argsInitial = pinyinArgs(pinyin.FirstLetter)
)

// syllables romanizes s with args. Whitespace separates carried-through runs.
// ok is false when s contains no Han characters or a reading is missing.
func syllables(s string, args pinyin.Args) (out []syllable, ok bool) {
	var run strings.Builder
	flush := func() {
		if run.Len() > 0 {
			out = append(out, syllable{text: strings.ToLower(run.String())})
			run.Reset()
		}
	}

	sawHan := false
	for _, r := range s {
		switch {
		case unicode.Is(unicode.Han, r):
			flush()
			readings := pinyin.SinglePinyin(r, args)
			if len(readings) == 0 || readings[0] == "" {
				return nil, false
			}
			out = append(out, syllable{text: readings[0], han: r})
			sawHan = true
		case unicode.IsSpace(r):
			flush()
		default:
			run.WriteRune(r)
		}
	}
	flush()
	return out, sawHan
}

func joinSyllables(sy []syllable, sep string) string {
	parts := make([]string, len(sy))
	for i, s := range sy {
		parts[i] = s.text
	}
	return strings.Join(parts, sep)
}

// romanizations is the set of pinyin forms of one string.
type romanizations struct {
	toneMarks    string // hóng shāo
	toneNumerals string // hong2 shao1
	toneless     []syllable
	initials     string // hs
}

func (r romanizations) compact() string { return joinSyllables(r.toneless, "") }
func (r romanizations) spaced() string  { return joinSyllables(r.toneless, " ") }

// all returns every form, in the order they are added to a variant set.
func (r romanizations) all() []string {
	return []string{r.toneMarks, r.toneNumerals, r.compact(), r.spaced(), r.initials}
}

func romanize(s string) (romanizations, bool) {
	var r romanizations

	marks, ok := syllables(s, argsTone)
	if !ok {
		return r, false
	}
	numerals, _ := syllables(s, argsTone3)
	plain, _ := syllables(s, argsNormal)
	initials, _ := syllables(s, argsInitial)

	r.toneMarks = joinSyllables(marks, " ")
	r.toneNumerals = joinSyllables(numerals, " ")
	r.toneless = plain

	var b strings.Builder
	for _, sy := range initials {
		if sy.han == 0 {
			b.WriteString(sy.text)
			continue
		}
		b.WriteString(sy.text[:1])
	}
	r.initials = b.String()

	return r, true
}
