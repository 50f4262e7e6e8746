package phonetic

import (
	"regexp"
	"strconv"
	"strings"
)

var hanDigits = map[rune]int{
	'零': 0, '〇': 0, '一': 1, '二': 2, '两': 2, '三': 3, '四': 4,
	'五': 5, '六': 6, '七': 7, '八': 8, '九': 9,
}

var hanUnits = map[rune]int{'十': 10, '百': 100, '千': 1000}

const hanNumeralClass = `零〇一二两三四五六七八九十百千万`

var (
	numeralRun = regexp.MustCompile(`[` + hanNumeralClass + `]+`)

	// numeral or 半 followed by a measure word, e.g. 三碗, 半个
	numeralMeasure = regexp.MustCompile(`([` + hanNumeralClass + `]+|半)(` + strings.Join(measureWords, "|") + `)`)
)

// ParseComplexChineseNumber converts a Han numeral to Arabic digits.
// Composite numbers accumulate right to left with unit multipliers (十百千)
// and 万 as a section multiplier; a leading unit implies one (十三 = 13).
// Runs without units are read positionally (一零五 = 105). 半 is 0.5.
// ok is false for anything else.
func ParseComplexChineseNumber(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	if s == "半" {
		return "0.5", true
	}

	runes := []rune(s)
	hasUnit := false
	for _, r := range runes {
		_, digit := hanDigits[r]
		_, unit := hanUnits[r]
		switch {
		case unit || r == '万':
			hasUnit = true
		case !digit:
			return "", false
		}
	}

	if !hasUnit {
		var b strings.Builder
		for _, r := range runes {
			b.WriteString(strconv.Itoa(hanDigits[r]))
		}
		return b.String(), true
	}

	total := 0
	unit := 1
	section := 1
	pendingUnit := false
	for i := len(runes) - 1; i >= 0; i-- {
		r := runes[i]
		if d, ok := hanDigits[r]; ok {
			total += d * unit * section
			pendingUnit = false
			continue
		}
		if r == '万' {
			if pendingUnit {
				total += unit * section
			}
			section = 10000
			unit = 1
			pendingUnit = true
			continue
		}
		if pendingUnit && unit > 1 {
			// 万十 style gaps are not valid numerals
			return "", false
		}
		unit = hanUnits[r]
		pendingUnit = true
	}
	if pendingUnit {
		total += unit * section
	}
	return strconv.Itoa(total), true
}

// numeralVariants returns s with Han numerals rewritten as Arabic numbers:
// fraction idioms first, then numeral+measure phrases, then bare numeral runs.
func numeralVariants(s string) []string {
	var out []string

	fractions := s
	for _, f := range fractionIdioms {
		if f[0] == "半" {
			continue
		}
		fractions = strings.ReplaceAll(fractions, f[0], f[1])
	}
	if fractions != s {
		out = append(out, fractions)
	}

	measured := numeralMeasure.ReplaceAllStringFunc(s, func(m string) string {
		parts := numeralMeasure.FindStringSubmatch(m)
		if n, ok := ParseComplexChineseNumber(parts[1]); ok {
			return n + parts[2]
		}
		return m
	})
	if measured != s {
		out = append(out, measured)
	}

	bare := numeralRun.ReplaceAllStringFunc(measured, func(m string) string {
		if n, ok := ParseComplexChineseNumber(m); ok {
			return n
		}
		return m
	})
	if bare != measured {
		out = append(out, bare)
	}
	return out
}
