package phonetic

import (
	"strings"

	"github.com/antzucaro/matchr"
)

// MetaphoneEncoder adds Double Metaphone codes for each word of the input.
// With Fold set, accents are stripped first and the folded spelling is kept
// as a variant too.
type MetaphoneEncoder struct {
	Fold bool
}

// Encode implements Encoder.
func (e MetaphoneEncoder) Encode(input string) []string {
	set := newVariantSet(4)
	set.add(input)

	s := strings.ToLower(input)
	if e.Fold {
		s = StripMarks(s)
		set.add(s)
	}

	words := strings.FieldsFunc(s, func(r rune) bool {
		return !(r >= 'a' && r <= 'z')
	})
	if len(words) == 0 {
		return set.items
	}

	primary := make([]string, 0, len(words))
	secondary := make([]string, 0, len(words))
	for _, w := range words {
		p, sec := matchr.DoubleMetaphone(w)
		if p == "" {
			continue
		}
		if sec == "" {
			sec = p
		}
		primary = append(primary, p)
		secondary = append(secondary, sec)
	}
	if len(primary) == 0 {
		return set.items
	}
	set.add(strings.Join(primary, " "))
	set.add(strings.Join(secondary, " "))
	return set.items
}

var _ Encoder = MetaphoneEncoder{}
