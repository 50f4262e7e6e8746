// Package compound decomposes Chinese dish names into typed components and
// derives search variations from them.
package compound

import (
	"regexp"
	"strings"
)

// ComponentType classifies a parsed span of a dish name.
type ComponentType string

const (
	TypeBase       ComponentType = "base"
	TypeProtein    ComponentType = "protein"
	TypeVegetable  ComponentType = "vegetable"
	TypeMethod     ComponentType = "method"
	TypeFlavor     ComponentType = "flavor"
	TypeStyle      ComponentType = "style"
	TypeModifier   ComponentType = "modifier"
	TypeIngredient ComponentType = "ingredient"
	TypeUnknown    ComponentType = "unknown"
)

// Component is one classified span. Position is in runes.
type Component struct {
	Text       string        `json:"text"`
	Type       ComponentType `json:"type"`
	Position   int           `json:"position"`
	Confidence float64       `json:"confidence"`
}

func (c Component) end() int { return c.Position + len([]rune(c.Text)) }

// FoodStructure is the decomposition of one dish name.
type FoodStructure struct {
	Original    string   `json:"original"`
	Base        string   `json:"base,omitempty"`
	Protein     string   `json:"protein,omitempty"`
	Vegetables  []string `json:"vegetables,omitempty"`
	Method      string   `json:"method,omitempty"`
	Flavor      string   `json:"flavor,omitempty"`
	Style       string   `json:"style,omitempty"`
	Modifiers   []string `json:"modifiers,omitempty"`
	Ingredients []string `json:"ingredients,omitempty"`
}

// trailing quantity such as 20, 20个 or 三份; Han numerals need a measure word
var trailingQuantity = regexp.MustCompile(`(?:[0-9]+(?:个|份|碗|杯|盘|只|块|串|斤|克|人份)?|[零一二两三四五六七八九十百千]+(?:个|份|碗|杯|盘|只|块|串|斤|克|人份))$`)

// Parser decomposes dish names. It holds no per-call state and is safe for
// concurrent use.
type Parser struct{}

// NewParser returns a Parser over the built-in vocabularies.
func NewParser() *Parser { return &Parser{} }

// Components scans name left to right, matching the longest vocabulary
// entry (up to four characters) at each position. Unmatched characters
// become ingredient or unknown components and advance by one.
func (p *Parser) Components(name string) []Component {
	runes := []rune(name)
	var out []Component

	for pos := 0; pos < len(runes); {
		c, ok := matchAt(runes, pos)
		if !ok {
			r := runes[pos]
			c = Component{Text: string(r), Type: TypeUnknown, Position: pos, Confidence: unknownConfidence}
			if _, food := foodCharacters[r]; food {
				c.Type = TypeIngredient
				c.Confidence = ingredientConfidence
			}
		}
		out = append(out, c)
		pos = c.end()
	}
	return mergeFlavorIntoMethod(out)
}

func matchAt(runes []rune, pos int) (Component, bool) {
	for n := min(maxMatchRunes, len(runes)-pos); n >= 1; n-- {
		text := string(runes[pos : pos+n])
		for _, v := range vocabularies {
			if _, ok := v.terms[text]; ok {
				return Component{Text: text, Type: v.kind, Position: pos, Confidence: v.confidence}, true
			}
		}
	}
	return Component{}, false
}

// mergeFlavorIntoMethod joins a one-character flavor directly followed by a
// method into a single method, e.g. 香 + 烤 -> 香烤.
func mergeFlavorIntoMethod(cs []Component) []Component {
	out := make([]Component, 0, len(cs))
	for i := 0; i < len(cs); i++ {
		c := cs[i]
		if c.Type == TypeFlavor && len([]rune(c.Text)) == 1 && i+1 < len(cs) {
			next := cs[i+1]
			if next.Type == TypeMethod && next.Position == c.end() {
				out = append(out, Component{
					Text:       c.Text + next.Text,
					Type:       TypeMethod,
					Position:   c.Position,
					Confidence: next.Confidence,
				})
				i++
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

// Parse decomposes name. It always returns a structure; a name with no
// recognised parts yields one with only Original set.
func (p *Parser) Parse(name string) FoodStructure {
	fs := FoodStructure{Original: name}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fs
	}

	assign(&fs, p.Components(trimmed))
	applyPostRules(&fs, trimmed)
	return fs
}

// assign fills the structure's slots from parsed components.
func assign(fs *FoodStructure, cs []Component) {
	var (
		bestMethod   Component
		proteinEnd   = -1
		proteinDone  bool
		genericItems []string
	)

	for _, c := range cs {
		switch c.Type {
		case TypeMethod:
			if c.Confidence > bestMethod.Confidence {
				bestMethod = c
			}
		case TypeBase:
			fs.Base = c.Text
		case TypeProtein:
			switch {
			case proteinDone:
			case fs.Protein == "":
				fs.Protein = c.Text
				proteinEnd = c.end()
			case c.Position == proteinEnd:
				fs.Protein += c.Text
				proteinEnd = c.end()
			}
		case TypeVegetable:
			fs.Vegetables = appendUnique(fs.Vegetables, c.Text)
		case TypeFlavor:
			if fs.Flavor == "" {
				fs.Flavor = c.Text
			}
		case TypeStyle:
			if fs.Style == "" {
				fs.Style = c.Text
			}
		case TypeModifier:
			fs.Modifiers = appendUnique(fs.Modifiers, c.Text)
		case TypeIngredient:
			genericItems = appendUnique(genericItems, c.Text)
		}
		if fs.Protein != "" && c.Type != TypeProtein {
			proteinDone = true
		}
	}

	fs.Method = bestMethod.Text
	if fs.Protein != "" {
		fs.Ingredients = append(fs.Ingredients, fs.Protein)
	}
	for _, v := range fs.Vegetables {
		fs.Ingredients = appendUnique(fs.Ingredients, v)
	}
	for _, g := range genericItems {
		fs.Ingredients = appendUnique(fs.Ingredients, g)
	}
}

// override rewrites the structure of a well-known dish whose name does not
// describe its contents.
type override struct {
	name  string
	apply func(*FoodStructure)
}

var overrides = []override{
	{"狮子头", func(fs *FoodStructure) {
		fs.Base = "狮子头"
		fs.Protein = "猪肉"
		fs.Ingredients = []string{"猪肉"}
	}},
	{"夫妻肺片", func(fs *FoodStructure) {
		fs.Base = "肺片"
		fs.Protein = "牛肉"
		fs.Flavor = "麻辣"
		fs.Style = "川味"
		fs.Ingredients = []string{"牛肉", "牛杂"}
	}},
	{"佛跳墙", func(fs *FoodStructure) {
		fs.Base = "汤"
		fs.Protein = "海鲜"
		fs.Method = "煨"
		fs.Style = "闽菜"
		fs.Ingredients = []string{"海鲜", "鲍鱼", "海参"}
	}},
	{"蚂蚁上树", func(fs *FoodStructure) {
		fs.Base = "粉丝"
		fs.Protein = "肉末"
		fs.Method = "炒"
		fs.Ingredients = []string{"粉丝", "肉末"}
	}},
	{"麻婆豆腐", func(fs *FoodStructure) {
		fs.Base = "豆腐"
		fs.Protein = ""
		fs.Flavor = "麻辣"
		fs.Style = "川味"
		fs.Ingredients = []string{"豆腐", "肉末"}
	}},
}

func applyPostRules(fs *FoodStructure, name string) {
	// 鱼香 is a seasoning; the dish has no fish unless 鱼 appears again.
	if strings.Contains(name, "鱼香") && strings.Count(name, "鱼") == 1 {
		if fs.Protein == "鱼" {
			fs.Protein = ""
		}
		fs.Ingredients = remove(fs.Ingredients, "鱼")
		if fs.Flavor == "" {
			fs.Flavor = "鱼香"
		}
	}

	for _, o := range overrides {
		if strings.Contains(name, o.name) {
			o.apply(fs)
		}
	}

	if loc := trailingQuantity.FindStringIndex(name); loc != nil && loc[0] > 0 {
		fs.Modifiers = appendUnique(fs.Modifiers, name[loc[0]:])
	}
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}

func remove(list []string, s string) []string {
	out := list[:0]
	for _, v := range list {
		if v != s {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
