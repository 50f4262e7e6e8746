package compound

// GenerateSearchVariations returns alternative query strings for a parsed
// dish, starting with the original name. Empty and duplicate entries are
// dropped.
func (p *Parser) GenerateSearchVariations(fs FoodStructure) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(parts ...string) {
		s := ""
		for _, part := range parts {
			if part == "" {
				return
			}
			s += part
		}
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}

	// Original is always present, even when empty.
	seen[fs.Original] = true
	out = append(out, fs.Original)

	add(fs.Base)
	add(fs.Protein, fs.Base)
	add(fs.Method, fs.Base)
	add(fs.Method, fs.Protein)
	for _, ing := range fs.Ingredients {
		add(fs.Method, ing)
	}

	if simplified := simplifiedName(fs); simplified != "" {
		add(simplified)
	}

	for _, ing := range fs.Ingredients {
		add(fs.Method, ing)
		add(ing, fs.Base)
		add(fs.Flavor, ing)
	}
	return out
}

// simplifiedName concatenates method, protein, first vegetable and base,
// skipping absent parts.
func simplifiedName(fs FoodStructure) string {
	s := fs.Method + fs.Protein
	if len(fs.Vegetables) > 0 {
		s += fs.Vegetables[0]
	}
	return s + fs.Base
}

// AreSimilar reports whether two dish names likely describe the same food:
// same base without a protein conflict, or same method and protein, or more
// than half of the ingredients shared.
func (p *Parser) AreSimilar(a, b string) bool {
	if a == b {
		return true
	}
	fa, fb := p.Parse(a), p.Parse(b)

	if fa.Base != "" && fa.Base == fb.Base {
		if fa.Protein == "" || fb.Protein == "" || fa.Protein == fb.Protein {
			return true
		}
	}

	if fa.Method != "" && fa.Method == fb.Method && fa.Protein != "" && fa.Protein == fb.Protein {
		return true
	}

	return ingredientOverlap(fa.Ingredients, fb.Ingredients) > 0.5
}

// ingredientOverlap is |A∩B| / max(|A|,|B|), zero when both are empty.
func ingredientOverlap(a, b []string) float64 {
	denom := max(len(a), len(b))
	if denom == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(a))
	for _, x := range a {
		set[x] = struct{}{}
	}
	shared := 0
	for _, y := range b {
		if _, ok := set[y]; ok {
			shared++
			delete(set, y)
		}
	}
	return float64(shared) / float64(denom)
}
