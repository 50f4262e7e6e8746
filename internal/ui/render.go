package ui

import (
	"fmt"
	"strings"
)

const labelWidth = 12

// RenderSnapshot formats a snapshot as labelled lines.
func RenderSnapshot(s Snapshot, styles Styles) string {
	var b strings.Builder

	if s.Err != nil {
		b.WriteString(styles.Error.Render("error: " + s.Err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	writeRow(&b, styles, "Suggestions", renderTerms(s.Suggestions, styles))
	writeRow(&b, styles, "Expansions", renderTerms(s.Expansions, styles))
	writeRow(&b, styles, "Intent", s.Intent)
	writeRow(&b, styles, "Filters", strings.Join(s.Filters, ", "))

	if len(s.Structure) == 0 {
		writeRow(&b, styles, "Structure", "")
	}
	for i, kv := range s.Structure {
		label := ""
		if i == 0 {
			label = "Structure"
		}
		writeRow(&b, styles, label, fmt.Sprintf("%s: %s", kv[0], kv[1]))
	}

	return b.String()
}

func renderTerms(terms []string, styles Styles) string {
	rendered := make([]string, len(terms))
	for i, t := range terms {
		rendered[i] = styles.Term.Render(t)
	}
	return strings.Join(rendered, "  ")
}

func writeRow(b *strings.Builder, styles Styles, label, value string) {
	if value == "" {
		value = styles.Dim.Render("-")
	}
	b.WriteString(styles.Label.Render(fmt.Sprintf("%-*s", labelWidth, label)))
	b.WriteString(value)
	b.WriteString("\n")
}
