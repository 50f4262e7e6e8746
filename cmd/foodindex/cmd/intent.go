package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dietsurvey/foodindex/internal/intent"
	"github.com/dietsurvey/foodindex/internal/output"
	"github.com/dietsurvey/foodindex/pkg/foodindex"
)

// intentView is the printable form of a detected intent, including the
// search modifiers the engine keeps out of its own JSON.
type intentView struct {
	Intent  intent.SearchIntent      `json:"intent"`
	Filters intent.NutritionalFilter `json:"filters"`
	Boosts  map[string]float64       `json:"boosts"`
	Sort    intent.SortPreference    `json:"sort"`
	Exclude []string                 `json:"exclude"`
}

func newIntentView(qi foodindex.QueryIntent) intentView {
	return intentView{
		Intent:  qi.Intent,
		Filters: qi.Filters,
		Boosts:  qi.Modifiers.BoostFactors,
		Sort:    qi.Modifiers.SortPreference,
		Exclude: qi.Modifiers.FilterNames(),
	}
}

func newIntentCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "intent <query>",
		Short: "Detect the intent and nutritional filters of a Chinese query",
		Example: `  foodindex intent 低卡的素食午餐
  foodindex intent "不要辣的川菜" --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := a.engine()
			if err != nil {
				return err
			}

			qi, err := eng.DetectIntent(strings.Join(args, " "))
			if err != nil {
				return err
			}

			view := newIntentView(qi)
			return a.out(cmd).Result(view, func(out *output.Writer) {
				out.Table(view.rows())
			})
		},
	}
}

func (v intentView) rows() [][2]string {
	return [][2]string{
		{"type", intentLabel(v.Intent)},
		{"confidence", formatConfidence(v.Intent.Confidence)},
		{"entities", output.Join(v.Intent.Entities)},
		{"modifiers", output.Join(v.Intent.Modifiers)},
		{"negations", output.Join(v.Intent.Negations)},
		{"nutrition", output.Join(filterTerms(v.Filters))},
		{"sort", string(v.Sort)},
		{"boosts", formatBoosts(v.Boosts)},
		{"exclude", output.Join(v.Exclude)},
	}
}

func intentLabel(in intent.SearchIntent) string {
	if in.SubType == "" {
		return string(in.Type)
	}
	return string(in.Type) + "/" + in.SubType
}

// filterTerms renders each constrained nutrient as a comparison, e.g.
// "calories<=300" or "300<=calories<=500".
func filterTerms(f intent.NutritionalFilter) []string {
	nutrients := []struct {
		name string
		r    *intent.Range
	}{
		{"calories", f.Calories},
		{"protein", f.Protein},
		{"carbs", f.Carbs},
		{"fat", f.Fat},
		{"sugar", f.Sugar},
		{"sodium", f.Sodium},
	}

	var terms []string
	for _, n := range nutrients {
		if n.r == nil {
			continue
		}
		switch {
		case n.r.Min != nil && n.r.Max != nil:
			terms = append(terms, fmt.Sprintf("%s<=%s<=%s", formatNumber(*n.r.Min), n.name, formatNumber(*n.r.Max)))
		case n.r.Min != nil:
			terms = append(terms, fmt.Sprintf("%s>=%s", n.name, formatNumber(*n.r.Min)))
		case n.r.Max != nil:
			terms = append(terms, fmt.Sprintf("%s<=%s", n.name, formatNumber(*n.r.Max)))
		}
	}
	return terms
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatBoosts(boosts map[string]float64) string {
	keys := make([]string, 0, len(boosts))
	for k := range boosts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s x%s", k, formatNumber(boosts[k]))
	}
	return output.Join(parts)
}
