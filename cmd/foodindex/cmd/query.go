package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dietsurvey/foodindex/internal/compound"
	"github.com/dietsurvey/foodindex/internal/output"
)

func newExpandCmd(a *app) *cobra.Command {
	var (
		noSynonyms   bool
		noRelated    bool
		noCategories bool
		maxTerms     int
	)

	cmd := &cobra.Command{
		Use:   "expand <query>",
		Short: "Expand a Chinese query with synonyms, related terms and categories",
		Example: `  foodindex expand 土豆
  foodindex expand 番茄炒蛋 --no-categories --max 5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := a.engine()
			if err != nil {
				return err
			}

			opts := eng.ExpandOptions()
			if noSynonyms {
				opts.IncludeSynonyms = false
			}
			if noRelated {
				opts.IncludeRelated = false
			}
			if noCategories {
				opts.IncludeCategories = false
			}
			if cmd.Flags().Changed("max") {
				opts.MaxExpansions = maxTerms
			}

			query := strings.Join(args, " ")
			terms, err := eng.ExpandSearchQueryWith(query, opts)
			if err != nil {
				return err
			}

			result := struct {
				Query      string   `json:"query"`
				Expansions []string `json:"expansions"`
			}{query, terms}
			return a.out(cmd).Result(result, func(out *output.Writer) {
				out.List(terms)
			})
		},
	}

	cmd.Flags().BoolVar(&noSynonyms, "no-synonyms", false, "Skip synonym expansion")
	cmd.Flags().BoolVar(&noRelated, "no-related", false, "Skip related terms")
	cmd.Flags().BoolVar(&noCategories, "no-categories", false, "Skip category terms")
	cmd.Flags().IntVar(&maxTerms, "max", 0, "Maximum number of terms (default from config)")

	return cmd
}

func newSuggestCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "suggest <partial>",
		Short:   "Suggest completions for a partial Chinese query",
		Example: `  foodindex suggest 牛 --limit 5`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := a.engine()
			if err != nil {
				return err
			}

			suggestions, err := eng.Suggest(args[0], limit)
			if err != nil {
				return err
			}

			result := struct {
				Partial     string   `json:"partial"`
				Suggestions []string `json:"suggestions"`
			}{args[0], suggestions}
			return a.out(cmd).Result(result, func(out *output.Writer) {
				out.List(suggestions)
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of suggestions (default from config)")

	return cmd
}

func newParseCmd(a *app) *cobra.Command {
	var variations bool

	cmd := &cobra.Command{
		Use:   "parse <dish>",
		Short: "Decompose a Chinese dish name into base, protein, method and more",
		Example: `  foodindex parse 红烧牛肉面
  foodindex parse 宫保鸡丁 --variations`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := a.engine()
			if err != nil {
				return err
			}

			fs, err := eng.Parse(args[0])
			if err != nil {
				return err
			}

			result := struct {
				Structure  compound.FoodStructure `json:"structure"`
				Variations []string               `json:"variations,omitempty"`
			}{Structure: fs}
			if variations {
				if result.Variations, err = eng.Variations(args[0]); err != nil {
					return err
				}
			}

			return a.out(cmd).Result(result, func(out *output.Writer) {
				out.Table(structureRows(fs, true))
				if variations {
					out.Newline()
					out.Status("🔀", "Variations:")
					out.List(result.Variations)
				}
			})
		},
	}

	cmd.Flags().BoolVar(&variations, "variations", false, "Also print search variations")

	return cmd
}

func newSimilarCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "similar <dish> <dish>",
		Short:   "Report whether two Chinese dish names are structurally similar",
		Example: `  foodindex similar 红烧牛肉面 清汤牛肉面`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := a.engine()
			if err != nil {
				return err
			}

			similar, err := eng.Similar(args[0], args[1])
			if err != nil {
				return err
			}

			result := struct {
				A       string `json:"a"`
				B       string `json:"b"`
				Similar bool   `json:"similar"`
			}{args[0], args[1], similar}
			return a.out(cmd).Result(result, func(out *output.Writer) {
				if similar {
					out.Successf("%s and %s are similar", args[0], args[1])
				} else {
					out.Statusf("➖", "%s and %s are not similar", args[0], args[1])
				}
			})
		},
	}
}

// structureRows lists the parsed parts of a dish. With includeEmpty every
// field gets a row.
func structureRows(fs compound.FoodStructure, includeEmpty bool) [][2]string {
	all := [][2]string{
		{"base", fs.Base},
		{"protein", fs.Protein},
		{"vegetables", output.Join(fs.Vegetables)},
		{"method", fs.Method},
		{"flavor", fs.Flavor},
		{"style", fs.Style},
		{"modifiers", output.Join(fs.Modifiers)},
		{"ingredients", output.Join(fs.Ingredients)},
	}
	if includeEmpty {
		return all
	}

	rows := make([][2]string, 0, len(all))
	for _, r := range all {
		if r[1] != "" {
			rows = append(rows, r)
		}
	}
	return rows
}

func formatConfidence(c float64) string {
	return fmt.Sprintf("%.2f", c)
}
