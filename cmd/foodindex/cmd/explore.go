package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/dietsurvey/foodindex/internal/ui"
	"github.com/dietsurvey/foodindex/pkg/foodindex"
)

func newExploreCmd(a *app) *cobra.Command {
	var (
		plain   bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Interactively explore suggestions, expansions and intent",
		Long: `Type a Chinese food query and watch autocomplete suggestions, query
expansions, detected intent and dish structure update as you type.

Without a terminal, or with --plain, one query is read per input line.`,
		Example: `  foodindex explore
  printf '土豆\n低卡午餐\n' | foodindex explore --plain`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, err := a.engine()
			if err != nil {
				return err
			}

			go func() { _ = eng.Warmup(cmd.Context()) }()

			cfg := ui.NewConfig(cmd.OutOrStdout(),
				ui.WithInput(cmd.InOrStdin()),
				ui.WithForcePlain(plain),
				ui.WithNoColor(noColor))
			return ui.RunExplorer(cmd.Context(), cfg, snapshotLookup(eng), eng.Settled)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Read queries line by line instead of the interactive view")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colors")

	return cmd
}

// snapshotLookup gathers everything the explorer shows for a query.
func snapshotLookup(eng *foodindex.Engine) ui.LookupFunc {
	return func(query string) ui.Snapshot {
		s := ui.Snapshot{Query: query}

		var err error
		if s.Suggestions, err = eng.Suggest(query, 0); err != nil {
			return ui.Snapshot{Query: query, Err: err}
		}
		if s.Expansions, err = eng.ExpandSearchQuery(query); err != nil {
			return ui.Snapshot{Query: query, Err: err}
		}

		qi, err := eng.DetectIntent(query)
		if err != nil {
			return ui.Snapshot{Query: query, Err: err}
		}
		view := newIntentView(qi)
		s.Intent = intentLabel(qi.Intent) + " (" + formatConfidence(qi.Intent.Confidence) + ")"
		s.Filters = append(filterTerms(qi.Filters), view.Exclude...)
		if len(qi.Intent.Negations) > 0 {
			s.Filters = append(s.Filters, "not "+strings.Join(qi.Intent.Negations, "/"))
		}

		fs, err := eng.Parse(query)
		if err != nil {
			return ui.Snapshot{Query: query, Err: err}
		}
		s.Structure = structureRows(fs, false)

		return s
	}
}
