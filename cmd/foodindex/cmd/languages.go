package cmd

import (
	"github.com/spf13/cobra"

	fierrors "github.com/dietsurvey/foodindex/internal/errors"
	"github.com/dietsurvey/foodindex/internal/language"
	"github.com/dietsurvey/foodindex/internal/output"
	"github.com/dietsurvey/foodindex/internal/tokenize"
)

type languageInfo struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Default   bool   `json:"default"`
	Tokenizer string `json:"tokenizer,omitempty"`
	State     string `json:"state,omitempty"`
}

func newLanguagesCmd(a *app) *cobra.Command {
	var warm bool

	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List enabled languages and their tokenizer state",
		Example: `  foodindex languages
  foodindex languages --warm`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, err := a.engine()
			if err != nil {
				return err
			}
			if warm {
				if err := eng.Warmup(cmd.Context()); err != nil {
					output.New(cmd.ErrOrStderr()).Warning("some tokenizers did not load")
				}
			}

			reg := eng.Registry()
			infos := make([]languageInfo, 0, len(reg.Codes()))
			for _, code := range reg.Codes() {
				b, _ := reg.Lookup(code)
				info := languageInfo{
					Code:    code,
					Name:    b.Name(),
					Default: code == eng.Config().Language.Default,
				}
				if tb, ok := b.(language.TokenizerBackend); ok {
					info.Tokenizer = tb.Tokenizer().Name()
					info.State = tokenizerState(tb.Tokenizer())
				}
				infos = append(infos, info)
			}

			return a.out(cmd).Result(infos, func(out *output.Writer) {
				rows := make([][2]string, len(infos))
				for i, info := range infos {
					label := info.Name
					if info.Default {
						label += " (default)"
					}
					if info.Tokenizer != "" {
						label += ", " + info.Tokenizer + " " + info.State
					}
					rows[i] = [2]string{info.Code, label}
				}
				out.Table(rows)
			})
		},
	}

	cmd.Flags().BoolVar(&warm, "warm", false, "Load tokenizers before reporting their state")

	return cmd
}

func tokenizerState(l *tokenize.Lazy) string {
	if l.State() == tokenize.Failed && fierrors.GetCode(l.Err()) == fierrors.ErrCodeDependencyUnavailable {
		return "disabled"
	}
	return l.State().String()
}
