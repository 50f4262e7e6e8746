package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	fierrors "github.com/dietsurvey/foodindex/internal/errors"
	"github.com/dietsurvey/foodindex/internal/output"
)

type encodedWord struct {
	Word string   `json:"word"`
	Keys []string `json:"keys"`
}

func newEncodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "encode <word>...",
		Short: "Print the phonetic keys of each word",
		Example: `  foodindex encode tomato tomatoe
  foodindex encode --lang zh 红烧`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := a.engine()
			if err != nil {
				return err
			}
			a.warm(cmd, eng)

			words := make([]encodedWord, 0, len(args))
			for _, w := range args {
				keys, err := eng.Encode(a.lang, w)
				if err != nil {
					return err
				}
				words = append(words, encodedWord{Word: w, Keys: keys})
			}

			return a.out(cmd).Result(words, func(out *output.Writer) {
				rows := make([][2]string, len(words))
				for i, w := range words {
					rows[i] = [2]string{w.Word, output.Join(w.Keys)}
				}
				out.Table(rows)
			})
		},
	}
}

func newKeysCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "keys <text>",
		Short: "Show how a food description is turned into index keys",
		Long: `Sanitize the text, split compounds, stem each part and print the
phonetic keys per word, followed by the deduplicated key set.`,
		Example: `  foodindex keys "Tomato soup with basil"
  foodindex keys --lang zh 红烧牛肉面`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := a.engine()
			if err != nil {
				return err
			}
			a.warm(cmd, eng)

			an, err := eng.Analyze(a.lang, strings.Join(args, " "))
			if err != nil {
				return err
			}

			return a.out(cmd).Result(an, func(out *output.Writer) {
				rows := make([][2]string, len(an.Groups))
				for i, g := range an.Groups {
					rows[i] = [2]string{g.Word, output.Join(g.Keys)}
				}
				out.Table(rows)
				out.Newline()
				out.Statusf("🔑", "%d keys (%s): %s", len(an.Keys), an.Language, output.Join(an.Keys))
			})
		},
	}
}

func newMatchCmd(a *app) *cobra.Command {
	var (
		file  string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "match <query> [candidate]...",
		Short: "Rank candidate food names against a query",
		Long: `Index the candidates in memory with the language's analyzer and rank
them against the query. Candidates come from the arguments and, with
--file, one per line from a file ("-" reads stdin).`,
		Example: `  foodindex match tomatoes "Tomato soup" "Potato salad"
  foodindex match --lang zh 马铃薯 --file dishes.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			candidates := args[1:]
			if file != "" {
				lines, err := readCandidates(cmd, file)
				if err != nil {
					return err
				}
				candidates = append(candidates, lines...)
			}
			if len(candidates) == 0 {
				return fierrors.ValidationError("no candidates to match", nil).
					WithSuggestion("Pass candidate names as arguments or use --file")
			}

			eng, err := a.engine()
			if err != nil {
				return err
			}
			a.warm(cmd, eng)

			hits, err := eng.Match(cmd.Context(), a.lang, args[0], candidates, limit)
			if err != nil {
				return err
			}

			return a.out(cmd).Result(hits, func(out *output.Writer) {
				if len(hits) == 0 {
					out.Status("🔍", "No matches")
					return
				}
				rows := make([][2]string, len(hits))
				for i, h := range hits {
					rows[i] = [2]string{fmt.Sprintf("%.3f", h.Score), h.ID}
				}
				out.Table(rows)
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read candidates from file, one per line")
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of matches")

	return cmd
}

func readCandidates(cmd *cobra.Command, path string) ([]string, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fierrors.New(fierrors.ErrCodeFileNotFound, "failed to open candidates file", err).
				WithDetail("path", path)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidates: %w", err)
	}
	return lines, nil
}
