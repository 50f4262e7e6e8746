package cmd

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/dietsurvey/foodindex/internal/logging"
	"github.com/dietsurvey/foodindex/internal/ui"
)

func newLogsCmd() *cobra.Command {
	var (
		lines   int
		level   string
		filter  string
		noColor bool
		logFile string
	)

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show recent debug log entries",
		Long: `Show the last entries of the log written by --debug runs
(~/.foodindex/logs/foodindex.log), or of --file.`,
		Example: `  foodindex logs
  foodindex logs -n 100 --level warn
  foodindex logs --filter tokenizer`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := logging.FindLogFile(logFile)
			if err != nil {
				return err
			}

			var pattern *regexp.Regexp
			if filter != "" {
				if pattern, err = regexp.Compile(filter); err != nil {
					return fmt.Errorf("invalid filter pattern: %w", err)
				}
			}
			if level != "" && !logging.ValidLevel(level) {
				return fmt.Errorf("invalid level %q (want debug, info, warn or error)", level)
			}

			viewer := logging.NewViewer(logging.ViewerConfig{
				Level:   level,
				Pattern: pattern,
				NoColor: noColor || ui.DetectNoColor() || !ui.IsTTY(cmd.OutOrStdout()),
			}, cmd.OutOrStdout())

			entries, err := viewer.Tail(path, lines)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Log file: %s\n---\n", path)
			viewer.Print(entries)
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "Number of lines to show")
	cmd.Flags().StringVar(&level, "level", "", "Minimum level (debug|info|warn|error)")
	cmd.Flags().StringVar(&filter, "filter", "", "Only lines matching this regex")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	cmd.Flags().StringVar(&logFile, "file", "", "Path to log file")

	return cmd
}
