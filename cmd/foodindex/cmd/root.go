// Package cmd provides the CLI commands for foodindex.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dietsurvey/foodindex/internal/config"
	fierrors "github.com/dietsurvey/foodindex/internal/errors"
	"github.com/dietsurvey/foodindex/internal/logging"
	"github.com/dietsurvey/foodindex/internal/output"
	"github.com/dietsurvey/foodindex/internal/profiling"
	"github.com/dietsurvey/foodindex/pkg/foodindex"
	"github.com/dietsurvey/foodindex/pkg/version"
)

// app carries the persistent flags and the per-invocation state shared by
// subcommands.
type app struct {
	lang         string
	configDir    string
	jsonOutput   bool
	debug        bool
	noTokenizers bool

	profile profiling.Options

	cfg     *config.Config
	cleanup func()
	session *profiling.Session
}

// NewRootCmd creates the root command for the foodindex CLI.
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "foodindex",
		Short: "Multilingual food name search keys, expansion and intent",
		Long: `foodindex turns food names into search keys that survive spelling,
script and phonetic variation across English, French, Japanese, Chinese,
Tamil and Arabic.

For Chinese queries it also expands synonyms, suggests completions,
decomposes dish names and detects dietary and nutritional intent.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.startProfiling()
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.close()
		},
	}

	cmd.SetVersionTemplate("foodindex version {{.Version}}\n")

	pf := cmd.PersistentFlags()
	pf.StringVarP(&a.lang, "lang", "l", "", "Language code (default from config)")
	pf.StringVar(&a.configDir, "config-dir", ".", "Directory searched for .foodindex.yaml")
	pf.BoolVar(&a.jsonOutput, "json", false, "Output as JSON")
	pf.BoolVar(&a.debug, "debug", false, "Enable debug logging to ~/.foodindex/logs/")
	pf.BoolVar(&a.noTokenizers, "no-tokenizers", false, "Skip dictionary tokenizers and segment by script")
	pf.StringVar(&a.profile.CPU, "profile-cpu", "", "Write CPU profile to file")
	pf.StringVar(&a.profile.Heap, "profile-mem", "", "Write heap profile to file")
	pf.StringVar(&a.profile.Trace, "profile-trace", "", "Write execution trace to file")

	cmd.AddCommand(newEncodeCmd(a))
	cmd.AddCommand(newKeysCmd(a))
	cmd.AddCommand(newMatchCmd(a))
	cmd.AddCommand(newExpandCmd(a))
	cmd.AddCommand(newSuggestCmd(a))
	cmd.AddCommand(newParseCmd(a))
	cmd.AddCommand(newSimilarCmd(a))
	cmd.AddCommand(newIntentCmd(a))
	cmd.AddCommand(newLanguagesCmd(a))
	cmd.AddCommand(newExploreCmd(a))
	cmd.AddCommand(newConfigCmd(a))
	cmd.AddCommand(newLogsCmd())
	cmd.AddCommand(newVersionCmd(a))

	return cmd
}

// Execute runs the root command and prints any error to stderr.
func Execute() error {
	return execute(NewRootCmd())
}

func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		asJSON, _ := cmd.PersistentFlags().GetBool("json")
		reportError(cmd.ErrOrStderr(), err, asJSON)
	}
	return err
}

// reportError writes err as a JSON object when asJSON is set, otherwise in
// the terminal layout.
func reportError(w io.Writer, err error, asJSON bool) {
	if asJSON {
		if data, jerr := fierrors.FormatJSON(err); jerr == nil {
			_, _ = fmt.Fprintln(w, string(data))
			return
		}
	}
	_, _ = fmt.Fprint(w, fierrors.FormatForCLI(err))
}

// config loads the effective configuration once per invocation.
func (a *app) config() (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}
	if info, err := os.Stat(a.configDir); err != nil || !info.IsDir() {
		return nil, fierrors.New(fierrors.ErrCodeConfigNotFound, "config directory not found", err).
			WithDetail("path", a.configDir).
			WithSuggestion("Pass an existing directory to --config-dir")
	}
	cfg, err := config.Load(a.configDir)
	if err != nil {
		return nil, fierrors.ConfigError("failed to load configuration", err).
			WithSuggestion("Run 'foodindex config show' or fix the file named above")
	}
	if a.noTokenizers {
		cfg.Tokenizers.Japanese = false
		cfg.Tokenizers.Chinese = false
	}
	a.cfg = cfg
	return cfg, nil
}

// engine builds the search engine with logging configured from cfg.
func (a *app) engine() (*foodindex.Engine, error) {
	cfg, err := a.config()
	if err != nil {
		return nil, err
	}

	logger, cleanup, err := logging.Setup(loggingConfig(cfg, a.debug))
	if err != nil {
		return nil, fmt.Errorf("failed to setup logging: %w", err)
	}
	a.cleanup = cleanup
	if a.debug {
		slog.SetDefault(logger)
		logger.Debug("debug_logging_enabled",
			slog.String("log_file", logging.DefaultLogPath()),
			slog.String("version", version.Version))
	}

	return foodindex.New(cfg, foodindex.WithLogger(logger))
}

// warm loads the tokenizer for the selected language so one-shot commands
// get dictionary segmentation. A failure only degrades results.
func (a *app) warm(cmd *cobra.Command, eng *foodindex.Engine) {
	if err := eng.WarmupLanguage(cmd.Context(), a.lang); err != nil {
		output.New(cmd.ErrOrStderr()).Warning(warmupWarning(err))
	}
}

func warmupWarning(err error) string {
	if fierrors.IsRetryable(err) {
		return fmt.Sprintf("tokenizer still loading, using fallback segmentation (%s)", fierrors.GetCode(err))
	}
	return fmt.Sprintf("tokenizer not ready, using fallback segmentation (%s)", fierrors.GetCode(err))
}

func (a *app) out(cmd *cobra.Command) *output.Writer {
	if a.jsonOutput {
		return output.NewJSON(cmd.OutOrStdout())
	}
	return output.New(cmd.OutOrStdout())
}

func (a *app) startProfiling() error {
	if !a.profile.Enabled() {
		return nil
	}
	s, err := profiling.Start(a.profile)
	if err != nil {
		return err
	}
	a.session = s
	return nil
}

// close stops profiling and flushes the log file.
func (a *app) close() error {
	var err error
	if a.session != nil {
		err = a.session.Stop()
		a.session = nil
	}
	if a.cleanup != nil {
		a.cleanup()
		a.cleanup = nil
	}
	return err
}

// loggingConfig maps the config onto the logger. Without a log file only
// warnings and errors reach stderr, so command output stays readable.
func loggingConfig(cfg *config.Config, debug bool) logging.Config {
	if debug {
		return logging.DebugConfig()
	}

	lc := logging.DefaultConfig()
	lc.Level = cfg.Logging.Level
	lc.FilePath = cfg.Logging.FilePath
	if cfg.Logging.MaxSizeMB > 0 {
		lc.MaxSizeMB = cfg.Logging.MaxSizeMB
	}
	if cfg.Logging.MaxFiles > 0 {
		lc.MaxFiles = cfg.Logging.MaxFiles
	}

	lc.WriteToStderr = lc.FilePath == ""
	if lc.WriteToStderr && logging.LevelFromString(lc.Level) < slog.LevelWarn {
		lc.Level = "warn"
	}
	return lc
}
