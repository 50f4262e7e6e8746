package cmd

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dietsurvey/foodindex/internal/config"
	fierrors "github.com/dietsurvey/foodindex/internal/errors"
	"github.com/dietsurvey/foodindex/internal/logging"
	"github.com/dietsurvey/foodindex/pkg/version"
)

type cliResult struct {
	stdout string
	stderr string
	err    error
}

// isolate points user config at an empty dir and clears env overrides.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, v := range []string{
		"FOODINDEX_DEFAULT_LANGUAGE", "FOODINDEX_FALLBACK_LANGUAGE",
		"FOODINDEX_MAX_EXPANSIONS", "FOODINDEX_LOG_LEVEL", "FOODINDEX_TOKENIZERS",
	} {
		t.Setenv(v, "")
	}
	return t.TempDir()
}

// runCLI executes the root command in an isolated environment with
// dictionary tokenizers off.
func runCLI(t *testing.T, stdin string, args ...string) cliResult {
	t.Helper()
	dir := isolate(t)
	return runCLIIn(t, dir, stdin, args...)
}

func runCLIIn(t *testing.T, dir, stdin string, args ...string) cliResult {
	t.Helper()
	cmd := NewRootCmd()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--no-tokenizers", "--config-dir", dir}, args...))

	err := cmd.Execute()
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func decodeJSON(t *testing.T, s string, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(s), v), s)
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	// Given: the root command
	root := NewRootCmd()

	// Then: every subcommand is reachable
	for _, name := range []string{
		"encode", "keys", "match", "expand", "suggest", "parse",
		"similar", "intent", "languages", "explore", "config", "logs", "version",
	} {
		sub, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}
}

func TestRootCmd_VersionFlag(t *testing.T) {
	res := runCLI(t, "", "--version")

	require.NoError(t, res.err)
	assert.Equal(t, "foodindex version "+version.Version+"\n", res.stdout)
}

func TestRootCmd_InvalidProjectConfig(t *testing.T) {
	// Given: a project config with an unsupported language
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".foodindex.yaml"),
		[]byte("language:\n  enabled: [en, xx]\n"), 0o644))

	// When: running a command that needs the engine
	res := runCLIIn(t, dir, "", "encode", "tomato")

	// Then: a config error is returned
	require.Error(t, res.err)
	assert.Equal(t, fierrors.ErrCodeConfigInvalid, fierrors.GetCode(res.err))
}

func TestExecute_ReportsErrors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, stderr string)
	}{
		{"terminal layout", []string{"match", "soup"}, func(t *testing.T, stderr string) {
			assert.Contains(t, stderr, "Error: ")
			assert.Contains(t, stderr, "  Code: "+fierrors.ErrCodeInvalidInput+"\n")
		}},
		{"json", []string{"--json", "match", "soup"}, func(t *testing.T, stderr string) {
			var payload struct {
				Error struct {
					Code     string `json:"code"`
					Category string `json:"category"`
				} `json:"error"`
			}
			decodeJSON(t, stderr, &payload)
			assert.Equal(t, fierrors.ErrCodeInvalidInput, payload.Error.Code)
			assert.Equal(t, string(fierrors.CategoryValidation), payload.Error.Category)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a command that fails validation
			dir := isolate(t)
			cmd := NewRootCmd()
			stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
			cmd.SetOut(stdout)
			cmd.SetErr(stderr)
			cmd.SetIn(strings.NewReader(""))
			cmd.SetArgs(append([]string{"--no-tokenizers", "--config-dir", dir}, tt.args...))

			// When: executing through the CLI entry point
			err := execute(cmd)

			// Then: the error is reported once on stderr
			require.Error(t, err)
			assert.Empty(t, stdout.String())
			tt.check(t, stderr.String())
		})
	}
}

func TestRootCmd_MissingConfigDir(t *testing.T) {
	// Given: a --config-dir that does not exist
	missing := filepath.Join(t.TempDir(), "nope")

	// When: running a command that needs the config
	res := runCLI(t, "", "--config-dir", missing, "encode", "tomato")

	// Then: the config is reported as not found with the path
	require.Error(t, res.err)
	assert.Equal(t, fierrors.ErrCodeConfigNotFound, fierrors.GetCode(res.err))
	assert.Contains(t, fierrors.FormatForCLI(res.err), "path: "+missing)
}

func TestWarmupWarning(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			"still loading",
			fierrors.New(fierrors.ErrCodeTokenizerNotReady, "ja tokenizer still initializing", nil),
			"tokenizer still loading, using fallback segmentation (ERR_302_TOKENIZER_NOT_READY)",
		},
		{
			"failed",
			fierrors.New(fierrors.ErrCodeTokenizerFailed, "ja tokenizer failed to initialize", nil),
			"tokenizer not ready, using fallback segmentation (ERR_303_TOKENIZER_FAILED)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, warmupWarning(tt.err))
		})
	}
}

func TestVersionCmd_Outputs(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, out string)
	}{
		{"default", []string{"version"}, func(t *testing.T, out string) {
			assert.Contains(t, out, "foodindex")
			assert.Contains(t, out, version.Version)
			assert.Contains(t, out, "commit")
		}},
		{"short", []string{"version", "--short"}, func(t *testing.T, out string) {
			assert.Equal(t, version.Version, strings.TrimSpace(out))
		}},
		{"json", []string{"--json", "version"}, func(t *testing.T, out string) {
			var info map[string]string
			decodeJSON(t, out, &info)
			assert.Equal(t, version.Version, info["version"])
			assert.Contains(t, info, "go_version")
			assert.Contains(t, info, "arch")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCLI(t, "", tt.args...)

			require.NoError(t, res.err)
			tt.check(t, res.stdout)
		})
	}
}

func TestLoggingConfig(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		file      string
		debug     bool
		wantLevel slog.Level
		wantErr   bool
	}{
		{"info to stderr is raised to warn", "info", "", false, slog.LevelWarn, true},
		{"error to stderr stays error", "error", "", false, slog.LevelError, true},
		{"info to file stays info", "info", "/tmp/foodindex.log", false, slog.LevelInfo, false},
		{"debug flag wins", "error", "", true, slog.LevelDebug, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a config with the level and file
			cfg := config.NewConfig()
			cfg.Logging.Level = tt.level
			cfg.Logging.FilePath = tt.file

			// When: mapping it onto the logger config
			lc := loggingConfig(cfg, tt.debug)

			// Then: the level and stderr switch match
			assert.Equal(t, tt.wantLevel, logging.LevelFromString(lc.Level))
			assert.Equal(t, tt.wantErr, lc.WriteToStderr)
		})
	}
}

func TestRootCmd_ProfileFlags(t *testing.T) {
	// Given: profile outputs in a temp dir
	dir := t.TempDir()
	cpu := filepath.Join(dir, "cpu.prof")
	heap := filepath.Join(dir, "heap.prof")

	// When: running a command with profiling on
	res := runCLI(t, "", "--profile-cpu", cpu, "--profile-mem", heap, "version", "--short")

	// Then: both profiles are written
	require.NoError(t, res.err)
	assert.FileExists(t, cpu)
	assert.FileExists(t, heap)
}

func TestLogsCmd(t *testing.T) {
	// Given: a log file written by the JSON logger
	path := filepath.Join(t.TempDir(), "foodindex.log")
	require.NoError(t, os.WriteFile(path, []byte(
		`{"time":"2026-03-01T10:00:00Z","level":"INFO","msg":"tokenizer_ready","tokenizer":"gse"}`+"\n"+
			`{"time":"2026-03-01T10:00:01Z","level":"WARN","msg":"warmup_incomplete","language":"ja"}`+"\n"), 0o644))

	// When: showing warnings only
	res := runCLI(t, "", "logs", "--file", path, "--level", "warn", "--no-color")

	// Then: only the warning is printed and the path goes to stderr
	require.NoError(t, res.err)
	assert.Equal(t, "10:00:01.000 WARN  warmup_incomplete language=ja\n", res.stdout)
	assert.Contains(t, res.stderr, path)
}

func TestLogsCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing file", []string{"logs", "--file", "/nonexistent/foodindex.log"}},
		{"bad level", []string{"logs", "--file", os.DevNull, "--level", "loud"}},
		{"bad pattern", []string{"logs", "--file", os.DevNull, "--filter", "("}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCLI(t, "", tt.args...)
			assert.Error(t, res.err)
		})
	}
}
