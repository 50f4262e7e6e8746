// Package ui renders food index lookups, either as an interactive explorer
// or as plain text for pipes and CI.
package ui

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Snapshot is everything the explorer shows for one query.
type Snapshot struct {
	Query       string
	Suggestions []string
	Expansions  []string
	Intent      string
	Filters     []string
	Structure   [][2]string
	Err         error
}

// LookupFunc computes the snapshot for a query. It must be safe to call on
// every keystroke.
type LookupFunc func(query string) Snapshot

// Config configures the UI.
type Config struct {
	Output     io.Writer
	Input      io.Reader
	ForcePlain bool
	NoColor    bool
}

// ConfigOption is a function that modifies Config.
type ConfigOption func(*Config)

// WithForcePlain forces plain text output.
func WithForcePlain(force bool) ConfigOption {
	return func(c *Config) {
		c.ForcePlain = force
	}
}

// WithNoColor disables color output.
func WithNoColor(noColor bool) ConfigOption {
	return func(c *Config) {
		c.NoColor = noColor
	}
}

// WithInput sets where queries are read from.
func WithInput(r io.Reader) ConfigOption {
	return func(c *Config) {
		c.Input = r
	}
}

// NewConfig creates a new Config with the given output and options.
func NewConfig(output io.Writer, opts ...ConfigOption) Config {
	cfg := Config{
		Output: output,
		Input:  os.Stdin,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Interactive reports whether the explorer should run as a full TUI.
func (c Config) Interactive() bool {
	if c.ForcePlain {
		return false
	}
	return IsTTY(c.Output) && !DetectCI()
}

// Styles returns the styles matching the config and environment.
func (c Config) Styles() Styles {
	return GetStyles(c.NoColor || DetectNoColor())
}

// IsTTY checks if output is a terminal.
func IsTTY(w io.Writer) bool {
	if w == nil {
		return false
	}

	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	return false
}

// DetectNoColor checks if NO_COLOR environment variable is set.
func DetectNoColor() bool {
	_, exists := os.LookupEnv("NO_COLOR")
	return exists
}

// DetectCI checks if running in a CI environment.
func DetectCI() bool {
	ciVars := []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "TRAVIS"}
	for _, v := range ciVars {
		if _, exists := os.LookupEnv(v); exists {
			return true
		}
	}
	return false
}
