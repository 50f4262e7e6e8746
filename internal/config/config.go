package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// SupportedLanguages lists every language code a backend exists for, sorted.
var SupportedLanguages = []string{"ar-AE", "en", "fr", "ja", "ta", "zh"}

// ProjectConfigNames are the per-directory config file names, in lookup order.
var ProjectConfigNames = []string{".foodindex.yaml", ".foodindex.yml"}

// Config is the complete foodindex configuration.
type Config struct {
	Version    int              `yaml:"version" json:"version"`
	Language   LanguageConfig   `yaml:"language" json:"language"`
	Expansion  ExpansionConfig  `yaml:"expansion" json:"expansion"`
	Cache      CacheConfig      `yaml:"cache" json:"cache"`
	Tokenizers TokenizersConfig `yaml:"tokenizers" json:"tokenizers"`
	Logging    LoggingConfig    `yaml:"logging" json:"logging"`
}

// LanguageConfig selects which backends are registered and how unknown
// request languages are resolved.
type LanguageConfig struct {
	// Default is used when a request carries no language code.
	Default string `yaml:"default" json:"default"`
	// Fallback replaces a request language that has no backend.
	Fallback string   `yaml:"fallback" json:"fallback"`
	Enabled  []string `yaml:"enabled" json:"enabled"`
}

// ExpansionConfig configures the query expander.
type ExpansionConfig struct {
	IncludeSynonyms   bool `yaml:"include_synonyms" json:"include_synonyms"`
	IncludeRelated    bool `yaml:"include_related" json:"include_related"`
	IncludeCategories bool `yaml:"include_categories" json:"include_categories"`
	MaxExpansions     int  `yaml:"max_expansions" json:"max_expansions"`
	AutocompleteLimit int  `yaml:"autocomplete_limit" json:"autocomplete_limit"`

	// ExtraSynonyms are appended to the built-in synonym groups.
	ExtraSynonyms [][]string `yaml:"extra_synonyms,omitempty" json:"extra_synonyms,omitempty"`
}

// CacheConfig sizes the in-memory LRU caches.
type CacheConfig struct {
	EncoderSize int `yaml:"encoder_size" json:"encoder_size"`
	IntentSize  int `yaml:"intent_size" json:"intent_size"`
}

// TokenizersConfig toggles the dictionary-backed tokenizers.
// When disabled, backends use the script-boundary fallback splitter.
type TokenizersConfig struct {
	Japanese      bool   `yaml:"japanese" json:"japanese"`
	Chinese       bool   `yaml:"chinese" json:"chinese"`
	WarmupTimeout string `yaml:"warmup_timeout" json:"warmup_timeout"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level     string `yaml:"level" json:"level"`
	FilePath  string `yaml:"file_path,omitempty" json:"file_path,omitempty"`
	MaxSizeMB int    `yaml:"max_size_mb" json:"max_size_mb"`
	MaxFiles  int    `yaml:"max_files" json:"max_files"`
}

// NewConfig returns a configuration populated with defaults.
func NewConfig() *Config {
	return &Config{
		Version: 1,
		Language: LanguageConfig{
			Default:  "en",
			Fallback: "en",
			Enabled:  slices.Clone(SupportedLanguages),
		},
		Expansion: ExpansionConfig{
			IncludeSynonyms:   true,
			IncludeRelated:    true,
			IncludeCategories: true,
			MaxExpansions:     10,
			AutocompleteLimit: 10,
		},
		Cache: CacheConfig{
			EncoderSize: 10000,
			IntentSize:  10000,
		},
		Tokenizers: TokenizersConfig{
			Japanese:      true,
			Chinese:       true,
			WarmupTimeout: "30s",
		},
		Logging: LoggingConfig{
			Level:     "info",
			MaxSizeMB: 10,
			MaxFiles:  5,
		},
	}
}

// GetUserConfigPath returns the user-level config path, honouring XDG_CONFIG_HOME.
func GetUserConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "foodindex", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".config", "foodindex", "config.yaml")
	}
	return filepath.Join(home, ".config", "foodindex", "config.yaml")
}

// Load builds the effective configuration for dir:
// defaults, then user config, then the project file in dir, then env vars.
func Load(dir string) (*Config, error) {
	cfg := NewConfig()

	if path := GetUserConfigPath(); fileExists(path) {
		if err := cfg.loadYAML(path); err != nil {
			return nil, fmt.Errorf("failed to load user config: %w", err)
		}
	}

	if path := FindProjectConfig(dir); path != "" {
		if err := cfg.loadYAML(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// FindProjectConfig returns the project config file in dir, or "".
func FindProjectConfig(dir string) string {
	for _, name := range ProjectConfigNames {
		path := filepath.Join(dir, name)
		if fileExists(path) {
			return path
		}
	}
	return ""
}

// loadYAML decodes path on top of the current values, so keys missing from
// the file keep whatever an earlier layer set.
func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("FOODINDEX_DEFAULT_LANGUAGE"); v != "" {
		c.Language.Default = v
	}
	if v := os.Getenv("FOODINDEX_FALLBACK_LANGUAGE"); v != "" {
		c.Language.Fallback = v
	}
	if v := os.Getenv("FOODINDEX_MAX_EXPANSIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Expansion.MaxExpansions = n
		}
	}
	if v := os.Getenv("FOODINDEX_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("FOODINDEX_TOKENIZERS"); v != "" {
		on := parseSwitch(v)
		c.Tokenizers.Japanese = on
		c.Tokenizers.Chinese = on
	}
}

func parseSwitch(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	var errs []string

	for _, code := range c.Language.Enabled {
		if !slices.Contains(SupportedLanguages, code) {
			errs = append(errs, fmt.Sprintf("language.enabled: unsupported language %q", code))
		}
	}
	if len(c.Language.Enabled) == 0 {
		errs = append(errs, "language.enabled: at least one language is required")
	}
	if !slices.Contains(c.Language.Enabled, c.Language.Default) {
		errs = append(errs, fmt.Sprintf("language.default: %q is not enabled", c.Language.Default))
	}
	if !slices.Contains(c.Language.Enabled, c.Language.Fallback) {
		errs = append(errs, fmt.Sprintf("language.fallback: %q is not enabled", c.Language.Fallback))
	}

	if c.Expansion.MaxExpansions <= 0 {
		errs = append(errs, fmt.Sprintf("expansion.max_expansions must be positive, got %d", c.Expansion.MaxExpansions))
	}
	if c.Expansion.AutocompleteLimit <= 0 {
		errs = append(errs, fmt.Sprintf("expansion.autocomplete_limit must be positive, got %d", c.Expansion.AutocompleteLimit))
	}
	for i, group := range c.Expansion.ExtraSynonyms {
		if len(group) < 2 {
			errs = append(errs, fmt.Sprintf("expansion.extra_synonyms[%d]: a group needs at least two terms", i))
		}
	}

	if c.Cache.EncoderSize <= 0 || c.Cache.IntentSize <= 0 {
		errs = append(errs, "cache sizes must be positive")
	}

	if _, err := c.WarmupTimeout(); err != nil {
		errs = append(errs, fmt.Sprintf("tokenizers.warmup_timeout: %v", err))
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Sprintf("logging.level: unknown level %q", c.Logging.Level))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// WarmupTimeout parses Tokenizers.WarmupTimeout.
func (c *Config) WarmupTimeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.Tokenizers.WarmupTimeout)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", d)
	}
	return d, nil
}

// WriteYAML writes the configuration to path, creating parent directories.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
