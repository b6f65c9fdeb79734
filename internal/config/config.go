// Package config provides configuration loading and validation for the termspin CLI.
package config

import (
	"os"
	"slices"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config represents the CLI configuration. Command-line flags override the
// values read from the file.
type Config struct {
	Spinner SpinnerConfig `yaml:"spinner"`
	Log     LogConfig     `yaml:"log"`
	// GlyphFile is a YAML or TOML file of extra glyph sets.
	GlyphFile string `yaml:"glyph_file"`
}

// SpinnerConfig describes the spinner the CLI draws.
type SpinnerConfig struct {
	// Name is a glyph set from the catalog.
	Name       string   `yaml:"name"`
	Text       string   `yaml:"text"`
	Color      string   `yaml:"color"`
	Highlight  string   `yaml:"highlight"`
	Attrs      []string `yaml:"attrs"`
	Side       string   `yaml:"side"`
	Reversal   bool     `yaml:"reversal"`
	Timer      bool     `yaml:"timer"`
	Ellipsis   string   `yaml:"ellipsis"`
	IntervalMS int      `yaml:"interval_ms"` // overrides the glyph set's interval when positive
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfigPath is the default path to look for the configuration file.
const DefaultConfigPath = "termspin.yaml"

// Default values for optional configuration fields.
const (
	DefaultSpinner  = "dots"
	DefaultSide     = "left"
	DefaultEllipsis = "…"
	DefaultLogLevel = "warn"
)

var (
	sides     = []string{"left", "right"}
	logLevels = []string{"debug", "info", "warn", "error"}
)

// Load reads and parses the configuration from the specified file path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}

	// Apply defaults for optional fields
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOrDefault loads path when it is set. An empty path yields the defaults,
// as does a missing file at DefaultConfigPath.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		cfg, err := Load(DefaultConfigPath)
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return cfg, err
	}
	return Load(path)
}

// Default returns a configuration with every default applied.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// Validate checks a configuration after flags have been applied.
func (c *Config) Validate() error {
	c.applyDefaults()
	return c.validate()
}

// applyDefaults sets default values for optional configuration fields.
func (c *Config) applyDefaults() {
	if c.Spinner.Name == "" {
		c.Spinner.Name = DefaultSpinner
	}
	if c.Spinner.Side == "" {
		c.Spinner.Side = DefaultSide
	}
	if c.Spinner.Ellipsis == "" {
		c.Spinner.Ellipsis = DefaultEllipsis
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

// validate checks the fields the spinner package cannot check itself.
func (c *Config) validate() error {
	if !slices.Contains(sides, c.Spinner.Side) {
		return errors.Errorf("spinner.side must be one of %v, got %q", sides, c.Spinner.Side)
	}
	if !slices.Contains(logLevels, c.Log.Level) {
		return errors.Errorf("log.level must be one of %v, got %q", logLevels, c.Log.Level)
	}
	if c.Spinner.IntervalMS < 0 {
		return errors.Errorf("spinner.interval_ms must not be negative, got %d", c.Spinner.IntervalMS)
	}
	return nil
}
