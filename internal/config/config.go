package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/ruminaider/jobfilter/internal/overlay"
	"github.com/ruminaider/jobfilter/internal/paths"
	"go.yaml.in/yaml/v3"
)

// Config represents ~/.jobfilter/config.yaml.
type Config struct {
	Data    string        `yaml:"data"`
	Facets  []FacetConfig `yaml:"facets"`
	Overlay OverlayConfig `yaml:"overlay"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
}

// FacetConfig declares one filter. When Options is empty the options are
// derived from the loaded jobs.
type FacetConfig struct {
	Key     string   `yaml:"key"`
	Label   string   `yaml:"label"`
	Options []string `yaml:"options,omitempty"`
}

// OverlayConfig tunes the selector panels, in terminal rows.
type OverlayConfig struct {
	MinComfortableSpace int `yaml:"min_comfortable_space"`
	PreferredMaxHeight  int `yaml:"preferred_max_height"`
	Margin              int `yaml:"margin"`
	Gap                 int `yaml:"gap"`
}

// Filter bar positions.
const (
	BarTop    = "top"
	BarBottom = "bottom"
)

// UIConfig holds screen layout settings.
type UIConfig struct {
	FilterBar string `yaml:"filter_bar"` // top or bottom (default: top)
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: info)
	File  string `yaml:"file"`
}

// Params converts the overlay settings for the position solver.
func (o OverlayConfig) Params() overlay.Params {
	return overlay.Params{
		MinComfortableSpace: o.MinComfortableSpace,
		PreferredMaxHeight:  o.PreferredMaxHeight,
		Margin:              o.Margin,
		Gap:                 o.Gap,
	}
}

// Default returns the configuration used when no file exists.
func Default() Config {
	var cfg Config
	cfg.ApplyDefaults()
	return cfg
}

// Parse parses config.yaml bytes into a Config, expanding ${VAR} references
// and applying defaults. It does not validate.
func Parse(data []byte) (Config, error) {
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// Marshal serializes a Config to YAML bytes.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Load reads, parses and validates the config at path. A missing file yields
// the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating the parent directory.
func Save(path string, cfg Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// DefaultFacets are used when the config lists none.
func DefaultFacets() []FacetConfig {
	return []FacetConfig{
		{Key: "location", Label: "Location"},
		{Key: "type", Label: "Type"},
		{Key: "department", Label: "Department"},
	}
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Data == "" {
		c.Data = paths.DataFile()
	}
	if len(c.Facets) == 0 {
		c.Facets = DefaultFacets()
	}
	for i := range c.Facets {
		if c.Facets[i].Label == "" {
			c.Facets[i].Label = c.Facets[i].Key
		}
	}
	if c.Overlay == (OverlayConfig{}) {
		p := overlay.TerminalParams
		c.Overlay = OverlayConfig{
			MinComfortableSpace: p.MinComfortableSpace,
			PreferredMaxHeight:  p.PreferredMaxHeight,
			Margin:              p.Margin,
			Gap:                 p.Gap,
		}
	}
	if c.UI.FilterBar == "" {
		c.UI.FilterBar = BarTop
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.File == "" {
		c.Logging.File = paths.LogFile()
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Facets))
	for i, f := range c.Facets {
		if f.Key == "" {
			return fmt.Errorf("facets[%d].key is required", i)
		}
		if seen[f.Key] {
			return fmt.Errorf("facets[%d].key %q is duplicated", i, f.Key)
		}
		seen[f.Key] = true
	}
	o := c.Overlay
	if o.MinComfortableSpace < 0 || o.PreferredMaxHeight < 0 || o.Margin < 0 || o.Gap < 0 {
		return fmt.Errorf("overlay values must not be negative")
	}
	if c.UI.FilterBar != BarTop && c.UI.FilterBar != BarBottom {
		return fmt.Errorf("ui.filter_bar must be %q or %q, got %q", BarTop, BarBottom, c.UI.FilterBar)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	return nil
}

var envVarRe = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandEnvVars replaces ${VAR} with the value of the environment variable.
// Unset variables expand to "".
func expandEnvVars(data []byte) []byte {
	return envVarRe.ReplaceAllFunc(data, func(m []byte) []byte {
		name := envVarRe.FindSubmatch(m)[1]
		return []byte(os.Getenv(string(name)))
	})
}
