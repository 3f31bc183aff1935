package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultPath is the file read when no --config flag is given.
const DefaultPath = "minicc.toml"

// Config holds the compiler driver settings
type Config struct {
	Output OutputConfig `toml:"output"`
	Check  CheckConfig  `toml:"check"`
}

// OutputConfig controls how trees and diagnostics are printed
type OutputConfig struct {
	Format string `toml:"format"` // tree, source, yaml or json
	Color  string `toml:"color"`  // auto, always or never
}

// CheckConfig holds settings for the check command
type CheckConfig struct {
	CrossCheck bool `toml:"cross_check"`
}

var (
	Formats = []string{"tree", "source", "yaml", "json"}
	Colors  = []string{"auto", "always", "never"}
)

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file. Keys the driver does not know
// about are an error.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadOrDefault loads path when set. With an empty path it reads
// DefaultPath from the working directory if present, or MINICC_CONFIG when
// that is set, and otherwise falls back to Default.
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}

	if env := os.Getenv("MINICC_CONFIG"); env != "" {
		return Load(env)
	}

	if _, err := os.Stat(DefaultPath); err == nil {
		return Load(DefaultPath)
	}

	return Default(), nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if !contains(Formats, c.Output.Format) {
		return fmt.Errorf("output.format must be one of %s, got %q", strings.Join(Formats, ", "), c.Output.Format)
	}
	if !contains(Colors, c.Output.Color) {
		return fmt.Errorf("output.color must be one of %s, got %q", strings.Join(Colors, ", "), c.Output.Color)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = "tree"
	}
	if c.Output.Color == "" {
		c.Output.Color = "auto"
	}
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
