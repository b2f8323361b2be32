package config

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"cull/internal/errors"
	"cull/pkg/types"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure.
// It defines review settings, key bindings, and discovery parameters.
type Config struct {
	Review struct {
		Output  string `yaml:"output"`  // Path the shell script is written to
		Recurse bool   `yaml:"recurse"` // Descend past the first directory level
	} `yaml:"review"`
	Bindings []struct {
		Key    string `yaml:"key"`    // Single character that triggers the move
		Target string `yaml:"target"` // Destination directory
	} `yaml:"bindings"`
	Discovery struct {
		Exclude []string `yaml:"exclude"` // Glob patterns for paths to skip
	} `yaml:"discovery"`
}

// Load loads configuration from the default location
// (~/.config/cull/config.yaml).
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".config", "cull", "config.yaml")
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadFile(path string) (*Config, error) {
	// Start with default configuration
	cfg := defaultConfig()

	// Try to read the config file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Merge the loaded config with defaults
	if tempCfg.Review.Output != "" {
		cfg.Review.Output = tempCfg.Review.Output
	}
	cfg.Review.Recurse = tempCfg.Review.Recurse

	if len(tempCfg.Bindings) > 0 {
		cfg.Bindings = tempCfg.Bindings
	}
	if len(tempCfg.Discovery.Exclude) > 0 {
		cfg.Discovery.Exclude = tempCfg.Discovery.Exclude
	}

	// Validate the final configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns the default configuration with safe defaults.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.Review.Output = "cull.sh"
	cfg.Review.Recurse = false

	cfg.Bindings = []struct {
		Key    string `yaml:"key"`
		Target string `yaml:"target"`
	}{}
	cfg.Discovery.Exclude = []string{}

	return cfg
}

// Save saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func Save(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
// Returns error if any settings are invalid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewConfigError("nil config", "", errors.InvalidConfig, nil)
	}

	if c.Review.Output == "" {
		return errors.NewConfigError("output path is required", "review.output", errors.InvalidConfig, nil)
	}

	for i, b := range c.Bindings {
		if utf8.RuneCountInString(b.Key) != 1 {
			return errors.NewConfigError(
				fmt.Sprintf("binding %d: key must be a single character, got %q", i, b.Key),
				"bindings", errors.InvalidConfig, nil)
		}
		if b.Target == "" {
			return errors.NewConfigError(
				fmt.Sprintf("binding %d: target directory is required", i),
				"bindings", errors.InvalidConfig, nil)
		}
	}

	for _, pattern := range c.Discovery.Exclude {
		if _, err := glob.Compile(pattern); err != nil {
			return errors.NewConfigError(
				fmt.Sprintf("invalid exclude pattern %q", pattern),
				"discovery.exclude", errors.InvalidConfig, err)
		}
	}

	return nil
}

// BindingPairs converts the configured bindings into ordered key/target
// pairs. Call Validate first; a multi-rune key here keeps only its first
// rune.
func (c *Config) BindingPairs() []types.Binding {
	pairs := make([]types.Binding, 0, len(c.Bindings))
	for _, b := range c.Bindings {
		r, _ := utf8.DecodeRuneInString(b.Key)
		pairs = append(pairs, types.Binding{Key: r, Target: b.Target})
	}
	return pairs
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}
