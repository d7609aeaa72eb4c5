// Package config loads tally settings from an optional YAML file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/tally/pkg/domain"
)

// DefaultPath is the file looked up when no --config flag is given.
const DefaultPath = "tally.yaml"

// Output modes.
const (
	ModeText = "text"
	ModeJSON = "json"
)

// Config holds the user-tunable settings.
type Config struct {
	Theme    string `mapstructure:"theme" yaml:"theme"`
	Mode     string `mapstructure:"mode" yaml:"mode"`
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	Banner   bool   `mapstructure:"banner" yaml:"banner"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Theme:    "auto",
		Mode:     ModeText,
		LogLevel: "warn",
		Banner:   true,
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML content over the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(raw) == 0 {
		return cfg, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return cfg, err
	}
	if err := decoder.Decode(raw); err != nil {
		return cfg, fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	switch strings.ToLower(c.Mode) {
	case ModeText, ModeJSON:
	default:
		return fmt.Errorf("%w: mode %q", domain.ErrInvalidConfig, c.Mode)
	}
	return nil
}
