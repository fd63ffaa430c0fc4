package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// EmbeddingConfig controls the dual-pane activity embedding surface.
type EmbeddingConfig struct {
	// Enabled turns on two-pane presentation and deep-link routing to
	// the secondary pane. On small layouts this stays false and the
	// deep-link router is a no-op.
	Enabled bool `yaml:"enabled"`
}

// FeaturesConfig gates the optional homepage sub-views.
type FeaturesConfig struct {
	// ContextualHome mounts the contextual cards view on the homepage.
	ContextualHome bool `yaml:"contextual_home"`

	// Suggestions mounts the suggestion panel. Defaults to true when
	// unset.
	Suggestions *bool `yaml:"suggestions"`
}

// HomepageConfig holds homepage presentation settings.
type HomepageConfig struct {
	// DefaultMenuKey is highlighted in the top-level list when a
	// request carries no highlight extra.
	DefaultMenuKey string `yaml:"default_menu_key"`
}

// Config is the parsed homeshell.yml.
type Config struct {
	Embedding EmbeddingConfig `yaml:"embedding"`
	Features  FeaturesConfig  `yaml:"features"`
	Homepage  HomepageConfig  `yaml:"homepage"`

	// LowRAM disables the suggestion and contextual views entirely.
	LowRAM bool `yaml:"low_ram"`

	// Extensions captures all other top-level keys for extensibility.
	Extensions map[string]interface{} `yaml:",inline"`
}

// DefaultMenuKey is the fallback highlight key when neither the request
// nor the config provides one.
const DefaultMenuKey = "network"

// Default returns the configuration used when no homeshell.yml exists:
// dual-pane embedding and the contextual home both on.
func Default() *Config {
	return &Config{
		Embedding: EmbeddingConfig{Enabled: true},
		Features:  FeaturesConfig{ContextualHome: true},
	}
}

// SuggestionsEnabled reports whether the suggestion panel feature is on.
func (c *Config) SuggestionsEnabled() bool {
	if c.Features.Suggestions == nil {
		return true
	}
	return *c.Features.Suggestions
}

// MenuKeyOrDefault returns the configured default menu key, falling
// back to the built-in default.
func (c *Config) MenuKeyOrDefault() string {
	if c.Homepage.DefaultMenuKey != "" {
		return c.Homepage.DefaultMenuKey
	}
	return DefaultMenuKey
}

// UnmarshalExtension decodes a top-level extension section into the
// given target struct. Missing keys are not an error; the target simply
// stays zero-valued.
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		return nil
	}

	// Use mapstructure to decode the generic map[string]interface{}
	// into the strongly-typed target struct, reusing the yaml tags.
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "yaml",
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}
