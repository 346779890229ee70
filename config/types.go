package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

const (
	// DefaultStorePath is where the records snapshot lives, relative to the config file.
	DefaultStorePath = ".rolodex/records.yml"
	// DefaultTheme is the TUI theme used when none is configured.
	DefaultTheme = "kanagawa"
	// DefaultKeymap is the TUI keymap style used when none is configured.
	DefaultKeymap = "vim"
)

// SeedRecord is an initial record loaded into an empty store.
// The id is optional; the controller generates one when it is blank.
type SeedRecord struct {
	ID      string `yaml:"id,omitempty" toml:"id,omitempty" json:"id,omitempty" jsonschema:"description=Stable record id (generated when empty)"`
	Name    string `yaml:"name" toml:"name" json:"name" jsonschema:"description=First name"`
	Surname string `yaml:"surname" toml:"surname" json:"surname" jsonschema:"description=Last name"`
}

// StoreConfig controls where records are persisted.
type StoreConfig struct {
	// Path of the YAML snapshot. Relative paths resolve against the config file's directory.
	Path string `yaml:"path,omitempty" toml:"path,omitempty" json:"path,omitempty" jsonschema:"description=Path of the records snapshot file"`
	// Autosave writes the snapshot after every change.
	Autosave *bool `yaml:"autosave,omitempty" toml:"autosave,omitempty" json:"autosave,omitempty" jsonschema:"description=Write the snapshot after every change (default: true)"`
	// Watch reloads the snapshot when it is edited outside the TUI.
	Watch *bool `yaml:"watch,omitempty" toml:"watch,omitempty" json:"watch,omitempty" jsonschema:"description=Reload the snapshot when it changes on disk (default: true)"`
}

// TUIConfig controls the interactive front end.
type TUIConfig struct {
	Theme  string `yaml:"theme,omitempty" toml:"theme,omitempty" json:"theme,omitempty" jsonschema:"enum=kanagawa,enum=gruvbox,enum=terminal,description=Color theme"`
	Keymap string `yaml:"keymap,omitempty" toml:"keymap,omitempty" json:"keymap,omitempty" jsonschema:"enum=vim,enum=emacs,enum=arrows,description=Navigation key style"`
	Title  string `yaml:"title,omitempty" toml:"title,omitempty" json:"title,omitempty" jsonschema:"description=Header shown above the list"`
}

// Config is the rolodex.yml configuration.
type Config struct {
	Version string       `yaml:"version" toml:"version" json:"version" jsonschema:"description=Configuration version (e.g. 1.0)"`
	Seed    []SeedRecord `yaml:"seed,omitempty" toml:"seed,omitempty" json:"seed,omitempty" jsonschema:"description=Records loaded when no snapshot exists yet"`
	Store   StoreConfig  `yaml:"store,omitempty" toml:"store,omitempty" json:"store,omitempty" jsonschema:"description=Records persistence"`
	TUI     TUIConfig    `yaml:"tui,omitempty" toml:"tui,omitempty" json:"tui,omitempty" jsonschema:"description=Interactive front end"`

	// Extensions captures all other top-level keys (e.g. `logging`).
	Extensions map[string]interface{} `yaml:",inline" toml:"-" json:"-" jsonschema:"-"`

	// path is the file this config was read from, if any.
	path string
}

// Path returns the file the configuration was loaded from, or "" for
// defaults and in-memory configs.
func (c *Config) Path() string {
	return c.path
}

// Default returns the configuration used when no rolodex.yml exists:
// defaults plus the two demo records.
func Default() *Config {
	cfg := &Config{
		Seed: []SeedRecord{
			{Name: "Mickey", Surname: "Mouse"},
			{Name: "Walt", Surname: "Disney"},
		},
	}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults fills in unset values.
func (c *Config) SetDefaults() {
	if c.Version == "" {
		c.Version = "1.0"
	}
	if c.Store.Path == "" {
		c.Store.Path = DefaultStorePath
	}
	if c.Store.Autosave == nil {
		t := true
		c.Store.Autosave = &t
	}
	if c.Store.Watch == nil {
		t := true
		c.Store.Watch = &t
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = DefaultTheme
	}
	if c.TUI.Keymap == "" {
		c.TUI.Keymap = DefaultKeymap
	}
	if c.TUI.Title == "" {
		c.TUI.Title = "Rolodex"
	}
}

// AutosaveEnabled reports whether store.autosave is on (default true).
func (c *Config) AutosaveEnabled() bool {
	return c.Store.Autosave == nil || *c.Store.Autosave
}

// WatchEnabled reports whether store.watch is on (default true).
func (c *Config) WatchEnabled() bool {
	return c.Store.Watch == nil || *c.Store.Watch
}

// UnmarshalExtension decodes a specific extension's configuration into the
// provided target struct. The target must be a pointer. A missing key leaves
// the target untouched.
//
// Example:
//
//	var logCfg logging.Config
//	err := cfg.UnmarshalExtension("logging", &logCfg)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "yaml",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}

// ConfigSource identifies the origin of a configuration layer.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceGlobal   ConfigSource = "global"
	SourceProject  ConfigSource = "project"
	SourceOverride ConfigSource = "override"
)

// OverrideSource is one override file and its parsed contents.
type OverrideSource struct {
	Path   string
	Config *Config
}

// LayeredConfig holds every configuration layer separately, plus the merged result.
type LayeredConfig struct {
	Default   *Config
	Global    *Config
	Project   *Config
	Overrides []OverrideSource
	Final     *Config
	FilePaths map[ConfigSource]string
}
