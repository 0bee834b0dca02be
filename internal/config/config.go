// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"

	"github.com/jeranaias/splitbill-tui/internal/friend"
	"github.com/jeranaias/splitbill-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete splitbill configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	UI   UIConfig   `toml:"ui" json:"ui"`
	Log  LogConfig  `toml:"log" json:"log"`
	Seed SeedConfig `toml:"seed" json:"seed"`

	// Source is the file this config was loaded from ("" for built-in defaults).
	Source string `toml:"-" json:"-"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Theme is the UI theme: "dark", "light", "auto"
	Theme string `toml:"theme" json:"theme"`
	// Currency is the symbol placed in front of amounts
	Currency string `toml:"currency" json:"currency"`
	// DefaultAvatar prefills the image field of the add-friend form
	DefaultAvatar string `toml:"default_avatar" json:"default_avatar"`
	// AltScreen runs the UI in the terminal's alternate screen buffer
	AltScreen bool `toml:"alt_screen" json:"alt_screen"`
	// ShowHelp shows the full key help instead of the short line
	ShowHelp bool `toml:"show_help" json:"show_help"`
}

// LogConfig contains logging configuration.
type LogConfig struct {
	// Level is one of "debug", "info", "warn", "error"
	Level string `toml:"level" json:"level"`
	// File is the log file path (empty = ~/.splitbill/splitbill.log)
	File string `toml:"file" json:"file"`
}

// SeedConfig controls the friends present at startup.
type SeedConfig struct {
	// Enabled loads seed friends; false starts with an empty list
	Enabled bool `toml:"enabled" json:"enabled"`
	// Friends overrides the built-in demo friends when non-empty
	Friends []SeedFriend `toml:"friends,omitempty" json:"friends,omitempty"`
}

// SeedFriend is a friend entry in the config file.
type SeedFriend struct {
	ID      string  `toml:"id" json:"id"`
	Name    string  `toml:"name" json:"name"`
	Image   string  `toml:"image" json:"image"`
	Balance float64 `toml:"balance" json:"balance"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",
		UI: UIConfig{
			Theme:         "auto",
			Currency:      "$",
			DefaultAvatar: friend.AvatarBase,
			AltScreen:     true,
			ShowHelp:      false,
		},
		Log: LogConfig{
			Level: "info",
		},
		Seed: SeedConfig{
			Enabled: true,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the splitbill configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".splitbill"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LogPath returns the configured log file, or the default one in ConfigDir.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "splitbill.log"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	for _, pathFn := range []func() (string, error){ConfigPathTOML, ConfigPathJSON} {
		path, err := pathFn()
		if err != nil {
			continue
		}
		if _, statErr := os.Stat(path); statErr == nil {
			return LoadFromPath(path)
		}
	}

	cfg := Default()
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML decodes a TOML file over cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON decodes a JSON file over cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// LoadFromPath loads configuration from a specific file path with full validation.
// Values missing from the file keep their defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}
	cfg.Source = path

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// SaveTOML writes the configuration to a TOML file atomically.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "# splitbill configuration file")
	fmt.Fprintln(&buf, "# Changes are picked up while splitbill is running.")
	fmt.Fprintln(&buf, "")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

var (
	validThemes    = map[string]bool{"auto": true, "dark": true, "light": true}
	validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
)

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: auto, dark, light", c.UI.Theme),
		})
	}

	if strings.TrimSpace(c.UI.Currency) == "" {
		errs = append(errs, ValidationError{Field: "ui.currency", Message: "must not be empty"})
	}

	if err := validateURL(c.UI.DefaultAvatar); err != nil {
		errs = append(errs, ValidationError{Field: "ui.default_avatar", Message: err.Error()})
	}

	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("invalid level '%s', must be one of: debug, info, warn, error", c.Log.Level),
		})
	}

	seen := make(map[string]bool)
	for i, f := range c.Seed.Friends {
		field := fmt.Sprintf("seed.friends[%d]", i)
		if strings.TrimSpace(f.Name) == "" {
			errs = append(errs, ValidationError{Field: field + ".name", Message: "must not be empty"})
		}
		if f.ID != "" {
			if seen[f.ID] {
				errs = append(errs, ValidationError{Field: field + ".id", Message: fmt.Sprintf("duplicate id '%s'", f.ID)})
			}
			seen[f.ID] = true
		}
		if f.Image != "" {
			if err := validateURL(f.Image); err != nil {
				errs = append(errs, ValidationError{Field: field + ".image", Message: err.Error()})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL '%s' must use http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("URL '%s' has no host", raw)
	}
	return nil
}

// SetDefaults fills in zero-value fields with defaults.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Version == "" {
		c.Version = defaults.Version
	}
	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
	c.UI.Theme = strings.ToLower(c.UI.Theme)
	if c.UI.Currency == "" {
		c.UI.Currency = defaults.UI.Currency
	}
	if c.UI.DefaultAvatar == "" {
		c.UI.DefaultAvatar = defaults.UI.DefaultAvatar
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	c.Log.Level = strings.ToLower(c.Log.Level)
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides.
//
// Supported environment variables:
//   - SPLITBILL_THEME: overrides ui.theme
//   - SPLITBILL_CURRENCY: overrides ui.currency
//   - SPLITBILL_LOG_LEVEL: overrides log.level
//   - SPLITBILL_LOG_FILE: overrides log.file
//   - SPLITBILL_NO_SEED: set to "1" or "true" to start without seed friends
func (c *Config) ApplyEnvOverrides() {
	if theme := os.Getenv("SPLITBILL_THEME"); theme != "" {
		c.UI.Theme = theme
	}
	if currency := os.Getenv("SPLITBILL_CURRENCY"); currency != "" {
		c.UI.Currency = currency
	}
	if level := os.Getenv("SPLITBILL_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
	if file := os.Getenv("SPLITBILL_LOG_FILE"); file != "" {
		c.Log.File = file
	}
	if noSeed := os.Getenv("SPLITBILL_NO_SEED"); noSeed != "" {
		if noSeed == "1" || strings.ToLower(noSeed) == "true" {
			c.Seed.Enabled = false
		}
	}
}

// =============================================================================
// SEED FRIENDS
// =============================================================================

// SeedFriends returns the friends to start with. Entries without an id get
// one from gen; entries without an image get the default avatar.
func (c *Config) SeedFriends(gen friend.IDGenerator) []friend.Friend {
	if !c.Seed.Enabled {
		return nil
	}
	if len(c.Seed.Friends) == 0 {
		return friend.Seed()
	}
	if gen == nil {
		gen = friend.NewUUID
	}

	out := make([]friend.Friend, 0, len(c.Seed.Friends))
	for _, sf := range c.Seed.Friends {
		id := friend.ID(sf.ID)
		if id == "" {
			id = gen()
		}
		image := sf.Image
		if image == "" {
			image = friend.AvatarURL(c.UI.DefaultAvatar, id)
		}
		f := friend.New(id, strings.TrimSpace(sf.Name), image)
		f.Balance = decimal.NewFromFloat(sf.Balance)
		out = append(out, f)
	}
	return out
}
