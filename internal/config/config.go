package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/dshills/calcterm/internal/button"
	"github.com/dshills/calcterm/internal/renderer/core"
)

// EnvConfigPath overrides the default config file location.
const EnvConfigPath = "CALCTERM_CONFIG"

// Log levels accepted by logging.level.
var logLevels = []string{"debug", "info", "warn", "error"}

// Config holds every calcterm setting.
type Config struct {
	Theme   ThemeConfig   `toml:"theme" yaml:"theme"`
	Keys    KeysConfig    `toml:"keys" yaml:"keys"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
	Mouse   MouseConfig   `toml:"mouse" yaml:"mouse"`
}

// ThemeConfig holds colors as strings accepted by core.ParseColor.
type ThemeConfig struct {
	Text       string `toml:"text" yaml:"text"`
	Background string `toml:"background" yaml:"background"`
	Border     string `toml:"border" yaml:"border"`
	Error      string `toml:"error" yaml:"error"`
	Selected   string `toml:"selected" yaml:"selected"`
}

// KeysConfig holds keyboard settings. Each key and value is a single
// character; alias targets must be button labels.
type KeysConfig struct {
	Quit    string            `toml:"quit" yaml:"quit"`
	Aliases map[string]string `toml:"aliases" yaml:"aliases"`
}

// LoggingConfig holds logging settings. An empty File disables logging.
type LoggingConfig struct {
	Level string `toml:"level" yaml:"level"`
	File  string `toml:"file" yaml:"file"`
}

// MouseConfig holds mouse settings.
type MouseConfig struct {
	Enabled bool `toml:"enabled" yaml:"enabled"`
}

// Colors is a parsed ThemeConfig.
type Colors struct {
	Text       core.Color
	Background core.Color
	Border     core.Color
	Error      core.Color
	Selected   core.Color
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Theme: ThemeConfig{
			Text:       "#FFFFFF",
			Background: "default",
			Border:     "default",
			Error:      "#FF0000",
			Selected:   "#606060",
		},
		Keys: KeysConfig{
			Quit:    "q",
			Aliases: defaultAliases(),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Mouse: MouseConfig{
			Enabled: true,
		},
	}
}

func defaultAliases() map[string]string {
	return map[string]string{
		"*": "x",
		"X": "x",
		"_": string(button.LabelInvert),
		"n": string(button.LabelInvert),
	}
}

// DefaultPath returns the config file location: $CALCTERM_CONFIG if set,
// otherwise calcterm/config.toml under the user config directory.
func DefaultPath() (string, error) {
	if p, ok := os.LookupEnv(EnvConfigPath); ok && p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoConfigDir, err)
	}
	return filepath.Join(dir, "calcterm", "config.toml"), nil
}

// Validate checks every setting and returns the first problem found.
func (c *Config) Validate() error {
	if _, err := c.ThemeColors(); err != nil {
		return err
	}

	if c.Keys.Quit != "" && utf8.RuneCountInString(c.Keys.Quit) != 1 {
		return &ValidationError{Path: "keys.quit", Message: "must be a single character", Value: c.Keys.Quit}
	}
	for from, to := range c.Keys.Aliases {
		path := "keys.aliases." + from
		if utf8.RuneCountInString(from) != 1 {
			return &ValidationError{Path: path, Message: "alias key must be a single character", Value: from}
		}
		if utf8.RuneCountInString(to) != 1 {
			return &ValidationError{Path: path, Message: "alias target must be a single character", Value: to}
		}
		r, _ := utf8.DecodeRuneInString(to)
		if _, ok := button.FromLabel(r); !ok {
			return &ValidationError{Path: path, Message: "alias target is not a button", Value: to}
		}
	}

	level := strings.ToLower(c.Logging.Level)
	valid := false
	for _, l := range logLevels {
		if level == l {
			valid = true
			break
		}
	}
	if !valid {
		return &ValidationError{
			Path:    "logging.level",
			Message: "must be one of " + strings.Join(logLevels, ", "),
			Value:   c.Logging.Level,
		}
	}
	return nil
}

// ThemeColors parses the theme colors.
func (c *Config) ThemeColors() (Colors, error) {
	var colors Colors
	fields := []struct {
		name  string
		value string
		dst   *core.Color
	}{
		{"text", c.Theme.Text, &colors.Text},
		{"background", c.Theme.Background, &colors.Background},
		{"border", c.Theme.Border, &colors.Border},
		{"error", c.Theme.Error, &colors.Error},
		{"selected", c.Theme.Selected, &colors.Selected},
	}
	for _, f := range fields {
		color, err := core.ParseColor(f.value)
		if err != nil {
			return Colors{}, &ValidationError{Path: "theme." + f.name, Message: err.Error(), Value: f.value}
		}
		*f.dst = color
	}
	return colors, nil
}

// QuitRune returns the quit key, or 0 when none is set.
func (c *Config) QuitRune() rune {
	if c.Keys.Quit == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(c.Keys.Quit)
	return r
}

// AliasRunes returns the alias table keyed by rune. Entries that are not
// single characters are skipped; Validate reports them.
func (c *Config) AliasRunes() map[rune]rune {
	aliases := make(map[rune]rune, len(c.Keys.Aliases))
	for from, to := range c.Keys.Aliases {
		if utf8.RuneCountInString(from) != 1 || utf8.RuneCountInString(to) != 1 {
			continue
		}
		f, _ := utf8.DecodeRuneInString(from)
		t, _ := utf8.DecodeRuneInString(to)
		aliases[f] = t
	}
	return aliases
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Keys.Aliases = make(map[string]string, len(c.Keys.Aliases))
	for k, v := range c.Keys.Aliases {
		clone.Keys.Aliases[k] = v
	}
	return &clone
}
