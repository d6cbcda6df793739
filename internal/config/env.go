package config

import (
	"strconv"
	"strings"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "CALCTERM_"

// LookupFunc looks up an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// envSetters maps environment variables to the setting they override.
var envSetters = map[string]func(c *Config, v string) error{
	EnvPrefix + "LOG_LEVEL":        func(c *Config, v string) error { c.Logging.Level = v; return nil },
	EnvPrefix + "LOG_FILE":         func(c *Config, v string) error { c.Logging.File = v; return nil },
	EnvPrefix + "QUIT_KEY":         func(c *Config, v string) error { c.Keys.Quit = v; return nil },
	EnvPrefix + "MOUSE":            setBool("mouse.enabled", func(c *Config, b bool) { c.Mouse.Enabled = b }),
	EnvPrefix + "THEME_TEXT":       func(c *Config, v string) error { c.Theme.Text = v; return nil },
	EnvPrefix + "THEME_BACKGROUND": func(c *Config, v string) error { c.Theme.Background = v; return nil },
	EnvPrefix + "THEME_BORDER":     func(c *Config, v string) error { c.Theme.Border = v; return nil },
	EnvPrefix + "THEME_ERROR":      func(c *Config, v string) error { c.Theme.Error = v; return nil },
	EnvPrefix + "THEME_SELECTED":   func(c *Config, v string) error { c.Theme.Selected = v; return nil },
}

// EnvVars returns the recognized environment variable names.
func EnvVars() []string {
	names := make([]string, 0, len(envSetters))
	for name := range envSetters {
		names = append(names, name)
	}
	return names
}

// ApplyEnv overrides settings in cfg from the environment.
// Empty string values are treated as valid values, not as unset.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	for name, set := range envSetters {
		v, ok := lookup(name)
		if !ok {
			continue
		}
		if err := set(cfg, v); err != nil {
			return err
		}
	}
	return nil
}

func setBool(path string, set func(*Config, bool)) func(*Config, string) error {
	return func(c *Config, v string) error {
		b, err := parseBool(v)
		if err != nil {
			return &ValidationError{Path: path, Message: "must be a boolean", Value: v}
		}
		set(c, b)
		return nil
	}
}

// parseBool accepts the strconv forms plus yes/no and on/off.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}
	return strconv.ParseBool(s)
}
