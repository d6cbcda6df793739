package config

import (
	"errors"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/dshills/calcterm/internal/renderer/core"
)

func envMap(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
	if cfg.QuitRune() != 'q' {
		t.Errorf("QuitRune() = %q, want 'q'", cfg.QuitRune())
	}
	if !cfg.Mouse.Enabled {
		t.Error("mouse should be enabled by default")
	}
	aliases := cfg.AliasRunes()
	if aliases['*'] != 'x' || aliases['n'] != '±' {
		t.Errorf("AliasRunes() = %v", aliases)
	}
}

func TestThemeColors(t *testing.T) {
	cfg := Default()
	colors, err := cfg.ThemeColors()
	if err != nil {
		t.Fatalf("ThemeColors() error = %v", err)
	}
	if !colors.Text.Equals(core.ColorWhite) {
		t.Errorf("Text = %v, want white", colors.Text)
	}
	if !colors.Background.IsDefault() {
		t.Errorf("Background = %v, want default", colors.Background)
	}
	if !colors.Selected.Equals(core.ColorDarkGray) {
		t.Errorf("Selected = %v, want dark gray", colors.Selected)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		path   string
	}{
		{"bad color", func(c *Config) { c.Theme.Error = "#12" }, "theme.error"},
		{"long quit key", func(c *Config) { c.Keys.Quit = "qq" }, "keys.quit"},
		{"long alias key", func(c *Config) { c.Keys.Aliases["ab"] = "+" }, "keys.aliases.ab"},
		{"alias to nothing", func(c *Config) { c.Keys.Aliases["p"] = "" }, "keys.aliases.p"},
		{"alias to non-button", func(c *Config) { c.Keys.Aliases["p"] = "z" }, "keys.aliases.p"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrValidationFailed) {
				t.Fatalf("Validate() error = %v, want ErrValidationFailed", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error %T is not *ValidationError", err)
			}
			if verr.Path != tt.path {
				t.Errorf("Path = %q, want %q", verr.Path, tt.path)
			}
		})
	}
}

func TestValidateAcceptsUppercaseLevel(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "DEBUG"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestEmptyQuitKey(t *testing.T) {
	cfg := Default()
	cfg.Keys.Quit = ""
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.QuitRune() != 0 {
		t.Errorf("QuitRune() = %q, want 0", cfg.QuitRune())
	}
}

func TestClone(t *testing.T) {
	cfg := Default()
	clone := cfg.Clone()
	clone.Keys.Aliases["p"] = "+"
	clone.Logging.Level = "debug"

	if _, ok := cfg.Keys.Aliases["p"]; ok {
		t.Error("clone shares alias map with original")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("original level = %q, want info", cfg.Logging.Level)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv(EnvConfigPath, "/etc/calc.toml")
	p, err := DefaultPath()
	if err != nil || p != "/etc/calc.toml" {
		t.Errorf("DefaultPath() = %q, %v", p, err)
	}

	t.Setenv(EnvConfigPath, "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	p, err = DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error = %v", err)
	}
	if want := filepath.Join("/tmp/xdg", "calcterm", "config.toml"); p != want {
		t.Errorf("DefaultPath() = %q, want %q", p, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	l := NewLoaderWithFS(fstest.MapFS{}, nil)
	cfg, err := l.Load("config.toml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Logging.Level != "info" || cfg.QuitRune() != 'q' {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	fsys := fstest.MapFS{
		"config.toml": &fstest.MapFile{Data: []byte(`
[theme]
selected = "240"

[keys]
quit = "Q"

[keys.aliases]
"p" = "+"

[logging]
level = "debug"
file = "/tmp/calcterm.log"

[mouse]
enabled = false
`)},
	}

	cfg, err := NewLoaderWithFS(fsys, nil).Load("config.toml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.QuitRune() != 'Q' {
		t.Errorf("QuitRune() = %q, want 'Q'", cfg.QuitRune())
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.File != "/tmp/calcterm.log" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
	if cfg.Mouse.Enabled {
		t.Error("mouse should be disabled")
	}
	// Unset keys keep their defaults.
	if cfg.Theme.Text != "#FFFFFF" {
		t.Errorf("Theme.Text = %q, want default", cfg.Theme.Text)
	}
	colors, _ := cfg.ThemeColors()
	if !colors.Selected.Equals(core.ColorFromIndex(240)) {
		t.Errorf("Selected = %v, want palette 240", colors.Selected)
	}
	// A file alias table replaces the defaults.
	aliases := cfg.AliasRunes()
	if len(aliases) != 1 || aliases['p'] != '+' {
		t.Errorf("AliasRunes() = %v, want only p→+", aliases)
	}
}

func TestLoadKeepsDefaultAliases(t *testing.T) {
	fsys := fstest.MapFS{
		"config.toml": &fstest.MapFile{Data: []byte("[keys]\nquit = \"e\"\n")},
	}
	cfg, err := NewLoaderWithFS(fsys, nil).Load("config.toml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.AliasRunes()['*'] != 'x' {
		t.Errorf("default aliases lost: %v", cfg.Keys.Aliases)
	}
}

func TestLoadParseError(t *testing.T) {
	fsys := fstest.MapFS{
		"config.toml": &fstest.MapFile{Data: []byte("[logging]\nlevel = \n")},
	}
	_, err := NewLoaderWithFS(fsys, nil).Load("config.toml")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Load() error = %v, want *ParseError", err)
	}
	if perr.Path != "config.toml" {
		t.Errorf("Path = %q", perr.Path)
	}
	if perr.Line == 0 {
		t.Error("ParseError should carry the line of the problem")
	}
	if perr.Unwrap() == nil {
		t.Error("ParseError should wrap the decoder error")
	}
}

func TestLoadUnknownKey(t *testing.T) {
	fsys := fstest.MapFS{
		"config.toml": &fstest.MapFile{Data: []byte("[logging]\nlevl = \"debug\"\n")},
	}
	_, err := NewLoaderWithFS(fsys, nil).Load("config.toml")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Load() error = %v, want *ParseError", err)
	}
	if perr.Line != 2 {
		t.Errorf("Line = %d, want 2", perr.Line)
	}
	if perr.Column == 0 {
		t.Error("expected a column for the unknown key")
	}
}

func TestLoadYAMLFile(t *testing.T) {
	fsys := fstest.MapFS{
		"config.yaml": &fstest.MapFile{Data: []byte(`
theme:
  selected: "240"
keys:
  quit: Q
  aliases:
    p: "+"
logging:
  level: debug
  file: /tmp/calcterm.log
mouse:
  enabled: false
`)},
	}

	cfg, err := NewLoaderWithFS(fsys, nil).Load("config.yaml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.QuitRune() != 'Q' {
		t.Errorf("QuitRune() = %q, want 'Q'", cfg.QuitRune())
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.File != "/tmp/calcterm.log" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
	if cfg.Mouse.Enabled {
		t.Error("expected mouse disabled")
	}
	if cfg.Theme.Selected != "240" || cfg.Theme.Error != Default().Theme.Error {
		t.Errorf("Theme = %+v", cfg.Theme)
	}
	if len(cfg.Keys.Aliases) != 1 || cfg.Keys.Aliases["p"] != "+" {
		t.Errorf("Aliases = %v, want only p", cfg.Keys.Aliases)
	}
}

func TestLoadYAMLExtensions(t *testing.T) {
	for _, name := range []string{"config.yml", "CONFIG.YAML"} {
		fsys := fstest.MapFS{
			name: &fstest.MapFile{Data: []byte("logging:\n  level: warn\n")},
		}
		cfg, err := NewLoaderWithFS(fsys, nil).Load(name)
		if err != nil {
			t.Fatalf("Load(%q) error = %v", name, err)
		}
		if cfg.Logging.Level != "warn" {
			t.Errorf("Load(%q) level = %q, want warn", name, cfg.Logging.Level)
		}
	}
}

func TestLoadEmptyYAMLKeepsDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		"config.yaml": &fstest.MapFile{Data: []byte("")},
	}
	cfg, err := NewLoaderWithFS(fsys, nil).Load("config.yaml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.QuitRune() != Default().QuitRune() {
		t.Errorf("QuitRune() = %q, want default", cfg.QuitRune())
	}
	if len(cfg.Keys.Aliases) != len(defaultAliases()) {
		t.Errorf("expected default aliases, got %v", cfg.Keys.Aliases)
	}
}

func TestLoadYAMLUnknownKey(t *testing.T) {
	fsys := fstest.MapFS{
		"config.yaml": &fstest.MapFile{Data: []byte("logging:\n  levl: debug\n")},
	}
	_, err := NewLoaderWithFS(fsys, nil).Load("config.yaml")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Load() error = %v, want *ParseError", err)
	}
	if perr.Line != 2 {
		t.Errorf("Line = %d, want 2", perr.Line)
	}
}

func TestLoadYAMLSyntaxError(t *testing.T) {
	fsys := fstest.MapFS{
		"config.yaml": &fstest.MapFile{Data: []byte("logging:\n  level: [debug\n")},
	}
	_, err := NewLoaderWithFS(fsys, nil).Load("config.yaml")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Load() error = %v, want *ParseError", err)
	}
	if perr.Path != "config.yaml" {
		t.Errorf("Path = %q, want config.yaml", perr.Path)
	}
}

func TestLoadInvalidValue(t *testing.T) {
	fsys := fstest.MapFS{
		"config.toml": &fstest.MapFile{Data: []byte("[logging]\nlevel = \"loud\"\n")},
	}
	_, err := NewLoaderWithFS(fsys, nil).Load("config.toml")
	if !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("Load() error = %v, want ErrValidationFailed", err)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	fsys := fstest.MapFS{
		"config.toml": &fstest.MapFile{Data: []byte("[logging]\nlevel = \"debug\"\n")},
	}
	env := envMap(map[string]string{
		"CALCTERM_LOG_LEVEL":  "warn",
		"CALCTERM_MOUSE":      "off",
		"CALCTERM_QUIT_KEY":   "",
		"CALCTERM_THEME_TEXT": "#0F0",
	})

	cfg, err := NewLoaderWithFS(fsys, env).Load("config.toml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Level = %q, want warn", cfg.Logging.Level)
	}
	if cfg.Mouse.Enabled {
		t.Error("CALCTERM_MOUSE=off should disable the mouse")
	}
	if cfg.QuitRune() != 0 {
		t.Errorf("empty CALCTERM_QUIT_KEY should disable the quit key, got %q", cfg.QuitRune())
	}
	colors, _ := cfg.ThemeColors()
	if !colors.Text.Equals(core.ColorFromRGB(0, 255, 0)) {
		t.Errorf("Text = %v, want #00FF00", colors.Text)
	}
}

func TestApplyEnvBadBool(t *testing.T) {
	err := ApplyEnv(Default(), envMap(map[string]string{"CALCTERM_MOUSE": "maybe"}))
	if !errors.Is(err, ErrValidationFailed) {
		t.Errorf("ApplyEnv() error = %v, want ErrValidationFailed", err)
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"true", true}, {"1", true}, {"yes", true}, {"ON", true},
		{"false", false}, {"0", false}, {"no", false}, {"off", false},
	}
	for _, tt := range tests {
		got, err := parseBool(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("parseBool(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestEnvVars(t *testing.T) {
	names := EnvVars()
	if len(names) != len(envSetters) {
		t.Fatalf("EnvVars() returned %d names, want %d", len(names), len(envSetters))
	}
	for _, n := range names {
		if n[:len(EnvPrefix)] != EnvPrefix {
			t.Errorf("%q lacks prefix %q", n, EnvPrefix)
		}
	}
}

func TestParseErrorMessage(t *testing.T) {
	tests := []struct {
		err  *ParseError
		want string
	}{
		{&ParseError{Path: "a.toml", Line: 2, Column: 3, Message: "bad"}, "parse error in a.toml at line 2, column 3: bad"},
		{&ParseError{Path: "a.toml", Line: 2, Message: "bad"}, "parse error in a.toml at line 2: bad"},
		{&ParseError{Path: "a.toml", Message: "bad"}, "parse error in a.toml: bad"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}
