package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseFlagsDefaults(t *testing.T) {
	opts, err := parseFlags(nil, &bytes.Buffer{}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	if opts.ConfigPath != "" || opts.LogLevel != "" || opts.LogFile != "" {
		t.Errorf("unexpected defaults: %+v", opts)
	}
	if opts.DisableMouse {
		t.Error("mouse should be enabled by default")
	}
	if !opts.WatchConfig {
		t.Error("config watching should be on by default")
	}
}

func TestParseFlags(t *testing.T) {
	args := []string{"-c", "/tmp/c.toml", "-log-file", "/tmp/c.log", "-log-level", "debug", "-no-mouse", "-no-watch"}
	opts, err := parseFlags(args, &bytes.Buffer{}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	if opts.ConfigPath != "/tmp/c.toml" {
		t.Errorf("ConfigPath = %q", opts.ConfigPath)
	}
	if opts.LogFile != "/tmp/c.log" || opts.LogLevel != "debug" {
		t.Errorf("logging = %q %q", opts.LogFile, opts.LogLevel)
	}
	if !opts.DisableMouse {
		t.Error("-no-mouse not applied")
	}
	if opts.WatchConfig {
		t.Error("-no-watch not applied")
	}
}

func TestParseFlagsInvalidLevel(t *testing.T) {
	_, err := parseFlags([]string{"-log-level", "loud"}, &bytes.Buffer{}, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "invalid log level") {
		t.Errorf("parseFlags() error = %v, want invalid log level", err)
	}
}

func TestParseFlagsExtraArgs(t *testing.T) {
	_, err := parseFlags([]string{"1+1"}, &bytes.Buffer{}, &bytes.Buffer{})
	if err == nil {
		t.Error("expected an error for positional arguments")
	}
}

func TestParseFlagsVersion(t *testing.T) {
	var stdout bytes.Buffer
	_, err := parseFlags([]string{"-version"}, &stdout, &bytes.Buffer{})
	if !errors.Is(err, errVersion) {
		t.Fatalf("parseFlags() error = %v, want errVersion", err)
	}
	if !strings.HasPrefix(stdout.String(), "Calcterm dev") {
		t.Errorf("version output = %q", stdout.String())
	}
}

func TestParseFlagsHelp(t *testing.T) {
	for _, arg := range []string{"-h", "-help"} {
		var stderr bytes.Buffer
		_, err := parseFlags([]string{arg}, &bytes.Buffer{}, &stderr)
		if !errors.Is(err, errHelp) {
			t.Errorf("%s: error = %v, want errHelp", arg, err)
		}
		if !strings.Contains(stderr.String(), "Usage: calcterm") {
			t.Errorf("%s: usage not printed: %q", arg, stderr.String())
		}
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// No .env is fine.
	if err := loadDotEnv(); err != nil {
		t.Fatalf("loadDotEnv() without file = %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("CALCTERM_TEST_DOTENV=loaded\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CALCTERM_TEST_DOTENV", "")
	os.Unsetenv("CALCTERM_TEST_DOTENV")

	if err := loadDotEnv(); err != nil {
		t.Fatalf("loadDotEnv() = %v", err)
	}
	if got := os.Getenv("CALCTERM_TEST_DOTENV"); got != "loaded" {
		t.Errorf("CALCTERM_TEST_DOTENV = %q, want loaded", got)
	}
}
