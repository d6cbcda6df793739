package app

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"testing/fstest"
	"time"

	"go.uber.org/zap"

	"github.com/dshills/calcterm/internal/button"
	"github.com/dshills/calcterm/internal/config"
	"github.com/dshills/calcterm/internal/renderer/backend"
	"github.com/dshills/calcterm/internal/renderer/core"
	"github.com/dshills/calcterm/internal/renderer/layout"
)

func TestReloadAppliesKeys(t *testing.T) {
	fsys := fstest.MapFS{"config.toml": &fstest.MapFile{Data: []byte("[keys]\nquit = \"x\"\n")}}
	app, err := New(Options{
		ConfigPath: "config.toml",
		Loader:     config.NewLoaderWithFS(fsys, nil),
		Logger:     zap.NewNop(),
	})
	if err != nil {
		t.Fatal(err)
	}
	b := backend.NewNullBackend(testWidth, testHeight)
	_ = app.SetBackend(b)

	// Rewritten on disk before the loop sees the reload request.
	fsys["config.toml"] = &fstest.MapFile{Data: []byte("[keys]\nquit = \"Q\"\n\n[mouse]\nenabled = false\n")}

	typeKeys(b, "3")
	b.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: reloadRequest{path: "config.toml"}})
	typeKeys(b, "x4")
	typeKeys(b, "Q")

	if err := app.Run(); !errors.Is(err, ErrQuit) {
		t.Fatalf("Run() = %v, want ErrQuit", err)
	}
	if got := app.State().Display; got != "4" {
		t.Errorf("display = %q, want 4 (3 x 4 pending)", got)
	}
	if app.Config().QuitRune() != 'Q' {
		t.Errorf("quit key = %q, want 'Q'", app.Config().QuitRune())
	}
	if b.MouseEnabled() {
		t.Error("reload should have disabled the mouse")
	}
	if m := app.Metrics(); m.Reloads != 1 {
		t.Errorf("reloads = %d, want 1", m.Reloads)
	}
}

func TestReloadKeepsHeldMouseButton(t *testing.T) {
	fsys := fstest.MapFS{"config.toml": &fstest.MapFile{Data: []byte("")}}
	app, err := New(Options{
		ConfigPath: "config.toml",
		Loader:     config.NewLoaderWithFS(fsys, nil),
		Logger:     zap.NewNop(),
	})
	if err != nil {
		t.Fatal(err)
	}
	b := backend.NewNullBackend(testWidth, testHeight)
	_ = app.SetBackend(b)

	fsys["config.toml"] = &fstest.MapFile{Data: []byte("[keys]\nquit = \"Q\"\n")}

	p, _ := layout.Compute(testWidth, testHeight, button.Grid()).Find(button.Numeric(7))
	c := p.Rect.Center()
	held := backend.Event{Type: backend.EventMouse, MouseX: c.Col, MouseY: c.Row, MouseButton: backend.MouseLeft}
	b.PostEvent(held)
	b.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: reloadRequest{path: "config.toml"}})
	b.PostEvent(held)
	typeKeys(b, "Q")

	if err := app.Run(); !errors.Is(err, ErrQuit) {
		t.Fatalf("Run() = %v, want ErrQuit", err)
	}
	if got := app.State().Display; got != "7" {
		t.Errorf("display = %q, want 7", got)
	}
	if m := app.Metrics(); m.MousePresses != 1 || m.Reloads != 1 {
		t.Errorf("mouse presses = %d, reloads = %d, want 1 and 1", m.MousePresses, m.Reloads)
	}
}

func TestReloadFailureKeepsConfig(t *testing.T) {
	fsys := fstest.MapFS{}
	app, err := New(Options{
		ConfigPath: "config.toml",
		Loader:     config.NewLoaderWithFS(fsys, nil),
		Logger:     zap.NewNop(),
	})
	if err != nil {
		t.Fatal(err)
	}
	b := backend.NewNullBackend(testWidth, testHeight)
	_ = app.SetBackend(b)

	fsys["config.toml"] = &fstest.MapFile{Data: []byte("[theme]\ntext = \"nope\"\n")}
	b.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: reloadRequest{path: "config.toml"}})
	typeKeys(b, "q")

	if err := app.Run(); !errors.Is(err, ErrQuit) {
		t.Fatalf("Run() = %v, want ErrQuit", err)
	}
	if m := app.Metrics(); m.Reloads != 0 {
		t.Errorf("reloads = %d, want 0", m.Reloads)
	}
	if app.Config().Theme.Text != "#FFFFFF" {
		t.Errorf("theme text = %q, want default kept", app.Config().Theme.Text)
	}
}

func TestReloadAppliesTheme(t *testing.T) {
	fsys := fstest.MapFS{}
	app, err := New(Options{
		ConfigPath: "config.toml",
		Loader:     config.NewLoaderWithFS(fsys, nil),
		Logger:     zap.NewNop(),
	})
	if err != nil {
		t.Fatal(err)
	}
	b := backend.NewNullBackend(testWidth, testHeight)
	_ = app.SetBackend(b)

	fsys["config.toml"] = &fstest.MapFile{Data: []byte("[theme]\ntext = \"#00FF00\"\n")}
	typeKeys(b, "7")
	b.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: reloadRequest{path: "config.toml"}})
	runUntilQuit(t, app, b)

	// The display text is right aligned two cells from the border.
	cell := b.GetCell(testWidth-3, 1)
	if cell.Rune != '7' {
		t.Fatalf("display cell = %q, want '7'", cell.Rune)
	}
	if !cell.Style.Foreground.Equals(core.ColorFromRGB(0, 255, 0)) {
		t.Errorf("display color = %v, want #00FF00", cell.Style.Foreground)
	}
}

func TestWatchConfigReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[keys]\nquit = \"q\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	app, err := New(Options{
		ConfigPath:  path,
		WatchConfig: true,
		Loader:      config.NewLoaderWithFS(config.OSFS{}, nil),
		Logger:      zap.NewNop(),
	})
	if err != nil {
		t.Fatal(err)
	}
	_ = app.SetBackend(backend.NewNullBackend(testWidth, testHeight))

	done := make(chan error, 1)
	go func() { done <- app.Run() }()
	for !app.IsRunning() {
		runtime.Gosched()
	}

	deadline := time.Now().Add(3 * time.Second)
	for app.Metrics().Reloads == 0 {
		if time.Now().After(deadline) {
			app.Shutdown()
			<-done
			t.Fatal("config change was not reloaded")
		}
		if err := os.WriteFile(path, []byte("[keys]\nquit = \"Q\"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(150 * time.Millisecond)
	}

	app.Shutdown()
	if err := <-done; err != nil {
		t.Errorf("Run() = %v, want nil", err)
	}
}
