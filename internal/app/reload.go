package app

import (
	"go.uber.org/zap"

	"github.com/dshills/calcterm/internal/config"
	"github.com/dshills/calcterm/internal/config/watcher"
	"github.com/dshills/calcterm/internal/input"
	"github.com/dshills/calcterm/internal/renderer"
	"github.com/dshills/calcterm/internal/renderer/backend"
)

// handlerConfig converts key and mouse settings for the input handler.
func handlerConfig(cfg *config.Config) input.Config {
	return input.Config{
		QuitKey:     cfg.QuitRune(),
		Aliases:     cfg.AliasRunes(),
		EnableMouse: cfg.Mouse.Enabled,
	}
}

// rendererOptions builds renderer options from the theme settings.
// Colors were checked by Validate, so a parse failure falls back to the
// default theme.
func (app *Application) rendererOptions(cfg *config.Config) renderer.Options {
	opts := renderer.DefaultOptions()
	if theme, ok := app.theme(cfg); ok {
		opts.Theme = theme
	}
	return opts
}

func (app *Application) theme(cfg *config.Config) (renderer.Theme, bool) {
	c, err := cfg.ThemeColors()
	if err != nil {
		app.logger.Warn("invalid theme, using default", zap.Error(err))
		return renderer.Theme{}, false
	}
	return renderer.NewTheme(c.Text, c.Background, c.Border, c.Error, c.Selected), true
}

// startWatcher watches the config file and posts a reload request into the
// backend queue on every change. A missing config directory only disables
// live reload.
func (app *Application) startWatcher(b backend.Backend) {
	path := app.opts.ConfigPath
	if path == "" {
		return
	}

	w := watcher.New(watcher.WithErrorHandler(func(err error) {
		app.logger.Warn("config watcher error", zap.Error(err))
	}))
	w.OnChange(func(e watcher.Event) {
		b.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: reloadRequest{path: path}})
	})
	if err := w.Watch(path); err != nil {
		app.logger.Info("config reload disabled", zap.Error(err))
		return
	}
	if err := w.Start(); err != nil {
		app.logger.Warn("config reload disabled", zap.Error(err))
		return
	}

	app.mu.Lock()
	app.watcher = w
	app.mu.Unlock()
}

func (app *Application) stopWatcher() {
	app.mu.Lock()
	w := app.watcher
	app.watcher = nil
	app.mu.Unlock()

	if w != nil {
		_ = w.Stop()
	}
}

// reload re-reads the config file. On failure the current settings stay
// in effect. Calculator state is never touched.
func (app *Application) reload(path string) {
	cfg, err := app.loadConfig()
	if err != nil {
		app.logger.Warn("config reload failed", zap.String("path", path), zap.Error(err))
		return
	}
	app.applyConfig(cfg)
	app.metrics.RecordReload()
	app.logger.Info("config reloaded", zap.String("path", path))
}

// applyConfig swaps in new settings. Logging settings apply on restart.
func (app *Application) applyConfig(cfg *config.Config) {
	app.config = cfg
	app.input.SetConfig(handlerConfig(cfg))

	if theme, ok := app.theme(cfg); ok {
		app.renderer.SetTheme(theme)
	}
	if cfg.Mouse.Enabled {
		app.backend.EnableMouse()
	} else {
		app.backend.DisableMouse()
	}
}
