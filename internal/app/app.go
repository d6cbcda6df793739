package app

import (
	"errors"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dshills/calcterm/internal/button"
	"github.com/dshills/calcterm/internal/calc"
	"github.com/dshills/calcterm/internal/config"
	"github.com/dshills/calcterm/internal/config/watcher"
	"github.com/dshills/calcterm/internal/input"
	"github.com/dshills/calcterm/internal/renderer"
	"github.com/dshills/calcterm/internal/renderer/backend"
)

// Application owns one calculator session.
type Application struct {
	mu sync.Mutex

	opts      Options
	loader    *config.Loader
	config    *config.Config
	logger    *zap.Logger
	sessionID string
	metrics   *Metrics

	// Owned by the event loop goroutine.
	state    *calc.State
	input    *input.Handler
	renderer *renderer.Renderer
	selected button.ID

	backend backend.Backend
	watcher *watcher.Watcher

	running  atomic.Bool
	done     chan struct{}
	stopOnce sync.Once
}

// Options configures the application. Non-zero override fields take
// precedence over the config file and environment.
type Options struct {
	// ConfigPath is the path to the configuration file. Empty uses
	// config.DefaultPath.
	ConfigPath string

	// LogLevel overrides logging.level.
	LogLevel string

	// LogFile overrides logging.file.
	LogFile string

	// DisableMouse turns mouse input off regardless of config.
	DisableMouse bool

	// WatchConfig reloads the config file when it changes.
	WatchConfig bool

	// Logger replaces the logger built from config.
	Logger *zap.Logger

	// Loader replaces the default config loader.
	Loader *config.Loader
}

// reloadRequest is posted by the config watcher to wake the event loop.
type reloadRequest struct {
	path string
}

// New loads configuration and creates an Application.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:      opts,
		loader:    opts.Loader,
		sessionID: uuid.NewString(),
		metrics:   NewMetrics(),
		state:     calc.New(),
		done:      make(chan struct{}),
	}
	if app.loader == nil {
		app.loader = config.NewLoader()
	}

	if app.opts.ConfigPath == "" {
		if p, err := config.DefaultPath(); err == nil {
			app.opts.ConfigPath = p
		}
	}

	cfg, err := app.loadConfig()
	if err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}
	app.config = cfg

	logger := opts.Logger
	if logger == nil {
		logger, err = NewLogger(cfg.Logging)
		if err != nil {
			return nil, &InitError{Component: "logging", Err: err}
		}
	}
	app.logger = logger.With(zap.String("session_id", app.sessionID))
	app.input = input.NewHandler(handlerConfig(cfg))

	app.logger.Info("session created",
		zap.String("config", app.opts.ConfigPath),
		zap.Bool("mouse", cfg.Mouse.Enabled),
	)
	return app, nil
}

// loadConfig reads the config file and applies option overrides.
func (app *Application) loadConfig() (*config.Config, error) {
	cfg, err := app.loader.Load(app.opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if app.opts.LogLevel != "" {
		cfg.Logging.Level = app.opts.LogLevel
	}
	if app.opts.LogFile != "" {
		cfg.Logging.File = app.opts.LogFile
	}
	if app.opts.DisableMouse {
		cfg.Mouse.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}

	app.backend = b
	return nil
}

// Run starts the event loop and blocks until the user quits or Shutdown
// is called. Quitting from the keyboard returns ErrQuit.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	app.mu.Lock()
	b := app.backend
	app.mu.Unlock()
	if b == nil {
		return ErrNoBackend
	}

	if err := b.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer b.Shutdown()

	if app.config.Mouse.Enabled {
		b.EnableMouse()
	}
	app.renderer = renderer.New(b, app.rendererOptions(app.config))

	if app.opts.WatchConfig {
		app.startWatcher(b)
	}

	app.render()

	err := app.eventLoop(b)
	app.stopWatcher()
	app.logger.Info("session ended", app.metrics.Snapshot().Fields()...)
	_ = app.logger.Sync()
	return err
}

// eventLoop processes backend events until quit or shutdown.
func (app *Application) eventLoop(b backend.Backend) error {
	for {
		select {
		case <-app.done:
			return nil
		default:
		}

		ev := b.PollEvent()

		select {
		case <-app.done:
			return nil
		default:
		}

		if err := app.handleEvent(ev); err != nil {
			return err
		}
	}
}

// handleEvent applies one backend event.
func (app *Application) handleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventResize:
		app.renderer.Resize(ev.Width, ev.Height)
		app.render()
		return nil

	case backend.EventInterrupt:
		if req, ok := ev.Data.(reloadRequest); ok {
			app.reload(req.path)
			app.render()
		}
		return nil

	case backend.EventKey, backend.EventMouse:
		return app.handleInput(ev)

	default:
		return nil
	}
}

func (app *Application) handleInput(ev backend.Event) error {
	res := app.input.Translate(ev, app.renderer)

	switch res.Action {
	case input.ActionQuit:
		return ErrQuit

	case input.ActionRedraw:
		app.render()

	case input.ActionPress:
		app.press(res)
		app.render()

	default:
		if ev.Type == backend.EventKey {
			app.metrics.RecordIgnored()
			app.backend.Beep()
		}
	}
	return nil
}

// press dispatches one button onto the calculator.
func (app *Application) press(res input.Result) {
	wasError := app.state.HasError()
	app.metrics.RecordPress(res.Source == input.SourceMouse)

	if err := app.dispatch(res.Button); err != nil {
		var perr *RecoveredPanicError
		if errors.As(err, &perr) {
			app.metrics.RecordPanic()
			app.logger.Error("dispatch panicked",
				zap.Stringer("button", res.Button),
				zap.Any("panic", perr.Value),
				zap.String("stack", perr.Stack),
			)
		} else {
			app.logger.Warn("dispatch failed", zap.Stringer("button", res.Button), zap.Error(err))
		}
		app.backend.Beep()
		return
	}
	app.selected = res.Button

	app.logger.Debug("button pressed",
		zap.Stringer("button", res.Button),
		zap.Stringer("source", res.Source),
		zap.String("display", app.state.Display()),
	)
	if !wasError && app.state.HasError() {
		app.metrics.RecordCalcError()
		app.logger.Info("calculation error", zap.String("message", app.state.Display()))
	}
}

// dispatch presses id, turning a panic into an error. The state is cleared
// after a panic so the calculator stays usable.
func (app *Application) dispatch(id button.ID) (err error) {
	defer func() {
		if r := recover(); r != nil {
			app.state.Clear()
			err = NewRecoveredPanicError(r, string(debug.Stack()))
		}
	}()
	return button.Dispatch(id, app.state)
}

// render draws the current state.
func (app *Application) render() {
	app.renderer.Render(renderer.Frame{
		Display:  app.state.Display(),
		IsError:  app.state.HasError(),
		Selected: app.selected,
	})
	app.metrics.RecordFrame()
}

// Shutdown stops the event loop. It is safe to call more than once and from
// any goroutine.
func (app *Application) Shutdown() {
	app.stopOnce.Do(func() {
		close(app.done)

		app.mu.Lock()
		b := app.backend
		app.mu.Unlock()

		// Wake PollEvent so the loop sees done.
		if b != nil && app.running.Load() {
			b.PostEvent(backend.Event{Type: backend.EventInterrupt})
		}
	})
}

// IsRunning returns true if the application is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// SessionID returns the id attached to every log entry of this session.
func (app *Application) SessionID() string {
	return app.sessionID
}

// Config returns the active configuration. It must not be modified.
func (app *Application) Config() *config.Config {
	return app.config
}

// State returns a copy of the calculator state.
func (app *Application) State() calc.Snapshot {
	return app.state.Snapshot()
}

// Metrics returns the session counters.
func (app *Application) Metrics() MetricsSnapshot {
	return app.metrics.Snapshot()
}
