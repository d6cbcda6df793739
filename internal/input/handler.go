package input

import (
	"github.com/dshills/calcterm/internal/button"
	"github.com/dshills/calcterm/internal/renderer/backend"
)

// DefaultQuitKey ends the session when typed without modifiers.
const DefaultQuitKey = 'q'

// Config configures the input handler.
type Config struct {
	// QuitKey ends the session. Zero disables it; Ctrl+C always quits.
	QuitKey rune

	// Aliases maps typed characters to button labels.
	Aliases map[rune]rune

	// EnableMouse enables mouse presses.
	EnableMouse bool
}

// DefaultAliases returns the built-in key aliases.
func DefaultAliases() map[rune]rune {
	return map[rune]rune{
		'*': 'x',
		'X': 'x',
		'_': button.LabelInvert,
		'n': button.LabelInvert,
	}
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		QuitKey:     DefaultQuitKey,
		Aliases:     DefaultAliases(),
		EnableMouse: true,
	}
}

// Handler translates backend events. It remembers whether the left mouse
// button is held, so it must see every mouse event in order.
type Handler struct {
	config   Config
	leftDown bool
}

// NewHandler creates a handler. The alias table is copied.
func NewHandler(config Config) *Handler {
	h := &Handler{}
	h.SetConfig(config)
	return h
}

// SetConfig replaces the handler configuration. The alias table is copied.
// Mouse button state is kept, so a button held across the change does not
// press again.
func (h *Handler) SetConfig(config Config) {
	aliases := make(map[rune]rune, len(config.Aliases))
	for from, to := range config.Aliases {
		aliases[from] = to
	}
	config.Aliases = aliases
	h.config = config
}

// Config returns the handler configuration.
func (h *Handler) Config() Config {
	return h.config
}

// Translate converts ev into an action. hit may be nil when there is no
// layout yet, in which case mouse events are ignored.
func (h *Handler) Translate(ev backend.Event, hit HitTester) Result {
	switch ev.Type {
	case backend.EventKey:
		return h.translateKey(ev)
	case backend.EventMouse:
		return h.translateMouse(ev, hit)
	default:
		return Result{}
	}
}

func (h *Handler) translateKey(ev backend.Event) Result {
	switch ev.Key {
	case backend.KeyCtrlC:
		return Result{Action: ActionQuit, Source: SourceKeyboard}
	case backend.KeyCtrlL:
		return Result{Action: ActionRedraw, Source: SourceKeyboard}
	case backend.KeyEnter:
		return press(button.Calculate, SourceKeyboard)
	case backend.KeyBackspace, backend.KeyDelete:
		return press(button.Backspace, SourceKeyboard)
	case backend.KeyEscape:
		return press(button.Clear, SourceKeyboard)
	case backend.KeyRune:
		return h.translateRune(ev)
	default:
		return Result{}
	}
}

// translateRune maps a typed character. Shift is part of the character;
// Ctrl, Alt, and Meta combinations are not calculator input.
func (h *Handler) translateRune(ev backend.Event) Result {
	if ev.Mod.Has(backend.ModCtrl) || ev.Mod.Has(backend.ModAlt) || ev.Mod.Has(backend.ModMeta) {
		return Result{}
	}

	r := ev.Rune
	if h.config.QuitKey != 0 && r == h.config.QuitKey {
		return Result{Action: ActionQuit, Source: SourceKeyboard}
	}
	// Enter may arrive as a rune on some terminals.
	if r == '\n' || r == '\r' {
		return press(button.Calculate, SourceKeyboard)
	}
	if alias, ok := h.config.Aliases[r]; ok {
		r = alias
	}
	if id, ok := button.FromLabel(r); ok {
		return press(id, SourceKeyboard)
	}
	return Result{}
}

func (h *Handler) translateMouse(ev backend.Event, hit HitTester) Result {
	wasDown := h.leftDown
	h.leftDown = ev.MouseButton == backend.MouseLeft

	if !h.config.EnableMouse || hit == nil || ev.MouseButton != backend.MouseLeft || wasDown {
		return Result{}
	}
	if id, ok := hit.ButtonAt(ev.MouseX, ev.MouseY); ok {
		return press(id, SourceMouse)
	}
	return Result{}
}

func press(id button.ID, source Source) Result {
	return Result{Action: ActionPress, Button: id, Source: source}
}
