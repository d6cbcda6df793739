package input

import "github.com/dshills/calcterm/internal/button"

// Action is what the event loop should do with a translated event.
type Action uint8

const (
	// ActionNone means the event is ignored.
	ActionNone Action = iota
	// ActionPress means Result.Button was pressed.
	ActionPress
	// ActionQuit ends the session.
	ActionQuit
	// ActionRedraw forces a full redraw.
	ActionRedraw
)

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionPress:
		return "press"
	case ActionQuit:
		return "quit"
	case ActionRedraw:
		return "redraw"
	default:
		return "none"
	}
}

// Source indicates the origin of an action.
type Source uint8

const (
	// SourceNone indicates no input device was involved.
	SourceNone Source = iota
	// SourceKeyboard indicates the action originated from keyboard input.
	SourceKeyboard
	// SourceMouse indicates the action originated from mouse input.
	SourceMouse
)

// String returns a string representation of the action source.
func (s Source) String() string {
	switch s {
	case SourceKeyboard:
		return "keyboard"
	case SourceMouse:
		return "mouse"
	default:
		return "none"
	}
}

// Result is a translated event.
type Result struct {
	Action Action
	Button button.ID
	Source Source
}

// HitTester finds the button drawn at a screen cell.
type HitTester interface {
	ButtonAt(x, y int) (button.ID, bool)
}
