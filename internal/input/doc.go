// Package input translates terminal events into calculator button presses.
//
// Keyboard characters are looked up through the button labels, after an
// optional alias table is applied (so '*' can press 'x'). A few special keys
// have fixed meanings:
//
//   - Enter presses '='
//   - Backspace and Delete remove the last typed character
//   - Escape presses 'C'
//   - Ctrl+C and the configured quit key end the session
//   - Ctrl+L forces a full redraw
//
// Mouse presses are hit-tested against the current layout. Only the
// transition to a pressed left button counts, so dragging across the keypad
// does not repeat presses.
//
// # Usage
//
//	h := input.NewHandler(input.DefaultConfig())
//	result := h.Translate(ev, renderer)
//	if result.Action == input.ActionPress {
//	    button.Dispatch(result.Button, state)
//	}
package input
