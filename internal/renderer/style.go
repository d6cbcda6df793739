package renderer

import "github.com/dshills/calcterm/internal/renderer/core"

// Theme holds the styles used to draw the calculator.
type Theme struct {
	Border   core.Style
	Title    core.Style
	Display  core.Style
	Error    core.Style
	Button   core.Style
	Selected core.Style
}

// DefaultTheme returns the built-in theme: bold white text on the terminal
// background, with the last pressed button on dark gray.
func DefaultTheme() Theme {
	return NewTheme(core.ColorWhite, core.ColorDefault, core.ColorDefault, core.ColorRed, core.ColorDarkGray)
}

// NewTheme builds a theme from a palette. Text is drawn bold; selected is
// the background of the last pressed button.
func NewTheme(text, background, border, errColor, selected core.Color) Theme {
	base := core.DefaultStyle().WithBackground(background)
	bold := base.WithForeground(text).Bold()
	return Theme{
		Border:   base.WithForeground(border),
		Title:    base.WithForeground(border).Bold(),
		Display:  bold,
		Error:    base.WithForeground(errColor).Bold(),
		Button:   bold,
		Selected: bold.WithBackground(selected),
	}
}
