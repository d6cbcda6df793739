package renderer

import (
	"strconv"

	"github.com/dshills/calcterm/internal/button"
	"github.com/dshills/calcterm/internal/renderer/backend"
	"github.com/dshills/calcterm/internal/renderer/core"
	"github.com/dshills/calcterm/internal/renderer/layout"
)

// tooSmallMessage is shown when the keypad cannot be drawn.
const tooSmallMessage = "terminal too small"

// Box drawing runes.
const (
	boxTopLeft     = '┌'
	boxTopRight    = '┐'
	boxBottomLeft  = '└'
	boxBottomRight = '┘'
	boxHorizontal  = '─'
	boxVertical    = '│'
	ellipsis       = '…'
)

// Options configures the renderer.
type Options struct {
	Title string
	Theme Theme
	Rows  [][]button.ID
}

// DefaultOptions returns the standard title, theme, and keypad.
func DefaultOptions() Options {
	return Options{
		Title: " Calcterm ",
		Theme: DefaultTheme(),
		Rows:  button.Grid(),
	}
}

// Frame is everything needed to draw one screen.
type Frame struct {
	Display  string
	IsError  bool
	Selected button.ID
}

// Renderer draws frames onto a backend.
// It is not safe for concurrent use; the event loop owns it.
type Renderer struct {
	opts    Options
	backend backend.Backend
	layout  layout.Layout
	frames  uint64
}

// New creates a renderer sized to the backend.
func New(b backend.Backend, opts Options) *Renderer {
	if len(opts.Rows) == 0 {
		opts.Rows = button.Grid()
	}
	r := &Renderer{opts: opts, backend: b}
	width, height := b.Size()
	r.Resize(width, height)
	return r
}

// Resize recomputes the layout for a new terminal size.
func (r *Renderer) Resize(width, height int) {
	r.layout = layout.Compute(width, height, r.opts.Rows)
}

// SetTheme replaces the theme used by later renders.
func (r *Renderer) SetTheme(theme Theme) {
	r.opts.Theme = theme
}

// Layout returns the current geometry.
func (r *Renderer) Layout() layout.Layout {
	return r.layout
}

// ButtonAt returns the button under screen cell (x, y).
func (r *Renderer) ButtonAt(x, y int) (button.ID, bool) {
	return r.layout.ButtonAt(core.ScreenPos{Row: y, Col: x})
}

// FrameCount returns the number of frames rendered.
func (r *Renderer) FrameCount() uint64 {
	return r.frames
}

// Render draws a full frame and flushes it.
func (r *Renderer) Render(f Frame) {
	r.backend.Clear()
	r.backend.HideCursor()

	if r.layout.TooSmall() {
		r.drawText(core.ScreenPos{}, r.layout.Width, tooSmallMessage, r.opts.Theme.Error)
	} else {
		r.renderDisplay(f)
		r.renderButtons(f.Selected)
	}

	r.backend.Show()
	r.frames++
}

// renderDisplay draws the bordered display line, right aligned.
func (r *Renderer) renderDisplay(f Frame) {
	theme := r.opts.Theme
	rect := r.layout.Display
	r.drawBox(rect, theme.Border)
	r.drawText(core.ScreenPos{Row: rect.Top, Col: rect.Left + 1}, rect.Width()-2, r.opts.Title, theme.Title)

	style := theme.Display
	if f.IsError {
		style = theme.Error
	}

	inner := rect.Inset(1, 2, 1, 2)
	text := fit(f.Display, inner.Width())
	if !f.IsError {
		text = fitNumber(f.Display, inner.Width())
	}
	col := inner.Right - len([]rune(text))
	r.drawText(core.ScreenPos{Row: inner.Top, Col: col}, inner.Width(), text, style)
}

// renderButtons draws each button with its label centered.
func (r *Renderer) renderButtons(selected button.ID) {
	theme := r.opts.Theme
	for _, p := range r.layout.Buttons {
		style := theme.Button
		if selected.Valid() && p.ID == selected {
			style = theme.Selected
		}

		r.backend.Fill(p.Rect, core.NewStyledCell(' ', style))
		r.drawBox(p.Rect, theme.Border.WithBackground(style.Background))

		center := p.Rect.Center()
		r.backend.SetCell(center.Col, center.Row, core.NewStyledCell(p.ID.Label(), style))
	}
}

// drawBox draws a single-line border around rect.
func (r *Renderer) drawBox(rect core.ScreenRect, style core.Style) {
	if rect.Width() < 2 || rect.Height() < 2 {
		return
	}
	right, bottom := rect.Right-1, rect.Bottom-1

	for x := rect.Left + 1; x < right; x++ {
		r.backend.SetCell(x, rect.Top, core.NewStyledCell(boxHorizontal, style))
		r.backend.SetCell(x, bottom, core.NewStyledCell(boxHorizontal, style))
	}
	for y := rect.Top + 1; y < bottom; y++ {
		r.backend.SetCell(rect.Left, y, core.NewStyledCell(boxVertical, style))
		r.backend.SetCell(right, y, core.NewStyledCell(boxVertical, style))
	}
	r.backend.SetCell(rect.Left, rect.Top, core.NewStyledCell(boxTopLeft, style))
	r.backend.SetCell(right, rect.Top, core.NewStyledCell(boxTopRight, style))
	r.backend.SetCell(rect.Left, bottom, core.NewStyledCell(boxBottomLeft, style))
	r.backend.SetCell(right, bottom, core.NewStyledCell(boxBottomRight, style))
}

// drawText writes at most width runes of s starting at pos.
func (r *Renderer) drawText(pos core.ScreenPos, width int, s string, style core.Style) {
	i := 0
	for _, ch := range s {
		if i >= width {
			return
		}
		r.backend.SetCell(pos.Col+i, pos.Row, core.NewStyledCell(ch, style))
		i++
	}
}

// fitNumber shortens a numeric display to width runes by dropping
// significant digits, switching to exponent notation as needed. Text that
// is not a number, or that cannot fit even as one digit, falls back to fit.
func fitNumber(s string, width int) string {
	if width <= 0 || len([]rune(s)) <= width {
		return fit(s, width)
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fit(s, width)
	}
	for prec := 15; prec > 0; prec-- {
		if short := strconv.FormatFloat(value, 'g', prec, 64); len(short) <= width {
			return short
		}
	}
	return fit(s, width)
}

// fit shortens s to width runes, marking the cut with an ellipsis.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + string(ellipsis)
}
