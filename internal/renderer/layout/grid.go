// Package layout computes the calculator screen geometry: the display box on
// top and the button grid below it. The same Layout is used to draw and to
// hit-test mouse clicks, so a click always lands on the button it was drawn
// under.
package layout

import (
	"github.com/dshills/calcterm/internal/button"
	"github.com/dshills/calcterm/internal/renderer/core"
)

// DisplayHeight is the height of the display box, borders included.
const DisplayHeight = 3

// Minimum sizes for a readable keypad.
const (
	MinButtonWidth  = 3
	MinButtonHeight = 3
)

// Placed is a button with its screen rectangle.
type Placed struct {
	ID   button.ID
	Rect core.ScreenRect
	Row  int
	Col  int
}

// Layout is the computed geometry for one terminal size.
type Layout struct {
	Width, Height int
	Display       core.ScreenRect
	Grid          core.ScreenRect
	Buttons       []Placed
}

// Compute lays out rows of buttons under the display box.
// Rows share the grid height equally; buttons in a row share its width
// equally. Leftover cells go to the later rows and columns.
func Compute(width, height int, rows [][]button.ID) Layout {
	width = max(width, 0)
	height = max(height, 0)

	l := Layout{
		Width:   width,
		Height:  height,
		Display: core.RectFromSize(0, 0, min(DisplayHeight, height), width),
	}
	l.Grid = core.ScreenRect{Top: l.Display.Bottom, Left: 0, Bottom: height, Right: width}

	if len(rows) == 0 || l.Grid.IsEmpty() {
		return l
	}

	gridHeight := l.Grid.Height()
	for r, row := range rows {
		top := l.Grid.Top + split(gridHeight, len(rows), r)
		bottom := l.Grid.Top + split(gridHeight, len(rows), r+1)
		for c, id := range row {
			left := split(width, len(row), c)
			right := split(width, len(row), c+1)
			l.Buttons = append(l.Buttons, Placed{
				ID:   id,
				Rect: core.ScreenRect{Top: top, Left: left, Bottom: bottom, Right: right},
				Row:  r,
				Col:  c,
			})
		}
	}
	return l
}

// split returns the offset of boundary i when total is divided into n parts.
func split(total, n, i int) int {
	return total * i / n
}

// ButtonAt returns the button drawn at pos.
func (l Layout) ButtonAt(pos core.ScreenPos) (button.ID, bool) {
	for _, p := range l.Buttons {
		if p.Rect.Contains(pos) {
			return p.ID, true
		}
	}
	return button.ID{}, false
}

// Find returns the placement of id.
func (l Layout) Find(id button.ID) (Placed, bool) {
	for _, p := range l.Buttons {
		if p.ID == id {
			return p, true
		}
	}
	return Placed{}, false
}

// TooSmall reports whether buttons are too small to draw with borders.
func (l Layout) TooSmall() bool {
	if len(l.Buttons) == 0 {
		return true
	}
	for _, p := range l.Buttons {
		if p.Rect.Width() < MinButtonWidth || p.Rect.Height() < MinButtonHeight {
			return true
		}
	}
	return false
}
