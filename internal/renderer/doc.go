// Package renderer draws the calculator onto a backend.
//
// The screen is a bordered display line above a grid of bordered buttons:
//
//	┌ Calcterm ──────────────────┐
//	│                         42 │
//	└────────────────────────────┘
//	┌─────┐┌─────┐┌─────┐┌─────┐
//	│  C  ││  ±  ││  %  ││  /  │
//	└─────┘└─────┘└─────┘└─────┘
//	...
//
// Geometry comes from the layout package and is recomputed only on resize.
// The renderer reads nothing but a Frame, so it never touches calculator
// state directly.
//
// Usage:
//
//	r := renderer.New(backend, renderer.DefaultOptions())
//	r.Render(renderer.Frame{Display: state.Display()})
package renderer
