// Package tui provides the terminal side of the showcase: colors, styled
// cells, a double-buffered cell grid, ANSI escape generation, and a
// terminal implementation with raw mode and alternate screen support.
//
// Geometry types are shared with the layout engine through aliases, so
// computed layout rects can be drawn directly into a [Buffer].
package tui

import "github.com/grindlemire/layout-showcase/internal/layout"

// Rect is the layout engine's rectangle.
type Rect = layout.Rect

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}
