package tui

import "github.com/mattn/go-runewidth"

// Cell represents a single character cell in the terminal buffer.
// Wide characters occupy two cells; the second is a continuation with
// Width 0.
type Cell struct {
	Rune  rune
	Style Style
	Width uint8
}

// NewCell creates a new Cell with automatic width detection.
func NewCell(r rune, style Style) Cell {
	return Cell{Rune: r, Style: style, Width: uint8(RuneWidth(r))}
}

// blankCell is a space with the given style.
func blankCell(style Style) Cell {
	return Cell{Rune: ' ', Style: style, Width: 1}
}

// IsContinuation returns true if this cell is a continuation of a wide character.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// Equal returns true if both cells are identical.
func (c Cell) Equal(other Cell) bool {
	return c == other
}

// RuneWidth returns the display width of a rune in terminal cells.
// Zero-width and control runes still take one cell so the cursor stays in sync.
func RuneWidth(r rune) int {
	return max(1, runewidth.RuneWidth(r))
}

// StringWidth returns the display width of s in terminal cells.
func StringWidth(s string) int {
	width := 0
	for _, r := range s {
		width += RuneWidth(r)
	}
	return width
}
