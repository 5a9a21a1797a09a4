package tui

import "strings"

// Buffer is a double-buffered 2D grid of cells.
// Writes go to the back buffer; Diff reports what changed since the last
// Swap, which promotes the back buffer to the displayed state.
type Buffer struct {
	front  []Cell // Currently displayed state
	back   []Cell // State being built
	width  int
	height int
}

// CellChange represents a single cell that differs between front and back buffers.
type CellChange struct {
	X, Y int
	Cell Cell
}

// NewBuffer creates a new double-buffered grid of the specified dimensions.
// Both buffers start as blank default-styled cells.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Width returns the buffer width in columns.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in rows.
func (b *Buffer) Height() int {
	return b.height
}

// Size returns the buffer dimensions (width, height).
func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

// Rect returns the buffer bounds as a Rect starting at (0, 0).
func (b *Buffer) Rect() Rect {
	return NewRect(0, 0, b.width, b.height)
}

// idx converts (x, y) coordinates to a flat index.
// Returns -1 if out of bounds.
func (b *Buffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Cell returns the cell at position (x, y) from the back buffer.
// Returns an empty Cell if the position is out of bounds.
func (b *Buffer) Cell(x, y int) Cell {
	idx := b.idx(x, y)
	if idx < 0 {
		return Cell{}
	}
	return b.back[idx]
}

// SetCell sets the cell at position (x, y) in the back buffer.
// Does nothing if the position is out of bounds.
func (b *Buffer) SetCell(x, y int, c Cell) {
	if idx := b.idx(x, y); idx >= 0 {
		b.back[idx] = c
	}
}

// Fill paints every cell of rect (clipped to the buffer) as a blank with
// the given style.
func (b *Buffer) Fill(rect Rect, style Style) {
	rect = rect.Intersect(b.Rect())
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			b.back[y*b.width+x] = blankCell(style)
		}
	}
}

// Clear resets the back buffer to blank cells with the given style.
func (b *Buffer) Clear(style Style) {
	for i := range b.back {
		b.back[i] = blankCell(style)
	}
}

// SetStringClipped writes s starting at (x, y), dropping any rune that
// would fall outside clip or the buffer. Wide runes that would be cut in
// half are dropped too. Returns the display width consumed.
func (b *Buffer) SetStringClipped(x, y int, s string, style Style, clip Rect) int {
	clip = clip.Intersect(b.Rect())
	if y < clip.Y || y >= clip.Bottom() {
		return 0
	}

	cur := x
	for _, r := range s {
		w := RuneWidth(r)
		if cur >= clip.Right() {
			break
		}
		if cur >= clip.X && cur+w <= clip.Right() {
			b.back[y*b.width+cur] = Cell{Rune: r, Style: style, Width: uint8(w)}
			if w == 2 {
				b.back[y*b.width+cur+1] = Cell{Style: style}
			}
		}
		cur += w
	}
	return cur - x
}

// SetString writes s starting at (x, y), stopping at the buffer edge.
func (b *Buffer) SetString(x, y int, s string, style Style) int {
	return b.SetStringClipped(x, y, s, style, b.Rect())
}

// Diff returns the cells that differ between the back and front buffers,
// in row-major order.
func (b *Buffer) Diff() []CellChange {
	changes := make([]CellChange, 0, b.width)
	for i := range b.back {
		if !b.back[i].Equal(b.front[i]) {
			changes = append(changes, CellChange{X: i % b.width, Y: i / b.width, Cell: b.back[i]})
		}
	}
	return changes
}

// Swap marks the back buffer as displayed. The back buffer keeps its
// content so the next frame can be drawn incrementally.
func (b *Buffer) Swap() {
	copy(b.front, b.back)
}

// Resize changes the buffer dimensions, discarding all content.
func (b *Buffer) Resize(width, height int) {
	width = max(0, width)
	height = max(0, height)

	size := width * height
	b.front = make([]Cell, size)
	b.back = make([]Cell, size)
	for i := range b.back {
		b.front[i] = blankCell(NewStyle())
		b.back[i] = blankCell(NewStyle())
	}
	b.width = width
	b.height = height
}

// String returns the back buffer as plain text, one line per row, with
// trailing spaces trimmed.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		var line strings.Builder
		for x := 0; x < b.width; x++ {
			c := b.back[y*b.width+x]
			if c.IsContinuation() {
				continue
			}
			if c.Rune == 0 {
				line.WriteRune(' ')
				continue
			}
			line.WriteRune(c.Rune)
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ANSI returns the back buffer as text with SGR styling for the given
// capabilities, suitable for printing to a normal (non-alternate) screen.
func (b *Buffer) ANSI(caps Capabilities) string {
	esc := newEscBuilder(b.width * b.height * 4)
	last := NewStyle()
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.back[y*b.width+x]
			if c.IsContinuation() {
				continue
			}
			if !c.Style.Equal(last) {
				esc.SetStyle(c.Style, caps)
				last = c.Style
			}
			if c.Rune == 0 {
				esc.WriteRune(' ')
			} else {
				esc.WriteRune(c.Rune)
			}
		}
		esc.ResetStyle()
		last = NewStyle()
		esc.WriteString("\n")
	}
	return string(esc.Bytes())
}
