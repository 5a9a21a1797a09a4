package tui

// Terminal abstracts terminal operations for rendering and input.
// Implementations handle ANSI terminals or mock terminals for testing.
type Terminal interface {
	// Size returns the terminal dimensions (width, height) in cells.
	Size() (width, height int)

	// Flush writes the given cell changes to the terminal.
	// Changes are expected to be in row-major order.
	Flush(changes []CellChange)

	// Clear clears the entire terminal screen.
	Clear()

	// HideCursor makes the cursor invisible.
	HideCursor()

	// ShowCursor makes the cursor visible.
	ShowCursor()

	// EnterRawMode puts the terminal into raw mode for key-by-key input.
	EnterRawMode() error

	// ExitRawMode restores the terminal to its previous mode.
	ExitRawMode() error

	// EnterAltScreen switches to the alternate screen buffer.
	EnterAltScreen()

	// ExitAltScreen switches back to the main screen buffer.
	ExitAltScreen()

	// Caps returns the terminal's capabilities.
	Caps() Capabilities
}

// Render flushes the cells that changed since the last frame and swaps the
// buffer.
func Render(term Terminal, buf *Buffer) {
	if changes := buf.Diff(); len(changes) > 0 {
		term.Flush(changes)
	}
	buf.Swap()
}

// RenderFull clears the terminal and redraws every cell. Use after startup
// and resize.
func RenderFull(term Terminal, buf *Buffer) {
	width, height := buf.Size()
	changes := make([]CellChange, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			changes = append(changes, CellChange{X: x, Y: y, Cell: buf.Cell(x, y)})
		}
	}

	term.Clear()
	if len(changes) > 0 {
		term.Flush(changes)
	}
	buf.Swap()
}
