package tui

import (
	"io"
	"os"
)

// ANSITerminal implements Terminal using ANSI escape sequences.
type ANSITerminal struct {
	out       io.Writer
	inFd      int
	outFd     int
	caps      Capabilities
	lastStyle Style
	esc       *escBuilder
	rawState  *rawModeState
}

// NewANSITerminal creates a terminal writing to out and taking raw-mode
// input from in, with capabilities detected from the environment.
func NewANSITerminal(out io.Writer, in io.Reader) *ANSITerminal {
	return NewANSITerminalWithCaps(out, in, DetectCapabilities())
}

// NewANSITerminalWithCaps creates a terminal with explicit capabilities.
func NewANSITerminalWithCaps(out io.Writer, in io.Reader, caps Capabilities) *ANSITerminal {
	t := &ANSITerminal{
		out:   out,
		inFd:  -1,
		outFd: -1,
		caps:  caps,
		esc:   newEscBuilder(4096),
	}
	if f, ok := out.(*os.File); ok {
		t.outFd = int(f.Fd())
	}
	if f, ok := in.(*os.File); ok {
		t.inFd = int(f.Fd())
	}
	return t
}

// Size returns the terminal dimensions.
// Returns a default of 80x24 if the size cannot be determined.
func (t *ANSITerminal) Size() (width, height int) {
	w, h, err := terminalSize(t.outFd)
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}

// Flush writes the given cell changes, moving the cursor only when the
// next change is not adjacent and emitting styles only when they change.
func (t *ANSITerminal) Flush(changes []CellChange) {
	if len(changes) == 0 {
		return
	}

	t.esc.Reset()
	t.esc.BeginSyncUpdate()
	lastX, lastY := -1, -1

	for _, ch := range changes {
		// The primary cell of a wide rune already covered its continuation.
		if ch.Cell.IsContinuation() {
			continue
		}
		if ch.Y != lastY || ch.X != lastX+1 {
			t.esc.MoveTo(ch.X, ch.Y)
		}
		if !ch.Cell.Style.Equal(t.lastStyle) {
			t.esc.SetStyle(ch.Cell.Style, t.caps)
			t.lastStyle = ch.Cell.Style
		}
		if ch.Cell.Rune != 0 {
			t.esc.WriteRune(ch.Cell.Rune)
		} else {
			t.esc.WriteRune(' ')
		}
		lastX = ch.X + max(1, int(ch.Cell.Width)) - 1
		lastY = ch.Y
	}

	t.esc.EndSyncUpdate()
	t.out.Write(t.esc.Bytes())
}

// Clear clears the entire terminal screen.
func (t *ANSITerminal) Clear() {
	t.esc.Reset()
	t.esc.ResetStyle()
	t.esc.MoveTo(0, 0)
	t.esc.ClearScreen()
	t.out.Write(t.esc.Bytes())
	t.lastStyle = NewStyle()
}

// HideCursor makes the cursor invisible.
func (t *ANSITerminal) HideCursor() {
	t.write((*escBuilder).HideCursor)
}

// ShowCursor makes the cursor visible.
func (t *ANSITerminal) ShowCursor() {
	t.write((*escBuilder).ShowCursor)
}

// EnterAltScreen switches to the alternate screen buffer.
func (t *ANSITerminal) EnterAltScreen() {
	t.write((*escBuilder).EnterAltScreen)
}

// ExitAltScreen switches back to the main screen buffer and resets styling.
func (t *ANSITerminal) ExitAltScreen() {
	t.write(func(e *escBuilder) {
		e.ResetStyle()
		e.ExitAltScreen()
	})
}

func (t *ANSITerminal) write(seq func(*escBuilder)) {
	t.esc.Reset()
	seq(t.esc)
	t.out.Write(t.esc.Bytes())
}

// EnterRawMode puts the input terminal into raw mode.
func (t *ANSITerminal) EnterRawMode() error {
	state, err := enableRawMode(t.inFd)
	if err != nil {
		return err
	}
	t.rawState = state
	return nil
}

// ExitRawMode restores the input terminal to its previous mode.
func (t *ANSITerminal) ExitRawMode() error {
	if t.rawState == nil {
		return nil
	}
	err := disableRawMode(t.inFd, t.rawState)
	t.rawState = nil
	return err
}

// Caps returns the terminal's capabilities.
func (t *ANSITerminal) Caps() Capabilities {
	return t.caps
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	_, _, err := terminalSize(int(f.Fd()))
	return err == nil
}
