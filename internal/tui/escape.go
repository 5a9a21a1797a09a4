package tui

import (
	"strconv"
	"unicode/utf8"
)

// escBuilder builds ANSI escape sequences into a reusable buffer.
type escBuilder struct {
	buf []byte
}

func newEscBuilder(capacity int) *escBuilder {
	return &escBuilder{buf: make([]byte, 0, capacity)}
}

// Reset clears the buffer for reuse.
func (e *escBuilder) Reset() {
	e.buf = e.buf[:0]
}

// Bytes returns the built escape sequence.
func (e *escBuilder) Bytes() []byte {
	return e.buf
}

func (e *escBuilder) csi(params string) {
	e.buf = append(e.buf, '\x1b', '[')
	e.buf = append(e.buf, params...)
}

func (e *escBuilder) writeInt(n int) {
	e.buf = strconv.AppendInt(e.buf, int64(n), 10)
}

// MoveTo moves the cursor to the specified position.
// x and y are 0-indexed; ANSI sequences use 1-indexed positions.
func (e *escBuilder) MoveTo(x, y int) {
	e.csi("")
	e.writeInt(y + 1)
	e.buf = append(e.buf, ';')
	e.writeInt(x + 1)
	e.buf = append(e.buf, 'H')
}

// ClearScreen clears the entire screen.
func (e *escBuilder) ClearScreen() { e.csi("2J") }

// HideCursor makes the cursor invisible.
func (e *escBuilder) HideCursor() { e.csi("?25l") }

// ShowCursor makes the cursor visible.
func (e *escBuilder) ShowCursor() { e.csi("?25h") }

// EnterAltScreen switches to the alternate screen buffer.
func (e *escBuilder) EnterAltScreen() { e.csi("?1049h") }

// ExitAltScreen switches back to the main screen buffer.
func (e *escBuilder) ExitAltScreen() { e.csi("?1049l") }

// BeginSyncUpdate starts a synchronized update block so the frame is shown
// atomically. Terminals that don't support it ignore the sequence.
func (e *escBuilder) BeginSyncUpdate() { e.csi("?2026h") }

// EndSyncUpdate ends a synchronized update block.
func (e *escBuilder) EndSyncUpdate() { e.csi("?2026l") }

// ResetStyle resets all text attributes to default.
func (e *escBuilder) ResetStyle() { e.csi("0m") }

// SetStyle emits a full SGR sequence for s, starting from a reset.
func (e *escBuilder) SetStyle(s Style, caps Capabilities) {
	e.csi("0")

	if s.HasAttr(AttrBold) {
		e.buf = append(e.buf, ";1"...)
	}
	if s.HasAttr(AttrDim) {
		e.buf = append(e.buf, ";2"...)
	}
	if s.HasAttr(AttrItalic) {
		e.buf = append(e.buf, ";3"...)
	}
	if s.HasAttr(AttrUnderline) {
		e.buf = append(e.buf, ";4"...)
	}

	e.appendColor(s.Fg, true, caps)
	e.appendColor(s.Bg, false, caps)

	e.buf = append(e.buf, 'm')
}

// appendColor appends the SGR parameters for a color, degrading RGB to the
// 256 palette or the 16 basic colors as the terminal requires.
func (e *escBuilder) appendColor(c Color, fg bool, caps Capabilities) {
	if c.IsDefault() || caps.Colors == ColorNone {
		return
	}

	base := 48
	if fg {
		base = 38
	}

	if c.Type() == ColorRGB {
		if caps.TrueColor && caps.Colors >= ColorTrue {
			r, g, b := c.RGB()
			e.buf = append(e.buf, ';')
			e.writeInt(base)
			e.buf = append(e.buf, ";2;"...)
			e.writeInt(int(r))
			e.buf = append(e.buf, ';')
			e.writeInt(int(g))
			e.buf = append(e.buf, ';')
			e.writeInt(int(b))
			return
		}
		c = c.ToANSI()
	}
	if caps.Colors < Color256 {
		c = nearestBasic(c)
	}

	idx := int(c.ANSI())
	switch {
	case idx < 16:
		// Foreground 30-37 / 90-97, background 40-47 / 100-107
		code := 30 + idx
		if idx >= 8 {
			code = 90 + idx - 8
		}
		if !fg {
			code += 10
		}
		e.buf = append(e.buf, ';')
		e.writeInt(code)
	case caps.Colors >= Color256:
		e.buf = append(e.buf, ';')
		e.writeInt(base)
		e.buf = append(e.buf, ";5;"...)
		e.writeInt(idx)
	}
}

// nearestBasic maps a 256 palette entry onto the 16 basic colors.
func nearestBasic(c Color) Color {
	idx := int(c.ANSI())
	switch {
	case idx < 16:
		return c
	case idx >= 232:
		if idx < 244 {
			return ANSIColor(8)
		}
		return ANSIColor(7)
	}
	idx -= 16
	r, g, b := idx/36, (idx/6)%6, idx%6
	basic := 0
	if r >= 3 {
		basic |= 1
	}
	if g >= 3 {
		basic |= 2
	}
	if b >= 3 {
		basic |= 4
	}
	if max(r, g, b) == 5 {
		basic += 8
	}
	return ANSIColor(uint8(basic))
}

// WriteRune appends a UTF-8 encoded rune to the buffer.
func (e *escBuilder) WriteRune(r rune) {
	e.buf = utf8.AppendRune(e.buf, r)
}

// WriteString appends a string to the buffer.
func (e *escBuilder) WriteString(s string) {
	e.buf = append(e.buf, s...)
}
