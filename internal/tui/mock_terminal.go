package tui

import (
	"strings"
	"sync"
	"time"
)

// MockTerminal implements Terminal in memory for tests.
type MockTerminal struct {
	mu            sync.Mutex
	width, height int
	cells         []Cell
	caps          Capabilities
	rawMode       bool
	altScreen     bool
	cursorHidden  bool
	clears        int
}

// NewMockTerminal creates a mock terminal with the given dimensions.
func NewMockTerminal(width, height int) *MockTerminal {
	m := &MockTerminal{caps: Capabilities{Colors: ColorTrue, TrueColor: true, AltScreen: true}}
	m.Resize(width, height)
	return m
}

// Resize changes the reported size and blanks the screen.
func (m *MockTerminal) Resize(width, height int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.width, m.height = width, height
	m.cells = make([]Cell, width*height)
	for i := range m.cells {
		m.cells[i] = blankCell(NewStyle())
	}
}

func (m *MockTerminal) Size() (width, height int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.width, m.height
}

func (m *MockTerminal) Flush(changes []CellChange) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ch := range changes {
		if ch.X >= 0 && ch.X < m.width && ch.Y >= 0 && ch.Y < m.height {
			m.cells[ch.Y*m.width+ch.X] = ch.Cell
		}
	}
}

func (m *MockTerminal) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clears++
	for i := range m.cells {
		m.cells[i] = blankCell(NewStyle())
	}
}

func (m *MockTerminal) HideCursor() { m.set(&m.cursorHidden, true) }
func (m *MockTerminal) ShowCursor() { m.set(&m.cursorHidden, false) }

func (m *MockTerminal) EnterRawMode() error {
	m.set(&m.rawMode, true)
	return nil
}

func (m *MockTerminal) ExitRawMode() error {
	m.set(&m.rawMode, false)
	return nil
}

func (m *MockTerminal) EnterAltScreen() { m.set(&m.altScreen, true) }
func (m *MockTerminal) ExitAltScreen()  { m.set(&m.altScreen, false) }

func (m *MockTerminal) Caps() Capabilities { return m.caps }

func (m *MockTerminal) set(flag *bool, v bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	*flag = v
}

// CellAt returns the cell last flushed at (x, y).
func (m *MockTerminal) CellAt(x, y int) Cell {
	m.mu.Lock()
	defer m.mu.Unlock()
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return Cell{}
	}
	return m.cells[y*m.width+x]
}

// String returns the screen as plain text with trailing spaces trimmed.
func (m *MockTerminal) String() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var sb strings.Builder
	for y := 0; y < m.height; y++ {
		var line strings.Builder
		for x := 0; x < m.width; x++ {
			c := m.cells[y*m.width+x]
			if c.IsContinuation() {
				continue
			}
			if c.Rune == 0 {
				line.WriteRune(' ')
			} else {
				line.WriteRune(c.Rune)
			}
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// IsInRawMode reports whether raw mode is active.
func (m *MockTerminal) IsInRawMode() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rawMode
}

// IsInAltScreen reports whether the alternate screen is active.
func (m *MockTerminal) IsInAltScreen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.altScreen
}

// IsCursorHidden reports whether the cursor is hidden.
func (m *MockTerminal) IsCursorHidden() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cursorHidden
}

// ClearCount returns how many times Clear was called.
func (m *MockTerminal) ClearCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clears
}

// MockReader replays scripted key presses. Once the script is exhausted it
// reports no input until the timeout elapses.
type MockReader struct {
	mu   sync.Mutex
	keys [][]KeyEvent
}

// NewMockReader returns a reader that yields each batch on successive polls.
func NewMockReader(batches ...[]KeyEvent) *MockReader {
	return &MockReader{keys: batches}
}

// PollKeys implements EventReader.
func (r *MockReader) PollKeys(timeout time.Duration) ([]KeyEvent, error) {
	r.mu.Lock()
	if len(r.keys) > 0 {
		batch := r.keys[0]
		r.keys = r.keys[1:]
		r.mu.Unlock()
		return batch, nil
	}
	r.mu.Unlock()
	if timeout > 0 {
		time.Sleep(timeout)
	}
	return nil, nil
}
