package tui

import (
	"io"
	"os"
	"time"
)

// Key identifies a key press the showcase reacts to.
type Key uint8

const (
	KeyRune Key = iota // A printable character, see KeyEvent.Rune
	KeyEscape
	KeyCtrlC
	KeyEnter
)

// KeyEvent is a single decoded key press.
type KeyEvent struct {
	Key  Key
	Rune rune
}

// EventReader delivers key presses.
type EventReader interface {
	// PollKeys waits up to timeout for input and returns the keys decoded
	// from it. A negative timeout blocks.
	PollKeys(timeout time.Duration) ([]KeyEvent, error)
}

// StdinReader reads key presses from a terminal file descriptor.
type StdinReader struct {
	in  io.Reader
	fd  int
	buf [256]byte
}

// NewStdinReader returns a reader for f, typically os.Stdin.
func NewStdinReader(f *os.File) *StdinReader {
	return &StdinReader{in: f, fd: int(f.Fd())}
}

// PollKeys implements EventReader.
func (r *StdinReader) PollKeys(timeout time.Duration) ([]KeyEvent, error) {
	ready, err := pollReadable(r.fd, timeout)
	if err != nil || !ready {
		return nil, err
	}
	n, err := r.in.Read(r.buf[:])
	if err != nil {
		return nil, err
	}
	return ParseKeys(r.buf[:n]), nil
}

// ParseKeys decodes raw terminal input. A lone ESC byte is the Escape key;
// an ESC that starts a longer sequence (arrows, function keys) is skipped
// along with the rest of the read.
func ParseKeys(b []byte) []KeyEvent {
	var keys []KeyEvent
	for i := 0; i < len(b); i++ {
		switch c := b[i]; {
		case c == 0x1b:
			if i == len(b)-1 {
				keys = append(keys, KeyEvent{Key: KeyEscape})
			}
			return keys
		case c == 0x03:
			keys = append(keys, KeyEvent{Key: KeyCtrlC})
		case c == '\r' || c == '\n':
			keys = append(keys, KeyEvent{Key: KeyEnter})
		case c >= 0x20 && c < 0x7f:
			keys = append(keys, KeyEvent{Key: KeyRune, Rune: rune(c)})
		}
	}
	return keys
}
