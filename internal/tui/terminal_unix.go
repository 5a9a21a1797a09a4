//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package tui

import (
	"errors"

	"golang.org/x/sys/unix"
)

// rawModeState stores the original terminal state for restoration.
type rawModeState struct {
	termios unix.Termios
}

// enableRawMode puts the terminal into raw mode and returns the previous state.
func enableRawMode(fd int) (*rawModeState, error) {
	if fd < 0 {
		return nil, errors.New("raw mode requires a terminal input")
	}

	termios, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, err
	}
	state := &rawModeState{termios: *termios}

	// No echo, byte-at-a-time input, no signal keys (Ctrl+C arrives as a byte)
	termios.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	// No flow control or CR translation
	termios.Iflag &^= unix.IXON | unix.ICRNL | unix.BRKINT | unix.INPCK | unix.ISTRIP
	termios.Oflag &^= unix.OPOST
	termios.Cflag |= unix.CS8
	termios.Cc[unix.VMIN] = 1
	termios.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, termios); err != nil {
		return nil, err
	}
	return state, nil
}

// disableRawMode restores the terminal to its previous state.
func disableRawMode(fd int, state *rawModeState) error {
	if state == nil {
		return nil
	}
	return unix.IoctlSetTermios(fd, ioctlWriteTermios, &state.termios)
}

// terminalSize returns the terminal dimensions.
func terminalSize(fd int) (width, height int, err error) {
	if fd < 0 {
		return 0, 0, errors.New("not a terminal")
	}
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}
