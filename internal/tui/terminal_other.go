//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package tui

import (
	"errors"
	"time"
)

var errUnsupported = errors.New("terminal control is not supported on this platform")

type rawModeState struct{}

func enableRawMode(int) (*rawModeState, error) { return nil, errUnsupported }

func disableRawMode(int, *rawModeState) error { return nil }

func terminalSize(int) (int, int, error) { return 0, 0, errUnsupported }

func pollReadable(int, time.Duration) (bool, error) { return false, errUnsupported }
