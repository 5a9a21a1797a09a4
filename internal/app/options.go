package app

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/grindlemire/layout-showcase/internal/tui"
)

// Option is a functional option for configuring an App.
type Option func(*App) error

// WithTerminal draws to term and reads keys from reader instead of the
// process's terminal.
func WithTerminal(term tui.Terminal, reader tui.EventReader) Option {
	return func(a *App) error {
		if term == nil || reader == nil {
			return errors.New("terminal and reader must both be set")
		}
		a.terminal = term
		a.reader = reader
		return nil
	}
}

// WithLogger replaces the debug logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(a *App) error {
		a.log = log
		return nil
	}
}

// WithStartupSystem registers a system to run once at startup. Systems run
// in registration order.
func WithStartupSystem(system StartupSystem) Option {
	return func(a *App) error {
		a.systems = append(a.systems, system)
		return nil
	}
}

// WithFont sets the font loaded at startup and handed to startup systems.
func WithFont(path string) Option {
	return func(a *App) error {
		a.fontPath = path
		return nil
	}
}

// WithAssetDir resolves relative asset paths against dir.
func WithAssetDir(dir string) Option {
	return func(a *App) error {
		a.assetDir = dir
		return nil
	}
}

// WithStrictAssets makes a failed asset load fatal. By default the failure
// is logged and text is drawn with the terminal's font.
func WithStrictAssets(strict bool) Option {
	return func(a *App) error {
		a.strictAssets = strict
		return nil
	}
}

// WithPollInterval sets how long the input poller waits for keys, which
// also bounds how quickly a size change without SIGWINCH is noticed.
// Default is 50ms.
func WithPollInterval(d time.Duration) Option {
	return func(a *App) error {
		if d <= 0 {
			return errors.New("poll interval must be positive")
		}
		a.pollInterval = d
		return nil
	}
}
