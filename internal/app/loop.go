package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/grindlemire/layout-showcase/internal/tui"
)

// Run builds the scene, takes over the terminal and redraws on resize until
// q, Esc or Ctrl+C is pressed or ctx is done. The terminal is restored
// before Run returns.
func (a *App) Run(ctx context.Context) (err error) {
	if err := a.startup(ctx); err != nil {
		return err
	}
	a.ensureTerminal()
	term := a.terminal

	if err := term.EnterRawMode(); err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer func() {
		if rerr := term.ExitRawMode(); rerr != nil && err == nil {
			err = fmt.Errorf("restoring terminal: %w", rerr)
		}
	}()
	term.EnterAltScreen()
	defer term.ExitAltScreen()
	term.HideCursor()
	defer term.ShowCursor()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	resizeCh := make(chan os.Signal, 1)
	notifyResize(resizeCh)
	defer signal.Stop(resizeCh)

	keys := make(chan tui.KeyEvent, 16)
	readErr := make(chan error, 1)
	go a.readKeys(ctx, keys, readErr)

	width, height := term.Size()
	a.draw(width, height)
	tui.RenderFull(term, a.buffer)

	ticker := time.NewTicker(a.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-resizeCh:
			width, height = a.redrawIfResized(width, height, true)
		case <-ticker.C:
			width, height = a.redrawIfResized(width, height, false)
		case key := <-keys:
			if isQuit(key) {
				a.log.WithField("key", key).Debug("quit")
				return nil
			}
		case err := <-readErr:
			return fmt.Errorf("reading input: %w", err)
		}
	}
}

// redrawIfResized relays out and fully redraws when the terminal size
// differs from width x height, or always when force is set.
func (a *App) redrawIfResized(width, height int, force bool) (int, int) {
	w, h := a.terminal.Size()
	if !force && w == width && h == height {
		return width, height
	}
	a.log.WithField("width", w).WithField("height", h).Debug("resize")
	a.draw(w, h)
	tui.RenderFull(a.terminal, a.buffer)
	return w, h
}

// readKeys forwards key presses until ctx is done or the reader fails.
func (a *App) readKeys(ctx context.Context, keys chan<- tui.KeyEvent, errCh chan<- error) {
	for ctx.Err() == nil {
		events, err := a.reader.PollKeys(a.pollInterval)
		if err != nil {
			errCh <- err
			return
		}
		for _, ev := range events {
			select {
			case keys <- ev:
			case <-ctx.Done():
				return
			}
		}
	}
}

func isQuit(k tui.KeyEvent) bool {
	switch k.Key {
	case tui.KeyEscape, tui.KeyCtrlC:
		return true
	case tui.KeyRune:
		return k.Rune == 'q' || k.Rune == 'Q'
	default:
		return false
	}
}
