package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/grindlemire/layout-showcase/internal/asset"
	"github.com/grindlemire/layout-showcase/internal/showcase"
	"github.com/grindlemire/layout-showcase/internal/tui"
)

func spawnShowcase(sc *StartupContext) {
	showcase.NewBuilder().Spawn(sc.World, sc.Font)
}

func newTestApp(t *testing.T, opts ...Option) *App {
	t.Helper()
	a, err := New(append([]Option{WithStartupSystem(spawnShowcase), WithPollInterval(5 * time.Millisecond)}, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestNew_Options(t *testing.T) {
	type tc struct {
		opts    []Option
		wantErr bool
	}

	tests := map[string]tc{
		"defaults":            {},
		"positive poll":       {opts: []Option{WithPollInterval(time.Second)}},
		"zero poll":           {opts: []Option{WithPollInterval(0)}, wantErr: true},
		"negative poll":       {opts: []Option{WithPollInterval(-time.Millisecond)}, wantErr: true},
		"terminal and reader": {opts: []Option{WithTerminal(tui.NewMockTerminal(1, 1), tui.NewMockReader())}},
		"terminal only":       {opts: []Option{WithTerminal(tui.NewMockTerminal(1, 1), nil)}, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := New(tt.opts...)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRun_QuitKeys(t *testing.T) {
	type tc struct {
		key tui.KeyEvent
	}

	tests := map[string]tc{
		"q":      {key: tui.KeyEvent{Key: tui.KeyRune, Rune: 'q'}},
		"escape": {key: tui.KeyEvent{Key: tui.KeyEscape}},
		"ctrl c": {key: tui.KeyEvent{Key: tui.KeyCtrlC}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			term := tui.NewMockTerminal(160, 80)
			reader := tui.NewMockReader(
				[]tui.KeyEvent{{Key: tui.KeyRune, Rune: 'x'}, {Key: tui.KeyEnter}},
				[]tui.KeyEvent{tt.key},
			)
			a := newTestApp(t, WithTerminal(term, reader))

			if err := a.Run(testContext(t)); err != nil {
				t.Fatalf("Run: %v", err)
			}
			if term.IsInRawMode() || term.IsInAltScreen() || term.IsCursorHidden() {
				t.Errorf("terminal not restored: raw=%v alt=%v hidden=%v",
					term.IsInRawMode(), term.IsInAltScreen(), term.IsCursorHidden())
			}
			if !strings.Contains(term.String(), "JustifyContent") {
				t.Errorf("showcase was never drawn:\n%s", term.String())
			}
		})
	}
}

func TestRun_ContextCancel(t *testing.T) {
	term := tui.NewMockTerminal(40, 10)
	a := newTestApp(t, WithTerminal(term, tui.NewMockReader()))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := a.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if term.IsInRawMode() {
		t.Error("raw mode left on")
	}
}

func TestRun_Resize(t *testing.T) {
	term := tui.NewMockTerminal(40, 10)
	a := newTestApp(t, WithTerminal(term, tui.NewMockReader()))

	ctx, cancel := context.WithCancel(testContext(t))
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	waitFor(t, func() bool { return term.ClearCount() >= 1 })
	term.Resize(160, 80)
	waitFor(t, func() bool { return strings.Contains(term.String(), "SpaceBetween") })

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run: %v", err)
	}
	if w, h := a.buffer.Size(); w != 160 || h != 80 {
		t.Errorf("buffer size = %dx%d, want 160x80", w, h)
	}
}

type failingReader struct{}

func (failingReader) PollKeys(time.Duration) ([]tui.KeyEvent, error) {
	return nil, errors.New("stdin closed")
}

func TestRun_ReaderError(t *testing.T) {
	term := tui.NewMockTerminal(20, 5)
	a := newTestApp(t, WithTerminal(term, failingReader{}))

	err := a.Run(testContext(t))
	if err == nil || !strings.Contains(err.Error(), "stdin closed") {
		t.Fatalf("Run error = %v, want reader error", err)
	}
	if term.IsInAltScreen() {
		t.Error("alt screen left on after error")
	}
}

func TestStartup_RunsOnce(t *testing.T) {
	var calls atomic.Int32
	var order []string
	a := newTestApp(t,
		WithStartupSystem(func(*StartupContext) { calls.Add(1); order = append(order, "first") }),
		WithStartupSystem(func(*StartupContext) { order = append(order, "second") }),
	)

	for range 2 {
		if _, err := a.Snapshot(testContext(t), 80, 24); err != nil {
			t.Fatalf("Snapshot: %v", err)
		}
	}
	if calls.Load() != 1 {
		t.Errorf("startup system ran %d times, want 1", calls.Load())
	}
	if strings.Join(order, ",") != "first,second" {
		t.Errorf("system order = %v", order)
	}
	if got := len(a.World().Cameras()); got != 1 {
		t.Errorf("cameras = %d, want 1", got)
	}
}

func TestSnapshot_NaturalSize(t *testing.T) {
	a := newTestApp(t)

	buf, err := a.Snapshot(testContext(t), 0, 0)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	theme := showcase.DefaultTheme()
	cols := len(showcase.Alignments())
	wantWidth := 2*theme.Padding + len("SpaceBetween") + 2 + cols*(theme.ColumnWidth+theme.Gap)
	if buf.Width() != wantWidth {
		t.Errorf("width = %d, want %d", buf.Width(), wantWidth)
	}
	out := buf.String()
	for _, want := range []string{"AlignItems", "JustifyContent", "Stretch", "SpaceBetween"} {
		if !strings.Contains(out, want) {
			t.Errorf("snapshot missing %q", want)
		}
	}
}

func TestSnapshot_Fonts(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Go-Regular.ttf"), goregular.TTF, 0644); err != nil {
		t.Fatal(err)
	}

	type tc struct {
		font    string
		strict  bool
		wantErr error
	}

	tests := map[string]tc{
		"loaded":             {font: "Go-Regular.ttf", strict: true},
		"missing lenient":    {font: "missing.ttf"},
		"missing strict":     {font: "missing.ttf", strict: true, wantErr: asset.ErrNotFound},
		"no font configured": {strict: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a := newTestApp(t, WithAssetDir(dir), WithFont(tt.font), WithStrictAssets(tt.strict))

			buf, err := a.Snapshot(testContext(t), 160, 80)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Snapshot error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Snapshot: %v", err)
			}
			if !strings.Contains(buf.String(), "AlignItems") {
				t.Errorf("labels not drawn")
			}
		})
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met before deadline")
		}
		time.Sleep(5 * time.Millisecond)
	}
}
