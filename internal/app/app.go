// Package app is the application shell: it runs startup systems once to
// build the scene, then keeps the terminal showing it until the user quits.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/grindlemire/layout-showcase/internal/asset"
	"github.com/grindlemire/layout-showcase/internal/debug"
	"github.com/grindlemire/layout-showcase/internal/layout"
	"github.com/grindlemire/layout-showcase/internal/paint"
	"github.com/grindlemire/layout-showcase/internal/scene"
	"github.com/grindlemire/layout-showcase/internal/tui"
)

const defaultPollInterval = 50 * time.Millisecond

// StartupContext is what a startup system gets to work with.
type StartupContext struct {
	World  *scene.World
	Assets *asset.Server
	Font   asset.Handle // the configured font; zero if none was set
	Log    logrus.FieldLogger
}

// StartupSystem builds (part of) the scene. It runs once, before the first
// frame.
type StartupSystem func(*StartupContext)

// App owns the world, the assets and the terminal.
type App struct {
	terminal tui.Terminal
	reader   tui.EventReader
	log      logrus.FieldLogger

	assetDir     string
	fontPath     string
	strictAssets bool
	pollInterval time.Duration
	systems      []StartupSystem

	assets  *asset.Server
	world   *scene.World
	buffer  *tui.Buffer
	started bool
}

// New creates an App configured by opts.
func New(opts ...Option) (*App, error) {
	a := &App{
		log:          debug.Logger(),
		pollInterval: defaultPollInterval,
		world:        scene.NewWorld(),
		buffer:       tui.NewBuffer(0, 0),
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	a.assets = asset.NewServer(a.assetDir, a.log)
	return a, nil
}

// World returns the scene. It is empty until the first Run or Snapshot.
func (a *App) World() *scene.World {
	return a.world
}

// startup loads the font, runs every startup system and waits for the
// assets they requested. Later calls do nothing.
func (a *App) startup(ctx context.Context) error {
	if a.started {
		return nil
	}
	a.started = true

	var font asset.Handle
	if a.fontPath != "" {
		font = a.assets.Load(a.fontPath)
	}

	sc := &StartupContext{World: a.world, Assets: a.assets, Font: font, Log: a.log}
	for _, system := range a.systems {
		system(sc)
	}
	a.log.WithField("entities", a.world.Len()).Debug("startup complete")

	if err := a.assets.Wait(ctx); err != nil {
		if ctx.Err() != nil {
			return err
		}
		if a.strictAssets {
			return fmt.Errorf("loading assets: %w", err)
		}
		a.log.WithError(err).Warn("asset load failed, drawing with the terminal font")
	}
	return nil
}

// draw lays the world out for a width x height screen and paints it into
// the buffer.
func (a *App) draw(width, height int) {
	if w, h := a.buffer.Size(); w != width || h != height {
		a.buffer.Resize(width, height)
	}
	a.world.UpdateLayout(width, height)
	paint.Paint(a.world, a.assets, a.buffer)
}

// Snapshot builds the scene and paints one frame offscreen. A width or
// height of zero or less uses the scene's natural size on that axis.
func (a *App) Snapshot(ctx context.Context, width, height int) (*tui.Buffer, error) {
	if err := a.startup(ctx); err != nil {
		return nil, err
	}

	nw, nh := a.naturalSize()
	if width <= 0 {
		width = nw
	}
	if height <= 0 {
		height = nh
	}
	a.draw(width, height)
	return a.buffer, nil
}

// naturalSize is the smallest screen that fits every UI root.
func (a *App) naturalSize() (width, height int) {
	for _, root := range a.world.Roots() {
		node, ok := a.world.LayoutNode(root)
		if !ok {
			continue
		}
		w, h := layout.IntrinsicSize(node)
		width, height = max(width, w), max(height, h)
	}
	return width, height
}

// ensureTerminal falls back to the process's own terminal.
func (a *App) ensureTerminal() {
	if a.terminal == nil {
		a.terminal = tui.NewANSITerminal(os.Stdout, os.Stdin)
	}
	if a.reader == nil {
		a.reader = tui.NewStdinReader(os.Stdin)
	}
}
