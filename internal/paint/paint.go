// Package paint rasterizes a laid-out scene into a cell buffer.
package paint

import (
	"github.com/grindlemire/layout-showcase/internal/asset"
	"github.com/grindlemire/layout-showcase/internal/layout"
	"github.com/grindlemire/layout-showcase/internal/scene"
	"github.com/grindlemire/layout-showcase/internal/tui"
)

// BoldFontSize is the smallest font size drawn bold.
const BoldFontSize = 14.0

// FontSource resolves font handles. *asset.Server implements it.
type FontSource interface {
	Font(h asset.Handle) (*asset.Font, asset.LoadState, error)
}

// Paint draws w into buf using the layout from the last UpdateLayout.
//
// Nothing is drawn unless the world has a camera. Text whose font is still
// loading is skipped; a font that failed to load, or a handle the source
// does not know, falls back to the terminal's own font.
func Paint(w *scene.World, fonts FontSource, buf *tui.Buffer) {
	buf.Clear(tui.NewStyle())

	cams := w.Cameras()
	if len(cams) == 0 {
		return
	}
	cam, _ := w.Camera(cams[0])
	buf.Clear(tui.NewStyle().Background(cam.ClearColor))

	p := &painter{world: w, fonts: fonts, buf: buf}
	for _, root := range w.Roots() {
		p.paint(root, buf.Rect(), cam.ClearColor)
	}
}

type painter struct {
	world *scene.World
	fonts FontSource
	buf   *tui.Buffer
}

// paint draws e and its subtree. clip is the visible area and bg the color
// already underneath e.
func (p *painter) paint(e scene.Entity, clip tui.Rect, bg tui.Color) {
	node, ok := p.world.Node(e)
	if !ok {
		for _, child := range p.world.Children(e) {
			p.paint(child, clip, bg)
		}
		return
	}
	if node.Style.Display == layout.DisplayNone {
		return
	}

	l := p.world.Computed(e)
	area := l.Rect.Intersect(clip)
	if area.IsEmpty() {
		return
	}

	if !node.Background.IsDefault() {
		bg = node.Background
		p.buf.Fill(area, tui.NewStyle().Background(bg))
	}

	inner := l.ContentRect.Intersect(clip)
	if text, ok := p.world.Text(e); ok && p.drawable(text.Style.Font) {
		p.buf.SetStringClipped(l.ContentRect.X, l.ContentRect.Y, text.Value, textStyle(text.Style, bg), inner)
	}

	for _, child := range p.world.Children(e) {
		p.paint(child, inner, bg)
	}
}

func (p *painter) drawable(h asset.Handle) bool {
	if p.fonts == nil || !h.IsValid() {
		return true
	}
	_, state, _ := p.fonts.Font(h)
	return state != asset.Loading
}

func textStyle(ts scene.TextStyle, bg tui.Color) tui.Style {
	style := tui.NewStyle().Foreground(ts.Color).Background(bg)
	if ts.FontSize >= BoldFontSize {
		style = style.Bold()
	}
	return style
}
