package scene

import (
	"github.com/grindlemire/layout-showcase/internal/layout"
	"github.com/grindlemire/layout-showcase/internal/tui"
)

// UpdateLayout lays out every UI root against a viewport of width x height
// cells.
func (w *World) UpdateLayout(width, height int) {
	for _, root := range w.roots {
		r := w.records[root]
		if r.node == nil {
			continue
		}
		layout.Calculate(r, width, height)
	}
}

// LayoutStyle implements layout.Layoutable.
func (r *record) LayoutStyle() layout.Style {
	return r.node.Style
}

// LayoutChildren implements layout.Layoutable. Children without a UI node
// do not take part in layout.
func (r *record) LayoutChildren() []layout.Layoutable {
	children := make([]layout.Layoutable, 0, len(r.children))
	for _, id := range r.children {
		if c := r.world.records[id]; c.node != nil {
			children = append(children, c)
		}
	}
	return children
}

// SetLayout implements layout.Layoutable.
func (r *record) SetLayout(l layout.Layout) {
	r.layout = l
}

// GetLayout implements layout.Layoutable.
func (r *record) GetLayout() layout.Layout {
	return r.layout
}

// IntrinsicSize implements layout.Layoutable. Text is a single line one
// cell tall; other leaves have no content.
func (r *record) IntrinsicSize() (width, height int) {
	if r.text == nil {
		return 0, 0
	}
	return tui.StringWidth(r.text.Value), 1
}

// LayoutNode returns e as a layout.Layoutable, for inspecting how the
// engine sees it. Entities without a UI node report false.
func (w *World) LayoutNode(e Entity) (layout.Layoutable, bool) {
	r := w.get(e)
	if r == nil || r.node == nil {
		return nil, false
	}
	return r, true
}
