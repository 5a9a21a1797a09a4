// Package scene holds the entity arena the showcase is built into.
//
// Entities are indices into a World. Each entity carries an optional set of
// components (camera, UI node, text) and is linked to its parent; a parent
// owns its children, which keep insertion order.
package scene

import (
	"fmt"

	"github.com/grindlemire/layout-showcase/internal/asset"
	"github.com/grindlemire/layout-showcase/internal/layout"
	"github.com/grindlemire/layout-showcase/internal/tui"
)

// Entity identifies an entity in a World.
type Entity int

// Nil is the invalid entity. Spawning under Nil creates a root.
const Nil Entity = 0

// Camera makes the world visible. The first camera's clear color fills the
// screen before anything else is painted.
type Camera struct {
	ClearColor tui.Color
}

// Node is a UI box taking part in layout.
type Node struct {
	Style      layout.Style
	Background tui.Color
}

// TextStyle controls how a text leaf is drawn.
type TextStyle struct {
	Font     asset.Handle
	FontSize float64
	Color    tui.Color
}

// Text is a single-line label.
type Text struct {
	Value string
	Style TextStyle
}

// Bundle is a set of components spawned together.
type Bundle interface {
	apply(r *record)
}

// Camera2DBundle spawns a camera.
type Camera2DBundle struct {
	ClearColor tui.Color
}

func (b Camera2DBundle) apply(r *record) {
	r.camera = &Camera{ClearColor: b.ClearColor}
}

// NodeBundle spawns a UI container.
type NodeBundle struct {
	Style      layout.Style
	Background tui.Color
}

func (b NodeBundle) apply(r *record) {
	r.node = &Node{Style: b.Style, Background: b.Background}
}

// TextBundle spawns a text leaf. It is also a UI node, so Style sizes and
// pads the label box.
type TextBundle struct {
	Text       Text
	Style      layout.Style
	Background tui.Color
}

func (b TextBundle) apply(r *record) {
	r.node = &Node{Style: b.Style, Background: b.Background}
	text := b.Text
	r.text = &text
}

type record struct {
	world    *World
	id       Entity
	parent   Entity
	children []Entity
	camera   *Camera
	node     *Node
	text     *Text
	layout   layout.Layout
}

// World is the entity arena.
type World struct {
	records []*record // index 0 is the Nil sentinel
	roots   []Entity
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{records: []*record{nil}}
}

// Spawn creates an entity from b under parent and returns it.
// Spawning under an entity that does not exist panics.
func (w *World) Spawn(parent Entity, b Bundle) Entity {
	if parent != Nil && !w.Exists(parent) {
		panic(fmt.Sprintf("scene: spawn under unknown parent %d", parent))
	}

	id := Entity(len(w.records))
	r := &record{world: w, id: id, parent: parent}
	if b != nil {
		b.apply(r)
	}
	w.records = append(w.records, r)

	if parent == Nil {
		w.roots = append(w.roots, id)
	} else {
		p := w.records[parent]
		p.children = append(p.children, id)
	}
	return id
}

// Exists reports whether e was spawned in w.
func (w *World) Exists(e Entity) bool {
	return e > Nil && int(e) < len(w.records)
}

// Len returns the number of entities.
func (w *World) Len() int {
	return len(w.records) - 1
}

func (w *World) get(e Entity) *record {
	if !w.Exists(e) {
		return nil
	}
	return w.records[e]
}

// Parent returns e's parent, or Nil for roots and unknown entities.
func (w *World) Parent(e Entity) Entity {
	if r := w.get(e); r != nil {
		return r.parent
	}
	return Nil
}

// Children returns e's children in spawn order. The slice must not be modified.
func (w *World) Children(e Entity) []Entity {
	if r := w.get(e); r != nil {
		return r.children
	}
	return nil
}

// Roots returns the parentless entities in spawn order.
func (w *World) Roots() []Entity {
	return w.roots
}

// Node returns e's UI node component.
func (w *World) Node(e Entity) (*Node, bool) {
	if r := w.get(e); r != nil && r.node != nil {
		return r.node, true
	}
	return nil, false
}

// Text returns e's text component.
func (w *World) Text(e Entity) (*Text, bool) {
	if r := w.get(e); r != nil && r.text != nil {
		return r.text, true
	}
	return nil, false
}

// Camera returns e's camera component.
func (w *World) Camera(e Entity) (*Camera, bool) {
	if r := w.get(e); r != nil && r.camera != nil {
		return r.camera, true
	}
	return nil, false
}

// Cameras returns every camera entity in spawn order.
func (w *World) Cameras() []Entity {
	var cams []Entity
	for _, r := range w.records[1:] {
		if r.camera != nil {
			cams = append(cams, r.id)
		}
	}
	return cams
}

// Walk visits every entity depth-first in pre-order, roots in spawn order.
// Returning false from fn skips the entity's descendants.
func (w *World) Walk(fn func(e Entity, depth int) bool) {
	var visit func(e Entity, depth int)
	visit = func(e Entity, depth int) {
		if !fn(e, depth) {
			return
		}
		for _, child := range w.records[e].children {
			visit(child, depth+1)
		}
	}
	for _, root := range w.roots {
		visit(root, 0)
	}
}

// Computed returns the layout stored by the last UpdateLayout.
func (w *World) Computed(e Entity) layout.Layout {
	if r := w.get(e); r != nil {
		return r.layout
	}
	return layout.Layout{}
}
