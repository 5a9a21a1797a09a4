package scene

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/grindlemire/layout-showcase/internal/layout"
	"github.com/grindlemire/layout-showcase/internal/tui"
)

func label(s string) TextBundle {
	return TextBundle{Text: Text{Value: s}, Style: layout.DefaultStyle()}
}

func TestWorld_Spawn(t *testing.T) {
	w := NewWorld()
	cam := w.Spawn(Nil, Camera2DBundle{ClearColor: tui.Gray})
	root := w.Spawn(Nil, NodeBundle{Style: layout.DefaultStyle()})
	a := w.Spawn(root, label("a"))
	b := w.Spawn(root, label("b"))
	inner := w.Spawn(a, label("inner"))

	if w.Len() != 5 {
		t.Errorf("Len() = %d, want 5", w.Len())
	}
	if diff := cmp.Diff([]Entity{cam, root}, w.Roots()); diff != "" {
		t.Errorf("Roots() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Entity{a, b}, w.Children(root)); diff != "" {
		t.Errorf("Children(root) mismatch (-want +got):\n%s", diff)
	}
	if w.Parent(inner) != a || w.Parent(root) != Nil {
		t.Errorf("parents wrong: inner->%d root->%d", w.Parent(inner), w.Parent(root))
	}
	if diff := cmp.Diff([]Entity{cam}, w.Cameras()); diff != "" {
		t.Errorf("Cameras() mismatch (-want +got):\n%s", diff)
	}

	if c, ok := w.Camera(cam); !ok || !c.ClearColor.Equal(tui.Gray) {
		t.Errorf("camera component = %+v, %v", c, ok)
	}
	if _, ok := w.Node(cam); ok {
		t.Errorf("camera should not be a UI node")
	}
	if txt, ok := w.Text(b); !ok || txt.Value != "b" {
		t.Errorf("Text(b) = %+v, %v", txt, ok)
	}
	if _, ok := w.Node(b); !ok {
		t.Errorf("text entity should also be a UI node")
	}
}

func TestWorld_SpawnUnknownParentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewWorld().Spawn(Entity(42), label("orphan"))
}

func TestWorld_Walk(t *testing.T) {
	w := NewWorld()
	root := w.Spawn(Nil, NodeBundle{})
	a := w.Spawn(root, NodeBundle{})
	a1 := w.Spawn(a, label("a1"))
	b := w.Spawn(root, NodeBundle{})
	other := w.Spawn(Nil, NodeBundle{})

	type visit struct {
		E     Entity
		Depth int
	}
	var got []visit
	w.Walk(func(e Entity, depth int) bool {
		got = append(got, visit{e, depth})
		return e != b
	})

	want := []visit{{root, 0}, {a, 1}, {a1, 2}, {b, 1}, {other, 0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Walk order mismatch (-want +got):\n%s", diff)
	}

	var pruned []Entity
	w.Walk(func(e Entity, _ int) bool {
		pruned = append(pruned, e)
		return e != a
	})
	if diff := cmp.Diff([]Entity{root, a, b, other}, pruned); diff != "" {
		t.Errorf("pruned walk mismatch (-want +got):\n%s", diff)
	}
}

func TestWorld_UpdateLayout(t *testing.T) {
	w := NewWorld()
	w.Spawn(Nil, Camera2DBundle{})

	rootStyle := layout.DefaultStyle()
	rootStyle.Width = layout.Percent(100)
	rootStyle.Height = layout.Percent(100)
	rootStyle.JustifyContent = layout.JustifyCenter
	rootStyle.AlignItems = layout.AlignStart
	root := w.Spawn(Nil, NodeBundle{Style: rootStyle})

	boxStyle := layout.DefaultStyle()
	boxStyle.Padding = layout.EdgeSymmetric(0, 1)
	box := w.Spawn(root, TextBundle{Text: Text{Value: "Center"}, Style: boxStyle})

	w.UpdateLayout(20, 5)

	if got := w.Computed(root).Rect; got != layout.NewRect(0, 0, 20, 5) {
		t.Errorf("root rect = %+v", got)
	}
	// "Center" plus one cell of padding each side, centered in 20 columns.
	if got := w.Computed(box).Rect; got != layout.NewRect(6, 0, 8, 1) {
		t.Errorf("box rect = %+v, want {6 0 8 1}", got)
	}
	if got := w.Computed(box).ContentRect; got != layout.NewRect(7, 0, 6, 1) {
		t.Errorf("box content = %+v, want {7 0 6 1}", got)
	}
}

func TestWorld_LayoutNode(t *testing.T) {
	w := NewWorld()
	cam := w.Spawn(Nil, Camera2DBundle{})
	text := w.Spawn(Nil, label("日本"))

	if _, ok := w.LayoutNode(cam); ok {
		t.Errorf("camera exposed as layout node")
	}
	node, ok := w.LayoutNode(text)
	if !ok {
		t.Fatal("text entity not a layout node")
	}
	if width, height := node.IntrinsicSize(); width != 4 || height != 1 {
		t.Errorf("IntrinsicSize() = (%d, %d), want (4, 1)", width, height)
	}
}
