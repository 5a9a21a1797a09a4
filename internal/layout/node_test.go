package layout

// testNode is a minimal Layoutable used throughout the package tests.
type testNode struct {
	style    Style
	children []*testNode
	layout   Layout
	width    int
	height   int
}

func newTestNode(style Style) *testNode {
	return &testNode{style: style}
}

// leaf returns a node whose content measures w x h cells.
func leaf(w, h int) *testNode {
	return &testNode{style: DefaultStyle(), width: w, height: h}
}

func (n *testNode) AddChild(children ...*testNode) {
	n.children = append(n.children, children...)
}

func (n *testNode) LayoutStyle() Style { return n.style }

func (n *testNode) LayoutChildren() []Layoutable {
	out := make([]Layoutable, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *testNode) SetLayout(l Layout) { n.layout = l }

func (n *testNode) GetLayout() Layout { return n.layout }

func (n *testNode) IntrinsicSize() (int, int) { return n.width, n.height }
