package layout

// Layout holds the computed position and size after layout calculation.
type Layout struct {
	// Rect is the border box: the space allocated by the parent after
	// applying this node's margin.
	Rect Rect

	// ContentRect is Rect minus padding, the area where children are placed.
	ContentRect Rect
}

// Layoutable is the interface for anything that can participate in layout calculation.
// The layout engine works entirely with this interface.
type Layoutable interface {
	// LayoutStyle returns the layout style properties for this node.
	LayoutStyle() Style

	// LayoutChildren returns the children to be laid out, in order.
	LayoutChildren() []Layoutable

	// SetLayout is called by the layout engine to store computed layout.
	SetLayout(Layout)

	// GetLayout returns the last computed layout.
	GetLayout() Layout

	// IntrinsicSize returns the natural content size of a leaf node
	// (excluding padding). It is not consulted for nodes with children.
	IntrinsicSize() (width, height int)
}
