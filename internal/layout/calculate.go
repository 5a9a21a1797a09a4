package layout

// Calculate performs layout calculation on the tree rooted at root.
// The root and all descendants will have their Layout populated.
//
// availableWidth and availableHeight specify the root constraint
// (typically the terminal size).
func Calculate(root Layoutable, availableWidth, availableHeight int) {
	if root == nil {
		return
	}

	// The root resolves its own size against the viewport; every other
	// node receives its size from the parent's flex or grid pass.
	style := root.LayoutStyle()
	width := style.Width.Resolve(availableWidth, availableWidth)
	height := style.Height.Resolve(availableHeight, availableHeight)

	calculateNode(root, NewRect(0, 0, width, height))
}

// calculateNode computes the layout for a single node within the available space.
// The available rect is the border box allocated by the parent, with this
// node's margin already removed.
func calculateNode(node Layoutable, available Rect) {
	style := node.LayoutStyle()

	borderBox := computeBorderBox(style, available)
	contentRect := borderBox.Inset(style.Padding)

	if children := visibleChildren(node); len(children) > 0 {
		switch style.Display {
		case DisplayGrid:
			layoutGrid(style, children, contentRect)
		default:
			layoutFlex(style, children, contentRect)
		}
	}

	node.SetLayout(Layout{
		Rect:        borderBox,
		ContentRect: contentRect,
	})
}

// visibleChildren returns the children that take part in layout. Hidden
// children get an empty layout anchored at the parent.
func visibleChildren(node Layoutable) []Layoutable {
	all := node.LayoutChildren()
	visible := all[:0:0]
	for _, child := range all {
		if child.LayoutStyle().Display == DisplayNone {
			child.SetLayout(Layout{})
			continue
		}
		visible = append(visible, child)
	}
	return visible
}

// computeBorderBox applies min/max constraints to the space the parent
// allocated. Width and Height were already used by the parent to size the slot.
func computeBorderBox(style Style, available Rect) Rect {
	width := available.Width
	height := available.Height

	minWidth := style.MinWidth.Resolve(available.Width, 0)
	maxWidth := style.MaxWidth.Resolve(available.Width, available.Width)
	width = clamp(width, minWidth, maxWidth)

	minHeight := style.MinHeight.Resolve(available.Height, 0)
	maxHeight := style.MaxHeight.Resolve(available.Height, available.Height)
	height = clamp(height, minHeight, maxHeight)

	return Rect{
		X:      available.X,
		Y:      available.Y,
		Width:  max(0, width),
		Height: max(0, height),
	}
}

// IntrinsicSize returns the natural border-box size of node: its content
// size plus padding, with fixed sizes and min/max constraints applied.
// Margin is not included.
func IntrinsicSize(node Layoutable) (width, height int) {
	style := node.LayoutStyle()
	if style.Display == DisplayNone {
		return 0, 0
	}

	var cw, ch int
	children := visibleChildren(node)
	switch {
	case len(children) == 0:
		cw, ch = node.IntrinsicSize()
	case style.Display == DisplayGrid:
		cw, ch = gridIntrinsic(style, children)
	default:
		cw, ch = flexIntrinsic(style, children)
	}

	width = fixedOr(style.Width, cw+style.Padding.Horizontal())
	height = fixedOr(style.Height, ch+style.Padding.Vertical())

	width = clamp(width, fixedOr(style.MinWidth, 0), fixedOr(style.MaxWidth, width))
	height = clamp(height, fixedOr(style.MinHeight, 0), fixedOr(style.MaxHeight, height))
	return width, height
}

// firstBaseline returns the distance from the top of node's border box to
// the first line of text inside it.
func firstBaseline(node Layoutable) int {
	style := node.LayoutStyle()
	children := visibleChildren(node)
	if len(children) == 0 {
		return style.Padding.Top
	}
	first := children[0]
	return style.Padding.Top + first.LayoutStyle().Margin.Top + firstBaseline(first)
}

// clamp restricts v to the range [minVal, maxVal].
// If minVal > maxVal, minVal wins (matches CSS behavior).
func clamp(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}
