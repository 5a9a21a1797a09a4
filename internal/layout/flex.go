package layout

// flexItem holds intermediate calculation state for a child.
type flexItem struct {
	node        Layoutable
	style       Style
	baseSize    int // outer main size before flexing, margin included
	mainSize    int
	crossSize   int
	mainPos     int
	crossPos    int
	mainMargin  int
	crossMargin int
	intrinsic   int // content-based cross size, margin excluded
	grow        float64
	shrink      float64
}

// flexIntrinsic returns the content size of a flex container: children
// laid end to end on the main axis, tallest child on the cross axis.
func flexIntrinsic(style Style, children []Layoutable) (width, height int) {
	isRow := style.Direction == Row
	mainTotal, crossMax := 0, 0
	for _, child := range children {
		cs := child.LayoutStyle()
		w, h := IntrinsicSize(child)
		w += cs.Margin.Horizontal()
		h += cs.Margin.Vertical()
		if !isRow {
			w, h = h, w
		}
		mainTotal += w
		crossMax = max(crossMax, h)
	}
	mainTotal += style.Gap * max(0, len(children)-1)
	if isRow {
		return mainTotal, crossMax
	}
	return crossMax, mainTotal
}

// layoutFlex arranges children within the given content rect.
func layoutFlex(style Style, children []Layoutable, contentRect Rect) {
	isRow := style.Direction == Row

	// Determine main/cross axis dimensions
	mainSize := contentRect.Width
	crossSize := contentRect.Height
	if !isRow {
		mainSize, crossSize = crossSize, mainSize
	}

	// Phase 1: base sizes and flex factors. Auto items start from their
	// intrinsic size; margin is part of the outer size.
	items := make([]flexItem, len(children))
	totalBase := 0
	totalGrow := 0.0
	totalShrink := 0.0

	for i, child := range children {
		item := &items[i]
		item.node = child
		item.style = child.LayoutStyle()

		iw, ih := IntrinsicSize(child)
		mainValue := item.style.Width
		item.mainMargin = item.style.Margin.Horizontal()
		item.crossMargin = item.style.Margin.Vertical()
		if !isRow {
			iw, ih = ih, iw
			mainValue = item.style.Height
			item.mainMargin, item.crossMargin = item.crossMargin, item.mainMargin
		}
		item.baseSize = mainValue.Resolve(mainSize, iw) + item.mainMargin
		item.intrinsic = ih
		item.grow = item.style.FlexGrow
		item.shrink = item.style.FlexShrink

		totalBase += item.baseSize
		totalGrow += item.grow
		totalShrink += item.shrink
	}

	totalGap := style.Gap * max(0, len(children)-1)
	freeSpace := mainSize - totalBase - totalGap

	// Phase 2: distribute free space
	switch {
	case freeSpace > 0 && totalGrow > 0:
		for i := range items {
			extra := 0
			if items[i].grow > 0 {
				extra = int(float64(freeSpace) * items[i].grow / totalGrow)
			}
			items[i].mainSize = items[i].baseSize + extra
		}
	case freeSpace < 0 && totalShrink > 0:
		deficit := -freeSpace
		for i := range items {
			reduction := 0
			if items[i].shrink > 0 {
				reduction = int(float64(deficit) * items[i].shrink / totalShrink)
			}
			items[i].mainSize = max(items[i].mainMargin, items[i].baseSize-reduction)
		}
	default:
		for i := range items {
			items[i].mainSize = items[i].baseSize
		}
	}

	// Phase 3: min/max constraints apply to the content size, not the margin
	for i := range items {
		item := &items[i]
		minMain, maxMain := mainConstraints(item.style, isRow, mainSize)
		item.mainSize = clamp(item.mainSize-item.mainMargin, minMain, maxMain) + item.mainMargin
	}

	totalUsed := 0
	for i := range items {
		totalUsed += items[i].mainSize
	}
	freeSpace = mainSize - totalUsed - totalGap

	// Phase 4: position children along main axis (justify)
	offset := justifyOffset(style.JustifyContent, freeSpace, len(items))
	spacing := justifySpacing(style.JustifyContent, freeSpace, len(items))

	for i := range items {
		items[i].mainPos = offset
		offset += items[i].mainSize + style.Gap + spacing
	}

	// Phase 5: cross-axis sizing and alignment
	maxBaseline := 0
	for i := range items {
		item := &items[i]
		align := effectiveAlign(style.AlignItems, item.style.AlignSelf)

		crossValue := item.style.Height
		if !isRow {
			crossValue = item.style.Width
		}
		availableCross := crossSize - item.crossMargin

		if align.stretches() && crossValue.IsAuto() {
			item.crossSize = max(0, availableCross) + item.crossMargin
			item.crossPos = 0
			continue
		}

		content := crossValue.Resolve(availableCross, item.intrinsic)
		item.crossSize = content + item.crossMargin
		item.crossPos = align.offset(crossSize, item.crossSize)

		if align == AlignBaseline && isRow {
			maxBaseline = max(maxBaseline, item.style.Margin.Top+firstBaseline(item.node))
		}
	}

	// Baseline items in a row share the deepest first baseline. In a column
	// the cross axis is horizontal and baseline falls back to start.
	if isRow {
		for i := range items {
			item := &items[i]
			if effectiveAlign(style.AlignItems, item.style.AlignSelf) != AlignBaseline {
				continue
			}
			item.crossPos = max(0, maxBaseline-(item.style.Margin.Top+firstBaseline(item.node)))
		}
	}

	// Phase 6: convert to rects and recurse
	for i := range items {
		item := &items[i]
		var slot Rect
		if isRow {
			slot = Rect{
				X:      contentRect.X + item.mainPos,
				Y:      contentRect.Y + item.crossPos,
				Width:  item.mainSize,
				Height: item.crossSize,
			}
		} else {
			slot = Rect{
				X:      contentRect.X + item.crossPos,
				Y:      contentRect.Y + item.mainPos,
				Width:  item.crossSize,
				Height: item.mainSize,
			}
		}

		// The child receives its border box and does not re-apply margin.
		calculateNode(item.node, slot.Inset(item.style.Margin))
	}
}

// mainConstraints resolves the min and max content sizes on the main axis.
// An unset maximum is bounded by the available space.
func mainConstraints(style Style, isRow bool, available int) (minMain, maxMain int) {
	minValue, maxValue := style.MinWidth, style.MaxWidth
	if !isRow {
		minValue, maxValue = style.MinHeight, style.MaxHeight
	}
	minMain = minValue.Resolve(available, 0)
	if maxValue.IsAuto() {
		return minMain, max(available, minMain)
	}
	return minMain, maxValue.Resolve(available, available)
}
