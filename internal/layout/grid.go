package layout

// Track is the sizing function of one grid row or column.
// Fixed tracks have an exact size, percent tracks resolve against the
// container's content box, and auto tracks fit their content and absorb any
// leftover space.
type Track Value

// TrackAuto returns a content-sized track.
func TrackAuto() Track { return Track(Auto()) }

// TrackFixed returns a track of exactly n cells.
func TrackFixed(n int) Track { return Track(Fixed(n)) }

// TrackPercent returns a track sized as a percentage of the container.
func TrackPercent(p float64) Track { return Track(Percent(p)) }

// Repeat returns n copies of track.
func Repeat(n int, track Track) []Track {
	tracks := make([]Track, max(0, n))
	for i := range tracks {
		tracks[i] = track
	}
	return tracks
}

// Placement positions a grid item along one axis. Start is a 1-based line
// number (0 = auto placement) and Span the number of tracks covered
// (0 is treated as 1).
type Placement struct {
	Start int
	Span  int
}

// PlaceStart returns a placement starting at the given 1-based track.
func PlaceStart(start int) Placement {
	return Placement{Start: start, Span: 1}
}

// PlaceSpan returns an auto placement covering span tracks.
func PlaceSpan(span int) Placement {
	return Placement{Span: span}
}

func (p Placement) span() int {
	return max(1, p.Span)
}

// gridItem records where a child was placed.
type gridItem struct {
	node    Layoutable
	style   Style
	row     int
	col     int
	rowSpan int
	colSpan int
}

// GridPosition is the resolved 0-based area of a grid item.
type GridPosition struct {
	Row, Column         int
	RowSpan, ColumnSpan int
}

// GridShape reports the track counts and item positions a grid container
// would use for its children.
func GridShape(node Layoutable) (columns, rows int, positions []GridPosition) {
	items, columns, rows := placeGridItems(node.LayoutStyle(), visibleChildren(node))
	positions = make([]GridPosition, len(items))
	for i, item := range items {
		positions[i] = GridPosition{Row: item.row, Column: item.col, RowSpan: item.rowSpan, ColumnSpan: item.colSpan}
	}
	return columns, rows, positions
}

// placeGridItems assigns every child a grid area using sparse row-major
// auto placement: an item with an explicit column start goes into the
// current row if the cursor has not passed it, otherwise into the next row.
// Items with an explicit row start are placed there without moving the cursor.
func placeGridItems(style Style, children []Layoutable) (items []gridItem, columns, rows int) {
	columns = len(style.GridTemplateColumns)
	for _, child := range children {
		cs := child.LayoutStyle()
		span := cs.GridColumn.span()
		if cs.GridColumn.Start > 0 {
			columns = max(columns, cs.GridColumn.Start-1+span)
		} else {
			columns = max(columns, span)
		}
	}
	columns = max(1, columns)

	items = make([]gridItem, 0, len(children))
	rowCursor, colCursor := 0, 0
	for _, child := range children {
		cs := child.LayoutStyle()
		item := gridItem{
			node:    child,
			style:   cs,
			rowSpan: cs.GridRow.span(),
			colSpan: cs.GridColumn.span(),
		}

		switch {
		case cs.GridRow.Start > 0:
			item.row = cs.GridRow.Start - 1
			if cs.GridColumn.Start > 0 {
				item.col = cs.GridColumn.Start - 1
			}
		case cs.GridColumn.Start > 0:
			col := cs.GridColumn.Start - 1
			if col < colCursor {
				rowCursor++
			}
			item.row, item.col = rowCursor, col
			colCursor = col + item.colSpan
		default:
			if colCursor+item.colSpan > columns {
				rowCursor++
				colCursor = 0
			}
			item.row, item.col = rowCursor, colCursor
			colCursor += item.colSpan
		}

		rows = max(rows, item.row+item.rowSpan)
		items = append(items, item)
	}

	rows = max(rows, len(style.GridTemplateRows))
	return items, columns, rows
}

// trackSpan is the demand one item puts on a run of tracks.
type trackSpan struct {
	start, span, size int
}

// sizeTracks resolves the size of count tracks. When definite is set,
// available is the container's content size: percent tracks resolve
// against it and auto tracks share whatever space is left.
func sizeTracks(template []Track, count, available int, definite bool, gap int, spans []trackSpan) []int {
	sizes := make([]int, count)
	auto := make([]bool, count)
	for i := range sizes {
		track := TrackAuto()
		if i < len(template) {
			track = template[i]
		}
		v := Value(track)
		switch {
		case v.Unit == UnitFixed:
			sizes[i] = int(v.Amount)
		case v.Unit == UnitPercent && definite:
			sizes[i] = v.Resolve(available, 0)
		default:
			auto[i] = true
		}
	}

	for _, s := range spans {
		if s.span == 1 && s.start < count && auto[s.start] {
			sizes[s.start] = max(sizes[s.start], s.size)
		}
	}

	// Spanning items grow the auto tracks they cover, evenly.
	for _, s := range spans {
		if s.span < 2 {
			continue
		}
		end := min(s.start+s.span, count)
		covered := gap * max(0, end-s.start-1)
		var autos []int
		for i := s.start; i < end; i++ {
			covered += sizes[i]
			if auto[i] {
				autos = append(autos, i)
			}
		}
		if deficit := s.size - covered; deficit > 0 && len(autos) > 0 {
			distribute(sizes, autos, deficit)
		}
	}

	if definite {
		var autos []int
		for i, a := range auto {
			if a {
				autos = append(autos, i)
			}
		}
		if free := available - tracksTotal(sizes, gap); free > 0 && len(autos) > 0 {
			distribute(sizes, autos, free)
		}
	}

	return sizes
}

// distribute adds amount to the tracks in idx as evenly as integers allow,
// earlier tracks taking the remainder.
func distribute(sizes []int, idx []int, amount int) {
	share := amount / len(idx)
	rem := amount % len(idx)
	for k, i := range idx {
		sizes[i] += share
		if k < rem {
			sizes[i]++
		}
	}
}

func tracksTotal(sizes []int, gap int) int {
	total := gap * max(0, len(sizes)-1)
	for _, s := range sizes {
		total += s
	}
	return total
}

// trackDemands collects the outer intrinsic size of every item along one axis.
func trackDemands(items []gridItem) (cols, rows []trackSpan) {
	cols = make([]trackSpan, len(items))
	rows = make([]trackSpan, len(items))
	for i, item := range items {
		w, h := IntrinsicSize(item.node)
		cols[i] = trackSpan{start: item.col, span: item.colSpan, size: w + item.style.Margin.Horizontal()}
		rows[i] = trackSpan{start: item.row, span: item.rowSpan, size: h + item.style.Margin.Vertical()}
	}
	return cols, rows
}

// gridIntrinsic returns the content size of a grid container.
func gridIntrinsic(style Style, children []Layoutable) (width, height int) {
	items, columns, rows := placeGridItems(style, children)
	colDemand, rowDemand := trackDemands(items)
	colSizes := sizeTracks(style.GridTemplateColumns, columns, 0, false, style.Gap, colDemand)
	rowSizes := sizeTracks(style.GridTemplateRows, rows, 0, false, style.Gap, rowDemand)
	return tracksTotal(colSizes, style.Gap), tracksTotal(rowSizes, style.Gap)
}

// trackOffsets returns the start position of every track.
func trackOffsets(origin int, sizes []int, gap int) []int {
	offsets := make([]int, len(sizes))
	pos := origin
	for i, s := range sizes {
		offsets[i] = pos
		pos += s + gap
	}
	return offsets
}

// areaSpan returns the position and extent of tracks [start, start+span).
func areaSpan(offsets, sizes []int, start, span int) (pos, size int) {
	if start >= len(sizes) {
		return offsets[len(offsets)-1] + sizes[len(sizes)-1], 0
	}
	end := min(start+span, len(sizes)) - 1
	return offsets[start], offsets[end] + sizes[end] - offsets[start]
}

// layoutGrid places children into the grid and lays each out inside its area.
func layoutGrid(style Style, children []Layoutable, contentRect Rect) {
	items, columns, rows := placeGridItems(style, children)
	colDemand, rowDemand := trackDemands(items)
	colSizes := sizeTracks(style.GridTemplateColumns, columns, contentRect.Width, true, style.Gap, colDemand)
	rowSizes := sizeTracks(style.GridTemplateRows, rows, contentRect.Height, true, style.Gap, rowDemand)
	colOffsets := trackOffsets(contentRect.X, colSizes, style.Gap)
	rowOffsets := trackOffsets(contentRect.Y, rowSizes, style.Gap)

	for _, item := range items {
		areaX, areaW := areaSpan(colOffsets, colSizes, item.col, item.colSpan)
		areaY, areaH := areaSpan(rowOffsets, rowSizes, item.row, item.rowSpan)

		cs := item.style
		innerW := max(0, areaW-cs.Margin.Horizontal())
		innerH := max(0, areaH-cs.Margin.Vertical())
		iw, ih := IntrinsicSize(item.node)

		width := cs.Width.Resolve(innerW, iw)
		x := 0
		if style.JustifyItems.stretches() && cs.Width.IsAuto() {
			width = innerW
		} else {
			x = style.JustifyItems.offset(innerW, width)
		}

		align := effectiveAlign(style.AlignItems, cs.AlignSelf)
		height := cs.Height.Resolve(innerH, ih)
		y := 0
		if align.stretches() && cs.Height.IsAuto() {
			height = innerH
		} else {
			y = align.offset(innerH, height)
		}

		calculateNode(item.node, Rect{
			X:      areaX + cs.Margin.Left + x,
			Y:      areaY + cs.Margin.Top + y,
			Width:  width,
			Height: height,
		})
	}
}
