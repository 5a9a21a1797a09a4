// Package showcase builds the alignment/justification demonstration scene:
// a grid with one cell per pairing, each cell a column flex container using
// that pairing and holding two labels naming it.
package showcase

import (
	"fmt"

	"github.com/grindlemire/layout-showcase/internal/asset"
	"github.com/grindlemire/layout-showcase/internal/layout"
	"github.com/grindlemire/layout-showcase/internal/scene"
	"github.com/grindlemire/layout-showcase/internal/tui"
)

// Tracks selects how the grid's track lists are assembled. Both variants
// produce the same tracks.
type Tracks uint8

const (
	// TracksRepeated builds the fixed tracks with layout.Repeat.
	TracksRepeated Tracks = iota
	// TracksExplicit appends every track one at a time.
	TracksExplicit
)

func (t Tracks) String() string {
	switch t {
	case TracksRepeated:
		return "repeated"
	case TracksExplicit:
		return "explicit"
	default:
		return fmt.Sprintf("Tracks(%d)", t)
	}
}

// ParseTracks parses the name of a track variant.
func ParseTracks(s string) (Tracks, error) {
	switch s {
	case "repeated", "":
		return TracksRepeated, nil
	case "explicit":
		return TracksExplicit, nil
	default:
		return 0, fmt.Errorf("unknown track variant %q (want repeated or explicit)", s)
	}
}

// Cell is one spawned pairing.
type Cell struct {
	Alignment     Alignment
	Justification Justification

	Container    scene.Entity
	AlignLabel   scene.Entity // text entity naming the alignment
	JustifyLabel scene.Entity // text entity naming the justification
}

// Showcase holds the entities of one spawned scene.
type Showcase struct {
	Camera    scene.Entity
	Root      scene.Entity
	Grid      scene.Entity
	Headers   [2]scene.Entity // "AlignItems" and "JustifyContent" tags
	Filler    scene.Entity
	RowLabels []scene.Entity // one per justification
	Cells     []Cell         // justification-major, declaration order
}

// Builder spawns the showcase scene.
type Builder struct {
	Theme  Theme
	Tracks Tracks
}

// NewBuilder returns a builder with the default theme and repeated tracks.
func NewBuilder() *Builder {
	return &Builder{Theme: DefaultTheme()}
}

// HeaderColumns returns the 1-based grid columns of the two header tags and
// the span of the filler completing the header row, for n alignments.
// Column 1 holds the row labels, so the alignment columns are 2..n+1.
func HeaderColumns(n int) (alignItems, justifyContent, fillerSpan int) {
	alignItems = 1 + n/2
	justifyContent = alignItems + 1
	fillerSpan = (n + 1) - (2 + n/2)
	return alignItems, justifyContent, fillerSpan
}

// Spawn builds the scene into w. Every call adds a complete, independent
// copy.
func (b *Builder) Spawn(w *scene.World, font asset.Handle) *Showcase {
	alignments := Alignments()
	justifications := Justifications()
	theme := b.Theme

	s := &Showcase{}
	s.Camera = w.Spawn(scene.Nil, scene.Camera2DBundle{ClearColor: theme.ClearColor})

	rootStyle := layout.DefaultStyle()
	rootStyle.Width = layout.Percent(100)
	rootStyle.Height = layout.Percent(100)
	rootStyle.JustifyContent = layout.JustifyCenter
	rootStyle.AlignItems = layout.AlignStart
	s.Root = w.Spawn(scene.Nil, scene.NodeBundle{Style: rootStyle})

	gridStyle := layout.DefaultStyle()
	gridStyle.Display = layout.DisplayGrid
	gridStyle.GridTemplateColumns = b.columns(len(alignments))
	gridStyle.GridTemplateRows = b.rows(len(justifications))
	gridStyle.Gap = theme.Gap
	gridStyle.Padding = layout.EdgeAll(theme.Padding)
	s.Grid = w.Spawn(s.Root, scene.NodeBundle{Style: gridStyle, Background: theme.BackgroundColor})

	alignCol, justifyCol, fillerSpan := HeaderColumns(len(alignments))
	s.Headers[0] = b.spawnTag(w, s.Grid, font, "AlignItems", alignCol, theme.AlignColor)
	s.Headers[1] = b.spawnTag(w, s.Grid, font, "JustifyContent", justifyCol, theme.JustifyColor)

	fillerStyle := layout.DefaultStyle()
	fillerStyle.Display = layout.DisplayGrid
	fillerStyle.GridColumn = layout.PlaceSpan(fillerSpan)
	s.Filler = w.Spawn(s.Grid, scene.NodeBundle{Style: fillerStyle})

	s.Cells = make([]Cell, 0, len(alignments)*len(justifications))
	for _, justify := range justifications {
		s.RowLabels = append(s.RowLabels, b.spawnRowLabel(w, s.Grid, font, justify))
		for _, align := range alignments {
			s.Cells = append(s.Cells, b.spawnCell(w, s.Grid, font, align, justify))
		}
	}
	return s
}

func (b *Builder) columns(n int) []layout.Track {
	tracks := []layout.Track{layout.TrackAuto()}
	switch b.Tracks {
	case TracksExplicit:
		for range n {
			tracks = append(tracks, layout.TrackFixed(b.Theme.ColumnWidth))
		}
	default:
		tracks = append(tracks, layout.Repeat(n, layout.TrackFixed(b.Theme.ColumnWidth))...)
	}
	return tracks
}

func (b *Builder) rows(n int) []layout.Track {
	tracks := []layout.Track{layout.TrackAuto()}
	switch b.Tracks {
	case TracksExplicit:
		for range n {
			tracks = append(tracks, layout.TrackFixed(b.Theme.RowHeight))
		}
	default:
		tracks = append(tracks, layout.Repeat(n, layout.TrackFixed(b.Theme.RowHeight))...)
	}
	return tracks
}

// spawnTag adds a header tag: a one-track grid centering its text.
func (b *Builder) spawnTag(w *scene.World, grid scene.Entity, font asset.Handle, text string, column int, bg tui.Color) scene.Entity {
	style := layout.DefaultStyle()
	style.Display = layout.DisplayGrid
	style.JustifyItems = layout.JustifyItemsCenter
	style.GridColumn = layout.PlaceStart(column)
	tag := w.Spawn(grid, scene.NodeBundle{Style: style, Background: bg})

	w.Spawn(tag, scene.TextBundle{
		Text: scene.Text{
			Value: text,
			Style: scene.TextStyle{Font: font, FontSize: HeaderFontSize, Color: b.Theme.TextColor},
		},
		Style: layout.DefaultStyle(),
	})
	return tag
}

func (b *Builder) spawnRowLabel(w *scene.World, grid scene.Entity, font asset.Handle, justify Justification) scene.Entity {
	style := layout.DefaultStyle()
	style.GridColumn = layout.PlaceStart(1)
	style.Padding = layout.EdgeSymmetric(0, 1)
	style.AlignSelf = ptr(layout.AlignCenter)

	return w.Spawn(grid, scene.TextBundle{
		Text: scene.Text{
			Value: justify.String(),
			Style: scene.TextStyle{Font: font, FontSize: JustifyFontSize, Color: b.Theme.JustifyColor},
		},
		Style: style,
	})
}

func (b *Builder) spawnCell(w *scene.World, grid scene.Entity, font asset.Handle, align Alignment, justify Justification) Cell {
	style := layout.DefaultStyle()
	style.Direction = layout.Column
	style.JustifyContent = justify.Layout()
	style.AlignItems = align.Layout()
	container := w.Spawn(grid, scene.NodeBundle{Style: style, Background: b.Theme.CellColor})

	return Cell{
		Alignment:     align,
		Justification: justify,
		Container:     container,
		AlignLabel:    b.spawnLabel(w, container, font, align.String(), AlignFontSize, b.Theme.AlignColor),
		JustifyLabel:  b.spawnLabel(w, container, font, justify.String(), JustifyFontSize, b.Theme.JustifyColor),
	}
}

// spawnLabel adds a padded, colored box centering one line of text and
// returns the text entity.
func (b *Builder) spawnLabel(w *scene.World, parent scene.Entity, font asset.Handle, text string, size float64, bg tui.Color) scene.Entity {
	boxStyle := layout.DefaultStyle()
	boxStyle.Padding = layout.EdgeSymmetric(0, 1)
	boxStyle.JustifyContent = layout.JustifyCenter
	box := w.Spawn(parent, scene.NodeBundle{Style: boxStyle, Background: bg})

	return w.Spawn(box, scene.TextBundle{
		Text: scene.Text{
			Value: text,
			Style: scene.TextStyle{Font: font, FontSize: size, Color: b.Theme.TextColor},
		},
		Style:      layout.DefaultStyle(),
		Background: bg,
	})
}

func ptr[T any](v T) *T {
	return &v
}
