package showcase

import "github.com/grindlemire/layout-showcase/internal/tui"

// Font sizes of the labels. Sizes of 14 and above are drawn bold.
const (
	HeaderFontSize  = 14.0
	AlignFontSize   = 14.0
	JustifyFontSize = 12.0
)

// Theme holds the grid geometry, in terminal cells, and colors.
type Theme struct {
	ColumnWidth int
	RowHeight   int
	Gap         int
	Padding     int

	AlignColor      tui.Color
	JustifyColor    tui.Color
	CellColor       tui.Color
	BackgroundColor tui.Color
	ClearColor      tui.Color
	TextColor       tui.Color
}

// DefaultTheme returns the stock look: wide enough columns for the longest
// name plus label padding, and rows tall enough for the column justify
// modes to be told apart.
func DefaultTheme() Theme {
	return Theme{
		ColumnWidth: 14,
		RowHeight:   6,
		Gap:         1,
		Padding:     1,

		AlignColor:      tui.RGBFloat(1, 0.066, 0.349),
		JustifyColor:    tui.RGBFloat(0.102, 0.522, 1),
		CellColor:       tui.DarkGray,
		BackgroundColor: tui.Black,
		ClearColor:      tui.Gray,
		TextColor:       tui.Black,
	}
}
