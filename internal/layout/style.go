package layout

// Display selects the layout algorithm used for a node's children.
type Display uint8

const (
	DisplayFlex Display = iota // Children laid out along a single axis
	DisplayGrid                // Children placed into grid tracks
	DisplayNone                // Node and subtree take no space
)

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	Row    Direction = iota // Children laid out left-to-right
	Column                  // Children laid out top-to-bottom
)

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyDefault      Justify = iota // Container default (start)
	JustifyStart                       // Pack at start
	JustifyFlexStart                   // Pack at the flex start (start without reversal)
	JustifyCenter                      // Center children
	JustifyFlexEnd                     // Pack at the flex end
	JustifyEnd                         // Pack at end
	JustifySpaceEvenly                 // Equal space between and at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceBetween                // Even space between, none at edges
)

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignDefault   Align = iota // Container default (stretch)
	AlignBaseline               // Line up first baselines (start in columns)
	AlignStart                  // Align to start of cross axis
	AlignFlexStart              // Align to the flex start
	AlignCenter                 // Center on cross axis
	AlignFlexEnd                // Align to the flex end
	AlignEnd                    // Align to end of cross axis
	AlignStretch                // Stretch to fill cross axis
)

// JustifyItems positions grid items along the inline (horizontal) axis of
// their grid area.
type JustifyItems uint8

const (
	JustifyItemsDefault  JustifyItems = iota // Stretch
	JustifyItemsStart                        // Pack at the area start
	JustifyItemsEnd                          // Pack at the area end
	JustifyItemsCenter                       // Center in the area
	JustifyItemsStretch                      // Fill the area
	JustifyItemsBaseline                     // Start, for single-line content
)

// Style contains all layout properties for a node.
type Style struct {
	Display Display

	// Sizing
	Width     Value
	Height    Value
	MinWidth  Value
	MinHeight Value
	MaxWidth  Value
	MaxHeight Value

	// Flex container properties
	Direction      Direction
	JustifyContent Justify
	AlignItems     Align
	Gap            int // Space between children; grids use it for rows and columns

	// Flex item properties
	FlexGrow   float64 // How much to grow relative to siblings
	FlexShrink float64 // How much to shrink relative to siblings (default 1)
	AlignSelf  *Align  // Override parent's AlignItems (nil = inherit)

	// Grid container properties
	GridTemplateColumns []Track
	GridTemplateRows    []Track
	JustifyItems        JustifyItems

	// Grid item properties
	GridColumn Placement
	GridRow    Placement

	// Spacing
	Padding Edges
	Margin  Edges
}

// DefaultStyle returns a Style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		Width:      Auto(),
		Height:     Auto(),
		MinWidth:   Fixed(0),
		MinHeight:  Fixed(0),
		MaxWidth:   Auto(), // No maximum
		MaxHeight:  Auto(), // No maximum
		Direction:  Row,
		FlexShrink: 1.0,
	}
}

// effectiveAlign returns the alignment that applies to an item.
func effectiveAlign(parent Align, self *Align) Align {
	if self != nil && *self != AlignDefault {
		return *self
	}
	return parent
}

// stretches reports whether the alignment fills the cross axis for
// auto-sized items.
func (a Align) stretches() bool {
	return a == AlignDefault || a == AlignStretch
}

// offset returns the position of an item of size itemSize inside space.
// Overflowing items stay at the start.
func (a Align) offset(space, itemSize int) int {
	free := space - itemSize
	if free <= 0 {
		return 0
	}
	switch a {
	case AlignEnd, AlignFlexEnd:
		return free
	case AlignCenter:
		return free / 2
	default: // Default, Baseline, Start, FlexStart, Stretch
		return 0
	}
}

func (j JustifyItems) stretches() bool {
	return j == JustifyItemsDefault || j == JustifyItemsStretch
}

func (j JustifyItems) offset(space, itemSize int) int {
	free := space - itemSize
	if free <= 0 {
		return 0
	}
	switch j {
	case JustifyItemsEnd:
		return free
	case JustifyItemsCenter:
		return free / 2
	default:
		return 0
	}
}

// justifyOffset returns the initial offset for positioning children
// based on the justify mode and available free space.
func justifyOffset(justify Justify, freeSpace, itemCount int) int {
	if freeSpace <= 0 || itemCount == 0 {
		return 0
	}

	switch justify {
	case JustifyEnd, JustifyFlexEnd:
		return freeSpace
	case JustifyCenter:
		return freeSpace / 2
	case JustifySpaceAround:
		return freeSpace / (itemCount * 2)
	case JustifySpaceEvenly:
		return freeSpace / (itemCount + 1)
	default: // Default, Start, FlexStart, SpaceBetween
		return 0
	}
}

// justifySpacing returns the extra spacing between children
// based on the justify mode and available free space.
func justifySpacing(justify Justify, freeSpace, itemCount int) int {
	if freeSpace <= 0 || itemCount <= 1 {
		return 0
	}

	switch justify {
	case JustifySpaceBetween:
		return freeSpace / (itemCount - 1)
	case JustifySpaceAround:
		return freeSpace / itemCount
	case JustifySpaceEvenly:
		return freeSpace / (itemCount + 1)
	default:
		return 0
	}
}
