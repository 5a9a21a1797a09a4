package showcase

import (
	"fmt"

	"github.com/grindlemire/layout-showcase/internal/layout"
)

// Alignment is a cross-axis placement policy shown in one grid column.
type Alignment uint8

const (
	AlignDefault Alignment = iota
	AlignBaseline
	AlignStart
	AlignFlexStart
	AlignCenter
	AlignFlexEnd
	AlignEnd
	AlignStretch
)

var alignmentNames = [...]string{
	AlignDefault:   "Default",
	AlignBaseline:  "Baseline",
	AlignStart:     "Start",
	AlignFlexStart: "FlexStart",
	AlignCenter:    "Center",
	AlignFlexEnd:   "FlexEnd",
	AlignEnd:       "End",
	AlignStretch:   "Stretch",
}

// Alignments returns every alignment in declaration order.
func Alignments() []Alignment {
	out := make([]Alignment, len(alignmentNames))
	for i := range out {
		out[i] = Alignment(i)
	}
	return out
}

func (a Alignment) String() string {
	if int(a) < len(alignmentNames) {
		return alignmentNames[a]
	}
	return fmt.Sprintf("Alignment(%d)", a)
}

// Layout returns the engine value for a.
func (a Alignment) Layout() layout.Align {
	switch a {
	case AlignBaseline:
		return layout.AlignBaseline
	case AlignStart:
		return layout.AlignStart
	case AlignFlexStart:
		return layout.AlignFlexStart
	case AlignCenter:
		return layout.AlignCenter
	case AlignFlexEnd:
		return layout.AlignFlexEnd
	case AlignEnd:
		return layout.AlignEnd
	case AlignStretch:
		return layout.AlignStretch
	default:
		return layout.AlignDefault
	}
}

// Justification is a main-axis distribution policy shown in one grid row.
type Justification uint8

const (
	JustifyDefault Justification = iota
	JustifyStart
	JustifyFlexStart
	JustifyCenter
	JustifyFlexEnd
	JustifyEnd
	JustifySpaceEvenly
	JustifySpaceAround
	JustifySpaceBetween
)

var justificationNames = [...]string{
	JustifyDefault:      "Default",
	JustifyStart:        "Start",
	JustifyFlexStart:    "FlexStart",
	JustifyCenter:       "Center",
	JustifyFlexEnd:      "FlexEnd",
	JustifyEnd:          "End",
	JustifySpaceEvenly:  "SpaceEvenly",
	JustifySpaceAround:  "SpaceAround",
	JustifySpaceBetween: "SpaceBetween",
}

// Justifications returns every justification in declaration order.
func Justifications() []Justification {
	out := make([]Justification, len(justificationNames))
	for i := range out {
		out[i] = Justification(i)
	}
	return out
}

func (j Justification) String() string {
	if int(j) < len(justificationNames) {
		return justificationNames[j]
	}
	return fmt.Sprintf("Justification(%d)", j)
}

// Layout returns the engine value for j.
func (j Justification) Layout() layout.Justify {
	switch j {
	case JustifyStart:
		return layout.JustifyStart
	case JustifyFlexStart:
		return layout.JustifyFlexStart
	case JustifyCenter:
		return layout.JustifyCenter
	case JustifyFlexEnd:
		return layout.JustifyFlexEnd
	case JustifyEnd:
		return layout.JustifyEnd
	case JustifySpaceEvenly:
		return layout.JustifySpaceEvenly
	case JustifySpaceAround:
		return layout.JustifySpaceAround
	case JustifySpaceBetween:
		return layout.JustifySpaceBetween
	default:
		return layout.JustifyDefault
	}
}
