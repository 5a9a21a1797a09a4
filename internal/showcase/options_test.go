package showcase

import (
	"testing"

	"github.com/grindlemire/layout-showcase/internal/layout"
)

func TestAlignments(t *testing.T) {
	want := []string{"Default", "Baseline", "Start", "FlexStart", "Center", "FlexEnd", "End", "Stretch"}
	got := Alignments()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, a := range got {
		if a.String() != want[i] {
			t.Errorf("Alignments()[%d] = %q, want %q", i, a, want[i])
		}
	}
}

func TestJustifications(t *testing.T) {
	want := []string{"Default", "Start", "FlexStart", "Center", "FlexEnd", "End", "SpaceEvenly", "SpaceAround", "SpaceBetween"}
	got := Justifications()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, j := range got {
		if j.String() != want[i] {
			t.Errorf("Justifications()[%d] = %q, want %q", i, j, want[i])
		}
	}
}

func TestLayoutMapping(t *testing.T) {
	type tc struct {
		align Alignment
		want  layout.Align
	}

	tests := map[string]tc{
		"default":  {align: AlignDefault, want: layout.AlignDefault},
		"baseline": {align: AlignBaseline, want: layout.AlignBaseline},
		"center":   {align: AlignCenter, want: layout.AlignCenter},
		"stretch":  {align: AlignStretch, want: layout.AlignStretch},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.align.Layout(); got != tt.want {
				t.Errorf("Layout() = %v, want %v", got, tt.want)
			}
		})
	}

	if JustifySpaceAround.Layout() != layout.JustifySpaceAround {
		t.Errorf("SpaceAround maps to %v", JustifySpaceAround.Layout())
	}
	if got := Alignment(42).String(); got != "Alignment(42)" {
		t.Errorf("out of range String() = %q", got)
	}
}
