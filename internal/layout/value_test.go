package layout

import "testing"

func TestValue_Resolve(t *testing.T) {
	type tc struct {
		value     Value
		available int
		fallback  int
		expected  int
	}

	tests := map[string]tc{
		"auto uses fallback": {
			value:     Auto(),
			available: 100,
			fallback:  7,
			expected:  7,
		},
		"fixed ignores available": {
			value:     Fixed(12),
			available: 100,
			fallback:  7,
			expected:  12,
		},
		"percent of available": {
			value:     Percent(50),
			available: 80,
			fallback:  7,
			expected:  40,
		},
		"percent truncates": {
			value:     Percent(33),
			available: 10,
			expected:  3,
		},
		"zero value is auto": {
			value:    Value{},
			fallback: 3,
			expected: 3,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.value.Resolve(tt.available, tt.fallback); got != tt.expected {
				t.Errorf("Resolve(%d, %d) = %d, want %d", tt.available, tt.fallback, got, tt.expected)
			}
		})
	}
}

func TestRect_Inset(t *testing.T) {
	r := NewRect(2, 3, 10, 4)

	got := r.Inset(EdgeTRBL(1, 2, 1, 3))
	want := NewRect(5, 4, 5, 2)
	if got != want {
		t.Errorf("Inset = %+v, want %+v", got, want)
	}

	if got := r.Inset(EdgeAll(10)); got.Width != 0 || got.Height != 0 {
		t.Errorf("oversized inset = %+v, want zero size", got)
	}
}

func TestRect_Intersect(t *testing.T) {
	a := NewRect(0, 0, 10, 10)

	if got := a.Intersect(NewRect(5, 5, 10, 10)); got != NewRect(5, 5, 5, 5) {
		t.Errorf("overlap = %+v", got)
	}
	if got := a.Intersect(NewRect(10, 0, 5, 5)); !got.IsEmpty() {
		t.Errorf("touching rects intersect as %+v, want empty", got)
	}
}
