package tui

import "testing"

func TestEscBuilder_SetStyle(t *testing.T) {
	type tc struct {
		style Style
		caps  Capabilities
		want  string
	}

	red := RGBColor(255, 0, 0)
	tests := map[string]tc{
		"default style": {
			style: NewStyle(),
			caps:  Capabilities{Colors: ColorTrue, TrueColor: true},
			want:  "\x1b[0m",
		},
		"bold true color": {
			style: NewStyle().Bold().Foreground(red),
			caps:  Capabilities{Colors: ColorTrue, TrueColor: true},
			want:  "\x1b[0;1;38;2;255;0;0m",
		},
		"rgb background on 256": {
			style: NewStyle().Background(red),
			caps:  Capabilities{Colors: Color256},
			want:  "\x1b[0;48;5;196m",
		},
		"rgb on 16 colors": {
			style: NewStyle().Foreground(red),
			caps:  Capabilities{Colors: Color16},
			want:  "\x1b[0;91m",
		},
		"basic ansi background": {
			style: NewStyle().Background(ANSIColor(4)),
			caps:  Capabilities{Colors: Color16},
			want:  "\x1b[0;44m",
		},
		"monochrome drops colors": {
			style: NewStyle().Foreground(red).Dim(),
			caps:  Capabilities{Colors: ColorNone},
			want:  "\x1b[0;2m",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := newEscBuilder(64)
			e.SetStyle(tt.style, tt.caps)
			if got := string(e.Bytes()); got != tt.want {
				t.Errorf("SetStyle = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEscBuilder_MoveTo(t *testing.T) {
	e := newEscBuilder(16)
	e.MoveTo(4, 2)
	if got := string(e.Bytes()); got != "\x1b[3;5H" {
		t.Errorf("MoveTo = %q, want ESC[3;5H", got)
	}
}

func TestDetectCapabilities(t *testing.T) {
	type tc struct {
		env  map[string]string
		want Capabilities
	}

	tests := map[string]tc{
		"colorterm truecolor": {
			env:  map[string]string{"COLORTERM": "truecolor"},
			want: Capabilities{Colors: ColorTrue, TrueColor: true, AltScreen: true},
		},
		"kitty": {
			env:  map[string]string{"KITTY_WINDOW_ID": "1"},
			want: Capabilities{Colors: ColorTrue, TrueColor: true, AltScreen: true},
		},
		"xterm 256": {
			env:  map[string]string{"TERM": "xterm-256color"},
			want: Capabilities{Colors: Color256, AltScreen: true},
		},
		"dumb": {
			env:  map[string]string{"TERM": "dumb"},
			want: Capabilities{Colors: ColorNone},
		},
		"no color": {
			env:  map[string]string{"NO_COLOR": "1", "COLORTERM": "truecolor"},
			want: Capabilities{Colors: ColorNone, AltScreen: true},
		},
		"empty environment": {
			env:  map[string]string{},
			want: Capabilities{Colors: Color16, AltScreen: true},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := detectCapabilities(func(k string) string { return tt.env[k] })
			if got != tt.want {
				t.Errorf("detectCapabilities = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseKeys(t *testing.T) {
	type tc struct {
		input []byte
		want  []KeyEvent
	}

	tests := map[string]tc{
		"letters": {
			input: []byte("qa"),
			want:  []KeyEvent{{Key: KeyRune, Rune: 'q'}, {Key: KeyRune, Rune: 'a'}},
		},
		"ctrl c": {
			input: []byte{0x03},
			want:  []KeyEvent{{Key: KeyCtrlC}},
		},
		"lone escape": {
			input: []byte{0x1b},
			want:  []KeyEvent{{Key: KeyEscape}},
		},
		"arrow sequence ignored": {
			input: []byte{0x1b, '[', 'A'},
			want:  nil,
		},
		"enter": {
			input: []byte{'\r'},
			want:  []KeyEvent{{Key: KeyEnter}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := ParseKeys(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseKeys = %+v, want %+v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("key %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
