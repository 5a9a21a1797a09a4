package tui

import (
	"os"
	"strings"
)

// ColorCapability describes the level of color support in a terminal.
type ColorCapability int

const (
	// ColorNone indicates a monochrome terminal with no color support.
	ColorNone ColorCapability = iota
	// Color16 indicates basic 16-color support (ANSI standard colors).
	Color16
	// Color256 indicates ANSI 256 palette support.
	Color256
	// ColorTrue indicates 24-bit true color (RGB) support.
	ColorTrue
)

// Capabilities describes what features the terminal supports.
type Capabilities struct {
	Colors    ColorCapability
	TrueColor bool
	AltScreen bool
}

// trueColorEnv lists variables whose presence identifies a terminal
// emulator known to support 24-bit color.
var trueColorEnv = []string{
	"WT_SESSION",       // Windows Terminal
	"ITERM_SESSION_ID", // iTerm2
	"KITTY_WINDOW_ID",  // Kitty
	"KONSOLE_VERSION",  // Konsole
	"VTE_VERSION",      // GNOME Terminal, Tilix, ...
}

// DetectCapabilities determines terminal capabilities from the environment.
// Returns conservative defaults when detection fails.
func DetectCapabilities() Capabilities {
	return detectCapabilities(os.Getenv)
}

func detectCapabilities(getenv func(string) string) Capabilities {
	caps := Capabilities{Colors: Color16, AltScreen: true}

	if getenv("NO_COLOR") != "" {
		caps.Colors = ColorNone
		return caps
	}

	colorterm := strings.ToLower(getenv("COLORTERM"))
	if colorterm == "truecolor" || colorterm == "24bit" {
		return Capabilities{Colors: ColorTrue, TrueColor: true, AltScreen: true}
	}
	for _, key := range trueColorEnv {
		if getenv(key) != "" {
			return Capabilities{Colors: ColorTrue, TrueColor: true, AltScreen: true}
		}
	}

	term := strings.ToLower(getenv("TERM"))
	switch {
	case term == "dumb":
		return Capabilities{Colors: ColorNone}
	case strings.Contains(term, "truecolor"), strings.Contains(term, "direct"):
		caps.Colors = ColorTrue
		caps.TrueColor = true
	case strings.Contains(term, "256color"):
		caps.Colors = Color256
	}
	return caps
}
