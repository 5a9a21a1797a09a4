package tui

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ColorType distinguishes between color representations.
type ColorType uint8

const (
	// ColorDefault represents the terminal's default color (no color set).
	ColorDefault ColorType = iota
	// ColorANSI represents an ANSI 256 palette color (0-255).
	ColorANSI
	// ColorRGB represents a true color (24-bit RGB).
	ColorRGB
)

// ErrInvalidHex is returned by HexColor for malformed input.
var ErrInvalidHex = errors.New("invalid hex color")

// Color represents a terminal color with support for default, ANSI 256, and true color.
// Zero value represents the terminal default color.
type Color struct {
	typ ColorType
	// For ANSI: r holds the palette index (0-255)
	// For RGB: r, g, b hold the color components
	r, g, b uint8
}

// DefaultColor returns a Color representing the terminal's default color.
func DefaultColor() Color {
	return Color{typ: ColorDefault}
}

// ANSIColor returns a Color from the ANSI 256 palette.
func ANSIColor(index uint8) Color {
	return Color{typ: ColorANSI, r: index}
}

// RGBColor returns a true color (24-bit RGB) Color.
func RGBColor(r, g, b uint8) Color {
	return Color{typ: ColorRGB, r: r, g: g, b: b}
}

// RGBFloat returns a true color from components on a 0-1 scale.
// Components outside the range are clamped.
func RGBFloat(r, g, b float64) Color {
	return RGBColor(unitToByte(r), unitToByte(g), unitToByte(b))
}

func unitToByte(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// HexColor parses a hex color string and returns a Color.
// Supported formats: "#RRGGBB" and "#RGB".
func HexColor(hex string) (Color, error) {
	digits := strings.TrimPrefix(hex, "#")

	var nibbles []uint8
	for i := 0; i < len(digits); i++ {
		n, ok := hexNibble(digits[i])
		if !ok {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
		}
		nibbles = append(nibbles, n)
	}

	switch len(nibbles) {
	case 6:
		return RGBColor(nibbles[0]<<4|nibbles[1], nibbles[2]<<4|nibbles[3], nibbles[4]<<4|nibbles[5]), nil
	case 3:
		// #RGB expands each nibble: 0xF -> 0xFF
		return RGBColor(nibbles[0]*0x11, nibbles[1]*0x11, nibbles[2]*0x11), nil
	default:
		return Color{}, fmt.Errorf("%w: %q: expected #RGB or #RRGGBB", ErrInvalidHex, hex)
	}
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// Type returns the ColorType of this color.
func (c Color) Type() ColorType {
	return c.typ
}

// IsDefault returns true if this is the terminal's default color.
func (c Color) IsDefault() bool {
	return c.typ == ColorDefault
}

// ANSI returns the ANSI palette index.
// Panics if the color is not an ANSI color.
func (c Color) ANSI() uint8 {
	if c.typ != ColorANSI {
		panic("Color.ANSI() called on non-ANSI color")
	}
	return c.r
}

// RGB returns the red, green, and blue components.
// Panics if the color is not an RGB color.
func (c Color) RGB() (r, g, b uint8) {
	if c.typ != ColorRGB {
		panic("Color.RGB() called on non-RGB color")
	}
	return c.r, c.g, c.b
}

// Equal returns true if both colors are identical.
func (c Color) Equal(other Color) bool {
	return c == other
}

// String formats the color for logs and scene dumps.
func (c Color) String() string {
	switch c.typ {
	case ColorANSI:
		return fmt.Sprintf("ansi(%d)", c.r)
	case ColorRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	default:
		return "default"
	}
}

// ToANSI approximates an RGB color to the nearest ANSI 256 palette entry.
// Uses the 6x6x6 color cube (indices 16-231) plus grayscale (232-255).
// Returns the color unchanged if it's already ANSI or default.
func (c Color) ToANSI() Color {
	if c.typ != ColorRGB {
		return c
	}

	r, g, b := c.r, c.g, c.b

	if r == g && g == b {
		if r < 8 {
			return ANSIColor(16) // Black in the color cube is closer
		}
		if r > 248 {
			return ANSIColor(231) // White in the color cube is closer
		}
		return ANSIColor(uint8(232 + (int(r)-8)*24/240))
	}

	ri := int(r) * 5 / 255
	gi := int(g) * 5 / 255
	bi := int(b) * 5 / 255
	return ANSIColor(uint8(16 + 36*ri + 6*gi + bi))
}

// Palette used by the showcase scene.
var (
	Black    = RGBColor(0, 0, 0)
	White    = RGBColor(255, 255, 255)
	DarkGray = RGBFloat(0.25, 0.25, 0.25)
	Gray     = RGBFloat(0.4, 0.4, 0.4)
)
