// Package led implements the virtual LED state machine and the board
// that manages a collection of LEDs.
package led

import (
	"fmt"
	"strconv"
	"strings"
)

// dimAlpha is the alpha applied to the LED color during the blink trough.
const dimAlpha = 50

// Color is an 8-bit RGBA color. The color doubles as the on/off flag:
// an LED whose color is Transparent is off.
type Color struct {
	R, G, B, A uint8
}

// Predefined colors.
var (
	// Transparent is the off state.
	Transparent = Color{}
	// White is the default color of a freshly lit LED.
	White = Color{R: 255, G: 255, B: 255, A: 255}
)

// IsTransparent reports whether the color represents the off state.
func (c Color) IsTransparent() bool {
	return c.A == 0
}

// Dimmed returns the same color at blink-trough alpha.
func (c Color) Dimmed() Color {
	return Color{R: c.R, G: c.G, B: c.B, A: dimAlpha}
}

// Hex returns the color as "#RRGGBB". The alpha channel is not encoded;
// hex colors are only used for opaque configuration defaults.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHex parses a "#RRGGBB" string into an opaque Color.
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}
