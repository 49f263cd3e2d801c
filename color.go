package splot

import (
	"fmt"
	"image/color"
)

// Color represents an opaque RGB color with 8-bit channels.
// It is an immutable value type.
type Color struct {
	R, G, B uint8
}

// RGB creates a color from normalized float components in [0, 1].
// Components outside that range are a caller bug and panic.
func RGB(r, g, b float64) Color {
	checkChannel("r", r)
	checkChannel("g", g)
	checkChannel("b", b)
	return Color{
		R: uint8(r * 255),
		G: uint8(g * 255),
		B: uint8(b * 255),
	}
}

// checkChannel validates a normalized channel value.
func checkChannel(name string, v float64) {
	if v < 0 || v > 1 {
		panic(fmt.Sprintf("splot: color channel %s = %v, must be in [0, 1]", name, v))
	}
}

// RGB255 creates a color from raw byte components.
func RGB255(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// FromColor converts a standard color.Color to Color, discarding alpha.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// NRGBA converts the color to the standard color.Color interface.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Lerp performs linear interpolation between two colors.
// t is clamped to [0, 1].
func (c Color) Lerp(other Color, t float64) Color {
	t = clamp01(t)
	return Color{
		R: uint8(clamp255(float64(c.R) + (float64(other.R)-float64(c.R))*t)),
		G: uint8(clamp255(float64(c.G) + (float64(other.G)-float64(c.G))*t)),
		B: uint8(clamp255(float64(c.B) + (float64(other.B)-float64(c.B))*t)),
	}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB" and "RRGGBB", with an optional leading '#'.
// Malformed strings return Black.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	default:
		return Black
	}

	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Common colors
var (
	Black   = RGB255(0, 0, 0)
	White   = RGB255(255, 255, 255)
	Red     = RGB255(255, 0, 0)
	Green   = RGB255(0, 255, 0)
	Blue    = RGB255(0, 0, 255)
	Yellow  = RGB255(255, 255, 0)
	Cyan    = RGB255(0, 255, 255)
	Magenta = RGB255(255, 0, 255)
)
