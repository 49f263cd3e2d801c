package splot

import (
	"fmt"
	"math"
)

// Palette is a non-empty ordered sequence of colors together with a rule
// for mapping a scalar value inside a known range to one of them.
type Palette struct {
	colors []Color
}

// NewPalette creates a palette from an explicit color sequence.
// At least one color is required.
func NewPalette(colors ...Color) Palette {
	if len(colors) == 0 {
		panic("splot: palette must contain at least one color")
	}
	p := Palette{colors: make([]Color, len(colors))}
	copy(p.colors, colors)
	return p
}

// Grayscale creates an n-step palette from black to white.
// n must be greater than 1.
func Grayscale(n int) Palette {
	return LinearGradient(n, Black, White)
}

// LinearGradient creates an n-step palette interpolating each channel
// linearly from start to end. n must be greater than 1.
func LinearGradient(n int, start, end Color) Palette {
	if n <= 1 {
		panic(fmt.Sprintf("splot: gradient needs at least 2 steps, got %d", n))
	}

	colors := make([]Color, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		colors[i] = Color{
			R: uint8(clamp255(float64(start.R) + (float64(end.R)-float64(start.R))*t)),
			G: uint8(clamp255(float64(start.G) + (float64(end.G)-float64(start.G))*t)),
			B: uint8(clamp255(float64(start.B) + (float64(end.B)-float64(start.B))*t)),
		}
	}
	return Palette{colors: colors}
}

// Len returns the number of colors in the palette.
func (p Palette) Len() int {
	return len(p.colors)
}

// At returns the i-th color of the palette.
func (p Palette) At(i int) Color {
	return p.colors[i]
}

// Colors returns a copy of the palette's color sequence.
func (p Palette) Colors() []Color {
	out := make([]Color, len(p.colors))
	copy(out, p.colors)
	return out
}

// Map assigns a color to the scalar z given the realized value range.
//
// The fractional position of z within the range is scaled by the palette
// length and floored to an index, which is then clamped to the palette.
// Values at or below r.Min map to the first color; values at or above
// r.Max map to the last. A degenerate range (Min == Max) always maps to
// the first color.
func (p Palette) Map(z float64, r Range) Color {
	if len(p.colors) == 0 {
		panic("splot: Map on empty palette")
	}

	depth := r.Max - r.Min
	if depth <= 0 {
		return p.colors[0]
	}

	dz := depth / float64(len(p.colors))
	idx := int(math.Floor((z - r.Min) / dz))
	if idx < 0 {
		idx = 0
	}
	if idx > len(p.colors)-1 {
		idx = len(p.colors) - 1
	}
	return p.colors[idx]
}

// Preset palettes, sampled from the matplotlib colormaps of the same names.
var (
	// Viridis is a perceptually uniform sequential palette.
	Viridis = NewPalette(
		RGB255(68, 1, 84),
		RGB255(72, 35, 116),
		RGB255(64, 67, 135),
		RGB255(52, 94, 141),
		RGB255(41, 120, 142),
		RGB255(32, 144, 140),
		RGB255(34, 167, 132),
		RGB255(68, 190, 112),
		RGB255(121, 209, 81),
		RGB255(189, 222, 38),
		RGB255(253, 231, 37),
	)

	// Plasma is a perceptually uniform sequential palette.
	Plasma = NewPalette(
		RGB255(13, 8, 135),
		RGB255(75, 3, 161),
		RGB255(125, 3, 168),
		RGB255(168, 34, 150),
		RGB255(203, 70, 121),
		RGB255(229, 107, 93),
		RGB255(248, 148, 65),
		RGB255(253, 195, 40),
		RGB255(240, 249, 33),
	)

	// Inferno is a perceptually uniform sequential palette.
	Inferno = NewPalette(
		RGB255(0, 0, 4),
		RGB255(40, 11, 84),
		RGB255(101, 21, 110),
		RGB255(159, 42, 99),
		RGB255(212, 72, 66),
		RGB255(245, 125, 21),
		RGB255(250, 193, 39),
		RGB255(252, 255, 164),
	)

	// Magma is a perceptually uniform sequential palette.
	Magma = NewPalette(
		RGB255(0, 0, 4),
		RGB255(28, 16, 68),
		RGB255(79, 18, 123),
		RGB255(129, 37, 129),
		RGB255(181, 54, 122),
		RGB255(229, 80, 100),
		RGB255(251, 135, 97),
		RGB255(254, 194, 135),
		RGB255(252, 253, 191),
	)
)
