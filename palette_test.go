package splot

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestNewPalette verifies construction and the non-empty contract.
func TestNewPalette(t *testing.T) {
	p := NewPalette(Red, Green, Blue)
	if p.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", p.Len())
	}
	want := []Color{Red, Green, Blue}
	if diff := cmp.Diff(want, p.Colors()); diff != "" {
		t.Errorf("Colors() mismatch (-want +got):\n%s", diff)
	}

	defer func() {
		if recover() == nil {
			t.Error("NewPalette() with no colors did not panic")
		}
	}()
	NewPalette()
}

// TestLinearGradient verifies endpoints and per-channel interpolation.
func TestLinearGradient(t *testing.T) {
	p := LinearGradient(6, Black, White)

	if p.At(0) != Black {
		t.Errorf("first color = %v, want black", p.At(0))
	}
	if p.At(5) != White {
		t.Errorf("last color = %v, want white", p.At(5))
	}

	// 255 / 5 divides evenly: every step is exactly 51 gray levels.
	for i := 0; i < 6; i++ {
		want := uint8(51 * i)
		c := p.At(i)
		if c.R != want || c.G != want || c.B != want {
			t.Errorf("color %d = %v, want gray %d", i, c, want)
		}
	}
}

// TestLinearGradient_Monotonic verifies channels never decrease for an
// ascending gradient, at sizes where steps do not divide evenly.
func TestLinearGradient_Monotonic(t *testing.T) {
	for _, n := range []int{2, 3, 7, 100, 256} {
		p := LinearGradient(n, Black, White)
		prev := p.At(0)
		for i := 1; i < n; i++ {
			c := p.At(i)
			if c.R < prev.R || c.G < prev.G || c.B < prev.B {
				t.Errorf("n=%d: color %d (%v) decreases below %v", n, i, c, prev)
			}
			prev = c
		}
	}
}

// TestLinearGradient_Descending verifies gradients can run high to low.
func TestLinearGradient_Descending(t *testing.T) {
	p := LinearGradient(3, White, Black)
	if p.At(0) != White || p.At(2) != Black {
		t.Errorf("descending gradient endpoints = %v, %v", p.At(0), p.At(2))
	}
	if mid := p.At(1); mid.R != 127 {
		t.Errorf("descending gradient midpoint = %v, want gray 127", mid)
	}
}

// TestLinearGradient_TooFewSteps verifies the n > 1 contract.
func TestLinearGradient_TooFewSteps(t *testing.T) {
	for _, n := range []int{1, 0, -5} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("LinearGradient(%d, ...) did not panic", n)
				}
			}()
			LinearGradient(n, Black, White)
		}()
	}
}

// TestGrayscale verifies Grayscale is the black-to-white gradient.
func TestGrayscale(t *testing.T) {
	g := Grayscale(16)
	lg := LinearGradient(16, Black, White)
	if diff := cmp.Diff(lg.Colors(), g.Colors()); diff != "" {
		t.Errorf("Grayscale(16) != LinearGradient(16, black, white) (-want +got):\n%s", diff)
	}
}

// TestPaletteMap verifies the floor-index mapping law.
func TestPaletteMap(t *testing.T) {
	p := NewPalette(Red, Green, Blue, White)
	r := Range{Min: 0, Max: 4}

	// Buckets of width 1: [0,1) red, [1,2) green, [2,3) blue, [3,4] white.
	// Values outside the range clamp to the end colors.
	tests := []struct {
		z    float64
		want Color
	}{
		{0, Red},
		{0.99, Red},
		{1, Green},
		{2.5, Blue},
		{3.999, White},
		{4, White},
		{-10, Red},
		{100, White},
	}

	for _, tt := range tests {
		if got := p.Map(tt.z, r); got != tt.want {
			t.Errorf("Map(%v, %v) = %v, want %v", tt.z, r, got, tt.want)
		}
	}
}

// TestPaletteMap_Endpoints verifies the min/max law for assorted palettes.
func TestPaletteMap_Endpoints(t *testing.T) {
	palettes := []Palette{
		NewPalette(Red),
		NewPalette(Red, Blue),
		Grayscale(7),
		LinearGradient(256, Black, Red),
		Viridis,
	}
	ranges := []Range{
		{Min: 0, Max: 1},
		{Min: -5, Max: 5},
		{Min: 1e-9, Max: 2e-9},
		{Min: -100, Max: -99},
	}

	for _, p := range palettes {
		for _, r := range ranges {
			if got := p.Map(r.Min, r); got != p.At(0) {
				t.Errorf("Map(min=%v, %v) = %v, want first color %v", r.Min, r, got, p.At(0))
			}
			if got := p.Map(r.Max, r); got != p.At(p.Len()-1) {
				t.Errorf("Map(max=%v, %v) = %v, want last color %v", r.Max, r, got, p.At(p.Len()-1))
			}
		}
	}
}

// TestPaletteMap_DegenerateRange verifies the zero-width fallback: always
// the first color, never a division by zero.
func TestPaletteMap_DegenerateRange(t *testing.T) {
	palettes := []Palette{
		NewPalette(Green),
		Grayscale(2),
		Viridis,
	}
	for _, p := range palettes {
		for _, m := range []float64{0, -3.5, 1e17} {
			r := Range{Min: m, Max: m}
			if got := p.Map(m, r); got != p.At(0) {
				t.Errorf("Map(%v, degenerate %v) = %v, want first color %v", m, r, got, p.At(0))
			}
		}
	}
}

// TestPresetPalettes verifies the presets are usable as-is.
func TestPresetPalettes(t *testing.T) {
	presets := map[string]Palette{
		"Viridis": Viridis,
		"Plasma":  Plasma,
		"Inferno": Inferno,
		"Magma":   Magma,
	}
	for name, p := range presets {
		if p.Len() < 2 {
			t.Errorf("%s has %d colors, want at least 2", name, p.Len())
		}
		// Mapping over a simple range must stay inside the palette.
		r := Range{Min: 0, Max: 1}
		for _, z := range []float64{0, 0.25, 0.5, 0.75, 1} {
			p.Map(z, r)
		}
	}
}
