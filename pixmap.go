package splot

import (
	"fmt"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Pixmap represents a rectangular RGB pixel buffer.
//
// Get and Set are strict: out-of-range coordinates panic. Callers that
// want silent clipping go through Canvas, which filters coordinates
// before they ever reach the buffer.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGB format, 3 bytes per pixel
}

// NewPixmap creates a new pixmap with the given dimensions, cleared to
// black. Dimensions must be positive.
func NewPixmap(width, height int) *Pixmap {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("splot: pixmap dimensions must be positive, got %dx%d", width, height))
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*3),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGB format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// checkBounds panics if (x, y) is outside the buffer.
func (p *Pixmap) checkBounds(x, y int) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		panic(fmt.Sprintf("splot: pixel (%d, %d) outside %dx%d buffer", x, y, p.width, p.height))
	}
}

// Set writes the color of a single pixel. Out-of-range coordinates panic.
func (p *Pixmap) Set(x, y int, c Color) {
	p.checkBounds(x, y)
	i := (y*p.width + x) * 3
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
}

// Get returns the color of a single pixel. Out-of-range coordinates panic.
func (p *Pixmap) Get(x, y int) Color {
	p.checkBounds(x, y)
	i := (y*p.width + x) * 3
	return Color{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2]}
}

// fillRow paints row y from x1 (inclusive) to x2 (exclusive).
// Coordinates must already be in bounds.
func (p *Pixmap) fillRow(x1, x2, y int, c Color) {
	i := (y*p.width + x1) * 3
	for x := x1; x < x2; x++ {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		i += 3
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c Color) {
	for i := 0; i < len(p.data); i += 3 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
	}
}

// ToImage converts the pixmap to an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	si := 0
	for di := 0; di < len(img.Pix); di += 4 {
		img.Pix[di+0] = p.data[si+0]
		img.Pix[di+1] = p.data[si+1]
		img.Pix[di+2] = p.data[si+2]
		img.Pix[di+3] = 255
		si += 3
	}
	return img
}

// FromImage creates a pixmap from an image, discarding alpha.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			pm.Set(x, y, FromColor(c))
		}
	}

	return pm
}

// Resize returns a new pixmap scaled to the given dimensions using
// bilinear interpolation. Dimensions must be positive.
func (p *Pixmap) Resize(width, height int) *Pixmap {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("splot: resize dimensions must be positive, got %dx%d", width, height))
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), p.ToImage(), p.Bounds(), xdraw.Src, nil)
	return FromImage(dst)
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.Get(x, y).NRGBA()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
