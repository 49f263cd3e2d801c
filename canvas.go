package splot

import "math"

// Canvas wraps a Pixmap and exposes surface plotting plus clipped
// primitive drawing.
//
// Every primitive accepts arbitrary integer coordinates: geometry that
// falls partly or wholly outside the buffer is silently clipped, never an
// error and never a panic. The underlying Pixmap stays strict; Canvas
// filters coordinates before touching it.
type Canvas struct {
	pixmap *Pixmap
}

// CanvasOption configures a Canvas during creation.
type CanvasOption func(*Canvas)

// WithPixmap sets a pre-existing pixmap as the canvas backing buffer.
// The pixmap's dimensions override the ones given to NewCanvas.
func WithPixmap(pm *Pixmap) CanvasOption {
	return func(c *Canvas) {
		c.pixmap = pm
	}
}

// NewCanvas creates a canvas over a fresh width x height pixmap.
// Dimensions must be positive.
func NewCanvas(width, height int, opts ...CanvasOption) *Canvas {
	c := &Canvas{}
	for _, opt := range opts {
		opt(c)
	}
	if c.pixmap == nil {
		c.pixmap = NewPixmap(width, height)
	}
	return c
}

// Pixmap returns the canvas backing buffer, for persistence or direct
// pixel access.
func (c *Canvas) Pixmap() *Pixmap {
	return c.pixmap
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.pixmap.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.pixmap.height
}

func (c *Canvas) xVisible(x int) bool {
	return x >= 0 && x < c.pixmap.width
}

func (c *Canvas) yVisible(y int) bool {
	return y >= 0 && y < c.pixmap.height
}

// DrawPixel paints a single pixel. Out-of-range coordinates are ignored.
func (c *Canvas) DrawPixel(x, y int, color Color) {
	if c.xVisible(x) && c.yVisible(y) {
		c.pixmap.Set(x, y, color)
	}
}

// DrawHLine paints a horizontal run of w pixels starting at (x, y).
// A y outside the buffer is a no-op; the x extent is clipped to the
// buffer width.
func (c *Canvas) DrawHLine(x, y, w int, color Color) {
	if !c.yVisible(y) {
		return
	}
	x2 := x + w
	if x < 0 {
		x = 0
	}
	if x2 > c.pixmap.width {
		x2 = c.pixmap.width
	}
	if x >= x2 {
		return
	}
	c.pixmap.fillRow(x, x2, y, color)
}

// DrawHSpan is the signed-start variant of DrawHLine: the run may begin
// at a negative x, in which case the off-canvas prefix is dropped and the
// remainder drawn from column 0. A span whose visible part is empty draws
// nothing.
func (c *Canvas) DrawHSpan(x, y, w int, color Color) {
	if w <= 0 {
		return
	}
	if x+w <= 0 {
		return
	}
	if x < 0 {
		w += x
		x = 0
	}
	c.DrawHLine(x, y, w, color)
}

// DrawVLine paints a vertical run from (x, y) through (x, y+h), endpoint
// included. An x outside the buffer is a no-op; the y extent is clipped
// to the buffer height.
func (c *Canvas) DrawVLine(x, y, h int, color Color) {
	if !c.xVisible(x) {
		return
	}
	y2 := y + h
	if y < 0 {
		y = 0
	}
	if y2 > c.pixmap.height-1 {
		y2 = c.pixmap.height - 1
	}
	for yi := y; yi <= y2; yi++ {
		c.pixmap.Set(x, yi, color)
	}
}

// DrawRect paints the outline of a w x h rectangle with its top-left
// corner at (x, y). Each edge is clipped independently.
func (c *Canvas) DrawRect(x, y, w, h int, color Color) {
	c.DrawHLine(x, y, w, color)
	c.DrawHLine(x, y+h, w, color)
	c.DrawVLine(x, y, h, color)
	c.DrawVLine(x+w, y, h, color)
}

// DrawSquare paints the outline of a square with side d and its top-left
// corner at (x, y).
func (c *Canvas) DrawSquare(x, y, d int, color Color) {
	c.DrawRect(x, y, d, d, color)
}

// DrawFilledCircle paints a filled disk of the given radius centered at
// (cx, cy), using horizontal span filling. Circles partially off-canvas
// render their visible portion.
func (c *Canvas) DrawFilledCircle(cx, cy, r int, color Color) {
	if r < 0 {
		return
	}
	c.DrawHSpan(cx-r, cy, 2*r+1, color)

	for i := 1; i <= r; i++ {
		w := int(math.Sqrt(float64(r*r - i*i)))
		c.DrawHSpan(cx-w, cy-i, 2*w+1, color)
		c.DrawHSpan(cx-w, cy+i, 2*w+1, color)
	}
}
