package splot

import "fmt"

// Transform is a bidirectional affine mapping between a continuous domain
// rectangle and a discrete raster grid.
//
// Each axis divides its domain range into dimension-many cells of equal
// step; raster index i corresponds to the domain point at the lower edge
// of cell i. The raster-to-domain direction is exact, the domain-to-raster
// direction clamps and floors, so it is total but lossy near cell edges.
type Transform struct {
	width  int
	height int
	xrange Range
	yrange Range
	dx     float64
	dy     float64
}

// NewTransform creates a transform for a width x height raster over the
// given domain rectangle. Dimensions must be positive and both ranges
// non-degenerate; violations panic.
func NewTransform(width, height int, xrange, yrange Range) Transform {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("splot: transform dimensions must be positive, got %dx%d", width, height))
	}
	if xrange.Length() == 0 {
		panic("splot: degenerate x range")
	}
	if yrange.Length() == 0 {
		panic("splot: degenerate y range")
	}
	return Transform{
		width:  width,
		height: height,
		xrange: xrange,
		yrange: yrange,
		dx:     xrange.Length() / float64(width),
		dy:     yrange.Length() / float64(height),
	}
}

// Width returns the raster width in pixels.
func (t Transform) Width() int { return t.width }

// Height returns the raster height in pixels.
func (t Transform) Height() int { return t.height }

// StepX returns the domain extent of one raster cell along x.
func (t Transform) StepX() float64 { return t.dx }

// StepY returns the domain extent of one raster cell along y.
func (t Transform) StepY() float64 { return t.dy }

// RasterToDomain maps a raster cell to its domain sample point.
// Requires 0 <= rx < width and 0 <= ry < height; the result always lies
// within the domain rectangle.
func (t Transform) RasterToDomain(rx, ry int) (x, y float64) {
	if rx < 0 || rx >= t.width || ry < 0 || ry >= t.height {
		panic(fmt.Sprintf("splot: raster index (%d, %d) outside %dx%d", rx, ry, t.width, t.height))
	}
	x = t.xrange.Min + float64(rx)*t.dx
	y = t.yrange.Min + float64(ry)*t.dy
	return x, y
}

// DomainToRaster maps a domain point to the raster cell containing it.
// Any finite input is accepted: the point is clamped into the domain
// rectangle first and the resulting index is clamped into the raster, so
// the returned indices are always in bounds.
func (t Transform) DomainToRaster(x, y float64) (rx, ry int) {
	x = t.xrange.Clamp(x)
	y = t.yrange.Clamp(y)

	rx = int((x - t.xrange.Min) / t.dx)
	ry = int((y - t.yrange.Min) / t.dy)
	if rx > t.width-1 {
		rx = t.width - 1
	}
	if ry > t.height-1 {
		ry = t.height - 1
	}
	if rx < 0 {
		rx = 0
	}
	if ry < 0 {
		ry = 0
	}
	return rx, ry
}
