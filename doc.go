// Package splot rasterizes scalar functions of two variables onto a pixel
// buffer, mapping sampled values to colors through a palette.
//
// # Overview
//
// splot is a small, pure Go surface-plotting library. It renders "heat map"
// style images of f(x, y) over a rectangular domain and offers clipped
// primitive drawing (lines, rectangles, filled circles) on the same buffer.
// It is built for offline, diagnostic visualization rather than interactive
// rendering.
//
// # Quick Start
//
//	import "github.com/gogpu/splot"
//
//	s := splot.NewSurface(func(x, y float64) float64 {
//	    return math.Sin(x) * math.Sin(y)
//	}, splot.WithXRange(-10, 10), splot.WithYRange(-10, 10))
//
//	c := splot.NewCanvas(1024, 1024)
//	c.Plot(s, splot.Grayscale(256))
//	c.DrawRect(50, 50, 100, 100, splot.Green)
//
//	// Save to PNG (format chosen by extension; .bmp and .tiff also work)
//	if err := c.Pixmap().Save("surface.png"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Rendering model
//
// Plotting is a two-pass pipeline: a first full scan of the raster discovers
// the min/max of the sampled function, then a second scan colors every pixel
// through the palette using that realized range. The two passes are required
// for correctness, not speed: a palette cannot place a value until the whole
// range is known.
//
// # Coordinate System
//
// Raster coordinates follow standard computer graphics conventions:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Domain coordinates are continuous, inclusive intervals on both axes. The
// Transform type maps between the two.
//
// # Errors
//
// Misconfiguration (non-positive dimensions, empty palettes, degenerate
// domain ranges, color channels outside [0,1]) panics: these are caller bugs,
// not runtime conditions. Geometry that falls outside the canvas is silently
// clipped. Only I/O returns errors.
package splot

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
