package splot

import (
	"log/slog"

	"github.com/gogpu/splot/internal/parallel"
)

// makeTransform derives the raster-to-domain mapping for plotting the
// given surface onto this canvas.
func (c *Canvas) makeTransform(s *Surface) Transform {
	return NewTransform(c.Width(), c.Height(), s.XRange, s.YRange)
}

// SampleRange scans the full raster once and returns the min/max of the
// surface function over the sample grid. The running extremes start from
// cell (0, 0), which always exists because canvas dimensions are positive.
func (c *Canvas) SampleRange(s *Surface) Range {
	t := c.makeTransform(s)
	return sampleRows(s, t, 0, c.Height())
}

// sampleRows scans rows [y0, y1) and returns the min/max of the surface
// function over them.
func sampleRows(s *Surface, t Transform, y0, y1 int) Range {
	x, y := t.RasterToDomain(0, y0)
	z := s.F(x, y)
	r := Range{Min: z, Max: z}

	for py := y0; py < y1; py++ {
		for px := 0; px < t.Width(); px++ {
			x, y := t.RasterToDomain(px, py)
			z := s.F(x, y)
			if z < r.Min {
				r.Min = z
			}
			if z > r.Max {
				r.Max = z
			}
		}
	}
	return r
}

// colorRows writes palette colors for rows [y0, y1) using the realized
// value range from the sampling pass.
func (c *Canvas) colorRows(s *Surface, t Transform, p Palette, zrange Range, y0, y1 int) {
	for py := y0; py < y1; py++ {
		for px := 0; px < t.Width(); px++ {
			x, y := t.RasterToDomain(px, py)
			c.pixmap.Set(px, py, p.Map(s.F(x, y), zrange))
		}
	}
}

// Plot rasterizes the surface onto the canvas through the palette.
//
// Two passes run over the raster: the first discovers the min/max of the
// sampled function, the second maps every sample into a color using that
// range. Every pixel of the backing buffer is written exactly once.
// Returns the canvas for chaining.
func (c *Canvas) Plot(s *Surface, p Palette) *Canvas {
	if p.Len() == 0 {
		panic("splot: Plot with empty palette")
	}

	t := c.makeTransform(s)
	zrange := c.SampleRange(s)
	Logger().Debug("splot: plotting surface",
		slog.Int("width", c.Width()),
		slog.Int("height", c.Height()),
		slog.Float64("zmin", zrange.Min),
		slog.Float64("zmax", zrange.Max),
	)

	c.colorRows(s, t, p, zrange, 0, c.Height())
	return c
}

// PlotParallel is Plot with the raster rows split across a worker pool.
//
// The sampling pass fully completes before any coloring write begins, and
// each row is colored by exactly one worker, so the output is identical
// to Plot for a pure surface function. workers <= 0 uses GOMAXPROCS.
func (c *Canvas) PlotParallel(s *Surface, p Palette, workers int) *Canvas {
	if p.Len() == 0 {
		panic("splot: PlotParallel with empty palette")
	}

	pool := parallel.NewWorkerPool(workers)
	defer pool.Close()

	t := c.makeTransform(s)
	bands := splitRows(c.Height(), pool.Workers())

	// Pass 1: per-band extremes, merged after the pool drains.
	partial := make([]Range, len(bands))
	sample := make([]func(), len(bands))
	for i, b := range bands {
		i, b := i, b
		sample[i] = func() {
			partial[i] = sampleRows(s, t, b.y0, b.y1)
		}
	}
	pool.ExecuteAll(sample)

	zrange := partial[0]
	for _, r := range partial[1:] {
		if r.Min < zrange.Min {
			zrange.Min = r.Min
		}
		if r.Max > zrange.Max {
			zrange.Max = r.Max
		}
	}

	Logger().Debug("splot: plotting surface in parallel",
		slog.Int("workers", pool.Workers()),
		slog.Int("bands", len(bands)),
		slog.Float64("zmin", zrange.Min),
		slog.Float64("zmax", zrange.Max),
	)

	// Pass 2 starts only after every sampling task has finished:
	// ExecuteAll blocks until the whole pass is done.
	color := make([]func(), len(bands))
	for i, b := range bands {
		b := b
		color[i] = func() {
			c.colorRows(s, t, p, zrange, b.y0, b.y1)
		}
	}
	pool.ExecuteAll(color)
	return c
}

// band is a half-open row interval [y0, y1).
type band struct {
	y0, y1 int
}

// splitRows divides height rows into at most n contiguous bands.
func splitRows(height, n int) []band {
	if n > height {
		n = height
	}
	bands := make([]band, 0, n)
	per := height / n
	extra := height % n

	y := 0
	for i := 0; i < n; i++ {
		h := per
		if i < extra {
			h++
		}
		bands = append(bands, band{y0: y, y1: y + h})
		y += h
	}
	return bands
}
