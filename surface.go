package splot

// Func is a scalar function of two variables. It must be pure: callable
// any number of times and always returning the same value for the same
// point, because plotting evaluates it once per pixel per pass.
type Func func(x, y float64) float64

// Surface couples a scalar function with the domain rectangle it is
// plotted over.
type Surface struct {
	F      Func
	XRange Range
	YRange Range
}

// SurfaceOption configures a Surface during creation.
type SurfaceOption func(*Surface)

// WithXRange sets the domain interval along x.
func WithXRange(min, max float64) SurfaceOption {
	return func(s *Surface) {
		s.XRange = NewRange(min, max)
	}
}

// WithYRange sets the domain interval along y.
func WithYRange(min, max float64) SurfaceOption {
	return func(s *Surface) {
		s.YRange = NewRange(min, max)
	}
}

// NewSurface creates a surface over the default domain [-1, 1] x [-1, 1].
//
// Example:
//
//	s := splot.NewSurface(func(x, y float64) float64 {
//	    return x * y
//	}, splot.WithXRange(0, 4))
func NewSurface(f Func, opts ...SurfaceOption) *Surface {
	if f == nil {
		panic("splot: surface function must not be nil")
	}
	s := &Surface{
		F:      f,
		XRange: Range{Min: -1, Max: 1},
		YRange: Range{Min: -1, Max: 1},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Width returns the domain extent along x.
func (s *Surface) Width() float64 {
	return s.XRange.Length()
}

// Height returns the domain extent along y.
func (s *Surface) Height() float64 {
	return s.YRange.Length()
}
