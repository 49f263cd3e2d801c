package splot

// Range is an inclusive [Min, Max] interval of scalar values.
// Min <= Max must hold; degenerate ranges (Min == Max) are legal.
type Range struct {
	Min, Max float64
}

// NewRange creates a range, swapping the endpoints if given out of order.
func NewRange(a, b float64) Range {
	if b < a {
		a, b = b, a
	}
	return Range{Min: a, Max: b}
}

// Length returns the extent of the range.
func (r Range) Length() float64 {
	return r.Max - r.Min
}

// Clamp restricts v to the interval.
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Contains reports whether v lies within the interval, endpoints included.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}
