// Package scale maps data values to pixel positions, radii and colours.
package scale

import "math"

// Linear maps a continuous domain onto a continuous range. Values outside
// the domain extrapolate.
type Linear struct {
	d0, d1 float64
	r0, r1 float64
}

// NewLinear returns a linear scale. A degenerate domain (d0 == d1) is widened
// to [d0, d0+1].
func NewLinear(d0, d1, r0, r1 float64) Linear {
	d0, d1 = widen(d0, d1)
	return Linear{d0: d0, d1: d1, r0: r0, r1: r1}
}

// Apply maps v from the domain to the range.
func (s Linear) Apply(v float64) float64 {
	t := (v - s.d0) / (s.d1 - s.d0)
	return s.r0 + t*(s.r1-s.r0)
}

// Invert maps a range value back to the domain.
func (s Linear) Invert(px float64) float64 {
	if s.r1 == s.r0 {
		return s.d0
	}
	t := (px - s.r0) / (s.r1 - s.r0)
	return s.d0 + t*(s.d1-s.d0)
}

// Domain returns the domain bounds.
func (s Linear) Domain() (float64, float64) {
	return s.d0, s.d1
}

// Range returns the range bounds.
func (s Linear) Range() (float64, float64) {
	return s.r0, s.r1
}

// Ticks returns roughly count evenly spaced, human-friendly values within
// the domain.
func (s Linear) Ticks(count int) []float64 {
	return Ticks(s.d0, s.d1, count)
}

// TickStep returns the spacing Ticks uses for count.
func (s Linear) TickStep(count int) float64 {
	return TickStep(s.d0, s.d1, count)
}

// Sqrt maps a domain onto a range through a square root, so that the area of
// a circle with the mapped radius is proportional to the input.
type Sqrt struct {
	inner Linear
	d0    float64
	d1    float64
}

// NewSqrt returns a square root scale. A degenerate domain is widened to
// [d0, d0+1].
func NewSqrt(d0, d1, r0, r1 float64) Sqrt {
	d0, d1 = widen(d0, d1)
	return Sqrt{
		inner: Linear{d0: signedSqrt(d0), d1: signedSqrt(d1), r0: r0, r1: r1},
		d0:    d0,
		d1:    d1,
	}
}

// Apply maps v from the domain to the range.
func (s Sqrt) Apply(v float64) float64 {
	return s.inner.Apply(signedSqrt(v))
}

// Domain returns the domain bounds.
func (s Sqrt) Domain() (float64, float64) {
	return s.d0, s.d1
}

// Range returns the range bounds.
func (s Sqrt) Range() (float64, float64) {
	return s.inner.Range()
}

func signedSqrt(v float64) float64 {
	if v < 0 {
		return -math.Sqrt(-v)
	}
	return math.Sqrt(v)
}

func widen(d0, d1 float64) (float64, float64) {
	if d0 == d1 || math.IsNaN(d0) || math.IsNaN(d1) {
		return d0, d0 + 1
	}
	return d0, d1
}
