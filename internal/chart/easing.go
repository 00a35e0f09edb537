package chart

import "github.com/dbmrq/bubblechart/internal/config"

// EaseFunc maps linear progress t in [0, 1] to eased progress.
type EaseFunc func(t float64) float64

// CubicInOut accelerates through the first half and decelerates through the second.
func CubicInOut(t float64) float64 {
	t *= 2
	if t <= 1 {
		return t * t * t / 2
	}
	t -= 2
	return (t*t*t + 2) / 2
}

// Linear returns t unchanged.
func Linear(t float64) float64 {
	return t
}

// Ease returns the timing function named by e. Unknown names fall back to
// cubic-in-out.
func Ease(e config.Easing) EaseFunc {
	switch e {
	case config.EasingLinear:
		return Linear
	default:
		return CubicInOut
	}
}
