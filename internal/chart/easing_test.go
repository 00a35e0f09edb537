package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dbmrq/bubblechart/internal/config"
)

func TestCubicInOut(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{0.25, 0.0625},
		{0.5, 0.5},
		{0.75, 0.9375},
		{1, 1},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, CubicInOut(tt.in), 1e-12, "CubicInOut(%v)", tt.in)
	}
}

func TestCubicInOutMonotonic(t *testing.T) {
	prev := CubicInOut(0)
	for i := 1; i <= 100; i++ {
		got := CubicInOut(float64(i) / 100)
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
}

func TestEase(t *testing.T) {
	assert.InDelta(t, 0.25, Ease(config.EasingLinear)(0.25), 1e-12)
	assert.InDelta(t, 0.0625, Ease(config.EasingCubicInOut)(0.25), 1e-12)
	assert.InDelta(t, 0.0625, Ease("bounce")(0.25), 1e-12, "unknown falls back to cubic")
}
