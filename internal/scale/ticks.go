package scale

import "math"

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// Ticks returns about count values between start and stop, inclusive, spaced
// by 1, 2 or 5 times a power of ten.
func Ticks(start, stop float64, count int) []float64 {
	if count <= 0 {
		return nil
	}
	if start == stop {
		return []float64{start}
	}

	reverse := stop < start
	lo, hi := start, stop
	if reverse {
		lo, hi = stop, start
	}
	i1, i2, inc := tickSpec(lo, hi, float64(count))
	if i2 < i1 {
		return nil
	}

	n := int(i2 - i1 + 1)
	ticks := make([]float64, n)
	for i := 0; i < n; i++ {
		k := i1 + float64(i)
		if reverse {
			k = i2 - float64(i)
		}
		if inc < 0 {
			ticks[i] = k / -inc
		} else {
			ticks[i] = k * inc
		}
	}
	return ticks
}

// TickStep returns the tick spacing Ticks would use.
func TickStep(start, stop float64, count int) float64 {
	if count <= 0 || start == stop {
		return 0
	}
	lo, hi := start, stop
	if stop < start {
		lo, hi = stop, start
	}
	_, _, inc := tickSpec(lo, hi, float64(count))
	if inc < 0 {
		return 1 / -inc
	}
	return inc
}

// TickPrecision returns the number of decimals needed to print ticks spaced
// by step without losing information.
func TickPrecision(step float64) int {
	if step <= 0 || math.IsInf(step, 0) || math.IsNaN(step) {
		return 0
	}
	// The epsilon absorbs Log10 rounding on exact powers of ten.
	p := -int(math.Floor(math.Log10(step) + 1e-9))
	if p < 0 {
		return 0
	}
	return p
}

// tickSpec returns integer bounds and an increment. A negative increment
// means ticks are i / -inc, which keeps fractional steps exact.
func tickSpec(start, stop, count float64) (i1, i2, inc float64) {
	step := (stop - start) / math.Max(0, count)
	power := math.Floor(math.Log10(step))
	errv := step / math.Pow(10, power)

	factor := 1.0
	switch {
	case errv >= e10:
		factor = 10
	case errv >= e5:
		factor = 5
	case errv >= e2:
		factor = 2
	}

	if power < 0 {
		inc = math.Pow(10, -power) / factor
		i1 = round(start * inc)
		i2 = round(stop * inc)
		if i1/inc < start {
			i1++
		}
		if i2/inc > stop {
			i2--
		}
		inc = -inc
	} else {
		inc = math.Pow(10, power) * factor
		i1 = round(start / inc)
		i2 = round(stop / inc)
		if i1*inc < start {
			i1++
		}
		if i2*inc > stop {
			i2--
		}
	}

	if i2 < i1 && 0.5 <= count && count < 2 {
		return tickSpec(start, stop, count*2)
	}
	return i1, i2, inc
}

// round rounds half up, matching how tick bounds are usually computed.
func round(v float64) float64 {
	return math.Floor(v + 0.5)
}
