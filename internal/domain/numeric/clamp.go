package numeric

import "math"

const (
	PercentMin = 0
	PercentMax = 100
)

func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func ClampPercent(v float64) float64 {
	return Clamp(v, PercentMin, PercentMax)
}

// Round4 rounds half away from zero to 4 decimals.
func Round4(v float64) float64 {
	return RoundTo(v, 4)
}

func RoundTo(v float64, digits int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	scale := math.Pow(10, float64(digits))
	return math.Round(v*scale) / scale
}

// NonNegative4 is the inventory rounding rule: 4 decimals, never below zero.
func NonNegative4(v float64) float64 {
	r := Round4(v)
	if r < 0 {
		return 0
	}
	return r
}
