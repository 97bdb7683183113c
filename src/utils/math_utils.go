package utils

import (
	"math"
	"strconv"
)

// RoundFloat rounds a float64 to a specified number of decimal places.
func RoundFloat(val float64, precision uint) float64 {
	ratio := math.Pow(10, float64(precision))
	return math.Round(val*ratio) / ratio
}

// ClampFloat limits val to the inclusive range [lo, hi].
func ClampFloat(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// FormatAmount renders a monetary amount the way it would be spoken:
// no trailing zeros, no exponent.
func FormatAmount(val float64) string {
	return strconv.FormatFloat(val, 'f', -1, 64)
}
