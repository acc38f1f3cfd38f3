package render

import "strconv"

// FormatFixed formats v with exactly decimals digits after the point.
func FormatFixed(v float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
