package dashboard

import (
	"math"
	"strconv"
)

// NotAvailable is shown for any current value that cannot be derived
const NotAvailable = "n/a"

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatValue renders a value directly followed by its unit, e.g. "4.1°C"
func FormatValue(v float64, ok bool, unit string) string {
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return NotAvailable
	}
	return formatNumber(v) + unit
}

// FormatVisibility renders a visibility in meters: whole meters up to 1000,
// kilometers with one decimal above that (500 -> "500m", 1500 -> "1.5km").
func FormatVisibility(meters float64) string {
	if math.IsNaN(meters) || math.IsInf(meters, 0) {
		return NotAvailable
	}
	if meters > 1000 {
		return strconv.FormatFloat(meters/1000, 'f', 1, 64) + "km"
	}
	return formatNumber(meters) + "m"
}
