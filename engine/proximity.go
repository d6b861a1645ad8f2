package engine

import (
	"fmt"
	"math"
)

// earthRadiusMiles is the mean Earth radius used by the haversine
// distance.
const earthRadiusMiles = 3959.0

// DistanceMiles computes the great-circle distance between two
// coordinate pairs with the haversine formula.
func DistanceMiles(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMiles * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// FormatMiles renders a distance the way cards and markers show it:
// "<0.1 mi" under a tenth of a mile, one decimal under ten miles,
// whole miles beyond.
func FormatMiles(miles float64) string {
	switch {
	case miles < 0.1:
		return "<0.1 mi"
	case miles < 10:
		return fmt.Sprintf("%.1f mi", miles)
	default:
		return fmt.Sprintf("%.0f mi", miles)
	}
}

// finiteCoord reports whether every value is a usable coordinate
// component. Distance against NaN or infinite input stays undefined,
// so callers skip the computation instead.
func finiteCoord(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
