package geo

import "math"

const earthRadiusMeters = 6371000

// Distance returns the great-circle distance between two coordinates in
// meters using the haversine formula.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLng := (lng2 - lng1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLng/2)*math.Sin(dLng/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// Evaluate classifies a position against a circular geofence. The boundary is
// inclusive: a position at exactly radiusMeters is in range. A NaN distance
// (from non-finite input) classifies as out of range rather than erroring.
// The returned distance is unrounded; use RoundMeters for display.
func Evaluate(userLat, userLng, officeLat, officeLng, radiusMeters float64) (float64, bool) {
	dist := Distance(userLat, userLng, officeLat, officeLng)
	if math.IsNaN(dist) {
		return dist, false
	}
	return dist, dist <= radiusMeters
}

// RoundMeters rounds a distance to the nearest whole meter for display.
func RoundMeters(meters float64) int {
	return int(math.Round(meters))
}
